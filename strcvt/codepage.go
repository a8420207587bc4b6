package strcvt

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// CodePage identifies a Windows code page by its numeric identifier.
type CodePage uint32

const (
	// ACP stands in for the system default ANSI code page (CP_ACP). The
	// conversion functions resolve it to the live value at call time.
	ACP CodePage = 0
	// UTF8 is the UTF-8 pseudo code page (CP_UTF8).
	UTF8 CodePage = 65001
)

// codePageEncodings maps the code pages this package can convert without OS
// help. The set mirrors what MultiByteToWideChar accepts for the locales
// Windows actually ships as ANSI code pages.
var codePageEncodings = map[CodePage]encoding.Encoding{
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	20932: japanese.EUCJP,
	50220: japanese.ISO2022JP,
	50221: japanese.ISO2022JP,
	50222: japanese.ISO2022JP,
	54936: simplifiedchinese.GB18030,
	65001: unicode.UTF8,
}

// encodingFor resolves cp to an x/text encoding, resolving ACP first.
func encodingFor(cp CodePage) (encoding.Encoding, bool) {
	if cp == ACP {
		cp = ActiveCodePage()
	}
	enc, ok := codePageEncodings[cp]
	return enc, ok
}

// ResolveCodePage turns a user-supplied encoding label into a code page.
// It accepts a decimal code-page number ("936"), the words "acp" or
// "system" (and the empty string) for the system default, or any encoding
// name the WHATWG index knows ("gbk", "shift_jis", "windows-1252", ...).
// Names resolve only to encodings with a Windows code-page number; numeric
// input passes through unchecked, since Windows itself may support pages
// this package has no table for.
func ResolveCodePage(name string) (CodePage, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	switch label {
	case "", "acp", "system":
		return ACP, nil
	}

	if n, err := strconv.ParseUint(label, 10, 32); err == nil {
		return CodePage(n), nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return 0, fmt.Errorf("strcvt: unknown encoding %q: %w", name, err)
	}

	// Several code pages can share one encoding (the ISO 2022 family);
	// the lowest page wins.
	var found CodePage
	for cp, e := range codePageEncodings {
		if e == enc && (found == 0 || cp < found) {
			found = cp
		}
	}
	if found == 0 {
		return 0, fmt.Errorf("strcvt: encoding %q has no Windows code page", name)
	}
	return found, nil
}
