// Package strcvt converts text between Windows code pages, UTF-16 wide
// strings and UTF-8.
//
// Every conversion funnels through UTF-16, the representation the native
// Windows conversion primitives operate on; there is no direct
// code-page-to-code-page path. On Windows the package calls
// MultiByteToWideChar and WideCharToMultiByte; elsewhere it emulates them
// with the golang.org/x/text encodings registered in this package, so
// behavior is portable and testable on any platform.
//
// Encodings map onto Go types: UTF-8 text travels as string, UTF-16 text as
// []uint16 code units, and code-page text as []byte. The conversion
// functions named after their encodings (NarrowToWide, WideToUTF8, ...) are
// total: a nil or empty input, an unknown code page, or a failed OS
// conversion all collapse to an empty result, never an error. Callers that
// need to tell failure apart from empty input use Decode and Encode instead.
package strcvt

// Decode converts code-page bytes to UTF-16 code units. An empty or nil
// input yields an empty result and no error; an unknown code page or a
// conversion the platform rejects yields an error.
func Decode(b []byte, cp CodePage) ([]uint16, error) {
	if len(b) == 0 {
		return nil, nil
	}
	return decode(b, cp)
}

// Encode converts UTF-16 code units to code-page bytes. Characters the code
// page cannot represent are substituted, not rejected; see WideToNarrow.
func Encode(w []uint16, cp CodePage) ([]byte, error) {
	if len(w) == 0 {
		return nil, nil
	}
	return encode(w, cp)
}

// NarrowToWide decodes code-page bytes into a UTF-16 wide string. It
// returns an empty result when the input is empty or the conversion fails;
// Decode reports the difference between the two.
func NarrowToWide(b []byte, cp CodePage) []uint16 {
	w, err := Decode(b, cp)
	if err != nil {
		return nil
	}
	return w
}

// WideToNarrow encodes a UTF-16 wide string into code-page bytes. The
// conversion is lossy for characters the code page cannot represent: they
// come back as the converter's substitution character. Empty input or a
// failed conversion yields an empty result.
func WideToNarrow(w []uint16, cp CodePage) []byte {
	b, err := Encode(w, cp)
	if err != nil {
		return nil
	}
	return b
}

// UTF8ToWide decodes UTF-8 text into a UTF-16 wide string.
func UTF8ToWide(s string) []uint16 {
	return NarrowToWide([]byte(s), UTF8)
}

// WideToUTF8 encodes a UTF-16 wide string as UTF-8 text.
func WideToUTF8(w []uint16) string {
	return string(WideToNarrow(w, UTF8))
}

// UTF8ToSystem converts UTF-8 text to bytes in the system default code
// page. The conversion runs UTF-8 -> UTF-16 -> system; the wide
// intermediate is the only route the native converters support.
func UTF8ToSystem(s string) []byte {
	return WideToNarrow(UTF8ToWide(s), ACP)
}

// SystemToUTF8 converts bytes in the system default code page to UTF-8
// text, again through the UTF-16 intermediate.
func SystemToUTF8(b []byte) string {
	return WideToUTF8(NarrowToWide(b, ACP))
}
