//go:build !windows

package strcvt

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding"
)

// decode converts code-page bytes to UTF-16 through the x/text tables,
// substituting U+FFFD for undecodable input the way MultiByteToWideChar
// does. A fresh decoder per call keeps this safe for concurrent use.
// Callers guarantee b is non-empty.
func decode(b []byte, cp CodePage) ([]uint16, error) {
	enc, ok := encodingFor(cp)
	if !ok {
		return nil, fmt.Errorf("strcvt: unsupported code page %d", cp)
	}
	u8, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, err
	}
	return utf16.Encode([]rune(string(u8))), nil
}

// encode converts UTF-16 units to code-page bytes. Runes the target page
// cannot represent become its substitute byte, as WideCharToMultiByte does
// with the default char. Callers guarantee w is non-empty.
func encode(w []uint16, cp CodePage) ([]byte, error) {
	enc, ok := encodingFor(cp)
	if !ok {
		return nil, fmt.Errorf("strcvt: unsupported code page %d", cp)
	}
	s := string(utf16.Decode(w))
	return encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
}
