package strcvt

import "unicode/utf8"

// UTF8Len reports the number of code points in b by classifying lead bytes
// and skipping the continuation bytes they announce. Announced bytes are
// never inspected, so a truncated or corrupted tail after a valid lead
// still counts as one code point. A byte matching none of the four lead
// patterns (a continuation byte in lead position, or 0xF8 and above) stops
// the walk; the count up to it is the result.
func UTF8Len(b []byte) int {
	n := 0
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0x00:
			i++
		case c&0xE0 == 0xC0:
			i += 2
		case c&0xF0 == 0xE0:
			i += 3
		case c&0xF8 == 0xF0:
			i += 4
		default:
			return n
		}
		n++
	}
	return n
}

// UTF8LenInString is UTF8Len for a string.
func UTF8LenInString(s string) int {
	return UTF8Len([]byte(s))
}

// EnsureUTF8 returns s unchanged when it is already valid UTF-8 and
// otherwise reinterprets its bytes as system code-page text. If that
// conversion produces nothing the original string comes back untouched.
func EnsureUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	if u := SystemToUTF8([]byte(s)); u != "" {
		return u
	}
	return s
}
