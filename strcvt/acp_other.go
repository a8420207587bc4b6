//go:build !windows

package strcvt

// ActiveCodePage reports the code page ACP resolves to: UTF-8 everywhere
// but Windows. POSIX has no ANSI code page and delivers UTF-8 text.
func ActiveCodePage() CodePage {
	return UTF8
}
