//go:build windows

package strcvt

import "golang.org/x/sys/windows"

// ActiveCodePage reports the system default ANSI code page.
func ActiveCodePage() CodePage {
	return CodePage(windows.GetACP())
}
