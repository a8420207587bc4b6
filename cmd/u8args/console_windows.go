//go:build windows

package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleOutputCP = kernel32.NewProc("SetConsoleOutputCP")
)

// init switches an attached console to UTF-8 so the decoded arguments
// print intact. Redirected output is left alone.
func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return
	}
	procSetConsoleOutputCP.Call(uintptr(65001))
}
