//go:build windows

package strcvt

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procWideCharToMultiByte = kernel32.NewProc("WideCharToMultiByte")
)

// decode converts code-page bytes to UTF-16 with MultiByteToWideChar: one
// call with a nil destination to size the output, a second call to fill it.
// Callers guarantee b is non-empty.
func decode(b []byte, cp CodePage) ([]uint16, error) {
	n, err := windows.MultiByteToWideChar(uint32(cp), 0, &b[0], int32(len(b)), nil, 0)
	if err != nil {
		return nil, err
	}
	w := make([]uint16, n)
	if _, err := windows.MultiByteToWideChar(uint32(cp), 0, &b[0], int32(len(b)), &w[0], n); err != nil {
		return nil, err
	}
	return w, nil
}

// encode converts UTF-16 units to code-page bytes with the same two-call
// shape. Callers guarantee w is non-empty.
func encode(w []uint16, cp CodePage) ([]byte, error) {
	n, err := wideCharToMultiByte(uint32(cp), 0, &w[0], int32(len(w)), nil, 0)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := wideCharToMultiByte(uint32(cp), 0, &w[0], int32(len(w)), &b[0], n); err != nil {
		return nil, err
	}
	return b, nil
}

// wideCharToMultiByte calls kernel32's WideCharToMultiByte, which
// x/sys/windows does not wrap. The default-char arguments stay NULL; the
// UTF and ISO 2022 code pages reject anything else.
func wideCharToMultiByte(codePage, flags uint32, str *uint16, nstr int32, dst *byte, ndst int32) (int32, error) {
	r1, _, e1 := procWideCharToMultiByte.Call(
		uintptr(codePage),
		uintptr(flags),
		uintptr(unsafe.Pointer(str)),
		uintptr(nstr),
		uintptr(unsafe.Pointer(dst)),
		uintptr(ndst),
		0,
		0,
	)
	if r1 == 0 {
		if errno, ok := e1.(syscall.Errno); ok && errno != 0 {
			return 0, errno
		}
		return 0, syscall.EINVAL
	}
	return int32(r1), nil
}
