//go:build windows

package utf8args

import (
	"log"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Ylin97/coding-utilities/strcvt"
)

// Args re-parses the process command line with CommandLineToArgvW and
// transcodes every argument from its original UTF-16. When the command
// line cannot be parsed it reports the failure on stderr and returns an
// empty list.
func Args() []string {
	var argc int32
	argv, err := windows.CommandLineToArgv(windows.GetCommandLine(), &argc)
	if err != nil {
		log.Printf("utf8args: parse command line: %v", err)
		return nil
	}
	defer windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(argv))))
	return decodeArgv(argv, argc)
}

// decodeArgv transcodes the first argc entries of an argv array in the
// shape CommandLineToArgv returns, in order, cutting each entry at its
// terminating NUL.
func decodeArgv(argv *[8192]*[8192]uint16, argc int32) []string {
	args := make([]string, 0, argc)
	for _, v := range (*argv)[:argc] {
		args = append(args, strcvt.WideToUTF8(cutAtNUL(v)))
	}
	return args
}

// cutAtNUL trims a NUL-terminated argument to its length.
func cutAtNUL(p *[8192]uint16) []uint16 {
	for i, c := range p {
		if c == 0 {
			return p[:i]
		}
	}
	return p[:]
}
