// Command u8args prints the arguments the process received, decoded to
// UTF-8, one per line starting with the program name. On Windows it is a
// quick check that non-ANSI arguments survive the command line.
package main

import (
	"fmt"

	"github.com/Ylin97/coding-utilities/utf8args"
)

func main() {
	for _, a := range utf8args.Args() {
		fmt.Println(a)
	}
}
