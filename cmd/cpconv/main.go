// Command cpconv converts text between code pages, pivoting through
// UTF-16 the way the Windows converters do. It reads the named files, or
// standard input, and writes the converted bytes to standard output.
//
//	cpconv -f shift_jis legacy.txt >utf8.txt
//	cpconv -f utf-8 -t 936 <in.txt >gbk.txt
//	cpconv -u mixed.log
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/Ylin97/coding-utilities/strcvt"
)

var (
	from   = flag.String("f", "", "source encoding, a name or code page number (default: system code page)")
	to     = flag.String("t", "utf-8", "target encoding, a name or code page number")
	repair = flag.Bool("u", false, "ignore -f and -t, pass valid UTF-8 through and reinterpret the rest as system code-page text")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cpconv: ")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: cpconv [-f encoding] [-t encoding] [-u] [file ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	convert, err := converter()
	if err != nil {
		return err
	}

	if flag.NArg() == 0 {
		return convertFile("stdin", os.Stdin, convert)
	}
	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = convertFile(name, f, convert)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// converter builds the conversion the flags ask for. Stateful encodings
// cannot be cut at arbitrary chunk boundaries, so every input converts as
// one buffer.
func converter() (func([]byte) ([]byte, error), error) {
	if *repair {
		return func(b []byte) ([]byte, error) {
			return []byte(strcvt.EnsureUTF8(string(b))), nil
		}, nil
	}

	src, err := strcvt.ResolveCodePage(*from)
	if err != nil {
		return nil, err
	}
	dst, err := strcvt.ResolveCodePage(*to)
	if err != nil {
		return nil, err
	}
	return func(b []byte) ([]byte, error) {
		w, err := strcvt.Decode(b, src)
		if err != nil {
			return nil, fmt.Errorf("decode from %d: %w", src, err)
		}
		out, err := strcvt.Encode(w, dst)
		if err != nil {
			return nil, fmt.Errorf("encode to %d: %w", dst, err)
		}
		return out, nil
	}, nil
}

func convertFile(name string, r io.Reader, convert func([]byte) ([]byte, error)) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	out, err := convert(b)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
