package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/thehowl/b64"
)

const usageString = `Usage: %s [OPTION...] [FILE]
base64 encode or decode FILE, or standard input, to standard output.
With no FILE, or when FILE is -, read standard input.

`

func main() {
	var (
		dec = flag.Bool("d", false, "decode data")
		url = flag.Bool("u", false, "use the URL-safe alphabet when encoding")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, usageString, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	f := os.Stdin
	var err error
	if arg := flag.Arg(0); arg != "" && arg != "-" {
		f, err = os.Open(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening %q: %v", arg, err)
			os.Exit(1)
		}
	}

	buf, err := io.ReadAll(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v", err)
		os.Exit(1)
	}

	switch {
	case *dec:
		// decode in place; the decoder accepts both alphabets
		n := b64.Decode(nil, buf)
		if _, err := os.Stdout.Write(buf[:n]); err != nil {
			fmt.Fprintf(os.Stderr, "error writing output: %v", err)
			os.Exit(1)
		}
	case *url:
		fmt.Println(b64.EncodeToStringURL(buf))
	default:
		fmt.Println(b64.EncodeToString(buf))
	}
}
