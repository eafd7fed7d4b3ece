// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jscan decodes a JSON value from a file or stdin and re-encodes
// it to stdout, either compactly or indented.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/creachadair/jscan"
)

var (
	doPretty = flag.Bool("pretty", false, "Indent the output")
	offset   = flag.Int("offset", 1, "Start decoding at this byte offset (1-based)")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("jscan: ")

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	v, _, err := jscan.Decode(jscan.NewReaderSource(in), *offset)
	if err != nil {
		log.Fatal(err)
	}
	if *doPretty {
		if err := jscan.Format(os.Stdout, v); err != nil {
			log.Fatal(err)
		}
		fmt.Println()
		return
	}
	text, err := jscan.Encode(v)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(text)
}
