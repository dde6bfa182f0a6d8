// SPDX-License-Identifier: MIT

// Command bsdiff computes a binary patch from an old file to a new file.
//
// Usage: bsdiff oldfile newfile patchfile
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tamama00792/bsdiff"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s oldfile newfile patchfile\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1), flag.Arg(2)); err != nil {
		fmt.Fprintf(os.Stderr, "bsdiff: %v\n", err)
		os.Exit(1)
	}
}

func run(oldPath, newPath, patchPath string) error {
	old, err := os.ReadFile(oldPath)
	if err != nil {
		return err
	}
	newBuf, err := os.ReadFile(newPath)
	if err != nil {
		return err
	}

	patch, err := bsdiff.Diff(old, newBuf, nil)
	if err != nil {
		return err
	}

	return os.WriteFile(patchPath, patch, 0o644)
}
