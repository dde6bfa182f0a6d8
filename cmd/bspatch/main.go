// SPDX-License-Identifier: MIT

// Command bspatch applies a binary patch produced by bsdiff to an old file,
// writing the reconstructed new file. The new file's permission bits are
// copied from the old file.
//
// Usage: bspatch oldfile newfile patchfile
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
		fmt.Fprintf(os.Stderr, "bspatch: %v\n", err)
		os.Exit(1)
	}
}

func run(oldPath, newPath, patchPath string) error {
	info, err := os.Stat(oldPath)
	if err != nil {
		return err
	}
	old, err := os.ReadFile(oldPath)
	if err != nil {
		return err
	}
	patch, err := os.ReadFile(patchPath)
	if err != nil {
		return err
	}

	newBuf, err := bsdiff.Patch(old, patch, nil)
	if err != nil {
		return err
	}

	return os.WriteFile(newPath, newBuf, info.Mode().Perm())
}
