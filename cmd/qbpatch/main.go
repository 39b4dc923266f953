// Command qbpatch applies a binary patch to an old file to produce a new file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/qbdiff/qbdiff"
)

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if len(args) < 4 {
		fmt.Fprintf(stderr,
			"qbdiff %s - Quick Binary Diff\n"+
				"Usage: qbpatch oldfile newfile deltafile\n\n"+
				"Applies the binary patch DELTAFILE to OLDFILE to create file NEWFILE.\n",
			qbdiff.Version())
		return 1
	}

	old, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "reading %s: %v\n", args[1], err)
		return 1
	}
	patch, err := os.ReadFile(args[3])
	if err != nil {
		fmt.Fprintf(stderr, "reading %s: %v\n", args[3], err)
		return 1
	}

	out, err := os.Create(args[2])
	if err != nil {
		fmt.Fprintf(stderr, "creating %s: %v\n", args[2], err)
		return 1
	}
	defer out.Close()

	if err := qbdiff.Apply(old, patch, out); err != nil {
		fmt.Fprintf(stderr, "failed to patch: %v\n", err)
		os.Remove(args[2])
		return 1
	}

	return 0
}
