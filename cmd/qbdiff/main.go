// Command qbdiff creates a binary patch from an old file to a new file.
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
				"Usage: qbdiff oldfile newfile deltafile\n\n"+
				"Creates a binary patch DELTAFILE from OLDFILE to NEWFILE.\n",
			qbdiff.Version())
		return 1
	}

	old, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "reading %s: %v\n", args[1], err)
		return 1
	}
	newData, err := os.ReadFile(args[2])
	if err != nil {
		fmt.Fprintf(stderr, "reading %s: %v\n", args[2], err)
		return 1
	}

	out, err := os.Create(args[3])
	if err != nil {
		fmt.Fprintf(stderr, "creating %s: %v\n", args[3], err)
		return 1
	}
	defer out.Close()

	if err := qbdiff.Compute(old, newData, out); err != nil {
		fmt.Fprintf(stderr, "failed to create delta: %v\n", err)
		os.Remove(args[3])
		return 1
	}

	return 0
}
