// Command interval evaluates interval notation and manages a catalog of named intervals.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
