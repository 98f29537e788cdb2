// Command greens decomposes finitely generated monoids into their
// Green's-relation structure from the command line.
//
// Usage:
//
//	greens decompose --input gens.yaml [--classes] [--verbose]
//
// The input file names an element kind and its generators:
//
//	kind: transformation
//	generators:
//	  - [1, 0, 2, 3, 4]
//	  - [1, 2, 3, 4, 0]
//	  - [0, 0, 2, 3, 4]
//
// or, for boolean matrices:
//
//	kind: bmat8
//	matrices:
//	  - [[0, 1], [1, 0]]
//	  - [[1, 0], [1, 1]]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "greens",
		Short:         "Green's-relation structure of finitely generated monoids",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDecomposeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "greens:", err)
		os.Exit(1)
	}
}

// newLogger returns a text slog.Logger at Info, or Debug when verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
