package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/greens/bmat8"
	"github.com/katalvlaran/greens/konieczny"
	"github.com/katalvlaran/greens/transform"
)

// inputFile is the YAML description of a generating set.
type inputFile struct {
	// Kind selects the element kind: "transformation" or "bmat8".
	Kind string `yaml:"kind"`

	// Generators holds image words for kind "transformation".
	Generators [][]int `yaml:"generators"`

	// Matrices holds 0/1 row lists for kind "bmat8".
	Matrices [][][]int `yaml:"matrices"`
}

func newDecomposeCmd() *cobra.Command {
	var (
		input   string
		classes bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Compute the D-class decomposition of a generated monoid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(verbose)
			data, err := os.ReadFile(input)
			if err != nil {
				return err
			}
			var in inputFile
			if err = yaml.Unmarshal(data, &in); err != nil {
				return fmt.Errorf("parsing %s: %w", input, err)
			}
			switch in.Kind {
			case "transformation":
				return decomposeTransformations(cmd, log, in, classes)
			case "bmat8":
				return decomposeMatrices(cmd, log, in, classes)
			default:
				return fmt.Errorf("unknown kind %q (want transformation or bmat8)", in.Kind)
			}
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "YAML file with the generating set (required)")
	cmd.Flags().BoolVar(&classes, "classes", false, "print a per-class table")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func decomposeTransformations(cmd *cobra.Command, log *slog.Logger, in inputFile, classes bool) error {
	gens := make([]*transform.Transf, 0, len(in.Generators))
	for i, word := range in.Generators {
		img := make([]uint8, len(word))
		for j, v := range word {
			if v < 0 || v > 255 {
				return fmt.Errorf("generator %d: image value %d out of range", i, v)
			}
			img[j] = uint8(v)
		}
		t, err := transform.New(img...)
		if err != nil {
			return fmt.Errorf("generator %d: %w", i, err)
		}
		gens = append(gens, t)
	}
	log.Debug("parsed generators", "count", len(gens))

	k, err := konieczny.New[*transform.Transf, uint64, string](transform.Traits{}, gens)
	if err != nil {
		return err
	}

	return report[*transform.Transf](cmd, log, k, classes)
}

func decomposeMatrices(cmd *cobra.Command, log *slog.Logger, in inputFile, classes bool) error {
	gens := make([]*bmat8.BMat8, 0, len(in.Matrices))
	for i, rows := range in.Matrices {
		m, err := bmat8.New(rows)
		if err != nil {
			return fmt.Errorf("matrix %d: %w", i, err)
		}
		gens = append(gens, &m)
	}
	log.Debug("parsed matrices", "count", len(gens))

	k, err := konieczny.New[*bmat8.BMat8, bmat8.BMat8, bmat8.BMat8](bmat8.Traits{}, gens)
	if err != nil {
		return err
	}

	return report[*bmat8.BMat8](cmd, log, k, classes)
}

// decomposer is the slice of the engine surface the report needs, so
// that both element kinds share one printer.
type decomposer[E any] interface {
	Run() error
	Degree() int
	IdentityAdjoined() bool
	Size() (uint64, error)
	NumberOfDClasses() (int, error)
	NumberOfLClasses() (int, error)
	NumberOfRClasses() (int, error)
	NumberOfIdempotents() (uint64, error)
	LambdaOrbitSize() (int, error)
	RhoOrbitSize() (int, error)
	DClasses() ([]konieczny.DClass[E], error)
}

func report[E any](cmd *cobra.Command, log *slog.Logger, k decomposer[E], classes bool) error {
	log.Info("decomposing", "degree", k.Degree(), "identity_adjoined", k.IdentityAdjoined())
	if err := k.Run(); err != nil {
		return err
	}
	lo, _ := k.LambdaOrbitSize()
	ro, _ := k.RhoOrbitSize()
	log.Debug("orbits enumerated", "lambda", lo, "rho", ro)

	size, _ := k.Size()
	nd, _ := k.NumberOfDClasses()
	nl, _ := k.NumberOfLClasses()
	nr, _ := k.NumberOfRClasses()
	ni, _ := k.NumberOfIdempotents()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "size:        %d\n", size)
	fmt.Fprintf(out, "D-classes:   %d\n", nd)
	fmt.Fprintf(out, "L-classes:   %d\n", nl)
	fmt.Fprintf(out, "R-classes:   %d\n", nr)
	fmt.Fprintf(out, "idempotents: %d\n", ni)

	if !classes {
		return nil
	}
	ds, _ := k.DClasses()
	fmt.Fprintf(out, "\n%-6s %-8s %-9s %-8s %-8s %-8s %s\n",
		"index", "rank", "regular", "|H|", "|L|", "|R|", "size")
	for _, d := range ds {
		fmt.Fprintf(out, "%-6d %-8d %-9t %-8d %-8d %-8d %d\n",
			d.Index(), d.Rank(), d.IsRegular(),
			len(d.HClass()), len(d.LeftReps()), len(d.RightReps()), d.Size())
	}

	return nil
}
