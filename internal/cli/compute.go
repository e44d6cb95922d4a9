package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/algcurve/vankampen/pkg/errors"
	"github.com/algcurve/vankampen/pkg/pipeline"
)

// computeCommand creates the compute command, the main entry point of
// the CLI.
func (c *CLI) computeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{
		Precision:    c.Config.Precision,
		MaxPrecision: c.Config.MaxPrecision,
		Workers:      c.Config.Workers,
	}

	cmd := &cobra.Command{
		Use:   "compute <polynomial>",
		Short: "Compute the fundamental group of a curve complement",
		Long: `Compute a presentation of the fundamental group of the complement of
the plane curve f(x,y) = 0.

The polynomial is given over the Gaussian rationals in a compact text
syntax, e.g.:

  vankampen compute 'y^3 + x^3 - 1'
  vankampen compute 'x^2 + y^3' --projective
  vankampen compute '3/2*x*y^2 - i*x + 2' --raw

By default the presentation is Tietze-simplified; --raw keeps the full
meridian presentation (one generator per sheet and network vertex).
Per-segment braid words are cached locally for faster reruns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			opts.Simplified = !raw

			f, err := ParsePoly(args[0])
			if err != nil {
				return err
			}
			opts.Poly = f
			opts.Polynomial = args[0]
			return c.runCompute(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the presentation to a file instead of stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().Bool("raw", false, "skip simplification; keep the meridian presentation")
	cmd.Flags().BoolVar(&opts.Projective, "projective", false, "use the projective completion of the curve")
	cmd.Flags().UintVar(&opts.Precision, "precision", opts.Precision, "starting working precision in bits")
	cmd.Flags().UintVar(&opts.MaxPrecision, "max-precision", opts.MaxPrecision, "precision escalation cap in bits")
	cmd.Flags().IntVar(&opts.Workers, "workers", opts.Workers, "parallel segment computations (0 = all CPUs)")

	return cmd
}

// runCompute executes the pipeline and prints or writes the result.
func (c *CLI) runCompute(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing π₁ of the complement of %s...", opts.Polynomial))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Computation failed")
		if msg := errors.UserMessage(err); msg != err.Error() {
			printDetail("%s", msg)
		}
		return err
	}
	spinner.Stop()

	pres := result.Presentation.String()
	if output != "" {
		if err := os.WriteFile(output, []byte(pres+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Computed fundamental group of %s", StyleValue.Render(opts.Polynomial))
		printFile(output)
	} else {
		printSuccess("Fundamental group of the complement of %s", StyleValue.Render(opts.Polynomial))
		fmt.Println()
		fmt.Println("  " + pres)
		fmt.Println()
	}
	printStats(result.Stats.Generators, result.Stats.Relators, result.CacheInfo.PresentationHit)
	if !result.CacheInfo.PresentationHit {
		printDetail("branch points: %d · vertices: %d · segments: %d (%d cached)",
			result.Stats.BranchPoints, result.Stats.Vertices,
			result.Stats.Segments, result.CacheInfo.BraidHits)
	}
	return nil
}
