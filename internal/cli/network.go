package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/algcurve/vankampen/pkg/monodromy"
	"github.com/algcurve/vankampen/pkg/render"
)

// networkCommand creates the network inspection command.
func (c *CLI) networkCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		prec     uint
	)

	cmd := &cobra.Command{
		Use:   "network <polynomial>",
		Short: "Inspect or render the braid monodromy path network",
		Long: `Show the Voronoi path network the pipeline tracks braids along: the
branch points of the curve and the bounded ridges around them.

With --format dot or svg the network is written as a picture; otherwise
the vertices and segments are listed as text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ParsePoly(args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)

			prepared, err := monodromy.Prepare(f, false)
			if err != nil {
				return err
			}
			branch, err := monodromy.Discriminant(prepared, prec)
			if err != nil {
				return err
			}
			net := monodromy.BuildNetwork(branch)
			p.done(fmt.Sprintf("Built network: %d branch points, %d vertices, %d segments",
				len(branch), len(net.Vertices), len(net.Segments)))

			switch strings.ToLower(format) {
			case "", "text":
				printNetwork(net)
				return nil
			case "dot":
				return writeOut(output, []byte(render.ToDOT(net, render.Options{Detailed: detailed})))
			case "svg":
				svg, err := render.SVG(cmd.Context(), render.ToDOT(net, render.Options{Detailed: detailed}))
				if err != nil {
					return err
				}
				return writeOut(output, svg)
			default:
				return fmt.Errorf("invalid format: %q (must be one of: text, dot, svg)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text (default), dot, svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label vertices with exact coordinates")
	cmd.Flags().UintVar(&prec, "precision", monodromy.DefaultPrecision, "root isolation precision in bits")

	return cmd
}

func printNetwork(net *monodromy.Network) {
	printInfo("Vertices:")
	for i, v := range net.Vertices {
		printDetail("v%-3d %s", i, v)
	}
	printInfo("Segments:")
	for _, seg := range net.Segments {
		printDetail("v%d %s v%d", seg[0], iconArrow, seg[1])
	}
	if len(net.Branch) > 0 {
		printInfo("Branch points:")
		for _, b := range net.Branch {
			printDetail("%v", b)
		}
	}
}

func writeOut(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}
