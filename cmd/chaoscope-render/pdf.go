package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/chaoscope/chaos"
	"github.com/lixenwraith/chaoscope/export"
)

func pdfCmd() *cobra.Command {
	var (
		anchors string
		points  int
		seed    int64
		ratio   float64
		hull    bool
		out     string
	)

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Plot sampled walk points as an A4 PDF",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			pts, err := parseAnchors(anchors)
			if err != nil {
				return err
			}

			sampled, err := export.SamplePoints(export.DensityOptions{
				Anchors: pts,
				Iters:   points,
				Seed:    seed,
				Ratio:   ratio,
			}, points)
			if err != nil {
				return err
			}

			err = export.WritePDF(out, export.PDFOptions{
				Anchors:  pts,
				Points:   sampled,
				ShowHull: hull,
			})
			if err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d points)\n", out, len(sampled))
			return nil
		},
	}

	cmd.Flags().StringVar(&anchors, "anchors", "", `semicolon-separated unit coordinates, e.g. "0.5,0.1;0.1,0.9;0.9,0.9" (default: triangle)`)
	cmd.Flags().IntVar(&points, "points", 20_000, "number of plotted walk points")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&ratio, "ratio", chaos.DefaultRatio, "per-step contraction toward the chosen anchor")
	cmd.Flags().BoolVar(&hull, "hull", true, "outline the anchors' convex hull")
	cmd.Flags().StringVar(&out, "out", "chaoscope.pdf", "output file")

	return cmd
}
