package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/chaoscope/chaos"
	"github.com/lixenwraith/chaoscope/export"
)

func pngCmd() *cobra.Command {
	var (
		anchors string
		width   int
		height  int
		iters   int
		seed    int64
		ratio   float64
		style   string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "png",
		Short: "Accumulate a density field and write it as a PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			pts, err := parseAnchors(anchors)
			if err != nil {
				return err
			}

			field, err := export.DensityField(export.DensityOptions{
				Anchors: pts,
				Width:   width,
				Height:  height,
				Iters:   iters,
				Seed:    seed,
				Ratio:   ratio,
			})
			if err != nil {
				return err
			}

			if err := export.SavePNG(out, field, style); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%dx%d, %d points)\n", out, width, height, iters)
			return nil
		},
	}

	cmd.Flags().StringVar(&anchors, "anchors", "", `semicolon-separated unit coordinates, e.g. "0.5,0.1;0.1,0.9;0.9,0.9" (default: triangle)`)
	cmd.Flags().IntVar(&width, "width", 1024, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 1024, "image height in pixels")
	cmd.Flags().IntVar(&iters, "iters", 2_000_000, "number of chaos-game steps")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&ratio, "ratio", chaos.DefaultRatio, "per-step contraction toward the chosen anchor")
	cmd.Flags().StringVar(&style, "style", export.StyleHeat, "output style: gray or heat")
	cmd.Flags().StringVar(&out, "out", "chaoscope.png", "output file")

	return cmd
}
