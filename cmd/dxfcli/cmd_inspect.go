package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zooyer/godxf"
	"github.com/zooyer/godxf/internal/clihelpers"
	"github.com/zooyer/godxf/internal/config"
)

func newInspectCmd() *cobra.Command {
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "inspect <file.dxf>",
		Short: "Summarize a drawing's version, sections, and layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			doc, err := dxf.Open(args[0])
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", doc.Version)
			fmt.Fprintf(out, "entities: %d\n", len(doc.Entities))
			fmt.Fprintf(out, "blocks: %d\n", doc.Blocks.Len())
			fmt.Fprintf(out, "objects: %d\n", len(doc.Objects))

			var layers []string
			for _, l := range doc.Tables.Layer.All() {
				layers = append(layers, l.Name)
			}
			sort.Strings(layers)
			fmt.Fprintf(out, "layers (%d): %v\n", len(layers), layers)

			min, max := doc.Header.Point("$EXTMIN"), doc.Header.Point("$EXTMAX")
			fmt.Fprintf(out, "extents: %v .. %v\n", min, max)

			if !cmd.Flags().Changed("tolerance") {
				tolerance = cfg.Tolerance
			}
			if clihelpers.NearlyEqual(min.X, max.X, tolerance) && clihelpers.NearlyEqual(min.Y, max.Y, tolerance) {
				fmt.Fprintf(out, "extents are degenerate within tolerance %v: drawing may be empty\n", tolerance)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance,
		"float comparison tolerance used when reporting near-duplicate measurements")

	return cmd
}
