package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zooyer/godxf"
	"github.com/zooyer/godxf/internal/clihelpers"
)

func newReportCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "report <file.dxf>...",
		Short: "Append per-entity-kind counts for each drawing to a CSV report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				doc, err := dxf.Open(path)
				if err != nil {
					return fmt.Errorf("report: %w", err)
				}
				counts := clihelpers.EntityCounts(doc.Entities)
				if err := clihelpers.AppendReportRow(outFile, path, counts); err != nil {
					return fmt.Errorf("report: %w", err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "dxf-report.csv", "CSV report path, appended to across runs")

	return cmd
}
