package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zooyer/godxf"
)

func newDumpCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "dump <file.dxf>",
		Short: "Print one line per entity: type name and handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := dxf.Open(args[0])
			if err != nil {
				return fmt.Errorf("dump: %w", err)
			}

			out := cmd.OutOrStdout()
			for i, e := range doc.Entities {
				if limit > 0 && i >= limit {
					fmt.Fprintf(out, "... and %d more\n", len(doc.Entities)-limit)
					break
				}
				fmt.Fprintf(out, "%-12s handle=%-8d\n", e.TypeName(), e.GetHandle())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many entities (0 = no limit)")

	return cmd
}
