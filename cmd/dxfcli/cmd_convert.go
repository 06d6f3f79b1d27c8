package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zooyer/godxf"
	"github.com/zooyer/godxf/internal/clihelpers"
	"github.com/zooyer/godxf/internal/config"
	"github.com/zooyer/godxf/version"
)

func newConvertCmd() *cobra.Command {
	var target, out string
	var pick bool

	cmd := &cobra.Command{
		Use:   "convert [file.dxf] --out <file.dxf>",
		Short: "Re-save a drawing at a different AutoCAD release",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			var in string
			switch {
			case len(args) == 1:
				in = args[0]
			case pick:
				in, err = clihelpers.PickFile()
				if err != nil {
					return fmt.Errorf("convert: %w", err)
				}
			default:
				return fmt.Errorf("convert: either pass a file or use --pick")
			}

			if !cmd.Flags().Changed("target") {
				target = cfg.TargetVersion
			}
			v, err := version.ParseName(target)
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}

			doc, err := dxf.Open(in)
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}
			doc.Version = v

			if out == "" {
				return fmt.Errorf("convert: --out is required")
			}
			if err := doc.SaveFile(out); err != nil {
				return fmt.Errorf("convert: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "converted %s to %s, wrote %s\n", in, v, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", config.DefaultTargetVersion, "target AutoCAD release, e.g. R2000, R2013")
	cmd.Flags().StringVar(&out, "out", "", "output file path")
	cmd.Flags().BoolVar(&pick, "pick", false, "open an interactive file-picker dialog instead of taking a path argument")

	return cmd
}
