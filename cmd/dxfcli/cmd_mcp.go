package main

import (
	"github.com/spf13/cobra"

	"github.com/zooyer/godxf/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the codec's dxf_load/dxf_inspect/dxf_convert/dxf_list_entities tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcpserver.NewServer().Run()
		},
	}
}
