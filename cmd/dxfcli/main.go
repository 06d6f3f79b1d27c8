package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"
)

func main() {
	// Someone double-clicked the binary rather than running it from a
	// shell: pause before the console window closes, the way the
	// teacher's cmd/main.go did for its drag-and-drop workflow.
	if len(os.Args) < 2 {
		defer xos.PauseExit()
	}

	root := &cobra.Command{
		Use:   "dxfcli",
		Short: "Inspect, convert, and dump AutoCAD DXF drawings",
	}

	root.AddCommand(newInspectCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newMCPCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
