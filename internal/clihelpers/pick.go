// Package clihelpers carries the interactive affordances dxfcli layers
// on top of the codec: an optional file-picker dialog and an
// incremental per-entity-kind CSV report writer, adapted from the
// teacher's cmd/main.go drag-and-drop workflow into flag-gated
// subcommand behaviour.
package clihelpers

import (
	"fmt"

	"github.com/ncruces/zenity"
)

// PickFile opens a native file-open dialog filtered to .dxf files and
// returns the chosen path, or an error if the user cancelled.
func PickFile() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Select a DXF drawing"),
		zenity.FileFilters{
			{Name: "DXF drawings", Patterns: []string{"*.dxf"}, CaseFold: true},
		},
	)
	if err != nil {
		return "", fmt.Errorf("clihelpers: pick file: %w", err)
	}
	return path, nil
}
