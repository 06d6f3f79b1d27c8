package clihelpers

import (
	"fmt"
	"os"
	"sort"

	"github.com/zooyer/golib/xos"

	"github.com/zooyer/godxf/entities"
)

// EntityCounts tallies how many entities of each DXF type name appear
// in a document's ENTITIES section.
func EntityCounts(list []entities.Entity) map[string]int {
	counts := make(map[string]int, len(list))
	for _, e := range list {
		counts[e.TypeName()]++
	}
	return counts
}

// AppendReportRow appends one CSV line per entity kind — source file,
// entity kind, count, in kind-name order — to path, creating it with a header row first if it does not
// yet exist. It generalises the teacher's door/window schedule exporter
// (cmd/main.go), which appended one row per window measurement to a
// per-drawing CSV, into a per-entity-kind tally appendable across many
// drawings in one run.
func AppendReportRow(path, source string, counts map[string]int) error {
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	if _, err := os.Stat(path); err != nil {
		if err := xos.AppendFile(path, []byte("source,kind,count\n"), 0o644); err != nil {
			return fmt.Errorf("clihelpers: write report header: %w", err)
		}
	}

	for _, kind := range kinds {
		line := fmt.Sprintf("%s,%s,%d\n", source, kind, counts[kind])
		if err := xos.AppendFile(path, []byte(line), 0o644); err != nil {
			return fmt.Errorf("clihelpers: append report row: %w", err)
		}
	}
	return nil
}
