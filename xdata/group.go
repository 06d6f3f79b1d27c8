// Package xdata implements the two nestable extension mechanisms
// attached to every entity/object common header: extension data groups
// (code 102) and application XData (code 1001+), per spec.md §4.8. Both
// are preserved verbatim — the core never interprets their contents.
package xdata

import (
	"strings"

	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/dxferr"
)

// Group is a nestable extension-data group: a named span opened by
// 102/"{NAME" and closed by a matching 102/"}". A group may contain
// plain pairs and/or further nested groups, interleaved in original
// order; Pairs holds only the non-102 pairs, Nested holds child groups,
// and the unexported order records, for round-trip fidelity, the
// interleaving as a sequence of items each naming either an index into
// Pairs or an index into Nested — see Items.
type Group struct {
	Name   string
	Pairs  []core.CodePair
	Nested []*Group
	order  []item
}

type item struct {
	isGroup bool
	index   int
}

// Items replays the group's contents in original insertion order as a
// slice of either core.CodePair or *Group values.
func (g *Group) Items() []any {
	out := make([]any, 0, len(g.order))
	for _, it := range g.order {
		if it.isGroup {
			out = append(out, g.Nested[it.index])
		} else {
			out = append(out, g.Pairs[it.index])
		}
	}
	return out
}

// AddPair appends a plain pair to the group, preserving order.
func (g *Group) AddPair(p core.CodePair) {
	g.order = append(g.order, item{index: len(g.Pairs)})
	g.Pairs = append(g.Pairs, p)
}

// AddNested appends a nested group, preserving order.
func (g *Group) AddNested(child *Group) {
	g.order = append(g.order, item{isGroup: true, index: len(g.Nested)})
	g.Nested = append(g.Nested, child)
}

func isOpen(p core.CodePair) (name string, ok bool) {
	if p.Code != 102 {
		return "", false
	}
	if !strings.HasPrefix(p.Value, "{") {
		return "", false
	}
	return p.Value[1:], true
}

func isClose(p core.CodePair) bool {
	return p.Code == 102 && p.Value == "}"
}

// ReadGroups consumes every consecutive top-level extension group at the
// reader's current position, stopping at the first pair that is not a
// 102-open.
func ReadGroups(r *core.Reader) ([]*Group, error) {
	var groups []*Group
	for {
		peek, err := r.Peek()
		if err != nil {
			return groups, nil //nolint:nilerr // EOF ends the stream of groups, not an error here
		}
		name, ok := isOpen(peek)
		if !ok {
			return groups, nil
		}
		if _, err := r.Advance(); err != nil {
			return nil, err
		}
		g, err := readGroupBody(r, name)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
}

func readGroupBody(r *core.Reader, name string) (*Group, error) {
	g := &Group{Name: name}
	for {
		peek, err := r.Peek()
		if err != nil {
			return nil, dxferr.New(dxferr.UnexpectedEof, "extension data group "+name+" missing closing 102 }")
		}
		if isClose(peek) {
			if _, err := r.Advance(); err != nil {
				return nil, err
			}
			return g, nil
		}
		if childName, ok := isOpen(peek); ok {
			if _, err := r.Advance(); err != nil {
				return nil, err
			}
			child, err := readGroupBody(r, childName)
			if err != nil {
				return nil, err
			}
			g.AddNested(child)
			continue
		}
		pair, err := r.Advance()
		if err != nil {
			return nil, err
		}
		g.AddPair(pair)
	}
}

// WriteGroups emits groups in order, recursing into nested groups.
func WriteGroups(w *core.Writer, groups []*Group) {
	for _, g := range groups {
		writeGroup(w, g)
	}
}

func writeGroup(w *core.Writer, g *Group) {
	w.Pair(102, "{"+g.Name)
	for _, it := range g.Items() {
		switch v := it.(type) {
		case core.CodePair:
			w.Pair(v.Code, v.Value)
		case *Group:
			writeGroup(w, v)
		}
	}
	w.Pair(102, "}")
}
