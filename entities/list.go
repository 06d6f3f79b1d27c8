package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// ReadUntil decodes a sequence of entities starting at the current
// position, stopping (without consuming) at the first 0-code pair whose
// value matches one of stop. Unregistered entity types are skipped by
// draining their pairs, extension groups, and XData, preserving forward
// compatibility with entity kinds this codec does not know.
func ReadUntil(r *core.Reader, stop ...string) ([]Entity, error) {
	var out []Entity
	for {
		peek, err := r.Peek()
		if err != nil {
			return nil, err
		}
		if peek.Code != 0 {
			return out, nil
		}
		for _, s := range stop {
			if peek.Value == s {
				return out, nil
			}
		}
		typeName := peek.Value
		if _, err := r.Advance(); err != nil {
			return nil, err
		}
		e := New(typeName)
		if e == nil {
			e = &Unknown{Header: newHeader(), Kind: typeName}
		}
		if err := e.Decode(r); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

// WriteAll encodes every entity in order, targeting target.
func WriteAll(w *core.Writer, entities []Entity, target version.Version) {
	for _, e := range entities {
		e.Encode(w, target)
	}
}

// WriteAllWithoutHandles encodes every entity the same way WriteAll
// does, but suppresses each one's own handle (group 5): entities
// written inside a block definition carry no individual handle, since
// the block's own handle governs them, per spec.md §4.6.
func WriteAllWithoutHandles(w *core.Writer, list []Entity, target version.Version) {
	for _, e := range list {
		h := e.GetHandle()
		e.SetHandle(0)
		e.Encode(w, target)
		e.SetHandle(h)
	}
}
