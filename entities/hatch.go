package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Hatch is a HATCH entity. Boundary-path geometry (arcs, splines, and
// polyline edges nested under code 92/93 loops) is preserved as raw
// pairs rather than decoded into typed edge geometry: spec.md §1 scopes
// geometric interpretation out, and the boundary grammar's own internal
// looping is independent of anything this codec needs to round-trip it.
type Hatch struct {
	Header
	PatternName string
	Solid       bool
	Associative bool
	BoundaryRaw []core.CodePair
	Elevation   float64
	Normal      core.Point
}

func init() {
	Register("HATCH", func() Entity { return &Hatch{Header: newHeader(), Normal: core.Point{Z: 1}} })
}

func (h *Hatch) TypeName() string { return "HATCH" }

func (h *Hatch) Decode(r *core.Reader) error {
	return decodeBody(r, &h.Header, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			h.PatternName = p.Value
		case 70:
			h.Solid = atoi(p.Value) != 0
		case 71:
			h.Associative = atoi(p.Value) != 0
		case 30:
			h.Elevation = atof(p.Value)
		case 210:
			h.Normal.X = atof(p.Value)
		case 220:
			h.Normal.Y = atof(p.Value)
		case 230:
			h.Normal.Z = atof(p.Value)
		default:
			h.BoundaryRaw = append(h.BoundaryRaw, p)
		}
		return nil
	})
}

func (h *Hatch) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "HATCH")
	h.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbHatch")
	w.Float(30, h.Elevation)
	w.Point(210, h.Normal)
	w.Pair(2, h.PatternName)
	w.Bool(70, h.Solid)
	w.Bool(71, h.Associative)
	for _, p := range h.BoundaryRaw {
		w.Pair(p.Code, p.Value)
	}
	encodeExtras(w, &h.Header)
}
