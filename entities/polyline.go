package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Polyline is a POLYLINE entity: the older, heavier polyline
// representation whose vertices arrive as child VERTEX entities
// terminated by SEQEND, per spec.md §4.7's container-entity note.
type Polyline struct {
	Header
	Flags    int
	Vertices []*Vertex
}

func init() {
	Register("POLYLINE", func() Entity { return &Polyline{Header: newHeader()} })
}

func (p *Polyline) TypeName() string { return "POLYLINE" }

func (p *Polyline) Decode(r *core.Reader) error {
	err := decodeBody(r, &p.Header, func(code int, cp core.CodePair) error {
		if code == 70 {
			p.Flags = atoi(cp.Value)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for {
		peek, err := r.Peek()
		if err != nil {
			return err
		}
		if peek.Code != 0 {
			return nil
		}
		if peek.Value == "SEQEND" {
			if _, err := r.Advance(); err != nil {
				return err
			}
			var seq Seqend
			if err := decodeBody(r, &seq.Header, func(int, core.CodePair) error { return nil }); err != nil {
				return err
			}
			return nil
		}
		if peek.Value != "VERTEX" {
			return nil
		}
		if _, err := r.Advance(); err != nil {
			return err
		}
		v := &Vertex{Header: newHeader()}
		if err := v.Decode(r); err != nil {
			return err
		}
		p.Vertices = append(p.Vertices, v)
	}
}

func (p *Polyline) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "POLYLINE")
	p.encodeCommon(w, target)
	writeSubclass(w, target, "AcDb2dPolyline")
	w.Int(66, 1)
	w.Int(70, p.Flags)
	encodeExtras(w, &p.Header)
	for _, v := range p.Vertices {
		v.Encode(w, target)
	}
	w.Pair(0, "SEQEND")
}

// Vertex is a child VERTEX entity of a POLYLINE.
type Vertex struct {
	Header
	Location core.Point
	Bulge    float64
}

func (v *Vertex) TypeName() string { return "VERTEX" }

func (v *Vertex) Decode(r *core.Reader) error {
	return decodeBody(r, &v.Header, func(code int, p core.CodePair) error {
		switch code {
		case 10:
			v.Location.X = atof(p.Value)
		case 20:
			v.Location.Y = atof(p.Value)
		case 30:
			v.Location.Z = atof(p.Value)
		case 42:
			v.Bulge = atof(p.Value)
		}
		return nil
	})
}

func (v *Vertex) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "VERTEX")
	v.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbVertex")
	writeSubclass(w, target, "AcDb2dVertex")
	w.Point(10, v.Location)
	if v.Bulge != 0 {
		w.Float(42, v.Bulge)
	}
	encodeExtras(w, &v.Header)
}

// Seqend marks the end of a container entity's child sequence (POLYLINE
// vertices, INSERT attributes). It carries only the common header.
type Seqend struct {
	Header
}

func init() {
	Register("SEQEND", func() Entity { return &Seqend{Header: newHeader()} })
}

func (s *Seqend) TypeName() string { return "SEQEND" }

func (s *Seqend) Decode(r *core.Reader) error {
	return decodeBody(r, &s.Header, func(int, core.CodePair) error { return nil })
}

func (s *Seqend) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "SEQEND")
	s.encodeCommon(w, target)
	encodeExtras(w, &s.Header)
}
