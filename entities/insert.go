package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Insert is an INSERT entity: a block reference placed, scaled, and
// rotated at a point, optionally carrying its own ATTRIB children.
type Insert struct {
	Header
	BlockName         string
	Insertion         core.Point
	Scale             core.Point
	Rotation          float64
	AttributesFollow  bool
	Attributes        []*Attrib
}

func init() {
	Register("INSERT", func() Entity {
		return &Insert{Header: newHeader(), Scale: core.Point{X: 1, Y: 1, Z: 1}}
	})
}

func (i *Insert) TypeName() string { return "INSERT" }

func (i *Insert) Decode(r *core.Reader) error {
	err := decodeBody(r, &i.Header, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			i.BlockName = p.Value
		case 10:
			i.Insertion.X = atof(p.Value)
		case 20:
			i.Insertion.Y = atof(p.Value)
		case 30:
			i.Insertion.Z = atof(p.Value)
		case 41:
			i.Scale.X = atof(p.Value)
		case 42:
			i.Scale.Y = atof(p.Value)
		case 43:
			i.Scale.Z = atof(p.Value)
		case 50:
			i.Rotation = atof(p.Value)
		case 66:
			i.AttributesFollow = atoi(p.Value) == 1
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !i.AttributesFollow {
		return nil
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
			return decodeBody(r, &seq.Header, func(int, core.CodePair) error { return nil })
		}
		if peek.Value != "ATTRIB" {
			return nil
		}
		if _, err := r.Advance(); err != nil {
			return err
		}
		a := &Attrib{Header: newHeader(), WidthScale: 1, Style: "STANDARD"}
		if err := a.Decode(r); err != nil {
			return err
		}
		i.Attributes = append(i.Attributes, a)
	}
}

// AttributeValues returns the INSERT's attribute tags mapped to their
// current text values, the form most callers want rather than the full
// Attrib structs.
func (i *Insert) AttributeValues() map[string]string {
	if len(i.Attributes) == 0 {
		return nil
	}
	m := make(map[string]string, len(i.Attributes))
	for _, a := range i.Attributes {
		m[a.Tag] = a.Value
	}
	return m
}

func (i *Insert) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "INSERT")
	i.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbBlockReference")
	if len(i.Attributes) > 0 {
		w.Int(66, 1)
	}
	w.Pair(2, i.BlockName)
	w.Point(10, i.Insertion)
	if i.Scale != (core.Point{X: 1, Y: 1, Z: 1}) {
		w.Float(41, i.Scale.X)
		w.Float(42, i.Scale.Y)
		w.Float(43, i.Scale.Z)
	}
	if i.Rotation != 0 {
		w.Float(50, i.Rotation)
	}
	encodeExtras(w, &i.Header)
	for _, a := range i.Attributes {
		a.Encode(w, target)
	}
	if len(i.Attributes) > 0 {
		w.Pair(0, "SEQEND")
	}
}
