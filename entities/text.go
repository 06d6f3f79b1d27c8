package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Text is a TEXT entity: a single line of annotation.
type Text struct {
	Header
	Insertion  core.Point
	Height     float64
	Value      string
	Rotation   float64
	WidthScale float64
	Style      string
}

func init() {
	Register("TEXT", func() Entity { return &Text{Header: newHeader(), WidthScale: 1, Style: "STANDARD"} })
}

func (t *Text) TypeName() string { return "TEXT" }

func (t *Text) Decode(r *core.Reader) error {
	return decodeBody(r, &t.Header, func(code int, p core.CodePair) error {
		switch code {
		case 10:
			t.Insertion.X = atof(p.Value)
		case 20:
			t.Insertion.Y = atof(p.Value)
		case 30:
			t.Insertion.Z = atof(p.Value)
		case 40:
			t.Height = atof(p.Value)
		case 1:
			t.Value = p.Value
		case 50:
			t.Rotation = atof(p.Value)
		case 41:
			t.WidthScale = atof(p.Value)
		case 7:
			t.Style = p.Value
		}
		return nil
	})
}

func (t *Text) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "TEXT")
	t.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbText")
	w.Point(10, t.Insertion)
	w.Float(40, t.Height)
	w.Pair(1, t.Value)
	if t.Rotation != 0 {
		w.Float(50, t.Rotation)
	}
	if t.WidthScale != 1 {
		w.Float(41, t.WidthScale)
	}
	w.Pair(7, t.Style)
	encodeExtras(w, &t.Header)
}
