package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Attrib is an ATTRIB entity: a filled-in attribute value attached to
// an INSERT.
type Attrib struct {
	Header
	Location   core.Point
	Height     float64
	Value      string
	Tag        string
	Flags      int
	Rotation   float64
	WidthScale float64
	Style      string
}

func init() {
	Register("ATTRIB", func() Entity { return &Attrib{Header: newHeader(), WidthScale: 1, Style: "STANDARD"} })
}

func (a *Attrib) TypeName() string { return "ATTRIB" }

func (a *Attrib) Decode(r *core.Reader) error {
	return decodeBody(r, &a.Header, func(code int, p core.CodePair) error {
		switch code {
		case 10:
			a.Location.X = atof(p.Value)
		case 20:
			a.Location.Y = atof(p.Value)
		case 30:
			a.Location.Z = atof(p.Value)
		case 40:
			a.Height = atof(p.Value)
		case 1:
			a.Value = p.Value
		case 2:
			a.Tag = p.Value
		case 70:
			a.Flags = atoi(p.Value)
		case 50:
			a.Rotation = atof(p.Value)
		case 41:
			a.WidthScale = atof(p.Value)
		case 7:
			a.Style = p.Value
		}
		return nil
	})
}

func (a *Attrib) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "ATTRIB")
	a.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbText")
	w.Point(10, a.Location)
	w.Float(40, a.Height)
	w.Pair(1, a.Value)
	writeSubclass(w, target, "AcDbAttribute")
	w.Pair(2, a.Tag)
	w.Int(70, a.Flags)
	if a.Rotation != 0 {
		w.Float(50, a.Rotation)
	}
	if a.WidthScale != 1 {
		w.Float(41, a.WidthScale)
	}
	w.Pair(7, a.Style)
	encodeExtras(w, &a.Header)
}
