package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Attdef is an ATTDEF entity: an attribute definition template living
// inside a block, instantiated into an Attrib on each INSERT that has
// AttributesFollow set.
type Attdef struct {
	Header
	Location core.Point
	Height   float64
	Default  string
	Tag      string
	Prompt   string
	Flags    int
	Style    string
}

func init() {
	Register("ATTDEF", func() Entity { return &Attdef{Header: newHeader(), Style: "STANDARD"} })
}

func (a *Attdef) TypeName() string { return "ATTDEF" }

func (a *Attdef) Decode(r *core.Reader) error {
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
			a.Default = p.Value
		case 2:
			a.Tag = p.Value
		case 3:
			a.Prompt = p.Value
		case 70:
			a.Flags = atoi(p.Value)
		case 7:
			a.Style = p.Value
		}
		return nil
	})
}

func (a *Attdef) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "ATTDEF")
	a.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbText")
	w.Point(10, a.Location)
	w.Float(40, a.Height)
	w.Pair(1, a.Default)
	writeSubclass(w, target, "AcDbAttributeDefinition")
	w.Pair(3, a.Prompt)
	w.Pair(2, a.Tag)
	w.Int(70, a.Flags)
	w.Pair(7, a.Style)
	encodeExtras(w, &a.Header)
}
