package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Point is a POINT entity: a single location, optionally with a
// direction for angled point-style rendering.
type Point struct {
	Header
	Location        core.Point
	AngleOfXAxis    float64
}

func init() {
	Register("POINT", func() Entity { return &Point{Header: newHeader()} })
}

func (p *Point) TypeName() string { return "POINT" }

func (p *Point) Decode(r *core.Reader) error {
	return decodeBody(r, &p.Header, func(code int, cp core.CodePair) error {
		switch code {
		case 10:
			p.Location.X = atof(cp.Value)
		case 20:
			p.Location.Y = atof(cp.Value)
		case 30:
			p.Location.Z = atof(cp.Value)
		case 50:
			p.AngleOfXAxis = atof(cp.Value)
		}
		return nil
	})
}

func (p *Point) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "POINT")
	p.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbPoint")
	w.Point(10, p.Location)
	if p.AngleOfXAxis != 0 {
		w.Float(50, p.AngleOfXAxis)
	}
	encodeExtras(w, &p.Header)
}
