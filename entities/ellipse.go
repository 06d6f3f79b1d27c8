package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Ellipse is an ELLIPSE entity, defined by its center, the endpoint of
// its major axis relative to the center, the minor/major axis ratio,
// and a start/end parameter pair (radians) for elliptical arcs.
type Ellipse struct {
	Header
	Center     core.Point
	MajorAxis  core.Point
	AxisRatio  float64
	StartParam float64
	EndParam   float64
}

func init() {
	Register("ELLIPSE", func() Entity { return &Ellipse{Header: newHeader(), EndParam: 6.283185307179586} })
}

func (e *Ellipse) TypeName() string { return "ELLIPSE" }

func (e *Ellipse) Decode(r *core.Reader) error {
	return decodeBody(r, &e.Header, func(code int, p core.CodePair) error {
		switch code {
		case 10:
			e.Center.X = atof(p.Value)
		case 20:
			e.Center.Y = atof(p.Value)
		case 30:
			e.Center.Z = atof(p.Value)
		case 11:
			e.MajorAxis.X = atof(p.Value)
		case 21:
			e.MajorAxis.Y = atof(p.Value)
		case 31:
			e.MajorAxis.Z = atof(p.Value)
		case 40:
			e.AxisRatio = atof(p.Value)
		case 41:
			e.StartParam = atof(p.Value)
		case 42:
			e.EndParam = atof(p.Value)
		}
		return nil
	})
}

func (e *Ellipse) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "ELLIPSE")
	e.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbEllipse")
	w.Point(10, e.Center)
	w.Point(11, e.MajorAxis)
	w.Float(40, e.AxisRatio)
	w.Float(41, e.StartParam)
	w.Float(42, e.EndParam)
	encodeExtras(w, &e.Header)
}
