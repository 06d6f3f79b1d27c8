package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Arc is an ARC entity: a circle segment between two angles, measured
// counterclockwise in degrees.
type Arc struct {
	Header
	Center     core.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func init() {
	Register("ARC", func() Entity { return &Arc{Header: newHeader(), EndAngle: 360} })
}

func (a *Arc) TypeName() string { return "ARC" }

func (a *Arc) Decode(r *core.Reader) error {
	return decodeBody(r, &a.Header, func(code int, p core.CodePair) error {
		switch code {
		case 10:
			a.Center.X = atof(p.Value)
		case 20:
			a.Center.Y = atof(p.Value)
		case 30:
			a.Center.Z = atof(p.Value)
		case 40:
			a.Radius = atof(p.Value)
		case 50:
			a.StartAngle = atof(p.Value)
		case 51:
			a.EndAngle = atof(p.Value)
		}
		return nil
	})
}

func (a *Arc) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "ARC")
	a.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbCircle")
	w.Point(10, a.Center)
	w.Float(40, a.Radius)
	writeSubclass(w, target, "AcDbArc")
	w.Float(50, a.StartAngle)
	w.Float(51, a.EndAngle)
	encodeExtras(w, &a.Header)
}
