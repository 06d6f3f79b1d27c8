package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// LWPolyline is an LWPOLYLINE entity: a lightweight 2D polyline whose
// vertices (each optionally carrying a bulge) live inline rather than
// as child VERTEX entities.
type LWPolyline struct {
	Header
	Closed   bool
	Vertices []LWVertex
}

// LWVertex is one vertex of an LWPOLYLINE: a 2D point plus optional
// bulge (curvature of the segment leaving this vertex).
type LWVertex struct {
	Point core.Point
	Bulge float64
}

func init() {
	Register("LWPOLYLINE", func() Entity { return &LWPolyline{Header: newHeader()} })
}

func (l *LWPolyline) TypeName() string { return "LWPOLYLINE" }

func (l *LWPolyline) Decode(r *core.Reader) error {
	var pending *LWVertex
	flush := func() {
		if pending != nil {
			l.Vertices = append(l.Vertices, *pending)
			pending = nil
		}
	}
	err := decodeBody(r, &l.Header, func(code int, p core.CodePair) error {
		switch code {
		case 70:
			l.Closed = atoi(p.Value)&1 != 0
		case 10:
			flush()
			pending = &LWVertex{Point: core.Point{X: atof(p.Value)}}
		case 20:
			if pending != nil {
				pending.Point.Y = atof(p.Value)
			}
		case 42:
			if pending != nil {
				pending.Bulge = atof(p.Value)
			}
		}
		return nil
	})
	flush()
	return err
}

func (l *LWPolyline) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "LWPOLYLINE")
	l.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbPolyline")
	w.Int(90, len(l.Vertices))
	flags := 0
	if l.Closed {
		flags |= 1
	}
	w.Int(70, flags)
	for _, v := range l.Vertices {
		w.Point2D(10, v.Point)
		if v.Bulge != 0 {
			w.Float(42, v.Bulge)
		}
	}
	encodeExtras(w, &l.Header)
}
