package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Circle is a CIRCLE entity.
type Circle struct {
	Header
	Center core.Point
	Radius float64
}

func init() {
	Register("CIRCLE", func() Entity { return &Circle{Header: newHeader()} })
}

func (c *Circle) TypeName() string { return "CIRCLE" }

func (c *Circle) Decode(r *core.Reader) error {
	return decodeBody(r, &c.Header, func(code int, p core.CodePair) error {
		switch code {
		case 10:
			c.Center.X = atof(p.Value)
		case 20:
			c.Center.Y = atof(p.Value)
		case 30:
			c.Center.Z = atof(p.Value)
		case 40:
			c.Radius = atof(p.Value)
		}
		return nil
	})
}

func (c *Circle) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "CIRCLE")
	c.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbCircle")
	w.Point(10, c.Center)
	w.Float(40, c.Radius)
	encodeExtras(w, &c.Header)
}
