package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Line is a LINE entity: a single straight segment.
type Line struct {
	Header
	Start, End core.Point
}

func init() {
	Register("LINE", func() Entity { return &Line{Header: newHeader()} })
}

func (l *Line) TypeName() string { return "LINE" }

func (l *Line) Decode(r *core.Reader) error {
	return decodeBody(r, &l.Header, func(code int, p core.CodePair) error {
		switch code {
		case 10:
			l.Start.X = atof(p.Value)
		case 20:
			l.Start.Y = atof(p.Value)
		case 30:
			l.Start.Z = atof(p.Value)
		case 11:
			l.End.X = atof(p.Value)
		case 21:
			l.End.Y = atof(p.Value)
		case 31:
			l.End.Z = atof(p.Value)
		}
		return nil
	})
}

func (l *Line) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "LINE")
	l.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbLine")
	w.Point(10, l.Start)
	w.Point(11, l.End)
	encodeExtras(w, &l.Header)
}
