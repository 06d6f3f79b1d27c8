package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Leader is a LEADER entity: an arrow-terminated polyline pointing at
// an annotation.
type Leader struct {
	Header
	StyleName string
	ArrowHead bool
	Vertices  []core.Point
}

func init() {
	Register("LEADER", func() Entity { return &Leader{Header: newHeader(), StyleName: "STANDARD", ArrowHead: true} })
}

func (l *Leader) TypeName() string { return "LEADER" }

func (l *Leader) Decode(r *core.Reader) error {
	var pending *core.Point
	flush := func() {
		if pending != nil {
			l.Vertices = append(l.Vertices, *pending)
			pending = nil
		}
	}
	err := decodeBody(r, &l.Header, func(code int, p core.CodePair) error {
		switch code {
		case 3:
			l.StyleName = p.Value
		case 71:
			l.ArrowHead = atoi(p.Value) != 0
		case 10:
			flush()
			pending = &core.Point{X: atof(p.Value)}
		case 20:
			if pending != nil {
				pending.Y = atof(p.Value)
			}
		case 30:
			if pending != nil {
				pending.Z = atof(p.Value)
			}
		}
		return nil
	})
	flush()
	return err
}

func (l *Leader) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "LEADER")
	l.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbLeader")
	w.Pair(3, l.StyleName)
	w.Bool(71, l.ArrowHead)
	w.Int(76, len(l.Vertices))
	for _, v := range l.Vertices {
		w.Point(10, v)
	}
	encodeExtras(w, &l.Header)
}
