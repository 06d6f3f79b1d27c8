package objects

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Layout is a LAYOUT object: a named paper-space page, linking a
// BLOCK_RECORD to its plot and viewport configuration.
type Layout struct {
	Header
	Name     string
	TabOrder int
	Flags    int
	MinLimit core.Point
	MaxLimit core.Point
}

func init() {
	Register("LAYOUT", func() Object { return &Layout{} })
}

func (l *Layout) TypeName() string { return "LAYOUT" }

func (l *Layout) Decode(r *core.Reader) error {
	return decodeBody(r, &l.Header, func(code int, p core.CodePair) error {
		switch code {
		case 1:
			l.Name = p.Value
		case 71:
			l.TabOrder = atoi(p.Value)
		case 70:
			l.Flags = atoi(p.Value)
		case 10:
			l.MinLimit.X = atof(p.Value)
		case 20:
			l.MinLimit.Y = atof(p.Value)
		case 11:
			l.MaxLimit.X = atof(p.Value)
		case 21:
			l.MaxLimit.Y = atof(p.Value)
		}
		return nil
	})
}

func (l *Layout) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "LAYOUT")
	l.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbPlotSettings")
	writeSubclass(w, target, "AcDbLayout")
	w.Pair(1, l.Name)
	w.Int(70, l.Flags)
	w.Int(71, l.TabOrder)
	w.Point2D(10, l.MinLimit)
	w.Point2D(11, l.MaxLimit)
	encodeExtras(w, &l.Header)
}
