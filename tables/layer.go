package tables

import "github.com/zooyer/godxf/core"

// LayerFlags is the group-70 bitset on a LAYER record, exposed as named
// accessors rather than individual booleans backed by a shared field
// (Design Notes, spec.md §9).
type LayerFlags int

const (
	LayerFrozen           LayerFlags = 1
	LayerFrozenByDefault   LayerFlags = 2
	LayerLocked            LayerFlags = 4
	LayerXrefDependent     LayerFlags = 16
	LayerXrefResolved      LayerFlags = 32
	LayerReferencedExternally LayerFlags = 64
)

func (f LayerFlags) has(bit LayerFlags) bool { return f&bit != 0 }

func (f LayerFlags) Frozen() bool               { return f.has(LayerFrozen) }
func (f LayerFlags) FrozenByDefault() bool       { return f.has(LayerFrozenByDefault) }
func (f LayerFlags) Locked() bool                { return f.has(LayerLocked) }
func (f LayerFlags) XrefDependent() bool         { return f.has(LayerXrefDependent) }
func (f LayerFlags) XrefResolved() bool          { return f.has(LayerXrefResolved) }
func (f LayerFlags) ReferencedExternally() bool  { return f.has(LayerReferencedExternally) }

// Layer is a LAYER table record.
type Layer struct {
	Handle      uint64
	Owner       uint64
	Name        string
	Flags       LayerFlags
	Color       int // 62; negative means the layer is off
	LineType    string
	LineWeight  int
	Plots       bool // 290, default true
	PlotStyle   uint64
	MaterialRef uint64
}

func (l *Layer) RecordName() string { return l.Name }

func decodeLayer(r *core.Reader) (*Layer, error) {
	l := &Layer{Plots: true}
	err := decodeCommonAndFields(r, &l.Handle, &l.Owner, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			l.Name = p.Value
		case 70:
			l.Flags = LayerFlags(atoi(p.Value))
		case 62:
			l.Color = atoi(p.Value)
		case 6:
			l.LineType = p.Value
		case 370:
			l.LineWeight = atoi(p.Value)
		case 290:
			l.Plots = core.ParseBool(p.Value)
		case 390:
			l.PlotStyle, _ = core.ParseHandle(p.Value)
		case 347:
			l.MaterialRef, _ = core.ParseHandle(p.Value)
		}
		return nil
	})
	return l, err
}

func encodeLayer(w *core.Writer, l *Layer) {
	w.Pair(0, "LAYER")
	w.Handle(5, l.Handle)
	w.Handle(330, l.Owner)
	w.Pair(100, "AcDbSymbolTableRecord")
	w.Pair(100, "AcDbLayerTableRecord")
	w.Pair(2, l.Name)
	w.Int(70, int(l.Flags))
	w.Int(62, l.Color)
	w.Pair(6, l.LineType)
	w.Int(370, l.LineWeight)
	w.Bool(290, l.Plots)
	w.Handle(390, l.PlotStyle)
	if l.MaterialRef != 0 {
		w.Handle(347, l.MaterialRef)
	}
}
