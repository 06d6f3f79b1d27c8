package tables

import "github.com/zooyer/godxf/core"

// DimStyle is a DIMSTYLE table record. It exposes the small subset of
// dimension variables the codec round-trips; unrecognized DIMVARS are
// skipped on read and are not written back.
type DimStyle struct {
	Handle                 uint64
	Owner                  uint64
	Name                   string
	Flags                  int
	ExtensionLineExtension float64 // DIMEXE, 44
	Scale                  float64 // DIMSCALE, 40
	Precision              int     // DIMDEC, 271
	ArrowSize              float64 // DIMASZ, 41
	TextHeight             float64 // DIMTXT, 140
}

func (d *DimStyle) RecordName() string { return d.Name }

func decodeDimStyle(r *core.Reader) (*DimStyle, error) {
	d := &DimStyle{Scale: 1, ArrowSize: 0.18, TextHeight: 0.18}
	err := decodeCommonAndFields(r, &d.Handle, &d.Owner, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			d.Name = p.Value
		case 70:
			d.Flags = atoi(p.Value)
		case 44:
			d.ExtensionLineExtension = atof(p.Value)
		case 40:
			d.Scale = atof(p.Value)
		case 271:
			d.Precision = atoi(p.Value)
		case 41:
			d.ArrowSize = atof(p.Value)
		case 140:
			d.TextHeight = atof(p.Value)
		}
		return nil
	})
	return d, err
}

func encodeDimStyle(w *core.Writer, d *DimStyle) {
	w.Pair(0, "DIMSTYLE")
	w.Handle(5, d.Handle)
	w.Handle(330, d.Owner)
	w.Pair(100, "AcDbSymbolTableRecord")
	w.Pair(100, "AcDbDimStyleTableRecord")
	w.Pair(2, d.Name)
	w.Int(70, d.Flags)
	w.Float(44, d.ExtensionLineExtension)
	w.Float(40, d.Scale)
	w.Int(271, d.Precision)
	w.Float(41, d.ArrowSize)
	w.Float(140, d.TextHeight)
}
