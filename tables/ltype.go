package tables

import "github.com/zooyer/godxf/core"

// LType is an LTYPE table record.
type LType struct {
	Handle        uint64
	Owner         uint64
	Name          string
	Flags         int
	Description   string
	AlignmentCode int
	Dashes        []float64
}

func (l *LType) RecordName() string { return l.Name }

func decodeLType(r *core.Reader) (*LType, error) {
	l := &LType{AlignmentCode: 'A'}
	err := decodeCommonAndFields(r, &l.Handle, &l.Owner, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			l.Name = p.Value
		case 70:
			l.Flags = atoi(p.Value)
		case 3:
			l.Description = p.Value
		case 72:
			l.AlignmentCode = atoi(p.Value)
		case 49:
			l.Dashes = append(l.Dashes, atof(p.Value))
		}
		return nil
	})
	return l, err
}

func encodeLType(w *core.Writer, l *LType) {
	w.Pair(0, "LTYPE")
	w.Handle(5, l.Handle)
	w.Handle(330, l.Owner)
	w.Pair(100, "AcDbSymbolTableRecord")
	w.Pair(100, "AcDbLinetypeTableRecord")
	w.Pair(2, l.Name)
	w.Int(70, l.Flags)
	w.Pair(3, l.Description)
	w.Int(72, l.AlignmentCode)
	w.Int(73, len(l.Dashes))
	total := 0.0
	for _, d := range l.Dashes {
		if d > 0 {
			total += d
		} else {
			total -= d
		}
	}
	w.Float(40, total)
	for _, d := range l.Dashes {
		w.Float(49, d)
	}
}
