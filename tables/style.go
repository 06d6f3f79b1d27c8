package tables

import "github.com/zooyer/godxf/core"

// Style is a STYLE table record (text style).
type Style struct {
	Handle          uint64
	Owner           uint64
	Name            string
	Flags           int
	FixedHeight     float64
	WidthFactor     float64
	ObliqueAngle    float64
	GenerationFlags int
	LastHeightUsed  float64
	PrimaryFont     string
	BigFont         string
}

func (s *Style) RecordName() string { return s.Name }

func decodeStyle(r *core.Reader) (*Style, error) {
	s := &Style{WidthFactor: 1}
	err := decodeCommonAndFields(r, &s.Handle, &s.Owner, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			s.Name = p.Value
		case 70:
			s.Flags = atoi(p.Value)
		case 40:
			s.FixedHeight = atof(p.Value)
		case 41:
			s.WidthFactor = atof(p.Value)
		case 50:
			s.ObliqueAngle = atof(p.Value)
		case 71:
			s.GenerationFlags = atoi(p.Value)
		case 42:
			s.LastHeightUsed = atof(p.Value)
		case 3:
			s.PrimaryFont = p.Value
		case 4:
			s.BigFont = p.Value
		}
		return nil
	})
	return s, err
}

func encodeStyle(w *core.Writer, s *Style) {
	w.Pair(0, "STYLE")
	w.Handle(5, s.Handle)
	w.Handle(330, s.Owner)
	w.Pair(100, "AcDbSymbolTableRecord")
	w.Pair(100, "AcDbTextStyleTableRecord")
	w.Pair(2, s.Name)
	w.Int(70, s.Flags)
	w.Float(40, s.FixedHeight)
	w.Float(41, s.WidthFactor)
	w.Float(50, s.ObliqueAngle)
	w.Int(71, s.GenerationFlags)
	w.Float(42, s.LastHeightUsed)
	w.Pair(3, s.PrimaryFont)
	w.Pair(4, s.BigFont)
}
