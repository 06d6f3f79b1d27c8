package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Solid is a SOLID entity: a filled triangle or quadrilateral given by
// up to four corner points (the fourth repeats the third for a
// triangle).
type Solid struct {
	Header
	Corners [4]core.Point
}

func init() {
	Register("SOLID", func() Entity { return &Solid{Header: newHeader()} })
}

func (s *Solid) TypeName() string { return "SOLID" }

func (s *Solid) Decode(r *core.Reader) error {
	return decodeBody(r, &s.Header, func(code int, p core.CodePair) error {
		idx, axis := solidField(code)
		if idx < 0 {
			return nil
		}
		switch axis {
		case 0:
			s.Corners[idx].X = atof(p.Value)
		case 1:
			s.Corners[idx].Y = atof(p.Value)
		case 2:
			s.Corners[idx].Z = atof(p.Value)
		}
		return nil
	})
}

func solidField(code int) (idx, axis int) {
	switch {
	case code >= 10 && code <= 14:
		return code - 10, 0
	case code >= 20 && code <= 24:
		return code - 20, 1
	case code >= 30 && code <= 34:
		return code - 30, 2
	}
	return -1, 0
}

func (s *Solid) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "SOLID")
	s.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbTrace")
	for i, c := range s.Corners {
		w.Point(10+i, c)
	}
	encodeExtras(w, &s.Header)
}
