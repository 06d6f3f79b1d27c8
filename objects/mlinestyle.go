package objects

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// MLineStyle is an MLINESTYLE object: the named style a multi-line
// entity refers to, made of parallel offset elements.
type MLineStyle struct {
	Header
	Name        string
	Description string
	Flags       int
	Elements    []MLineElement
}

// MLineElement is one parallel line within an MLINESTYLE.
type MLineElement struct {
	Offset   float64
	Color    int
	LineType string
}

func init() {
	Register("MLINESTYLE", func() Object { return &MLineStyle{} })
}

func (m *MLineStyle) TypeName() string { return "MLINESTYLE" }

func (m *MLineStyle) Decode(r *core.Reader) error {
	var pending *MLineElement
	flush := func() {
		if pending != nil {
			m.Elements = append(m.Elements, *pending)
			pending = nil
		}
	}
	err := decodeBody(r, &m.Header, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			m.Name = p.Value
		case 3:
			m.Description = p.Value
		case 70:
			m.Flags = atoi(p.Value)
		case 49:
			flush()
			pending = &MLineElement{Offset: atof(p.Value)}
		case 62:
			if pending != nil {
				pending.Color = atoi(p.Value)
			}
		case 6:
			if pending != nil {
				pending.LineType = p.Value
			}
		}
		return nil
	})
	flush()
	return err
}

func (m *MLineStyle) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "MLINESTYLE")
	m.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbMlineStyle")
	w.Pair(2, m.Name)
	w.Int(70, m.Flags)
	w.Pair(3, m.Description)
	w.Int(71, len(m.Elements))
	for _, e := range m.Elements {
		w.Float(49, e.Offset)
		w.Int(62, e.Color)
		w.Pair(6, e.LineType)
	}
	encodeExtras(w, &m.Header)
}
