package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// MText is an MTEXT entity: a multi-line paragraph. The text body
// arrives as one primary 1-code value plus zero or more 250-character
// continuation chunks on code 3, concatenated here in arrival order.
type MText struct {
	Header
	Insertion  core.Point
	Height     float64
	RefWidth   float64
	Value      string
	Style      string
	AttachPoint int
}

func init() {
	Register("MTEXT", func() Entity { return &MText{Header: newHeader(), Style: "STANDARD"} })
}

func (m *MText) TypeName() string { return "MTEXT" }

func (m *MText) Decode(r *core.Reader) error {
	var chunks []string
	err := decodeBody(r, &m.Header, func(code int, p core.CodePair) error {
		switch code {
		case 10:
			m.Insertion.X = atof(p.Value)
		case 20:
			m.Insertion.Y = atof(p.Value)
		case 30:
			m.Insertion.Z = atof(p.Value)
		case 40:
			m.Height = atof(p.Value)
		case 41:
			m.RefWidth = atof(p.Value)
		case 71:
			m.AttachPoint = atoi(p.Value)
		case 7:
			m.Style = p.Value
		case 1:
			chunks = append(chunks, p.Value)
		case 3:
			chunks = append(chunks, p.Value)
		}
		return nil
	})
	for _, c := range chunks {
		m.Value += c
	}
	return err
}

func (m *MText) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "MTEXT")
	m.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbMText")
	w.Point(10, m.Insertion)
	w.Float(40, m.Height)
	w.Float(41, m.RefWidth)
	w.Int(71, m.AttachPoint)
	const chunkSize = 250
	value := m.Value
	for len(value) > chunkSize {
		w.Pair(3, value[:chunkSize])
		value = value[chunkSize:]
	}
	w.Pair(1, value)
	w.Pair(7, m.Style)
	encodeExtras(w, &m.Header)
}
