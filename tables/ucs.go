package tables

import "github.com/zooyer/godxf/core"

// UCS is a UCS table record.
type UCS struct {
	Handle uint64
	Owner  uint64
	Name   string
	Flags  int
	Origin core.Point
	XAxis  core.Point
	YAxis  core.Point
}

func (u *UCS) RecordName() string { return u.Name }

func decodeUCS(r *core.Reader) (*UCS, error) {
	u := &UCS{}
	err := decodeCommonAndFields(r, &u.Handle, &u.Owner, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			u.Name = p.Value
		case 70:
			u.Flags = atoi(p.Value)
		case 10:
			u.Origin.X = atof(p.Value)
		case 20:
			u.Origin.Y = atof(p.Value)
		case 30:
			u.Origin.Z = atof(p.Value)
		case 11:
			u.XAxis.X = atof(p.Value)
		case 21:
			u.XAxis.Y = atof(p.Value)
		case 31:
			u.XAxis.Z = atof(p.Value)
		case 12:
			u.YAxis.X = atof(p.Value)
		case 22:
			u.YAxis.Y = atof(p.Value)
		case 32:
			u.YAxis.Z = atof(p.Value)
		}
		return nil
	})
	return u, err
}

func encodeUCS(w *core.Writer, u *UCS) {
	w.Pair(0, "UCS")
	w.Handle(5, u.Handle)
	w.Handle(330, u.Owner)
	w.Pair(100, "AcDbSymbolTableRecord")
	w.Pair(100, "AcDbUCSTableRecord")
	w.Pair(2, u.Name)
	w.Int(70, u.Flags)
	w.Point(10, u.Origin)
	w.Point(11, u.XAxis)
	w.Point(12, u.YAxis)
}
