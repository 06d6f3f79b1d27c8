package tables

import "github.com/zooyer/godxf/core"

// AppID is an APPID table record: a registered application name for
// extension data (group 1001).
type AppID struct {
	Handle uint64
	Owner  uint64
	Name   string
	Flags  int
}

func (a *AppID) RecordName() string { return a.Name }

func decodeAppID(r *core.Reader) (*AppID, error) {
	a := &AppID{}
	err := decodeCommonAndFields(r, &a.Handle, &a.Owner, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			a.Name = p.Value
		case 70:
			a.Flags = atoi(p.Value)
		}
		return nil
	})
	return a, err
}

func encodeAppID(w *core.Writer, a *AppID) {
	w.Pair(0, "APPID")
	w.Handle(5, a.Handle)
	w.Handle(330, a.Owner)
	w.Pair(100, "AcDbSymbolTableRecord")
	w.Pair(100, "AcDbRegAppTableRecord")
	w.Pair(2, a.Name)
	w.Int(70, a.Flags)
}
