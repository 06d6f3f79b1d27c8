package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Face3D is a 3DFACE entity: a filled triangle or quadrilateral in full
// 3D, with an edge-visibility bitmask.
type Face3D struct {
	Header
	Corners     [4]core.Point
	EdgeFlags   int
}

func init() {
	Register("3DFACE", func() Entity { return &Face3D{Header: newHeader()} })
}

func (f *Face3D) TypeName() string { return "3DFACE" }

func (f *Face3D) Decode(r *core.Reader) error {
	return decodeBody(r, &f.Header, func(code int, p core.CodePair) error {
		if code == 70 {
			f.EdgeFlags = atoi(p.Value)
			return nil
		}
		idx, axis := solidField(code)
		if idx < 0 {
			return nil
		}
		switch axis {
		case 0:
			f.Corners[idx].X = atof(p.Value)
		case 1:
			f.Corners[idx].Y = atof(p.Value)
		case 2:
			f.Corners[idx].Z = atof(p.Value)
		}
		return nil
	})
}

func (f *Face3D) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "3DFACE")
	f.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbFace")
	for i, c := range f.Corners {
		w.Point(10+i, c)
	}
	if f.EdgeFlags != 0 {
		w.Int(70, f.EdgeFlags)
	}
	encodeExtras(w, &f.Header)
}
