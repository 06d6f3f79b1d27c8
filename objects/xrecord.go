package objects

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// XRecord is an XRECORD object: an arbitrary bag of pairs an
// application stores in a dictionary, with no fixed schema. Apart from the
// common header and the 280 cloning flag, the codec keeps every pair in
// arrival order since it has no way to interpret them, the same
// forward-compatible tolerance it gives unknown table content.
type XRecord struct {
	Header
	CloningFlags int // 280
	Pairs        []core.CodePair
}

func init() {
	Register("XRECORD", func() Object { return &XRecord{} })
}

func (x *XRecord) TypeName() string { return "XRECORD" }

func (x *XRecord) Decode(r *core.Reader) error {
	return decodeBody(r, &x.Header, func(code int, p core.CodePair) error {
		if code == 280 {
			x.CloningFlags = atoi(p.Value)
			return nil
		}
		x.Pairs = append(x.Pairs, p)
		return nil
	})
}

func (x *XRecord) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "XRECORD")
	x.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbXrecord")
	w.Int(280, x.CloningFlags)
	for _, p := range x.Pairs {
		w.Pair(p.Code, p.Value)
	}
	encodeExtras(w, &x.Header)
}
