package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Unknown preserves an entity of a type this codec does not recognize,
// so that files from newer AutoCAD releases still round-trip per the
// forward-compatibility policy the rest of the codec follows. Common-header
// codes are decoded into Header and every other pair is kept in Pairs in
// arrival order; 100 subclass markers are not kept.
type Unknown struct {
	Header
	Kind  string
	Pairs []core.CodePair
}

func (u *Unknown) TypeName() string { return u.Kind }

func (u *Unknown) Decode(r *core.Reader) error {
	return decodeBody(r, &u.Header, func(code int, p core.CodePair) error {
		u.Pairs = append(u.Pairs, p)
		return nil
	})
}

func (u *Unknown) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, u.Kind)
	u.encodeCommon(w, target)
	for _, p := range u.Pairs {
		w.Pair(p.Code, p.Value)
	}
	encodeExtras(w, &u.Header)
}
