package objects

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Unknown preserves an object of a type this codec does not recognize:
// its handle and owner are decoded into Header and every other pair is
// kept in Pairs in arrival order; 100 subclass markers are not kept.
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

// ReadUntil decodes a sequence of objects, stopping (without consuming)
// at the first 0-code pair whose value matches one of stop.
func ReadUntil(r *core.Reader, stop ...string) ([]Object, error) {
	var out []Object
	for {
		peek, err := r.Peek()
		if err != nil {
			return nil, err
		}
		if peek.Code != 0 {
			return out, nil
		}
		for _, s := range stop {
			if peek.Value == s {
				return out, nil
			}
		}
		typeName := peek.Value
		if _, err := r.Advance(); err != nil {
			return nil, err
		}
		o := New(typeName)
		if o == nil {
			o = &Unknown{Kind: typeName}
		}
		if err := o.Decode(r); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
}

// WriteAll encodes every object in order, targeting target.
func WriteAll(w *core.Writer, objs []Object, target version.Version) {
	for _, o := range objs {
		o.Encode(w, target)
	}
}
