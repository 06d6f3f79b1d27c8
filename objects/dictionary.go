package objects

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Dictionary is a DICTIONARY object: an ordered mapping from string
// keys (group 3) to owned-object handles (group 350), the backbone of
// how the OBJECTS section organizes everything else, per spec.md §4
// component 8.
type Dictionary struct {
	Header
	HardOwner bool // 280
	Cloning   int  // 281
	Keys      []string
	Values    []uint64
}

func init() {
	Register("DICTIONARY", func() Object { return &Dictionary{} })
}

func (d *Dictionary) TypeName() string { return "DICTIONARY" }

func (d *Dictionary) Decode(r *core.Reader) error {
	var pendingKey string
	haveKey := false
	return decodeBody(r, &d.Header, func(code int, p core.CodePair) error {
		switch code {
		case 280:
			d.HardOwner = core.ParseBool(p.Value)
		case 281:
			d.Cloning = atoi(p.Value)
		case 3:
			pendingKey = p.Value
			haveKey = true
		case 350, 360:
			h, _ := core.ParseHandle(p.Value)
			if haveKey {
				d.Keys = append(d.Keys, pendingKey)
				d.Values = append(d.Values, h)
				haveKey = false
			}
		}
		return nil
	})
}

// Get looks up an entry's handle by key.
func (d *Dictionary) Get(key string) (uint64, bool) {
	for i, k := range d.Keys {
		if k == key {
			return d.Values[i], true
		}
	}
	return 0, false
}

func (d *Dictionary) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "DICTIONARY")
	d.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbDictionary")
	w.Bool(280, d.HardOwner)
	w.Int(281, d.Cloning)
	for i, k := range d.Keys {
		w.Pair(3, k)
		w.Handle(350, d.Values[i])
	}
	encodeExtras(w, &d.Header)
}
