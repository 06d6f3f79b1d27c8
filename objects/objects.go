package objects

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// DecodeSection reads the OBJECTS section body until 0/ENDSEC.
func DecodeSection(r *core.Reader) ([]Object, error) {
	return ReadUntil(r, "ENDSEC")
}

// EncodeSection writes every object in order, targeting target.
func EncodeSection(w *core.Writer, objs []Object, target version.Version) {
	w.Pair(0, "SECTION")
	w.Pair(2, "OBJECTS")
	WriteAll(w, objs, target)
	w.Pair(0, "ENDSEC")
}
