// Package header implements the HEADER section: the version-conditional
// dictionary of named system variables described in spec.md §4.4. Each
// known variable is described declaratively (its code, value kind, and
// version range); unknown variables are retained verbatim so they
// survive a round-trip at the same target version.
package header

import "github.com/zooyer/godxf/version"

// Kind identifies the shape of a header variable's value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindPoint2D
	KindPoint3D
)

// Variable is one row of the static header schema table: a name, the
// group code its value is keyed by (point kinds imply code, code+10,
// [code+20]), the value's kind, the version range in which AutoCAD
// recognises it, and the value a freshly constructed Header carries
// before any client mutation.
type Variable struct {
	Name       string
	Code       int
	Kind       Kind
	MinVersion version.Version
	MaxVersion version.Version
	Default    any
}

// InRange reports whether v is within [Variable.MinVersion,
// Variable.MaxVersion].
func (hv Variable) InRange(v version.Version) bool {
	return v.AtLeast(hv.MinVersion) && v.AtMost(hv.MaxVersion)
}
