// Package version identifies the AutoCAD release a Document targets and
// maps it to/from the $ACADVER token on the wire.
package version

import (
	"fmt"
	"strings"

	"github.com/zooyer/godxf/dxferr"
)

// Version is an AutoCAD release, ordered so comparisons (<, <=, AtLeast)
// express "supports features introduced in release X".
type Version int

const (
	R9 Version = iota
	R10
	R11
	R12
	R13
	R14
	R2000
	R2004
	R2007
	R2010
	R2013
)

// Latest is the newest release this codec understands. Per spec.md §9
// Open Question (b), any file declaring a release newer than Latest is
// accepted and treated as Latest.
const Latest = R2013

var names = map[Version]string{
	R9: "R9", R10: "R10", R11: "R11", R12: "R12",
	R13: "R13", R14: "R14", R2000: "R2000", R2004: "R2004",
	R2007: "R2007", R2010: "R2010", R2013: "R2013",
}

func (v Version) String() string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("Version(%d)", int(v))
}

// acadver maps the $ACADVER token to the Version it names. R11 and R12
// share the wire token AC1009; the codec always decodes that token as
// R12, the more capable of the pair, and R11-specific behaviour (there
// is none this codec distinguishes) is expressed as "R12 or later" gates
// never firing below R12's own features.
var acadver = map[string]Version{
	"AC1004": R9,
	"AC1006": R10,
	"AC1009": R12,
	"AC1012": R13,
	"AC1014": R14,
	"AC1015": R2000,
	"AC1018": R2004,
	"AC1021": R2007,
	"AC1024": R2010,
	"AC1027": R2013,
}

var acadverByVersion = map[Version]string{
	R9: "AC1004", R10: "AC1006", R11: "AC1009", R12: "AC1009",
	R13: "AC1012", R14: "AC1014", R2000: "AC1015", R2004: "AC1018",
	R2007: "AC1021", R2010: "AC1024", R2013: "AC1027",
}

// ACADVER returns the $ACADVER token to write for v.
func (v Version) ACADVER() string {
	if s, ok := acadverByVersion[v]; ok {
		return s
	}
	return acadverByVersion[Latest]
}

// Parse decodes a raw $ACADVER token into a Version. An unrecognised
// token that is still shaped like an AutoCAD version token (ACnnnn) and
// numerically newer than Latest is clamped to Latest, the permissive
// policy spec.md §9 calls out; anything else is ErrUnknownVersion.
func Parse(token string) (Version, error) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if v, ok := acadver[token]; ok {
		return v, nil
	}
	if strings.HasPrefix(token, "AC") && len(token) == 6 && strings.Trim(token[2:], "0123456789") == "" {
		var newest string
		for t := range acadver {
			if newest == "" || t > newest {
				newest = t
			}
		}
		if token > newest {
			return Latest, nil
		}
	}
	return 0, dxferr.Newf(dxferr.UnknownVersion, "unrecognised $ACADVER token %q", token)
}

// ParseName decodes a release name such as "R2013" or "r12" into a
// Version, for callers working with human-facing names rather than wire
// $ACADVER tokens (dxfcli's --target flag).
func ParseName(name string) (Version, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for v, n := range names {
		if n == name {
			return v, nil
		}
	}
	return 0, dxferr.Newf(dxferr.UnknownVersion, "unrecognised release name %q", name)
}

// AtLeast reports whether v supports everything introduced at or before
// min — i.e. v >= min.
func (v Version) AtLeast(min Version) bool {
	return v >= min
}

// AtMost reports whether v <= max.
func (v Version) AtMost(max Version) bool {
	return v <= max
}

// SupportsClasses reports whether the CLASSES section applies to v
// (R13+, per spec.md §6).
func (v Version) SupportsClasses() bool { return v.AtLeast(R13) }

// SupportsObjects reports whether the OBJECTS section applies to v
// (R13+, per spec.md §6).
func (v Version) SupportsObjects() bool { return v.AtLeast(R13) }

// SupportsSubclassMarkers reports whether 100/AcDb... subclass markers
// are emitted for v (R13+; earlier releases had a flat entity grammar).
func (v Version) SupportsSubclassMarkers() bool { return v.AtLeast(R13) }

// SupportsLineWeight reports whether a per-entity lineweight override
// (group 370) is written for v. AutoCAD added per-entity lineweight in
// R2000; earlier releases only carried it on LAYER table records.
func (v Version) SupportsLineWeight() bool { return v.AtLeast(R2000) }

// SupportsTransparency reports whether per-entity transparency (group
// 440) is written for v (R2000+).
func (v Version) SupportsTransparency() bool { return v.AtLeast(R2000) }

// SupportsHandles reports whether handles (group 5/330) are written for
// v. AutoCAD made handles mandatory starting at R13; they are optional
// but commonly present from R12 onward once $HANDLING is enabled, so the
// codec always retains handles it read and always assigns them on save
// regardless of target version — this gate exists for documentation and
// is not currently used to suppress handle emission.
func (v Version) SupportsHandles() bool { return true }
