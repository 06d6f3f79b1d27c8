// Package core implements the DXF group-code pair codec: the wire-level
// tokeniser, the one-pair-lookahead buffer reader used by every higher
// decoder, and the scalar conversions between a pair's raw text value and
// the domain types (handles, bools, colors, transparency, angles).
package core

// Family identifies which value family a group code belongs to, per the
// fixed range table in the DXF reference.
type Family int

const (
	FamilyString Family = iota
	FamilyFloat
	FamilyShort
	FamilyInt
	FamilyBool
	FamilyLong
)

// CodeFamily returns the value family a group code decodes to. Codes
// outside every known range are reported as FamilyString with ok=false so
// callers can treat them as BadPair.
func CodeFamily(code int) (family Family, ok bool) {
	switch {
	case code >= 0 && code <= 9:
		return FamilyString, true
	case code >= 10 && code <= 59:
		return FamilyFloat, true
	case code >= 60 && code <= 79:
		return FamilyShort, true
	case code >= 90 && code <= 99:
		return FamilyInt, true
	case code >= 100 && code <= 109:
		return FamilyString, true
	case code >= 110 && code <= 139:
		return FamilyFloat, true
	case code >= 140 && code <= 149:
		return FamilyFloat, true
	case code >= 160 && code <= 169:
		return FamilyLong, true
	case code >= 170 && code <= 179:
		return FamilyShort, true
	case code >= 210 && code <= 239:
		return FamilyFloat, true
	case code >= 270 && code <= 289:
		return FamilyShort, true
	case code >= 290 && code <= 299:
		return FamilyBool, true
	case code >= 300 && code <= 369:
		return FamilyString, true
	case code >= 370 && code <= 389:
		return FamilyShort, true
	case code >= 390 && code <= 399:
		return FamilyString, true
	case code >= 400 && code <= 409:
		return FamilyShort, true
	case code >= 410 && code <= 419:
		return FamilyString, true
	case code >= 420 && code <= 429:
		return FamilyInt, true
	case code >= 430 && code <= 439:
		return FamilyString, true
	case code >= 440 && code <= 449:
		return FamilyInt, true
	case code >= 450 && code <= 459:
		return FamilyInt, true
	case code >= 460 && code <= 469:
		return FamilyFloat, true
	case code >= 470 && code <= 481:
		return FamilyString, true
	case code == 999:
		return FamilyString, true
	case code >= 1000 && code <= 1003:
		return FamilyString, true
	case code >= 1004 && code <= 1009:
		return FamilyString, true // binary chunk, kept as raw text on passthrough
	case code >= 1010 && code <= 1059:
		return FamilyFloat, true
	case code >= 1060 && code <= 1070:
		return FamilyShort, true
	case code == 1071:
		return FamilyInt, true
	default:
		return FamilyString, false
	}
}

// CodePair is the atomic unit of the DXF wire format: a group code and the
// raw textual value that follows it. Callers parse Value themselves
// (ParseHandle, ParseBool, strconv); CodePair itself never fails to construct.
type CodePair struct {
	Code  int
	Value string
	// Offset is the byte offset of the code line within the source
	// stream, used for error reporting. Zero when not tracked.
	Offset int64
}

// IsControl reports whether the pair is a 0-group record marker, the
// frame boundary every section/block/entity/object decoder dispatches on.
func (p CodePair) IsControl() bool {
	return p.Code == 0
}

// IsComment reports whether the pair is a 999 comment, skipped silently
// on read and never emitted on write.
func (p CodePair) IsComment() bool {
	return p.Code == 999
}

// IsSubclassMarker reports whether the pair is a 100/AcDb... subclass
// marker partitioning a polymorphic entity or object record.
func (p CodePair) IsSubclassMarker() bool {
	return p.Code == 100
}

// IsXDataApp reports whether the pair opens a 1001 application-tagged
// XData block.
func (p CodePair) IsXDataApp() bool {
	return p.Code == 1001
}
