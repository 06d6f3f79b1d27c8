package header

import (
	"strconv"
	"strings"

	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/dxferr"
	"github.com/zooyer/godxf/version"
)

// UnknownVariable preserves a header variable the schema table does not
// describe, exactly as read, so it survives a round-trip at the same
// target version (spec.md §4.4, §8 "Unknown header variables survive
// round-trip at the same target version").
type UnknownVariable struct {
	Name  string
	Pairs []core.CodePair
}

// Header is the in-memory HEADER section: known system variables keyed
// by name, plus whatever unrecognised variables were present on read.
type Header struct {
	values  map[string]any
	order   []string // insertion order of values, mirrors Table order for a fresh Header
	unknown []UnknownVariable
}

// New returns a Header with every known variable set to its schema
// default, matching the "freshly constructed" lifecycle of spec.md §3.
func New() *Header {
	h := &Header{values: make(map[string]any, len(Table))}
	for _, v := range Table {
		h.set(v.Name, v.Default)
	}
	return h
}

func (h *Header) set(name string, value any) {
	if _, exists := h.values[name]; !exists {
		h.order = append(h.order, name)
	}
	h.values[name] = value
}

// Get returns the value stored for name and whether it is set.
func (h *Header) Get(name string) (any, bool) {
	v, ok := h.values[name]
	return v, ok
}

// Set stores a value for a known or unknown variable name. Callers
// should pass a value matching the schema Kind for known variables.
func (h *Header) Set(name string, value any) {
	h.set(name, value)
}

// String/Int/Float/Point are typed convenience accessors returning the
// schema default's zero form when unset.
func (h *Header) String(name string) string {
	if v, ok := h.values[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (h *Header) Int(name string) int {
	if v, ok := h.values[name]; ok {
		if i, ok := v.(int); ok {
			return i
		}
	}
	return 0
}

func (h *Header) Float(name string) float64 {
	if v, ok := h.values[name]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return 0
}

func (h *Header) Point(name string) core.Point {
	if v, ok := h.values[name]; ok {
		if p, ok := v.(core.Point); ok {
			return p
		}
	}
	return core.Point{}
}

// Unknown returns the variables preserved verbatim because the schema
// table does not describe them.
func (h *Header) Unknown() []UnknownVariable {
	return h.unknown
}

// Version reads back $ACADVER as a parsed Version; it is the caller's
// responsibility to have validated it during Decode.
func (h *Header) Version() (version.Version, error) {
	return version.Parse(h.String("$ACADVER"))
}

// Decode reads the HEADER section body: a sequence of 9/$NAME markers
// each followed by the variable's typed pairs, until 0/ENDSEC.
func Decode(r *core.Reader) (*Header, error) {
	h := New()
	for {
		peek, err := r.Peek()
		if err != nil {
			return nil, dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.IsControl() {
			return h, nil
		}
		if peek.Code != 9 {
			return nil, dxferr.Newf(dxferr.UnexpectedCode, "expected 9/$VARNAME, got code %d", peek.Code).WithPair(peek.Code, peek.Value, peek.Offset)
		}
		nameTag, err := r.Advance()
		if err != nil {
			return nil, err
		}
		name := nameTag.Value

		schema, known := Lookup(name)
		if !known {
			unknown, err := readUnknown(r, name)
			if err != nil {
				return nil, err
			}
			h.unknown = append(h.unknown, unknown)
			continue
		}

		value, err := decodeValue(r, schema)
		if err != nil {
			return nil, err
		}
		h.set(name, value)
	}
}

func readUnknown(r *core.Reader, name string) (UnknownVariable, error) {
	u := UnknownVariable{Name: name}
	for {
		peek, err := r.Peek()
		if err != nil || peek.Code == 9 || peek.IsControl() {
			return u, nil
		}
		pair, err := r.Advance()
		if err != nil {
			return UnknownVariable{}, err
		}
		u.Pairs = append(u.Pairs, pair)
	}
}

func decodeValue(r *core.Reader, schema Variable) (any, error) {
	switch schema.Kind {
	case KindString:
		p, err := expectCode(r, schema.Code)
		if err != nil {
			return nil, err
		}
		return p.Value, nil
	case KindInt:
		p, err := expectCode(r, schema.Code)
		if err != nil {
			return nil, err
		}
		i, err := strconv.Atoi(strings.TrimSpace(p.Value))
		if err != nil {
			return nil, dxferr.Newf(dxferr.BadPair, "header %s: %v", schema.Name, err).WithPair(p.Code, p.Value, p.Offset)
		}
		return i, nil
	case KindFloat:
		p, err := expectCode(r, schema.Code)
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
		if err != nil {
			return nil, dxferr.Newf(dxferr.BadPair, "header %s: %v", schema.Name, err).WithPair(p.Code, p.Value, p.Offset)
		}
		return f, nil
	case KindPoint2D, KindPoint3D:
		var pt core.Point
		px, err := expectCode(r, schema.Code)
		if err != nil {
			return nil, err
		}
		pt.X = parseFloatOrZero(px.Value)
		py, err := expectCode(r, schema.Code+10)
		if err != nil {
			return nil, err
		}
		pt.Y = parseFloatOrZero(py.Value)
		if schema.Kind == KindPoint3D {
			if peek, err := r.Peek(); err == nil && peek.Code == schema.Code+20 {
				pz, err := r.Advance()
				if err != nil {
					return nil, err
				}
				pt.Z = parseFloatOrZero(pz.Value)
			}
		}
		return pt, nil
	default:
		return nil, dxferr.Newf(dxferr.BadPair, "header %s: unsupported kind", schema.Name)
	}
}

func parseFloatOrZero(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func expectCode(r *core.Reader, code int) (core.CodePair, error) {
	peek, err := r.Peek()
	if err != nil {
		return core.CodePair{}, dxferr.Wrap(dxferr.UnexpectedEof, err)
	}
	if peek.Code != code {
		return core.CodePair{}, dxferr.Newf(dxferr.UnexpectedCode, "expected code %d, got %d", code, peek.Code).WithPair(peek.Code, peek.Value, peek.Offset)
	}
	return r.Advance()
}

// Encode emits the HEADER section body for target, writing only
// variables whose schema range covers target, plus every unknown
// variable (retained regardless of target, since its original version
// applicability is unknown — see spec.md §4.4).
func Encode(w *core.Writer, h *Header, target version.Version) {
	for _, name := range h.order {
		schema, known := Lookup(name)
		if !known || !schema.InRange(target) {
			continue
		}
		value := h.values[name]
		w.Pair(9, name)
		encodeValue(w, schema, value)
	}
	for _, u := range h.unknown {
		w.Pair(9, u.Name)
		for _, p := range u.Pairs {
			w.Pair(p.Code, p.Value)
		}
	}
}

func encodeValue(w *core.Writer, schema Variable, value any) {
	switch schema.Kind {
	case KindString:
		w.Pair(schema.Code, value.(string))
	case KindInt:
		w.Int(schema.Code, value.(int))
	case KindFloat:
		w.Float(schema.Code, value.(float64))
	case KindPoint2D:
		w.Point2D(schema.Code, value.(core.Point))
	case KindPoint3D:
		w.Point(schema.Code, value.(core.Point))
	}
}
