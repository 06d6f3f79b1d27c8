// Package objects implements the OBJECTS section (R13+): non-graphical
// objects such as dictionaries, layouts, and extended records, per
// spec.md §4 component 8.
package objects

import (
	"strconv"
	"strings"

	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
	"github.com/zooyer/godxf/xdata"
)

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

// Object is implemented by every concrete object type. Decode consumes
// pairs starting immediately after the 0/<TYPE> marker, up to but not
// including the next 0-code pair.
type Object interface {
	Decode(r *core.Reader) error
	Encode(w *core.Writer, target version.Version)
	TypeName() string
	GetHandle() uint64
	SetHandle(h uint64)
}

// Header holds the fields every object carries: its own handle, its
// owner (almost always a dictionary), and any extension/XData groups.
type Header struct {
	Handle uint64
	Owner  uint64
	Ext    []*xdata.Group
	XData  []*xdata.XData
}

func (h *Header) decodeCommon(code int, p core.CodePair) bool {
	switch code {
	case 5:
		h.Handle, _ = core.ParseHandle(p.Value)
	case 330:
		h.Owner, _ = core.ParseHandle(p.Value)
	case 100:
	default:
		return false
	}
	return true
}

// GetHandle and SetHandle satisfy Object's handle accessors by
// promotion; see entities.Header for the same pattern.
func (h *Header) GetHandle() uint64   { return h.Handle }
func (h *Header) SetHandle(v uint64) { h.Handle = v }

func (h *Header) encodeCommon(w *core.Writer, target version.Version) {
	if h.Handle != 0 {
		w.Handle(5, h.Handle)
	}
	if h.Owner != 0 {
		w.Handle(330, h.Owner)
	}
}

// writeSubclass emits a subclass marker (100/name) if target supports
// them; see entities.writeSubclass for the same rule on the graphical
// side of the codec.
func writeSubclass(w *core.Writer, target version.Version, name string) {
	if target.SupportsSubclassMarkers() {
		w.Pair(100, name)
	}
}

func decodeExtras(r *core.Reader, h *Header) error {
	for {
		peek, err := r.Peek()
		if err != nil {
			return err
		}
		switch {
		case peek.Code == 102:
			groups, err := xdata.ReadGroups(r)
			if err != nil {
				return err
			}
			h.Ext = append(h.Ext, groups...)
		case peek.Code == 1001:
			blocks, err := xdata.ReadAll(r)
			if err != nil {
				return err
			}
			h.XData = append(h.XData, blocks...)
		default:
			return nil
		}
	}
}

func encodeExtras(w *core.Writer, h *Header) {
	xdata.WriteGroups(w, h.Ext)
	xdata.WriteAll(w, h.XData)
}

func decodeBody(r *core.Reader, h *Header, field func(code int, p core.CodePair) error) error {
	for {
		peek, err := r.Peek()
		if err != nil {
			return err
		}
		if peek.Code == 0 {
			return nil
		}
		if peek.Code == 102 || peek.Code == 1001 {
			if err := decodeExtras(r, h); err != nil {
				return err
			}
			continue
		}
		pair, err := r.Advance()
		if err != nil {
			return err
		}
		if h.decodeCommon(pair.Code, pair) {
			continue
		}
		if err := field(pair.Code, pair); err != nil {
			return err
		}
	}
}

// Factory constructs an empty Object of a particular kind.
type Factory func() Object

var registry = map[string]Factory{}

// Register adds an object constructor under its DXF type name.
func Register(typeName string, factory Factory) {
	registry[typeName] = factory
}

// New constructs an object of the given type name, or nil if the type
// is not registered.
func New(typeName string) Object {
	if f, ok := registry[typeName]; ok {
		return f()
	}
	return nil
}
