// Package entities implements the ENTITIES section: the open-ended set
// of graphical object types, dispatched through a compile-time registry,
// per spec.md §4.7.
package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/dxferr"
	"github.com/zooyer/godxf/version"
	"github.com/zooyer/godxf/xdata"
)

// Entity is implemented by every concrete entity type (LINE, CIRCLE,
// INSERT, ...). Decode consumes pairs starting immediately after the
// 0/<TYPE> marker that identified it, up to but not including the next
// 0-code pair. Encode's target version governs which codes it emits:
// per spec.md §3, the set of emitted codes is a pure function of kind,
// field values, and target version.
type Entity interface {
	Decode(r *core.Reader) error
	Encode(w *core.Writer, target version.Version)
	TypeName() string
	GetHandle() uint64
	SetHandle(h uint64)
}

// Header holds the fields common to every entity: handle/owner linkage,
// presentation (layer, color, linetype, lineweight, transparency), and
// the extension groups and XData that ride along regardless of entity
// kind, per spec.md §4.7.
type Header struct {
	Handle       uint64
	Owner        uint64
	Layer        string
	Color        int // 62, core.ColorByLayer when absent
	LineType     string
	LineWeight   int
	Transparency core.Transparency
	Ext          []*xdata.Group
	XData        []*xdata.XData
}

func newHeader() Header {
	return Header{
		Color:        core.ColorByLayer,
		LineType:     "BYLAYER",
		LineWeight:   -1,
		Transparency: core.Transparency{ByLayer: true},
	}
}

// GetHandle and SetHandle satisfy the Entity interface's handle
// accessors by promotion: every concrete entity type embeds Header by
// value, so these methods reach its field through the embedding
// struct's pointer receiver automatically.
func (h *Header) GetHandle() uint64   { return h.Handle }
func (h *Header) SetHandle(v uint64) { h.Handle = v }

// decodeCommon reads one common-header pair. It reports whether the code
// was one it recognized.
func (h *Header) decodeCommon(code int, p core.CodePair) bool {
	switch code {
	case 5:
		h.Handle, _ = core.ParseHandle(p.Value)
	case 330:
		h.Owner, _ = core.ParseHandle(p.Value)
	case 8:
		h.Layer = p.Value
	case 62:
		h.Color = atoi(p.Value)
	case 6:
		h.LineType = p.Value
	case 370:
		h.LineWeight = atoi(p.Value)
	case 440:
		h.Transparency = core.DecodeTransparency(atoi(p.Value))
	case 100:
		// subclass marker, no state
	default:
		return false
	}
	return true
}

func (h *Header) encodeCommon(w *core.Writer, target version.Version) {
	if h.Handle != 0 {
		w.Handle(5, h.Handle)
	}
	if h.Owner != 0 {
		w.Handle(330, h.Owner)
	}
	w.Pair(8, h.Layer)
	if h.Color != core.ColorByLayer {
		w.Int(62, h.Color)
	}
	if h.LineType != "" && h.LineType != "BYLAYER" {
		w.Pair(6, h.LineType)
	}
	if target.SupportsLineWeight() && h.LineWeight != -1 {
		w.Int(370, h.LineWeight)
	}
	if target.SupportsTransparency() && !h.Transparency.ByLayer {
		w.Int(440, h.Transparency.Encode())
	}
}

// writeSubclass emits a subclass marker (100/name) if target supports
// them; pre-R13 targets had a flat entity grammar and carry none, per
// spec.md §4.6.
func writeSubclass(w *core.Writer, target version.Version, name string) {
	if target.SupportsSubclassMarkers() {
		w.Pair(100, name)
	}
}

// decodeExtras handles the extension-group (102) and XData (1001) groups
// that may trail any entity body, regardless of kind.
func decodeExtras(r *core.Reader, h *Header) error {
	for {
		peek, err := r.Peek()
		if err != nil {
			return dxferr.Wrap(dxferr.UnexpectedEof, err)
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

// Factory constructs an empty Entity of a particular kind.
type Factory func() Entity

var registry = map[string]Factory{}

// Register adds an entity constructor under its DXF type name (e.g.
// "LINE"). Called from each entity kind's init.
func Register(typeName string, factory Factory) {
	registry[typeName] = factory
}

// New constructs an entity of the given type name, or nil if the type
// is not registered.
func New(typeName string) Entity {
	if f, ok := registry[typeName]; ok {
		return f()
	}
	return nil
}

// Known reports whether typeName has a registered factory.
func Known(typeName string) bool {
	_, ok := registry[typeName]
	return ok
}
