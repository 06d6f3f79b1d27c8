// Package blocks implements the BLOCKS section: named collections of
// entities that INSERT references point at, per spec.md §4.6.
package blocks

import (
	"strconv"
	"strings"

	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/dxferr"
	"github.com/zooyer/godxf/entities"
	"github.com/zooyer/godxf/version"
)

// BlockFlags is the group-70 bitset on a BLOCK header.
type BlockFlags int

const (
	BlockAnonymous    BlockFlags = 1
	BlockHasAttdefs   BlockFlags = 2
	BlockIsXref       BlockFlags = 4
	BlockXrefOverlay  BlockFlags = 16
	BlockIsExternal   BlockFlags = 32
)

func (f BlockFlags) has(bit BlockFlags) bool  { return f&bit != 0 }
func (f BlockFlags) Anonymous() bool          { return f.has(BlockAnonymous) }
func (f BlockFlags) HasAttdefs() bool         { return f.has(BlockHasAttdefs) }
func (f BlockFlags) IsXref() bool             { return f.has(BlockIsXref) }
func (f BlockFlags) XrefOverlay() bool        { return f.has(BlockXrefOverlay) }
func (f BlockFlags) IsExternal() bool         { return f.has(BlockIsExternal) }

// Block is one BLOCK ... ENDBLK definition.
type Block struct {
	Handle       uint64
	Owner        uint64
	Name         string
	Flags        BlockFlags
	BasePoint    core.Point
	XrefPath     string
	Layer        string
	Entities     []entities.Entity
	EndHandle    uint64
	EndLayer     string
}

// RecordName satisfies tables.Named so a Block can be looked up by name
// the same way a symbol-table record is.
func (b *Block) RecordName() string { return b.Name }

// decodeState is the BLOCK/ENDBLK reader's explicit state machine, per
// spec.md §4.6: reading the BLOCK header, then entities, then the
// ENDBLK trailer.
type decodeState int

const (
	stateHeader decodeState = iota
	stateEntities
	stateEnd
)

// Decode reads one block starting at the 0/BLOCK pair (already
// consumed by the caller) through 0/ENDBLK (consumed here).
func Decode(r *core.Reader) (*Block, error) {
	b := &Block{Layer: "0", EndLayer: "0"}
	state := stateHeader

	for state == stateHeader {
		peek, err := r.Peek()
		if err != nil {
			return nil, dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.Code == 0 {
			state = stateEntities
			break
		}
		pair, err := r.Advance()
		if err != nil {
			return nil, err
		}
		switch pair.Code {
		case 5:
			b.Handle, _ = core.ParseHandle(pair.Value)
		case 330:
			b.Owner, _ = core.ParseHandle(pair.Value)
		case 8:
			b.Layer = pair.Value
		case 2, 3:
			b.Name = pair.Value
		case 70:
			b.Flags = BlockFlags(atoi(pair.Value))
		case 10:
			b.BasePoint.X = atof(pair.Value)
		case 20:
			b.BasePoint.Y = atof(pair.Value)
		case 30:
			b.BasePoint.Z = atof(pair.Value)
		case 1:
			b.XrefPath = pair.Value
		case 100:
			// subclass marker
		}
	}

	list, err := entities.ReadUntil(r, "ENDBLK")
	if err != nil {
		return nil, err
	}
	b.Entities = list
	state = stateEnd

	if _, err := r.Advance(); err != nil { // consume 0/ENDBLK
		return nil, err
	}
	for state == stateEnd {
		peek, err := r.Peek()
		if err != nil {
			return nil, dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.Code == 0 {
			return b, nil
		}
		pair, err := r.Advance()
		if err != nil {
			return nil, err
		}
		switch pair.Code {
		case 5:
			b.EndHandle, _ = core.ParseHandle(pair.Value)
		case 8:
			b.EndLayer = pair.Value
		case 330:
			// owner, already known from the BLOCK header
		case 100:
			// subclass marker
		}
	}
	return b, nil
}

// Encode writes the BLOCK header, every contained entity, then ENDBLK,
// targeting target. Per spec.md §4.6, entities written inside a block
// definition carry no individual handle of their own — the block's own
// handle governs them — so contained entities are encoded through
// entities.WriteAllWithoutHandles rather than the ordinary WriteAll.
func Encode(w *core.Writer, b *Block, target version.Version) {
	w.Pair(0, "BLOCK")
	w.Handle(5, b.Handle)
	w.Handle(330, b.Owner)
	writeSubclass(w, target, "AcDbEntity")
	w.Pair(8, b.Layer)
	writeSubclass(w, target, "AcDbBlockBegin")
	w.Pair(2, b.Name)
	w.Int(70, int(b.Flags))
	w.Point(10, b.BasePoint)
	w.Pair(3, b.Name)
	if b.XrefPath != "" {
		w.Pair(1, b.XrefPath)
	}

	entities.WriteAllWithoutHandles(w, b.Entities, target)

	w.Pair(0, "ENDBLK")
	w.Handle(5, b.EndHandle)
	w.Handle(330, b.Owner)
	writeSubclass(w, target, "AcDbEntity")
	w.Pair(8, b.EndLayer)
	writeSubclass(w, target, "AcDbBlockEnd")
}

// writeSubclass emits a subclass marker (100/name) if target supports
// them; see entities.writeSubclass for the same rule on the entity side
// of the codec.
func writeSubclass(w *core.Writer, target version.Version, name string) {
	if target.SupportsSubclassMarkers() {
		w.Pair(100, name)
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
