package blocks

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/dxferr"
	"github.com/zooyer/godxf/tables"
	"github.com/zooyer/godxf/version"
)

// Blocks is the BLOCKS section: every Block definition, keyed by name
// the same way a symbol table is.
type Blocks = tables.Section[*Block]

// New returns an empty Blocks section.
func New() *Blocks {
	return tables.NewSection[*Block]()
}

// DecodeSection reads the BLOCKS section body: zero or more BLOCK
// definitions until 0/ENDSEC.
func DecodeSection(r *core.Reader) (*Blocks, error) {
	out := New()
	for {
		peek, err := r.Peek()
		if err != nil {
			return nil, dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.Code == 0 && peek.Value != "BLOCK" {
			return out, nil
		}
		if peek.Code != 0 {
			return nil, dxferr.Newf(dxferr.UnexpectedCode, "expected 0/BLOCK, got code %d", peek.Code).WithPair(peek.Code, peek.Value, peek.Offset)
		}
		if _, err := r.Advance(); err != nil {
			return nil, err
		}
		b, err := Decode(r)
		if err != nil {
			return nil, err
		}
		out.Add(b)
	}
}

// EncodeSection writes every block in insertion order, targeting target.
func EncodeSection(w *core.Writer, blocks *Blocks, target version.Version) {
	w.Pair(0, "SECTION")
	w.Pair(2, "BLOCKS")
	for _, b := range blocks.All() {
		Encode(w, b, target)
	}
	w.Pair(0, "ENDSEC")
}
