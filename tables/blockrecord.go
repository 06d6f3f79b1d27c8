package tables

import "github.com/zooyer/godxf/core"

// BlockRecord is a BLOCK_RECORD table record (R13+). It is the handle
// anchor the BLOCKS section's Block.Owner field points back to.
type BlockRecord struct {
	Handle       uint64
	Owner        uint64
	Name         string
	Flags        int
	LayoutHandle uint64
}

func (b *BlockRecord) RecordName() string { return b.Name }

func decodeBlockRecord(r *core.Reader) (*BlockRecord, error) {
	b := &BlockRecord{}
	err := decodeCommonAndFields(r, &b.Handle, &b.Owner, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			b.Name = p.Value
		case 70:
			b.Flags = atoi(p.Value)
		case 340:
			b.LayoutHandle, _ = core.ParseHandle(p.Value)
		}
		return nil
	})
	return b, err
}

func encodeBlockRecord(w *core.Writer, b *BlockRecord) {
	w.Pair(0, "BLOCK_RECORD")
	w.Handle(5, b.Handle)
	w.Handle(330, b.Owner)
	w.Pair(100, "AcDbSymbolTableRecord")
	w.Pair(100, "AcDbBlockTableRecord")
	w.Pair(2, b.Name)
	w.Int(70, b.Flags)
	if b.LayoutHandle != 0 {
		w.Handle(340, b.LayoutHandle)
	}
}
