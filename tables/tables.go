package tables

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/dxferr"
	"github.com/zooyer/godxf/version"
)

// Tables holds all nine symbol tables that make up the TABLES section.
// They are written in the fixed order below regardless of what order
// they appeared in on read, per spec.md §4.5.
type Tables struct {
	Vport       *Section[*Vport]
	LType       *Section[*LType]
	Layer       *Section[*Layer]
	Style       *Section[*Style]
	View        *Section[*View]
	UCS         *Section[*UCS]
	AppID       *Section[*AppID]
	DimStyle    *Section[*DimStyle]
	BlockRecord *Section[*BlockRecord]

	// Unknown holds entire tables whose name the codec does not
	// recognize, preserved verbatim for round-tripping.
	Unknown []UnknownTable
}

// UnknownTable is a table (or table record set) whose name is not one
// of the nine fixed tables. Its body is kept as raw pairs.
type UnknownTable struct {
	Name    string
	Handle  uint64
	Owner   uint64
	Records [][]core.CodePair
}

// New returns an empty Tables with every section initialized.
func New() *Tables {
	return &Tables{
		Vport:       NewSection[*Vport](),
		LType:       NewSection[*LType](),
		Layer:       NewSection[*Layer](),
		Style:       NewSection[*Style](),
		View:        NewSection[*View](),
		UCS:         NewSection[*UCS](),
		AppID:       NewSection[*AppID](),
		DimStyle:    NewSection[*DimStyle](),
		BlockRecord: NewSection[*BlockRecord](),
	}
}

// Decode reads the TABLES section body: a sequence of
//
//	0/TABLE 2/<name> 5/<handle> 330/<owner> <records...> 0/ENDTAB
//
// blocks, until 0/ENDSEC.
func Decode(r *core.Reader) (*Tables, error) {
	t := New()
	for {
		peek, err := r.Peek()
		if err != nil {
			return nil, dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.Code == 0 && peek.Value != "TABLE" {
			return t, nil
		}
		if peek.Code != 0 {
			return nil, dxferr.Newf(dxferr.UnexpectedCode, "expected 0/TABLE, got code %d", peek.Code).WithPair(peek.Code, peek.Value, peek.Offset)
		}
		if _, err := r.Advance(); err != nil {
			return nil, err
		}
		namePair, err := r.Advance()
		if err != nil {
			return nil, err
		}
		if namePair.Code != 2 {
			return nil, dxferr.Newf(dxferr.UnexpectedCode, "expected 2/<table name> after 0/TABLE, got code %d", namePair.Code).WithPair(namePair.Code, namePair.Value, namePair.Offset)
		}
		if err := decodeOneTable(r, t, namePair.Value); err != nil {
			return nil, err
		}
	}
}

func decodeOneTable(r *core.Reader, t *Tables, name string) error {
	var handle, owner uint64
	for {
		peek, err := r.Peek()
		if err != nil {
			return dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.Code == 5 {
			pair, _ := r.Advance()
			handle, _ = core.ParseHandle(pair.Value)
			continue
		}
		if peek.Code == 330 {
			pair, _ := r.Advance()
			owner, _ = core.ParseHandle(pair.Value)
			continue
		}
		if peek.Code == 100 {
			_, _ = r.Advance()
			continue
		}
		if peek.Code == 70 {
			// max entries hint, not retained
			_, _ = r.Advance()
			continue
		}
		break
	}

	for {
		peek, err := r.Peek()
		if err != nil {
			return dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.Code == 0 && peek.Value == "ENDTAB" {
			_, _ = r.Advance()
			return nil
		}
		if peek.Code != 0 {
			return dxferr.Newf(dxferr.UnexpectedCode, "expected a table record or 0/ENDTAB, got code %d", peek.Code).WithPair(peek.Code, peek.Value, peek.Offset)
		}
		if err := decodeOneRecord(r, t, name, handle, owner); err != nil {
			return err
		}
	}
}

func decodeOneRecord(r *core.Reader, t *Tables, table string, tableHandle, tableOwner uint64) error {
	switch table {
	case "VPORT":
		if _, err := r.Advance(); err != nil {
			return err
		}
		rec, err := decodeVport(r)
		if err != nil {
			return err
		}
		t.Vport.Handle, t.Vport.Owner = tableHandle, tableOwner
		t.Vport.Add(rec)
	case "LTYPE":
		if _, err := r.Advance(); err != nil {
			return err
		}
		rec, err := decodeLType(r)
		if err != nil {
			return err
		}
		t.LType.Handle, t.LType.Owner = tableHandle, tableOwner
		t.LType.Add(rec)
	case "LAYER":
		if _, err := r.Advance(); err != nil {
			return err
		}
		rec, err := decodeLayer(r)
		if err != nil {
			return err
		}
		t.Layer.Handle, t.Layer.Owner = tableHandle, tableOwner
		t.Layer.Add(rec)
	case "STYLE":
		if _, err := r.Advance(); err != nil {
			return err
		}
		rec, err := decodeStyle(r)
		if err != nil {
			return err
		}
		t.Style.Handle, t.Style.Owner = tableHandle, tableOwner
		t.Style.Add(rec)
	case "VIEW":
		if _, err := r.Advance(); err != nil {
			return err
		}
		rec, err := decodeView(r)
		if err != nil {
			return err
		}
		t.View.Handle, t.View.Owner = tableHandle, tableOwner
		t.View.Add(rec)
	case "UCS":
		if _, err := r.Advance(); err != nil {
			return err
		}
		rec, err := decodeUCS(r)
		if err != nil {
			return err
		}
		t.UCS.Handle, t.UCS.Owner = tableHandle, tableOwner
		t.UCS.Add(rec)
	case "APPID":
		if _, err := r.Advance(); err != nil {
			return err
		}
		rec, err := decodeAppID(r)
		if err != nil {
			return err
		}
		t.AppID.Handle, t.AppID.Owner = tableHandle, tableOwner
		t.AppID.Add(rec)
	case "DIMSTYLE":
		if _, err := r.Advance(); err != nil {
			return err
		}
		rec, err := decodeDimStyle(r)
		if err != nil {
			return err
		}
		t.DimStyle.Handle, t.DimStyle.Owner = tableHandle, tableOwner
		t.DimStyle.Add(rec)
	case "BLOCK_RECORD":
		if _, err := r.Advance(); err != nil {
			return err
		}
		rec, err := decodeBlockRecord(r)
		if err != nil {
			return err
		}
		t.BlockRecord.Handle, t.BlockRecord.Owner = tableHandle, tableOwner
		t.BlockRecord.Add(rec)
	default:
		return decodeUnknownRecord(r, t, table, tableHandle, tableOwner)
	}
	return nil
}

func decodeUnknownRecord(r *core.Reader, t *Tables, table string, handle, owner uint64) error {
	// keep the record's own 0/<TYPE> pair so Encode writes it back
	marker, err := r.Advance()
	if err != nil {
		return err
	}
	pairs := []core.CodePair{marker}
	for {
		peek, err := r.Peek()
		if err != nil {
			return dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.Code == 0 {
			break
		}
		pair, err := r.Advance()
		if err != nil {
			return err
		}
		pairs = append(pairs, pair)
	}
	for i := range t.Unknown {
		if t.Unknown[i].Name == table {
			t.Unknown[i].Records = append(t.Unknown[i].Records, pairs)
			return nil
		}
	}
	t.Unknown = append(t.Unknown, UnknownTable{Name: table, Handle: handle, Owner: owner, Records: [][]core.CodePair{pairs}})
	return nil
}

// Encode emits all nine tables, in fixed order, followed by any
// preserved unknown tables, gated appropriately by target version.
func Encode(w *core.Writer, t *Tables, target version.Version) {
	w.Pair(0, "SECTION")
	w.Pair(2, "TABLES")

	encodeTableHeader(w, "VPORT", t.Vport.Handle, t.Vport.Owner, t.Vport.Len())
	for _, v := range t.Vport.All() {
		encodeVport(w, v)
	}
	w.Pair(0, "ENDTAB")

	encodeTableHeader(w, "LTYPE", t.LType.Handle, t.LType.Owner, t.LType.Len())
	for _, v := range t.LType.All() {
		encodeLType(w, v)
	}
	w.Pair(0, "ENDTAB")

	encodeTableHeader(w, "LAYER", t.Layer.Handle, t.Layer.Owner, t.Layer.Len())
	for _, v := range t.Layer.All() {
		encodeLayer(w, v)
	}
	w.Pair(0, "ENDTAB")

	encodeTableHeader(w, "STYLE", t.Style.Handle, t.Style.Owner, t.Style.Len())
	for _, v := range t.Style.All() {
		encodeStyle(w, v)
	}
	w.Pair(0, "ENDTAB")

	encodeTableHeader(w, "VIEW", t.View.Handle, t.View.Owner, t.View.Len())
	for _, v := range t.View.All() {
		encodeView(w, v)
	}
	w.Pair(0, "ENDTAB")

	encodeTableHeader(w, "UCS", t.UCS.Handle, t.UCS.Owner, t.UCS.Len())
	for _, v := range t.UCS.All() {
		encodeUCS(w, v)
	}
	w.Pair(0, "ENDTAB")

	encodeTableHeader(w, "APPID", t.AppID.Handle, t.AppID.Owner, t.AppID.Len())
	for _, v := range t.AppID.All() {
		encodeAppID(w, v)
	}
	w.Pair(0, "ENDTAB")

	encodeTableHeader(w, "DIMSTYLE", t.DimStyle.Handle, t.DimStyle.Owner, t.DimStyle.Len())
	for _, v := range t.DimStyle.All() {
		encodeDimStyle(w, v)
	}
	w.Pair(0, "ENDTAB")

	if target.SupportsClasses() {
		encodeTableHeader(w, "BLOCK_RECORD", t.BlockRecord.Handle, t.BlockRecord.Owner, t.BlockRecord.Len())
		for _, v := range t.BlockRecord.All() {
			encodeBlockRecord(w, v)
		}
		w.Pair(0, "ENDTAB")
	}

	for _, u := range t.Unknown {
		encodeTableHeader(w, u.Name, u.Handle, u.Owner, len(u.Records))
		for _, rec := range u.Records {
			for _, p := range rec {
				w.Pair(p.Code, p.Value)
			}
		}
		w.Pair(0, "ENDTAB")
	}

	w.Pair(0, "ENDSEC")
}

func encodeTableHeader(w *core.Writer, name string, handle, owner uint64, count int) {
	w.Pair(0, "TABLE")
	w.Pair(2, name)
	w.Handle(5, handle)
	w.Handle(330, owner)
	w.Pair(100, "AcDbSymbolTable")
	w.Int(70, count)
}
