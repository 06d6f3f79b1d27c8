// Package dxf reads and writes AutoCAD Drawing Interchange Format
// files, R9 through R2013, per spec.md.
package dxf

import (
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/zooyer/godxf/blocks"
	"github.com/zooyer/godxf/classes"
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/dxferr"
	"github.com/zooyer/godxf/entities"
	"github.com/zooyer/godxf/header"
	"github.com/zooyer/godxf/objects"
	"github.com/zooyer/godxf/tables"
	"github.com/zooyer/godxf/version"
)

// Document is a complete parsed drawing: every section the codec
// understands. Unrecognised header variables and tables live in Header's
// and Tables' own unknown-entry lists, and unrecognised entity and object
// types as Unknown records; a section with an unrecognised name is
// skipped and not kept.
type Document struct {
	Header   *header.Header
	Classes  []classes.Class
	Tables   *tables.Tables
	Blocks   *blocks.Blocks
	Entities []entities.Entity
	Objects  []objects.Object
	// Thumbnail holds the BMP bytes of the THUMBNAILIMAGE section, nil
	// if the file carried none.
	Thumbnail []byte
	Version   version.Version
}

// New returns an empty Document ready for populating and Save-ing.
func New() *Document {
	return &Document{
		Header:  header.New(),
		Tables:  tables.New(),
		Blocks:  blocks.New(),
		Version: version.Latest,
	}
}

// Open reads and parses the DXF file at filename.
func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return Load(file)
}

// Load reads and parses a DXF stream.
func Load(r io.Reader) (*Document, error) {
	text, err := core.ReadAllText(r)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// Parse parses already-decoded DXF text (see core.DecodeText).
func Parse(text string) (*Document, error) {
	r := core.NewReader(text)
	doc := &Document{Version: version.Latest}

	for {
		peek, err := r.Peek()
		if err != nil {
			return nil, dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.Code == 0 && strings.EqualFold(peek.Value, "EOF") {
			break
		}
		if peek.Code != 0 || !strings.EqualFold(peek.Value, "SECTION") {
			if _, err := r.Advance(); err != nil {
				return nil, err
			}
			continue
		}
		if _, err := r.Advance(); err != nil {
			return nil, err
		}
		namePair, err := r.Advance()
		if err != nil {
			return nil, err
		}
		if err := doc.decodeSection(r, strings.ToUpper(namePair.Value)); err != nil {
			return nil, err
		}
	}

	if doc.Header != nil {
		if v, err := doc.Header.Version(); err == nil {
			doc.Version = v
		}
	}
	if doc.Tables == nil {
		doc.Tables = tables.New()
	}
	if doc.Blocks == nil {
		doc.Blocks = blocks.New()
	}
	return doc, nil
}

func (d *Document) decodeSection(r *core.Reader, name string) error {
	switch name {
	case "HEADER":
		h, err := header.Decode(r)
		if err != nil {
			return err
		}
		d.Header = h
	case "CLASSES":
		c, err := classes.Decode(r)
		if err != nil {
			return err
		}
		d.Classes = c
	case "TABLES":
		t, err := tables.Decode(r)
		if err != nil {
			return err
		}
		d.Tables = t
	case "BLOCKS":
		b, err := blocks.DecodeSection(r)
		if err != nil {
			return err
		}
		d.Blocks = b
	case "ENTITIES":
		list, err := entities.ReadUntil(r, "ENDSEC")
		if err != nil {
			return err
		}
		d.Entities = list
	case "OBJECTS":
		list, err := objects.DecodeSection(r)
		if err != nil {
			return err
		}
		d.Objects = list
	case "THUMBNAILIMAGE":
		raw, err := decodeThumbnail(r)
		if err != nil {
			return err
		}
		d.Thumbnail = raw
	}
	// Every decoder above stops at, without consuming, the section's
	// trailing 0/ENDSEC (or, for an unrecognized section name, at
	// whatever 0-code pair follows its unread body).
	return skipToEndsec(r)
}

func skipToEndsec(r *core.Reader) error {
	for {
		peek, err := r.Peek()
		if err != nil {
			return dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.Code == 0 && strings.EqualFold(peek.Value, "ENDSEC") {
			_, err := r.Advance()
			return err
		}
		if _, err := r.Advance(); err != nil {
			return err
		}
	}
}

func decodeThumbnail(r *core.Reader) ([]byte, error) {
	var hexDigits strings.Builder
	for {
		peek, err := r.Peek()
		if err != nil {
			return nil, dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.Code == 0 {
			break
		}
		pair, err := r.Advance()
		if err != nil {
			return nil, err
		}
		if pair.Code == 310 {
			hexDigits.WriteString(pair.Value)
		}
	}
	return hex.DecodeString(hexDigits.String())
}

// SaveFile writes the document to filename at its own Version.
func (d *Document) SaveFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return d.Save(f)
}

// Save writes the document as DXF text, targeting d.Version. Any entity,
// block, or table record with an unassigned (zero) handle is given one
// from the header's $HANDSEED counter first.
func (d *Document) Save(w io.Writer) error {
	d.assignHandles()
	d.Header.Set("$ACADVER", d.Version.ACADVER())

	cw := core.NewWriter(w)

	cw.Pair(0, "SECTION")
	cw.Pair(2, "HEADER")
	header.Encode(cw, d.Header, d.Version)
	cw.Pair(0, "ENDSEC")

	if d.Version.SupportsClasses() && len(d.Classes) > 0 {
		cw.Pair(0, "SECTION")
		cw.Pair(2, "CLASSES")
		classes.Encode(cw, d.Classes)
		cw.Pair(0, "ENDSEC")
	}

	tables.Encode(cw, d.Tables, d.Version)
	blocks.EncodeSection(cw, d.Blocks, d.Version)

	cw.Pair(0, "SECTION")
	cw.Pair(2, "ENTITIES")
	entities.WriteAll(cw, d.Entities, d.Version)
	cw.Pair(0, "ENDSEC")

	if d.Version.SupportsObjects() && len(d.Objects) > 0 {
		objects.EncodeSection(cw, d.Objects, d.Version)
	}

	if len(d.Thumbnail) > 0 {
		encodeThumbnail(cw, d.Thumbnail)
	}

	cw.Pair(0, "EOF")
	return cw.Err()
}

func encodeThumbnail(w *core.Writer, raw []byte) {
	w.Pair(0, "SECTION")
	w.Pair(2, "THUMBNAILIMAGE")
	w.Int(90, len(raw))
	encoded := strings.ToUpper(hex.EncodeToString(raw))
	const lineLen = 128 // 64 bytes per 310 line, the classic AutoCAD chunk size
	for len(encoded) > lineLen {
		w.Pair(310, encoded[:lineLen])
		encoded = encoded[lineLen:]
	}
	if len(encoded) > 0 {
		w.Pair(310, encoded)
	}
	w.Pair(0, "ENDSEC")
}

// assignHandles walks every handle-bearing record and gives any with a
// zero handle the next value from $HANDSEED, advancing the counter by
// one per assignment the way AutoCAD's own save does.
func (d *Document) assignHandles() {
	seed := d.Header.String("$HANDSEED")
	next, _ := core.ParseHandle(seed)
	if next == 0 {
		next = 1
	}
	assign := func(h *uint64) {
		if *h == 0 {
			*h = next
			next++
		}
	}

	for _, l := range d.Tables.Layer.All() {
		assign(&l.Handle)
	}
	for _, l := range d.Tables.LType.All() {
		assign(&l.Handle)
	}
	for _, s := range d.Tables.Style.All() {
		assign(&s.Handle)
	}
	for _, v := range d.Tables.View.All() {
		assign(&v.Handle)
	}
	for _, v := range d.Tables.Vport.All() {
		assign(&v.Handle)
	}
	for _, u := range d.Tables.UCS.All() {
		assign(&u.Handle)
	}
	for _, a := range d.Tables.AppID.All() {
		assign(&a.Handle)
	}
	for _, ds := range d.Tables.DimStyle.All() {
		assign(&ds.Handle)
	}
	for _, br := range d.Tables.BlockRecord.All() {
		assign(&br.Handle)
	}
	for _, b := range d.Blocks.All() {
		assign(&b.Handle)
		// Entities nested inside a block definition emit without their
		// own handle on save (the block's handle governs them), so they
		// never need one assigned.
	}
	for _, e := range d.Entities {
		assignEntity(e, &next)
	}
	for _, o := range d.Objects {
		if o.GetHandle() == 0 {
			o.SetHandle(next)
			next++
		}
	}

	d.Header.Set("$HANDSEED", core.FormatHandle(next))
}

func assignEntity(e entities.Entity, next *uint64) {
	if e.GetHandle() == 0 {
		e.SetHandle(*next)
		*next++
	}
}
