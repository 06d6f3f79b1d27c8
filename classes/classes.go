// Package classes implements the CLASSES section (R13+): registered
// class metadata describing non-fixed record types, per spec.md §4
// component 7.
package classes

import (
	"strconv"
	"strings"

	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/dxferr"
)

// Class is one CLASS record.
type Class struct {
	RecordName    string // 1
	ClassName     string // 2 (the C++ class DXF name, usually same as RecordName)
	AppName       string // 3
	ProxyFlags    int    // 90
	InstanceCount int    // 91
	WasZombie     bool   // 280
	ItemClassID   int    // 281, usually 1 for entities, 0 for objects
}

// Decode reads the CLASSES section body: zero or more 0/CLASS frames
// until 0/ENDSEC.
func Decode(r *core.Reader) ([]Class, error) {
	var classes []Class
	for {
		peek, err := r.Peek()
		if err != nil {
			return nil, dxferr.Wrap(dxferr.UnexpectedEof, err)
		}
		if peek.Code == 0 && peek.Value != "CLASS" {
			return classes, nil
		}
		if peek.Code != 0 {
			return nil, dxferr.Newf(dxferr.UnexpectedCode, "expected 0/CLASS, got code %d", peek.Code).WithPair(peek.Code, peek.Value, peek.Offset)
		}
		if _, err := r.Advance(); err != nil {
			return nil, err
		}
		c, err := decodeOne(r)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
}

func decodeOne(r *core.Reader) (Class, error) {
	var c Class
	for {
		peek, err := r.Peek()
		if err != nil || peek.Code == 0 {
			return c, nil
		}
		pair, err := r.Advance()
		if err != nil {
			return Class{}, err
		}
		switch pair.Code {
		case 1:
			c.RecordName = pair.Value
		case 2:
			c.ClassName = pair.Value
		case 3:
			c.AppName = pair.Value
		case 90:
			c.ProxyFlags = atoi(pair.Value)
		case 91:
			c.InstanceCount = atoi(pair.Value)
		case 280:
			c.WasZombie = core.ParseBool(pair.Value)
		case 281:
			c.ItemClassID = atoi(pair.Value)
		}
	}
}

// Encode emits every class as a 0/CLASS frame. Callers are expected to
// gate the call itself on version.SupportsClasses.
func Encode(w *core.Writer, classes []Class) {
	for _, c := range classes {
		w.Pair(0, "CLASS")
		w.Pair(1, c.RecordName)
		w.Pair(2, c.ClassName)
		w.Pair(3, c.AppName)
		w.Int(90, c.ProxyFlags)
		w.Int(91, c.InstanceCount)
		w.Bool(280, c.WasZombie)
		w.Int(281, c.ItemClassID)
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
