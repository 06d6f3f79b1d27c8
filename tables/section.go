// Package tables implements the TABLES section: the nine symbol tables
// (LAYER, LTYPE, STYLE, VIEW, VPORT, UCS, APPID, DIMSTYLE, BLOCK_RECORD),
// each a named-key ordered mapping, per spec.md §4.5.
package tables

// Named is implemented by every table record; its RecordName is the
// table-record-specific name field (group code 2).
type Named interface {
	RecordName() string
}

// Section is one symbol table: an ordered collection of records keyed by
// name, with duplicate names accepted on read and resolved last-one-wins
// in lookups while every record (including shadowed duplicates) is
// preserved in insertion order for write, per spec.md §4.5.
type Section[T Named] struct {
	Handle  uint64
	Owner   uint64
	records []T
	index   map[string]int
}

// NewSection returns an empty section.
func NewSection[T Named]() *Section[T] {
	return &Section[T]{index: make(map[string]int)}
}

// Add appends a record, updating the name index to point at it (last
// write wins).
func (s *Section[T]) Add(r T) {
	s.index[r.RecordName()] = len(s.records)
	s.records = append(s.records, r)
}

// All returns every record in insertion order, including records whose
// name was later shadowed by a duplicate.
func (s *Section[T]) All() []T {
	return s.records
}

// Get looks up a record by name; when the table has duplicate names the
// most recently added one is returned.
func (s *Section[T]) Get(name string) (T, bool) {
	i, ok := s.index[name]
	if !ok {
		var zero T
		return zero, false
	}
	return s.records[i], true
}

// Len returns the number of records, counting duplicates.
func (s *Section[T]) Len() int {
	return len(s.records)
}
