package core

import (
	"fmt"
	"io"
)

// Writer emits the classic two-line ASCII framing with CRLF line endings,
// per spec.md §6 ("write CRLF"). It never emits the compact single-line
// framing, which is accepted on read only.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps an io.Writer for pair emission.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first write error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Pair writes a single code/value pair.
func (w *Writer) Pair(code int, value string) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, "%3d\r\n%s\r\n", code, value)
}

// String is an alias for Pair kept for call-site readability at string
// group codes.
func (w *Writer) String(code int, value string) { w.Pair(code, value) }

// Int writes an integer-family pair (codes 60-79, 90-99, 170-179, ...).
func (w *Writer) Int(code int, value int) {
	w.Pair(code, fmt.Sprintf("%d", value))
}

// Float writes a float-family pair with the fixed six-decimal precision
// AutoCAD itself writes for group codes 10-59/140-149/210-239.
func (w *Writer) Float(code int, value float64) {
	w.Pair(code, fmt.Sprintf("%.6f", value))
}

// Bool writes a bool-family pair as "0"/"1".
func (w *Writer) Bool(code int, value bool) {
	w.Pair(code, FormatBool(value))
}

// Handle writes a handle-family pair (codes 5, 105, 320-329, 330-369,
// 390-399, 480-481) as uppercase hex.
func (w *Writer) Handle(code int, value uint64) {
	w.Pair(code, FormatHandle(value))
}

// Point writes a point's X/Y/Z as three consecutive codes, base, base+10,
// base+20 (e.g. 10/20/30), per the DXF convention of grouping coordinate
// triples by tens.
func (w *Writer) Point(base int, p Point) {
	w.Float(base, p.X)
	w.Float(base+10, p.Y)
	w.Float(base+20, p.Z)
}

// Point2D writes only X/Y, used by 2D-only fields like LWPOLYLINE
// vertices.
func (w *Writer) Point2D(base int, p Point) {
	w.Float(base, p.X)
	w.Float(base+10, p.Y)
}
