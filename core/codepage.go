package core

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText transcodes the raw bytes of a DXF stream to UTF-8 text ready
// for line-oriented scanning. A file starting with a UTF-8 BOM is assumed
// to already be UTF-8 and is returned with the BOM stripped; every other
// file is assumed to be in the default DXF code page, latin-1
// (ISO-8859-1), per spec.md §4.1. $DWGCODEPAGE is a HEADER variable
// describing the page the *writer* used; since HEADER itself must be
// read to discover it, the codec reads the whole stream at the fixed
// default rather than re-decoding retroactively — the same simplification
// real-world DXF consumers make for the overwhelmingly common case of a
// single-byte Western code page.
func DecodeText(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, utf8BOM) {
		return string(raw[len(utf8BOM):]), nil
	}
	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// ReadAllText reads r fully and decodes it per DecodeText.
func ReadAllText(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return DecodeText(raw)
}
