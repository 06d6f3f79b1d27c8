package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/godxf/dxferr"
)

func collect(t *testing.T, r *Reader) []CodePair {
	t.Helper()
	var pairs []CodePair
	for r.ItemsRemain() {
		p, err := r.Advance()
		require.NoError(t, err)
		pairs = append(pairs, CodePair{Code: p.Code, Value: p.Value})
	}
	return pairs
}

func TestReader_ClassicFraming(t *testing.T) {
	r := NewReader("0\nSECTION\n2\nHEADER\n0\nENDSEC\n")
	got := collect(t, r)
	assert.Equal(t, []CodePair{
		{Code: 0, Value: "SECTION"},
		{Code: 2, Value: "HEADER"},
		{Code: 0, Value: "ENDSEC"},
	}, got)
}

func TestReader_CRLFTolerant(t *testing.T) {
	r := NewReader("0\r\nSECTION\r\n2\r\nHEADER\r\n0\r\nENDSEC\r\n")
	got := collect(t, r)
	require.Len(t, got, 3)
	assert.Equal(t, "SECTION", got[0].Value)
}

func TestReader_MixedLineEndings(t *testing.T) {
	r := NewReader("0\nSECTION\r\n2\r\nHEADER\n0\nENDSEC\n")
	got := collect(t, r)
	require.Len(t, got, 3)
	assert.Equal(t, "HEADER", got[1].Value)
}

func TestReader_CompactFraming(t *testing.T) {
	r := NewReader("0\tSECTION\n2\tHEADER\n0\tENDSEC\n")
	got := collect(t, r)
	assert.Equal(t, []CodePair{
		{Code: 0, Value: "SECTION"},
		{Code: 2, Value: "HEADER"},
		{Code: 0, Value: "ENDSEC"},
	}, got)
}

func TestReader_SkipsComments(t *testing.T) {
	r := NewReader("999\na comment\n0\nSECTION\n")
	got := collect(t, r)
	require.Len(t, got, 1)
	assert.Equal(t, "SECTION", got[0].Value)
}

func TestReader_PeekIsIdempotent(t *testing.T) {
	r := NewReader("0\nSECTION\n2\nHEADER\n")
	p1, err := r.Peek()
	require.NoError(t, err)
	p2, err := r.Peek()
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
	adv, err := r.Advance()
	require.NoError(t, err)
	assert.Equal(t, p1, adv)
}

func TestReader_BadPair(t *testing.T) {
	r := NewReader("notacode\nSECTION\n")
	_, err := r.Advance()
	require.Error(t, err)
	var derr *dxferr.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, dxferr.BadPair, derr.Kind)
}

func TestReader_UnexpectedEOFMidPair(t *testing.T) {
	r := NewReader("0\nSECTION\n2")
	_, err := r.Advance() // consumes 0/SECTION
	require.NoError(t, err)
	_, err = r.Advance() // code 2 with no value line
	require.Error(t, err)
	var derr *dxferr.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, dxferr.UnexpectedEof, derr.Kind)
}

func TestReader_TrailingBlankLinesTolerated(t *testing.T) {
	r := NewReader("0\nEOF\n\n\n")
	got := collect(t, r)
	require.Len(t, got, 1)
	assert.Equal(t, "EOF", got[0].Value)
}

func TestReader_SkipTo(t *testing.T) {
	r := NewReader("0\nFROBNICATE\n1\nx\n0\nLINE\n")
	require.NoError(t, r.SkipTo("LINE"))
	pair, ok := func() (CodePair, bool) {
		p, err := r.Peek()
		return p, err == nil
	}()
	require.True(t, ok)
	assert.Equal(t, "LINE", pair.Value)
}
