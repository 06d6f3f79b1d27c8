package objects

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

func TestDictionaryDecode(t *testing.T) {
	src := "5\n1\n280\n1\n281\n1\n3\nACAD_GROUP\n350\n2\n0\nENDSEC\n"
	r := core.NewReader(src)
	d := &Dictionary{}
	require.NoError(t, d.Decode(r))
	h, ok := d.Get("ACAD_GROUP")
	require.True(t, ok)
	assert.Equal(t, uint64(2), h)
}

func TestXRecordPreservesUnknownPairs(t *testing.T) {
	src := "280\n0\n1\nfoo\n90\n42\n0\nENDSEC\n"
	r := core.NewReader(src)
	x := &XRecord{}
	require.NoError(t, x.Decode(r))
	require.Len(t, x.Pairs, 2)

	var buf bytes.Buffer
	x.Encode(core.NewWriter(&buf), version.Latest)
	assert.Contains(t, buf.String(), "foo")
}

func TestObjectsSectionRoundTrip(t *testing.T) {
	objs := []Object{
		&Dictionary{Keys: []string{"A"}, Values: []uint64{5}},
		&Group{Description: "mine"},
	}
	var buf bytes.Buffer
	EncodeSection(core.NewWriter(&buf), objs, version.Latest)

	r := core.NewReader(buf.String())
	// skip the 0/SECTION and 2/OBJECTS pairs the way the document facade would
	_, _ = r.Advance()
	_, _ = r.Advance()
	got, err := DecodeSection(r)
	require.NoError(t, err)
	require.Len(t, got, 2)
	d, ok := got[0].(*Dictionary)
	require.True(t, ok)
	val, ok := d.Get("A")
	require.True(t, ok)
	assert.Equal(t, uint64(5), val)
}
