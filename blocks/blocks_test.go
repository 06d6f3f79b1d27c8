package blocks

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

func TestDecodeBlockWithEntity(t *testing.T) {
	src := "0\nBLOCK\n5\n20\n330\n1F\n8\n0\n2\nDOOR\n70\n0\n10\n0.0\n20\n0.0\n30\n0.0\n3\nDOOR\n0\nLINE\n8\n0\n10\n0.0\n20\n0.0\n11\n1.0\n21\n0.0\n0\nENDBLK\n5\n21\n8\n0\n0\nENDSEC\n"
	r := core.NewReader(src)
	bs, err := DecodeSection(r)
	require.NoError(t, err)
	require.Equal(t, 1, bs.Len())
	b, ok := bs.Get("DOOR")
	require.True(t, ok)
	require.Len(t, b.Entities, 1)
	assert.Equal(t, "LINE", b.Entities[0].TypeName())
}

func TestBlockRoundTrip(t *testing.T) {
	bs := New()
	bs.Add(&Block{Name: "WINDOW", Layer: "0", EndLayer: "0"})

	var buf bytes.Buffer
	EncodeSection(core.NewWriter(&buf), bs, version.Latest)

	r := core.NewReader(buf.String())
	// skip the 0/SECTION and 2/BLOCKS framing the way the document facade would
	_, _ = r.Advance()
	_, _ = r.Advance()
	got, err := DecodeSection(r)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	b, ok := got.Get("WINDOW")
	require.True(t, ok)
	assert.Equal(t, "WINDOW", b.Name)
}
