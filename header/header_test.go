package header

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

func TestDecodeKnownVariables(t *testing.T) {
	src := "9\n$ACADVER\n1\nAC1015\n9\n$INSBASE\n10\n1.0\n20\n2.0\n30\n3.0\n0\nENDSEC\n"
	r := core.NewReader(src)
	h, err := Decode(r)
	require.NoError(t, err)
	assert.Equal(t, "AC1015", h.String("$ACADVER"))
	assert.Equal(t, core.Point{X: 1, Y: 2, Z: 3}, h.Point("$INSBASE"))
}

func TestDecodeUnknownVariableSurvives(t *testing.T) {
	src := "9\n$FUTUREVAR\n1\nfoo\n70\n5\n0\nENDSEC\n"
	r := core.NewReader(src)
	h, err := Decode(r)
	require.NoError(t, err)
	require.Len(t, h.Unknown(), 1)
	assert.Equal(t, "$FUTUREVAR", h.Unknown()[0].Name)

	var buf bytes.Buffer
	w := core.NewWriter(&buf)
	Encode(w, h, version.R2013)
	buf.WriteString("0\r\nENDSEC\r\n")
	r2 := core.NewReader(buf.String())
	h2, err := Decode(r2)
	require.NoError(t, err)
	require.Len(t, h2.Unknown(), 1)
	assert.Equal(t, "$FUTUREVAR", h2.Unknown()[0].Name)
}

func TestEncodeOmitsOutOfRangeVariable(t *testing.T) {
	h := New()
	h.Set("$CELWEIGHT", 5)

	var buf12 bytes.Buffer
	Encode(core.NewWriter(&buf12), h, version.R12)
	assert.NotContains(t, buf12.String(), "$CELWEIGHT")

	var buf2000 bytes.Buffer
	Encode(core.NewWriter(&buf2000), h, version.R2000)
	assert.Contains(t, buf2000.String(), "$CELWEIGHT")
}

func TestDefaultHeaderHasAllVariables(t *testing.T) {
	h := New()
	for _, v := range Table {
		_, ok := h.Get(v.Name)
		assert.True(t, ok, v.Name)
	}
}
