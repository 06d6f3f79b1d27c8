package classes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/godxf/core"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	src := "0\nCLASS\n1\nACDBDICTIONARYWDFLT\n2\nAcDbDictionaryWithDefault\n3\nObjectDBX Classes\n90\n0\n91\n1\n280\n0\n281\n0\n0\nENDSEC\n"
	r := core.NewReader(src)
	got, err := Decode(r)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ACDBDICTIONARYWDFLT", got[0].RecordName)
	assert.Equal(t, 1, got[0].InstanceCount)

	var buf bytes.Buffer
	Encode(core.NewWriter(&buf), got)
	buf.WriteString("0\nENDSEC\n")
	r2 := core.NewReader(buf.String())
	got2, err := Decode(r2)
	require.NoError(t, err)
	assert.Equal(t, got, got2)
}
