package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/godxf/dxferr"
)

func TestParseKnownTokens(t *testing.T) {
	cases := map[string]Version{
		"AC1015": R2000,
		"ac1027": R2013,
		" AC1012 ": R13,
	}
	for token, want := range cases {
		v, err := Parse(token)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestParseNewerThanLatestClamps(t *testing.T) {
	v, err := Parse("AC1032")
	require.NoError(t, err)
	assert.Equal(t, Latest, v)
}

func TestParseUnknownToken(t *testing.T) {
	_, err := Parse("NOTAVERSION")
	require.Error(t, err)
	var derr *dxferr.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, dxferr.UnknownVersion, derr.Kind)
}

func TestACADVERRoundTrip(t *testing.T) {
	for _, v := range []Version{R9, R10, R12, R13, R14, R2000, R2004, R2007, R2010, R2013} {
		token := v.ACADVER()
		got, err := Parse(token)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestGates(t *testing.T) {
	assert.False(t, R12.SupportsClasses())
	assert.True(t, R13.SupportsClasses())
	assert.False(t, R9.SupportsObjects())
	assert.True(t, R2000.SupportsObjects())
}
