package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1A", "ABCD", "1000000000"} {
		h, err := ParseHandle(s)
		assert.NoError(t, err)
		assert.Equal(t, s, FormatHandle(h))
	}
}

func TestParseHandleEmpty(t *testing.T) {
	h, err := ParseHandle("")
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), h)
}

func TestBoolRoundTrip(t *testing.T) {
	assert.True(t, ParseBool("1"))
	assert.False(t, ParseBool("0"))
	assert.Equal(t, "1", FormatBool(true))
	assert.Equal(t, "0", FormatBool(false))
}

func TestTransparencyRoundTrip(t *testing.T) {
	cases := []Transparency{
		{ByLayer: true},
		{ByBlock: true},
		{Alpha: 128},
		{Alpha: 0},
		{Alpha: 255},
	}
	for _, c := range cases {
		decoded := DecodeTransparency(c.Encode())
		assert.Equal(t, c, decoded)
	}
}

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, 3.14159265, DegreesToRadians(180), 1e-6)
	assert.InDelta(t, 180.0, RadiansToDegrees(DegreesToRadians(180)), 1e-6)
}

func TestColorSentinels(t *testing.T) {
	assert.True(t, IsColorByLayer(256))
	assert.True(t, IsColorByBlock(0))
	assert.False(t, IsColorByLayer(7))
}
