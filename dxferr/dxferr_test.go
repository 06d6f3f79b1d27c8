package dxferr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := Newf(BadPair, "non-integer group code %q", "xx").WithPair(0, "xx", 12)
	assert.Contains(t, err.Error(), "BadPair")
	assert.Contains(t, err.Error(), "xx")
}

func TestIsMatchesByKind(t *testing.T) {
	err := New(UnexpectedEof, "stream ended")
	assert.True(t, errors.Is(err, New(UnexpectedEof, "")))
	assert.False(t, errors.Is(err, New(BadPair, "")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(InvariantViolation, cause)
	assert.ErrorIs(t, err, cause)
}
