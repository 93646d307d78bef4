package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidLength_Is(t *testing.T) {
	err := InvalidLength("var entry %d out of range", 3)
	require.ErrorIs(t, err, ErrInvalidLength)
	require.Contains(t, err.Error(), "invalid length")
	require.Contains(t, err.Error(), "var entry 3 out of range")
}

func TestValidationFailed_Is(t *testing.T) {
	err := ValidationFailed("magic mismatch")
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Contains(t, err.Error(), "validation failed")
}

func TestMessage_Is(t *testing.T) {
	err1 := Message("boom %d", 1)
	err2 := Message("other")

	require.True(t, errors.Is(err1, err2), "two MessageErrors should satisfy errors.Is against each other")
	require.False(t, errors.Is(err1, ErrInvalidLength))
	require.Equal(t, "boom 1", err1.Error())
}

func TestSchemaMismatchSentinel(t *testing.T) {
	wrapped := fmtErrorf("fingerprint 0x1 != 0x2", ErrSchemaMismatch)
	require.ErrorIs(t, wrapped, ErrSchemaMismatch)
}

func fmtErrorf(msg string, sentinel error) error {
	return &wrappedForTest{sentinel: sentinel, msg: msg}
}

type wrappedForTest struct {
	sentinel error
	msg      string
}

func (w *wrappedForTest) Error() string { return w.msg }
func (w *wrappedForTest) Unwrap() error { return w.sentinel }
