package svsd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/svsd/codec"
	"github.com/arloliu/svsd/errs"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, [4]byte{'s', 'v', 's', 'd'}, cfg.Magic())
	require.Equal(t, uint8(1), cfg.Version())
}

func TestEventRoundTrip(t *testing.T) {
	c := NewCodec(DefaultConfig())

	want := Event{ID: 7, Name: "cpu.usage", Tags: []string{"host=a", "env=prod"}}

	buf, err := EncodeEvent(c, want)
	require.NoError(t, err)

	got, err := DecodeEvent(c, buf)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEventRoundTrip_NoTags(t *testing.T) {
	c := NewCodec(DefaultConfig())

	want := Event{ID: 1, Name: "empty.tags"}

	buf, err := EncodeEvent(c, want)
	require.NoError(t, err)

	got, err := DecodeEvent(c, buf)
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Name, got.Name)
	require.Empty(t, got.Tags)
}

func TestEventDecode_VersionMismatch(t *testing.T) {
	cfg := NewBuilder().Version(2).Build()
	c := NewCodec(cfg)

	buf, err := EncodeEvent(c, Event{ID: 1, Name: "x"})
	require.NoError(t, err)

	_, err = DecodeEvent(c, buf, codec.WithVersionCheck(9))
	require.ErrorIs(t, err, errs.ErrValidationFailed)
}

func TestNewBuilder_Fluent(t *testing.T) {
	cfg := NewBuilder().Big().Version(5).Build()
	require.Equal(t, uint8(5), cfg.Version())
}
