package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/svsd/config"
	"github.com/arloliu/svsd/field"
	"github.com/arloliu/svsd/wire"
)

func TestNested_EncodeDecodeRoundTrip(t *testing.T) {
	cfg := config.Default()
	c := New(cfg)

	buf, err := c.Encode(func(e *wire.Encoder) error {
		field.PutUint32(e, 1)

		return EncodeNested(e, cfg, func(inner *wire.Encoder) error {
			field.PutUint16(inner, 99)
			return field.PutStringList(inner, true, []string{"x", "y"})
		})
	})
	require.NoError(t, err)

	var outer uint32
	var innerVal uint16
	var innerTags []string

	err = c.Decode(buf, func(d *wire.Decoder) error {
		var err error
		outer, err = field.GetUint32(d)
		if err != nil {
			return err
		}

		return DecodeNested(d, cfg, func(inner *wire.Decoder) error {
			var err error
			innerVal, err = field.GetUint16(inner)
			if err != nil {
				return err
			}
			innerTags, err = field.GetStringList(inner, true)

			return err
		})
	})
	require.NoError(t, err)
	require.Equal(t, uint32(1), outer)
	require.Equal(t, uint16(99), innerVal)
	require.Equal(t, []string{"x", "y"}, innerTags)
}

func TestNested_TwoLevels(t *testing.T) {
	cfg := config.Default()
	c := New(cfg)

	buf, err := c.Encode(func(e *wire.Encoder) error {
		return EncodeNested(e, cfg, func(l1 *wire.Encoder) error {
			return EncodeNested(l1, cfg, func(l2 *wire.Encoder) error {
				field.PutUint8(l2, 42)
				return nil
			})
		})
	})
	require.NoError(t, err)

	var got uint8
	err = c.Decode(buf, func(d *wire.Decoder) error {
		return DecodeNested(d, cfg, func(l1 *wire.Decoder) error {
			return DecodeNested(l1, cfg, func(l2 *wire.Decoder) error {
				var err error
				got, err = field.GetUint8(l2)
				return err
			})
		})
	})
	require.NoError(t, err)
	require.Equal(t, uint8(42), got)
}
