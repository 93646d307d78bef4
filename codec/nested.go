package codec

import (
	"github.com/arloliu/svsd/config"
	"github.com/arloliu/svsd/field"
	"github.com/arloliu/svsd/wire"
)

// EncodeNested encodes a sub-record via build into a body-only buffer (no
// magic+version prefix) and stores that buffer as a Var1 bytes-like field
// of the enclosing record. cfg is the nested record's own Config, which
// need not match the enclosing record's.
func EncodeNested(e *wire.Encoder, cfg config.Config, build func(inner *wire.Encoder) error) error {
	inner := wire.NewEncoder(cfg)
	defer inner.Release()

	if err := build(inner); err != nil {
		return err
	}

	body, err := inner.Finalize(nil)
	if err != nil {
		return err
	}

	field.PutBytes(e, body)

	return nil
}

// DecodeNested reads the current Var1 field as a nested record's body-only
// buffer, constructs a wire.Decoder over it with cfg, and invokes parse.
// The returned inner decoder's slices borrow from the enclosing decoder's
// buffer, unchanged by the nesting.
func DecodeNested(d *wire.Decoder, cfg config.Config, parse func(inner *wire.Decoder) error) error {
	body, err := field.GetBytes(d)
	if err != nil {
		return err
	}

	inner, err := wire.NewDecoder(cfg, body)
	if err != nil {
		return err
	}

	return parse(inner)
}
