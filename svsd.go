// Package svsd provides a compact, schema-driven binary serialization
// format with zero-copy decoding.
//
// A record's wire layout is a small header (total length, an index into the
// variable-length entries) followed by three regions: fixed-size fields
// packed back to back, a table of offsets into the last region, and the
// variable-length field data itself. Decoding never copies: every
// variable-length read returns a slice that aliases the input buffer.
//
// # Core Features
//
//   - Zero-copy decoding: Decoder.NextVar and friends return borrowed slices
//   - Four field classes: fixed, opaque bytes, lists of fixed elements, and
//     lists of byte strings (the only class that must be the final field)
//   - Pluggable endianness (little, big, or host-native), never serialized
//   - Optional outer-envelope compression (Zstd, S2, or LZ4) via codec.RecordCodec
//   - A closed error taxonomy: errs.ErrInvalidLength, errs.ErrValidationFailed
//   - Concurrent batch encode/decode via recordset.RecordSet
//
// # Package Structure
//
// This module has no code generator: the field, wire, and codec packages
// are the primitives a generator would target, and this file's Event type
// shows the shape of the code such a generator would emit by hand. For
// direct control over layout, use the wire and field packages.
//
// # Basic Usage
//
//	cfg := svsd.DefaultConfig()
//	c := svsd.NewCodec(cfg)
//
//	buf, err := c.Encode(func(e *wire.Encoder) error {
//	    field.PutUint32(e, 42)
//	    field.PutString(e, "cpu.usage")
//	    return field.PutStringList(e, true, []string{"host=a", "env=prod"})
//	})
//
//	err = c.Decode(buf, func(d *wire.Decoder) error {
//	    id, err := field.GetUint32(d)
//	    ...
//	})
package svsd

import (
	"github.com/arloliu/svsd/codec"
	"github.com/arloliu/svsd/config"
	"github.com/arloliu/svsd/field"
	"github.com/arloliu/svsd/kind"
	"github.com/arloliu/svsd/wire"
)

// Config is re-exported from the config package for callers that only need
// the top-level convenience API.
type Config = config.Config

// DefaultConfig returns the default Config: magic "svsd", version 1,
// little-endian, no compression.
func DefaultConfig() Config {
	return config.Default()
}

// NewBuilder is a convenience wrapper around config.NewBuilder.
func NewBuilder() *config.Builder {
	return config.NewBuilder()
}

// NewCodec creates a codec.RecordCodec bound to cfg.
func NewCodec(cfg Config) *codec.RecordCodec {
	return codec.New(cfg)
}

// Event is a hand-written sample record demonstrating the encode/decode
// shape a schema-driven generator would emit for a record with one fixed
// field, one opaque-bytes field, and a trailing list-of-strings field (the
// one field class that must sit in the final position, per the wire
// format's "last variable field" rule).
//
// Layout: ID (fixed uint32), Name (Var1 bytes-like string), Tags (Var2 list
// of strings, must be last).
type Event struct {
	ID   uint32
	Name string
	Tags []string
}

// eventSchema mirrors what a generator would derive from Event's field
// declarations; ValidateSchema is the structural check such a generator
// would run at compile time, exposed here so a hand-written record's field
// list can be self-checked the same way.
var eventSchema = []codec.FieldDescriptor{
	{Name: "ID", Class: kind.Fixed},
	{Name: "Name", Class: kind.Var1Bytes},
	{Name: "Tags", Class: kind.Var2},
}

func init() {
	if err := codec.ValidateSchema(eventSchema); err != nil {
		panic(err)
	}
}

// EncodeEvent encodes ev into a new envelope using c.
func EncodeEvent(c *codec.RecordCodec, ev Event) ([]byte, error) {
	return c.Encode(func(e *wire.Encoder) error {
		field.PutUint32(e, ev.ID)
		field.PutString(e, ev.Name)

		return field.PutStringList(e, true, ev.Tags)
	})
}

// DecodeEvent decodes an envelope produced by EncodeEvent.
func DecodeEvent(c *codec.RecordCodec, buf []byte, opts ...codec.RecordOption) (Event, error) {
	var ev Event

	err := c.Decode(buf, func(d *wire.Decoder) error {
		id, err := field.GetUint32(d)
		if err != nil {
			return err
		}
		name, err := field.GetString(d)
		if err != nil {
			return err
		}
		tags, err := field.GetStringList(d, true)
		if err != nil {
			return err
		}

		ev = Event{ID: id, Name: name, Tags: tags}

		return nil
	}, opts...)

	return ev, err
}
