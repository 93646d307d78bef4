// Package config provides the Config value object and its fluent Builder.
//
// A Config carries the 4-byte magic, 1-byte version, and endianness that
// flow through every Encoder and Decoder in this module. Two equal Configs
// produce byte-identical framing for equal input — Config is a plain value
// type, copied freely, with no hidden mutable state.
package config

import (
	"github.com/arloliu/svsd/endian"
	"github.com/arloliu/svsd/format"
)

// Endian selects which byte order a Config resolves to.
type Endian uint8

const (
	// Little selects little-endian byte order. This is the default.
	Little Endian = iota
	// Big selects big-endian byte order.
	Big
	// Native selects the host's byte order, resolved once at Build time.
	Native
)

func (e Endian) String() string {
	switch e {
	case Little:
		return "little"
	case Big:
		return "big"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

// Default values, documented per the base format.
const (
	DefaultVersion uint8 = 1
)

// DefaultMagic is the default 4-byte magic value, "svsd".
var DefaultMagic = [4]byte{'s', 'v', 's', 'd'}

// Config is the value object carrying magic, version, endianness, and the
// (domain-stack) compression selector through the encode/decode pipeline.
// Endianness is never serialized on the wire — it is an out-of-band
// convention the caller must agree on between encode and decode.
type Config struct {
	magic       [4]byte
	version     uint8
	endianSel   Endian
	engine      endian.EndianEngine
	compression format.CompressionType
}

// Magic returns the configured 4-byte magic value.
func (c Config) Magic() [4]byte { return c.magic }

// Version returns the configured version byte.
func (c Config) Version() uint8 { return c.version }

// EndianSelector returns the endianness selector the Config was built with
// (Native is resolved to Little or Big at Build time but the original
// selector is preserved here for introspection).
func (c Config) EndianSelector() Endian { return c.endianSel }

// Engine returns the resolved endian.EndianEngine every multi-byte
// read/write in this module must route through.
func (c Config) Engine() endian.EndianEngine { return c.engine }

// Compression returns the configured outer-envelope compression strategy
// applied by the codec facade (see codec.RecordCodec); the wire package
// itself is never compression-aware.
func (c Config) Compression() format.CompressionType { return c.compression }

// Builder constructs a Config via fluent setters, substituting documented
// defaults for anything left unset. Uses a direct fluent chain rather than
// functional options, since Config has only four independent knobs.
type Builder struct {
	cfg      Config
	hasMagic bool
	hasVer   bool
	hasEnd   bool
	hasComp  bool
}

// NewBuilder creates an empty Builder. Call Build to materialize a Config,
// substituting defaults for anything left unset.
func NewBuilder() *Builder {
	return &Builder{}
}

// Magic sets the 4-byte magic value.
func (b *Builder) Magic(m [4]byte) *Builder {
	b.cfg.magic = m
	b.hasMagic = true

	return b
}

// Version sets the version byte. The version is carried on the wire but
// never interpreted by the core decode path;
// callers that need version-gated decoding use codec.WithVersionCheck.
func (b *Builder) Version(v uint8) *Builder {
	b.cfg.version = v
	b.hasVer = true

	return b
}

// Endian sets the endianness selector explicitly.
func (b *Builder) Endian(sel Endian) *Builder {
	b.cfg.endianSel = sel
	b.hasEnd = true

	return b
}

// Big is a shortcut for Endian(Big).
func (b *Builder) Big() *Builder { return b.Endian(Big) }

// Little is a shortcut for Endian(Little).
func (b *Builder) Little() *Builder { return b.Endian(Little) }

// Native is a shortcut for Endian(Native).
func (b *Builder) Native() *Builder { return b.Endian(Native) }

// DataCompression sets the outer-envelope compression strategy used by the
// codec facade (see codec.RecordCodec).
func (b *Builder) DataCompression(c format.CompressionType) *Builder {
	b.cfg.compression = c
	b.hasComp = true

	return b
}

// Build materializes a Config, substituting defaults for unset fields:
// magic "svsd", version 1, little-endian, no compression.
func (b *Builder) Build() Config {
	cfg := b.cfg

	if !b.hasMagic {
		cfg.magic = DefaultMagic
	}
	if !b.hasVer {
		cfg.version = DefaultVersion
	}
	if !b.hasEnd {
		cfg.endianSel = Little
	}
	if !b.hasComp {
		cfg.compression = format.CompressionNone
	}

	switch cfg.endianSel {
	case Big:
		cfg.engine = endian.GetBigEndianEngine()
	case Native:
		cfg.engine = endian.GetNativeEndianEngine()
	case Little:
		fallthrough
	default:
		cfg.engine = endian.GetLittleEndianEngine()
	}

	return cfg
}

// Default returns the Config produced by an empty Builder: magic "svsd",
// version 1, little-endian, no compression.
func Default() Config {
	return NewBuilder().Build()
}
