// Package format holds small closed enumerations shared by config and
// compress, kept in their own package to avoid an import cycle between the
// two. Mirrors a small marker-enum-with-String() style; this module only
// needs a compression axis since svsd has no per-field encoding strategy
// choice.
package format

// CompressionType selects how codec.RecordCodec wraps a finalized wire body
// in its outer envelope. This is a domain-stack addition on top of the base
// wire format: the wire.Encoder/wire.Decoder pair never sees it, since
// compressing only the Data region would invalidate the VarEntry offsets
// computed over the uncompressed layout. Compression instead wraps the
// entire finalized body as a single opaque block, after
// magic+version+this tag. The default, CompressionNone, reproduces an
// uncompressed body's byte-for-byte contract exactly.
type CompressionType uint8

const (
	// CompressionNone stores the body as-is.
	CompressionNone CompressionType = iota
	// CompressionZstd compresses the body with Zstandard.
	CompressionZstd
	// CompressionS2 compresses the body with S2, Snappy's faster successor.
	CompressionS2
	// CompressionLZ4 compresses the body with LZ4 block compression.
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
