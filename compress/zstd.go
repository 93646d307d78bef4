package compress

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor compresses with Zstandard, trading compression speed for a
// better ratio than LZ4. Suited to cold paths: archival records, records
// shipped over constrained links, anything decompressed far less often than
// it is written.
//
// Replaces a cgo-backed valyala/gozstd variant with the pure-Go
// klauspost/compress/zstd implementation, since the cgo path requires a C
// toolchain this module does not want to depend on.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			panic(err) // only fails on invalid options, which we never pass
		}

		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			panic(err)
		}

		return dec
	},
}

// Compress compresses data using Zstandard, returning a new owned slice.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	enc, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	dst := make([]byte, 0, len(data))

	return enc.EncodeAll(data, dst), nil
}

// Decompress decompresses a Zstandard-compressed block.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, err
	}

	return out, nil
}
