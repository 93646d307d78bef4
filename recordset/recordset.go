// Package recordset provides RecordSet, a convenience wrapper for
// encoding or decoding many same-schema buffers concurrently.
//
// Grounded on a BlobSet-style container, which holds many same-schema
// blobs behind one header and iterates them in bulk; generalized here to
// concurrent per-buffer encode/decode over a codec.RecordCodec, using
// golang.org/x/sync/errgroup in place of a sequential loop since this
// module's records are independent (no shared running-delta state across
// records the way a time-series column would have).
package recordset

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/svsd/codec"
	"github.com/arloliu/svsd/wire"
)

// RecordSet decodes or encodes a batch of buffers that all share one
// codec.RecordCodec's Config. It holds no state of its own beyond the
// bound codec and is safe for concurrent use.
type RecordSet struct {
	codec *codec.RecordCodec
	limit int
}

// New creates a RecordSet bound to c. Concurrency is capped at
// runtime.GOMAXPROCS(0) by default; use WithConcurrencyLimit to override.
func New(c *codec.RecordCodec) *RecordSet {
	return &RecordSet{codec: c, limit: runtime.GOMAXPROCS(0)}
}

// WithConcurrencyLimit overrides the number of buffers processed at once.
// A non-positive n disables the limit (unbounded concurrency).
func (rs *RecordSet) WithConcurrencyLimit(n int) *RecordSet {
	rs.limit = n
	return rs
}

// DecodeAll decodes every buffer in bufs concurrently, invoking parse(i, d)
// for the i-th buffer's decoder. It returns the first error encountered;
// ctx cancellation stops any decodes not yet started.
func (rs *RecordSet) DecodeAll(ctx context.Context, bufs [][]byte, parse func(i int, d *wire.Decoder) error, opts ...codec.RecordOption) error {
	g, ctx := errgroup.WithContext(ctx)
	if rs.limit > 0 {
		g.SetLimit(rs.limit)
	}

	for i, buf := range bufs {
		i, buf := i, buf
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return rs.codec.Decode(buf, func(d *wire.Decoder) error {
				return parse(i, d)
			}, opts...)
		})
	}

	return g.Wait()
}

// EncodeAll runs build[i] against a fresh wire.Encoder for each i concurrently
// and returns the resulting envelopes in the same order as builds. It
// returns the first error encountered.
func (rs *RecordSet) EncodeAll(ctx context.Context, builds []func(e *wire.Encoder) error) ([][]byte, error) {
	out := make([][]byte, len(builds))

	g, ctx := errgroup.WithContext(ctx)
	if rs.limit > 0 {
		g.SetLimit(rs.limit)
	}

	for i, build := range builds {
		i, build := i, build
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			buf, err := rs.codec.Encode(build)
			if err != nil {
				return err
			}
			out[i] = buf

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
