// Package wire implements the core append-only Encoder and cursor Decoder:
// three parallel regions (fixed bytes, var-entry offsets, data bytes)
// accumulated in declaration order and reified into a framed payload on
// finalize, and the mirror-image cursor machine that parses a borrowed
// buffer back into bounded slices.
//
// Grounded on a NumericEncoder/NumericDecoder-style accumulation pattern
// (three parallel state regions, a Finish()-style finalize, pooled scratch
// buffers) generalized from a fixed metric/timestamp/value/tag column
// model to this format's generic fixed/var-index/data regions.
package wire

import (
	"math"

	"github.com/arloliu/svsd/config"
	"github.com/arloliu/svsd/errs"
	"github.com/arloliu/svsd/internal/pool"
)

// HeaderSize is the size in bytes of the 8-byte body header (total_len,
// var_idx_offset), the variant chosen open question 1.
const HeaderSize = 8

// VarEntrySize is the size in bytes of a single VarEntry slot.
const VarEntrySize = 4

// Encoder accumulates three parallel regions — fixed bytes, variable-entry
// offsets, and data bytes — in the order field-encode code appends them,
// and reifies them into a framed payload on Finalize.
//
// An Encoder is mutated only by its owner and is not safe for concurrent
// use. It is not reusable after Finalize; create a new Encoder for further
// encoding.
type Encoder struct {
	cfg    config.Config
	fixed  *pool.ByteBuffer
	data   *pool.ByteBuffer
	varIdx []uint32
}

// NewEncoder creates an empty Encoder bound to cfg. Every multi-byte append
// made through field helpers built on this Encoder routes through
// cfg.Engine().
func NewEncoder(cfg config.Config) *Encoder {
	return &Encoder{
		cfg:   cfg,
		fixed: pool.GetBlobBuffer(),
		data:  pool.GetBlobBuffer(),
	}
}

// Config returns the Encoder's bound Config.
func (e *Encoder) Config() config.Config { return e.cfg }

// Release returns the Encoder's pooled scratch buffers. Call after
// Finalize (typically via defer) once the returned payload has been
// copied out; the Encoder must not be used afterward.
func (e *Encoder) Release() {
	pool.PutBlobBuffer(e.fixed)
	pool.PutBlobBuffer(e.data)
	e.fixed = nil
	e.data = nil
}

// PushFixed appends bytes to the fixed region. No bounds checking is
// performed; the caller (field-encode code) is responsible for appending
// exactly the size dictated by the field's type.
func (e *Encoder) PushFixed(b []byte) {
	e.fixed.MustWrite(b)
}

// PushVarIdx appends a data-relative offset to the variable-entry list.
// Offsets are translated to payload-absolute values at Finalize time.
func (e *Encoder) PushVarIdx(offset int) {
	e.varIdx = append(e.varIdx, uint32(offset)) //nolint:gosec
}

// PushData appends bytes to the data region.
func (e *Encoder) PushData(b []byte) {
	e.data.MustWrite(b)
}

// DataLen returns the current length of the data region, the data-relative
// offset a subsequent Var1 field's segment will start at.
func (e *Encoder) DataLen() int {
	return e.data.Len()
}

// VarCount returns the number of variable-entry slots pushed so far.
func (e *Encoder) VarCount() int {
	return len(e.varIdx)
}

// Finalize reifies the three accumulated regions into the body-only framing
// described in the base format and appends it to out, returning the extended
// slice. Offsets are translated from data-relative to payload-absolute.
// Returns errs.ErrInvalidLength if any computed size or offset overflows
// uint32.
func (e *Encoder) Finalize(out []byte) ([]byte, error) {
	f := e.fixed.Len()
	v := VarEntrySize * len(e.varIdx)
	d := e.data.Len()

	totalLen := HeaderSize + f + v + d
	varIdxOffset := HeaderSize + f
	dataOffset := varIdxOffset + v

	if totalLen > math.MaxUint32 || varIdxOffset > math.MaxUint32 || dataOffset > math.MaxUint32 {
		return out, errs.InvalidLength("finalize: body size %d exceeds uint32 range", totalLen)
	}

	engine := e.cfg.Engine()

	out = engine.AppendUint32(out, uint32(totalLen))     //nolint:gosec
	out = engine.AppendUint32(out, uint32(varIdxOffset)) //nolint:gosec
	out = append(out, e.fixed.Bytes()...)

	for _, o := range e.varIdx {
		abs := int(o) + dataOffset
		if abs > math.MaxUint32 {
			return out, errs.InvalidLength("finalize: translated var entry %d exceeds uint32 range", abs)
		}
		out = engine.AppendUint32(out, uint32(abs)) //nolint:gosec
	}

	out = append(out, e.data.Bytes()...)

	return out, nil
}

// FinalizeWithMagicVersion appends the 4-byte magic and 1-byte version
// ahead of the body-only framing produced by Finalize. Used for top-level
// records; nested sub-records use the body-only Finalize instead .
func (e *Encoder) FinalizeWithMagicVersion(out []byte) ([]byte, error) {
	magic := e.cfg.Magic()
	out = append(out, magic[:]...)
	out = append(out, e.cfg.Version())

	return e.Finalize(out)
}
