// Package field implements the per-leaf-type Encode/Decode contracts for a
// record's fields: primitives, fixed byte arrays, byte strings, lists of
// fixed elements, and lists of byte strings (second-order/Var2 fields).
//
// Every Var2 helper is parameterized by the static isLastVar flag: a
// compile-time fact about the enclosing record, true for exactly one field
// (the final Var1 or Var2 field), verified here at encode/decode time since
// Go generics have no compile-time boolean constants to check the way a
// code generator could.
//
// Grounded on a generic ColumnarEncoder[T]/ColumnarDecoder[T]-style pair of
// interfaces (Write/WriteSlice, All/At) and a VarStringEncoder-style
// pooled-buffer append, generalized from a columnar multi-metric value
// model to this format's single-value-per-field record fields.
package field

import (
	"math"

	"github.com/arloliu/svsd/errs"
	"github.com/arloliu/svsd/wire"
)

// --- Fixed-class scalars ---------------------------------------------------

// PutUint8 appends a fixed 1-byte field.
func PutUint8(e *wire.Encoder, v uint8) {
	e.PushFixed([]byte{v})
}

// GetUint8 reads a fixed 1-byte field.
func GetUint8(d *wire.Decoder) (uint8, error) {
	b, err := d.NextFixedBytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// PutUint16 appends a fixed 2-byte field in the Encoder's configured endianness.
func PutUint16(e *wire.Encoder, v uint16) {
	e.PushFixed(e.Config().Engine().AppendUint16(nil, v))
}

// GetUint16 reads a fixed 2-byte field in the Decoder's configured endianness.
func GetUint16(d *wire.Decoder) (uint16, error) {
	b, err := d.NextFixedBytes(2)
	if err != nil {
		return 0, err
	}

	return d.Config().Engine().Uint16(b), nil
}

// PutUint32 appends a fixed 4-byte field.
func PutUint32(e *wire.Encoder, v uint32) {
	e.PushFixed(e.Config().Engine().AppendUint32(nil, v))
}

// GetUint32 reads a fixed 4-byte field.
func GetUint32(d *wire.Decoder) (uint32, error) {
	b, err := d.NextFixedBytes(4)
	if err != nil {
		return 0, err
	}

	return d.Config().Engine().Uint32(b), nil
}

// PutUint64 appends a fixed 8-byte field.
func PutUint64(e *wire.Encoder, v uint64) {
	e.PushFixed(e.Config().Engine().AppendUint64(nil, v))
}

// GetUint64 reads a fixed 8-byte field.
func GetUint64(d *wire.Decoder) (uint64, error) {
	b, err := d.NextFixedBytes(8)
	if err != nil {
		return 0, err
	}

	return d.Config().Engine().Uint64(b), nil
}

// PutInt8 appends a fixed 1-byte signed field.
func PutInt8(e *wire.Encoder, v int8) { PutUint8(e, uint8(v)) } //nolint:gosec

// GetInt8 reads a fixed 1-byte signed field.
func GetInt8(d *wire.Decoder) (int8, error) {
	v, err := GetUint8(d)
	return int8(v), err //nolint:gosec
}

// PutInt16 appends a fixed 2-byte signed field.
func PutInt16(e *wire.Encoder, v int16) { PutUint16(e, uint16(v)) } //nolint:gosec

// GetInt16 reads a fixed 2-byte signed field.
func GetInt16(d *wire.Decoder) (int16, error) {
	v, err := GetUint16(d)
	return int16(v), err //nolint:gosec
}

// PutInt32 appends a fixed 4-byte signed field.
func PutInt32(e *wire.Encoder, v int32) { PutUint32(e, uint32(v)) } //nolint:gosec

// GetInt32 reads a fixed 4-byte signed field.
func GetInt32(d *wire.Decoder) (int32, error) {
	v, err := GetUint32(d)
	return int32(v), err //nolint:gosec
}

// PutInt64 appends a fixed 8-byte signed field.
func PutInt64(e *wire.Encoder, v int64) { PutUint64(e, uint64(v)) } //nolint:gosec

// GetInt64 reads a fixed 8-byte signed field.
func GetInt64(d *wire.Decoder) (int64, error) {
	v, err := GetUint64(d)
	return int64(v), err //nolint:gosec
}

// PutFloat32 appends a fixed 4-byte IEEE-754 field.
func PutFloat32(e *wire.Encoder, v float32) { PutUint32(e, math.Float32bits(v)) }

// GetFloat32 reads a fixed 4-byte IEEE-754 field.
func GetFloat32(d *wire.Decoder) (float32, error) {
	v, err := GetUint32(d)
	return math.Float32frombits(v), err
}

// PutFloat64 appends a fixed 8-byte IEEE-754 field.
func PutFloat64(e *wire.Encoder, v float64) { PutUint64(e, math.Float64bits(v)) }

// GetFloat64 reads a fixed 8-byte IEEE-754 field.
func GetFloat64(d *wire.Decoder) (float64, error) {
	v, err := GetUint64(d)
	return math.Float64frombits(v), err
}

// PutFixedArray appends a fixed-size byte array field verbatim. Unaligned
// or endianness-negotiated decoding of fixed-element bulk arrays is out of
// scope: the bytes are stored and returned as-is with no per-element
// byte-order conversion; the caller is responsible for that if the array's
// elements are multi-byte.
func PutFixedArray(e *wire.Encoder, b []byte) {
	e.PushFixed(b)
}

// GetFixedArray reads a fixed-size byte array field as a borrowed slice of
// exactly n bytes, raw and unconverted.
func GetFixedArray(d *wire.Decoder, n int) ([]byte, error) {
	return d.NextFixedBytes(n)
}

// --- Var1: opaque byte segment --------------------------------------------

// PutBytes appends a Var1-bytes field: one VarEntry slot pointing at the
// segment appended to the data region.
func PutBytes(e *wire.Encoder, b []byte) {
	e.PushVarIdx(e.DataLen())
	e.PushData(b)
}

// GetBytes reads a Var1-bytes field, returning a slice borrowed from the
// decoder's input buffer.
func GetBytes(d *wire.Decoder) ([]byte, error) {
	return d.NextVar()
}

// PutString appends a Var1-bytes field from a string.
func PutString(e *wire.Encoder, s string) {
	PutBytes(e, []byte(s))
}

// GetString reads a Var1-bytes field as a string copied from the borrowed
// segment. The returned string does not alias the decoder's input buffer,
// since Go strings must be immutable and the input buffer is not
// guaranteed to be.
func GetString(d *wire.Decoder) (string, error) {
	b, err := d.NextVar()
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// --- Var1: concatenation of fixed-size elements ---------------------------

// PutUint16List appends a Var1-fixed-elements field: the elements are
// concatenated in order, each in the Encoder's configured endianness, into
// a single data segment with one VarEntry slot.
func PutUint16List(e *wire.Encoder, xs []uint16) {
	engine := e.Config().Engine()
	buf := make([]byte, 0, len(xs)*2)
	for _, x := range xs {
		buf = engine.AppendUint16(buf, x)
	}
	PutBytes(e, buf)
}

// GetUint16List reads a Var1-fixed-elements field of uint16 values. The
// element count is recovered from the segment length; there is no stored
// count on the wire.
func GetUint16List(d *wire.Decoder) ([]uint16, error) {
	seg, err := d.NextVar()
	if err != nil {
		return nil, err
	}
	if len(seg)%2 != 0 {
		return nil, errs.InvalidLength("uint16 list segment of %d bytes is not a multiple of element size 2", len(seg))
	}

	engine := d.Config().Engine()
	out := make([]uint16, len(seg)/2)
	for i := range out {
		out[i] = engine.Uint16(seg[i*2 : i*2+2])
	}

	return out, nil
}

// PutUint32List appends a Var1-fixed-elements field of uint32 values.
func PutUint32List(e *wire.Encoder, xs []uint32) {
	engine := e.Config().Engine()
	buf := make([]byte, 0, len(xs)*4)
	for _, x := range xs {
		buf = engine.AppendUint32(buf, x)
	}
	PutBytes(e, buf)
}

// GetUint32List reads a Var1-fixed-elements field of uint32 values.
func GetUint32List(d *wire.Decoder) ([]uint32, error) {
	seg, err := d.NextVar()
	if err != nil {
		return nil, err
	}
	if len(seg)%4 != 0 {
		return nil, errs.InvalidLength("uint32 list segment of %d bytes is not a multiple of element size 4", len(seg))
	}

	engine := d.Config().Engine()
	out := make([]uint32, len(seg)/4)
	for i := range out {
		out[i] = engine.Uint32(seg[i*4 : i*4+4])
	}

	return out, nil
}

// PutUint64List appends a Var1-fixed-elements field of uint64 values.
func PutUint64List(e *wire.Encoder, xs []uint64) {
	engine := e.Config().Engine()
	buf := make([]byte, 0, len(xs)*8)
	for _, x := range xs {
		buf = engine.AppendUint64(buf, x)
	}
	PutBytes(e, buf)
}

// GetUint64List reads a Var1-fixed-elements field of uint64 values.
func GetUint64List(d *wire.Decoder) ([]uint64, error) {
	seg, err := d.NextVar()
	if err != nil {
		return nil, err
	}
	if len(seg)%8 != 0 {
		return nil, errs.InvalidLength("uint64 list segment of %d bytes is not a multiple of element size 8", len(seg))
	}

	engine := d.Config().Engine()
	out := make([]uint64, len(seg)/8)
	for i := range out {
		out[i] = engine.Uint64(seg[i*8 : i*8+8])
	}

	return out, nil
}

// PutFloat64List appends a Var1-fixed-elements field of float64 values.
func PutFloat64List(e *wire.Encoder, xs []float64) {
	engine := e.Config().Engine()
	buf := make([]byte, 0, len(xs)*8)
	for _, x := range xs {
		buf = engine.AppendUint64(buf, math.Float64bits(x))
	}
	PutBytes(e, buf)
}

// GetFloat64List reads a Var1-fixed-elements field of float64 values.
func GetFloat64List(d *wire.Decoder) ([]float64, error) {
	seg, err := d.NextVar()
	if err != nil {
		return nil, err
	}
	if len(seg)%8 != 0 {
		return nil, errs.InvalidLength("float64 list segment of %d bytes is not a multiple of element size 8", len(seg))
	}

	engine := d.Config().Engine()
	out := make([]float64, len(seg)/8)
	for i := range out {
		out[i] = math.Float64frombits(engine.Uint64(seg[i*8 : i*8+8]))
	}

	return out, nil
}

// --- Var2: list of Var1 values ---------------------------------------------

// PutVar2Segments appends a second-order field: each inner segment gets its
// own VarEntry slot, back to back, with no stored outer-list length. isLast
// must be true — a Var2 field is only valid as the final variable field of
// its record — otherwise this returns errs.ErrInvalidLength without
// writing anything.
func PutVar2Segments(e *wire.Encoder, isLast bool, segments [][]byte) error {
	if !isLast {
		return errs.InvalidLength("Var2 field encoded with IS_LAST_VAR=false: only the final variable field of a record may be second-order")
	}

	for _, seg := range segments {
		PutBytes(e, seg)
	}

	return nil
}

// GetVar2Segments reads a second-order field by consuming every remaining
// VarEntry slot. isLast must be true, mirroring PutVar2Segments; the count
// of inner values is recovered from how many VarEntry slots remain.
func GetVar2Segments(d *wire.Decoder, isLast bool) ([][]byte, error) {
	if !isLast {
		return nil, errs.InvalidLength("Var2 field decoded with IS_LAST_VAR=false: only the final variable field of a record may be second-order")
	}

	return d.NextVarAll()
}

// PutBytesList appends a Var2 field whose inner values are opaque byte
// segments (a list of byte strings).
func PutBytesList(e *wire.Encoder, isLast bool, xs [][]byte) error {
	return PutVar2Segments(e, isLast, xs)
}

// GetBytesList reads a Var2 field of opaque byte segments, each borrowed
// from the decoder's input buffer.
func GetBytesList(d *wire.Decoder, isLast bool) ([][]byte, error) {
	return GetVar2Segments(d, isLast)
}

// PutStringList appends a Var2 field whose inner values are strings.
func PutStringList(e *wire.Encoder, isLast bool, xs []string) error {
	segs := make([][]byte, len(xs))
	for i, s := range xs {
		segs[i] = []byte(s)
	}

	return PutVar2Segments(e, isLast, segs)
}

// GetStringList reads a Var2 field of strings.
func GetStringList(d *wire.Decoder, isLast bool) ([]string, error) {
	segs, err := GetVar2Segments(d, isLast)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(segs))
	for i, seg := range segs {
		out[i] = string(seg)
	}

	return out, nil
}
