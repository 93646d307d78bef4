package wire

import (
	"github.com/arloliu/svsd/config"
	"github.com/arloliu/svsd/errs"
)

// Decoder is a cursor over a borrowed buffer, doling out bounds-checked
// slices as field-decode code requests them in declaration order. It owns
// nothing beyond its cursors and a reference to the input buffer: returned
// slices borrow from that buffer and are valid for the buffer's lifetime.
//
// A Decoder is mutated only by its owner and is not safe for concurrent
// use. It is not reusable beyond reading through its regions once.
type Decoder struct {
	cfg  config.Config
	buf  []byte
	body []byte // buf sliced to exactly [0:totalLen), the region offsets are relative to

	totalLen     uint32
	varIdxOffset uint32
	dataOffset   uint32

	fixedCursor int // bytes consumed in the fixed region
	varCursor   int // VarEntry slots consumed
}

// NewDecoder constructs a Decoder over buf, which must already have any
// magic+version prefix stripped (the caller passes a body-only buffer).
// The header is parsed and region boundaries validated eagerly; NewDecoder
// failing is equivalent to Validate failing.
func NewDecoder(cfg config.Config, buf []byte) (*Decoder, error) {
	if len(buf) < HeaderSize {
		return nil, errs.InvalidLength("buffer of %d bytes is shorter than the %d-byte header", len(buf), HeaderSize)
	}

	engine := cfg.Engine()
	totalLen := engine.Uint32(buf[0:4])
	varIdxOffset := engine.Uint32(buf[4:8])

	var dataOffset uint32
	if totalLen == varIdxOffset {
		dataOffset = varIdxOffset
	} else {
		if uint64(varIdxOffset)+4 > uint64(len(buf)) {
			return nil, errs.InvalidLength("var_idx_offset %d leaves no room for the first VarEntry in a %d-byte buffer", varIdxOffset, len(buf))
		}
		dataOffset = engine.Uint32(buf[varIdxOffset : varIdxOffset+4])
	}

	if varIdxOffset < HeaderSize || varIdxOffset > dataOffset || dataOffset > totalLen {
		return nil, errs.InvalidLength("region boundaries out of order: header=%d var_idx_offset=%d data_offset=%d total_len=%d",
			HeaderSize, varIdxOffset, dataOffset, totalLen)
	}
	if (dataOffset-varIdxOffset)%VarEntrySize != 0 {
		return nil, errs.InvalidLength("var-entry region size %d is not a multiple of %d", dataOffset-varIdxOffset, VarEntrySize)
	}
	if uint64(totalLen) > uint64(len(buf)) {
		return nil, errs.InvalidLength("total_len %d exceeds buffer length %d", totalLen, len(buf))
	}

	// Every VarEntry must be non-decreasing and lie in [data_offset, total_len],
	// so a buffer accepted here never fails a later NextVar bounds check.
	prev := dataOffset
	for pos := varIdxOffset; pos < dataOffset; pos += VarEntrySize {
		off := engine.Uint32(buf[pos : pos+VarEntrySize])
		if off < prev || off > totalLen {
			return nil, errs.InvalidLength("var entry at offset %d points at %d, outside [%d, %d]", pos, off, prev, totalLen)
		}
		prev = off
	}

	return &Decoder{
		cfg:          cfg,
		buf:          buf,
		body:         buf[:totalLen],
		totalLen:     totalLen,
		varIdxOffset: varIdxOffset,
		dataOffset:   dataOffset,
	}, nil
}

// Config returns the Decoder's bound Config.
func (d *Decoder) Config() config.Config { return d.cfg }

// TotalLen returns the parsed body length in bytes.
func (d *Decoder) TotalLen() int { return int(d.totalLen) }

// VarCount returns the number of VarEntry slots in the buffer.
func (d *Decoder) VarCount() int {
	return int(d.dataOffset-d.varIdxOffset) / VarEntrySize
}

// RemainingVar returns the number of VarEntry slots not yet consumed.
func (d *Decoder) RemainingVar() int {
	return d.VarCount() - d.varCursor
}

// NextFixedBytes returns a borrowed slice of length n from the fixed
// region, advancing the fixed cursor. Fails with errs.ErrInvalidLength if
// the slice would cross into the var-entry region or the buffer's end.
func (d *Decoder) NextFixedBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errs.InvalidLength("negative fixed read of %d bytes", n)
	}

	start := HeaderSize + d.fixedCursor
	end := start + n

	if uint64(end) > uint64(d.varIdxOffset) {
		return nil, errs.InvalidLength("fixed read [%d:%d) crosses into the var-entry region at offset %d", start, end, d.varIdxOffset)
	}

	d.fixedCursor += n

	return d.body[start:end], nil
}

// NextVar returns the next variable-length segment, advancing the var
// cursor. Fails with errs.ErrInvalidLength if the var cursor is exhausted
// or the segment's bounds are invalid.
func (d *Decoder) NextVar() ([]byte, error) {
	count := d.VarCount()
	if d.varCursor >= count {
		return nil, errs.InvalidLength("var cursor %d exhausted (only %d entries)", d.varCursor, count)
	}

	engine := d.cfg.Engine()
	entryPos := d.varIdxOffset + uint32(d.varCursor)*VarEntrySize //nolint:gosec
	start := engine.Uint32(d.body[entryPos : entryPos+4])

	var end uint32
	if d.varCursor+1 < count {
		end = engine.Uint32(d.body[entryPos+4 : entryPos+8])
	} else {
		end = d.totalLen
	}

	if start < d.dataOffset || end > d.totalLen || start > end {
		return nil, errs.InvalidLength("var entry %d has invalid bounds [%d:%d), data starts at %d, total_len is %d",
			d.varCursor, start, end, d.dataOffset, d.totalLen)
	}

	d.varCursor++

	return d.body[start:end], nil
}

// NextVarAll consumes every remaining VarEntry slot (from the current var
// cursor through VarCount) as the segments of a second-order (Var2) field,
// in order. Used when the static "last variable field" flag is true: the
// count of inner values is recovered from how many VarEntry slots remain,
// with no length prefix on the wire.
func (d *Decoder) NextVarAll() ([][]byte, error) {
	remaining := d.RemainingVar()
	if remaining == 0 {
		return nil, nil
	}

	out := make([][]byte, 0, remaining)
	for d.RemainingVar() > 0 {
		seg, err := d.NextVar()
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}

	return out, nil
}
