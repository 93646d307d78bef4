// Package codec implements the RecordCodec facade: a unified
// encode/decode/validate surface that prefixes a record's wire body with
// magic, version, and an outer compression tag, and that guarantees
// Validate(b) succeeds if and only if Decode(b) would succeed structurally.
//
// Grounded on a top-level convenience-wrapper style (thin functions over
// the lower-level Encoder/Decoder types, options applied via
// internal/options) and on a BlobSet-style header-then-body framing.
package codec

import (
	"bytes"
	"fmt"

	"github.com/arloliu/svsd/compress"
	"github.com/arloliu/svsd/config"
	"github.com/arloliu/svsd/errs"
	"github.com/arloliu/svsd/format"
	"github.com/arloliu/svsd/internal/options"
	"github.com/arloliu/svsd/wire"
)

// EnvelopeHeaderSize is the size in bytes of the outer envelope prefix:
// 4-byte magic, 1-byte version, 1-byte compression tag.
const EnvelopeHeaderSize = 6

// RecordCodec wraps wire.Encoder/wire.Decoder with the top-level envelope:
// magic + version + compression tag, ahead of a (possibly compressed) wire
// body. A RecordCodec is bound to one Config and is safe for concurrent use
// across different buffers; Encode and Decode each construct their own
// short-lived wire.Encoder/wire.Decoder.
type RecordCodec struct {
	cfg         config.Config
	fingerprint uint64 // 0 means no schema bound, see NewWithSchema
}

// New creates a RecordCodec bound to cfg, with no schema fingerprint bound.
func New(cfg config.Config) *RecordCodec {
	return &RecordCodec{cfg: cfg}
}

// NewWithSchema creates a RecordCodec bound to cfg and fields, after
// validating fields with ValidateSchema. The resulting RecordCodec's
// Fingerprint is derived from fields via internal/hash, for use with
// WithSchemaFingerprint to catch a caller decoding with the wrong schema
// version's RecordCodec (see DESIGN.md; this guards against a registry of
// evolving schemas, not wire corruption).
func NewWithSchema(cfg config.Config, fields []FieldDescriptor) (*RecordCodec, error) {
	if err := ValidateSchema(fields); err != nil {
		return nil, err
	}

	return &RecordCodec{cfg: cfg, fingerprint: Fingerprint(fields)}, nil
}

// Config returns the RecordCodec's bound Config.
func (c *RecordCodec) Config() config.Config { return c.cfg }

// Fingerprint returns the schema fingerprint bound via NewWithSchema, or 0
// if the RecordCodec was created with New.
func (c *RecordCodec) Fingerprint() uint64 { return c.fingerprint }

// Encode builds a record body via build (which calls field.Put* helpers
// against the supplied wire.Encoder in declaration order), then wraps the
// finalized, optionally compressed body in the magic+version+compression
// envelope.
func (c *RecordCodec) Encode(build func(e *wire.Encoder) error) ([]byte, error) {
	e := wire.NewEncoder(c.cfg)
	defer e.Release()

	if err := build(e); err != nil {
		return nil, err
	}

	body, err := e.Finalize(nil)
	if err != nil {
		return nil, err
	}

	compType := c.cfg.Compression()
	if compType != format.CompressionNone {
		codec, err := compress.GetCodec(compType)
		if err != nil {
			return nil, err
		}

		body, err = codec.Compress(body)
		if err != nil {
			return nil, err
		}
	}

	magic := c.cfg.Magic()
	out := make([]byte, 0, EnvelopeHeaderSize+len(body))
	out = append(out, magic[:]...)
	out = append(out, c.cfg.Version(), byte(compType))
	out = append(out, body...)

	return out, nil
}

// Decode strips and validates the outer envelope, decompresses the body if
// needed, constructs a wire.Decoder over it, applies opts, then invokes
// parse to walk the record's fields in declaration order.
func (c *RecordCodec) Decode(buf []byte, parse func(d *wire.Decoder) error, opts ...RecordOption) error {
	d, settings, err := c.open(buf, opts...)
	if err != nil {
		return err
	}

	if settings.expectedVersion != nil {
		version := buf[4]
		if version != *settings.expectedVersion {
			return errs.ValidationFailed("record version %d does not match expected version %d", version, *settings.expectedVersion)
		}
	}

	return parse(d)
}

// Validate performs every structural check Decode would perform — envelope
// magic, decompression, and wire-level region bounds — without walking
// fields. Validate(buf) succeeds if and only if Decode(buf, parse) would
// succeed up to (but not including) parse's own field-level errors.
func (c *RecordCodec) Validate(buf []byte, opts ...RecordOption) error {
	_, settings, err := c.open(buf, opts...)
	if err != nil {
		return err
	}

	if settings.expectedVersion != nil {
		version := buf[4]
		if version != *settings.expectedVersion {
			return errs.ValidationFailed("record version %d does not match expected version %d", version, *settings.expectedVersion)
		}
	}

	return nil
}

func (c *RecordCodec) open(buf []byte, opts ...RecordOption) (*wire.Decoder, *recordSettings, error) {
	settings := &recordSettings{}
	if err := options.Apply(settings, opts...); err != nil {
		return nil, nil, err
	}

	if len(buf) < EnvelopeHeaderSize {
		return nil, nil, errs.InvalidLength("envelope of %d bytes is shorter than the %d-byte header", len(buf), EnvelopeHeaderSize)
	}

	magic := c.cfg.Magic()
	if !bytes.Equal(buf[0:4], magic[:]) {
		return nil, nil, errs.ValidationFailed("magic %q does not match configured magic %q", buf[0:4], magic[:])
	}

	compType := format.CompressionType(buf[5])
	body := buf[EnvelopeHeaderSize:]

	if compType != format.CompressionNone {
		codec, err := compress.GetCodec(compType)
		if err != nil {
			return nil, nil, errs.ValidationFailed("envelope compression tag %d: %v", compType, err)
		}

		decompressed, err := codec.Decompress(body)
		if err != nil {
			return nil, nil, fmt.Errorf("decompressing record body: %w", err)
		}
		body = decompressed
	}

	if settings.expectedFingerprint != nil && c.fingerprint != *settings.expectedFingerprint {
		return nil, nil, fmt.Errorf("%w: codec schema fingerprint %#x, want %#x", errs.ErrSchemaMismatch, c.fingerprint, *settings.expectedFingerprint)
	}

	d, err := wire.NewDecoder(c.cfg, body)
	if err != nil {
		return nil, nil, err
	}

	return d, settings, nil
}
