package codec

import "github.com/arloliu/svsd/internal/options"

// recordSettings accumulates the optional guards a RecordOption can attach
// to a single Decode/Validate call.
type recordSettings struct {
	expectedVersion     *uint8
	expectedFingerprint *uint64
}

// RecordOption configures a single RecordCodec.Decode or RecordCodec.Validate
// call. The core decode path never interprets the version byte itself, so
// version gating (and any other decode-time guard) is opt-in via
// RecordOption instead.
type RecordOption = options.Option[*recordSettings]

// WithVersionCheck rejects records whose envelope version byte does not
// equal want.
func WithVersionCheck(want uint8) RecordOption {
	return options.New(func(s *recordSettings) error {
		s.expectedVersion = &want

		return nil
	})
}

// WithSchemaFingerprint rejects a Decode/Validate call when the bound
// RecordCodec's schema Fingerprint (set via NewWithSchema) does not equal
// want. This is a supplemented feature for catching a caller decoding with
// a RecordCodec built from the wrong generation of a record's schema, when
// no generator-embedded schema identifier is available on the wire itself
// (the wire format has no such field; see DESIGN.md).
func WithSchemaFingerprint(want uint64) RecordOption {
	return options.New(func(s *recordSettings) error {
		s.expectedFingerprint = &want

		return nil
	})
}
