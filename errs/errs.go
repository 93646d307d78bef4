// Package errs defines the closed error taxonomy returned by svsd's decode
// and validate paths.
//
// The core wire and field encode/decode/validate paths return
// ErrInvalidLength or ErrValidationFailed; the schema-fingerprint guard
// returns ErrSchemaMismatch. Callers should use errors.Is against these
// sentinels. Message is a diagnostic escape hatch and is never produced by
// the core codec paths. Errors from the supplementary compression and
// schema-validation helpers are returned as plain wrapped errors outside
// this taxonomy.
package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned when a size or offset does not fit the buffer
// or overflows the u32 range used by the wire format. It covers: a buffer
// shorter than the header, offsets outside the payload, u32 overflow during
// finalize, fixed-region read overruns, var-entry overruns, non-monotonic or
// out-of-range VarEntry offsets, and misuse of a second-order variable field
// as non-last.
var ErrInvalidLength = errors.New("invalid length")

// ErrValidationFailed is returned for magic mismatch, version mismatch (when
// a validator enforces it), and caller-defined structural checks.
var ErrValidationFailed = errors.New("validation failed")

// ErrSchemaMismatch is returned by RecordCodec.Decode/Validate under the
// codec.WithSchemaFingerprint option when the codec's bound schema
// fingerprint does not match the expected value.
var ErrSchemaMismatch = errors.New("schema fingerprint mismatch")

// MessageError is the diagnostic escape hatch kind: a free-form message that
// is never produced by the core encode/decode/validate paths, but is
// available for supplementary components (compression, schema guards) to
// report context-specific failures without growing the closed taxonomy.
type MessageError struct {
	msg string
}

// Message creates a new diagnostic MessageError.
func Message(format string, args ...any) error {
	return &MessageError{msg: fmt.Sprintf(format, args...)}
}

func (e *MessageError) Error() string { return e.msg }

// Is reports whether target is another *MessageError, satisfying errors.Is
// for callers that only care about the kind, not the text.
func (e *MessageError) Is(target error) bool {
	_, ok := target.(*MessageError)
	return ok
}

// InvalidLength wraps ErrInvalidLength with context, mirroring the
// %w-wrapping pattern the rest of this module uses for its sentinel errors.
func InvalidLength(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidLength, fmt.Sprintf(format, args...))
}

// ValidationFailed wraps ErrValidationFailed with context.
func ValidationFailed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidationFailed, fmt.Sprintf(format, args...))
}
