package codec

import (
	"fmt"
	"strings"

	"github.com/arloliu/svsd/internal/hash"
	"github.com/arloliu/svsd/kind"
)

// FieldDescriptor names one field of a record and its kind.Class. This is
// the information a generator contract would normally derive per field;
// since this module hand-writes the per-record
// Encode/Decode pairs that a generator would otherwise emit, FieldDescriptor
// lets a record author self-check a field list the same way a generator's
// compile-time checks would.
type FieldDescriptor struct {
	Name  string
	Class kind.Class
}

// ValidateSchema checks the generator contract's structural rules over
// fields in declaration order: at most one Var2 field, and if present it
// must be the last field.
func ValidateSchema(fields []FieldDescriptor) error {
	for i, f := range fields {
		if f.Class == kind.Var2 && i != len(fields)-1 {
			return fmt.Errorf("field %q: Var2 fields must be the last field of a record, found at position %d of %d", f.Name, i, len(fields))
		}
	}

	return nil
}

// LastVarIndex returns the index of the field that must be encoded/decoded
// with IS_LAST_VAR = true: the last variable-length (Var1 or Var2) field in
// declaration order, or the final field if the record has no variable
// fields at all (the determinism rule for all-fixed records).
// Returns -1 for an empty field list.
func LastVarIndex(fields []FieldDescriptor) int {
	if len(fields) == 0 {
		return -1
	}

	for i := len(fields) - 1; i >= 0; i-- {
		if fields[i].Class.IsVariable() {
			return i
		}
	}

	return len(fields) - 1
}

// Fingerprint computes a schema identity hash over fields' names and
// classes, in declaration order, via internal/hash.ID (xxHash64). Two field
// lists that differ in name, class, or order hash to different values;
// reordering-insensitive or type-insensitive matching is deliberately not
// offered, since this is a guard against decoding with the wrong schema
// generation, not a compatibility checker; schema evolution (renaming,
// reordering, adding fields across versions) is out of scope.
func Fingerprint(fields []FieldDescriptor) uint64 {
	var sig strings.Builder
	for _, f := range fields {
		sig.WriteString(f.Name)
		sig.WriteByte(':')
		sig.WriteString(f.Class.String())
		sig.WriteByte(',')
	}

	return hash.ID(sig.String())
}
