// Package kind classifies leaf field types into the wire format's slot
// taxonomy: Fixed, Var1 (one variable segment), or Var2 (a list of Var1
// segments). This classification is a compile-time attribute of a leaf
// type; the generator (or, in this hand-written module, the record author)
// picks the right kind.Class value once per field and the rest of the
// pipeline — field encode/decode, the "last variable field" check — follows
// from it. Mirrors a small marker-enum-with-String() style, the same
// shape format.CompressionType uses.
package kind

// Class classifies a record field by how many VarEntry slots it consumes.
type Class uint8

const (
	// Fixed fields have a known, static size and occupy zero VarEntry slots.
	Fixed Class = iota
	// Var1Bytes fields are an opaque byte segment (strings, raw byte lists):
	// one VarEntry slot.
	Var1Bytes
	// Var1FixedElements fields are a concatenation of N fixed-size elements
	// packed into one segment: one VarEntry slot.
	Var1FixedElements
	// Var2 fields are a list of M Var1 values: M VarEntry slots, one per
	// inner value. Only the last variable field of a record may use this
	// class.
	Var2
)

// String renders the class name, matching the style of format.CompressionType.String().
func (c Class) String() string {
	switch c {
	case Fixed:
		return "Fixed"
	case Var1Bytes:
		return "Var1Bytes"
	case Var1FixedElements:
		return "Var1FixedElements"
	case Var2:
		return "Var2"
	default:
		return "Unknown"
	}
}

// IsVariable reports whether a field of this class consumes at least one
// VarEntry slot.
func (c Class) IsVariable() bool {
	return c != Fixed
}

// Slots returns the number of VarEntry slots a single value of this class
// occupies, given the count of inner Var1 values for Var2 (ignored for the
// other classes).
func (c Class) Slots(innerCount int) int {
	switch c {
	case Fixed:
		return 0
	case Var1Bytes, Var1FixedElements:
		return 1
	case Var2:
		return innerCount
	default:
		return 0
	}
}
