// SPDX-License-Identifier: MIT
// Package spectra: the Triangle selector shared by every layer.
// A symmetric matrix is handed to this library with only one triangular
// half guaranteed to be populated; Triangle names that half. The other
// half is inferred by symmetry and is never read.

package spectra

// Triangle selects which half of a symmetric matrix is authoritative.
type Triangle int

const (
	// Lower means entries (i, j) with i >= j are populated and read.
	Lower Triangle = iota
	// Upper means entries (i, j) with i <= j are populated and read.
	Upper
)

// Valid reports whether t is one of the two defined selectors.
// Constructors reject anything else to keep dispatch tables closed.
func (t Triangle) Valid() bool {
	return t == Lower || t == Upper
}

// Other returns the opposite selector.
func (t Triangle) Other() Triangle {
	if t == Lower {
		return Upper
	}

	return Lower
}

// Contains reports whether position (i, j) lies in the t half,
// diagonal included.
func (t Triangle) Contains(i, j int) bool {
	if t == Lower {
		return i >= j
	}

	return i <= j
}

// String implements fmt.Stringer for diagnostics.
func (t Triangle) String() string {
	switch t {
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	default:
		return "Triangle(invalid)"
	}
}
