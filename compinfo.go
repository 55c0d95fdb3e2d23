// SPDX-License-Identifier: MIT

package spectra

// CompInfo is the status a factorization backend reports after Compute.
// Operators translate anything other than Successful into an error for
// the driving eigensolver; they never retry internally.
type CompInfo int

const (
	// NotComputed means Compute has not run (or ran on nothing yet).
	NotComputed CompInfo = iota
	// Successful means the decomposition is valid and Solve may be called.
	Successful
	// NumericalIssue means the backend detected an unrecoverable numerical
	// breakdown, e.g. an exactly singular pivot at the requested shift.
	NumericalIssue
)

// String implements fmt.Stringer for diagnostics.
func (c CompInfo) String() string {
	switch c {
	case NotComputed:
		return "NotComputed"
	case Successful:
		return "Successful"
	case NumericalIssue:
		return "NumericalIssue"
	default:
		return "CompInfo(invalid)"
	}
}
