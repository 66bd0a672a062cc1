package constraint

import "errors"

var (
	// ErrInputNotSet is returned when a wire of the template has no value in
	// the provided assignment.
	ErrInputNotSet = errors.New("witness value not set")

	// ErrUnknownVariable is returned when an assignment names a variable the
	// circuit does not contain.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrUnsatisfiedConstraint is returned by Validate when a constraint row
	// does not hold for the witness.
	ErrUnsatisfiedConstraint = errors.New("constraint is not satisfied")

	// ErrIndexOutOfRange is returned on sparse-vector accesses past the size.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnsolvable is returned when witness solving meets a gate it cannot
	// isolate, e.g. a division gate whose divisor evaluates to zero.
	ErrUnsolvable = errors.New("cannot solve gate")
)
