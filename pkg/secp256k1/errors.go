package secp256k1

// ErrorKind identifies a kind of error. It has full support for
// errors.Is and errors.As, so the caller can directly check against an
// error kind when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidSecretKey is returned when a scalar used as a secret key
	// is congruent to zero modulo the group order and therefore has no
	// corresponding curve point.
	ErrInvalidSecretKey = ErrorKind("ErrInvalidSecretKey")

	// ErrInvalidPublicKey is returned when the recovery oracle rejects a
	// synthetic recovery input or when parsed point bytes do not describe
	// a point on the curve.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrInvalidYCoordinate is returned by the checked lift when the
	// candidate Y computed for an X coordinate does not satisfy the curve
	// equation, meaning no point with that X exists.
	ErrInvalidYCoordinate = ErrorKind("ErrInvalidYCoordinate")

	// ErrArithmeticOverflow is returned when a modular inverse is
	// requested for an element congruent to zero, which has no inverse.
	ErrArithmeticOverflow = ErrorKind("ErrArithmeticOverflow")

	// ErrPointAtInfinity is returned when adding a point to its additive
	// inverse. The affine encodings have no representation for the group
	// identity, so the sum cannot be expressed.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrInvalidPointEncoding is returned when point bytes have an
	// unknown SEC1 tag or an impossible length.
	ErrInvalidPointEncoding = ErrorKind("ErrInvalidPointEncoding")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 arithmetic. It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error kind.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error kind.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
