// Package curve abstracts the prime-order group arithmetic that the rest of
// the module builds on. It plays the same role as takakv-msc-poc/group did
// for the elliptic-curve voting prototype, except that a group's scalar
// field is now a first-class type (Scalar) distinct from its point type
// (Point), rather than every operation taking a raw *big.Int exponent.
//
// Concrete backends (ed25519.go, ristretto255.go, secp256k1.go) each wrap a
// single third-party curve library. Nothing in this package or its callers
// may reach past the Group/Scalar/Point interfaces into backend internals.
package curve

import "io"

// Scalar is an element of a prime-order group's scalar field.
type Scalar interface {
	// Add sets the receiver to x + y and returns it.
	Add(x, y Scalar) Scalar
	// Sub sets the receiver to x - y and returns it.
	Sub(x, y Scalar) Scalar
	// Mul sets the receiver to x * y and returns it.
	Mul(x, y Scalar) Scalar
	// Invert sets the receiver to x^-1 and returns it. x must be non-zero.
	Invert(x Scalar) Scalar
	// Negate sets the receiver to -x and returns it.
	Negate(x Scalar) Scalar
	// SetUint64 sets the receiver to the given small integer and returns it.
	SetUint64(v uint64) Scalar
	// Set sets the receiver to x and returns it.
	Set(x Scalar) Scalar
	// IsZero reports whether the scalar is the additive identity.
	IsZero() bool
	// Equal reports whether the receiver and x represent the same scalar.
	// Implementations MUST compare in constant time.
	Equal(x Scalar) bool
	// MarshalBinary returns the scalar's canonical fixed-width encoding.
	MarshalBinary() ([]byte, error)
	// UnmarshalBinary sets the receiver from a canonical encoding produced by
	// MarshalBinary, rejecting non-canonical representations.
	UnmarshalBinary(data []byte) error
}

// Point is an element of a prime-order group.
type Point interface {
	// Add sets the receiver to x + y and returns it.
	Add(x, y Point) Point
	// Sub sets the receiver to x - y and returns it.
	Sub(x, y Point) Point
	// Negate sets the receiver to -x and returns it.
	Negate(x Point) Point
	// Mul sets the receiver to s*x and returns it.
	Mul(x Point, s Scalar) Point
	// MulGen sets the receiver to s*B, where B is the group's generator, and
	// returns it.
	MulGen(s Scalar) Point
	// Set sets the receiver to x and returns it.
	Set(x Point) Point
	// IsIdentity reports whether the point is the group's identity element.
	IsIdentity() bool
	// Equal reports whether the receiver and x represent the same point.
	// Implementations MUST compare in constant time.
	Equal(x Point) bool
	// MarshalBinary returns the point's canonical compressed encoding.
	MarshalBinary() ([]byte, error)
	// UnmarshalBinary sets the receiver from a canonical encoding produced by
	// MarshalBinary, rejecting non-canonical representations.
	UnmarshalBinary(data []byte) error
}

// Group is a prime-order group together with its scalar field, as required
// by spec component C1. All secret-dependent operations exposed by a
// conforming implementation (scalar sampling, Mul/MulGen with a secret
// scalar operand) must run in constant time; only operations that only ever
// see public data (VartimeMultiscalarMul, verification arithmetic) may take
// input-dependent time.
type Group interface {
	// Name identifies the group, e.g. for error messages and domain
	// separation of derived protocols.
	Name() string
	// NewScalar returns a scalar set to zero.
	NewScalar() Scalar
	// NewPoint returns a point set to the identity.
	NewPoint() Point
	// Generator returns the group's distinguished generator B.
	Generator() Point
	// Identity returns the group's identity element.
	Identity() Point
	// RandomScalar samples a uniform non-zero scalar using rng.
	RandomScalar(rng io.Reader) (Scalar, error)
	// VartimeMultiscalarMul computes sum(scalars[i] * points[i]). Callers
	// MUST only invoke this with public scalars and points: the evaluation
	// is permitted to run in variable time.
	VartimeMultiscalarMul(scalars []Scalar, points []Point) Point
}
