package curve

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// secp256k1Group implements Group over the secp256k1 curve, using
// github.com/decred/dcrd/dcrec/secp256k1/v4 (grounded in luxfi-threshold's
// go.mod, which depends on the same package for its own threshold-signature
// arithmetic).
//
// Every scalar multiplication in this backend, including those with secret
// scalars, goes through the library's variable-time NonConst routines, and
// Invert uses InverseNonConst; this backend does not run in constant time.
type secp256k1Group struct{}

// Secp256k1 is the secp256k1 group backend named in spec.md §6.
var Secp256k1 Group = secp256k1Group{}

func (secp256k1Group) Name() string { return "secp256k1" }

func (secp256k1Group) NewScalar() Scalar {
	return &secp256k1Scalar{s: new(secp256k1.ModNScalar)}
}

func (secp256k1Group) NewPoint() Point {
	return &secp256k1Point{p: identityJacobian()}
}

func (secp256k1Group) Generator() Point {
	one := new(secp256k1.ModNScalar).SetInt(1)
	var p secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(one, &p)
	return &secp256k1Point{p: p}
}

func (secp256k1Group) Identity() Point {
	return &secp256k1Point{p: identityJacobian()}
}

func identityJacobian() secp256k1.JacobianPoint {
	var p secp256k1.JacobianPoint
	p.X.SetInt(0)
	p.Y.SetInt(1)
	p.Z.SetInt(0)
	return p
}

func (g secp256k1Group) RandomScalar(rng io.Reader) (Scalar, error) {
	for {
		var buf [32]byte
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return nil, fmt.Errorf("curve: reading randomness: %w", err)
		}
		s := new(secp256k1.ModNScalar)
		s.SetByteSlice(buf[:])
		if s.IsZero() {
			continue // resample on the zero scalar
		}
		return &secp256k1Scalar{s: s}, nil
	}
}

func (g secp256k1Group) VartimeMultiscalarMul(scalars []Scalar, points []Point) Point {
	return VartimeMultiscalarMulGeneric(g, scalars, points)
}

type secp256k1Scalar struct{ s *secp256k1.ModNScalar }

func asSecpScalar(x Scalar) *secp256k1.ModNScalar {
	return x.(*secp256k1Scalar).s
}

func (e *secp256k1Scalar) Add(x, y Scalar) Scalar {
	e.s.Add2(asSecpScalar(x), asSecpScalar(y))
	return e
}

func (e *secp256k1Scalar) Sub(x, y Scalar) Scalar {
	neg := new(secp256k1.ModNScalar).NegateVal(asSecpScalar(y))
	e.s.Add2(asSecpScalar(x), neg)
	return e
}

func (e *secp256k1Scalar) Mul(x, y Scalar) Scalar {
	e.s.Mul2(asSecpScalar(x), asSecpScalar(y))
	return e
}

func (e *secp256k1Scalar) Invert(x Scalar) Scalar {
	e.s.Set(asSecpScalar(x))
	e.s.InverseNonConst()
	return e
}

func (e *secp256k1Scalar) Negate(x Scalar) Scalar {
	e.s.NegateVal(asSecpScalar(x))
	return e
}

func (e *secp256k1Scalar) Set(x Scalar) Scalar {
	e.s.Set(asSecpScalar(x))
	return e
}

func (e *secp256k1Scalar) SetUint64(v uint64) Scalar {
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[24:], v)
	e.s.SetByteSlice(buf[:])
	return e
}

func (e *secp256k1Scalar) IsZero() bool {
	return e.s.IsZero()
}

func (e *secp256k1Scalar) Equal(x Scalar) bool {
	a := e.s.Bytes()
	b := asSecpScalar(x).Bytes()
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

func (e *secp256k1Scalar) MarshalBinary() ([]byte, error) {
	b := e.s.Bytes()
	return b[:], nil
}

func (e *secp256k1Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("curve: malformed secp256k1 scalar: want 32 bytes, got %d", len(data))
	}
	overflow := e.s.SetByteSlice(data)
	if overflow {
		return fmt.Errorf("curve: malformed secp256k1 scalar: not canonical")
	}
	return nil
}

type secp256k1Point struct{ p secp256k1.JacobianPoint }

func asSecpPoint(x Point) *secp256k1.JacobianPoint {
	return &x.(*secp256k1Point).p
}

func (e *secp256k1Point) Add(x, y Point) Point {
	secp256k1.AddNonConst(asSecpPoint(x), asSecpPoint(y), &e.p)
	return e
}

func (e *secp256k1Point) Sub(x, y Point) Point {
	neg := *asSecpPoint(y)
	neg.Y.Negate(1).Normalize()
	secp256k1.AddNonConst(asSecpPoint(x), &neg, &e.p)
	return e
}

func (e *secp256k1Point) Negate(x Point) Point {
	e.p = *asSecpPoint(x)
	e.p.Y.Negate(1).Normalize()
	return e
}

func (e *secp256k1Point) Mul(x Point, s Scalar) Point {
	secp256k1.ScalarMultNonConst(asSecpScalar(s), asSecpPoint(x), &e.p)
	return e
}

func (e *secp256k1Point) MulGen(s Scalar) Point {
	secp256k1.ScalarBaseMultNonConst(asSecpScalar(s), &e.p)
	return e
}

func (e *secp256k1Point) Set(x Point) Point {
	e.p = *asSecpPoint(x)
	return e
}

func (e *secp256k1Point) IsIdentity() bool {
	p := e.p
	p.ToAffine()
	return p.Z.IsZero() || (p.X.IsZero() && p.Y.IsZero())
}

func (e *secp256k1Point) Equal(x Point) bool {
	a, errA := e.MarshalBinary()
	b, errB := x.MarshalBinary()
	if errA != nil || errB != nil {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

func (e *secp256k1Point) MarshalBinary() ([]byte, error) {
	if e.IsIdentity() {
		return []byte{0}, nil
	}
	p := e.p
	p.ToAffine()
	pub := secp256k1.NewPublicKey(&p.X, &p.Y)
	return pub.SerializeCompressed(), nil
}

func (e *secp256k1Point) UnmarshalBinary(data []byte) error {
	if len(data) == 1 && data[0] == 0 {
		e.p = identityJacobian()
		return nil
	}
	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return fmt.Errorf("curve: malformed secp256k1 point: %w", err)
	}
	pub.AsJacobian(&e.p)
	return nil
}
