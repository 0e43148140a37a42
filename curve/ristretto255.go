package curve

import (
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/gtank/ristretto255"
)

// ristretto255Group implements Group over the Ristretto255 prime-order
// group, using github.com/gtank/ristretto255 — the same library
// wurp-go-oprf's dkg package uses for its ScalarBaseMult/ScalarMult/Add/
// Encode/Decode calls.
type ristretto255Group struct{}

// Ristretto255 is the Ristretto group backend named in spec.md §6.
var Ristretto255 Group = ristretto255Group{}

func (ristretto255Group) Name() string { return "ristretto255" }

func (ristretto255Group) NewScalar() Scalar {
	return &ristrettoScalar{s: ristretto255.NewScalar()}
}

func (ristretto255Group) NewPoint() Point {
	return &ristrettoPoint{p: ristretto255.NewElement()}
}

func (ristretto255Group) Generator() Point {
	one := ristretto255.NewScalar()
	_ = one.Decode(oneLE32())
	return &ristrettoPoint{p: ristretto255.NewElement().ScalarBaseMult(one)}
}

func (ristretto255Group) Identity() Point {
	return &ristrettoPoint{p: ristretto255.NewElement()}
}

func (g ristretto255Group) RandomScalar(rng io.Reader) (Scalar, error) {
	for {
		var buf [64]byte
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return nil, fmt.Errorf("curve: reading randomness: %w", err)
		}
		s := ristretto255.NewScalar().FromUniformBytes(buf[:])
		zero := ristretto255.NewScalar()
		if subtle.ConstantTimeCompare(s.Encode(nil), zero.Encode(nil)) == 1 {
			continue // resample on the zero scalar
		}
		return &ristrettoScalar{s: s}, nil
	}
}

func (g ristretto255Group) VartimeMultiscalarMul(scalars []Scalar, points []Point) Point {
	return VartimeMultiscalarMulGeneric(g, scalars, points)
}

func oneLE32() []byte {
	buf := make([]byte, 32)
	buf[0] = 1
	return buf
}

type ristrettoScalar struct{ s *ristretto255.Scalar }

func asRistrettoScalar(x Scalar) *ristretto255.Scalar {
	return x.(*ristrettoScalar).s
}

func (e *ristrettoScalar) Add(x, y Scalar) Scalar {
	e.s.Add(asRistrettoScalar(x), asRistrettoScalar(y))
	return e
}

func (e *ristrettoScalar) Sub(x, y Scalar) Scalar {
	e.s.Subtract(asRistrettoScalar(x), asRistrettoScalar(y))
	return e
}

func (e *ristrettoScalar) Mul(x, y Scalar) Scalar {
	e.s.Multiply(asRistrettoScalar(x), asRistrettoScalar(y))
	return e
}

func (e *ristrettoScalar) Invert(x Scalar) Scalar {
	e.s.Invert(asRistrettoScalar(x))
	return e
}

func (e *ristrettoScalar) Negate(x Scalar) Scalar {
	e.s.Negate(asRistrettoScalar(x))
	return e
}

func (e *ristrettoScalar) Set(x Scalar) Scalar {
	e.s.Set(asRistrettoScalar(x))
	return e
}

func (e *ristrettoScalar) SetUint64(v uint64) Scalar {
	buf := make([]byte, 32)
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	if err := e.s.Decode(buf); err != nil {
		panic(fmt.Sprintf("curve: small scalar did not parse: %v", err))
	}
	return e
}

func (e *ristrettoScalar) IsZero() bool {
	zero := ristretto255.NewScalar()
	return subtle.ConstantTimeCompare(e.s.Encode(nil), zero.Encode(nil)) == 1
}

func (e *ristrettoScalar) Equal(x Scalar) bool {
	return subtle.ConstantTimeCompare(e.s.Encode(nil), asRistrettoScalar(x).Encode(nil)) == 1
}

func (e *ristrettoScalar) MarshalBinary() ([]byte, error) {
	return e.s.Encode(nil), nil
}

func (e *ristrettoScalar) UnmarshalBinary(data []byte) error {
	if err := e.s.Decode(data); err != nil {
		return fmt.Errorf("curve: malformed ristretto255 scalar: %w", err)
	}
	return nil
}

type ristrettoPoint struct{ p *ristretto255.Element }

func asRistrettoPoint(x Point) *ristretto255.Element {
	return x.(*ristrettoPoint).p
}

func (e *ristrettoPoint) Add(x, y Point) Point {
	e.p.Add(asRistrettoPoint(x), asRistrettoPoint(y))
	return e
}

func (e *ristrettoPoint) Sub(x, y Point) Point {
	e.p.Subtract(asRistrettoPoint(x), asRistrettoPoint(y))
	return e
}

func (e *ristrettoPoint) Negate(x Point) Point {
	e.p.Negate(asRistrettoPoint(x))
	return e
}

func (e *ristrettoPoint) Mul(x Point, s Scalar) Point {
	e.p.ScalarMult(asRistrettoScalar(s), asRistrettoPoint(x))
	return e
}

func (e *ristrettoPoint) MulGen(s Scalar) Point {
	e.p.ScalarBaseMult(asRistrettoScalar(s))
	return e
}

func (e *ristrettoPoint) Set(x Point) Point {
	e.p.Set(asRistrettoPoint(x))
	return e
}

func (e *ristrettoPoint) IsIdentity() bool {
	identity := ristretto255.NewElement()
	return subtle.ConstantTimeCompare(e.p.Encode(nil), identity.Encode(nil)) == 1
}

func (e *ristrettoPoint) Equal(x Point) bool {
	return subtle.ConstantTimeCompare(e.p.Encode(nil), asRistrettoPoint(x).Encode(nil)) == 1
}

func (e *ristrettoPoint) MarshalBinary() ([]byte, error) {
	return e.p.Encode(nil), nil
}

func (e *ristrettoPoint) UnmarshalBinary(data []byte) error {
	if err := e.p.Decode(data); err != nil {
		return fmt.Errorf("curve: malformed ristretto255 point: %w", err)
	}
	return nil
}
