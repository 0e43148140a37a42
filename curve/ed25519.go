package curve

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"io"

	"filippo.io/edwards25519"
)

// ed25519Group implements Group over the Edwards form of Curve25519, using
// filippo.io/edwards25519 for the field and point arithmetic (the same
// library wurp-go-oprf's dkg and oprf packages build their scalar/point math
// on).
type ed25519Group struct{}

// Ed25519 is the Edwards25519 group backend named in spec.md §6.
var Ed25519 Group = ed25519Group{}

func (ed25519Group) Name() string { return "ed25519" }

func (ed25519Group) NewScalar() Scalar {
	return &ed25519Scalar{s: edwards25519.NewScalar()}
}

func (ed25519Group) NewPoint() Point {
	return &ed25519Point{p: edwards25519.NewIdentityPoint()}
}

func (ed25519Group) Generator() Point {
	return &ed25519Point{p: edwards25519.NewGeneratorPoint()}
}

func (ed25519Group) Identity() Point {
	return &ed25519Point{p: edwards25519.NewIdentityPoint()}
}

func (g ed25519Group) RandomScalar(rng io.Reader) (Scalar, error) {
	for {
		var buf [64]byte
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return nil, fmt.Errorf("curve: reading randomness: %w", err)
		}
		s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
		if err != nil {
			return nil, fmt.Errorf("curve: reducing scalar: %w", err)
		}
		if s.Equal(edwards25519.NewScalar()) == 1 {
			continue // resample on the zero scalar
		}
		return &ed25519Scalar{s: s}, nil
	}
}

func (g ed25519Group) VartimeMultiscalarMul(scalars []Scalar, points []Point) Point {
	return VartimeMultiscalarMulGeneric(g, scalars, points)
}

type ed25519Scalar struct{ s *edwards25519.Scalar }

func asEd25519Scalar(x Scalar) *edwards25519.Scalar {
	return x.(*ed25519Scalar).s
}

func (e *ed25519Scalar) Add(x, y Scalar) Scalar {
	e.s.Add(asEd25519Scalar(x), asEd25519Scalar(y))
	return e
}

func (e *ed25519Scalar) Sub(x, y Scalar) Scalar {
	e.s.Subtract(asEd25519Scalar(x), asEd25519Scalar(y))
	return e
}

func (e *ed25519Scalar) Mul(x, y Scalar) Scalar {
	e.s.Multiply(asEd25519Scalar(x), asEd25519Scalar(y))
	return e
}

func (e *ed25519Scalar) Invert(x Scalar) Scalar {
	e.s.Invert(asEd25519Scalar(x))
	return e
}

func (e *ed25519Scalar) Negate(x Scalar) Scalar {
	e.s.Negate(asEd25519Scalar(x))
	return e
}

func (e *ed25519Scalar) Set(x Scalar) Scalar {
	e.s.Set(asEd25519Scalar(x))
	return e
}

func (e *ed25519Scalar) SetUint64(v uint64) Scalar {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:8], v)
	if _, err := e.s.SetCanonicalBytes(buf[:]); err != nil {
		panic(fmt.Sprintf("curve: small scalar did not parse: %v", err))
	}
	return e
}

func (e *ed25519Scalar) IsZero() bool {
	return e.s.Equal(edwards25519.NewScalar()) == 1
}

func (e *ed25519Scalar) Equal(x Scalar) bool {
	return subtle.ConstantTimeCompare(e.s.Bytes(), asEd25519Scalar(x).Bytes()) == 1
}

func (e *ed25519Scalar) MarshalBinary() ([]byte, error) {
	return e.s.Bytes(), nil
}

func (e *ed25519Scalar) UnmarshalBinary(data []byte) error {
	_, err := e.s.SetCanonicalBytes(data)
	if err != nil {
		return fmt.Errorf("curve: malformed ed25519 scalar: %w", err)
	}
	return nil
}

type ed25519Point struct{ p *edwards25519.Point }

func asEd25519Point(x Point) *edwards25519.Point {
	return x.(*ed25519Point).p
}

func (e *ed25519Point) Add(x, y Point) Point {
	e.p.Add(asEd25519Point(x), asEd25519Point(y))
	return e
}

func (e *ed25519Point) Sub(x, y Point) Point {
	e.p.Subtract(asEd25519Point(x), asEd25519Point(y))
	return e
}

func (e *ed25519Point) Negate(x Point) Point {
	e.p.Negate(asEd25519Point(x))
	return e
}

func (e *ed25519Point) Mul(x Point, s Scalar) Point {
	e.p.ScalarMult(asEd25519Scalar(s), asEd25519Point(x))
	return e
}

func (e *ed25519Point) MulGen(s Scalar) Point {
	e.p.ScalarBaseMult(asEd25519Scalar(s))
	return e
}

func (e *ed25519Point) Set(x Point) Point {
	e.p.Set(asEd25519Point(x))
	return e
}

func (e *ed25519Point) IsIdentity() bool {
	return subtle.ConstantTimeCompare(e.p.Bytes(), edwards25519.NewIdentityPoint().Bytes()) == 1
}

func (e *ed25519Point) Equal(x Point) bool {
	return subtle.ConstantTimeCompare(e.p.Bytes(), asEd25519Point(x).Bytes()) == 1
}

func (e *ed25519Point) MarshalBinary() ([]byte, error) {
	return e.p.Bytes(), nil
}

func (e *ed25519Point) UnmarshalBinary(data []byte) error {
	_, err := e.p.SetBytes(data)
	if err != nil {
		return fmt.Errorf("curve: malformed ed25519 point: %w", err)
	}
	return nil
}
