package curve

import (
	"crypto/rand"
	"testing"
)

var allGroups = []Group{Ed25519, Ristretto255, Secp256k1}

func TestScalarArithmetic(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			a, err := g.RandomScalar(rand.Reader)
			if err != nil {
				t.Fatalf("random scalar: %v", err)
			}
			b, err := g.RandomScalar(rand.Reader)
			if err != nil {
				t.Fatalf("random scalar: %v", err)
			}

			sum := g.NewScalar().Add(a, b)
			back := g.NewScalar().Sub(sum, b)
			if !back.Equal(a) {
				t.Error("Add then Sub did not round-trip")
			}

			prod := g.NewScalar().Mul(a, b)
			inv := g.NewScalar().Invert(b)
			back = g.NewScalar().Mul(prod, inv)
			if !back.Equal(a) {
				t.Error("Mul then Invert did not round-trip")
			}

			neg := g.NewScalar().Negate(a)
			zero := g.NewScalar().Add(a, neg)
			if !zero.IsZero() {
				t.Error("a + (-a) is not zero")
			}
		})
	}
}

func TestScalarMarshalRoundTrip(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			s, err := g.RandomScalar(rand.Reader)
			if err != nil {
				t.Fatalf("random scalar: %v", err)
			}
			enc, err := s.MarshalBinary()
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			back := g.NewScalar()
			if err := back.UnmarshalBinary(enc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !back.Equal(s) {
				t.Error("scalar did not round-trip through MarshalBinary/UnmarshalBinary")
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			two := g.NewScalar().SetUint64(2)
			three := g.NewScalar().SetUint64(3)

			doubled := g.NewPoint().MulGen(two)
			added := g.NewPoint().Add(g.Generator(), g.Generator())
			if !doubled.Equal(added) {
				t.Error("2*B != B+B")
			}

			tripled := g.NewPoint().MulGen(three)
			addedAgain := g.NewPoint().Add(added, g.Generator())
			if !tripled.Equal(addedAgain) {
				t.Error("3*B != 2*B+B")
			}

			back := g.NewPoint().Sub(tripled, g.Generator())
			if !back.Equal(added) {
				t.Error("3*B - B != 2*B")
			}

			zero := g.NewScalar().SetUint64(0)
			if !g.NewPoint().MulGen(zero).IsIdentity() {
				t.Error("0*B is not the identity")
			}
		})
	}
}

func TestPointMarshalRoundTrip(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			s, err := g.RandomScalar(rand.Reader)
			if err != nil {
				t.Fatalf("random scalar: %v", err)
			}
			p := g.NewPoint().MulGen(s)

			enc, err := p.MarshalBinary()
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			back := g.NewPoint()
			if err := back.UnmarshalBinary(enc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !back.Equal(p) {
				t.Error("point did not round-trip through MarshalBinary/UnmarshalBinary")
			}

			identEnc, err := g.Identity().MarshalBinary()
			if err != nil {
				t.Fatalf("marshal identity: %v", err)
			}
			identBack := g.NewPoint()
			if err := identBack.UnmarshalBinary(identEnc); err != nil {
				t.Fatalf("unmarshal identity: %v", err)
			}
			if !identBack.IsIdentity() {
				t.Error("identity did not round-trip")
			}
		})
	}
}

func TestVartimeMultiscalarMul(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			a, _ := g.RandomScalar(rand.Reader)
			b, _ := g.RandomScalar(rand.Reader)
			P := g.NewPoint().MulGen(a)
			Q := g.NewPoint().MulGen(b)

			want := g.NewPoint().Add(g.NewPoint().Mul(P, b), g.NewPoint().Mul(Q, a))
			got := g.VartimeMultiscalarMul([]Scalar{b, a}, []Point{P, Q})
			if !got.Equal(want) {
				t.Error("VartimeMultiscalarMul disagreed with pointwise Mul+Add")
			}
		})
	}
}
