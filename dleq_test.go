package elgamal

import (
	"crypto/rand"
	"testing"

	"github.com/takakv/elgamal-sharing/curve"
)

func TestLogEqualityProofAcceptsValidProof(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			s, err := g.RandomScalar(rand.Reader)
			if err != nil {
				t.Fatalf("random scalar: %v", err)
			}
			H, err := g.RandomScalar(rand.Reader)
			if err != nil {
				t.Fatalf("random scalar: %v", err)
			}
			base2 := g.NewPoint().MulGen(H)

			X := g.NewPoint().MulGen(s)
			Y := g.NewPoint().Mul(base2, s)

			proof, err := ProveEquality(g, "test_dleq", g.Generator(), base2, X, Y, s, rand.Reader)
			if err != nil {
				t.Fatalf("prove: %v", err)
			}
			if err := proof.Verify(g, "test_dleq", g.Generator(), base2, X, Y); err != nil {
				t.Errorf("verify rejected a valid proof: %v", err)
			}
		})
	}
}

func TestLogEqualityProofRejectsMismatchedLogs(t *testing.T) {
	g := curve.Ristretto255
	s, err := g.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("random scalar: %v", err)
	}
	other, err := g.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("random scalar: %v", err)
	}
	base2 := g.NewPoint().MulGen(other)

	X := g.NewPoint().MulGen(s)
	// Y deliberately does not share s's discrete log relative to base2.
	Y := g.NewPoint().Mul(base2, other)

	proof, err := ProveEquality(g, "test_dleq", g.Generator(), base2, X, Y, s, rand.Reader)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}
	if err := proof.Verify(g, "test_dleq", g.Generator(), base2, X, Y); err == nil {
		t.Error("verify accepted a proof for an invalid equality")
	}
}

func TestLogEqualityProofRejectsWrongLabel(t *testing.T) {
	g := curve.Ristretto255
	s, err := g.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("random scalar: %v", err)
	}
	X := g.NewPoint().MulGen(s)
	Y := g.NewPoint().Mul(g.Generator(), s)

	proof, err := ProveEquality(g, "label_a", g.Generator(), g.Generator(), X, Y, s, rand.Reader)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}
	if err := proof.Verify(g, "label_b", g.Generator(), g.Generator(), X, Y); err == nil {
		t.Error("verify accepted a proof under the wrong domain label")
	}
}
