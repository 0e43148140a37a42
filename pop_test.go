package elgamal

import (
	"crypto/rand"
	"testing"

	"github.com/takakv/elgamal-sharing/curve"
)

func TestProofOfPossessionAcceptsValidProof(t *testing.T) {
	for _, g := range allGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			const degree = 4
			coeffs := make([]curve.Scalar, degree)
			commitments := make([]curve.Point, degree)
			for j := range coeffs {
				a, err := g.RandomScalar(rand.Reader)
				if err != nil {
					t.Fatalf("random scalar: %v", err)
				}
				coeffs[j] = a
				commitments[j] = g.NewPoint().MulGen(a)
			}

			proof, err := ProvePossession(g, coeffs, commitments, rand.Reader)
			if err != nil {
				t.Fatalf("prove: %v", err)
			}
			if err := proof.Verify(g, commitments); err != nil {
				t.Errorf("verify rejected a valid proof: %v", err)
			}
		})
	}
}

func TestProofOfPossessionRejectsTamperedCommitment(t *testing.T) {
	g := curve.Ristretto255
	coeffs := []curve.Scalar{mustScalar(t, g, 3), mustScalar(t, g, 5)}
	commitments := []curve.Point{g.NewPoint().MulGen(coeffs[0]), g.NewPoint().MulGen(coeffs[1])}

	proof, err := ProvePossession(g, coeffs, commitments, rand.Reader)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	tampered := append([]curve.Point(nil), commitments...)
	tampered[1] = g.NewPoint().MulGen(mustScalar(t, g, 999))

	if err := proof.Verify(g, tampered); err == nil {
		t.Error("verify accepted a proof against tampered commitments")
	}
}

func TestProofOfPossessionRejectsTamperedResponse(t *testing.T) {
	g := curve.Ristretto255
	coeffs := []curve.Scalar{mustScalar(t, g, 3), mustScalar(t, g, 5)}
	commitments := []curve.Point{g.NewPoint().MulGen(coeffs[0]), g.NewPoint().MulGen(coeffs[1])}

	proof, err := ProvePossession(g, coeffs, commitments, rand.Reader)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}
	proof.Responses[0] = g.NewScalar().Add(proof.Responses[0], g.NewScalar().SetUint64(1))

	if err := proof.Verify(g, commitments); err == nil {
		t.Error("verify accepted a proof with a tampered response")
	}
}

func mustScalar(t *testing.T, g curve.Group, v uint64) curve.Scalar {
	t.Helper()
	return g.NewScalar().SetUint64(v)
}
