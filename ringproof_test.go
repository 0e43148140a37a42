package elgamal

import (
	"crypto/rand"
	"testing"

	"github.com/takakv/elgamal-sharing/curve"
)

func TestRingProofAcceptsEveryAdmissibleIndex(t *testing.T) {
	g := curve.Ristretto255
	kp, err := GenerateKeypair(g, rand.Reader)
	if err != nil {
		t.Fatalf("generate keypair: %v", err)
	}

	values := make([]curve.Point, 5)
	for i := range values {
		values[i] = g.NewPoint().MulGen(g.NewScalar().SetUint64(uint64(i)))
	}

	// Exercise every admissible index as the real one, in particular indices
	// other than 0, to guard against the chain depending on traversal order
	// rather than being replayable from canonical index 0.
	for secretIndex := range values {
		secretIndex := secretIndex
		t.Run("", func(t *testing.T) {
			enc, r, err := newEncryptionWithRandomness(g, values[secretIndex], kp.Public, rand.Reader)
			if err != nil {
				t.Fatalf("encrypt: %v", err)
			}

			proof, err := ProveRing(g, 0, enc, kp.Public, values, secretIndex, r, rand.Reader)
			if err != nil {
				t.Fatalf("prove: %v", err)
			}
			if err := proof.Verify(g, 0, enc, kp.Public, values); err != nil {
				t.Errorf("secretIndex=%d: verify rejected a valid proof: %v", secretIndex, err)
			}
		})
	}
}

func TestRingProofRejectsValueOutsideAdmissibleSet(t *testing.T) {
	g := curve.Ristretto255
	kp, err := GenerateKeypair(g, rand.Reader)
	if err != nil {
		t.Fatalf("generate keypair: %v", err)
	}

	values := []curve.Point{g.Identity(), g.Generator()}
	outOfSet := g.NewPoint().MulGen(g.NewScalar().SetUint64(2))

	enc, r, err := newEncryptionWithRandomness(g, outOfSet, kp.Public, rand.Reader)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	// There is no valid secretIndex for a value outside the admissible set;
	// forcing index 0 produces a proof that must fail verification.
	proof, err := ProveRing(g, 0, enc, kp.Public, values, 0, r, rand.Reader)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}
	if err := proof.Verify(g, 0, enc, kp.Public, values); err == nil {
		t.Error("verify accepted an encryption of a value outside the admissible set")
	}
}

func TestRingProofRejectsTamperedResponse(t *testing.T) {
	g := curve.Ristretto255
	kp, err := GenerateKeypair(g, rand.Reader)
	if err != nil {
		t.Fatalf("generate keypair: %v", err)
	}

	values := []curve.Point{g.Identity(), g.Generator()}
	enc, r, err := newEncryptionWithRandomness(g, values[1], kp.Public, rand.Reader)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	proof, err := ProveRing(g, 0, enc, kp.Public, values, 1, r, rand.Reader)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}
	proof.Responses[0] = g.NewScalar().Add(proof.Responses[0], g.NewScalar().SetUint64(1))

	if err := proof.Verify(g, 0, enc, kp.Public, values); err == nil {
		t.Error("verify accepted a proof with a tampered response")
	}
}

func TestRingProofRejectsWrongCiphertextIndex(t *testing.T) {
	g := curve.Ristretto255
	kp, err := GenerateKeypair(g, rand.Reader)
	if err != nil {
		t.Fatalf("generate keypair: %v", err)
	}

	values := []curve.Point{g.Identity(), g.Generator()}
	enc, r, err := newEncryptionWithRandomness(g, values[0], kp.Public, rand.Reader)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	proof, err := ProveRing(g, 2, enc, kp.Public, values, 0, r, rand.Reader)
	if err != nil {
		t.Fatalf("prove: %v", err)
	}
	if err := proof.Verify(g, 3, enc, kp.Public, values); err == nil {
		t.Error("verify accepted a proof bound to a different ciphertext index")
	}
}
