package elgamal

import (
	"fmt"
	"io"

	"github.com/takakv/elgamal-sharing/curve"
	"github.com/takakv/elgamal-sharing/elgamalerr"
)

// choiceProofLabel domain-separates EncryptedChoice's sum-is-one proof from
// every other LogEqualityProof use site (spec.md §6).
const choiceProofLabel = "choice_proof"

// EncryptedChoice encrypts a one-hot selector of length n: Variants[Selected]
// encrypts 1*B and every other variant encrypts 0*B (spec.md §4.9). It
// carries the proofs needed to convince a verifier of that invariant without
// revealing Selected: a RingProof per variant restricting it to {0*B, 1*B},
// and a single sum proof that the variants add up to exactly 1*B.
type EncryptedChoice struct {
	Variants   []Encryption
	RangeProof []RingProof
	SumProof   LogEqualityProof
}

// NewEncryptedChoice encrypts selector under pk, where selected is the
// one-hot index in [0,n).
func NewEncryptedChoice(g curve.Group, n, selected int, pk PublicKey, rng io.Reader) (EncryptedChoice, error) {
	if n < 1 {
		return EncryptedChoice{}, fmt.Errorf("elgamal: encrypted choice needs n >= 1, got %d", n)
	}
	if selected < 0 || selected >= n {
		return EncryptedChoice{}, fmt.Errorf("elgamal: selected index %d out of range [0,%d)", selected, n)
	}

	admissible := []curve.Point{g.Identity(), g.Generator()}

	variants := make([]Encryption, n)
	randomness := make([]curve.Scalar, n)
	rangeProofs := make([]RingProof, n)

	for i := 0; i < n; i++ {
		var m curve.Point
		if i == selected {
			m = g.Generator()
		} else {
			m = g.Identity()
		}

		enc, r, err := newEncryptionWithRandomness(g, m, pk, rng)
		if err != nil {
			return EncryptedChoice{}, err
		}
		variants[i] = enc
		randomness[i] = r

		secretIndex := 0
		if i == selected {
			secretIndex = 1
		}
		proof, err := ProveRing(g, i, enc, pk, admissible, secretIndex, r, rng)
		if err != nil {
			return EncryptedChoice{}, err
		}
		rangeProofs[i] = proof
	}

	sum := ZeroEncryption(g)
	rSum := g.NewScalar()
	for i := range variants {
		sum = sum.Add(variants[i])
		rSum = g.NewScalar().Add(rSum, randomness[i])
	}

	sumProof, err := ProveEquality(g, choiceProofLabel, g.Generator(), pk.Point(), sum.R, g.NewPoint().Sub(sum.D, g.Generator()), rSum, rng)
	if err != nil {
		return EncryptedChoice{}, err
	}

	return EncryptedChoice{Variants: variants, RangeProof: rangeProofs, SumProof: sumProof}, nil
}

// Verify checks both the per-variant range proofs and the sum-is-one proof
// against pk, accepting iff the ciphertexts encrypt a valid one-hot vector
// (spec.md §4.9, §8 item 6).
func (c EncryptedChoice) Verify(g curve.Group, pk PublicKey) error {
	n := len(c.Variants)
	if len(c.RangeProof) != n {
		return elgamalerr.NewInvalidProof("choice_proof", "variant/range-proof length mismatch")
	}

	admissible := []curve.Point{g.Identity(), g.Generator()}
	for i, v := range c.Variants {
		if err := c.RangeProof[i].Verify(g, i, v, pk, admissible); err != nil {
			return err
		}
	}

	sum := ZeroEncryption(g)
	for _, v := range c.Variants {
		sum = sum.Add(v)
	}

	diff := g.NewPoint().Sub(sum.D, g.Generator())
	return c.SumProof.Verify(g, choiceProofLabel, g.Generator(), pk.Point(), sum.R, diff)
}
