package elgamal

import (
	"fmt"
	"io"

	"github.com/takakv/elgamal-sharing/curve"
	"github.com/takakv/elgamal-sharing/elgamalerr"
	"github.com/takakv/elgamal-sharing/transcript"
)

// ringProofLabel is the top-level domain separator for every RingProof
// (spec.md §6).
const ringProofLabel = "ring_proof"

// RingProof proves, for a ciphertext (R, D) encrypted under pk, that D -
// v_i*B = r*pk and R = r*B for some admissible index i and some known
// randomness r, without revealing i (spec.md §3, §4.6). It is used both
// standalone (1-of-N selection) and, with the admissible set {0*B, 1*B},
// as the per-variant well-formedness proof inside EncryptedChoice (C9).
//
// The proof is a single Fiat-Shamir challenge plus one response per
// admissible value: a ring of Schnorr-OR commitments chained in canonical
// index order (the Abe-Ohkubo-Suzuki construction), so verification never
// needs to know which index was real. Index i*'s branch is seeded by a
// genuine nonce; every other branch is simulated from a random response and
// the challenge handed on by the previous branch. Each branch's outgoing challenge is a hash
// of that branch alone (ciphertext index, admissible-value index, and its
// two commitments) so the chain can be replayed starting from any index:
// the incoming challenge is already folded into a simulated branch's
// commitments, and the real branch's commitments need no incoming challenge
// at all, which is what lets the ring close regardless of where the
// genuine index sits.
type RingProof struct {
	Challenge curve.Scalar
	Responses []curve.Scalar
}

// ringBranchChallenge hashes a single ring branch in isolation: ciphertext
// index, admissible-value index, and the branch's two commitments. Using a
// fresh transcript per branch (rather than one cumulative transcript for
// the whole ring) is what makes the resulting chain independent of
// traversal order.
func ringBranchChallenge(g curve.Group, ciphertextIndex, index int, E, F curve.Point) (curve.Scalar, error) {
	t := transcript.New(ringProofLabel)
	t.AppendUint64("ciphertext_index", uint64(ciphertextIndex))
	t.AppendUint64("index", uint64(index))
	if err := t.AppendPoint("commitment_e", E); err != nil {
		return nil, err
	}
	if err := t.AppendPoint("commitment_f", F); err != nil {
		return nil, err
	}
	return t.ChallengeScalar("challenge", g)
}

// ProveRing proves that ciphertextIndex-th ciphertext enc (under pk) is an
// encryption of one of values, where values[secretIndex] is the true
// plaintext and secretRandomness is the randomness used to build enc.
// ciphertextIndex domain-separates multiple independent ring proofs sharing
// one EncryptedChoice (spec.md §4.9).
func ProveRing(g curve.Group, ciphertextIndex int, enc Encryption, pk PublicKey, values []curve.Point, secretIndex int, secretRandomness curve.Scalar, rng io.Reader) (RingProof, error) {
	n := len(values)
	if secretIndex < 0 || secretIndex >= n {
		return RingProof{}, fmt.Errorf("elgamal: ring proof secret index %d out of range [0,%d)", secretIndex, n)
	}

	k, err := g.RandomScalar(rng)
	if err != nil {
		return RingProof{}, err
	}
	realE := g.NewPoint().MulGen(k)
	realF := g.NewPoint().Mul(pk.Point(), k)

	challenges := make([]curve.Scalar, n)
	responses := make([]curve.Scalar, n)

	next := (secretIndex + 1) % n
	c, err := ringBranchChallenge(g, ciphertextIndex, secretIndex, realE, realF)
	if err != nil {
		return RingProof{}, err
	}
	challenges[next] = c

	for idx := next; idx != secretIndex; idx = (idx + 1) % n {
		r, err := g.RandomScalar(rng)
		if err != nil {
			return RingProof{}, err
		}
		responses[idx] = r

		diff := g.NewPoint().Sub(enc.D, values[idx])
		E := g.NewPoint().Sub(g.NewPoint().MulGen(r), g.NewPoint().Mul(enc.R, challenges[idx]))
		F := g.NewPoint().Sub(g.NewPoint().Mul(pk.Point(), r), g.NewPoint().Mul(diff, challenges[idx]))

		nextIdx := (idx + 1) % n
		c, err := ringBranchChallenge(g, ciphertextIndex, idx, E, F)
		if err != nil {
			return RingProof{}, err
		}
		challenges[nextIdx] = c
	}

	responses[secretIndex] = g.NewScalar().Add(k, g.NewScalar().Mul(challenges[secretIndex], secretRandomness))

	return RingProof{Challenge: challenges[0], Responses: responses}, nil
}

// Verify checks that enc encrypts one of values, replaying the canonical
// index-order chain from the stored anchor challenge and checking that it
// wraps back to itself (spec.md §4.6).
func (p RingProof) Verify(g curve.Group, ciphertextIndex int, enc Encryption, pk PublicKey, values []curve.Point) error {
	n := len(values)
	if len(p.Responses) != n {
		return elgamalerr.NewInvalidProof("ring_proof", "response/value length mismatch")
	}

	c := p.Challenge
	for i := 0; i < n; i++ {
		diff := g.NewPoint().Sub(enc.D, values[i])
		E := g.NewPoint().Sub(g.NewPoint().MulGen(p.Responses[i]), g.NewPoint().Mul(enc.R, c))
		F := g.NewPoint().Sub(g.NewPoint().Mul(pk.Point(), p.Responses[i]), g.NewPoint().Mul(diff, c))

		next, err := ringBranchChallenge(g, ciphertextIndex, i, E, F)
		if err != nil {
			return err
		}
		c = next
	}

	if !c.Equal(p.Challenge) {
		return elgamalerr.NewInvalidProof("ring_proof", "challenge did not close the ring")
	}
	return nil
}
