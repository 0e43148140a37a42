package elgamal

import (
	"fmt"
	"io"

	"github.com/takakv/elgamal-sharing/curve"
	"github.com/takakv/elgamal-sharing/elgamalerr"
	"github.com/takakv/elgamal-sharing/transcript"
)

// proofOfPossessionLabel is the top-level Fiat-Shamir domain separator for
// this proof (spec.md §4.4, §6). It must never collide with another
// protocol's label.
const proofOfPossessionLabel = "proof_of_possession"

// ProofOfPossession proves knowledge of every coefficient a_0,...,a_{t-1}
// behind a degree-(t-1) polynomial's public commitments A_0,...,A_{t-1}
// (spec.md §4.4). It is a multi-statement Schnorr proof under a single
// Fiat-Shamir challenge, used by a DKG participant (package sharing) to
// convince its peers that it actually knows the polynomial it committed to.
type ProofOfPossession struct {
	Challenge curve.Scalar
	Responses []curve.Scalar
}

// ProvePossession proves knowledge of coeffs, whose public commitments are
// commitments[j] = coeffs[j]*B.
func ProvePossession(g curve.Group, coeffs []curve.Scalar, commitments []curve.Point, rng io.Reader) (ProofOfPossession, error) {
	if len(coeffs) != len(commitments) {
		return ProofOfPossession{}, fmt.Errorf("elgamal: %d coefficients but %d commitments", len(coeffs), len(commitments))
	}

	nonces := make([]curve.Scalar, len(coeffs))
	nonceCommitments := make([]curve.Point, len(coeffs))
	for j := range coeffs {
		k, err := g.RandomScalar(rng)
		if err != nil {
			return ProofOfPossession{}, fmt.Errorf("elgamal: proving possession: %w", err)
		}
		nonces[j] = k
		nonceCommitments[j] = g.NewPoint().MulGen(k)
	}

	t := transcript.New(proofOfPossessionLabel)
	for j := range commitments {
		t.AppendUint64("index", uint64(j))
		if err := t.AppendPoint("commitment", commitments[j]); err != nil {
			return ProofOfPossession{}, err
		}
		if err := t.AppendPoint("nonce_commitment", nonceCommitments[j]); err != nil {
			return ProofOfPossession{}, err
		}
	}
	c, err := t.ChallengeScalar("challenge", g)
	if err != nil {
		return ProofOfPossession{}, err
	}

	responses := make([]curve.Scalar, len(coeffs))
	for j := range coeffs {
		responses[j] = g.NewScalar().Add(nonces[j], g.NewScalar().Mul(c, coeffs[j]))
	}

	return ProofOfPossession{Challenge: c, Responses: responses}, nil
}

// Verify checks the proof against commitments[j] = a_j*B, recomputing each
// nonce commitment K_j = r_j*B - c*A_j and re-deriving the challenge over
// the same transcript layout the prover used (spec.md §4.4).
func (p ProofOfPossession) Verify(g curve.Group, commitments []curve.Point) error {
	if len(p.Responses) != len(commitments) {
		return elgamalerr.NewInvalidProof("proof_of_possession", "response/commitment length mismatch")
	}

	t := transcript.New(proofOfPossessionLabel)
	for j := range commitments {
		nonceCommitment := g.NewPoint().Sub(
			g.NewPoint().MulGen(p.Responses[j]),
			g.NewPoint().Mul(commitments[j], p.Challenge),
		)
		t.AppendUint64("index", uint64(j))
		if err := t.AppendPoint("commitment", commitments[j]); err != nil {
			return err
		}
		if err := t.AppendPoint("nonce_commitment", nonceCommitment); err != nil {
			return err
		}
	}

	c, err := t.ChallengeScalar("challenge", g)
	if err != nil {
		return err
	}
	if !c.Equal(p.Challenge) {
		return elgamalerr.NewInvalidProof("proof_of_possession", "challenge mismatch")
	}
	return nil
}
