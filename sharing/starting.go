package sharing

import (
	"fmt"
	"io"

	"github.com/takakv/elgamal-sharing"
	"github.com/takakv/elgamal-sharing/curve"
)

// StartingParticipant is a DKG participant that has generated its secret
// polynomial but has not yet exchanged shares with any peer (spec.md §4.7,
// first state in StartingParticipant -> ExchangingSecrets -> ActiveParticipant).
type StartingParticipant struct {
	group       curve.Group
	params      Params
	index       int
	coeffs      []curve.Scalar
	commitments []curve.Point
}

// NewStartingParticipant samples a random degree-(threshold-1) polynomial
// for participant index (in [0,params.Shares)) and commits to its
// coefficients.
func NewStartingParticipant(g curve.Group, params Params, index int, rng io.Reader) (*StartingParticipant, error) {
	if index < 0 || index >= params.Shares {
		return nil, fmt.Errorf("sharing: participant index %d out of range [0,%d)", index, params.Shares)
	}

	coeffs := make([]curve.Scalar, params.Threshold)
	commitments := make([]curve.Point, params.Threshold)
	for j := 0; j < params.Threshold; j++ {
		a, err := g.RandomScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("sharing: generating polynomial: %w", err)
		}
		coeffs[j] = a
		commitments[j] = g.NewPoint().MulGen(a)
	}

	return &StartingParticipant{
		group:       g,
		params:      params,
		index:       index,
		coeffs:      coeffs,
		commitments: commitments,
	}, nil
}

// Index returns this participant's index.
func (p *StartingParticipant) Index() int { return p.index }

// PublicInfo returns this participant's polynomial commitments together
// with a proof that it knows every coefficient behind them, ready to
// broadcast to every other participant (spec.md §4.7).
func (p *StartingParticipant) PublicInfo(rng io.Reader) ([]curve.Point, elgamal.ProofOfPossession, error) {
	proof, err := elgamal.ProvePossession(p.group, p.coeffs, p.commitments, rng)
	if err != nil {
		return nil, elgamal.ProofOfPossession{}, err
	}
	return p.commitments, proof, nil
}

// FinalizeKeySet transitions this participant into ExchangingSecrets once
// every participant's public info has been collected into a complete
// PartialPublicKeySet (spec.md §4.7:
// "StartingParticipant::finalize_key_set(&PartialPublicKeySet)").
func (p *StartingParticipant) FinalizeKeySet(partial *PartialPublicKeySet) (*ExchangingSecrets, error) {
	keySet, err := partial.Complete()
	if err != nil {
		return nil, err
	}
	return &ExchangingSecrets{
		group:     p.group,
		params:    p.params,
		index:     p.index,
		coeffs:    p.coeffs,
		keySet:    keySet,
		received:  make(map[int]curve.Scalar, p.params.Shares),
	}, nil
}

// ShareFor evaluates this participant's polynomial at peer's share point
// (peer+1), the scalar to be privately delivered to peer (spec.md §4.7).
func (p *StartingParticipant) ShareFor(peer int) curve.Scalar {
	return evalPolynomial(p.group, p.coeffs, peer+1)
}

// evalPolynomial evaluates sum(coeffs[j] * x^j) by Horner's method.
func evalPolynomial(g curve.Group, coeffs []curve.Scalar, x int) curve.Scalar {
	xs := g.NewScalar().SetUint64(uint64(x))
	acc := g.NewScalar().SetUint64(0)
	for j := len(coeffs) - 1; j >= 0; j-- {
		acc = g.NewScalar().Mul(acc, xs)
		acc = g.NewScalar().Add(acc, coeffs[j])
	}
	return acc
}
