package sharing

import (
	"fmt"

	"github.com/takakv/elgamal-sharing"
	"github.com/takakv/elgamal-sharing/curve"
	"github.com/takakv/elgamal-sharing/elgamalerr"
)

// PartialPublicKeySet aggregates participants' polynomial commitments as
// they arrive, verifying each one's ProofOfPossession before accepting it
// (spec.md §4.7).
type PartialPublicKeySet struct {
	group  curve.Group
	params Params

	filled      []bool
	commitments [][]curve.Point
}

// NewPartialPublicKeySet returns an empty set awaiting params.Shares
// participants' public info.
func NewPartialPublicKeySet(g curve.Group, params Params) *PartialPublicKeySet {
	return &PartialPublicKeySet{
		group:       g,
		params:      params,
		filled:      make([]bool, params.Shares),
		commitments: make([][]curve.Point, params.Shares),
	}
}

// AddParticipant records participant index's polynomial commitments after
// verifying proof. It fails if index is out of range, already filled, or
// the proof does not verify (spec.md §4.7).
func (s *PartialPublicKeySet) AddParticipant(index int, commitments []curve.Point, proof elgamal.ProofOfPossession) error {
	if index < 0 || index >= s.params.Shares {
		return &elgamalerr.MissingParticipantError{Index: index}
	}
	if s.filled[index] {
		return &elgamalerr.DuplicateParticipantError{Index: index}
	}
	if len(commitments) != s.params.Threshold {
		return elgamalerr.NewInvalidProof("proof_of_possession", "commitment count does not match threshold")
	}
	if err := proof.Verify(s.group, commitments); err != nil {
		return err
	}

	s.commitments[index] = commitments
	s.filled[index] = true
	return nil
}

// Complete produces the PublicKeySet once every slot has been filled. It
// fails with IncompleteShares, listing every missing index, otherwise
// (spec.md §4.7).
func (s *PartialPublicKeySet) Complete() (*PublicKeySet, error) {
	var missing []int
	for i, ok := range s.filled {
		if !ok {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return nil, &elgamalerr.IncompleteSharesError{Missing: missing}
	}

	sharedKey := s.group.Identity()
	for i := range s.commitments {
		sharedKey = s.group.NewPoint().Add(sharedKey, s.commitments[i][0])
	}

	participantKeys := make([]curve.Point, s.params.Shares)
	for j := 0; j < s.params.Shares; j++ {
		participantKeys[j] = s.publicShare(j)
	}

	return &PublicKeySet{
		group:              s.group,
		params:             s.params,
		sharedKey:          elgamal.NewPublicKey(s.group, sharedKey),
		participantKeys:    participantKeys,
		senderCommitments:  append([][]curve.Point(nil), s.commitments...),
	}, nil
}

// publicShare computes pk_j = sum_i P_i(j+1)*B via Horner evaluation in the
// exponent over participant i's commitments A_{i,*} (spec.md §4.7). This
// touches only public commitments, so variable-time arithmetic is fine.
func (s *PartialPublicKeySet) publicShare(j int) curve.Point {
	x := s.group.NewScalar().SetUint64(uint64(j + 1))
	total := s.group.Identity()
	for i := range s.commitments {
		acc := s.group.Identity()
		coeffs := s.commitments[i]
		for k := len(coeffs) - 1; k >= 0; k-- {
			acc = s.group.NewPoint().Mul(acc, x)
			acc = s.group.NewPoint().Add(acc, coeffs[k])
		}
		total = s.group.NewPoint().Add(total, acc)
	}
	return total
}

// PublicKeySet holds the DKG's public output: the shared public key and
// every participant's individual public share (spec.md §4.7).
type PublicKeySet struct {
	group           curve.Group
	params          Params
	sharedKey       elgamal.PublicKey
	participantKeys []curve.Point

	// senderCommitments holds each participant's polynomial commitments, kept
	// only so ExchangingSecrets can run the Feldman VSS check on received
	// shares. It is nil on a PublicKeySet built via
	// NewPublicKeySetFromParticipants, which never performs that check.
	senderCommitments [][]curve.Point
}

// NewPublicKeySetFromParticipants reconstructs a PublicKeySet directly from
// already-aggregated participant public shares, without re-verifying any
// proof (spec.md §4.7: "from_participants ... does NOT re-verify proofs").
// The shared key is recovered by Lagrange-interpolating participantKeys at
// x=0, the same arithmetic Combine uses.
func NewPublicKeySetFromParticipants(g curve.Group, params Params, participantKeys []curve.Point) (*PublicKeySet, error) {
	if len(participantKeys) != params.Shares {
		return nil, fmt.Errorf("sharing: expected %d participant keys, got %d", params.Shares, len(participantKeys))
	}

	indices := make([]int, params.Threshold)
	for i := range indices {
		indices[i] = i
	}
	coeffs := lagrangeCoefficients(g, indices)

	sharedKey := g.Identity()
	for a, i := range indices {
		sharedKey = g.NewPoint().Add(sharedKey, g.NewPoint().Mul(participantKeys[i], coeffs[a]))
	}

	return &PublicKeySet{
		group:           g,
		params:          params,
		sharedKey:       elgamal.NewPublicKey(g, sharedKey),
		participantKeys: append([]curve.Point(nil), participantKeys...),
	}, nil
}

// SharedKey returns the group's combined public key.
func (s *PublicKeySet) SharedKey() elgamal.PublicKey { return s.sharedKey }

// ParticipantKey returns participant index's public share pk_index.
func (s *PublicKeySet) ParticipantKey(index int) curve.Point { return s.participantKeys[index] }

// ParticipantKeys returns every participant's public share, in index order.
func (s *PublicKeySet) ParticipantKeys() []curve.Point {
	return append([]curve.Point(nil), s.participantKeys...)
}

// Params returns the Params this set was built under.
func (s *PublicKeySet) Params() Params { return s.params }
