package sharing

import (
	"github.com/takakv/elgamal-sharing/curve"
	"github.com/takakv/elgamal-sharing/elgamalerr"
)

// ExchangingSecrets is a DKG participant that has published its commitments
// and is now collecting the private share every other participant owes it
// (spec.md §4.7, second state).
type ExchangingSecrets struct {
	group    curve.Group
	params   Params
	index    int
	coeffs   []curve.Scalar
	keySet   *PublicKeySet
	received map[int]curve.Scalar
}

// Index returns this participant's index.
func (e *ExchangingSecrets) Index() int { return e.index }

// ShareFor evaluates this participant's polynomial at peer's share point,
// the scalar to privately deliver to peer.
func (e *ExchangingSecrets) ShareFor(peer int) curve.Scalar {
	return evalPolynomial(e.group, e.coeffs, peer+1)
}

// ReceiveMessage records the share sent by sender, verifying it against
// sender's public commitments via the Feldman VSS check: share*B must equal
// sum_k A_{sender,k} * (index+1)^k. Fails with InvalidShare otherwise
// (spec.md §4.7).
func (e *ExchangingSecrets) ReceiveMessage(sender int, share curve.Scalar) error {
	if sender < 0 || sender >= e.params.Shares {
		return &elgamalerr.MissingParticipantError{Index: sender}
	}

	expected := e.group.NewPoint().MulGen(share)
	actual := e.expectedShareCommitment(sender)
	if !expected.Equal(actual) {
		return &elgamalerr.InvalidShareError{Sender: sender}
	}

	e.received[sender] = share
	return nil
}

// expectedShareCommitment recomputes sum_k A_{sender,k} * (index+1)^k from
// sender's public commitments recorded in the PublicKeySet's construction
// input. Since PublicKeySet itself only stores the aggregated pk_j and
// shared key, the per-sender commitments are kept on keySet for this check.
func (e *ExchangingSecrets) expectedShareCommitment(sender int) curve.Point {
	coeffs := e.keySet.senderCommitments[sender]
	x := e.group.NewScalar().SetUint64(uint64(e.index + 1))
	acc := e.group.Identity()
	for k := len(coeffs) - 1; k >= 0; k-- {
		acc = e.group.NewPoint().Mul(acc, x)
		acc = e.group.NewPoint().Add(acc, coeffs[k])
	}
	return acc
}

// Complete succeeds once shares from every other participant have been
// received, producing the ActiveParticipant holding this participant's
// combined secret share s_i = sum_k P_k(i+1). Fails with IncompleteShares,
// listing every participant whose share is still missing (spec.md §4.7).
func (e *ExchangingSecrets) Complete() (*ActiveParticipant, error) {
	var missing []int
	for i := 0; i < e.params.Shares; i++ {
		if i == e.index {
			continue
		}
		if _, ok := e.received[i]; !ok {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return nil, &elgamalerr.IncompleteSharesError{Missing: missing}
	}

	secret := evalPolynomial(e.group, e.coeffs, e.index+1)
	for i, share := range e.received {
		if i == e.index {
			continue
		}
		secret = e.group.NewScalar().Add(secret, share)
	}

	return &ActiveParticipant{
		group:  e.group,
		params: e.params,
		index:  e.index,
		secret: secret,
		keySet: e.keySet,
	}, nil
}
