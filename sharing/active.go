package sharing

import (
	"io"

	"github.com/takakv/elgamal-sharing"
	"github.com/takakv/elgamal-sharing/curve"
)

// ActiveParticipant is a DKG participant holding its final secret share and
// the group's public key set, ready to produce decryption shares (spec.md
// §4.7, terminal state).
type ActiveParticipant struct {
	group  curve.Group
	params Params
	index  int
	secret curve.Scalar
	keySet *PublicKeySet
}

// Index returns this participant's index.
func (a *ActiveParticipant) Index() int { return a.index }

// Secret returns this participant's combined secret share s_i.
func (a *ActiveParticipant) Secret() curve.Scalar { return a.secret }

// PublicKeyShare returns this participant's public share pk_i = s_i*B.
func (a *ActiveParticipant) PublicKeyShare() curve.Point {
	return a.keySet.ParticipantKey(a.index)
}

// KeySet returns the group's PublicKeySet.
func (a *ActiveParticipant) KeySet() *PublicKeySet { return a.keySet }

// DecryptShare produces this participant's DecryptionShare for enc, along
// with a DLEQ proof that D_i = s_i*R shares a discrete log with pk_i
// relative to bases R and B (spec.md §4.8).
func (a *ActiveParticipant) DecryptShare(enc elgamal.Encryption, rng io.Reader) (DecryptionShare, error) {
	dhPoint := a.group.NewPoint().Mul(enc.R, a.secret)

	proof, err := elgamal.ProveEquality(
		a.group, decryptionShareLabel,
		enc.R, a.group.Generator(),
		dhPoint, a.PublicKeyShare(),
		a.secret, rng,
	)
	if err != nil {
		return DecryptionShare{}, err
	}

	return DecryptionShare{Index: a.index, DHPoint: dhPoint, Proof: proof}, nil
}
