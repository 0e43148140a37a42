package elgamal

import (
	"io"

	"github.com/takakv/elgamal-sharing/curve"
	"github.com/takakv/elgamal-sharing/elgamalerr"
	"github.com/takakv/elgamal-sharing/transcript"
)

// LogEqualityProof is a Chaum-Pedersen proof that X and Y share a discrete
// log relative to bases G and H respectively: X = s*G, Y = s*H for some
// known s (spec.md §4.5). It is used both by threshold decryption (a
// decryption share's D_i is proven to share a log with the participant's
// public share, bases R and B) and by EncryptedChoice's sum-is-one proof
// (bases B and pk).
type LogEqualityProof struct {
	Challenge curve.Scalar
	Response  curve.Scalar
}

// ProveEquality proves knowledge of s such that X = s*G and Y = s*H, binding
// the proof to label (distinct callers must pass distinct labels, per
// spec.md §6: "decryption_share" and "choice_proof" for this module's two
// use sites).
func ProveEquality(g curve.Group, label string, G, H, X, Y curve.Point, s curve.Scalar, rng io.Reader) (LogEqualityProof, error) {
	k, err := g.RandomScalar(rng)
	if err != nil {
		return LogEqualityProof{}, err
	}
	KG := g.NewPoint().Mul(G, k)
	KH := g.NewPoint().Mul(H, k)

	c, err := dleqChallenge(g, label, G, H, X, Y, KG, KH)
	if err != nil {
		return LogEqualityProof{}, err
	}

	r := g.NewScalar().Add(k, g.NewScalar().Mul(c, s))
	return LogEqualityProof{Challenge: c, Response: r}, nil
}

// Verify checks that X and Y share a discrete log relative to G and H,
// recomputing K_G = r*G - c*X and K_H = r*H - c*Y and re-deriving the
// challenge (spec.md §4.5).
func (p LogEqualityProof) Verify(g curve.Group, label string, G, H, X, Y curve.Point) error {
	KG := g.NewPoint().Sub(g.NewPoint().Mul(G, p.Response), g.NewPoint().Mul(X, p.Challenge))
	KH := g.NewPoint().Sub(g.NewPoint().Mul(H, p.Response), g.NewPoint().Mul(Y, p.Challenge))

	c, err := dleqChallenge(g, label, G, H, X, Y, KG, KH)
	if err != nil {
		return err
	}
	if !c.Equal(p.Challenge) {
		return elgamalerr.NewInvalidProof("log_equality", "challenge mismatch")
	}
	return nil
}

func dleqChallenge(g curve.Group, label string, G, H, X, Y, KG, KH curve.Point) (curve.Scalar, error) {
	t := transcript.New(label)
	for _, tagged := range []struct {
		tag string
		pt  curve.Point
	}{
		{"base_g", G}, {"base_h", H}, {"image_x", X}, {"image_y", Y},
		{"nonce_g", KG}, {"nonce_h", KH},
	} {
		if err := t.AppendPoint(tagged.tag, tagged.pt); err != nil {
			return nil, err
		}
	}
	return t.ChallengeScalar("challenge", g)
}
