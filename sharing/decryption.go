package sharing

import (
	"github.com/takakv/elgamal-sharing"
	"github.com/takakv/elgamal-sharing/curve"
	"github.com/takakv/elgamal-sharing/elgamalerr"
)

// decryptionShareLabel domain-separates DecryptionShare's DLEQ proof from
// every other LogEqualityProof use site (spec.md §6).
const decryptionShareLabel = "decryption_share"

// DecryptionShare is one participant's contribution toward threshold
// decryption of a ciphertext: D_i = s_i*R, together with a proof that it was
// computed honestly relative to the participant's known public share
// (spec.md §3, §4.8).
type DecryptionShare struct {
	Index   int
	DHPoint curve.Point
	Proof   elgamal.LogEqualityProof
}

// Verify checks share's DLEQ proof against enc and the participant's public
// share in keySet.
func (share DecryptionShare) Verify(g curve.Group, enc elgamal.Encryption, keySet *PublicKeySet) error {
	return share.Proof.Verify(
		g, decryptionShareLabel,
		enc.R, g.Generator(),
		share.DHPoint, keySet.ParticipantKey(share.Index),
	)
}

// Combine recovers the plaintext group element m*B from enc and a subset of
// at least keySet.Params().Threshold verified decryption shares, via
// Lagrange interpolation in the exponent (spec.md §4.8):
//
//  1. lambda_i = prod_{j in S, j!=i} (j+1)*(j-i)^-1 mod q
//  2. M = D - sum_i lambda_i * D_i
//
// Fails with DuplicateShare on a repeated index, InsufficientShares if
// fewer than the threshold are supplied, or InvalidProof if any share's
// DLEQ proof does not verify.
func Combine(g curve.Group, enc elgamal.Encryption, keySet *PublicKeySet, shares []DecryptionShare) (curve.Point, error) {
	threshold := keySet.Params().Threshold
	if len(shares) < threshold {
		return nil, &elgamalerr.InsufficientSharesError{Got: len(shares), Need: threshold}
	}

	seen := make(map[int]bool, len(shares))
	indices := make([]int, len(shares))
	for k, share := range shares {
		if seen[share.Index] {
			return nil, &elgamalerr.DuplicateShareError{Index: share.Index}
		}
		seen[share.Index] = true
		indices[k] = share.Index

		if err := share.Verify(g, enc, keySet); err != nil {
			return nil, err
		}
	}

	coeffs := lagrangeCoefficients(g, indices)

	mask := g.Identity()
	for k, share := range shares {
		term := g.NewPoint().Mul(share.DHPoint, coeffs[k])
		mask = g.NewPoint().Add(mask, term)
	}

	return g.NewPoint().Sub(enc.D, mask), nil
}
