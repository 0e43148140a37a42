// Package elgamal implements ElGamal public-key encryption over an abstract
// prime-order group (component C3), together with the zero-knowledge proofs
// (C4-C6, C9) and lookup table (C10) needed to make the accompanying
// threshold-decryption protocol (package sharing, C7-C8) usable end to end.
//
// The package is parametric over the curve.Group capability (C1): callers
// pick one of curve.Ed25519, curve.Ristretto255 or curve.Secp256k1, or
// supply their own backend satisfying curve.Group.
package elgamal

import (
	"fmt"
	"io"

	"github.com/takakv/elgamal-sharing/curve"
)

// SecretKey is a non-zero scalar sk in the group's field.
type SecretKey struct {
	Group curve.Group
	s     curve.Scalar
}

// PublicKey is the group element sk*B.
type PublicKey struct {
	Group curve.Group
	p     curve.Point
}

// Keypair bundles a secret key with its corresponding public key.
type Keypair struct {
	Secret SecretKey
	Public PublicKey
}

// GenerateKeypair samples a uniform non-zero secret scalar and derives the
// matching public key (spec.md §4.3).
func GenerateKeypair(g curve.Group, rng io.Reader) (Keypair, error) {
	sk, err := g.RandomScalar(rng)
	if err != nil {
		return Keypair{}, fmt.Errorf("elgamal: generating keypair: %w", err)
	}
	pk := g.NewPoint().MulGen(sk)
	return Keypair{
		Secret: SecretKey{Group: g, s: sk},
		Public: PublicKey{Group: g, p: pk},
	}, nil
}

// NewSecretKey wraps an already-sampled non-zero scalar as a SecretKey. The
// caller is responsible for ensuring s is non-zero and was sampled
// uniformly.
func NewSecretKey(g curve.Group, s curve.Scalar) SecretKey {
	return SecretKey{Group: g, s: s}
}

// NewPublicKey wraps an already-derived point as a PublicKey. Used
// internally by the DKG to expose the group's shared key.
func NewPublicKey(g curve.Group, p curve.Point) PublicKey {
	return PublicKey{Group: g, p: p}
}

// Scalar returns the underlying secret scalar.
func (sk SecretKey) Scalar() curve.Scalar { return sk.s }

// Point returns the underlying public point.
func (pk PublicKey) Point() curve.Point { return pk.p }

// Public derives the public key corresponding to sk.
func (sk SecretKey) Public() PublicKey {
	return PublicKey{Group: sk.Group, p: sk.Group.NewPoint().MulGen(sk.s)}
}
