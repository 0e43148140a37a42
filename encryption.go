package elgamal

import (
	"fmt"
	"io"

	"github.com/takakv/elgamal-sharing/curve"
)

// Encryption is an ElGamal ciphertext (R, D) = (r*B, m + r*pk) over group g
// (spec.md §3). It is semantically additive: adding two encryptions under
// the same key adds their plaintexts, and scaling by k scales the
// plaintext by k.
type Encryption struct {
	Group curve.Group
	R, D  curve.Point
}

// NewEncryption encrypts the group element m under pk, sampling fresh
// randomness from rng (spec.md §4.3).
func NewEncryption(g curve.Group, m curve.Point, pk PublicKey, rng io.Reader) (Encryption, error) {
	enc, _, err := newEncryptionWithRandomness(g, m, pk, rng)
	return enc, err
}

// newEncryptionWithRandomness is the internal constructor that also returns
// the sampled randomness r, needed by EncryptedChoice (C9) to prove
// well-formedness of the ciphertexts it produces.
func newEncryptionWithRandomness(g curve.Group, m curve.Point, pk PublicKey, rng io.Reader) (Encryption, curve.Scalar, error) {
	r, err := g.RandomScalar(rng)
	if err != nil {
		return Encryption{}, nil, fmt.Errorf("elgamal: encrypting: %w", err)
	}
	R := g.NewPoint().MulGen(r)
	D := g.NewPoint().Add(m, g.NewPoint().Mul(pk.p, r))
	return Encryption{Group: g, R: R, D: D}, r, nil
}

// ZeroEncryption returns the additive identity (0, 0): the encryption of
// the identity element under any key, with zero randomness. It is the unit
// of Add.
func ZeroEncryption(g curve.Group) Encryption {
	return Encryption{Group: g, R: g.Identity(), D: g.Identity()}
}

// Add returns the componentwise sum of two encryptions, which decrypts to
// the sum of their plaintexts (the homomorphism invariant, spec.md §8.2).
func (e Encryption) Add(other Encryption) Encryption {
	return Encryption{
		Group: e.Group,
		R:     e.Group.NewPoint().Add(e.R, other.R),
		D:     e.Group.NewPoint().Add(e.D, other.D),
	}
}

// Sub returns the componentwise difference of two encryptions.
func (e Encryption) Sub(other Encryption) Encryption {
	return Encryption{
		Group: e.Group,
		R:     e.Group.NewPoint().Sub(e.R, other.R),
		D:     e.Group.NewPoint().Sub(e.D, other.D),
	}
}

// Scale returns e scaled by s, which decrypts to s times e's plaintext.
func (e Encryption) Scale(s curve.Scalar) Encryption {
	return Encryption{
		Group: e.Group,
		R:     e.Group.NewPoint().Mul(e.R, s),
		D:     e.Group.NewPoint().Mul(e.D, s),
	}
}

// Decrypt recovers the plaintext group element m = D - sk*R (spec.md §4.3).
// Recovering the underlying scalar m from m*B additionally requires a
// DecryptionLookupTable (C10).
func (e Encryption) Decrypt(sk SecretKey) curve.Point {
	mask := e.Group.NewPoint().Mul(e.R, sk.s)
	return e.Group.NewPoint().Sub(e.D, mask)
}
