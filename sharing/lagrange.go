package sharing

import "github.com/takakv/elgamal-sharing/curve"

// lagrangeCoefficients computes, for each i in indices, the coefficient
// lambda_i = prod_{j in indices, j!=i} (j+1) * (j-i)^-1 (mod q), the weight
// that reconstructs a degree-(t-1) polynomial's value at x=0 from its
// values at x=j+1 for j in indices (spec.md §4.8). Shares are evaluated at
// index+1 rather than index so that x=0, where the secret lives, is never
// itself a share point.
//
// The same coefficients serve both DecryptionShare combination (reconstructs
// sk*R in the exponent) and PublicKeySet reconstruction from participant
// keys (reconstructs the shared public key). Indices and the arithmetic on
// them are public, so this runs in variable time.
func lagrangeCoefficients(g curve.Group, indices []int) []curve.Scalar {
	coeffs := make([]curve.Scalar, len(indices))
	for a, i := range indices {
		num := g.NewScalar().SetUint64(1)
		den := g.NewScalar().SetUint64(1)
		for _, j := range indices {
			if j == i {
				continue
			}
			num = g.NewScalar().Mul(num, scalarFromIndex(g, j+1))
			diff := g.NewScalar().Sub(scalarFromIndex(g, j), scalarFromIndex(g, i))
			den = g.NewScalar().Mul(den, diff)
		}
		coeffs[a] = g.NewScalar().Mul(num, g.NewScalar().Invert(den))
	}
	return coeffs
}

// scalarFromIndex turns a (possibly negative, for index differences) int
// participant index into a group scalar.
func scalarFromIndex(g curve.Group, i int) curve.Scalar {
	if i >= 0 {
		return g.NewScalar().SetUint64(uint64(i))
	}
	return g.NewScalar().Negate(g.NewScalar().SetUint64(uint64(-i)))
}
