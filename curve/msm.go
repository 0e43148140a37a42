package curve

// VartimeMultiscalarMulGeneric implements the correctness fallback for
// VartimeMultiscalarMul described in spec.md's design notes: each term
// scalars[i]*points[i] is computed with the backend's Point.Mul and the
// terms are summed one by one. Backends that cannot or need not call into a
// library-provided windowed algorithm call this from their
// VartimeMultiscalarMul; it is never invoked on secret data.
func VartimeMultiscalarMulGeneric(g Group, scalars []Scalar, points []Point) Point {
	acc := g.NewPoint().Set(g.Identity())
	for i := range scalars {
		term := g.NewPoint().Mul(points[i], scalars[i])
		acc.Add(acc, term)
	}
	return acc
}
