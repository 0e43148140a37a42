package elgamal

import (
	"github.com/takakv/elgamal-sharing/curve"
	"github.com/takakv/elgamal-sharing/elgamalerr"
)

// DecryptionLookupTable inverts v*B -> v over a small, pre-declared range of
// v values (spec.md §4.10). Decrypting an ElGamal ciphertext only ever
// recovers the plaintext group element m*B (Encryption.Decrypt); recovering
// the scalar m itself requires brute-forcing the discrete log, which this
// table precomputes once for every admissible v.
//
// Construction is O(|values|); Get is O(1) expected. Entries never touch
// secret data, so building and querying the table may run in variable time.
type DecryptionLookupTable struct {
	g     curve.Group
	index map[string]uint64
}

// NewDecryptionLookupTable builds a table covering exactly the given values.
func NewDecryptionLookupTable(g curve.Group, values []uint64) (*DecryptionLookupTable, error) {
	index := make(map[string]uint64, len(values))
	for _, v := range values {
		p := g.NewPoint().MulGen(g.NewScalar().SetUint64(v))
		enc, err := p.MarshalBinary()
		if err != nil {
			return nil, err
		}
		index[string(enc)] = v
	}
	return &DecryptionLookupTable{g: g, index: index}, nil
}

// Get returns the v such that P = v*B, if v was included when the table was
// built. It reports elgamalerr.ErrOutOfLookupRange otherwise.
func (t *DecryptionLookupTable) Get(p curve.Point) (uint64, error) {
	enc, err := p.MarshalBinary()
	if err != nil {
		return 0, err
	}
	v, ok := t.index[string(enc)]
	if !ok {
		return 0, elgamalerr.ErrOutOfLookupRange
	}
	return v, nil
}
