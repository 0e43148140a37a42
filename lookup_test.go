package elgamal

import (
	"errors"
	"testing"

	"github.com/takakv/elgamal-sharing/curve"
	"github.com/takakv/elgamal-sharing/elgamalerr"
)

func TestDecryptionLookupTableResolvesDeclaredRange(t *testing.T) {
	g := curve.Ristretto255
	values := make([]uint64, 100)
	for i := range values {
		values[i] = uint64(i)
	}

	table, err := NewDecryptionLookupTable(g, values)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}

	for _, v := range []uint64{0, 1, 42, 99} {
		p := g.NewPoint().MulGen(g.NewScalar().SetUint64(v))
		got, err := table.Get(p)
		if err != nil {
			t.Fatalf("get(%d*B): %v", v, err)
		}
		if got != v {
			t.Errorf("get(%d*B) = %d, want %d", v, got, v)
		}
	}
}

func TestDecryptionLookupTableReportsOutOfRange(t *testing.T) {
	g := curve.Ristretto255
	table, err := NewDecryptionLookupTable(g, []uint64{0, 1, 2})
	if err != nil {
		t.Fatalf("build table: %v", err)
	}

	p := g.NewPoint().MulGen(g.NewScalar().SetUint64(50))
	_, err = table.Get(p)
	if !errors.Is(err, elgamalerr.ErrOutOfLookupRange) {
		t.Errorf("got error %v, want ErrOutOfLookupRange", err)
	}
}
