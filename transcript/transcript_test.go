package transcript

import (
	"crypto/rand"
	"testing"

	"github.com/takakv/elgamal-sharing/curve"
)

func TestChallengeScalarDeterministic(t *testing.T) {
	g := curve.Ristretto255
	s, err := g.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("random scalar: %v", err)
	}
	p := g.NewPoint().MulGen(s)

	build := func() (curve.Scalar, error) {
		tr := New("test_label")
		if err := tr.AppendPoint("point", p); err != nil {
			return nil, err
		}
		tr.AppendUint64("index", 7)
		return tr.ChallengeScalar("challenge", g)
	}

	c1, err := build()
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	c2, err := build()
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if !c1.Equal(c2) {
		t.Error("identical transcripts produced different challenges")
	}
}

func TestChallengeScalarSensitiveToInput(t *testing.T) {
	g := curve.Ristretto255
	s, err := g.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("random scalar: %v", err)
	}
	p := g.NewPoint().MulGen(s)
	q := g.NewPoint().MulGen(g.NewScalar().SetUint64(2))

	challengeFor := func(pt curve.Point) curve.Scalar {
		tr := New("test_label")
		if err := tr.AppendPoint("point", pt); err != nil {
			t.Fatalf("append: %v", err)
		}
		c, err := tr.ChallengeScalar("challenge", g)
		if err != nil {
			t.Fatalf("challenge: %v", err)
		}
		return c
	}

	if challengeFor(p).Equal(challengeFor(q)) {
		t.Error("distinct appended points produced the same challenge")
	}
}

func TestChallengeScalarSensitiveToLabel(t *testing.T) {
	g := curve.Ristretto255

	c1, err := New("label_one").ChallengeScalar("challenge", g)
	if err != nil {
		t.Fatalf("challenge: %v", err)
	}
	c2, err := New("label_two").ChallengeScalar("challenge", g)
	if err != nil {
		t.Fatalf("challenge: %v", err)
	}
	if c1.Equal(c2) {
		t.Error("distinct top-level labels produced the same challenge")
	}
}

func TestChallengeScalarDoesNotPreventFurtherAppends(t *testing.T) {
	g := curve.Ristretto255
	tr := New("test_label")
	tr.AppendUint64("a", 1)
	if _, err := tr.ChallengeScalar("mid", g); err != nil {
		t.Fatalf("challenge: %v", err)
	}
	tr.AppendUint64("b", 2)
	if _, err := tr.ChallengeScalar("final", g); err != nil {
		t.Fatalf("challenge: %v", err)
	}
}
