package fri

import (
	"testing"

	"github.com/orbital-stark/squarefib/internal/squarefib/core"
	"github.com/orbital-stark/squarefib/internal/squarefib/domain"
	"github.com/orbital-stark/squarefib/internal/squarefib/transcript"
)

func TestFoldPolynomialMatchesReferenceExample(t *testing.T) {
	field := core.DefaultField
	// q(X) = 6X^4 + 5X^3 + 3X^2 + 3X + 1
	q := core.NewPolynomialFromInt64(field, []int64{1, 3, 3, 5, 6})
	beta := field.NewElementFromInt64(2)

	folded := foldPolynomial(q, beta)
	// Expect 6X^2 + 13X + 7
	want := core.NewPolynomialFromInt64(field, []int64{7, 13, 6})
	if folded.Degree() != want.Degree() {
		t.Fatalf("degree mismatch: got %s, want %s", folded.String(), want.String())
	}
	for i := 0; i <= want.Degree(); i++ {
		if !folded.Coefficient(i).Equal(want.Coefficient(i)) {
			t.Fatalf("coefficient %d mismatch: got %s, want %s", i, folded.String(), want.String())
		}
	}
}

func TestCommitFoldsToAConstant(t *testing.T) {
	field := core.DefaultField
	dom, err := domain.NewSubgroup(32)
	if err != nil {
		t.Fatalf("domain: %v", err)
	}

	// A degree-5 polynomial, well below the domain size, so it folds down
	// quickly.
	poly := core.NewPolynomialFromInt64(field, []int64{1, 2, 3, 4, 5, 6})
	codeword := make([]*core.FieldElement, dom.Size)
	for i, x := range dom.Elements() {
		codeword[i] = poly.Eval(x)
	}

	ch := transcript.New()
	layers, err := Commit(poly, dom, codeword, ch)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if len(layers) < 2 {
		t.Fatalf("expected multiple fold layers, got %d", len(layers))
	}
	last := layers[len(layers)-1]
	if last.Poly.Degree() != 0 {
		t.Fatalf("expected the final layer to be a constant, got degree %d", last.Poly.Degree())
	}

	// Every element of the last layer's codeword should equal that constant.
	constant := last.Poly.Coefficient(0)
	for i, v := range last.Codeword {
		if !v.Equal(constant) {
			t.Fatalf("final layer codeword element %d should equal the constant", i)
		}
	}

	log := ch.Proof()
	if len(log) != len(layers)+(len(layers)-1)+1 {
		t.Fatalf("expected one root send per layer, one beta draw per fold, plus the final constant, got %d entries for %d layers", len(log), len(layers))
	}
}

func TestCommitSendsRootsInOrder(t *testing.T) {
	field := core.DefaultField
	dom, err := domain.NewSubgroup(16)
	if err != nil {
		t.Fatalf("domain: %v", err)
	}
	poly := core.NewPolynomialFromInt64(field, []int64{1, 1})
	codeword := make([]*core.FieldElement, dom.Size)
	for i, x := range dom.Elements() {
		codeword[i] = poly.Eval(x)
	}

	ch := transcript.New()
	layers, err := Commit(poly, dom, codeword, ch)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	// Each root after the first follows that fold's beta draw, so layer i's
	// root sits at entry 2*i.
	log := ch.Proof()
	for i, layer := range layers {
		if log[2*i] != "send:"+layer.Merkle.Root() {
			t.Fatalf("entry %d should send layer %d's root", 2*i, i)
		}
	}
}
