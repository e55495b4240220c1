package core

import (
	"math/big"
	"testing"
)

func TestFieldArithmetic(t *testing.T) {
	f := DefaultField
	a := f.NewElementFromInt64(5)
	b := f.NewElementFromInt64(7)

	if !a.Add(b).Equal(f.NewElementFromInt64(12)) {
		t.Fatalf("5 + 7 should be 12")
	}
	if !b.Sub(a).Equal(f.NewElementFromInt64(2)) {
		t.Fatalf("7 - 5 should be 2")
	}
	if !a.Mul(b).Equal(f.NewElementFromInt64(35)) {
		t.Fatalf("5 * 7 should be 35")
	}
}

func TestFieldNegativeWraps(t *testing.T) {
	f := DefaultField
	neg := f.NewElementFromInt64(-1)
	want := f.NewElement(new(big.Int).Sub(f.Modulus(), big.NewInt(1)))
	if !neg.Equal(want) {
		t.Fatalf("-1 should wrap to p-1, got %s", neg.String())
	}
}

func TestFieldInverse(t *testing.T) {
	f := DefaultField
	for _, v := range []int64{1, 2, 3, 12345, 999999} {
		elem := f.NewElementFromInt64(v)
		inv, err := elem.Inv()
		if err != nil {
			t.Fatalf("inverse of %d failed: %v", v, err)
		}
		if !elem.Mul(inv).IsOne() {
			t.Fatalf("%d * inv(%d) should be 1", v, v)
		}
	}
}

func TestFieldInverseOfZeroFails(t *testing.T) {
	if _, err := DefaultField.Zero().Inv(); err == nil {
		t.Fatalf("inverse of zero should fail")
	}
}

func TestFieldExp(t *testing.T) {
	f := DefaultField
	two := f.NewElementFromInt64(2)
	got := two.ExpUint64(10)
	if !got.Equal(f.NewElementFromInt64(1024)) {
		t.Fatalf("2^10 should be 1024, got %s", got.String())
	}
}

func TestFieldZeroOneIdentities(t *testing.T) {
	f := DefaultField
	a := f.NewElementFromInt64(42)
	if !a.Add(f.Zero()).Equal(a) {
		t.Fatalf("a + 0 should be a")
	}
	if !a.Mul(f.One()).Equal(a) {
		t.Fatalf("a * 1 should be a")
	}
}

func TestFieldStringIsDecimal(t *testing.T) {
	a := DefaultField.NewElementFromInt64(123456)
	if a.String() != "123456" {
		t.Fatalf("expected decimal encoding, got %q", a.String())
	}
}

func TestPrimitiveRootHasFullOrder(t *testing.T) {
	pMinus1 := new(big.Int).Sub(DefaultField.Modulus(), big.NewInt(1))
	if !PrimitiveRoot.Exp(pMinus1).IsOne() {
		t.Fatalf("w^(p-1) should be 1")
	}
	half := new(big.Int).Div(pMinus1, big.NewInt(2))
	if PrimitiveRoot.Exp(half).IsOne() {
		t.Fatalf("w^((p-1)/2) should not be 1: w is not a generator of the full group")
	}
}

func TestRandomElementInRange(t *testing.T) {
	elem, err := DefaultField.RandomElement()
	if err != nil {
		t.Fatalf("random element: %v", err)
	}
	if elem.Big().Cmp(DefaultField.Modulus()) >= 0 {
		t.Fatalf("random element should be < modulus")
	}
}
