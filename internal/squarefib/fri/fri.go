// Package fri implements the FRI low-degree test's commit and decommit
// phases: folding the composition polynomial down to a
// constant across successive halved domains, and opening committed
// codewords at the verifier's (transcript-derived) query points.
package fri

import (
	"math/big"

	"github.com/orbital-stark/squarefib/internal/squarefib/core"
	"github.com/orbital-stark/squarefib/internal/squarefib/domain"
	"github.com/orbital-stark/squarefib/internal/squarefib/transcript"
)

// QueriesNum is the fixed number of decommitment queries.
const QueriesNum = 3

// Layer is one rung of the FRI commitment ladder: the polynomial at that
// fold depth, the domain it was evaluated over, its codeword, and the
// Merkle tree committing to that codeword.
type Layer struct {
	Poly     *core.Polynomial
	Domain   *domain.Domain
	Codeword []*core.FieldElement
	Merkle   *core.MerkleTree
}

// Commit runs the FRI commit phase starting from the composition
// polynomial's own domain/codeword (already evaluated by the
// arithmetization step). It folds the polynomial via an even/odd
// coefficient split until it is a nonzero constant, Merkle-committing and
// sending the root of every intermediate codeword, then sends the final
// constant's decimal encoding. Layers are returned in commit order,
// layers[0] being the composition polynomial's own layer.
func Commit(poly *core.Polynomial, dom *domain.Domain, codeword []*core.FieldElement, ch *transcript.Channel) ([]*Layer, error) {
	layer0Merkle, err := core.NewMerkleTree(codeword)
	if err != nil {
		return nil, err
	}
	ch.Send(layer0Merkle.Root())

	layers := []*Layer{{Poly: poly, Domain: dom, Codeword: codeword, Merkle: layer0Merkle}}

	for !layers[len(layers)-1].Poly.IsZero() && layers[len(layers)-1].Poly.Degree() > 0 {
		prev := layers[len(layers)-1]

		beta := ch.GetRandomScalar()
		folded := foldPolynomial(prev.Poly, beta)

		nextDomain, err := prev.Domain.Halve()
		if err != nil {
			return nil, err
		}
		nextCodeword := make([]*core.FieldElement, nextDomain.Size)
		for i, x := range nextDomain.Elements() {
			nextCodeword[i] = folded.Eval(x)
		}

		merkle, err := core.NewMerkleTree(nextCodeword)
		if err != nil {
			return nil, err
		}
		ch.Send(merkle.Root())

		layers = append(layers, &Layer{Poly: folded, Domain: nextDomain, Codeword: nextCodeword, Merkle: merkle})
	}

	constant := layers[len(layers)-1].Poly.Coefficient(0)
	ch.Send(constant.String())
	return layers, nil
}

// foldPolynomial splits p's coefficients into even- and odd-indexed halves
// Peven(X), Podd(X) (such that p(X) = Peven(X^2) + X*Podd(X^2)) and
// returns Peven + beta*Podd — the standard FRI fold step.
func foldPolynomial(p *core.Polynomial, beta *core.FieldElement) *core.Polynomial {
	field := p.Field()
	coeffs := p.Coefficients()

	var evens, odds []*core.FieldElement
	for i, c := range coeffs {
		if i%2 == 0 {
			evens = append(evens, c)
		} else {
			odds = append(odds, c)
		}
	}
	if len(evens) == 0 {
		evens = []*core.FieldElement{field.Zero()}
	}
	if len(odds) == 0 {
		odds = []*core.FieldElement{field.Zero()}
	}

	evenPoly := core.NewPolynomial(field, evens)
	oddPoly := core.NewPolynomial(field, odds)
	return evenPoly.Add(oddPoly.MulScalar(beta))
}

// Decommit runs the FRI decommit phase: queries independent queries, each
// sampling an index from the transcript, opening the trace LDE's codeword
// at that index and its two blowup-spaced offsets against traceMerkle, then
// opening every FRI layer at that index and its domain antipode, finally
// resending the last layer's constant.
//
// traceCodeword/traceMerkle commit to the trace polynomial's own FRI-domain
// evaluation — a tree built and sent to the transcript before the
// composition polynomial existed, distinct from layers[0]'s tree (which
// commits to the composition polynomial's codeword).
func Decommit(layers []*Layer, traceCodeword []*core.FieldElement, traceMerkle *core.MerkleTree, ch *transcript.Channel, queries int) error {
	e0Size := len(layers[0].Codeword)
	bound := big.NewInt(int64(e0Size - 2*domain.BlowupFactor - 1))

	finalConstant := layers[len(layers)-1].Poly.Coefficient(0)

	for q := 0; q < queries; q++ {
		scalar := ch.GetRandomScalar()
		idx := new(big.Int).Mod(scalar.Big(), bound)
		idxInt := int(idx.Int64())

		for _, offset := range []int{0, domain.BlowupFactor, 2 * domain.BlowupFactor} {
			pos := idxInt + offset
			ch.Send(traceCodeword[pos].String())
			path, err := traceMerkle.AuthenticationPath(pos)
			if err != nil {
				return err
			}
			ch.Send(core.EncodePath(path))
		}

		for k := 0; k < len(layers)-1; k++ {
			layer := layers[k]
			n := len(layer.Codeword)
			kIdx := idxInt % n
			sibling := (kIdx + n/2) % n

			ch.Send(layer.Codeword[kIdx].String())
			path, err := layer.Merkle.AuthenticationPath(kIdx)
			if err != nil {
				return err
			}
			ch.Send(core.EncodePath(path))

			ch.Send(layer.Codeword[sibling].String())
			siblingPath, err := layer.Merkle.AuthenticationPath(sibling)
			if err != nil {
				return err
			}
			ch.Send(core.EncodePath(siblingPath))
		}

		ch.Send(finalConstant.String())
	}
	return nil
}
