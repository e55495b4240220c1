package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MerkleTree commits to a vector of field elements: the vector is
// zero-padded to the next power of two,
// leaves are SHA-256 of the decimal encoding of each value, and internal
// nodes are SHA-256 of the concatenation of their two children's lowercase
// hex digests. The tree is stored as a flat array indexed like a binary
// heap (root at index 1) so authentication paths are a simple index walk.
type MerkleTree struct {
	size  int      // n, the number of real (non-padding) leaves
	n     int      // N = next power of two >= size
	nodes []string // nodes[1] is the root; nodes[N..2N) are leaves

	// leafValues backs the hash -> leaf-data lookup a verifier needs; it
	// is never sent over the channel itself.
	leafValues map[string]string
	// children backs the hash -> (left, right) side of the same lookup.
	children map[string][2]string
}

// NewMerkleTree builds a tree over values, which must be non-empty.
// Leaf hashing is parallelized across a bounded worker pool since each
// leaf hash is an independent, purely functional computation.
func NewMerkleTree(values []*FieldElement) (*MerkleTree, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("core: merkle tree over empty input: %w", ErrEmptyInput)
	}

	n := nextPowerOfTwo(len(values))
	leafHashes := make([]string, n)

	var g errgroup.Group
	g.SetLimit(workerLimit())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			var decimal string
			if i < len(values) {
				decimal = values[i].String()
			} else {
				decimal = values[0].field.Zero().String()
			}
			leafHashes[i] = hashLeaf(decimal)
			return nil
		})
	}
	// The goroutines above never return an error; Wait blocks until every
	// leaf hash is written, and its return is checked only for form.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	nodes := make([]string, 2*n)
	copy(nodes[n:], leafHashes)
	for i := n - 1; i >= 1; i-- {
		nodes[i] = hashInternal(nodes[2*i], nodes[2*i+1])
	}

	tree := &MerkleTree{
		size:       len(values),
		n:          n,
		nodes:      nodes,
		leafValues: make(map[string]string, n),
		children:   make(map[string][2]string, n-1),
	}
	for i := 0; i < n; i++ {
		decimal := "0"
		if i < len(values) {
			decimal = values[i].String()
		}
		tree.leafValues[nodes[n+i]] = decimal
	}
	for i := 1; i < n; i++ {
		tree.children[nodes[i]] = [2]string{nodes[2*i], nodes[2*i+1]}
	}
	return tree, nil
}

// Root returns the tree's root digest as lowercase hex.
func (t *MerkleTree) Root() string { return t.nodes[1] }

// AuthenticationPath returns the sibling hashes from the top of the tree
// down to leafID's parent. leafID must be in [0, size).
func (t *MerkleTree) AuthenticationPath(leafID int) ([]string, error) {
	if leafID < 0 || leafID >= t.size {
		return nil, fmt.Errorf("core: merkle leaf index %d out of range [0, %d): %w", leafID, t.size, ErrIndexOutOfRange)
	}
	idx := leafID + t.n
	var bottomUp []string
	for idx > 1 {
		sibling := idx ^ 1
		bottomUp = append(bottomUp, t.nodes[sibling])
		idx /= 2
	}
	// bottomUp is leaf-parent-first; callers want root-down order.
	path := make([]string, len(bottomUp))
	for i, h := range bottomUp {
		path[len(path)-1-i] = h
	}
	return path, nil
}

// Children looks up the two child digests of an internal-node hash.
func (t *MerkleTree) Children(hash string) (left, right string, ok bool) {
	pair, ok := t.children[hash]
	if !ok {
		return "", "", false
	}
	return pair[0], pair[1], true
}

// Leaf looks up the decimal value committed to by a leaf hash.
func (t *MerkleTree) Leaf(hash string) (decimal string, ok bool) {
	decimal, ok = t.leafValues[hash]
	return decimal, ok
}

// EncodePath joins an authentication path into the comma-separated wire
// form; any encoding a verifier can parse unambiguously would do.
func EncodePath(path []string) string {
	out := make([]byte, 0, len(path)*65)
	for i, h := range path {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, h...)
	}
	return string(out)
}

func hashLeaf(decimal string) string {
	sum := sha256.Sum256([]byte(decimal))
	return hex.EncodeToString(sum[:])
}

func hashInternal(left, right string) string {
	sum := sha256.Sum256([]byte(left + right))
	return hex.EncodeToString(sum[:])
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// workerLimit bounds leaf-hashing fan-out; it is a small constant rather
// than GOMAXPROCS*K since leaf hashing is dominated by SHA-256 which does
// not benefit from deep oversubscription.
func workerLimit() int { return 8 }
