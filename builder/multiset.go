// SPDX-License-Identifier: MIT
// Package: citegraph/builder
//
// multiset.go - the weighted sampler behind DPA.
//
// Model:
//   - A bag ([]int) of node ids. The multiplicity of id i is proportional to
//     the probability DPA should pick i: (in-degree(i) + 1), scaled so that a
//     complete seed on m nodes starts with every node present m times.
//   - Draw: pick a uniform index and read it. O(1).
//   - Commit: push the new node once (its smoothing weight) and each chosen
//     neighbor once (its new in-edge). O(k).
//
// Approximation:
//   - DrawDistinct samples k times WITH replacement and collapses duplicates,
//     so it returns at most k ids. Exact weighted sampling without replacement
//     would need a Fenwick/segment tree; for realistic m the shortfall is rare.
//
// Ownership:
//   - One Multiset per generation run, used from one goroutine, dropped when
//     the run ends.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/citegraph/digraph"
)

// Multiset is the growing bag of node ids used by DPA to draw neighbors with
// probability proportional to in-degree + 1.
type Multiset struct {
	bag  []int      // node ids with repetition; never shrinks
	next int        // id the next Commit must carry
	rng  *rand.Rand // sole randomness source
}

// NewMultiset returns the bag for a complete seed graph on initialNodes nodes:
// each id in [0, initialNodes) appears initialNodes times.
//
// Errors: ErrTooFewVertices (initialNodes < 1), ErrNeedRandSource (rng == nil).
// Complexity: O(initialNodes²).
func NewMultiset(initialNodes int, rng *rand.Rand) (*Multiset, error) {
	if err := validateMin(MethodMultiset, "initialNodes", initialNodes, MinAttachment); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodMultiset, ErrNeedRandSource)
	}

	bag := make([]int, 0, initialNodes*initialNodes)
	var id, copyIdx int
	for id = 0; id < initialNodes; id++ {
		for copyIdx = 0; copyIdx < initialNodes; copyIdx++ {
			bag = append(bag, id)
		}
	}

	return &Multiset{bag: bag, next: initialNodes, rng: rng}, nil
}

// DrawDistinct performs k uniform draws with replacement from the bag and
// returns the distinct ids drawn (size ≤ k). The bag is not modified.
//
// Errors: ErrTooFewVertices (k < 1), ErrInvariantViolation (empty bag).
// Complexity: O(k) expected.
func (ms *Multiset) DrawDistinct(k int) (digraph.NodeSet, error) {
	if err := validateMin(MethodMultiset, "k", k, MinAttachment); err != nil {
		return nil, err
	}
	if len(ms.bag) == 0 {
		return nil, fmt.Errorf("%s: draw from empty bag: %w", MethodMultiset, ErrInvariantViolation)
	}

	chosen := make(digraph.NodeSet, k)
	for i := 0; i < k; i++ {
		chosen[ms.bag[ms.rng.Intn(len(ms.bag))]] = struct{}{}
	}

	return chosen, nil
}

// Commit records that node newID was created with out-edges to chosen:
// newID is appended once, then every chosen id once, in ascending order so
// the bag layout (and therefore every later draw) is reproducible per seed.
//
// Errors: ErrInvariantViolation when newID is not the next expected id or a
// chosen id was never committed. On error the bag is left unchanged.
// Complexity: O(k log k).
func (ms *Multiset) Commit(newID int, chosen digraph.NodeSet) error {
	if newID != ms.next {
		return fmt.Errorf("%s: commit id=%d, want %d: %w", MethodMultiset, newID, ms.next, ErrInvariantViolation)
	}
	ids := chosen.Sorted()
	for _, id := range ids {
		if id < 0 || id >= newID {
			return fmt.Errorf("%s: neighbor %d of node %d was never committed: %w",
				MethodMultiset, id, newID, ErrInvariantViolation)
		}
	}

	ms.bag = append(ms.bag, newID)
	ms.bag = append(ms.bag, ids...)
	ms.next++

	return nil
}

// Len returns the number of entries in the bag (total sampling weight).
func (ms *Multiset) Len() int { return len(ms.bag) }

// NextID returns the id the next Commit must carry.
func (ms *Multiset) NextID() int { return ms.next }

// Weight returns the multiplicity of id in the bag.
// Complexity: O(Len()); intended for tests and diagnostics.
func (ms *Multiset) Weight(id int) int {
	w := 0
	for _, v := range ms.bag {
		if v == id {
			w++
		}
	}

	return w
}
