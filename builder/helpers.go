// Package builder provides internal helper functions used by Constructor
// implementations.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method name for uniform reporting.
package builder

import (
	"fmt"

	"github.com/katalvlaran/citegraph/digraph"
)

// addSequentialNodes inserts nodes first..first+n-1 into g.
// It is idempotent: re-adding existing nodes is a no-op in digraph.Graph.
//
// Complexity: O(n) time, O(1) extra space.
func addSequentialNodes(method string, g *digraph.Graph, first, n int) error {
	var (
		i   int
		err error
	)
	for i = first; i < first+n; i++ {
		if err = g.AddNode(i); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, i, err)
		}
	}

	return nil
}

// requireEmpty rejects a target graph that already holds nodes.
func requireEmpty(method string, g *digraph.Graph) error {
	if c := g.NodeCount(); c != 0 {
		return fmt.Errorf("%s: target graph has %d nodes, want empty: %w", method, c, ErrConstructFailed)
	}

	return nil
}
