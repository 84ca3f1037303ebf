// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all generators.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodErdosRenyi is the canonical name for the ErdosRenyi constructor.
	MethodErdosRenyi = "ErdosRenyi"
	// MethodDPA is the canonical name for the DPA constructor.
	MethodDPA = "DPA"
	// MethodMultiset is the canonical name used by Multiset errors.
	MethodMultiset = "Multiset"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCompleteNodes is the smallest complete graph (a single isolated node).
const MinCompleteNodes = 1

// MinErdosRenyiNodes is the smallest Erdős–Rényi graph (the empty graph).
const MinErdosRenyiNodes = 0

// MinAttachment is the smallest number of draws per DPA growth step; it is
// also the smallest seed (complete graph) a DPA run can start from.
const MinAttachment = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for p in ErdosRenyi, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in ErdosRenyi, inclusive.
const MaxProbability = 1.0
