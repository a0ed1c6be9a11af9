package metrics

import (
	"github.com/CausalDisco/gadjid/pdag"
	"github.com/CausalDisco/gadjid/reachability"
	"github.com/CausalDisco/gadjid/ruletables"
	"github.com/CausalDisco/gadjid/sets"
	"github.com/CausalDisco/gadjid/workerpool"
)

// ParentAID grades every ordered pair (t, y) by whether adjusting for
// guess's parents of t — the classic SID adjustment set — identifies the
// effect in truth. A parent y of t in guess is a mistake iff y is a
// possible descendant of t in truth; for any other y, a disagreement on
// amenability between guess and truth is a mistake, and a pair amenable in
// both is a mistake iff the parent set is not a valid adjustment in truth.
func ParentAID(truth, guess *pdag.PDAG) (Result, error) {
	return aidPairwise(truth, guess, newParentAIDDecision)
}

// AncestorAID grades every ordered pair (t, y) using guess's ancestors of
// t (minus t itself) as the adjustment set, additionally accounting for
// non-amenable targets on both sides.
func AncestorAID(truth, guess *pdag.PDAG) (Result, error) {
	return aidPairwise(truth, guess, newAncestorAIDDecision)
}

// OsetAID grades every ordered pair (t, y) using the pair-specific optimal
// adjustment set O(guess, t, y).
func OsetAID(truth, guess *pdag.PDAG) (Result, error) {
	return aidPairwise(truth, guess, newOsetAIDDecision)
}

// SID requires both inputs to be plain DAGs and otherwise delegates to
// ParentAID, matching the classical structural intervention distance.
func SID(truth, guess *pdag.PDAG) (Result, error) {
	if truth.Kind() != pdag.DAG {
		return Result{}, ErrTruthNotDAG
	}
	if guess.Kind() != pdag.DAG {
		return Result{}, ErrGuessNotDAG
	}

	return ParentAID(truth, guess)
}

// pairDecision grades a single (t, y) pair once the per-treatment state
// (adjustment set, amenability sets) has been precomputed.
type pairDecision interface {
	IsMistake(y int) bool
}

// deciderFactory builds the per-treatment state shared by every y in the
// inner loop of one AID variant.
type deciderFactory func(truth, guess *pdag.PDAG, t int) pairDecision

func aidPairwise(truth, guess *pdag.PDAG, newDecision deciderFactory) (Result, error) {
	if err := checkSameSize(truth, guess); err != nil {
		return Result{}, err
	}

	n := truth.N()
	if n < 2 {
		return Result{}, ErrTooSmall
	}

	total := workerpool.SumInts(n, func(t int) int {
		decision := newDecision(truth, guess, t)
		mistakes := 0
		for y := 0; y < n; y++ {
			if y != t && decision.IsMistake(y) {
				mistakes++
			}
		}

		return mistakes
	})

	return normalize(total, n*(n-1)), nil
}

type parentAIDDecision struct {
	z        sets.IntSet
	namGuess sets.IntSet
	namTrue  sets.IntSet
	nvaTrue  sets.IntSet
	pdTrue   sets.IntSet
}

// newParentAIDDecision mirrors ancestorAIDDecision except the adjustment
// set is guess's parents of t (the classic SID adjustment) rather than its
// ancestors, and claim_possible_effect is V \ ({t} ∪ Z_t) instead of
// PD(guess, {t}): every non-parent may be an effect, matching SID.
func newParentAIDDecision(truth, guess *pdag.PDAG, t int) pairDecision {
	z := sets.FromSlice(guess.ParentsOf(t))
	namTrue, nvaTrue := reachability.GetNAMNVA(truth, []int{t}, z)

	return parentAIDDecision{
		z:        z,
		namGuess: reachability.GetNAM(guess, []int{t}),
		namTrue:  namTrue,
		nvaTrue:  nvaTrue,
		pdTrue:   reachability.PossibleDescendants(truth, []int{t}),
	}
}

func (d parentAIDDecision) IsMistake(y int) bool {
	if d.z.Contains(y) {
		return d.pdTrue.Contains(y)
	}

	namGuessY := d.namGuess.Contains(y)
	if namGuessY != d.namTrue.Contains(y) {
		return true
	}

	return !namGuessY && d.nvaTrue.Contains(y)
}

type ancestorAIDDecision struct {
	namGuess sets.IntSet
	namTrue  sets.IntSet
	pdGuess  sets.IntSet
	pdTrue   sets.IntSet
	nvaTrue  sets.IntSet
}

func newAncestorAIDDecision(truth, guess *pdag.PDAG, t int) pairDecision {
	anc := ruletables.Ancestors(guess, []int{t})
	z := sets.NewIntSet(len(anc))
	for v := range anc {
		if v != t {
			z.Insert(v)
		}
	}
	_, nvaTrue := reachability.GetNAMNVA(truth, []int{t}, z)

	return ancestorAIDDecision{
		namGuess: reachability.GetNAM(guess, []int{t}),
		namTrue:  reachability.GetNAM(truth, []int{t}),
		pdGuess:  reachability.PossibleDescendants(guess, []int{t}),
		pdTrue:   reachability.PossibleDescendants(truth, []int{t}),
		nvaTrue:  nvaTrue,
	}
}

func (d ancestorAIDDecision) IsMistake(y int) bool {
	switch {
	case d.namGuess.Contains(y):
		return !d.namTrue.Contains(y)
	case d.pdGuess.Contains(y):
		return d.nvaTrue.Contains(y)
	default:
		return d.pdTrue.Contains(y)
	}
}

type osetAIDDecision struct {
	t        int
	truth    *pdag.PDAG
	guess    *pdag.PDAG
	namGuess sets.IntSet
	namTrue  sets.IntSet
	pdGuess  sets.IntSet
	pdTrue   sets.IntSet
	dGuess   sets.IntSet
}

func newOsetAIDDecision(truth, guess *pdag.PDAG, t int) pairDecision {
	return osetAIDDecision{
		t:        t,
		truth:    truth,
		guess:    guess,
		namGuess: reachability.GetNAM(guess, []int{t}),
		namTrue:  reachability.GetNAM(truth, []int{t}),
		pdGuess:  reachability.PossibleDescendants(guess, []int{t}),
		pdTrue:   reachability.PossibleDescendants(truth, []int{t}),
		dGuess:   ruletables.Descendants(guess, []int{t}),
	}
}

func (d osetAIDDecision) IsMistake(y int) bool {
	switch {
	case d.namGuess.Contains(y):
		return !d.namTrue.Contains(y)
	case d.pdGuess.Contains(y):
		o := optimalAdjustmentSet(d.guess, []int{d.t}, []int{y}, d.dGuess)
		ivb := reachability.GetInvalidlyUnblocked(d.truth, []int{d.t}, o, sets.FromSlice([]int{y}))

		return ivb.Contains(y)
	default:
		return d.pdTrue.Contains(y)
	}
}
