package metrics

import "github.com/CausalDisco/gadjid/pdag"

// ParentAIDSelectedPairs grades only the supplied (t, y) pairs instead of
// every ordered pair, normalizing by len(pairs) rather than n·(n−1).
func ParentAIDSelectedPairs(truth, guess *pdag.PDAG, pairs []Pair) (Result, error) {
	return aidSelected(truth, guess, pairs, newParentAIDDecision)
}

// AncestorAIDSelectedPairs is the selected-pairs variant of AncestorAID.
func AncestorAIDSelectedPairs(truth, guess *pdag.PDAG, pairs []Pair) (Result, error) {
	return aidSelected(truth, guess, pairs, newAncestorAIDDecision)
}

// OsetAIDSelectedPairs is the selected-pairs variant of OsetAID.
func OsetAIDSelectedPairs(truth, guess *pdag.PDAG, pairs []Pair) (Result, error) {
	return aidSelected(truth, guess, pairs, newOsetAIDDecision)
}

func aidSelected(truth, guess *pdag.PDAG, pairs []Pair, newDecision deciderFactory) (Result, error) {
	if err := checkSameSize(truth, guess); err != nil {
		return Result{}, err
	}
	if len(pairs) == 0 {
		return Result{Fraction: 0, Count: 0}, nil
	}

	byTreatment := make(map[int][]int, len(pairs))
	for _, p := range pairs {
		byTreatment[p.T] = append(byTreatment[p.T], p.Y)
	}

	mistakes := 0
	for t, ys := range byTreatment {
		decision := newDecision(truth, guess, t)
		for _, y := range ys {
			if decision.IsMistake(y) {
				mistakes++
			}
		}
	}

	return normalize(mistakes, len(pairs)), nil
}
