// Package suggest implements the suggestion engine (Component G): a
// pipeline of edit-distance candidate generators, cost-budgeted via
// SuggestionStatus, each candidate validated by the speller and scored by
// spec.md §4.7's priority formula, with a VFST weighted-transducer error
// model as one of the thirteen generators.
package suggest

// Strategy selects a generator pipeline and its cost budget (spec.md §4.7).
type Strategy int

const (
	// Typing is the default strategy: max cost 800.
	Typing Strategy = iota
	// OCR additionally runs the multi-replacement generator and raises the
	// cost budget to 2000.
	OCR
)

const (
	typingMaxCost = 800
	ocrMaxCost    = 2000
)

func (s Strategy) maxCost() int {
	if s == OCR {
		return ocrMaxCost
	}
	return typingMaxCost
}

// maxCandidates caps the number of candidates collected before the final
// sort-and-truncate step (spec.md §4.7: "collect up to 3 x maxSuggestions
// candidates").
func maxCandidates(maxSuggestions int) int {
	return 3 * maxSuggestions
}

// status tracks SuggestionStatus's cost accounting and stop conditions
// (spec.md §4.7): stop when suggestionCount reaches the collection cap;
// stop when currentCost reaches maxCost, unless nothing has been found yet
// and currentCost is still under 2x maxCost (the budget doubles once, to
// give a hard word one extra chance before giving up entirely).
type status struct {
	strategy        Strategy
	maxCost         int
	currentCost     int
	suggestionCount int
	collectionCap   int
	doubled         bool
}

func newStatus(strategy Strategy, maxSuggestions int) *status {
	return &status{
		strategy:      strategy,
		maxCost:       strategy.maxCost(),
		collectionCap: maxCandidates(maxSuggestions),
	}
}

// spend charges one spell-attempt unit of cost. The one-time extension of
// the budget to twice maxCost while nothing has been found is applied by
// done().
func (s *status) spend() {
	s.currentCost++
}

// recordCandidate registers one accepted candidate.
func (s *status) recordCandidate() {
	s.suggestionCount++
}

// done reports whether the generator pipeline should stop.
func (s *status) done() bool {
	if s.suggestionCount >= s.collectionCap {
		return true
	}
	if s.currentCost >= s.maxCost {
		if s.suggestionCount == 0 && s.currentCost < 2*s.maxCost {
			return false
		}
		return true
	}
	return false
}
