package rules

import (
	"github.com/harper-go/harper/lint"
	"github.com/harper-go/harper/pattern"
	"github.com/harper-go/harper/token"
)

// WhoWhom flags "who" directly following a preposition, where "whom" is
// almost always intended: "the person to who I gave it" -> "...to whom...".
// This is a narrower heuristic than full case analysis (it does not
// attempt subject/object role detection), mirroring the same
// WordSet-then-word shape as ThenThan's comparative anchor but without its
// Or/Invert layers.
type WhoWhom struct {
	pat pattern.Pattern
}

var prepositions = []string{"to", "for", "with", "from", "by"}

// NewWhoWhom builds the WhoWhom rule.
func NewWhoWhom() *WhoWhom {
	seq := pattern.NewSequence().
		Then(pattern.WordSet(prepositions)).
		ThenWhitespace().
		ThenAnyCapitalizationOf("who")

	return &WhoWhom{pat: seq}
}

func (r *WhoWhom) Pattern() pattern.Pattern { return r.pat }

func (r *WhoWhom) MatchToLint(matched []token.Token, source []rune) (*lint.Lint, bool) {
	whoTok := matched[2]
	offending := whoTok.Span.GetContent(source)

	return &lint.Lint{
		Span:        whoTok.Span,
		Kind:        lint.Grammar,
		Suggestions: []lint.Suggestion{lint.ReplaceWithMatchCase([]rune("whom"), offending)},
		Message:     "Did you mean `whom`?",
		Priority:    20,
	}, true
}

func (r *WhoWhom) Description() string {
	return "Flags `who` directly following a preposition, where `whom` is usually intended."
}
