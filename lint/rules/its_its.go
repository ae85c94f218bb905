package rules

import (
	"github.com/harper-go/harper/lint"
	"github.com/harper-go/harper/pattern"
	"github.com/harper-go/harper/span"
	"github.com/harper-go/harper/token"
)

// ItsIts catches confusion between the possessive "its" and the
// contraction "it's", in both directions:
//   - bare "its" immediately followed by a verb almost always should have
//     been the contraction: "its raining" -> "it's raining".
//   - the contraction "it's" immediately followed by a non-possessive noun
//     almost always should have been the possessive: "it's paws" -> "its
//     paws".
type ItsIts struct {
	pat pattern.Pattern
}

func isNonPossessiveNoun(t token.Token, source []rune) bool {
	return t.Kind == token.KindWord && !t.IsVerb() && !t.IsPossessiveNoun() && !t.IsConjunction()
}

// NewItsIts builds the ItsIts rule, following the same SequencePattern/Or
// shape as ThenThan.
func NewItsIts() *ItsIts {
	itsBeforeVerb := pattern.NewSequence().
		ThenAnyCapitalizationOf("its").
		ThenWhitespace().
		Then(pattern.Predicate(func(t token.Token, source []rune) bool { return t.IsVerb() }))

	contractionBeforeNoun := pattern.NewSequence().
		ThenAnyCapitalizationOf("it").
		ThenApostrophe().
		ThenAnyCapitalizationOf("s").
		ThenWhitespace().
		Then(pattern.Predicate(isNonPossessiveNoun))

	return &ItsIts{pat: pattern.Or(itsBeforeVerb, contractionBeforeNoun)}
}

func (r *ItsIts) Pattern() pattern.Pattern { return r.pat }

func (r *ItsIts) MatchToLint(matched []token.Token, source []rune) (*lint.Lint, bool) {
	// A contraction match is 5 tokens (it, ', s, ws, noun); the bare-"its"
	// match is 3 (its, ws, verb). Disambiguate on length, not content.
	if len(matched) == 5 {
		whole := span.Cover(matched[0].Span, matched[2].Span)
		offending := whole.GetContent(source)
		return &lint.Lint{
			Span:        whole,
			Kind:        lint.Grammar,
			Suggestions: []lint.Suggestion{lint.ReplaceWithMatchCase([]rune("its"), offending)},
			Message:     "Did you mean the possessive `its`?",
			Priority:    30,
		}, true
	}

	itsTok := matched[0]
	offending := itsTok.Span.GetContent(source)
	return &lint.Lint{
		Span:        itsTok.Span,
		Kind:        lint.Grammar,
		Suggestions: []lint.Suggestion{lint.ReplaceWithMatchCase([]rune("it's"), offending)},
		Message:     "Did you mean the contraction `it's`?",
		Priority:    30,
	}, true
}

func (r *ItsIts) Description() string {
	return "Catches confusion between the possessive `its` and the contraction `it's`."
}
