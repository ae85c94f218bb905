package rules

import (
	"github.com/harper-go/harper/lint"
	"github.com/harper-go/harper/pattern"
	"github.com/harper-go/harper/token"
)

// ThenThan corrects the misuse of "then" where "than" was meant, e.g.
// "One was shorter then the other." -> "...shorter than the other."
type ThenThan struct {
	pat pattern.Pattern
}

// NewThenThan builds a ThenThan rule. The pattern is a conjunction (All) of
// two independently-anchored checks at the same starting token:
//  1. the comparative sequence itself: a comparative word (either "better"
//     or "other", or anything the morphology store tags as an adjective),
//     whitespace, any capitalization of "then", whitespace, and NOT
//     "that" (so "then that" is left alone, e.g. "then that will wreak
//     havoc").
//  2. an exclusion: the leading word must NOT be one of "back", "this",
//     "so", "but" — words that can independently be classified as
//     adjectives (or near enough) but where "then" is almost always
//     correct ("back then", "do this then", "so then", "but then").
func NewThenThan() *ThenThan {
	comparative := pattern.Or(
		pattern.WordSet([]string{"better", "other"}),
		pattern.Predicate(func(t token.Token, source []rune) bool {
			return t.IsAdjective()
		}),
	)

	sequence := pattern.NewSequence().
		Then(comparative).
		ThenWhitespace().
		ThenAnyCapitalizationOf("then").
		ThenWhitespace().
		Then(pattern.Invert(pattern.AnyCapitalizationOf("that")))

	exclusion := pattern.Invert(pattern.WordSet([]string{"back", "this", "so", "but"}))

	return &ThenThan{pat: pattern.All(sequence, exclusion)}
}

func (r *ThenThan) Pattern() pattern.Pattern { return r.pat }

func (r *ThenThan) MatchToLint(matched []token.Token, source []rune) (*lint.Lint, bool) {
	thenTok := matched[2]
	offending := thenTok.Span.GetContent(source)

	return &lint.Lint{
		Span:        thenTok.Span,
		Kind:        lint.Miscellaneous,
		Suggestions: []lint.Suggestion{lint.ReplaceWithMatchCase([]rune("than"), offending)},
		Message:     "Did you mean `than`?",
		Priority:    31,
	}, true
}

func (r *ThenThan) Description() string {
	return "Corrects the misuse of `then` to `than`."
}
