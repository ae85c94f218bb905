package rules

import (
	"strings"

	"github.com/harper-go/harper/lint"
	"github.com/harper-go/harper/pattern"
	"github.com/harper-go/harper/token"
)

// ALotAlot catches the single misspelled word "alot", always meant as the
// two words "a lot". Unlike ThenThan/ItsIts/WhoWhom, this rule's pattern is
// a single-token Predicate rather than a multi-token Sequence, and its
// suggestion replaces one token's text with two words while still using a
// single Suggestion (the Replace contract does not require the replacement
// text to preserve token count).
type ALotAlot struct {
	pat pattern.Pattern
}

// NewALotAlot builds the ALotAlot rule.
func NewALotAlot() *ALotAlot {
	pred := pattern.Predicate(func(t token.Token, source []rune) bool {
		if t.Kind != token.KindWord {
			return false
		}
		return strings.EqualFold(t.Span.GetContentString(source), "alot")
	})
	return &ALotAlot{pat: pred}
}

func (r *ALotAlot) Pattern() pattern.Pattern { return r.pat }

func (r *ALotAlot) MatchToLint(matched []token.Token, source []rune) (*lint.Lint, bool) {
	tok := matched[0]
	offending := tok.Span.GetContent(source)

	return &lint.Lint{
		Span:        tok.Span,
		Kind:        lint.Spelling,
		Suggestions: []lint.Suggestion{lint.ReplaceWithMatchCase([]rune("a lot"), offending)},
		Message:     "Did you mean `a lot`?",
		Priority:    15,
	}, true
}

func (r *ALotAlot) Description() string {
	return "Corrects the misspelling `alot` to `a lot`."
}
