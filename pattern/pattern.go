// Package pattern implements the composable token-matching framework rules
// are built from: a handful of primitive matchers, combinators that glue
// them into sequences/alternatives/conjunctions, and a scanner that finds
// all non-overlapping matches of a pattern across a token stream.
package pattern

import (
	"strings"
	"sync"

	"github.com/harper-go/harper/token"
)

// Pattern matches a prefix of tokens starting at index 0 of the slice it is
// given. It returns the number of tokens consumed and whether the match
// succeeded. A failed match must report (0, false); callers never trust a
// non-zero length alongside false.
type Pattern interface {
	Matches(tokens []token.Token, source []rune) (int, bool)
}

// PatternFunc adapts a plain function to the Pattern interface, the same
// shape as http.HandlerFunc in the standard library.
type PatternFunc func(tokens []token.Token, source []rune) (int, bool)

func (f PatternFunc) Matches(tokens []token.Token, source []rune) (int, bool) {
	return f(tokens, source)
}

// TokenPredicate reports whether a single token matches some condition.
type TokenPredicate func(t token.Token, source []rune) bool

// Predicate wraps a TokenPredicate as a one-token Pattern.
func Predicate(pred TokenPredicate) Pattern {
	return PatternFunc(func(tokens []token.Token, source []rune) (int, bool) {
		if len(tokens) == 0 {
			return 0, false
		}
		if pred(tokens[0], source) {
			return 1, true
		}
		return 0, false
	})
}

// WordSet matches a single Word token whose text, case-insensitively,
// equals one of words.
func WordSet(words []string) Pattern {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return Predicate(func(t token.Token, source []rune) bool {
		if t.Kind != token.KindWord {
			return false
		}
		text := strings.ToLower(t.Span.GetContentString(source))
		_, ok := set[text]
		return ok
	})
}

// AnyCapitalization matches a single Word token whose text equals chars,
// case-insensitively, regardless of how it is capitalized in the source.
func AnyCapitalization(chars []rune) Pattern {
	want := strings.ToLower(string(chars))
	return Predicate(func(t token.Token, source []rune) bool {
		if t.Kind != token.KindWord {
			return false
		}
		return strings.ToLower(t.Span.GetContentString(source)) == want
	})
}

// AnyCapitalizationOf is a convenience wrapper over AnyCapitalization for a
// string literal, the common case when authoring a rule.
func AnyCapitalizationOf(word string) Pattern {
	return AnyCapitalization([]rune(word))
}

// AnyWord matches any single Word token.
func AnyWord() Pattern {
	return Predicate(func(t token.Token, source []rune) bool {
		return t.Kind == token.KindWord
	})
}

// Whitespace matches a single Space or Newline token.
func Whitespace() Pattern {
	return Predicate(func(t token.Token, source []rune) bool {
		return t.Kind == token.KindSpace || t.Kind == token.KindNewline
	})
}

// Apostrophe matches a single apostrophe-like Punctuation token.
func Apostrophe() Pattern {
	return Predicate(func(t token.Token, source []rune) bool {
		return t.IsApostropheLike()
	})
}

// Sequence matches a fixed list of sub-patterns back to back, with no
// tokens skipped between them. Build one with the fluent Then* methods.
type Sequence struct {
	steps []Pattern
}

// NewSequence returns an empty Sequence ready for Then* chaining.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Then appends an arbitrary sub-pattern to the sequence.
func (s *Sequence) Then(p Pattern) *Sequence {
	s.steps = append(s.steps, p)
	return s
}

// ThenWhitespace appends a Whitespace() step.
func (s *Sequence) ThenWhitespace() *Sequence {
	return s.Then(Whitespace())
}

// ThenAnyCapitalizationOf appends an AnyCapitalizationOf(word) step.
func (s *Sequence) ThenAnyCapitalizationOf(word string) *Sequence {
	return s.Then(AnyCapitalizationOf(word))
}

// ThenApostrophe appends an Apostrophe() step.
func (s *Sequence) ThenApostrophe() *Sequence {
	return s.Then(Apostrophe())
}

// ThenAnyWord appends an AnyWord() step.
func (s *Sequence) ThenAnyWord() *Sequence {
	return s.Then(AnyWord())
}

// Matches runs the sequence's steps in order against tokens, consuming as
// many tokens as every step together consumed. The whole sequence fails if
// any single step fails.
func (s *Sequence) Matches(tokens []token.Token, source []rune) (int, bool) {
	total := 0
	for _, step := range s.steps {
		n, ok := step.Matches(tokens[total:], source)
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

// Or tries p first; if p fails outright, it tries q. It never compares
// match lengths across branches — the first pattern to succeed wins,
// matching the short-circuiting `||` style of the original pattern
// combinators this was ported from (see DESIGN.md Open Question 1).
func Or(p, q Pattern) Pattern {
	return PatternFunc(func(tokens []token.Token, source []rune) (int, bool) {
		if n, ok := p.Matches(tokens, source); ok {
			return n, true
		}
		return q.Matches(tokens, source)
	})
}

// All requires every pattern in patterns to match starting at the same
// position; the reported length is the first pattern's length, anchoring
// the combinator as a conjunction rather than a concatenation.
func All(patterns ...Pattern) Pattern {
	return PatternFunc(func(tokens []token.Token, source []rune) (int, bool) {
		if len(patterns) == 0 {
			return 0, false
		}
		first, ok := patterns[0].Matches(tokens, source)
		if !ok {
			return 0, false
		}
		for _, p := range patterns[1:] {
			if _, ok := p.Matches(tokens, source); !ok {
				return 0, false
			}
		}
		return first, true
	})
}

// Invert succeeds with length 1 exactly when p fails to match at the
// current position — a one-token negative lookahead, not a general
// negation of multi-token matches.
func Invert(p Pattern) Pattern {
	return PatternFunc(func(tokens []token.Token, source []rune) (int, bool) {
		if len(tokens) == 0 {
			return 0, false
		}
		if _, ok := p.Matches(tokens, source); ok {
			return 0, false
		}
		return 1, true
	})
}

// FindAllMatches scans tokens left to right looking for non-overlapping
// matches of p, returning each as a [start, end) index pair into tokens.
// Zero-length matches are guarded against to avoid looping forever: a
// pattern that matches nothing advances the scan by one token instead.
func FindAllMatches(p Pattern, tokens []token.Token, source []rune) [][2]int {
	var matches [][2]int
	i := 0
	for i < len(tokens) {
		n, ok := p.Matches(tokens[i:], source)
		if ok && n > 0 {
			matches = append(matches, [2]int{i, i + n})
			i += n
			continue
		}
		i++
	}
	return matches
}

// WordApostropheWord is the cached Word·Apostrophe·Word sequence pattern
// used by the apostrophe consolidation pass. It is built once per process
// via sync.OnceValue, the Go idiom for a read-only, lazily-initialized
// singleton in place of a thread-local pattern cache.
var WordApostropheWord = sync.OnceValue(func() Pattern {
	return NewSequence().ThenAnyWord().ThenApostrophe().ThenAnyWord()
})
