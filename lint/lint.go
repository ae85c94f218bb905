// Package lint defines the Lint result type, the Suggestion case-matching
// helper, and the PatternLinter engine that drives a Pattern across a
// token stream to produce Lints.
package lint

import (
	"fmt"
	"unicode"

	"github.com/harper-go/harper/pattern"
	"github.com/harper-go/harper/span"
	"github.com/harper-go/harper/token"
)

// Kind categorizes a Lint for filtering and display purposes.
type Kind int

const (
	Miscellaneous Kind = iota
	WordChoice
	Grammar
	Spelling
	Style
	Punctuation
)

var kindNames = [...]string{
	"Miscellaneous", "WordChoice", "Grammar", "Spelling", "Style", "Punctuation",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// SuggestionKind distinguishes the action a Suggestion proposes.
type SuggestionKind int

const (
	Replace SuggestionKind = iota
	Remove
	InsertAfter
)

// Suggestion proposes one fix for a Lint.
type Suggestion struct {
	Kind        SuggestionKind
	Replacement []rune
}

// ReplaceWithMatchCase builds a Replace suggestion whose casing matches
// original:
//   - original is empty: replacement is used verbatim.
//   - original is all-uppercase: replacement is upper-cased.
//   - original is capitalized (first letter upper, every other letter
//     lower): replacement's first letter is upper-cased, the rest
//     lower-cased.
//   - otherwise: replacement is lower-cased.
func ReplaceWithMatchCase(replacement, original []rune) Suggestion {
	if len(original) == 0 {
		return Suggestion{Kind: Replace, Replacement: append([]rune(nil), replacement...)}
	}

	if isAllUpper(original) {
		return Suggestion{Kind: Replace, Replacement: toUpper(replacement)}
	}

	if isCapitalized(original) {
		return Suggestion{Kind: Replace, Replacement: capitalizeFirst(replacement)}
	}

	return Suggestion{Kind: Replace, Replacement: toLower(replacement)}
}

func isAllUpper(rs []rune) bool {
	sawLetter := false
	for _, r := range rs {
		if !unicode.IsLetter(r) {
			continue
		}
		sawLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return sawLetter
}

func isCapitalized(rs []rune) bool {
	first := true
	for _, r := range rs {
		if !unicode.IsLetter(r) {
			continue
		}
		if first {
			if !unicode.IsUpper(r) {
				return false
			}
			first = false
			continue
		}
		if unicode.IsUpper(r) {
			return false
		}
	}
	return !first
}

func capitalizeFirst(rs []rune) []rune {
	out := make([]rune, len(rs))
	capitalized := false
	for i, r := range rs {
		if !capitalized && unicode.IsLetter(r) {
			out[i] = unicode.ToUpper(r)
			capitalized = true
			continue
		}
		out[i] = unicode.ToLower(r)
	}
	return out
}

func toUpper(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToUpper(r)
	}
	return out
}

func toLower(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// Lint is a single diagnostic anchored to a Span.
type Lint struct {
	Span        span.Span
	Kind        Kind
	Suggestions []Suggestion
	Message     string
	Priority    uint8
}

// PatternLinter is a rule built on a single Pattern: whenever the pattern
// matches, MatchToLint decides whether the match is actually a problem and,
// if so, produces the Lint to report.
type PatternLinter interface {
	Pattern() pattern.Pattern
	MatchToLint(matched []token.Token, source []rune) (*Lint, bool)
	Description() string
}

// RunPatternLinter scans tokens for every match of pl's pattern and
// collects the Lints MatchToLint produces for them.
func RunPatternLinter(pl PatternLinter, tokens []token.Token, source []rune) []Lint {
	matches := pattern.FindAllMatches(pl.Pattern(), tokens, source)
	var lints []Lint
	for _, m := range matches {
		l, ok := pl.MatchToLint(tokens[m[0]:m[1]], source)
		if ok && l != nil {
			lints = append(lints, *l)
		}
	}
	return lints
}
