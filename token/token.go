// Package token defines the tagged-union Token type the rest of Harper
// operates on: a (Span, Kind) pair with optional morphological metadata on
// words. The shape mirrors a compiler lexer's Token{Type, Lexeme, Literal},
// where a single struct carries a closed Type tag plus whatever side fields
// that type needs, rather than one Go type per variant.
package token

import (
	"fmt"

	"github.com/harper-go/harper/span"
)

// Kind tags the variant a Token carries.
type Kind int

const (
	KindWord Kind = iota
	KindPunctuation
	KindSpace
	KindNewline
	KindParagraphBreak
	KindNumber
	KindURL
	KindUnlintable
)

var kindNames = [...]string{
	"Word",
	"Punctuation",
	"Space",
	"Newline",
	"ParagraphBreak",
	"Number",
	"URL",
	"Unlintable",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// PunctuationKind enumerates the punctuation marks Harper distinguishes.
// Beyond the core set (Comma .. Quote), a handful of additional marks are
// included so the plain-English tokenizer has somewhere to put them instead
// of inventing a catch-all "Unlintable" for ordinary punctuation —
// Unlintable is reserved for deliberately opaque regions, not generic
// overflow.
type PunctuationKind int

const (
	Comma PunctuationKind = iota
	Period
	Bang
	Question
	Colon
	Semicolon
	Apostrophe
	Quote
	Hyphen
	Dash
	Ellipsis
	OpenParen
	CloseParen
	Other
)

var punctuationNames = [...]string{
	"Comma", "Period", "Bang", "Question", "Colon", "Semicolon",
	"Apostrophe", "Quote", "Hyphen", "Dash", "Ellipsis", "OpenParen",
	"CloseParen", "Other",
}

func (p PunctuationKind) String() string {
	if int(p) < 0 || int(p) >= len(punctuationNames) {
		return fmt.Sprintf("PunctuationKind(%d)", p)
	}
	return punctuationNames[p]
}

// QuoteData carries the optional twin location a quote-twinning post-pass
// may fill in. The core reserves the field but never populates it itself.
type QuoteData struct {
	TwinLoc *int
}

// NounData describes the possessive facet of a noun.
type NounData struct {
	IsPossessive *bool
}

// ConjunctionData marks a word as functioning as a conjunction (e.g. the
// contraction "doesn't" after apostrophe consolidation). It carries no
// fields today but exists as its own type so consolidation can
// distinguish "known not to be a conjunction" (nil) from "known to be one"
// (non-nil), matching WordMetadata's monotonic-enrichment design.
type ConjunctionData struct{}

// VerbData describes verb facets consulted by rules that need to tell verbs
// apart from other parts of speech (e.g. the ItsIts supplemental rule).
type VerbData struct {
	IsLinking *bool
}

// WordMetadata is a flat record of optional part-of-speech facets. It is
// monotonically enrichable: Merge takes the union of known facts from two
// metadata records describing the same lexeme, never discarding a fact one
// side already established.
type WordMetadata struct {
	Noun        *NounData
	Conjunction *ConjunctionData
	Verb        *VerbData
	IsAdjective bool
}

// Merge combines m with other, keeping every fact either side knows.
func (m WordMetadata) Merge(other WordMetadata) WordMetadata {
	out := m
	if out.Noun == nil {
		out.Noun = other.Noun
	} else if other.Noun != nil {
		merged := *out.Noun
		if merged.IsPossessive == nil {
			merged.IsPossessive = other.Noun.IsPossessive
		}
		out.Noun = &merged
	}
	if out.Conjunction == nil {
		out.Conjunction = other.Conjunction
	}
	if out.Verb == nil {
		out.Verb = other.Verb
	} else if other.Verb != nil {
		merged := *out.Verb
		if merged.IsLinking == nil {
			merged.IsLinking = other.Verb.IsLinking
		}
		out.Verb = &merged
	}
	out.IsAdjective = out.IsAdjective || other.IsAdjective
	return out
}

// Token is a (Span, Kind) pair. Only the fields relevant to Kind are
// meaningful; the zero value of the others is simply unused.
type Token struct {
	Span span.Span
	Kind Kind

	// KindWord
	Word WordMetadata

	// KindPunctuation
	Punct PunctuationKind
	Quote QuoteData

	// KindSpace / KindNewline: visual width / line-terminator count
	Width int

	// KindNumber
	Value float64
	Unit  *string
}

// NewWord constructs a Word token.
func NewWord(sp span.Span, metadata WordMetadata) Token {
	return Token{Span: sp, Kind: KindWord, Word: metadata}
}

// NewPunctuation constructs a Punctuation token.
func NewPunctuation(sp span.Span, kind PunctuationKind) Token {
	return Token{Span: sp, Kind: KindPunctuation, Punct: kind}
}

// NewQuote constructs a double-quote Punctuation token, optionally twinned.
func NewQuote(sp span.Span, twinLoc *int) Token {
	return Token{Span: sp, Kind: KindPunctuation, Punct: Quote, Quote: QuoteData{TwinLoc: twinLoc}}
}

// NewSpace constructs a Space token of the given visual width.
func NewSpace(sp span.Span, width int) Token {
	return Token{Span: sp, Kind: KindSpace, Width: width}
}

// NewNewline constructs a Newline token spanning n line terminators.
func NewNewline(sp span.Span, n int) Token {
	return Token{Span: sp, Kind: KindNewline, Width: n}
}

// NewParagraphBreak constructs a ParagraphBreak token.
func NewParagraphBreak(sp span.Span) Token {
	return Token{Span: sp, Kind: KindParagraphBreak}
}

// NewNumber constructs a Number token.
func NewNumber(sp span.Span, value float64, unit *string) Token {
	return Token{Span: sp, Kind: KindNumber, Value: value, Unit: unit}
}

// NewURL constructs a Url token.
func NewURL(sp span.Span) Token {
	return Token{Span: sp, Kind: KindURL}
}

// NewUnlintable constructs an Unlintable token.
func NewUnlintable(sp span.Span) Token {
	return Token{Span: sp, Kind: KindUnlintable}
}

// IsAdjective reports whether t is a Word tagged as an adjective.
func (t Token) IsAdjective() bool {
	return t.Kind == KindWord && t.Word.IsAdjective
}

// IsConjunction reports whether t is a Word carrying conjunction metadata.
func (t Token) IsConjunction() bool {
	return t.Kind == KindWord && t.Word.Conjunction != nil
}

// IsVerb reports whether t is a Word carrying verb metadata.
func (t Token) IsVerb() bool {
	return t.Kind == KindWord && t.Word.Verb != nil
}

// IsPossessiveNoun reports whether t is a Word tagged as a possessive noun.
func (t Token) IsPossessiveNoun() bool {
	return t.Kind == KindWord && t.Word.Noun != nil && t.Word.Noun.IsPossessive != nil && *t.Word.Noun.IsPossessive
}

// IsApostropheLike reports whether t is Apostrophe punctuation, the form
// the Apostrophe pattern primitive accepts. Straight and curly single
// quotes are both tokenized as Apostrophe; double quotes (Quote) are not
// apostrophe-like.
func (t Token) IsApostropheLike() bool {
	return t.Kind == KindPunctuation && t.Punct == Apostrophe
}

func (t Token) String() string {
	return fmt.Sprintf("%s%s", t.Kind, t.Span)
}
