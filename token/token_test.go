package token

import (
	"testing"

	"github.com/harper-go/harper/span"
)

func TestKindString(t *testing.T) {
	if KindWord.String() != "Word" {
		t.Errorf("got %q", KindWord.String())
	}
	if KindUnlintable.String() != "Unlintable" {
		t.Errorf("got %q", KindUnlintable.String())
	}
}

func TestWordMetadataMergeIsMonotonic(t *testing.T) {
	trueVal := true
	a := WordMetadata{Noun: &NounData{IsPossessive: &trueVal}}
	b := WordMetadata{IsAdjective: true, Conjunction: &ConjunctionData{}}

	merged := a.Merge(b)
	if merged.Noun == nil || merged.Noun.IsPossessive == nil || !*merged.Noun.IsPossessive {
		t.Errorf("expected possessive noun fact to survive merge, got %+v", merged.Noun)
	}
	if !merged.IsAdjective {
		t.Errorf("expected adjective fact to survive merge")
	}
	if merged.Conjunction == nil {
		t.Errorf("expected conjunction fact to survive merge")
	}
}

func TestWordMetadataMergeDoesNotOverwriteKnownFact(t *testing.T) {
	trueVal, falseVal := true, false
	a := WordMetadata{Noun: &NounData{IsPossessive: &trueVal}}
	b := WordMetadata{Noun: &NounData{IsPossessive: &falseVal}}

	merged := a.Merge(b)
	if !*merged.Noun.IsPossessive {
		t.Errorf("merge must prefer the left side's already-known fact, got %v", *merged.Noun.IsPossessive)
	}
}

func TestConstructorsSetKind(t *testing.T) {
	sp := span.New(0, 3)

	cases := []struct {
		name string
		tok  Token
		want Kind
	}{
		{"word", NewWord(sp, WordMetadata{}), KindWord},
		{"punctuation", NewPunctuation(sp, Comma), KindPunctuation},
		{"space", NewSpace(sp, 1), KindSpace},
		{"newline", NewNewline(sp, 1), KindNewline},
		{"paragraph break", NewParagraphBreak(sp), KindParagraphBreak},
		{"number", NewNumber(sp, 3.5, nil), KindNumber},
		{"url", NewURL(sp), KindURL},
		{"unlintable", NewUnlintable(sp), KindUnlintable},
	}
	for _, c := range cases {
		if c.tok.Kind != c.want {
			t.Errorf("%s: got Kind %v, want %v", c.name, c.tok.Kind, c.want)
		}
		if c.tok.Span != sp {
			t.Errorf("%s: span not preserved", c.name)
		}
	}
}

func TestIsAdjectiveAndIsConjunction(t *testing.T) {
	sp := span.New(0, 1)
	adj := NewWord(sp, WordMetadata{IsAdjective: true})
	if !adj.IsAdjective() {
		t.Errorf("expected adjective token to report IsAdjective")
	}
	if adj.IsConjunction() {
		t.Errorf("adjective token must not report IsConjunction")
	}

	conj := NewWord(sp, WordMetadata{Conjunction: &ConjunctionData{}})
	if !conj.IsConjunction() {
		t.Errorf("expected conjunction token to report IsConjunction")
	}

	punct := NewPunctuation(sp, Comma)
	if punct.IsAdjective() || punct.IsConjunction() {
		t.Errorf("punctuation token must report neither facet")
	}
}

func TestIsVerbAndIsPossessiveNoun(t *testing.T) {
	sp := span.New(0, 1)
	linking := true
	verbTok := NewWord(sp, WordMetadata{Verb: &VerbData{IsLinking: &linking}})
	if !verbTok.IsVerb() {
		t.Errorf("expected verb token to report IsVerb")
	}
	if verbTok.IsPossessiveNoun() {
		t.Errorf("verb token must not report IsPossessiveNoun")
	}

	possessive := true
	nounTok := NewWord(sp, WordMetadata{Noun: &NounData{IsPossessive: &possessive}})
	if !nounTok.IsPossessiveNoun() {
		t.Errorf("expected possessive noun token to report IsPossessiveNoun")
	}
	if nounTok.IsVerb() {
		t.Errorf("noun token must not report IsVerb")
	}
}

func TestIsApostropheLike(t *testing.T) {
	sp := span.New(0, 1)
	if !NewPunctuation(sp, Apostrophe).IsApostropheLike() {
		t.Errorf("expected Apostrophe punctuation to be apostrophe-like")
	}
	if NewPunctuation(sp, Quote).IsApostropheLike() {
		t.Errorf("Quote punctuation must not be treated as an apostrophe")
	}
}
