package pattern

import (
	"testing"

	"github.com/harper-go/harper/span"
	"github.com/harper-go/harper/token"
)

func word(source []rune, text string, at int) (token.Token, int) {
	runes := []rune(text)
	sp := span.New(at, at+len(runes))
	return token.NewWord(sp, token.WordMetadata{}), at + len(runes)
}

// buildTokens lays out words/spaces back to back in a shared source buffer
// and returns both, mirroring how english.ParseStr produces a stream.
func buildTokens(words []string) ([]token.Token, []rune) {
	var source []rune
	var toks []token.Token
	pos := 0
	for i, w := range words {
		if i > 0 {
			source = append(source, ' ')
			toks = append(toks, token.NewSpace(span.New(pos, pos+1), 1))
			pos++
		}
		runes := []rune(w)
		toks = append(toks, token.NewWord(span.New(pos, pos+len(runes)), token.WordMetadata{}))
		source = append(source, runes...)
		pos += len(runes)
	}
	return toks, source
}

func TestWordSetMatchesCaseInsensitively(t *testing.T) {
	toks, source := buildTokens([]string{"Then"})
	p := WordSet([]string{"then", "than"})
	n, ok := p.Matches(toks, source)
	if !ok || n != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", n, ok)
	}
}

func TestAnyCapitalizationOf(t *testing.T) {
	toks, source := buildTokens([]string{"THAN"})
	p := AnyCapitalizationOf("than")
	if n, ok := p.Matches(toks, source); !ok || n != 1 {
		t.Fatalf("got (%d, %v)", n, ok)
	}
}

func TestSequenceMatchesWordWhitespaceWord(t *testing.T) {
	toks, source := buildTokens([]string{"rather", "than"})
	seq := NewSequence().ThenAnyWord().ThenWhitespace().ThenAnyCapitalizationOf("than")
	n, ok := seq.Matches(toks, source)
	if !ok || n != 3 {
		t.Fatalf("got (%d, %v), want (3, true)", n, ok)
	}
}

func TestSequenceFailsIfAnyStepFails(t *testing.T) {
	toks, source := buildTokens([]string{"rather", "then"})
	seq := NewSequence().ThenAnyWord().ThenWhitespace().ThenAnyCapitalizationOf("than")
	if _, ok := seq.Matches(toks, source); ok {
		t.Fatalf("expected no match")
	}
}

func TestOrPrefersFirstSuccess(t *testing.T) {
	toks, source := buildTokens([]string{"than"})
	p := Or(AnyCapitalizationOf("than"), AnyCapitalizationOf("then"))
	n, ok := p.Matches(toks, source)
	if !ok || n != 1 {
		t.Fatalf("got (%d, %v)", n, ok)
	}
}

func TestOrFallsThroughToSecond(t *testing.T) {
	toks, source := buildTokens([]string{"then"})
	p := Or(AnyCapitalizationOf("than"), AnyCapitalizationOf("then"))
	n, ok := p.Matches(toks, source)
	if !ok || n != 1 {
		t.Fatalf("got (%d, %v)", n, ok)
	}
}

func TestAllRequiresEveryPatternAtSamePosition(t *testing.T) {
	toks, source := buildTokens([]string{"then"})
	p := All(AnyWord(), AnyCapitalizationOf("then"))
	n, ok := p.Matches(toks, source)
	if !ok || n != 1 {
		t.Fatalf("got (%d, %v)", n, ok)
	}

	q := All(AnyWord(), AnyCapitalizationOf("than"))
	if _, ok := q.Matches(toks, source); ok {
		t.Fatalf("expected All to fail when second pattern disagrees")
	}
}

func TestInvertIsOneTokenLookahead(t *testing.T) {
	toks, source := buildTokens([]string{"then"})
	p := Invert(AnyCapitalizationOf("than"))
	n, ok := p.Matches(toks, source)
	if !ok || n != 1 {
		t.Fatalf("got (%d, %v), want match of length 1", n, ok)
	}

	q := Invert(AnyCapitalizationOf("then"))
	if _, ok := q.Matches(toks, source); ok {
		t.Fatalf("expected Invert to fail when inner pattern matches")
	}
}

func TestFindAllMatchesIsNonOverlapping(t *testing.T) {
	toks, source := buildTokens([]string{"than", "foo", "than", "bar"})
	matches := FindAllMatches(AnyCapitalizationOf("than"), toks, source)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0] != [2]int{0, 1} || matches[1] != [2]int{4, 5} {
		t.Fatalf("got %v", matches)
	}
}

func TestFindAllMatchesAdvancesOnNoMatch(t *testing.T) {
	toks, source := buildTokens([]string{"foo", "bar", "baz"})
	matches := FindAllMatches(AnyCapitalizationOf("than"), toks, source)
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %v", matches)
	}
}

func TestWordApostropheWordSequence(t *testing.T) {
	source := []rune("don't")
	toks := []token.Token{
		token.NewWord(span.New(0, 3), token.WordMetadata{}),
		token.NewPunctuation(span.New(3, 4), token.Apostrophe),
		token.NewWord(span.New(4, 5), token.WordMetadata{}),
	}
	n, ok := WordApostropheWord().Matches(toks, source)
	if !ok || n != 3 {
		t.Fatalf("got (%d, %v), want (3, true)", n, ok)
	}

	cached := WordApostropheWord()
	if cached == nil {
		t.Fatalf("expected cached pattern to be non-nil")
	}
}
