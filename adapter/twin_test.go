package adapter

import (
	"testing"

	"github.com/harper-go/harper/markup"
	"github.com/harper-go/harper/token"
)

func TestTwinQuotesPairsSequentialQuotes(t *testing.T) {
	src := []byte(`"hello" and "world"`)
	toks := Translate(markup.Parse(src), src)
	runes := []rune(string(src))

	twinned := TwinQuotes(toks, runes)

	var opens, closes int
	for _, tok := range twinned {
		if tok.Kind != token.KindPunctuation {
			continue
		}
		if tok.Quote.TwinLoc == nil {
			continue
		}
		// TwinLoc is a character index (the paired quote's Span.Start), not
		// a token-slice index: a quote whose pair lies later in the source
		// is the opener, one whose pair lies earlier is the closer.
		if *tok.Quote.TwinLoc > tok.Span.Start {
			opens++
		} else {
			closes++
		}
	}
	if opens != 2 || closes != 2 {
		t.Fatalf("got %d opening and %d closing twinned quotes, want 2 and 2", opens, closes)
	}
}

// TwinLoc must be the partner quote's actual character offset in source,
// not merely ordered relative to it — pin the exact value rather than just
// open/close counts.
func TestTwinQuotesTwinLocIsPartnerCharOffset(t *testing.T) {
	src := []byte(`"hello" and "world"`)
	toks := Translate(markup.Parse(src), src)
	runes := []rune(string(src))

	twinned := TwinQuotes(toks, runes)

	var quotes []token.Token
	for _, tok := range twinned {
		if tok.Kind == token.KindPunctuation && tok.Quote.TwinLoc != nil {
			quotes = append(quotes, tok)
		}
	}
	if len(quotes) != 4 {
		t.Fatalf("got %d twinned quotes, want 4", len(quotes))
	}
	open1, close1, open2, close2 := quotes[0], quotes[1], quotes[2], quotes[3]
	if *open1.Quote.TwinLoc != close1.Span.Start {
		t.Errorf("open1 TwinLoc %d, want close1.Span.Start %d", *open1.Quote.TwinLoc, close1.Span.Start)
	}
	if *close1.Quote.TwinLoc != open1.Span.Start {
		t.Errorf("close1 TwinLoc %d, want open1.Span.Start %d", *close1.Quote.TwinLoc, open1.Span.Start)
	}
	if *open2.Quote.TwinLoc != close2.Span.Start {
		t.Errorf("open2 TwinLoc %d, want close2.Span.Start %d", *open2.Quote.TwinLoc, close2.Span.Start)
	}
	if *close2.Quote.TwinLoc != open2.Span.Start {
		t.Errorf("close2 TwinLoc %d, want open2.Span.Start %d", *close2.Quote.TwinLoc, open2.Span.Start)
	}
}

func TestTwinQuotesLeavesUnmatchedTrailingQuote(t *testing.T) {
	src := []byte(`"only one`)
	toks := Translate(markup.Parse(src), src)
	runes := []rune(string(src))

	twinned := TwinQuotes(toks, runes)
	for _, tok := range twinned {
		if tok.Quote.TwinLoc != nil {
			t.Fatalf("a single unmatched quote must not be twinned")
		}
	}
}
