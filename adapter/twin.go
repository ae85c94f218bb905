package adapter

import "github.com/harper-go/harper/token"

// TwinQuotes fills in QuoteData.TwinLoc for every double-quote token in
// tokens by pairing them up in the order they appear: the first quote in a
// pair is the opener, the second its closer, and each is pointed at the
// other's character index (its Span.Start) in source, matching spec.md
// §3's Quote{ twin_loc: Option<CharIndex> }. This mirrors how a real
// document nests quoted spans but is deliberately not run automatically
// by Translate — the core reserves QuoteData.TwinLoc without populating
// it, leaving twinning as an independent post-pass a caller opts into.
//
// An unmatched trailing quote (an odd total count) is left untwinned.
func TwinQuotes(tokens []token.Token, source []rune) []token.Token {
	var quoteIdx []int
	for i, t := range tokens {
		if t.Kind == token.KindPunctuation && t.Punct == token.Quote {
			quoteIdx = append(quoteIdx, i)
		}
	}
	if len(quoteIdx) < 2 {
		return tokens
	}

	out := make([]token.Token, len(tokens))
	copy(out, tokens)

	for i := 0; i+1 < len(quoteIdx); i += 2 {
		open, close := quoteIdx[i], quoteIdx[i+1]
		openLoc, closeLoc := out[open].Span.Start, out[close].Span.Start
		out[open].Quote = token.QuoteData{TwinLoc: &closeLoc}
		out[close].Quote = token.QuoteData{TwinLoc: &openLoc}
	}

	return out
}
