package english

import (
	"testing"

	"github.com/harper-go/harper/morphology"
	"github.com/harper-go/harper/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestParseStrSimpleSentence(t *testing.T) {
	toks := ParseStr("I eat less then you.")
	want := []token.Kind{
		token.KindWord, token.KindSpace, token.KindWord, token.KindSpace,
		token.KindWord, token.KindSpace, token.KindWord, token.KindSpace,
		token.KindWord, token.KindPunctuation,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseStrParagraphBreak(t *testing.T) {
	toks := ParseStr("First.\n\nSecond.")
	sawParagraphBreak := false
	for _, tok := range toks {
		if tok.Kind == token.KindParagraphBreak {
			sawParagraphBreak = true
		}
		if tok.Kind == token.KindNewline {
			t.Errorf("expected a double newline to collapse into a ParagraphBreak, not a Newline")
		}
	}
	if !sawParagraphBreak {
		t.Errorf("expected a ParagraphBreak token")
	}
}

func TestParseStrSingleNewlineStaysNewline(t *testing.T) {
	toks := ParseStr("First.\nSecond.")
	sawNewline := false
	for _, tok := range toks {
		if tok.Kind == token.KindNewline {
			sawNewline = true
		}
		if tok.Kind == token.KindParagraphBreak {
			t.Errorf("a single newline must not become a ParagraphBreak")
		}
	}
	if !sawNewline {
		t.Errorf("expected a Newline token")
	}
}

func TestParseStrURL(t *testing.T) {
	toks := ParseStr("See https://example.com/page for details.")
	found := false
	for _, tok := range toks {
		if tok.Kind == token.KindURL {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a URL token")
	}
}

func TestParseStrNumberWithUnit(t *testing.T) {
	toks := ParseStr("It weighs 12.5kg today.")
	for _, tok := range toks {
		if tok.Kind == token.KindNumber {
			if tok.Value != 12.5 {
				t.Errorf("got value %v, want 12.5", tok.Value)
			}
			if tok.Unit == nil || *tok.Unit != "kg" {
				t.Errorf("got unit %v, want kg", tok.Unit)
			}
			return
		}
	}
	t.Errorf("expected a Number token")
}

func TestParseStrApostropheIsItsOwnToken(t *testing.T) {
	toks := ParseStr("don't")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3 (word, apostrophe, word)", len(toks))
	}
	if toks[0].Kind != token.KindWord || toks[1].Kind != token.KindPunctuation || toks[2].Kind != token.KindWord {
		t.Errorf("got kinds %v, %v, %v", toks[0].Kind, toks[1].Kind, toks[2].Kind)
	}
	if toks[1].Punct != token.Apostrophe {
		t.Errorf("expected apostrophe punctuation, got %v", toks[1].Punct)
	}
}

// TestParseStrConsolidateApostrophesMergesContraction exercises the
// exported ConsolidateApostrophes helper directly (the adapter package's
// path for "doesn't" alone as a single merged Word token carrying
// conjunction metadata) without pulling it into ParseStr's own output,
// which rules like ItsIts depend on staying split.
func TestParseStrConsolidateApostrophesMergesContraction(t *testing.T) {
	source := []rune("doesn't")
	toks := ConsolidateApostrophes(Parse(source, morphology.Default()), source)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens %v, want 1 consolidated Word token", len(toks), kinds(toks))
	}
	if toks[0].Kind != token.KindWord {
		t.Fatalf("got kind %v, want Word", toks[0].Kind)
	}
	if !toks[0].IsConjunction() {
		t.Errorf("expected consolidated \"doesn't\" to carry conjunction metadata")
	}
	if toks[0].IsPossessiveNoun() {
		t.Errorf("\"doesn't\" must not be tagged as a possessive noun")
	}
}

func TestParseStrConsolidateApostrophesMergesPossessive(t *testing.T) {
	source := []rune("the group's writing")
	toks := ConsolidateApostrophes(Parse(source, morphology.Default()), source)
	want := []token.Kind{token.KindWord, token.KindSpace, token.KindWord, token.KindSpace, token.KindWord}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
	possessive := toks[2]
	if !possessive.IsPossessiveNoun() {
		t.Errorf("expected \"group's\" to be tagged as a possessive noun")
	}
	if possessive.Span.GetContentString(source) != "group's" {
		t.Errorf("expected consolidated span to cover \"group's\", got %q", possessive.Span.GetContentString(source))
	}
}

func TestParseStrAdjectiveDetection(t *testing.T) {
	toks := ParseStr("shorter")
	if len(toks) != 1 || !toks[0].IsAdjective() {
		t.Fatalf("expected 'shorter' to be tagged as an adjective")
	}
}

func TestParseStrVerbTagging(t *testing.T) {
	toks := ParseStr("is running")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	if toks[0].Word.Verb == nil || !*toks[0].Word.Verb.IsLinking {
		t.Errorf("expected 'is' to be tagged as a linking verb")
	}
	if toks[2].Word.Verb == nil || *toks[2].Word.Verb.IsLinking {
		t.Errorf("expected 'running' to be tagged as a non-linking verb")
	}
}

func TestParseStrEllipsis(t *testing.T) {
	toks := ParseStr("Wait...")
	last := toks[len(toks)-1]
	if last.Kind != token.KindPunctuation || last.Punct != token.Ellipsis {
		t.Errorf("expected trailing ellipsis token, got %v/%v", last.Kind, last.Punct)
	}
}
