// Package adapter translates a markup.Node tree into the flat token.Token
// stream the pattern and lint packages operate on. It plays the role
// harper-core's Typst parser plays for the original: a bridge between a
// structured-document grammar and Harper's plain token model, collapsing
// nodes Harper never lints inside (function calls, binary expressions,
// code blocks) into single Unlintable tokens and recursing into the plain
// English tokenizer wherever a node carries lintable prose.
package adapter

import (
	"strconv"

	"github.com/harper-go/harper/english"
	"github.com/harper-go/harper/markup"
	"github.com/harper-go/harper/span"
	"github.com/harper-go/harper/token"
)

// Translate walks root and returns the token stream it represents. Each
// Text/StrLit/Label leaf is tokenized by english.ParseStr, which leaves
// apostrophe runs split; this pass then runs
// english.ConsolidateApostrophes once over the assembled stream, merging a
// "group's" wholly inside one node as well as a possessive or contraction
// split across a node boundary by the markup grammar — a Text node ending
// in "group" followed by a smart apostrophe node and another Text node
// starting with "s".
func Translate(root *markup.Node, source []byte) []token.Token {
	ot := &offsetTranslator{source: source}
	tokens := translateNode(root, ot)
	return english.ConsolidateApostrophes(tokens, []rune(string(source)))
}

func shiftToken(t token.Token, offset int) token.Token {
	t.Span = span.New(t.Span.Start+offset, t.Span.End+offset)
	return t
}

// contentByteSpan returns the byte range of a node's lintable content,
// stripping the single-byte delimiters StrLit (`"..."`) and Label
// (`<...>`) carry around it. Every other kind's content span is its full
// span.
func contentByteSpan(n *markup.Node) (int, int) {
	switch n.Kind {
	case markup.KindStrLit, markup.KindLabel:
		if n.Span.End-n.Span.Start >= 2 {
			return n.Span.Start + 1, n.Span.End - 1
		}
		return n.Span.Start, n.Span.End
	default:
		return n.Span.Start, n.Span.End
	}
}

// translateText runs the English tokenizer over a node's literal text
// content and shifts the resulting spans into document-wide character
// coordinates.
func translateText(n *markup.Node, ot *offsetTranslator) []token.Token {
	contentStart, _ := contentByteSpan(n)
	startChar := ot.translate(contentStart)
	ot.translate(n.Span.End)
	toks := english.ParseStr(n.Text)
	out := make([]token.Token, len(toks))
	for i, t := range toks {
		out[i] = shiftToken(t, startChar)
	}
	return out
}

func leafSpan(n *markup.Node, ot *offsetTranslator) span.Span {
	start := ot.translate(n.Span.Start)
	end := ot.translate(n.Span.End)
	return span.Span{Start: start, End: end}
}

func translateComposite(n *markup.Node, ot *offsetTranslator) []token.Token {
	var out []token.Token
	for _, c := range n.Children {
		out = append(out, translateNode(c, ot)...)
	}
	ot.translate(n.Span.End)
	return out
}

// translateArray is translateComposite with one exception: a `..sink`
// Spread child is skipped outright rather than recursed into, per
// spec.md §4.4's Array row ("Recurse only into positional items (skip
// named/spread)"). Dict and Pattern nodes recurse into Spread normally
// (see translateNode's composite case), since their own table rows call
// for the sink expression to be emitted.
func translateArray(n *markup.Node, ot *offsetTranslator) []token.Token {
	var out []token.Token
	for _, c := range n.Children {
		if c.Kind == markup.KindSpread {
			continue
		}
		out = append(out, translateNode(c, ot)...)
	}
	ot.translate(n.Span.End)
	return out
}

// translateNode is the adapter's single dispatch point, reducing the
// original's near one-arm-per-AST-variant match into a handful of
// categories: composite (translate and concatenate children), opaque
// (single Unlintable token), leaf word/number/punctuation, and
// text-bearing (recurse into the English tokenizer). Harper never
// inspects the internals of script logic — a FuncCall, Closure, Unary, or
// Binary expression is always opaque regardless of what it contains, so
// collapsing them loses no lintable content.
func translateNode(n *markup.Node, ot *offsetTranslator) []token.Token {
	switch n.Kind {
	case markup.KindArray:
		return translateArray(n, ot)

	case markup.KindContent, markup.KindStrong, markup.KindEmph, markup.KindHeading,
		markup.KindListItem, markup.KindEnumItem, markup.KindTermItem,
		markup.KindParenthesized, markup.KindDict,
		markup.KindFieldAccess, markup.KindLet, markup.KindDestructAssign,
		markup.KindSet, markup.KindShow, markup.KindContextual,
		markup.KindConditional, markup.KindWhileLoop, markup.KindForLoop,
		markup.KindImport, markup.KindSpread:
		return translateComposite(n, ot)

	case markup.KindText, markup.KindStrLit, markup.KindLabel:
		return translateText(n, ot)

	case markup.KindSpace:
		return []token.Token{token.NewSpace(leafSpan(n, ot), 1)}

	case markup.KindLinebreak:
		return []token.Token{token.NewNewline(leafSpan(n, ot), 1)}

	case markup.KindParbreak:
		return []token.Token{token.NewParagraphBreak(leafSpan(n, ot))}

	case markup.KindSmartQuoteDouble:
		return []token.Token{token.NewQuote(leafSpan(n, ot), nil)}

	case markup.KindSmartQuoteSingle:
		return []token.Token{token.NewPunctuation(leafSpan(n, ot), token.Apostrophe)}

	case markup.KindLink:
		return []token.Token{token.NewURL(leafSpan(n, ot))}

	case markup.KindIdent, markup.KindNoneLit, markup.KindAutoLit, markup.KindBoolLit, markup.KindRef:
		return []token.Token{token.NewWord(leafSpan(n, ot), token.WordMetadata{})}

	case markup.KindIntLit, markup.KindFloatLit:
		value, _ := strconv.ParseFloat(n.Text, 64)
		return []token.Token{token.NewNumber(leafSpan(n, ot), value, nil)}

	default:
		// Escape, Shorthand, Raw, Equation, Numeric, FuncCall, Closure,
		// Unary, Binary, CodeBlock, Include, Break, Continue, Return,
		// Placeholder: all opaque regardless of internal structure — a
		// destructuring "_" slot (Placeholder) binds nothing lintable, per
		// spec.md §4.4's Pattern row ("Placeholder -> Unlintable").
		return []token.Token{token.NewUnlintable(leafSpan(n, ot))}
	}
}
