package markup

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Parse scans source and returns the root Content node of its AST. The
// grammar recognized is a reduced Typst: paragraphs of text interleaved
// with strong/emph spans, headings, list/enum/term items, smart quotes,
// raw spans, math equations, links, labels, and a `#`-introduced code
// sublanguage (let/set/show/if/while/for/import/include/break/continue/
// return and bare expressions). It never returns an error: any input the
// scanner doesn't recognize as a special construct falls back to plain
// text, mirroring how a real Typst parser treats unmatched syntax as
// literal content rather than failing the whole document.
func Parse(source []byte) *Node {
	p := &parser{src: source}
	children := p.parseMarkup(len(source))
	return &Node{Kind: KindContent, Span: ByteSpan{0, len(source)}, Children: children}
}

type parser struct {
	src []byte
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peekByte() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) hasPrefix(s string) bool {
	return strings.HasPrefix(string(p.src[p.pos:]), s)
}

// isSpecial reports whether b can begin a non-text markup construct.
func isSpecial(b byte) bool {
	switch b {
	case '#', '*', '_', '`', '\n', '"', '\'', '$', '@', '<', '=', '-', '+', '/', '\\':
		return true
	}
	return false
}

// parseMarkup consumes markup-level content up to (not including) limit
// and returns the resulting child nodes.
func (p *parser) parseMarkup(limit int) []*Node {
	var nodes []*Node
	atLineStart := true
	for p.pos < limit && !p.eof() {
		start := p.pos
		b := p.peekByte()

		switch {
		case b == '\n':
			nodes = append(nodes, p.parseNewline())
			atLineStart = true
			continue

		case atLineStart && b == '=' :
			nodes = append(nodes, p.parseHeading())
			atLineStart = false
			continue

		case atLineStart && (b == '-' || b == '+' || b == '/') && p.pos+1 < len(p.src) && p.src[p.pos+1] == ' ':
			nodes = append(nodes, p.parseItem(b))
			atLineStart = false
			continue

		case b == '*':
			nodes = append(nodes, p.parseDelimited('*', '*', KindStrong))
			atLineStart = false
			continue

		case b == '_':
			nodes = append(nodes, p.parseDelimited('_', '_', KindEmph))
			atLineStart = false
			continue

		case b == '`':
			nodes = append(nodes, p.parseRaw())
			atLineStart = false
			continue

		case b == '$':
			nodes = append(nodes, p.parseEquation())
			atLineStart = false
			continue

		case b == '"' || b == '\'' || isCurlyQuoteAt(p.src, p.pos):
			nodes = append(nodes, p.parseSmartQuote())
			atLineStart = false
			continue

		case b == '\\' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '\n':
			nodes = append(nodes, p.parseHardLinebreak())
			atLineStart = true
			continue

		case b == '\\':
			nodes = append(nodes, p.parseEscape())
			atLineStart = false
			continue

		case b == '@':
			nodes = append(nodes, p.parseRef())
			atLineStart = false
			continue

		case b == '<':
			nodes = append(nodes, p.parseLabel())
			atLineStart = false
			continue

		case b == '#':
			nodes = append(nodes, p.parseCodeStmt())
			atLineStart = false
			continue

		case p.hasPrefix("http://") || p.hasPrefix("https://") || p.hasPrefix("www."):
			nodes = append(nodes, p.parseLink())
			atLineStart = false
			continue
		}

		// Plain text run: accumulate until the next special character or
		// limit. This is the "single text blob" simplification: the
		// english package retokenizes the accumulated run from scratch,
		// so chopping it finely the way a real Typst scanner does buys
		// nothing.
		// The run also stops where a link begins, so the link case above
		// sees it on the next iteration.
		p.pos = start
		for p.pos < limit && !p.eof() && !isSpecial(p.peekByte()) && !isCurlyQuoteAt(p.src, p.pos) && !isLinkStart(p.src[p.pos:]) {
			p.pos++
		}
		if p.pos > start {
			nodes = append(nodes, &Node{Kind: KindText, Span: ByteSpan{start, p.pos}, Text: string(p.src[start:p.pos])})
			atLineStart = false
			continue
		}

		// Unrecognized special byte in a position where no construct
		// matched (e.g. a lone '-' mid-line): treat as one byte of text.
		p.pos++
		nodes = append(nodes, &Node{Kind: KindText, Span: ByteSpan{start, p.pos}, Text: string(p.src[start:p.pos])})
		atLineStart = false
	}
	return nodes
}

// parseNewline consumes one or more consecutive bare newlines. Two or more
// form a paragraph break; exactly one is ordinary markup whitespace (a
// Space node, not a Linebreak) — Typst only produces a hard Linebreak node
// for the explicit `\` + newline escape (see parseHardLinebreak); a lone
// "\n" inside a paragraph is just where one line of source wrapped to the
// next and renders as a single joining space.
func (p *parser) parseNewline() *Node {
	start := p.pos
	count := 0
	for !p.eof() && p.peekByte() == '\n' {
		p.pos++
		count++
	}
	if count >= 2 {
		return &Node{Kind: KindParbreak, Span: ByteSpan{start, p.pos}}
	}
	return &Node{Kind: KindSpace, Span: ByteSpan{start, p.pos}}
}

// parseHardLinebreak consumes a `\` immediately followed by a newline, the
// explicit hard line break Typst recognizes as distinct from ordinary
// paragraph-wrap whitespace.
func (p *parser) parseHardLinebreak() *Node {
	start := p.pos
	p.pos++ // backslash
	p.pos++ // newline
	return &Node{Kind: KindLinebreak, Span: ByteSpan{start, p.pos}}
}

func (p *parser) parseHeading() *Node {
	start := p.pos
	for !p.eof() && p.peekByte() == '=' {
		p.pos++
	}
	for !p.eof() && p.peekByte() == ' ' {
		p.pos++
	}
	lineEnd := p.lineEnd()
	children := p.parseMarkup(lineEnd)
	return &Node{Kind: KindHeading, Span: ByteSpan{start, p.pos}, Children: children}
}

func (p *parser) parseItem(marker byte) *Node {
	start := p.pos
	p.pos++ // marker
	for !p.eof() && p.peekByte() == ' ' {
		p.pos++
	}
	lineEnd := p.lineEnd()
	children := p.parseMarkup(lineEnd)
	kind := KindListItem
	if marker == '+' {
		kind = KindEnumItem
	} else if marker == '/' {
		kind = KindTermItem
	}
	return &Node{Kind: kind, Span: ByteSpan{start, p.pos}, Children: children}
}

func (p *parser) lineEnd() int {
	i := p.pos
	for i < len(p.src) && p.src[i] != '\n' {
		i++
	}
	return i
}

// parseDelimited scans a `open...close` span for strong/emph markup. If no
// closing delimiter is found before the next paragraph break, the opening
// rune is emitted as plain text instead (mirrors Typst treating unmatched
// `*`/`_` as literal).
func (p *parser) parseDelimited(open, close byte, kind NodeKind) *Node {
	start := p.pos
	p.pos++ // opening delimiter
	innerStart := p.pos
	for !p.eof() && p.peekByte() != close {
		if p.peekByte() == '\n' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '\n' {
			break
		}
		p.pos++
	}
	if p.eof() || p.peekByte() != close {
		p.pos = innerStart
		return &Node{Kind: KindText, Span: ByteSpan{start, innerStart}, Text: string(open)}
	}
	children := (&parser{src: p.src[:p.pos], pos: innerStart}).parseMarkup(p.pos)
	end := p.pos
	p.pos++ // closing delimiter
	return &Node{Kind: kind, Span: ByteSpan{start, p.pos}, Children: children, Text: string(p.src[innerStart:end])}
}

func (p *parser) parseRaw() *Node {
	start := p.pos
	p.pos++
	contentStart := p.pos
	for !p.eof() && p.peekByte() != '`' {
		p.pos++
	}
	contentEnd := p.pos
	if !p.eof() {
		p.pos++
	}
	return &Node{Kind: KindRaw, Span: ByteSpan{start, p.pos}, Text: string(p.src[contentStart:contentEnd])}
}

func (p *parser) parseEquation() *Node {
	start := p.pos
	p.pos++
	for !p.eof() && p.peekByte() != '$' {
		p.pos++
	}
	if !p.eof() {
		p.pos++
	}
	return &Node{Kind: KindEquation, Span: ByteSpan{start, p.pos}}
}

// parseSmartQuote consumes a single quote rune. Typst turns straight quotes
// into typographic smart quotes at render time; Harper only cares about the
// resulting Quote/Apostrophe token kind, not the glyph, so ASCII and
// Unicode curly quotes are treated identically here.
func (p *parser) parseSmartQuote() *Node {
	start := p.pos
	r, size := utf8.DecodeRune(p.src[p.pos:])
	p.pos += size
	switch r {
	case '"', '“', '”': // " “ ”
		return &Node{Kind: KindSmartQuoteDouble, Span: ByteSpan{start, p.pos}}
	default: // ' ‘ ’
		return &Node{Kind: KindSmartQuoteSingle, Span: ByteSpan{start, p.pos}}
	}
}

// isCurlyQuoteAt reports whether the rune starting at src[pos] is one of
// the Unicode typographic quote marks (‘ ’ “ ”). The scanner is otherwise
// byte-oriented; this is one of the few places (with parseSmartQuote and
// parseEscape) where it must look at a full, possibly multi-byte rune,
// since a bare smart apostrophe has to be split out of
// running text into its own node for the adapter's apostrophe
// consolidation pass to find.
func isCurlyQuoteAt(src []byte, pos int) bool {
	if pos >= len(src) {
		return false
	}
	r, _ := utf8.DecodeRune(src[pos:])
	switch r {
	case '‘', '’', '“', '”': // ‘ ’ “ ”
		return true
	}
	return false
}

func (p *parser) parseEscape() *Node {
	start := p.pos
	p.pos++ // backslash
	if p.eof() {
		return &Node{Kind: KindEscape, Span: ByteSpan{start, p.pos}}
	}
	_, size := utf8.DecodeRune(p.src[p.pos:])
	p.pos += size
	return &Node{Kind: KindEscape, Span: ByteSpan{start, p.pos}}
}

func (p *parser) parseRef() *Node {
	start := p.pos
	p.pos++ // '@'
	for !p.eof() && isIdentByte(p.peekByte()) {
		p.pos++
	}
	return &Node{Kind: KindRef, Span: ByteSpan{start, p.pos}}
}

func (p *parser) parseLabel() *Node {
	start := p.pos
	p.pos++ // '<'
	contentStart := p.pos
	for !p.eof() && p.peekByte() != '>' {
		p.pos++
	}
	contentEnd := p.pos
	if !p.eof() {
		p.pos++
	}
	return &Node{Kind: KindLabel, Span: ByteSpan{start, p.pos}, Text: string(p.src[contentStart:contentEnd])}
}

func (p *parser) parseLink() *Node {
	start := p.pos
	for !p.eof() && !isWhitespaceOrSentencePunct(p.peekByte()) {
		p.pos++
	}
	return &Node{Kind: KindLink, Span: ByteSpan{start, p.pos}}
}

// isLinkStart reports whether b begins with one of the URL prefixes
// parseMarkup hands to parseLink.
func isLinkStart(b []byte) bool {
	return bytes.HasPrefix(b, []byte("http://")) || bytes.HasPrefix(b, []byte("https://")) || bytes.HasPrefix(b, []byte("www."))
}

func isWhitespaceOrSentencePunct(b byte) bool {
	switch b {
	case ' ', '\n', '\t', ',', ')', ']', '}':
		return true
	}
	return false
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '-' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// --- code sublanguage -------------------------------------------------

// parseCodeStmt handles a `#`-introduced statement: a keyword form (let,
// set, show, if, while, for, import, include, break, continue, return) or
// a bare expression. let and bare expressions are parsed through parseAtom,
// so string literals and content blocks in them keep their lintable text.
// set, show, if, while, for and import consume the rest of their line into
// one node with no children: literals on that line are not parsed, and the
// adapter emits no tokens for them. include, break, continue and return
// become opaque leaves.
func (p *parser) parseCodeStmt() *Node {
	start := p.pos
	p.pos++ // '#'
	kw := p.peekIdent()
	switch kw {
	case "let":
		return p.parseLet(start)
	case "set":
		return p.parseKeywordWrapper(start, KindSet)
	case "show":
		return p.parseKeywordWrapper(start, KindShow)
	case "if":
		return p.parseKeywordWrapper(start, KindConditional)
	case "while":
		return p.parseKeywordWrapper(start, KindWhileLoop)
	case "for":
		return p.parseKeywordWrapper(start, KindForLoop)
	case "import":
		return p.parseImport(start)
	case "include":
		p.skipToLineEnd()
		return &Node{Kind: KindInclude, Span: ByteSpan{start, p.pos}}
	case "break":
		p.advanceIdent()
		return &Node{Kind: KindBreak, Span: ByteSpan{start, p.pos}}
	case "continue":
		p.advanceIdent()
		return &Node{Kind: KindContinue, Span: ByteSpan{start, p.pos}}
	case "return":
		p.advanceIdent()
		p.skipSpaces()
		if !p.eof() && p.peekByte() != '\n' {
			p.parseAtom()
		}
		return &Node{Kind: KindReturn, Span: ByteSpan{start, p.pos}}
	}
	expr := p.parseAtom()
	return &Node{Kind: expr.Kind, Span: ByteSpan{start, p.pos}, Text: expr.Text, Children: expr.Children}
}

func (p *parser) peekIdent() string {
	i := p.pos
	for i < len(p.src) && isIdentByte(p.src[i]) {
		i++
	}
	return string(p.src[p.pos:i])
}

func (p *parser) advanceIdent() {
	for !p.eof() && isIdentByte(p.peekByte()) {
		p.pos++
	}
}

func (p *parser) skipSpaces() {
	for !p.eof() && (p.peekByte() == ' ' || p.peekByte() == '\t') {
		p.pos++
	}
}

func (p *parser) skipToLineEnd() {
	p.pos = p.lineEnd()
}

// parseLet handles `let ident = expr` and `let (a, b) = expr` (destructuring).
func (p *parser) parseLet(start int) *Node {
	p.advanceIdent() // "let"
	p.skipSpaces()
	var children []*Node
	if p.peekByte() == '(' {
		children = append(children, p.parseAtom()) // destructuring target, opaque-ish
		kindIsDestruct := true
		p.skipSpaces()
		if !p.eof() && p.peekByte() == '=' {
			p.pos++
			p.skipSpaces()
			children = append(children, p.parseAtom())
		}
		_ = kindIsDestruct
		return &Node{Kind: KindDestructAssign, Span: ByteSpan{start, p.pos}, Children: children}
	}
	nameStart := p.pos
	p.advanceIdent()
	children = append(children, &Node{Kind: KindIdent, Span: ByteSpan{nameStart, p.pos}, Text: string(p.src[nameStart:p.pos])})
	p.skipSpaces()
	if !p.eof() && p.peekByte() == '=' {
		p.pos++
		p.skipSpaces()
		children = append(children, p.parseAtom())
	}
	return &Node{Kind: KindLet, Span: ByteSpan{start, p.pos}, Children: children}
}

func (p *parser) parseKeywordWrapper(start int, kind NodeKind) *Node {
	p.advanceIdent()
	p.skipToLineEnd()
	return &Node{Kind: kind, Span: ByteSpan{start, p.pos}}
}

func (p *parser) parseImport(start int) *Node {
	p.advanceIdent() // "import"
	var children []*Node
	p.skipToLineEnd()
	return &Node{Kind: KindImport, Span: ByteSpan{start, p.pos}, Children: children}
}

// parseAtom parses a single code-level expression atom: a string literal,
// a number (optionally followed by a unit, producing Numeric), an
// identifier (optionally extended into a FuncCall or FieldAccess chain),
// a parenthesized expression/array/dict, or a content block `{...}`.
// A leading '-', '+' or '!' yields a Unary node spanning the operator and
// the atom after it. Binary operators are not parsed: parsing stops after
// the first atom, and whatever follows it is left to the caller.
func (p *parser) parseAtom() *Node {
	start := p.pos
	if p.eof() {
		return &Node{Kind: KindCodeBlock, Span: ByteSpan{start, p.pos}}
	}
	switch {
	case p.peekByte() == '"':
		return p.parseStrLit()
	case p.peekByte() == '{':
		return p.parseContentBlock()
	case p.peekByte() == '(':
		return p.parseParenGroup()
	case p.hasPrefix(".."):
		return p.parseSpread(start)
	case p.peekByte() >= '0' && p.peekByte() <= '9':
		return p.parseNumber()
	case isIdentStart(p.peekByte()):
		return p.parseIdentOrCall()
	case p.peekByte() == '-' || p.peekByte() == '+' || p.peekByte() == '!':
		p.pos++
		inner := p.parseAtom()
		return &Node{Kind: KindUnary, Span: ByteSpan{start, inner.Span.End}}
	}
	p.pos++
	return &Node{Kind: KindCodeBlock, Span: ByteSpan{start, p.pos}}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// parseSpread handles a `..sink` expression inside a dict/array literal or
// a destructuring pattern: two dots followed by the identifier (or other
// atom) being spread.
func (p *parser) parseSpread(start int) *Node {
	p.pos += 2 // ".."
	inner := p.parseAtom()
	return &Node{Kind: KindSpread, Span: ByteSpan{start, inner.Span.End}, Children: []*Node{inner}}
}

func (p *parser) parseStrLit() *Node {
	start := p.pos
	p.pos++ // opening quote
	contentStart := p.pos
	for !p.eof() && p.peekByte() != '"' {
		if p.peekByte() == '\\' {
			p.pos++
		}
		p.pos++
	}
	contentEnd := p.pos
	if !p.eof() {
		p.pos++
	}
	return &Node{Kind: KindStrLit, Span: ByteSpan{start, p.pos}, Text: string(p.src[contentStart:contentEnd])}
}

func (p *parser) parseNumber() *Node {
	start := p.pos
	for !p.eof() && (isDigit(p.peekByte()) || p.peekByte() == '.') {
		p.pos++
	}
	isFloat := strings.Contains(string(p.src[start:p.pos]), ".")
	numEnd := p.pos
	// optional trailing unit (e.g. "12pt", "3em") folds the literal into
	// an opaque Numeric node, matching the original's Expr::Numeric.
	unitStart := p.pos
	for !p.eof() && ((p.peekByte() >= 'a' && p.peekByte() <= 'z') || (p.peekByte() >= 'A' && p.peekByte() <= 'Z') || p.peekByte() == '%') {
		p.pos++
	}
	if p.pos > unitStart {
		return &Node{Kind: KindNumeric, Span: ByteSpan{start, p.pos}}
	}
	if isFloat {
		return &Node{Kind: KindFloatLit, Span: ByteSpan{start, numEnd}, Text: string(p.src[start:numEnd])}
	}
	return &Node{Kind: KindIntLit, Span: ByteSpan{start, numEnd}, Text: string(p.src[start:numEnd])}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseIdentOrCall parses a bare identifier and extends it into a
// FuncCall, FieldAccess chain, or one of the none/auto/true/false literals
// as appropriate.
func (p *parser) parseIdentOrCall() *Node {
	start := p.pos
	p.advanceIdent()
	name := string(p.src[start:p.pos])
	var node *Node
	switch name {
	case "_":
		node = &Node{Kind: KindPlaceholder, Span: ByteSpan{start, p.pos}}
	case "none":
		node = &Node{Kind: KindNoneLit, Span: ByteSpan{start, p.pos}}
	case "auto":
		node = &Node{Kind: KindAutoLit, Span: ByteSpan{start, p.pos}}
	case "true", "false":
		node = &Node{Kind: KindBoolLit, Span: ByteSpan{start, p.pos}, Text: name}
	default:
		node = &Node{Kind: KindIdent, Span: ByteSpan{start, p.pos}, Text: name}
	}
	for !p.eof() {
		switch p.peekByte() {
		case '(':
			p.parseParenGroup()
			node = &Node{Kind: KindFuncCall, Span: ByteSpan{start, p.pos}, Children: []*Node{node}}
			continue
		case '.':
			p.pos++
			fieldStart := p.pos
			p.advanceIdent()
			field := &Node{Kind: KindIdent, Span: ByteSpan{fieldStart, p.pos}, Text: string(p.src[fieldStart:p.pos])}
			node = &Node{Kind: KindFieldAccess, Span: ByteSpan{start, p.pos}, Children: []*Node{node, field}}
			continue
		}
		break
	}
	return node
}

// parseParenGroup parses a parenthesized expression, array, or dict,
// splitting only on top-level commas and colons (no nested-paren
// awareness needed beyond balancing the outer pair). A colon inside any
// element marks the whole group as a Dict; otherwise it's an Array, or a
// bare Parenthesized expression when it holds exactly one element and no
// comma (a trailing comma, as in "(a,)", makes it an Array).
func (p *parser) parseParenGroup() *Node {
	start := p.pos
	p.pos++ // '('
	var elems [][]*Node
	var cur []*Node
	isDict := false
	depth := 1
	for !p.eof() && depth > 0 {
		p.skipSpaces()
		if p.eof() {
			break
		}
		switch p.peekByte() {
		case ')':
			depth--
			p.pos++
			if len(cur) > 0 {
				elems = append(elems, cur)
			}
			continue
		case ',':
			p.pos++
			elems = append(elems, cur)
			cur = nil
			continue
		case ':':
			isDict = true
			p.pos++
			continue
		}
		cur = append(cur, p.parseAtom())
	}
	var children []*Node
	for _, e := range elems {
		children = append(children, e...)
	}
	kind := KindParenthesized
	switch {
	case isDict:
		kind = KindDict
	case len(elems) > 1 || (len(elems) == 1 && strings.Contains(string(p.src[start:p.pos]), ",")):
		kind = KindArray
	}
	return &Node{Kind: kind, Span: ByteSpan{start, p.pos}, Children: children}
}

func (p *parser) parseContentBlock() *Node {
	start := p.pos
	p.pos++ // '{'
	depth := 1
	bodyStart := p.pos
	for !p.eof() && depth > 0 {
		switch p.peekByte() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				bodyEnd := p.pos
				p.pos++
				children := (&parser{src: p.src[:bodyEnd]}).parseMarkupFrom(bodyStart, bodyEnd)
				return &Node{Kind: KindContent, Span: ByteSpan{start, p.pos}, Children: children}
			}
		}
		p.pos++
	}
	return &Node{Kind: KindContent, Span: ByteSpan{start, p.pos}}
}

func (p *parser) parseMarkupFrom(from, to int) []*Node {
	p.pos = from
	return p.parseMarkup(to)
}
