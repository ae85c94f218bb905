// Package markup implements the AST for the structured-document format the
// adapter package translates into Harper tokens. It plays the role
// typst-syntax plays in a real Typst toolchain: a small, Typst-flavored
// markup-and-scripting grammar (headings, lists, strong/emphasis, smart
// quotes, and a `#`-prefixed code sublanguage) good enough to exercise
// every branch of the format adapter's dispatch table.
package markup

import "fmt"

// ByteSpan is a half-open [Start, End) window of byte offsets into the
// source []byte buffer a Node tree was parsed from. Markup spans are byte
// offsets, not character offsets, because the scanner walks UTF-8 bytes
// directly; the adapter package is responsible for translating these into
// the character offsets span.Span uses.
type ByteSpan struct {
	Start int
	End   int
}

// NodeKind tags the syntactic category a Node belongs to. Composite kinds
// carry no special adapter behavior beyond "translate every child, in
// order, and concatenate the results" (see adapter.translateNode's
// composite case). Harper never needs to look inside a FuncCall, a Binary
// expression, or a Closure: the adapter turns each into one Unlintable
// token covering its span, whatever children it has.
type NodeKind int

const (
	// Leaf kinds translated directly to a single Token.
	KindText NodeKind = iota
	KindSpace
	KindLinebreak
	KindParbreak
	KindEscape
	KindShorthand
	KindSmartQuoteDouble
	KindSmartQuoteSingle
	KindRaw
	KindLink
	KindLabel
	KindEquation
	KindIdent
	KindNoneLit
	KindAutoLit
	KindBoolLit
	KindIntLit
	KindFloatLit
	KindNumeric
	KindStrLit
	KindRef
	KindFuncCall
	KindClosure
	KindUnary
	KindBinary
	KindCodeBlock
	KindInclude
	KindBreak
	KindContinue
	KindReturn

	// Placeholder is a destructuring-pattern "_" slot: syntactically a leaf,
	// but always opaque regardless of where it appears (spec.md §4.4's
	// Pattern row: "Placeholder -> Unlintable").
	KindPlaceholder

	// Composite kinds: translated by concatenating translated Children.
	KindStrong
	KindEmph
	KindHeading
	KindListItem
	KindEnumItem
	KindTermItem
	KindContent
	KindParenthesized
	KindArray
	KindDict
	KindFieldAccess
	KindLet
	KindDestructAssign
	KindSet
	KindShow
	KindContextual
	KindConditional
	KindWhileLoop
	KindForLoop
	KindImport

	// Spread wraps a single child: the `..sink` expression in a dict/array
	// literal or a destructuring pattern. It is always composite (its one
	// child is recursed into), but Array translation skips Spread children
	// outright per spec.md §4.4's Array row ("skip named/spread") while
	// Dict and Pattern translation recurse into it per their own rows.
	KindSpread
)

var nodeKindNames = [...]string{
	"Text", "Space", "Linebreak", "Parbreak", "Escape", "Shorthand",
	"SmartQuoteDouble", "SmartQuoteSingle", "Raw", "Link", "Label",
	"Equation", "Ident", "NoneLit", "AutoLit", "BoolLit", "IntLit",
	"FloatLit", "Numeric", "StrLit", "Ref", "FuncCall", "Closure",
	"Unary", "Binary", "CodeBlock", "Include", "Break", "Continue",
	"Return", "Placeholder", "Strong", "Emph", "Heading", "ListItem",
	"EnumItem", "TermItem", "Content", "Parenthesized", "Array", "Dict",
	"FieldAccess", "Let", "DestructAssign", "Set", "Show", "Contextual",
	"Conditional", "WhileLoop", "ForLoop", "Import", "Spread",
}

func (k NodeKind) String() string {
	if int(k) < 0 || int(k) >= len(nodeKindNames) {
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
	return nodeKindNames[k]
}

// Node is a single AST node. Only the fields relevant to Kind are
// meaningful: Text carries literal content for text-bearing leaves
// (KindText, KindStrLit, KindLabel, KindIdent, KindIntLit, KindFloatLit);
// Children carries sub-nodes for composite kinds.
type Node struct {
	Kind     NodeKind
	Span     ByteSpan
	Text     string
	Children []*Node
}
