// Package span implements the half-open character-index window that every
// token and lint in Harper anchors to. Unlike a compiler lexer.Span (a pair
// of line/column Positions meant for diagnostics), this Span indexes
// directly into a []rune source buffer so that overlap tests, content
// extraction, and resizing are O(1) arithmetic rather than line-table
// lookups.
package span

import "fmt"

// Span is a half-open window [Start, End) into a []rune source. Both
// endpoints are character indices, never byte indices.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// New constructs a Span, panicking if the window is inverted. An inverted
// span can only arise from a bug in a parser or adapter, so it is treated as
// a programmer error rather than a recoverable condition.
func New(start, end int) Span {
	if start > end {
		panic(fmt.Sprintf("span: inverted window [%d, %d)", start, end))
	}
	return Span{Start: start, End: end}
}

// Len reports the number of characters the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers zero characters.
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// OverlapsWith reports whether s and other overlap or touch.
// Touching-but-not-overlapping spans, e.g. [0,5) and [5,8), share no
// character index but are considered overlapping by design: the test is
// max(start) <= min(end), not strictly less-than.
func (s Span) OverlapsWith(other Span) bool {
	lo := s.Start
	if other.Start > lo {
		lo = other.Start
	}
	hi := s.End
	if other.End < hi {
		hi = other.End
	}
	return lo <= hi
}

// GetContent returns the borrowed slice of source the span covers. It
// panics if the span does not fit inside source — a programmer error, same
// as the original's debug_assertions guard.
func (s Span) GetContent(source []rune) []rune {
	if s.Start > s.End || s.End > len(source) {
		panic(fmt.Sprintf("span: [%d, %d) out of bounds for source of length %d", s.Start, s.End, len(source)))
	}
	return source[s.Start:s.End]
}

// GetContentString is GetContent, copied into a string.
func (s Span) GetContentString(source []rune) string {
	return string(s.GetContent(source))
}

// SetLen resizes the span in place, keeping Start fixed.
func (s *Span) SetLen(length int) {
	s.End = s.Start + length
}

// WithLen returns a copy of s resized to length, keeping Start fixed.
func (s Span) WithLen(length int) Span {
	s.SetLen(length)
	return s
}

// Cover returns the smallest span that contains both a and b.
func Cover(a, b Span) Span {
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return Span{Start: start, End: end}
}

// String renders the span as "[start,end)", useful for debug printing in
// the same spirit as a lexer's Span.String().
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
