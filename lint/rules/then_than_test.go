package rules

import (
	"testing"

	"github.com/harper-go/harper/english"
	"github.com/harper-go/harper/lint"
)

// lintCount tokenizes text and runs rule over it, returning the resulting
// lint count, mirroring the original corpus's assert_lint_count helper.
func lintCount(t *testing.T, text string, rule lint.PatternLinter) int {
	t.Helper()
	source := []rune(text)
	toks := english.ParseStr(text)
	return len(lint.RunPatternLinter(rule, toks, source))
}

// suggestionResult applies the first suggestion of the first lint produced
// for text and returns the corrected string, mirroring the original
// corpus's assert_suggestion_result helper.
func suggestionResult(t *testing.T, text string, rule lint.PatternLinter) string {
	t.Helper()
	source := []rune(text)
	toks := english.ParseStr(text)
	lints := lint.RunPatternLinter(rule, toks, source)
	if len(lints) == 0 {
		t.Fatalf("expected at least one lint for %q", text)
	}
	l := lints[0]
	if len(l.Suggestions) == 0 {
		t.Fatalf("expected at least one suggestion for %q", text)
	}
	suggestion := l.Suggestions[0]

	out := append([]rune(nil), source[:l.Span.Start]...)
	out = append(out, suggestion.Replacement...)
	out = append(out, source[l.Span.End:]...)
	return string(out)
}

func TestThenThanAllowsBackThen(t *testing.T) {
	if n := lintCount(t, "I was a gross kid back then.", NewThenThan()); n != 0 {
		t.Errorf("got %d lints, want 0", n)
	}
}

func TestThenThanCatchesShorterThen(t *testing.T) {
	got := suggestionResult(t, "One was shorter then the other.", NewThenThan())
	want := "One was shorter than the other."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThenThanCatchesBetterThen(t *testing.T) {
	got := suggestionResult(t, "One was better then the other.", NewThenThan())
	want := "One was better than the other."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThenThanCatchesLongerThen(t *testing.T) {
	got := suggestionResult(t, "One was longer then the other.", NewThenThan())
	want := "One was longer than the other."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThenThanCatchesLessThen(t *testing.T) {
	got := suggestionResult(t, "I eat less then you.", NewThenThan())
	want := "I eat less than you."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThenThanCatchesMoreThen(t *testing.T) {
	got := suggestionResult(t, "I eat more then you.", NewThenThan())
	want := "I eat more than you."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThenThanStrongerShouldChange(t *testing.T) {
	got := suggestionResult(t, "a chain is no stronger then its weakest link", NewThenThan())
	want := "a chain is no stronger than its weakest link"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThenThanHalfALoafShouldChange(t *testing.T) {
	got := suggestionResult(t, "half a loaf is better then no bread", NewThenThan())
	want := "half a loaf is better than no bread"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThenThanThenEveryoneClappedShouldBeAllowed(t *testing.T) {
	if n := lintCount(t, "and then everyone clapped", NewThenThan()); n != 0 {
		t.Errorf("got %d lints, want 0", n)
	}
}

func TestThenThanCrazierThanRatShouldChange(t *testing.T) {
	got := suggestionResult(t, "crazier then a shithouse rat", NewThenThan())
	want := "crazier than a shithouse rat"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThenThanPokeInEyeShouldChange(t *testing.T) {
	got := suggestionResult(t, "better then a poke in the eye with a sharp stick", NewThenThan())
	want := "better than a poke in the eye with a sharp stick"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThenThanOtherThenShouldChange(t *testing.T) {
	got := suggestionResult(t, "There was no one other then us at the campsite.", NewThenThan())
	want := "There was no one other than us at the campsite."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThenThanAllowsAndThen(t *testing.T) {
	if n := lintCount(t, "And then we left.", NewThenThan()); n != 0 {
		t.Errorf("got %d lints, want 0", n)
	}
}

func TestThenThanAllowsThisThen(t *testing.T) {
	if n := lintCount(t, "Do this then that.", NewThenThan()); n != 0 {
		t.Errorf("got %d lints, want 0", n)
	}
}

func TestThenThanAllowsIssue720(t *testing.T) {
	cases := []string{
		"And if just one of those is set incorrectly or it has the tiniest bit of dirt inside then that will wreak havoc with the engine's running ability.",
		"So let's check it out then.",
		"And if just the tiniest bit of dirt gets inside then that will wreak havoc.",
		"He was always a top student in school but then his argument is that grades don't define intelligence.",
	}
	for _, c := range cases {
		if n := lintCount(t, c, NewThenThan()); n != 0 {
			t.Errorf("%q: got %d lints, want 0", c, n)
		}
	}
}

func TestThenThanAllowsIssue744(t *testing.T) {
	if n := lintCount(t, "So then after talking about how he would, he didn't.", NewThenThan()); n != 0 {
		t.Errorf("got %d lints, want 0", n)
	}
}

func TestThenThanIssue720SchoolButThenHis(t *testing.T) {
	cases := []string{
		"She loved the atmosphere of the school but then his argument is that it lacks proper resources for students.",
		"The teacher praised the efforts of the school but then his argument is that the curriculum needs to be updated.",
		"They were excited about the new program at school but then his argument is that it won't be effective without proper training.",
		"The community supported the school but then his argument is that funding is still a major issue.",
	}
	for _, c := range cases {
		if n := lintCount(t, c, NewThenThan()); n != 0 {
			t.Errorf("%q: got %d lints, want 0", c, n)
		}
	}
}

func TestThenThanIssue720SoThenTheseResistors(t *testing.T) {
	cases := []string{
		"So then these resistors are connected up in parallel to reduce the overall resistance.",
		"So then these resistors are connected up to ensure the current flows properly.",
		"So then these resistors are connected up to achieve the desired voltage drop.",
		"So then these resistors are connected up to demonstrate the principles of series and parallel circuits.",
		"So then these resistors are connected up to optimize the circuit's performance.",
	}
	for _, c := range cases {
		if n := lintCount(t, c, NewThenThan()); n != 0 {
			t.Errorf("%q: got %d lints, want 0", c, n)
		}
	}
}

func TestThenThanIssue720YesSoThenSorry(t *testing.T) {
	cases := []string{
		"Yes so then sorry you didn't receive the memo about the meeting changes.",
		"Yes so then sorry you had to wait so long for a response from our team.",
		"Yes so then sorry you felt left out during the discussion; we value your input.",
		"Yes so then sorry you missed the deadline; we can discuss an extension.",
		"Yes so then sorry you encountered issues with the software; let me help you troubleshoot.",
	}
	for _, c := range cases {
		if n := lintCount(t, c, NewThenThan()); n != 0 {
			t.Errorf("%q: got %d lints, want 0", c, n)
		}
	}
}
