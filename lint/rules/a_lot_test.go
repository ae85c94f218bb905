package rules

import "testing"

func TestALotAlotCatchesMisspelling(t *testing.T) {
	got := suggestionResult(t, "I like this alot.", NewALotAlot())
	want := "I like this a lot."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestALotAlotAllowsCorrectSpelling(t *testing.T) {
	if n := lintCount(t, "I like this a lot.", NewALotAlot()); n != 0 {
		t.Errorf("got %d lints, want 0", n)
	}
}

func TestALotAlotPreservesCapitalization(t *testing.T) {
	got := suggestionResult(t, "Alot of people came.", NewALotAlot())
	want := "A lot of people came."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
