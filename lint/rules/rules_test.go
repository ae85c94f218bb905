package rules

import "testing"

func TestAllReturnsEveryRule(t *testing.T) {
	all := All()
	if len(all) != 4 {
		t.Fatalf("got %d rules, want 4", len(all))
	}
	for _, r := range all {
		if r.Description() == "" {
			t.Errorf("rule %T has empty description", r)
		}
	}
}
