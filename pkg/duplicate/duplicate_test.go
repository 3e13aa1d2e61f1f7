package duplicate

import "testing"

func TestStripBoilerplate_RemovesConfiguredPrefix(t *testing.T) {
	got := StripBoilerplate("BREAKING: Pflegereform beschlossen", DefaultBoilerplatePrefixes)
	want := "Pflegereform beschlossen"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStripBoilerplate_NoMatchLeavesTextUnchanged(t *testing.T) {
	got := StripBoilerplate("Pflegereform beschlossen", DefaultBoilerplatePrefixes)
	want := "Pflegereform beschlossen"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSelectPrimary_PicksSmallestEligibleID(t *testing.T) {
	// Candidates returned out of id order: the oldest (smallest id) below
	// self must win regardless of score rank.
	candidates := []Candidate{
		{ID: 105, Score: 0.91},
		{ID: 100, Score: 0.80},
		{ID: 103, Score: 0.85},
	}
	got, ok := SelectPrimary(candidates, 200)
	if !ok {
		t.Fatal("expected an eligible candidate")
	}
	if got.ID != 100 {
		t.Fatalf("got id %d, want 100", got.ID)
	}
}

func TestSelectPrimary_DiscardsCandidatesAtOrAboveSelf(t *testing.T) {
	candidates := []Candidate{{ID: 200}, {ID: 250}}
	_, ok := SelectPrimary(candidates, 200)
	if ok {
		t.Fatal("expected no eligible candidate when all ids are >= self")
	}
}

func TestURLMatch_PicksOldestAcrossChannels(t *testing.T) {
	got, ok := URLMatch([]int{50, 10, 30}, 100)
	if !ok || got != 10 {
		t.Fatalf("got (%d, %v), want (10, true)", got, ok)
	}
}

func TestURLMatch_NoneBelowSelf(t *testing.T) {
	_, ok := URLMatch([]int{150, 200}, 100)
	if ok {
		t.Fatal("expected no match")
	}
}
