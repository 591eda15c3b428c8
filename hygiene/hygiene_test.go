package hygiene

import "testing"

func TestIsPerson(t *testing.T) {
	c := New(Options{})
	cases := []struct {
		name string
		want bool
	}{
		{"Jane Doe", true},
		{"José García-Márquez", true},
		{"Priya Natarajan", true},
		{"Cher", true},
		{"Lee", false}, // too few letters to call confidently
		{"GlobeNewswire", false},
		{"Reuters", false},
		{"Chicago Tribune Staff", false},
		{"The Energy Desk", false},
		{"ACME CAPITAL PARTNERS LLC", false},
		{"Acme Solutions Inc.", false},
		{"tips@example.com", false},
		{"https://example.com/about", false},
		{"X", false},
		{"A. B.", false},
		{"One Two Three Four Five Six", false},
		{"BREAKING NEWS", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range cases {
		if got := c.IsPerson(tc.name); got != tc.want {
			t.Errorf("IsPerson(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsBlocked(t *testing.T) {
	c := New(Options{})
	if !c.IsBlocked("Reporting by Reuters") {
		t.Error("substring match should block")
	}
	if !c.IsBlocked("PR Newswire") {
		t.Error("case-insensitive match should block")
	}
	if c.IsBlocked("Jane Doe") {
		t.Error("Jane Doe should not be blocked")
	}
	if c.IsBlocked("") {
		t.Error("empty byline is not blocked, just not a person")
	}
}

func TestIsWireOrPR(t *testing.T) {
	c := New(Options{})
	cases := []struct {
		source, author, title string
		want                  bool
	}{
		{"GlobeNewswire", "", "Acme announces results", true},
		{"Example Times", "Jane Doe", "Press Release: new product", true},
		{"Example Times", "Acme Holdings LLC", "Quarterly numbers", true},
		{"Example Times", "Jane Doe", "Quarterly numbers", false},
	}
	for _, tc := range cases {
		if got := c.IsWireOrPR(tc.source, tc.author, tc.title); got != tc.want {
			t.Errorf("IsWireOrPR(%q, %q, %q) = %v, want %v", tc.source, tc.author, tc.title, got, tc.want)
		}
	}
}

func TestCustomLists(t *testing.T) {
	c := New(Options{Blocked: []string{"our robot"}})
	if c.IsPerson("Our Robot") {
		t.Error("custom denylist should apply")
	}
	// Unset lists fall back to defaults.
	if c.IsPerson("Newsroom Staff") {
		t.Error("default org keywords should still apply")
	}
}
