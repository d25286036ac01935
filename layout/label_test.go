package layout

import "testing"

func TestLabelText(t *testing.T) {
	cases := []struct {
		format string
		label  string
		index  int
		want   string
	}{
		{"%s.", "", 0, "1."},
		{"%s.", "", 9, "0."},
		{"%s.", "x", 3, "x."},
		{"%n", "", 9, "10"},
		{"%z", "", 9, "9"},
		{"%a)", "", 2, "c)"},
		{"%A", "", 27, "B"},
		{"%[①②③]", "", 4, "②"},
		{"%%%n", "", 0, "%1"},
		{"[%n] ", "", 1, "[2] "},
		{"100%", "", 0, "100%"},
		{"", "", 0, ""},
	}
	for _, tc := range cases {
		if got := LabelText(tc.format, tc.label, tc.index); got != tc.want {
			t.Errorf("LabelText(%q, %q, %d) = %q, want %q", tc.format, tc.label, tc.index, got, tc.want)
		}
	}
}

func TestLabelTextAllIndexes(t *testing.T) {
	want := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}
	for i := 0; i < MaxCandidates; i++ {
		if got := LabelText("%s", "", i); got != want[i] {
			t.Fatalf("index %d: got %q, want %q", i, got, want[i])
		}
	}
}
