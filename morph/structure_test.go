package morph

import "testing"

func TestStructureLetterCode(t *testing.T) {
	cases := []struct {
		name                   string
		properNoun, abbreviation bool
		want                   byte
	}{
		{"default lowercase", false, false, 'p'},
		{"proper noun", true, false, 'i'},
		{"lowercase abbreviation", false, true, 'q'},
		{"proper-noun abbreviation", true, true, 'j'},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := structureLetterCode(c.properNoun, c.abbreviation); got != c.want {
				t.Fatalf("structureLetterCode(%v, %v) = %q, want %q", c.properNoun, c.abbreviation, got, c.want)
			}
		})
	}
}
