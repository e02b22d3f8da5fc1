package casing

import "testing"

func TestNormalizeIdempotent(t *testing.T) {
	cases := []string{"koira", "Helsinki", "ä́ijä", "", "kissa-koira"}
	for _, c := range cases {
		once := Normalize(c)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q vs %q", c, once, twice)
		}
	}
}

func TestNormalizeASCIIFastPath(t *testing.T) {
	if got := Normalize("koira"); got != "koira" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeCombiningMarks(t *testing.T) {
	decomposed := "ä" // a + combining diaeresis == ä
	got := Normalize(decomposed)
	want := Normalize("ä")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestClassifyCaseEmptyIsNoLetters(t *testing.T) {
	if got := ClassifyCase([]rune("")); got != NoLetters {
		t.Fatalf("got %v", got)
	}
	if got := ClassifyCase([]rune("123-45")); got != NoLetters {
		t.Fatalf("got %v", got)
	}
}

func TestClassifyCaseAllLower(t *testing.T) {
	if got := ClassifyCase([]rune("koira")); got != AllLower {
		t.Fatalf("got %v", got)
	}
}

func TestClassifyCaseFirstUpper(t *testing.T) {
	if got := ClassifyCase([]rune("Helsinki")); got != FirstUpper {
		t.Fatalf("got %v", got)
	}
}

func TestClassifyCaseAllUpper(t *testing.T) {
	if got := ClassifyCase([]rune("KOIRA")); got != AllUpper {
		t.Fatalf("got %v", got)
	}
}

func TestClassifyCaseComplex(t *testing.T) {
	if got := ClassifyCase([]rune("mCLaren")); got != Complex {
		t.Fatalf("got %v", got)
	}
}

func TestClassifyCaseSingleLetter(t *testing.T) {
	if got := ClassifyCase([]rune("A")); got != FirstUpper {
		t.Fatalf("got %v", got)
	}
	if got := ClassifyCase([]rune("a")); got != AllLower {
		t.Fatalf("got %v", got)
	}
}

func TestApplyStructureCase(t *testing.T) {
	got := ApplyStructureCase([]rune("helsinki"), "=ippppppp")
	if string(got) != "Helsinki" {
		t.Fatalf("got %q", string(got))
	}
}

func TestApplyStructureCaseSkipsBoundaries(t *testing.T) {
	got := ApplyStructureCase([]rune("kuorma-auto"), "pppppp-pppp")
	if string(got) != "kuorma-auto" {
		t.Fatalf("got %q", string(got))
	}
}

func TestApplyStructureCaseNonLetterPositionsUntouched(t *testing.T) {
	got := ApplyStructureCase([]rune("a1b"), "pp")
	if string(got) != "a1b" {
		t.Fatalf("got %q", string(got))
	}
}
