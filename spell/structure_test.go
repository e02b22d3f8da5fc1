package spell

import "testing"

func TestMatchStructureOk(t *testing.T) {
	if got := matchStructure([]rune("koira"), "ppppp"); got != Ok {
		t.Errorf("got %v, want Ok", got)
	}
}

func TestMatchStructureCapitalizeFirstForProperNoun(t *testing.T) {
	// STRUCTURE "ipppp" expects an uppercase first letter (a proper noun);
	// a lowercase surface at position 0 yields CapitalizeFirst.
	got := matchStructure([]rune("kissa"), "ipppp")
	if got != CapitalizeFirst {
		t.Errorf("got %v, want CapitalizeFirst", got)
	}
}

func TestMatchStructureCapitalizationErrorInterior(t *testing.T) {
	got := matchStructure([]rune("kAissa"), "pppppp")
	if got != CapitalizationError {
		t.Errorf("got %v, want CapitalizationError", got)
	}
}

func TestMatchStructureCompoundBoundarySkipped(t *testing.T) {
	got := matchStructure([]rune("kalakoira"), "pppp=ppppp")
	if got != Ok {
		t.Errorf("got %v, want Ok", got)
	}
}

func TestMatchStructureHyphenConsumesSurfaceChar(t *testing.T) {
	got := matchStructure([]rune("kala-koira"), "pppp-ppppp")
	if got != Ok {
		t.Errorf("got %v, want Ok", got)
	}
}

func TestMatchStructureLengthMismatchFails(t *testing.T) {
	got := matchStructure([]rune("koi"), "ppppp")
	if got != Failed {
		t.Errorf("got %v, want Failed", got)
	}
}
