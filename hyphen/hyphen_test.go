package hyphen

import (
	"testing"

	"github.com/voikkofi/vfst"
	"github.com/voikkofi/vfst/morph"
)

func TestSyllableBreaksSingleConsonant(t *testing.T) {
	got := syllableBreaks([]rune("kissa"))
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("kissa: expected [3], got %v", got)
	}
}

func TestSyllableBreaksDiphthongNotSplit(t *testing.T) {
	got := syllableBreaks([]rune("auto"))
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("auto: expected [2] (au not split), got %v", got)
	}
}

func TestSyllableBreaksHiatusSplit(t *testing.T) {
	// "ea" is in vowelSplitPairs: a genuine hiatus, splittable.
	got := syllableBreaks([]rune("ea"))
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("ea: expected [1], got %v", got)
	}
}

func TestBreaksForStructureApostropheGlottalStop(t *testing.T) {
	_, replaces := breaksForStructure([]rune("vaa'an"), "ppppp")
	if !replaces[3] {
		t.Fatalf("expected replace candidate at apostrophe position 3, got %v", replaces)
	}
}

// buildApostropheDict accepts "vaa'an" (genitive of "vaaka", the "k" elided
// by consonant gradation and written as an apostrophe), tagged as a noun.
func buildApostropheDict(t *testing.T) *vfst.Transducer {
	t.Helper()
	b := vfst.NewBuilder(false)
	tag := b.Symbol("[Lnimisana][Snimento][Ny]v")
	empty := b.Symbol("")

	s0 := b.State()
	v1 := b.State()
	a1 := b.State()
	a2 := b.State()
	ap := b.State()
	a3 := b.State()
	n1 := b.State()
	b.AddTransition(s0, b.Symbol("v"), tag, v1, 0)
	b.AddTransition(v1, b.Symbol("a"), b.Symbol("a"), a1, 0)
	b.AddTransition(a1, b.Symbol("a"), b.Symbol("a"), a2, 0)
	b.AddTransition(a2, b.Symbol("'"), b.Symbol(""), ap, 0)
	b.AddTransition(ap, b.Symbol("a"), b.Symbol("a"), a3, 0)
	b.AddTransition(a3, b.Symbol("n"), b.Symbol("n"), n1, 0)
	b.AddFinal(n1, empty, 0)

	tr, err := vfst.Load(b.Build())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tr
}

// TestHyphenateApostropheGlottalStop is an end-to-end regression test for
// spec.md §8 scenario 4: the apostrophe in "vaa'an" must not be erased into
// the surrounding vowels before syllable analysis runs (that collapses "vaa"
// and the following "a" into a false triple-vowel run), and a doubled
// identical vowel ("aa") must never be split on its own.
func TestHyphenateApostropheGlottalStop(t *testing.T) {
	tr := buildApostropheDict(t)
	h := New(morph.New(tr), DefaultOptions())

	if got := h.HyphenateRendered("vaa'an", "-", true); got != "vaa-an" {
		t.Fatalf("HyphenateRendered(vaa'an, allowContextChanges=true) = %q, want %q", got, "vaa-an")
	}
	if got := h.HyphenateRendered("vaa'an", "-", false); got != "vaa'an" {
		t.Fatalf("HyphenateRendered(vaa'an, allowContextChanges=false) = %q, want %q", got, "vaa'an")
	}
}

// buildHyphenDict accepts "kissa" and "kuorma-auto", both tagged as nouns;
// the compound gets an [Bh] boundary tag on its literal hyphen transition.
func buildHyphenDict(t *testing.T) *vfst.Transducer {
	t.Helper()
	b := vfst.NewBuilder(false)
	tag := b.Symbol("[Lnimisana][Snimento][Ny]k")
	empty := b.Symbol("")

	// kissa
	s0 := b.State()
	k1 := b.State()
	i1 := b.State()
	s1 := b.State()
	s2 := b.State()
	a1 := b.State()
	b.AddTransition(s0, b.Symbol("k"), tag, k1, 0)
	b.AddTransition(k1, b.Symbol("i"), b.Symbol("i"), i1, 0)
	b.AddTransition(i1, b.Symbol("s"), b.Symbol("s"), s1, 0)
	b.AddTransition(s1, b.Symbol("s"), b.Symbol("s"), s2, 0)
	b.AddTransition(s2, b.Symbol("a"), b.Symbol("a"), a1, 0)
	b.AddFinal(a1, empty, 0)

	// kuorma-auto, with a second "k" transition out of s0
	tag2 := b.Symbol("[Lnimisana][Snimento][Ny]k")
	c0 := b.State()
	c1 := b.State()
	c2 := b.State()
	c3 := b.State()
	c4 := b.State()
	c5 := b.State()
	c6 := b.State()
	c7 := b.State()
	c8 := b.State()
	c9 := b.State()
	c10 := b.State()
	b.AddTransition(s0, b.Symbol("k"), tag2, c0, 0)
	b.AddTransition(c0, b.Symbol("u"), b.Symbol("u"), c1, 0)
	b.AddTransition(c1, b.Symbol("o"), b.Symbol("o"), c2, 0)
	b.AddTransition(c2, b.Symbol("r"), b.Symbol("r"), c3, 0)
	b.AddTransition(c3, b.Symbol("m"), b.Symbol("m"), c4, 0)
	b.AddTransition(c4, b.Symbol("a"), b.Symbol("a"), c5, 0)
	b.AddTransition(c5, b.Symbol("-"), b.Symbol("[Bh]-"), c6, 0)
	b.AddTransition(c6, b.Symbol("a"), b.Symbol("a"), c7, 0)
	b.AddTransition(c7, b.Symbol("u"), b.Symbol("u"), c8, 0)
	b.AddTransition(c8, b.Symbol("t"), b.Symbol("t"), c9, 0)
	b.AddTransition(c9, b.Symbol("o"), b.Symbol("o"), c10, 0)
	b.AddFinal(c10, empty, 0)

	tr, err := vfst.Load(b.Build())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tr
}

func TestHyphenateKissa(t *testing.T) {
	tr := buildHyphenDict(t)
	h := New(morph.New(tr), DefaultOptions())
	got := h.HyphenateRendered("kissa", "-", false)
	if got != "kis-sa" {
		t.Fatalf("hyphenate(kissa) = %q, want %q", got, "kis-sa")
	}
}

func TestHyphenateCompoundWithLiteralHyphen(t *testing.T) {
	tr := buildHyphenDict(t)
	h := New(morph.New(tr), DefaultOptions())
	got := h.HyphenateRendered("kuorma-auto", "-", false)
	if got != "kuor-ma-au-to" {
		t.Fatalf("hyphenate(kuorma-auto) = %q, want %q", got, "kuor-ma-au-to")
	}
}

func TestHyphenatePatternLengthMatchesInput(t *testing.T) {
	tr := buildHyphenDict(t)
	h := New(morph.New(tr), DefaultOptions())
	word := "kissa"
	pattern := h.Hyphenate(word)
	if len([]rune(pattern)) != len([]rune(word)) {
		t.Fatalf("pattern length %d != word length %d", len([]rune(pattern)), len([]rune(word)))
	}
}

func TestHyphenateShortWordUnhyphenated(t *testing.T) {
	tr := buildHyphenDict(t)
	opts := DefaultOptions()
	opts.MinHyphenatedWordLength = 10
	h := New(morph.New(tr), opts)
	pattern := h.Hyphenate("kissa")
	for _, c := range pattern {
		if c != ' ' {
			t.Fatalf("expected all-space pattern below minimum length, got %q", pattern)
		}
	}
}
