package grammar

import (
	"testing"

	"github.com/voikkofi/vfst"
	"github.com/voikkofi/vfst/morph"
	"github.com/voikkofi/vfst/spell"
)

// buildKoiraDict mirrors morph's own test transducer: accepts only
// "koira", tagged as a noun.
func buildKoiraDict(t *testing.T) *vfst.Transducer {
	t.Helper()
	b := vfst.NewBuilder(false)
	tag := b.Symbol("[Lnimisana][Snimento][Ny]k")
	o, i, r, a := b.Symbol("o"), b.Symbol("i"), b.Symbol("r"), b.Symbol("a")
	empty := b.Symbol("")
	s0, s1, s2, s3, s4, s5 := b.State(), b.State(), b.State(), b.State(), b.State(), b.State()
	b.AddTransition(s0, b.Symbol("k"), tag, s1, 0)
	b.AddTransition(s1, o, o, s2, 0)
	b.AddTransition(s2, i, i, s3, 0)
	b.AddTransition(s3, r, r, s4, 0)
	b.AddTransition(s4, a, a, s5, 0)
	b.AddFinal(s5, empty, 0)
	tr, err := vfst.Load(b.Build())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tr
}

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	tr := buildKoiraDict(t)
	analyzer := morph.New(tr)
	speller := spell.New(analyzer, spell.DefaultOptions())
	return New(analyzer, speller, nil, nil, Options{})
}

func TestCheckRepeatingWord(t *testing.T) {
	c := newTestChecker(t)
	errs := c.Check("koira koira juoksi.")
	found := false
	for _, e := range errs {
		if e.Code == RepeatingWord {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected RepeatingWord error, got %+v", errs)
	}
}

func TestCheckRepeatingWordExceptionAllowed(t *testing.T) {
	c := newTestChecker(t)
	errs := c.Check("ihan ihan koira.")
	for _, e := range errs {
		if e.Code == RepeatingWord {
			t.Fatalf("did not expect RepeatingWord for exception-listed word, got %+v", errs)
		}
	}
}

func TestCheckMissingTerminatingPunctuation(t *testing.T) {
	c := newTestChecker(t)
	errs := c.Check("koira juoksi")
	found := false
	for _, e := range errs {
		if e.Code == TerminatingPunctuationMissing {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected TerminatingPunctuationMissing, got %+v", errs)
	}
}

func TestCheckCachesResult(t *testing.T) {
	c := newTestChecker(t)
	text := "koira juoksi."
	first := c.Check(text)
	second := c.Check(text)
	if len(first) != len(second) {
		t.Fatalf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestCheckInvalidQuotationEndPunctuation(t *testing.T) {
	c := newTestChecker(t)
	errs := c.Check(`Koira sanoi "juoksen!".`)
	found := false
	for _, e := range errs {
		if e.Code == InvalidQuotationEndPunctuation {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected InvalidQuotationEndPunctuation, got %+v", errs)
	}
}

func TestCheckQuotationEndPunctuationOkWhenNotDoubled(t *testing.T) {
	c := newTestChecker(t)
	errs := c.Check(`Koira sanoi "juoksen".`)
	for _, e := range errs {
		if e.Code == InvalidQuotationEndPunctuation {
			t.Fatalf("did not expect InvalidQuotationEndPunctuation, got %+v", errs)
		}
	}
}

// buildAutocorrectDict accepts "koirra" and rewrites it to "koira" by
// silencing the extra "r" (an unweighted acceptor, per spec.md §4.9 —
// no tags, just a plain surface-to-surface rewrite).
func buildAutocorrectDict(t *testing.T) *vfst.Transducer {
	t.Helper()
	b := vfst.NewBuilder(false)
	empty := b.Symbol("")
	s0, s1, s2, s3, s4, s5, s6 := b.State(), b.State(), b.State(), b.State(), b.State(), b.State(), b.State()
	b.AddTransition(s0, b.Symbol("k"), b.Symbol("k"), s1, 0)
	b.AddTransition(s1, b.Symbol("o"), b.Symbol("o"), s2, 0)
	b.AddTransition(s2, b.Symbol("i"), b.Symbol("i"), s3, 0)
	b.AddTransition(s3, b.Symbol("r"), b.Symbol("r"), s4, 0)
	b.AddTransition(s4, b.Symbol("r"), empty, s5, 0)
	b.AddTransition(s5, b.Symbol("a"), b.Symbol("a"), s6, 0)
	b.AddFinal(s6, empty, 0)
	tr, err := vfst.Load(b.Build())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tr
}

func TestCheckSpellingUsesAutocorrectRewrite(t *testing.T) {
	tr := buildKoiraDict(t)
	analyzer := morph.New(tr)
	speller := spell.New(analyzer, spell.DefaultOptions())
	autocorrect := buildAutocorrectDict(t)
	c := New(analyzer, speller, nil, autocorrect, Options{})

	errs := c.Check("koirra juoksi.")
	var found *Error
	for i, e := range errs {
		if e.Code == InvalidSpelling && e.StartPos == 0 {
			found = &errs[i]
		}
	}
	if found == nil {
		t.Fatalf("expected InvalidSpelling for koirra, got %+v", errs)
	}
	ok := false
	for _, s := range found.Suggestions {
		if s == "koira" {
			ok = true
		}
	}
	if !ok {
		t.Fatalf("expected autocorrect rewrite %q among suggestions, got %v", "koira", found.Suggestions)
	}
}

func TestCheckExtraComma(t *testing.T) {
	c := newTestChecker(t)
	errs := c.Check("koira,, juoksi.")
	found := false
	for _, e := range errs {
		if e.Code == ExtraComma {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ExtraComma, got %+v", errs)
	}
}
