package spell

import (
	"testing"

	"github.com/voikkofi/vfst"
	"github.com/voikkofi/vfst/morph"
)

// buildKoiraDict constructs a transducer accepting "koira", producing
// STRUCTURE "ppppp" (all lowercase expected).
func buildKoiraDict(t *testing.T) *vfst.Transducer {
	t.Helper()
	b := vfst.NewBuilder(false)
	tag := b.Symbol("[Lnimisana][Snimento][Ny]k")
	o := b.Symbol("o")
	i := b.Symbol("i")
	r := b.Symbol("r")
	a := b.Symbol("a")
	k := b.Symbol("k")
	empty := b.Symbol("")
	s0 := b.State()
	s1 := b.State()
	s2 := b.State()
	s3 := b.State()
	s4 := b.State()
	s5 := b.State()
	b.AddTransition(s0, k, tag, s1, 0)
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

func newTestSpeller(t *testing.T, opts Options) *Speller {
	t.Helper()
	return New(morph.New(buildKoiraDict(t)), opts)
}

func TestSpellOkMatch(t *testing.T) {
	s := newTestSpeller(t, DefaultOptions())
	if !s.Spell("koira") {
		t.Fatalf("expected koira to spell")
	}
	if got := s.Result("koira"); got != Ok {
		t.Errorf("Result = %v, want Ok", got)
	}
}

func TestSpellNoMatchFails(t *testing.T) {
	s := newTestSpeller(t, DefaultOptions())
	if s.Spell("kissa") {
		t.Fatalf("expected kissa not to spell")
	}
}

func TestSpellCapitalizeFirstAccepted(t *testing.T) {
	opts := DefaultOptions()
	opts.AcceptFirstUppercase = true
	s := newTestSpeller(t, opts)
	if !s.Spell("Koira") {
		t.Fatalf("expected Koira to spell when AcceptFirstUppercase")
	}
	if got := s.Result("Koira"); got != CapitalizeFirst {
		t.Errorf("Result = %v, want CapitalizeFirst", got)
	}
}

func TestSpellCapitalizeFirstRejectedWhenDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.AcceptFirstUppercase = false
	s := newTestSpeller(t, opts)
	if s.Spell("Koira") {
		t.Fatalf("expected Koira not to spell when AcceptFirstUppercase disabled")
	}
}

func TestSpellInteriorUppercaseIsCapitalizationError(t *testing.T) {
	s := newTestSpeller(t, DefaultOptions())
	if s.Spell("koIra") {
		t.Fatalf("expected koIra not to spell")
	}
	if got := s.Result("koIra"); got != CapitalizationError {
		t.Errorf("Result = %v, want CapitalizationError", got)
	}
}

func TestSpellAllUppercaseAccepted(t *testing.T) {
	opts := DefaultOptions()
	opts.AcceptAllUppercase = true
	s := newTestSpeller(t, opts)
	if !s.Spell("KOIRA") {
		t.Fatalf("expected KOIRA to spell when AcceptAllUppercase")
	}
}

func TestSpellIgnoreNumbers(t *testing.T) {
	opts := DefaultOptions()
	opts.IgnoreNumbers = true
	s := newTestSpeller(t, opts)
	if !s.Spell("koira2") {
		t.Fatalf("expected word with digit to pass when IgnoreNumbers")
	}
}

func TestSpellIgnoreDotRetriesStripped(t *testing.T) {
	opts := DefaultOptions()
	opts.IgnoreDot = true
	s := newTestSpeller(t, opts)
	if !s.Spell("koira.") {
		t.Fatalf("expected trailing-dot word to spell when IgnoreDot")
	}
}

func TestSpellCacheHitMatchesMiss(t *testing.T) {
	opts := DefaultOptions()
	opts.CacheOrder = 4
	s := newTestSpeller(t, opts)
	first := s.Spell("koira")
	second := s.Spell("koira")
	if first != second {
		t.Fatalf("cache changed result: first=%v second=%v", first, second)
	}
}

func TestSpellIgnoreNonwordURL(t *testing.T) {
	opts := DefaultOptions()
	s := newTestSpeller(t, opts)
	if !s.Spell("https://example.com") {
		t.Fatalf("expected URL-shaped token to pass when IgnoreNonwords")
	}
}
