package suggest

import (
	"testing"

	"github.com/voikkofi/vfst"
	"github.com/voikkofi/vfst/morph"
	"github.com/voikkofi/vfst/spell"
)

// buildKoiraDict constructs a transducer accepting only "koira".
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

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	tr := buildKoiraDict(t)
	speller := spell.New(morph.New(tr), spell.DefaultOptions())
	analyzer := morph.New(tr)
	return New(speller, analyzer, nil, opts)
}

func TestSuggestEmptyWordReturnsEmptySlice(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())
	got := e.Suggest("")
	if got == nil {
		t.Fatalf("expected non-nil empty slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected no suggestions for empty input, got %v", got)
	}
}

func TestSuggestFindsDeletionCandidate(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())
	got := e.Suggest("koiraa")
	found := false
	for _, s := range got {
		if s == "koira" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected koira among suggestions for koiraa, got %v", got)
	}
}

func TestSuggestCapsAtMaxSuggestions(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxSuggestions = 2
	e := newTestEngine(t, opts)
	got := e.Suggest("koiraa")
	if len(got) > 2 {
		t.Fatalf("expected at most 2 suggestions, got %d: %v", len(got), got)
	}
}

func TestSuggestUnrelatedWordMayReturnNoSuggestions(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())
	got := e.Suggest("xyzxyzxyzxyz")
	if got == nil {
		t.Fatalf("expected non-nil slice even with no suggestions")
	}
}

func TestSuggestAdjustsCaseToAllUppercase(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())
	got := e.Suggest("KOIRAA")
	for _, s := range got {
		for _, r := range s {
			if r >= 'a' && r <= 'z' {
				t.Fatalf("expected all-uppercase suggestion, got %q in %v", s, got)
			}
		}
	}
}
