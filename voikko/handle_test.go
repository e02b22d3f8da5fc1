package voikko

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voikkofi/vfst"
)

// buildKoiraDict mirrors morph's own test transducer: accepts only
// "koira", tagged as a noun.
func buildKoiraDict(t *testing.T) []byte {
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
	return b.Build()
}

func newTestDictDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mor.vfst"), buildKoiraDict(t), 0o644); err != nil {
		t.Fatalf("WriteFile mor.vfst: %v", err)
	}
	index := "# test dictionary\ninfo:name: Testi\ninfo:locale: fi\n"
	if err := os.WriteFile(filepath.Join(dir, "index.txt"), []byte(index), 0o644); err != nil {
		t.Fatalf("WriteFile index.txt: %v", err)
	}
	return dir
}

func TestNewAndSpell(t *testing.T) {
	h, err := New(newTestDictDir(t), DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer h.Close()

	if !h.Spell("koira") {
		t.Errorf("Spell(koira) = false, want true")
	}
	if h.Spell("koiraa") {
		t.Errorf("Spell(koiraa) = true, want false")
	}
}

func TestNewMissingDictionary(t *testing.T) {
	if _, err := New(t.TempDir(), DefaultOptions()); err == nil {
		t.Fatalf("expected an error for a directory with no mor.vfst")
	}
}

func TestDictionaryInfo(t *testing.T) {
	h, err := New(newTestDictDir(t), DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer h.Close()

	info := h.DictionaryInfo()
	if info["info:name"] != "Testi" {
		t.Errorf("info:name = %q, want Testi", info["info:name"])
	}
	if info["info:locale"] != "fi" {
		t.Errorf("info:locale = %q, want fi", info["info:locale"])
	}
}

func TestAnalyzeAndHyphenate(t *testing.T) {
	h, err := New(newTestDictDir(t), DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer h.Close()

	analyses := h.Analyze("koira")
	if len(analyses) != 1 {
		t.Fatalf("expected one analysis, got %d: %+v", len(analyses), analyses)
	}
	if analyses[0][KeyBaseform] != "koira" {
		t.Errorf("BASEFORM = %q, want koira", analyses[0][KeyBaseform])
	}

	pattern := h.Hyphenate("koira")
	if len([]rune(pattern)) != len([]rune("koira")) {
		t.Errorf("Hyphenate pattern length = %d, want %d", len([]rune(pattern)), len("koira"))
	}
}

func TestSuggestNeverNil(t *testing.T) {
	h, err := New(newTestDictDir(t), DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer h.Close()

	if got := h.Suggest(""); got == nil {
		t.Errorf("Suggest(\"\") = nil, want non-nil empty slice")
	}
}

func TestTokensAndSentences(t *testing.T) {
	h, err := New(newTestDictDir(t), DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer h.Close()

	toks := h.Tokens("koira juoksi.")
	if len(toks) == 0 {
		t.Fatalf("expected tokens, got none")
	}
	sents := h.Sentences("koira juoksi.")
	if len(sents) == 0 {
		t.Fatalf("expected sentences, got none")
	}
}

func TestGrammarErrors(t *testing.T) {
	h, err := New(newTestDictDir(t), DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer h.Close()

	errs := h.GrammarErrors("koira koira juoksi.")
	found := false
	for _, e := range errs {
		if e.Code == 8 { // RepeatingWord
			found = true
		}
	}
	if !found {
		t.Errorf("expected a repeating-word error, got %+v", errs)
	}
}

func TestShareIndependentOptions(t *testing.T) {
	h, err := New(newTestDictDir(t), DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer h.Close()

	shared := h.Share()
	defer shared.Close()

	opts := shared.Options()
	opts.IgnoreNumbers = true
	shared.SetOptions(opts)

	if h.Options().IgnoreNumbers {
		t.Errorf("SetOptions on the shared handle mutated the original handle's options")
	}
	if !shared.Spell("koira") {
		t.Errorf("shared handle lost its dictionary after Share")
	}
}
