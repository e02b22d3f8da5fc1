package morph

import (
	"testing"

	"github.com/voikkofi/vfst"
)

// buildKoiraDict constructs a transducer accepting "koira" and producing
// "[Lnimisana][Snimento][Ny]koira".
func buildKoiraDict(t *testing.T) *vfst.Transducer {
	t.Helper()
	b := vfst.NewBuilder(false)
	tag := b.Symbol("[Lnimisana][Snimento][Ny]k")
	k := b.Symbol("k")
	o := b.Symbol("o")
	i := b.Symbol("i")
	r := b.Symbol("r")
	a := b.Symbol("a")
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

func TestAnalyzeKoira(t *testing.T) {
	a := New(buildKoiraDict(t))
	got := a.Analyze("koira")
	if len(got) != 1 {
		t.Fatalf("expected one analysis, got %d: %+v", len(got), got)
	}
	an := got[0]
	if an[KeyClass] != "nimisana" {
		t.Errorf("CLASS = %q, want nimisana", an[KeyClass])
	}
	if an[KeyBaseform] != "koira" {
		t.Errorf("BASEFORM = %q, want koira", an[KeyBaseform])
	}
	if an[KeySijamuoto] != "nimento" {
		t.Errorf("SIJAMUOTO = %q, want nimento", an[KeySijamuoto])
	}
	if an[KeyNumber] != "singular" {
		t.Errorf("NUMBER = %q, want singular", an[KeyNumber])
	}
	if an[KeyStructure] != "ppppp" {
		t.Errorf("STRUCTURE = %q, want ppppp", an[KeyStructure])
	}
}

func TestAnalyzeNoMatchIsEmpty(t *testing.T) {
	a := New(buildKoiraDict(t))
	got := a.Analyze("kissa")
	if len(got) != 0 {
		t.Fatalf("expected no analyses, got %+v", got)
	}
}

// buildCompoundDict accepts "kalakoira" (note: no literal hyphen) with a
// compound boundary tag that is NOT [Bh], so no hyphen is required; "kala"
// ends in a vowel but "koira" starts with a consonant, so the
// identical-vowel-boundary rule doesn't apply.
func buildCompoundDict(t *testing.T) *vfst.Transducer {
	t.Helper()
	b := vfst.NewBuilder(false)
	prefix := b.Symbol("[Lnimisana]kala")
	boundary := b.Symbol("[Bc]")
	kala := b.Symbol("kala")
	koira := b.Symbol("koira")
	empty := b.Symbol("")
	s0 := b.State()
	s1 := b.State()
	s2 := b.State()
	s3 := b.State()
	b.AddTransition(s0, kala, prefix, s1, 0)
	b.AddTransition(s1, 0, boundary, s2, 0)
	b.AddTransition(s2, koira, koira, s3, 0)
	b.AddFinal(s3, empty, 0)
	tr, err := vfst.Load(b.Build())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tr
}

func TestAnalyzeCompoundBoundary(t *testing.T) {
	a := New(buildCompoundDict(t))
	got := a.Analyze("kalakoira")
	if len(got) != 1 {
		t.Fatalf("expected one analysis, got %d: %+v", len(got), got)
	}
	an := got[0]
	if an[KeyStructure] != "pppp=ppppp" {
		t.Errorf("STRUCTURE = %q, want pppp=ppppp", an[KeyStructure])
	}
	if an[KeyBaseform] != "kala=koira" {
		t.Errorf("BASEFORM = %q, want kala=koira", an[KeyBaseform])
	}
}

// buildHyphenRequiredDict has a [Bh] boundary but the surface has no
// literal hyphen, so validateCompound must reject it.
func buildHyphenRequiredDict(t *testing.T) *vfst.Transducer {
	t.Helper()
	b := vfst.NewBuilder(false)
	prefix := b.Symbol("[Lnimisana]")
	boundary := b.Symbol("[Bh]")
	x := b.Symbol("x")
	y := b.Symbol("y")
	empty := b.Symbol("")
	s0 := b.State()
	s1 := b.State()
	s2 := b.State()
	s3 := b.State()
	b.AddTransition(s0, x, prefix, s1, 0)
	b.AddTransition(s1, 0, boundary, s2, 0)
	b.AddTransition(s2, y, y, s3, 0)
	b.AddFinal(s3, empty, 0)
	tr, err := vfst.Load(b.Build())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tr
}

func TestAnalyzeRejectsMissingHyphen(t *testing.T) {
	a := New(buildHyphenRequiredDict(t))
	got := a.Analyze("xy")
	if len(got) != 0 {
		t.Fatalf("expected compound validation to reject missing hyphen, got %+v", got)
	}
}

// buildOrgNameDict tags its analysis with "[Ion]" to exercise the
// organization-name duplicate-analysis rule (step 9).
func buildOrgNameDict(t *testing.T) *vfst.Transducer {
	t.Helper()
	b := vfst.NewBuilder(false)
	tag := b.Symbol("[Lnimisana][Ion]")
	word := b.Symbol("osk")
	empty := b.Symbol("")
	s0 := b.State()
	s1 := b.State()
	b.AddTransition(s0, word, tag, s1, 0)
	b.AddFinal(s1, empty, 0)
	tr, err := vfst.Load(b.Build())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tr
}

func TestAnalyzeOrganizationNameDuplicate(t *testing.T) {
	a := New(buildOrgNameDict(t))
	got := a.Analyze("osk")
	if len(got) != 2 {
		t.Fatalf("expected two analyses (base + nimi duplicate), got %d: %+v", len(got), got)
	}
	var sawNimi bool
	for _, an := range got {
		if an[KeyClass] == "nimi" {
			sawNimi = true
		}
	}
	if !sawNimi {
		t.Errorf("expected a duplicate analysis with CLASS=nimi, got %+v", got)
	}
}

func TestLowercaseWord(t *testing.T) {
	if got := lowercaseWord("HELSINKI"); got != "helsinki" {
		t.Fatalf("got %q", got)
	}
}
