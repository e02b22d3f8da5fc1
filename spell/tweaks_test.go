package spell

import "testing"

func TestStripSoftHyphens(t *testing.T) {
	got, had := stripSoftHyphens("koi­ra")
	if !had {
		t.Fatalf("expected a soft hyphen to be found")
	}
	if got != "koira" {
		t.Errorf("got %q, want koira", got)
	}
}

func TestStripSoftHyphensNoneFound(t *testing.T) {
	got, had := stripSoftHyphens("koira")
	if had {
		t.Fatalf("expected no soft hyphen")
	}
	if got != "koira" {
		t.Errorf("got %q, want koira", got)
	}
}

func TestRemoveOptionalHyphen(t *testing.T) {
	got := removeOptionalHyphen("kala-koira")
	want := "kalakoira"
	found := false
	for _, c := range got {
		if c == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %q among candidates, got %v", want, got)
	}
}

func TestRemoveOptionalHyphenIgnoresEdges(t *testing.T) {
	got := removeOptionalHyphen("-koira-")
	if len(got) != 0 {
		t.Fatalf("expected no interior hyphen candidates, got %v", got)
	}
}

func TestInsertMissingHyphen(t *testing.T) {
	got := insertMissingHyphen("ab")
	want := []string{"a-b"}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestStripTrailingDot(t *testing.T) {
	got, had := stripTrailingDot("koira.")
	if !had || got != "koira" {
		t.Fatalf("got (%q, %v)", got, had)
	}
}

func TestLooksLikeNonword(t *testing.T) {
	cases := map[string]bool{
		"https://example.com": true,
		"www.example.com":     true,
		"a@b.com":             true,
		"koira":               false,
		"@":                   false,
	}
	for word, want := range cases {
		if got := looksLikeNonword(word); got != want {
			t.Errorf("looksLikeNonword(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestDecapitalizeFirst(t *testing.T) {
	if got := decapitalizeFirst("Koira"); got != "koira" {
		t.Errorf("got %q, want koira", got)
	}
	if got := decapitalizeFirst(""); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
