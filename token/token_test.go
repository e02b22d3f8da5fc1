package token

import (
	"strings"
	"testing"
)

func TestTokenizeRoundTrip(t *testing.T) {
	text := "kissa ja koira sekä härkä"
	toks := Tokenize(text)
	var b strings.Builder
	for _, tk := range toks {
		b.WriteString(tk.Text)
	}
	if b.String() != text {
		t.Fatalf("round trip failed: got %q, want %q", b.String(), text)
	}
}

func TestTokenizeAlternatingWordWhitespace(t *testing.T) {
	toks := Tokenize("kissa ja koira sekä härkä")
	want := []string{"kissa", " ", "ja", " ", "koira", " ", "sekä", " ", "härkä"}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i].Text != w {
			t.Fatalf("token %d: got %q, want %q", i, toks[i].Text, w)
		}
	}
}

func TestTokenizePositionsIncrease(t *testing.T) {
	toks := Tokenize("a, b. c!")
	for i := 1; i < len(toks); i++ {
		if toks[i].Position <= toks[i-1].Position {
			t.Fatalf("positions not strictly increasing at %d: %+v", i, toks)
		}
	}
}

func TestTokenizeEllipsisIsOneToken(t *testing.T) {
	toks := Tokenize("wait...")
	if len(toks) != 2 || toks[1].Text != "..." || toks[1].Type != Punctuation {
		t.Fatalf("expected [wait, ...], got %+v", toks)
	}
}

func TestTokenizeURL(t *testing.T) {
	toks := Tokenize("see https://example.com/page for info")
	found := false
	for _, tk := range toks {
		if tk.Type == Word && tk.Text == "https://example.com/page" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected whole URL as one Word token, got %+v", toks)
	}
}

func TestTokenizeEmail(t *testing.T) {
	toks := Tokenize("mail matti@example.com now")
	found := false
	for _, tk := range toks {
		if tk.Type == Word && tk.Text == "matti@example.com" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected whole email as one Word token, got %+v", toks)
	}
}

func TestTokenizeNumberWithEmbeddedDot(t *testing.T) {
	toks := Tokenize("arvo 3.14 tarkka")
	found := false
	for _, tk := range toks {
		if tk.Type == Word && tk.Text == "3.14" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 3.14 as one Word token, got %+v", toks)
	}
}

func TestTokenizeWordInternalHyphenAndApostrophe(t *testing.T) {
	toks := Tokenize("vaa'an kuorma-auto")
	want := []string{"vaa'an", " ", "kuorma-auto"}
	for i, w := range want {
		if toks[i].Text != w {
			t.Fatalf("token %d: got %q, want %q", i, toks[i].Text, w)
		}
	}
}
