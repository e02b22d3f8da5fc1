// Package grammar implements spec.md §4.9's grammar pipeline: tokenize,
// analyze each word via morph, annotate tokens with grammatical flags, run
// the independent checks, and cache results per paragraph.
package grammar

// Code identifies one of spec.md §6's 18 defined grammar error codes.
type Code int

const (
	InvalidSpelling                Code = 1
	ExtraWhitespace                Code = 2
	SpaceBeforePunctuation         Code = 3
	ExtraComma                     Code = 4
	InvalidSentenceStarter         Code = 5
	FirstLetterShouldBeLowercase   Code = 6
	FirstLetterShouldBeUppercase   Code = 7
	RepeatingWord                  Code = 8
	TerminatingPunctuationMissing  Code = 9
	InvalidQuotationEndPunctuation Code = 10
	ForeignQuotationMark           Code = 11
	MisplacedClosingParenthesis    Code = 12
	NegativeVerbMismatch           Code = 13
	AInfinitiveRequired            Code = 14
	MAInfinitiveRequired           Code = 15
	MisplacedConjunction           Code = 16
	MissingMainVerb                Code = 17
	ExtraMainVerb                  Code = 18
)

// descriptions holds the short, human-readable description for each code;
// also used as the fsst training corpus for GcCache (cache.go), since it is
// representative of every string GcCache will ever store.
var descriptions = map[Code]string{
	InvalidSpelling:                "sana on kirjoitettu väärin",
	ExtraWhitespace:                "ylimääräinen välilyönti",
	SpaceBeforePunctuation:         "välilyönti ennen välimerkkiä",
	ExtraComma:                     "ylimääräinen pilkku",
	InvalidSentenceStarter:         "virheellinen virkkeen aloitus",
	FirstLetterShouldBeLowercase:   "ensimmäisen kirjaimen tulisi olla pieni",
	FirstLetterShouldBeUppercase:   "ensimmäisen kirjaimen tulisi olla suuri",
	RepeatingWord:                  "sana on toistettu",
	TerminatingPunctuationMissing:  "lopetusvälimerkki puuttuu",
	InvalidQuotationEndPunctuation: "virheellinen välimerkki lainauksen lopussa",
	ForeignQuotationMark:          "vieraskielinen lainausmerkki",
	MisplacedClosingParenthesis:    "sulkumerkki väärässä paikassa",
	NegativeVerbMismatch:           "kieltoverbi ei täsmää",
	AInfinitiveRequired:            "A-infinitiivi vaaditaan",
	MAInfinitiveRequired:           "MA-infinitiivi vaaditaan",
	MisplacedConjunction:           "konjunktio väärässä paikassa",
	MissingMainVerb:                "predikaatti puuttuu",
	ExtraMainVerb:                  "ylimääräinen predikaatti",
}

// Description returns the short, human-readable description for a code.
func (c Code) Description() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return ""
}

// Error is one grammar finding (spec.md §6: "grammarErrors -> list of
// records (errorCode, startPos, errorLen, suggestions, shortDescription)").
// Positions and lengths are rune offsets, matching token.Token.
type Error struct {
	Code             Code
	StartPos         int
	ErrorLen         int
	Suggestions      []string
	ShortDescription string
}
