// Package morph drives the VFST traversal engine over a Finnish morphology
// transducer and turns its raw tagged output into structured Analysis
// records: BASEFORM, CLASS, STRUCTURE and the rest of spec.md §3's
// attribute set, with the dense edge-case handling spec.md §4.5 describes
// (compound validation, class normalization, organization-name duplicates,
// analysis dedup).
package morph

import (
	"sort"
	"strings"
	"unicode"

	"github.com/voikkofi/vfst"
	"github.com/voikkofi/vfst/tags"
)

// Analyzer drives a loaded morphology transducer. It retains no state
// between Analyze calls beyond its reusable traversal Config (spec.md §5:
// Analyze is synchronous, handle-scoped, not reentrant).
type Analyzer struct {
	t   *vfst.Transducer
	cfg *vfst.Config
}

// New creates an Analyzer over a loaded unweighted morphology transducer.
func New(t *vfst.Transducer) *Analyzer {
	return &Analyzer{t: t, cfg: vfst.NewConfig(t)}
}

// Analyze runs the full pipeline (spec.md §4.5 steps 1-10) for one surface
// word. On no successful transducer traversal, or when every traversal's
// tags fail compound validation, it returns an empty slice — never nil,
// so callers can range over the result unconditionally.
func (a *Analyzer) Analyze(word string) []Analysis {
	lower := lowercaseWord(word)

	a.cfg.Prepare(lower)
	var raws []string
	for {
		out, ok := a.cfg.Next()
		if !ok {
			break
		}
		raws = append(raws, out)
	}

	analyses := make([]Analysis, 0, len(raws))
	for _, raw := range raws {
		toks := tags.Tokenize(raw)
		if !validateCompound(toks) {
			continue
		}
		an := buildAnalysis(toks)
		analyses = append(analyses, an...)
	}

	return dedupAnalyses(analyses)
}

// lowercaseWord implements step 1: the speller handles case restoration via
// STRUCTURE, so the analyzer always queries the transducer with the
// lowercase surface form.
func lowercaseWord(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// buildAnalysis implements steps 3-9 for one raw traversal output,
// returning one Analysis (or two, when step 9's organization-name
// duplicate rule fires).
func buildAnalysis(toks []tags.Token) []Analysis {
	attrs := extractAttributes(toks)
	structure := buildStructure(toks)
	baseform := buildBaseform(toks, structure)
	baseform = normalizeCompoundGenitive(baseform, attrs)

	attrs[KeyBaseform] = baseform
	attrs[KeyStructure] = structure

	normalizeClass(attrs, toks, structure)

	out := []Analysis{attrs}
	if hasOrganizationNameTag(toks) {
		dup := cloneAnalysis(attrs)
		dup[KeyClass] = "nimi"
		dup[KeyStructure] = uppercaseInitialStructure(structure)
		out = append(out, dup)
	}
	return out
}

// hasOrganizationNameTag reports whether toks contains an "[Ion]"
// organization-name tag (spec.md §4.5 step 9).
func hasOrganizationNameTag(toks []tags.Token) bool {
	for _, t := range toks {
		if t.Kind == tags.Tag && t.Code == "I" && t.Sub == "on" {
			return true
		}
	}
	return false
}

// uppercaseInitialStructure rewrites the first letter-position code of
// structure to require uppercase, for the organization-name-as-proper-noun
// duplicate analysis (spec.md §4.5 step 9).
func uppercaseInitialStructure(structure string) string {
	r := []rune(structure)
	for i, c := range r {
		switch c {
		case 'p', 'q':
			r[i] = 'i'
			return string(r)
		case 'i', 'j':
			return string(r)
		}
	}
	return structure
}

func cloneAnalysis(a Analysis) Analysis {
	out := make(Analysis, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// dedupAnalyses removes duplicate analyses by (STRUCTURE, BASEFORM, CLASS)
// per spec.md §4.5 step 10, preserving first-seen order.
func dedupAnalyses(in []Analysis) []Analysis {
	seen := make(map[string]bool, len(in))
	out := make([]Analysis, 0, len(in))
	for _, a := range in {
		key := a[KeyStructure] + "\x00" + a[KeyBaseform] + "\x00" + a[KeyClass]
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}

// SortedKeys returns an Analysis's keys in sorted order, for deterministic
// debug output.
func SortedKeys(a Analysis) []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
