package vfst

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// SymbolClass categorizes a symbol table entry by the ordering invariant
// spec.md §3 requires: epsilon, then flag diacritics, then single characters,
// then multi-character tags.
type SymbolClass uint8

const (
	ClassEpsilon SymbolClass = iota
	ClassFlag
	ClassNormal
	ClassMulti
)

// SymbolTable is the zero-copy-over-strings view of a VFST symbol table.
//
// Symbols are ordered by class: index 0 is always epsilon, indices
// [1, firstNormal) are flag diacritics, [firstNormal, firstMulti) are
// single-character symbols, and [firstMulti, N) are multi-character tags
// such as "[Ln]" or "[Xp]".
type SymbolTable struct {
	symbols     []string
	firstNormal int
	firstMulti  int

	// charToIndex maps a single rune to its symbol index, for symbols in
	// [firstNormal, firstMulti).
	charToIndex map[rune]int
	// flags holds the parsed FlagDiacritic for each index in [1, firstNormal).
	flags map[int]FlagDiacritic

	// featureNames/valueNames intern the dense feature/value index space;
	// index 0 of valueNames is always the neutral value.
	featureNames []string
	featureIndex map[string]int
	valueNames   []string
	valueIndex   map[string]int
}

// Len returns the number of symbols, including epsilon.
func (t *SymbolTable) Len() int { return len(t.symbols) }

// String returns the textual form of symbol i ("" for epsilon).
func (t *SymbolTable) String(i int) string {
	if i < 0 || i >= len(t.symbols) {
		return ""
	}
	return t.symbols[i]
}

// ClassOf classifies symbol index i.
func (t *SymbolTable) ClassOf(i int) SymbolClass {
	switch {
	case i == 0:
		return ClassEpsilon
	case i < t.firstNormal:
		return ClassFlag
	case i < t.firstMulti:
		return ClassNormal
	default:
		return ClassMulti
	}
}

// IndexOfChar returns the symbol index for a single input rune, and whether
// one was found. Callers map unknown characters to a sentinel themselves
// (see Config.Prepare).
func (t *SymbolTable) IndexOfChar(r rune) (int, bool) {
	i, ok := t.charToIndex[r]
	return i, ok
}

// FlagAt returns the parsed flag-diacritic descriptor for symbol index i.
func (t *SymbolTable) FlagAt(i int) (FlagDiacritic, bool) {
	f, ok := t.flags[i]
	return f, ok
}

// FeatureCount returns the number of distinct flag-diacritic features, used
// to size Config's per-depth flag-state storage.
func (t *SymbolTable) FeatureCount() int { return len(t.featureNames) }

// parseSymbolTable scans a null-terminated UTF-8 symbol table starting at
// the head of data, classifying each entry and parsing flag diacritics.
// Returns the table and the remaining bytes after the last symbol.
func parseSymbolTable(data []byte, count int) (*SymbolTable, []byte, error) {
	t := &SymbolTable{
		charToIndex:  make(map[rune]int),
		flags:        make(map[int]FlagDiacritic),
		featureIndex: make(map[string]int),
		valueIndex:   make(map[string]int),
	}
	// Value index 0 is always the neutral value.
	t.valueNames = append(t.valueNames, "")
	t.valueIndex[""] = 0

	t.symbols = make([]string, 0, count)
	rest := data
	for i := 0; i < count; i++ {
		nul := bytes.IndexByte(rest, 0)
		if nul < 0 {
			return nil, nil, &LoadError{Err: ErrTooShort, Detail: "unterminated symbol string", Offset: len(data) - len(rest)}
		}
		sym := string(rest[:nul])
		rest = rest[nul+1:]
		t.symbols = append(t.symbols, sym)

		switch {
		case i == 0:
			// epsilon; sym is expected to be empty but we do not enforce it.
		case isFlagSymbol(sym):
			fd, err := t.internFlag(sym)
			if err != nil {
				return nil, nil, &LoadError{Err: ErrMalformedFlag, Detail: sym, Offset: len(data) - len(rest)}
			}
			t.flags[i] = fd
		case isMultiCharSymbol(sym):
			if t.firstNormal == 0 {
				t.firstNormal = i
			}
			if t.firstMulti == 0 {
				t.firstMulti = i
			}
		default:
			// Single-character symbol.
			if t.firstNormal == 0 {
				t.firstNormal = i
			}
			r := []rune(sym)
			if len(r) == 1 {
				t.charToIndex[r[0]] = i
			}
		}
	}
	if t.firstNormal == 0 {
		t.firstNormal = count
	}
	if t.firstMulti == 0 {
		t.firstMulti = count
	}
	return t, rest, nil
}

func isFlagSymbol(s string) bool {
	return strings.HasPrefix(s, "@") && strings.HasSuffix(s, "@") && len(s) > 1
}

func isMultiCharSymbol(s string) bool {
	if len(s) < 2 {
		return false
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return true
	}
	// Any symbol whose rune length isn't exactly 1 is "multi" in the sense
	// that traversal must consume it as a unit (e.g. precomposed digraphs).
	return len([]rune(s)) != 1
}

// internFlag parses "@OP.FEATURE[.VALUE]@" into a FlagDiacritic, interning
// FEATURE and VALUE into the dense index spaces.
func (t *SymbolTable) internFlag(sym string) (FlagDiacritic, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(sym, "@"), "@")
	parts := strings.SplitN(body, ".", 3)
	if len(parts) < 2 {
		return FlagDiacritic{}, fmt.Errorf("expected OP.FEATURE[.VALUE], got %q", body)
	}
	op, err := parseOp(parts[0])
	if err != nil {
		return FlagDiacritic{}, err
	}
	feature := parts[1]
	fi, ok := t.featureIndex[feature]
	if !ok {
		fi = len(t.featureNames)
		t.featureNames = append(t.featureNames, feature)
		t.featureIndex[feature] = fi
	}
	value := ""
	if len(parts) == 3 {
		value = parts[2]
	}
	vi := valueNeutral
	switch {
	case value == "":
		vi = valueNeutral
	case value == "*" || strings.EqualFold(value, "any"):
		vi = valueAny
	default:
		key := feature + "\x00" + value
		if existing, ok := t.valueIndex[key]; ok {
			vi = existing
		} else {
			vi = len(t.valueNames)
			t.valueNames = append(t.valueNames, value)
			t.valueIndex[key] = vi
		}
	}
	return FlagDiacritic{Op: op, Feature: fi, Value: vi}, nil
}

func parseOp(s string) (Op, error) {
	switch s {
	case "P":
		return OpPositiveSet, nil
	case "C":
		return OpClear, nil
	case "U":
		return OpUnify, nil
	case "R":
		return OpRequire, nil
	case "D":
		return OpDisallow, nil
	default:
		return 0, fmt.Errorf("unknown flag op %q", s)
	}
}

// debugFlagString renders a FlagDiacritic back into "@OP.FEATURE.VALUE@" form
// for diagnostics; it is not used on any hot path.
func (t *SymbolTable) debugFlagString(f FlagDiacritic) string {
	var opc string
	switch f.Op {
	case OpPositiveSet:
		opc = "P"
	case OpClear:
		opc = "C"
	case OpUnify:
		opc = "U"
	case OpRequire:
		opc = "R"
	case OpDisallow:
		opc = "D"
	default:
		opc = "?"
	}
	feature := "?"
	if f.Feature >= 0 && f.Feature < len(t.featureNames) {
		feature = t.featureNames[f.Feature]
	}
	switch f.Value {
	case valueNeutral:
		return "@" + opc + "." + feature + "@"
	case valueAny:
		return "@" + opc + "." + feature + ".*@"
	default:
		val := strconv.Itoa(f.Value)
		if f.Value < len(t.valueNames) {
			val = t.valueNames[f.Value]
		}
		return "@" + opc + "." + feature + "." + val + "@"
	}
}
