package vfst

// Op is a flag-diacritic operator, per spec.md §4.3.
type Op uint8

const (
	OpPositiveSet Op = iota // P: set feature := value
	OpClear                 // C: set feature := neutral
	OpUnify                 // U: unify feature with value
	OpRequire               // R: require feature == value (or != neutral for "any")
	OpDisallow              // D: require feature != value (or == neutral for "any")
)

// Reserved value indices: 0 is always neutral, 1 is always "any" (the `*`
// wildcard value). Specific values start at 2.
const (
	valueNeutral = 0
	valueAny     = 1
)

// FlagDiacritic is a parsed "@OP.FEATURE.VALUE@" symbol descriptor.
type FlagDiacritic struct {
	Op      Op
	Feature int // dense feature index
	Value   int // valueNeutral, valueAny, or a dense specific-value index
}

// Check evaluates the flag diacritic against the current value of its
// feature, per the table in spec.md §4.3. It returns the feature's new
// value and whether the transition may be taken.
func (f FlagDiacritic) Check(current int) (newValue int, ok bool) {
	switch f.Op {
	case OpPositiveSet:
		return f.Value, true
	case OpClear:
		return valueNeutral, true
	case OpUnify:
		if current == f.Value || current == valueNeutral {
			if current == valueNeutral {
				return f.Value, true
			}
			return current, true
		}
		return current, false
	case OpRequire:
		if f.Value == valueAny {
			return current, current != valueNeutral
		}
		return current, current == f.Value
	case OpDisallow:
		if f.Value == valueAny {
			return current, current == valueNeutral
		}
		return current, current != f.Value
	default:
		return current, false
	}
}
