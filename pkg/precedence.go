package crho

import "fmt"

// PrecNone is strictly lower than every valid binding power. Lookup
// returns it for any character that is not a known binary operator,
// which is what stops the climbing loop in parseBinOpRHS at the end of
// an expression.
const PrecNone = -1

// PrecedenceTable maps a binary operator to its binding power. Only
// single-character operators exist; a multi-character operator would
// need a different token model first.
type PrecedenceTable map[rune]int

// DefaultPrecedence returns the built-in operator set: comparisons bind
// loosest, then additive, then multiplicative.
func DefaultPrecedence() PrecedenceTable {
	return PrecedenceTable{
		'<': 10,
		'>': 10,
		'+': 20,
		'-': 20,
		'*': 40,
		'/': 40,
	}
}

func (t PrecedenceTable) Lookup(op rune) int {
	if prec, ok := t[op]; ok {
		return prec
	}
	return PrecNone
}

// Validate rejects binding powers below zero, which would collide with
// the PrecNone sentinel and break loop termination.
func (t PrecedenceTable) Validate() error {
	for op, prec := range t {
		if prec < 0 {
			return fmt.Errorf("operator %q: binding power must be non-negative, got %d", op, prec)
		}
	}
	return nil
}
