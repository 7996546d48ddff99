package test

import (
	"fmt"
	"math/rand"
	"strings"
)

const validTokens = "func|import|main|add|foo|x|y|arg1|arg2|result|0|1|42|123|3.14|0.5|2.718281828459045|(|)|,|;|+|-|*|/|<|>|# a line comment\n|\n"

var operators = []string{"+", "-", "*", "/", "<", ">"}

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, "|")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}

// GetRandomProgram returns syntactically valid source with size top-level
// units, alternating function definitions and calls to them.
func GetRandomProgram(size int) string {
	var b strings.Builder
	for i := 0; i < size; i++ {
		op := operators[rand.Intn(len(operators))]
		if i%2 == 0 {
			fmt.Fprintf(&b, "func f%d(a, b) a %s b %s %d\n", i, op, operators[rand.Intn(len(operators))], i)
		} else {
			fmt.Fprintf(&b, "f%d(%d, %d %s 1)\n", i-1, i, i+1, op)
		}
	}
	return b.String()
}
