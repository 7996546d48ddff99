package crho

import (
	"fmt"
	"strconv"
	"strings"
)

// AST is the result of one parsing session: every top-level unit that
// parsed, in source order, plus the diagnostics for the ones that did
// not.
type AST struct {
	Filename string
	Funcs    []*FuncDecl
	Errors   []error
}

// Expr is an expression node. Nodes own their children exclusively, form
// no cycles, and are never mutated once built.
type Expr interface {
	fmt.Stringer
	exprNode()
}

type NumberLit struct {
	Value float64
}

// Identifier is a reference to a variable or parameter by name.
type Identifier struct {
	Name string
}

type BinaryExpr struct {
	Op       rune
	LHS, RHS Expr
}

// CallExpr applies a named function to its arguments. Args keeps source
// order; an empty list is a legal call.
type CallExpr struct {
	Callee string
	Args   []Expr
}

// Prototype declares a function's name and parameter names. Top-level
// expressions get a synthesized nullary prototype so every unit reaches
// the consumer in the same shape.
type Prototype struct {
	Name   string
	Params []string
}

// FuncDecl pairs a prototype with its single body expression; the
// language has no statement blocks.
type FuncDecl struct {
	Proto *Prototype
	Body  Expr
}

func (*NumberLit) exprNode()  {}
func (*Identifier) exprNode() {}
func (*BinaryExpr) exprNode() {}
func (*CallExpr) exprNode()   {}
func (*Prototype) exprNode()  {}
func (*FuncDecl) exprNode()   {}

func (n *NumberLit) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (i *Identifier) String() string {
	return i.Name
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %c %s)", b.LHS, b.Op, b.RHS)
}

func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(args, ", "))
}

func (p *Prototype) String() string {
	return fmt.Sprintf("func %s(%s)", p.Name, strings.Join(p.Params, ", "))
}

func (f *FuncDecl) String() string {
	return fmt.Sprintf("%s %s", f.Proto, f.Body)
}
