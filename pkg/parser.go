package crho

// AnonFuncName is the reserved prototype name given to bare top-level
// expressions, so every unit handed downstream has a function shape.
const AnonFuncName = "__anon_func__"

// Tokenizer is the parser's view of a token source. *Lexer satisfies it;
// tests feed canned token slices through a stub.
type Tokenizer interface {
	Next() Token
}

// Parser is a recursive-descent parser with precedence climbing for
// binary expressions. Like the Lexer it is single-session state: one
// Parser per input, driven from a single goroutine.
type Parser struct {
	toks  Tokenizer
	table PrecedenceTable
	cur   Token
}

func NewParser(toks Tokenizer) *Parser {
	return NewParserWithTable(toks, DefaultPrecedence())
}

func NewParserWithTable(toks Tokenizer, table PrecedenceTable) *Parser {
	p := &Parser{toks: toks, table: table}
	p.advance() // prime the current token
	return p
}

func (p *Parser) advance() {
	p.cur = p.toks.Next()
}

// at reports whether the current token is exactly the character ch.
func (p *Parser) at(ch rune) bool {
	return p.cur.Char() == ch
}

// Next parses one top-level unit: a function definition, an import, or a
// bare expression wrapped in a synthesized prototype. Separator
// semicolons before the unit are skipped. The second result is true at
// end of input. On failure the token stream is left wherever the problem
// was noticed; resynchronization is the caller's policy, not the
// parser's.
func (p *Parser) Next() (*FuncDecl, bool, error) {
	for p.at(';') {
		p.advance()
	}
	if p.cur.Typ == TokenEOF {
		return nil, true, nil
	}

	switch p.cur.Typ {
	case TokenFunc:
		fn, err := p.parseFuncDecl()
		return fn, false, err
	case TokenImport:
		return nil, false, p.parseImport()
	default:
		fn, err := p.parseTopLevel()
		return fn, false, err
	}
}

// Run drains the token stream, reporting each failed unit to the
// collector and skipping exactly one token before trying again. The
// single-token skip guarantees forward progress even at end of input,
// where the lexer keeps answering EOF.
func (p *Parser) Run(collector *Collector) *AST {
	ast := &AST{}
	for {
		fn, done, err := p.Next()
		if done {
			return ast
		}
		if err != nil {
			if collector != nil {
				collector.Report(err)
			}
			ast.Errors = append(ast.Errors, err)
			p.advance()
			continue
		}
		ast.Funcs = append(ast.Funcs, fn)
	}
}

func (p *Parser) parseExpr() (Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, lhs)
}

func (p *Parser) parsePrimary() (Expr, error) {
	switch p.cur.Typ {
	case TokenNumber:
		lit := &NumberLit{Value: p.cur.Num}
		p.advance()
		return lit, nil
	case TokenIdentifier:
		return p.parseIdentifier()
	case TokenChar:
		if p.at('(') {
			return p.parseParen()
		}
	}
	return nil, syntaxErr(p.cur.Loc, "expected expression, found %s", p.cur)
}

// parseBinOpRHS folds operators into lhs for as long as they bind at
// least as tightly as min. Operators of equal power fold left; a tighter
// operator on the right is resolved first by recursing with its power
// plus one. Any token absent from the table looks up below every valid
// power and ends the loop, so the expression simply stops there.
func (p *Parser) parseBinOpRHS(min int, lhs Expr) (Expr, error) {
	for {
		prec := p.table.Lookup(p.cur.Char())
		if prec < min {
			return lhs, nil
		}

		op := p.cur.Char()
		p.advance()

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		if prec < p.table.Lookup(p.cur.Char()) {
			rhs, err = p.parseBinOpRHS(prec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &BinaryExpr{Op: op, LHS: lhs, RHS: rhs}
	}
}

// parseIdentifier handles both a plain variable reference and, when the
// name is immediately followed by '(', a call with a comma-separated
// argument list. Calls may have zero arguments.
func (p *Parser) parseIdentifier() (Expr, error) {
	name := p.cur.Lexeme
	p.advance()

	if !p.at('(') {
		return &Identifier{Name: name}, nil
	}
	p.advance() // (

	var args []Expr
	if !p.at(')') {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.at(')') {
				break
			}
			if !p.at(',') {
				return nil, syntaxErr(p.cur.Loc, "expected ')' or ',' in argument list, found %s", p.cur)
			}
			p.advance() // ,
		}
	}
	p.advance() // )

	return &CallExpr{Callee: name, Args: args}, nil
}

func (p *Parser) parseParen() (Expr, error) {
	p.advance() // (
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.at(')') {
		return nil, syntaxErr(p.cur.Loc, "expected ')', found %s", p.cur)
	}
	p.advance() // )

	// Parentheses only group; the inner node is the result
	return expr, nil
}

// parsePrototype parses name '(' param (',' param)* ')' with the 'func'
// keyword already consumed. The parameter list must not be empty, and a
// name may not appear twice.
func (p *Parser) parsePrototype() (*Prototype, error) {
	if p.cur.Typ != TokenIdentifier {
		return nil, syntaxErr(p.cur.Loc, "expected function name, found %s", p.cur)
	}
	name := p.cur.Lexeme
	p.advance()

	if !p.at('(') {
		return nil, syntaxErr(p.cur.Loc, "expected '(' after function name, found %s", p.cur)
	}
	p.advance()

	var params []string
	seen := make(map[string]bool)
	for {
		if p.cur.Typ != TokenIdentifier {
			return nil, syntaxErr(p.cur.Loc, "expected parameter name, found %s", p.cur)
		}
		if seen[p.cur.Lexeme] {
			return nil, syntaxErr(p.cur.Loc, "duplicate parameter %q", p.cur.Lexeme)
		}
		seen[p.cur.Lexeme] = true
		params = append(params, p.cur.Lexeme)
		p.advance()

		if p.at(')') {
			break
		}
		if !p.at(',') {
			return nil, syntaxErr(p.cur.Loc, "expected ')' or ',' in parameter list, found %s", p.cur)
		}
		p.advance()
	}
	p.advance() // )

	return &Prototype{Name: name, Params: params}, nil
}

func (p *Parser) parseFuncDecl() (*FuncDecl, error) {
	p.advance() // func

	proto, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &FuncDecl{Proto: proto, Body: body}, nil
}

// parseTopLevel wraps a bare expression in an anonymous nullary function.
func (p *Parser) parseTopLevel() (*FuncDecl, error) {
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &FuncDecl{Proto: &Prototype{Name: AnonFuncName}, Body: body}, nil
}

// parseImport always fails: import resolution belongs to a collaborator
// this front end does not have. The keyword itself is deliberately not
// consumed here; the caller's recovery skip moves past it.
func (p *Parser) parseImport() error {
	return &UnsupportedError{Loc: p.cur.Loc, Feature: "import"}
}
