package abacus

import (
	"io"
	"strings"
)

// Expr = num | name | Call | Neg | Plus | Add | Sub | Mul | Div | Pow | '(' Expr ')'
// Call = funcname | funcname Expr | funcname '(' ')' | funcname '(' Expr { ',' Expr } ')'
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Pow = Expr '^' Expr

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of variable names used in the expression.
	names []string
}

// Parse parses an expression so it can be evaluated with a context. The given
// options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	p := parsectx{
		names: make(map[string]bool),
	}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.funcs == nil {
		p.funcs = globalfuncs
	} else if !p.nodefaults {
		// Only set default functions that aren't already set.
		for k, v := range globalfuncs {
			if _, ok := p.funcs[k]; !ok {
				p.funcs[k] = v
			}
		}
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
	case tokenSep:
		if !p.ceof {
			return nil, unexpectedEnd(tok)
		}
	default:
		return nil, unexpectedEnd(tok)
	}
	if n == nil {
		return nil, &EmptyExpressionError{Col: 1}
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, p *parsectx, until operator) (*node, error) {
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum, tokenIdent:
			// (parsed) x -> (parsed) * (x)
			scan.push(tok)
			prec := termprec
			if !prec.moreBinding(until) {
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeMul, left: n, right: rhs}
		case tokenOp:
			// Binary operator.
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				scan.push(end)
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenOpen:
			// Since parselhs parses functions aggressively, this is a
			// multiplication by a parenthesized term: 2 (expr) -> (2) * (expr).
			prec := termprec
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parsegroup(scan, p)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeMul, left: n, right: rhs}
		case tokenClose, tokenSep, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("abacus: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// any encountered token must be valid as the start of a subexpression, and
// whitespace normally lexed as EOF is ignored.
func parselhs(scan *lexer, p *parsectx, until operator) (*node, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.kind {
	case tokenNum:
		n = &node{kind: nodeNum, name: tok.text}
	case tokenIdent:
		fn := p.funcs[tok.text]
		if fn == nil {
			p.names[tok.text] = true
			n = &node{kind: nodeName, name: tok.text}
		} else {
			rhs, err := parsecall(scan, p, until, fn, tok.text)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeCall, name: tok.text, fn: fn, right: rhs}
		}
	case tokenOp:
		// Unary operator.
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := scan.must()
			scan.push(end)
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = &node{kind: prec.op, left: rhs}
	case tokenOpen:
		return parsegroup(scan, p)
	case tokenClose:
		// This might be part of niladic func(), so just let the caller decide
		// what to do.
		scan.push(tok)
		return nil, nil
	case tokenSep:
		if p.ceof {
			scan.push(tok)
			return nil, nil
		}
		return nil, &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenEOF:
		scan.push(tok)
		return nil, nil
	default:
		panic("abacus: unknown token: " + tok.String())
	}
	return n, nil
}

// parsegroup parses a parenthesized subexpression after its open parenthesis
// has been scanned, including the close parenthesis.
func parsegroup(scan *lexer, p *parsectx) (*node, error) {
	rhs, err := parseterm(scan, p, exprprec)
	if err != nil {
		return nil, err
	}
	end := scan.must()
	if end.kind != tokenClose {
		return nil, unexpectedEnd(end)
	}
	if rhs == nil {
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	return rhs, nil
}

// parsecall parses the arguments to a call of a given Func.
func parsecall(scan *lexer, p *parsectx, until operator, fn Func, name string) (*node, error) {
	// We respect whitespace here so that pi\nx doesn't string together
	// expressions.
	tok, err := scan.next(p.wseof)
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum, tokenIdent, tokenOp:
		switch {
		case fn.CanCall(1):
			// Single bare argument. sin x -> sin(x)
			scan.push(tok)
			if termprec.moreBinding(until) {
				until = termprec
			}
			rhs, err := parseterm(scan, p, until)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				scan.push(end)
				return nil, &CallError{Col: end.pos, Func: name}
			}
			return &node{kind: nodeArg, left: rhs}, nil
		case fn.CanCall(0):
			// No argument. pi x -> (pi) * (x)
			scan.push(tok)
		default:
			// Any other number of arguments requires parentheses.
			return nil, &CallError{Col: tok.pos, Func: name, Len: 1}
		}
	case tokenOpen:
		n, len, err := parsearglist(scan, p, tok)
		if err != nil {
			return nil, err
		}
		if !fn.CanCall(len) {
			return nil, &CallError{Col: tok.pos, Func: name, Len: len}
		}
		return n, nil
	case tokenClose, tokenSep, tokenEOF:
		if !fn.CanCall(0) {
			return nil, &CallError{Col: tok.pos, Func: name}
		}
		scan.push(tok)
	default:
		panic("abacus: unknown token: " + tok.String())
	}
	return nil, nil
}

// parsearglist parses a parenthesized list of zero or more args, including
// the close parenthesis.
func parsearglist(scan *lexer, p *parsectx, open lexToken) (*node, int, error) {
	var n node
	l := &n
	len := 0
	for {
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			// As a special case, reporting unbalanced parentheses is more
			// helpful than empty expression, if that's what we'd do here.
			if ee, _ := err.(*EmptyExpressionError); ee != nil {
				err = &BracketError{Col: ee.Col, Open: true}
			}
			return nil, 0, err
		}
		end := scan.must()
		switch end.kind {
		case tokenClose:
			if rhs == nil {
				// No expression parsed.
				// func() is allowed, but func(a,) isn't.
				if len != 0 {
					return nil, 0, &EmptyExpressionError{Col: end.pos, End: end.text}
				}
				return nil, 0, nil
			}
			l.right = &node{kind: nodeArg, left: rhs}
			return n.right, len + 1, nil
		case tokenSep:
			if rhs == nil {
				return nil, 0, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			len++
			l.right = &node{kind: nodeArg, left: rhs}
			l = l.right
		case tokenEOF:
			return nil, 0, &BracketError{Col: end.pos, Open: true}
		default:
			panic("abacus: parsearglist ended on non-end token " + end.String())
		}
	}
}

// unexpectedEnd returns an error appropriate for an unexpected token at the
// end of a subexpression.
func unexpectedEnd(tok lexToken) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open parenthesis that was not closed.
		return &BracketError{Col: tok.pos, Open: true}
	case tokenClose:
		return &BracketError{Col: tok.pos, Open: false}
	case tokenSep:
		// Separator outside a function call.
		return &SeparatorError{Col: tok.pos, Sep: tok.text}
	default:
		panic("abacus: it really should not have ended this way: " + tok.String())
	}
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the parsed expression, with
// parentheses grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Lower is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*", "×":
		return operator{5, false, nodeMul}
	case "/", "÷":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodeNop}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

var (
	// termprec is the default precedence for parsing terms. Its prec
	// should match that of multiplication.
	termprec = operator{5, true, nodeMul}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true, nodeNone}
)
