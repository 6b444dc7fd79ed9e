package gocalc

import (
	"math/big"
)

// DefaultMaxDepth is the bracket nesting limit used when Parser.MaxDepth is
// zero.
const DefaultMaxDepth = 1000

// Parser turns bracketed infix expressions into trees and values.
type Parser struct {
	// MaxDepth limits bracket nesting. Zero means DefaultMaxDepth and a
	// negative value disables the limit.
	MaxDepth int
}

func NewParser() *Parser {
	return &Parser{
		MaxDepth: DefaultMaxDepth,
	}
}

// AddBrackets wraps s in a pair of brackets unless it already starts with one.
func AddBrackets(s string) string {
	if s == "" || s[0] != '(' {
		return "(" + s + ")"
	}
	return s
}

// Parse evaluates s with the default parser.
func Parse(s string) (*big.Int, error) {
	return NewParser().Parse(s)
}

// Tokenize breaks s with the default parser. See Parser.Tokenize.
func Tokenize(s string) (*BinaryOp, error) {
	return NewParser().Tokenize(s)
}

// Parse brackets, tokenizes, validates and evaluates s.
func (p *Parser) Parse(s string) (*big.Int, error) {
	node, err := p.Tree(s)
	if err != nil {
		return nil, err
	}
	return Eval(node)
}

// Tree returns the validated tree for s without evaluating it.
func (p *Parser) Tree(s string) (*BinaryOp, error) {
	node, err := p.Tokenize(AddBrackets(s))
	if err != nil {
		return nil, err
	}
	if err := Validate(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Tokenize breaks a bracketed infix expression such as "((45*66)+(66*11))"
// into a tree. Any failure is reported as a *ParseError for the whole of s.
func (p *Parser) Tokenize(s string) (*BinaryOp, error) {
	t := tokenizer{
		maxDepth: p.maxDepth(),
	}
	node, err := t.tokenize(s, 1)
	if err != nil {
		return nil, &ParseError{Expr: s, Err: err}
	}
	return node, nil
}

func (p *Parser) maxDepth() int {
	if p.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return p.MaxDepth
}

type tokenizer struct {
	maxDepth int
}

func (t *tokenizer) tokenize(s string, depth int) (*BinaryOp, error) {
	if t.maxDepth > 0 && depth > t.maxDepth {
		return nil, ErrTooDeep
	}
	if len(s) < 2 {
		return nil, ErrUnexpectedEnd
	}
	if s[0] != '(' {
		return nil, &wantError{want: ErrWantBracket, found: s[:1]}
	}
	if s[len(s)-1] != ')' {
		return nil, &wantError{want: ErrWantBracket, found: s[len(s)-1:]}
	}
	body := s[1 : len(s)-1]
	if body == "" {
		return nil, ErrUnexpectedEnd
	}

	node := &BinaryOp{}
	i := 0
	if body[0] == '(' {
		end, err := matchBracket(body)
		if err != nil {
			return nil, err
		}
		left, err := t.tokenize(body[:end], depth+1)
		if err != nil {
			return nil, err
		}
		node.Left = left
		i = end
	} else {
		for i < len(body) && isDigit(body[i]) {
			i++
		}
		if i == 0 {
			return nil, &wantError{want: ErrWantNumber, found: body[:1]}
		}
		node.Left = Numeral(body[:i])
	}

	i = skipSpace(body, i)
	if i >= len(body) {
		return nil, ErrUnexpectedEnd
	}
	if !IsOperator(rune(body[i])) {
		return nil, &wantError{want: ErrWantOperator, found: body[i : i+1]}
	}
	node.Op = Operator(body[i])

	i = skipSpace(body, i+1)
	if i >= len(body) {
		return nil, ErrUnexpectedEnd
	}
	rest := body[i:]
	if rest[0] == '(' {
		right, err := t.tokenize(rest, depth+1)
		if err != nil {
			return nil, err
		}
		node.Right = right
	} else {
		if !isNumeral(rest) {
			return nil, &wantError{want: ErrWantNumber, found: rest}
		}
		node.Right = Numeral(rest)
	}
	return node, nil
}

// matchBracket returns the index just past the bracket closing s[0].
func matchBracket(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			n++
		case ')':
			n--
		}
		if n == 0 {
			return i + 1, nil
		}
	}
	return 0, ErrUnbalanced
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}
