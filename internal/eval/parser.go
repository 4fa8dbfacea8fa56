package eval

import (
	"fmt"
)

// Parser is a recursive descent parser over the four arithmetic operators.
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := '-' primary | primary
//	primary := number
type Parser struct {
	tokens []Token
	pos    int
}

// Parse tokenizes and parses input into an expression tree
func Parse(input string) (Expr, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	return p.Parse()
}

// Parse parses the whole token stream
func (p *Parser) Parse() (Expr, error) {
	if p.peek().Type == TokenEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, unexpected(tok)
	}
	return expr, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op byte
		switch p.peek().Type {
		case TokenPlus:
			op = '+'
		case TokenMinus:
			op = '-'
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op byte
		switch p.peek().Type {
		case TokenStar:
			op = '*'
		case TokenSlash:
			op = '/'
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() (Expr, error) {
	if p.peek().Type == TokenMinus {
		p.next()
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &Negate{Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.next()
	if tok.Type != TokenNumber {
		return nil, unexpected(tok)
	}
	return parseLiteral(tok.Literal)
}

func unexpected(tok Token) error {
	if tok.Type == TokenEOF {
		return fmt.Errorf("%w: unexpected end of input", ErrMalformedExpression)
	}
	return fmt.Errorf("%w: unexpected %q at %d", ErrMalformedExpression, tok.Literal, tok.Pos)
}
