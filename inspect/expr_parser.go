package inspect

import (
	"fmt"

	"github.com/AaronKutch/awint/bits"
)

// ExprParser evaluates inspector expressions over arbitrary-width values
// using precedence climbing. Every intermediate result lives at the
// session width; division and right shift follow the session signedness.
type ExprParser struct {
	tokens  []ExprToken
	pos     int
	session *Session
}

// NewExprParser creates a new expression parser over a token stream
func NewExprParser(tokens []ExprToken, session *Session) *ExprParser {
	return &ExprParser{
		tokens:  tokens,
		pos:     0,
		session: session,
	}
}

// currentToken returns the current token
func (p *ExprParser) currentToken() ExprToken {
	if p.pos >= len(p.tokens) {
		return ExprToken{Type: ExprTokenEOF}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *ExprParser) advance() {
	p.pos++
}

// operatorPrecedence returns the precedence of an operator
// Higher numbers = higher precedence
func operatorPrecedence(op string) int {
	switch op {
	case "|":
		return 1
	case "^":
		return 2
	case "&":
		return 3
	case "<<", ">>":
		return 4
	case "+", "-":
		return 5
	case "*", "/", "%":
		return 6
	default:
		return 0
	}
}

// Parse parses the expression and returns the result
func (p *ExprParser) Parse() (*bits.Ext, error) {
	result, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	// Should be at EOF
	if p.currentToken().Type != ExprTokenEOF {
		return nil, fmt.Errorf("unexpected token: %s", p.currentToken().Value)
	}

	return result, nil
}

// parseExpression parses an expression with precedence climbing
func (p *ExprParser) parseExpression(minPrecedence int) (*bits.Ext, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.currentToken()
		if tok.Type != ExprTokenOperator {
			break
		}

		precedence := operatorPrecedence(tok.Value)
		if precedence < minPrecedence || precedence == 0 {
			break
		}

		op := tok.Value
		p.advance() // consume operator

		right, err := p.parseExpression(precedence + 1)
		if err != nil {
			return nil, err
		}

		left, err = p.applyOperator(left, right, op)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parsePrimary parses a primary expression: a literal, a variable, a
// parenthesized expression, or a unary operator application
func (p *ExprParser) parsePrimary() (*bits.Ext, error) {
	tok := p.currentToken()

	switch tok.Type {
	case ExprTokenNumber:
		p.advance()
		return p.session.literal(tok.Value)

	case ExprTokenIdent:
		p.advance()
		v, ok := p.session.Vars[tok.Value]
		if !ok {
			return nil, fmt.Errorf("undefined variable: %s", tok.Value)
		}
		return p.session.clone(v)

	case ExprTokenLParen:
		p.advance()
		result, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if p.currentToken().Type != ExprTokenRParen {
			return nil, fmt.Errorf("expected closing parenthesis")
		}
		p.advance()
		return result, nil

	case ExprTokenOperator:
		switch tok.Value {
		case "-":
			p.advance()
			v, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			v.Bits().Neg(true)
			return v, nil
		case "~":
			p.advance()
			v, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			v.Bits().Not()
			return v, nil
		}
		return nil, fmt.Errorf("unexpected operator: %s", tok.Value)

	default:
		return nil, fmt.Errorf("unexpected token: %s", tok.Type)
	}
}

// applyOperator applies a binary operator, consuming both operands
func (p *ExprParser) applyOperator(left, right *bits.Ext, op string) (*bits.Ext, error) {
	l, r := left.Bits(), right.Bits()
	switch op {
	case "+":
		return left, l.Add(r)
	case "-":
		return left, l.Sub(r)
	case "&":
		return left, l.And(r)
	case "|":
		return left, l.Or(r)
	case "^":
		return left, l.Xor(r)

	case "<<", ">>":
		s := r.ToU64()
		if r.Sig() > 63 || s >= uint64(l.Bw()) {
			return nil, fmt.Errorf("shift amount %s out of range for width %d", mustFormat(r), l.Bw())
		}
		if op == "<<" {
			return left, l.Shl(int(s))
		}
		if p.session.Signed {
			return left, l.Ashr(int(s))
		}
		return left, l.Lshr(int(s))

	case "*":
		out, err := bits.NewExt(l.Bw())
		if err != nil {
			return nil, err
		}
		if err := out.Bits().Mul(l, r); err != nil {
			return nil, err
		}
		return out, nil

	case "/", "%":
		q, err := bits.NewExt(l.Bw())
		if err != nil {
			return nil, err
		}
		rem, err := bits.NewExt(l.Bw())
		if err != nil {
			return nil, err
		}
		if p.session.Signed {
			err = bits.IDivide(q.Bits(), rem.Bits(), l, r)
		} else {
			err = bits.UDivide(q.Bits(), rem.Bits(), l, r)
		}
		if err != nil {
			return nil, err
		}
		if op == "/" {
			return q, nil
		}
		return rem, nil

	default:
		return nil, fmt.Errorf("unknown operator: %s", op)
	}
}

// mustFormat renders a value in decimal for error messages
func mustFormat(b *bits.Bits) string {
	s, err := b.Format(10, false, false)
	if err != nil {
		return "?"
	}
	return s
}
