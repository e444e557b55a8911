package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vegasq/coursecat/course"
)

var dateLayouts = []string{"2006-01-02", "1/2/2006"}

// Parser builds an expression tree from tokens
type Parser struct {
	tokens       []Token
	pos          int
	depthCounter *ExpressionDepthCounter
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:       tokens,
		depthCounter: NewExpressionDepthCounter(),
	}
}

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() {
	p.pos++
}

// Parse parses a filter expression such as "year = 2 and participants > 1000".
func Parse(query string) (Expression, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	tokens := Tokenize(query)
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	p := NewParser(tokens)
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Type != TokenEOF {
		return nil, fmt.Errorf("unexpected %s %q after expression", tok.Type, tok.Value)
	}
	return expr, nil
}

// parseOr parses OR expressions (lowest precedence)
func (p *Parser) parseOr() (Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: TokenOr, Right: right}
	}

	return left, nil
}

// parseAnd parses AND expressions (higher precedence than OR)
func (p *Parser) parseAnd() (Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: TokenAnd, Right: right}
	}

	return left, nil
}

func (p *Parser) parsePrimary() (Expression, error) {
	if p.current().Type != TokenLParen {
		return p.parseComparison()
	}

	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	p.advance()
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.current().Type != TokenRParen {
		return nil, fmt.Errorf("expected ), got %s", p.current().Type)
	}
	p.advance()
	return expr, nil
}

func (p *Parser) parseComparison() (Expression, error) {
	tok := p.current()
	if tok.Type != TokenIdent {
		return nil, fmt.Errorf("expected column name, got %s %q", tok.Type, tok.Value)
	}
	col, ok := course.LookupColumn(strings.ToLower(tok.Value))
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownColumn, tok.Value, strings.Join(course.ColumnNames(), ", "))
	}
	p.advance()

	operator := p.current().Type
	switch operator {
	case TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual:
		p.advance()
	default:
		return nil, fmt.Errorf("expected comparison operator after %s, got %s", col.Name, operator)
	}

	value, err := p.parseValue(col)
	if err != nil {
		return nil, err
	}
	p.advance()

	return &ComparisonExpr{Column: col, Operator: operator, Value: value}, nil
}

// parseValue converts the current literal to the Go type of col.
func (p *Parser) parseValue(col course.Column) (interface{}, error) {
	tok := p.current()

	switch col.Type {
	case course.TypeInt, course.TypeFloat:
		if tok.Type != TokenNumber {
			return nil, fmt.Errorf("%w: column %s needs a number, got %s", ErrTypeMismatch, col.Name, tok.Type)
		}
		if col.Type == course.TypeInt {
			if v, err := strconv.ParseInt(tok.Value, 10, 64); err == nil {
				return v, nil
			}
		}
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %s", tok.Value)
		}
		return v, nil

	case course.TypeDate:
		if tok.Type != TokenString {
			return nil, fmt.Errorf("%w: column %s needs a quoted date, got %s", ErrTypeMismatch, col.Name, tok.Type)
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, tok.Value); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("invalid date %q for column %s", tok.Value, col.Name)

	default:
		if tok.Type != TokenString {
			return nil, fmt.Errorf("%w: column %s needs a quoted string, got %s", ErrTypeMismatch, col.Name, tok.Type)
		}
		return tok.Value, nil
	}
}
