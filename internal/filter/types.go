// Package filter implements the WHERE-style predicate language used to
// narrow a course dataset before it is analysed.
//
// Expressions compare course columns with literals and combine the
// comparisons with AND / OR (AND binds tighter) and parentheses:
//
//	expr, err := filter.Parse("year >= 2 and (institution = 'MITx' or participants > 50000)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	subset := filter.Apply(courses, expr)
//
// Column names are the snake_case names of course.Columns. Numeric columns
// take number literals, text columns take quoted strings and launch_date
// takes a quoted date ('2013-03-02' or '03/02/2013'). Type mismatches and
// unknown columns are reported by Parse, so evaluation cannot fail.
package filter

import (
	"time"

	"github.com/vegasq/coursecat/course"
)

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenAnd TokenType = iota
	TokenOr

	// Operators
	TokenEqual        // =
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Grouping
	TokenLParen
	TokenRParen

	// Literals
	TokenString
	TokenNumber
	TokenIdent

	// Special
	TokenEOF
	TokenError
)

var tokenNames = map[TokenType]string{
	TokenAnd:          "AND",
	TokenOr:           "OR",
	TokenEqual:        "=",
	TokenNotEqual:     "!=",
	TokenLess:         "<",
	TokenGreater:      ">",
	TokenLessEqual:    "<=",
	TokenGreaterEqual: ">=",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenString:       "string",
	TokenNumber:       "number",
	TokenIdent:        "identifier",
	TokenEOF:          "end of input",
	TokenError:        "invalid character",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}

// Expression is a boolean predicate over one course row.
type Expression interface {
	Evaluate(c *course.Course) bool
}

// BinaryExpr represents a binary expression (AND/OR)
type BinaryExpr struct {
	Left     Expression
	Operator TokenType // TokenAnd or TokenOr
	Right    Expression
}

// ComparisonExpr compares one column with a literal. Value holds an int64,
// float64, string or time.Time matching the column type.
type ComparisonExpr struct {
	Column   course.Column
	Operator TokenType
	Value    interface{}
}

// Evaluate evaluates a binary expression
func (b *BinaryExpr) Evaluate(c *course.Course) bool {
	switch b.Operator {
	case TokenAnd:
		return b.Left.Evaluate(c) && b.Right.Evaluate(c)
	case TokenOr:
		return b.Left.Evaluate(c) || b.Right.Evaluate(c)
	default:
		return false
	}
}

// Evaluate evaluates a comparison expression
func (e *ComparisonExpr) Evaluate(c *course.Course) bool {
	value, ok := c.Field(e.Column.Name)
	if !ok {
		return false
	}

	switch left := value.(type) {
	case string:
		return compareOrdered(left, e.Operator, e.Value.(string))
	case time.Time:
		return compareOrdered(left.Unix(), e.Operator, e.Value.(time.Time).Unix())
	default:
		l, _ := toFloat64(left)
		r, _ := toFloat64(e.Value)
		return compareOrdered(l, e.Operator, r)
	}
}
