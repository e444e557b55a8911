package filter

import (
	"errors"
	"fmt"
)

// Input limits guarding against pathological expressions.
const (
	// MaxQueryLength is the maximum allowed expression length (1MB)
	MaxQueryLength = 1024 * 1024

	// MaxTokens is the maximum number of tokens in an expression
	MaxTokens = 1000

	// MaxExpressionDepth is the maximum parenthesis nesting depth
	MaxExpressionDepth = 100
)

var (
	ErrQueryTooLong      = errors.New("filter expression too long")
	ErrTooManyTokens     = errors.New("too many tokens in filter expression")
	ErrExpressionTooDeep = errors.New("filter expression nesting too deep")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrInvalidToken      = errors.New("invalid token")
)

// ValidateQuery checks the raw expression length.
func ValidateQuery(query string) error {
	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(query), MaxQueryLength)
	}
	return nil
}

// ValidateTokens validates token count and rejects a lexer error token.
func ValidateTokens(tokens []Token) error {
	if len(tokens) > MaxTokens {
		return fmt.Errorf("%w: %d tokens (max %d)", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	if n := len(tokens); n > 0 && tokens[n-1].Type == TokenError {
		return fmt.Errorf("%w: %s", ErrInvalidToken, tokens[n-1].Value)
	}
	return nil
}

// ExpressionDepthCounter tracks expression nesting depth
type ExpressionDepthCounter struct {
	depth    int
	maxDepth int
}

// NewExpressionDepthCounter creates a new depth counter
func NewExpressionDepthCounter() *ExpressionDepthCounter {
	return &ExpressionDepthCounter{maxDepth: MaxExpressionDepth}
}

// Enter increments depth and returns error if limit exceeded
func (c *ExpressionDepthCounter) Enter() error {
	c.depth++
	if c.depth > c.maxDepth {
		return fmt.Errorf("%w: %d (max %d)", ErrExpressionTooDeep, c.depth, c.maxDepth)
	}
	return nil
}

// Exit decrements depth
func (c *ExpressionDepthCounter) Exit() {
	c.depth--
}
