package filter

import (
	"testing"
)

func TestLexer_Tokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "case insensitive keywords",
			input: "AND or And",
			expected: []Token{
				{Type: TokenAnd, Value: "AND"},
				{Type: TokenOr, Value: "or"},
				{Type: TokenAnd, Value: "And"},
				{Type: TokenEOF},
			},
		},
		{
			name:  "comparison",
			input: "participants >= 1000",
			expected: []Token{
				{Type: TokenIdent, Value: "participants"},
				{Type: TokenGreaterEqual, Value: ">="},
				{Type: TokenNumber, Value: "1000"},
				{Type: TokenEOF},
			},
		},
		{
			name:  "all operators",
			input: "= != < > <= >=",
			expected: []Token{
				{Type: TokenEqual, Value: "="},
				{Type: TokenNotEqual, Value: "!="},
				{Type: TokenLess, Value: "<"},
				{Type: TokenGreater, Value: ">"},
				{Type: TokenLessEqual, Value: "<="},
				{Type: TokenGreaterEqual, Value: ">="},
				{Type: TokenEOF},
			},
		},
		{
			name:  "strings and parentheses",
			input: `(institution = 'MITx') or course_subject = "Computer Science"`,
			expected: []Token{
				{Type: TokenLParen, Value: "("},
				{Type: TokenIdent, Value: "institution"},
				{Type: TokenEqual, Value: "="},
				{Type: TokenString, Value: "MITx"},
				{Type: TokenRParen, Value: ")"},
				{Type: TokenOr, Value: "or"},
				{Type: TokenIdent, Value: "course_subject"},
				{Type: TokenEqual, Value: "="},
				{Type: TokenString, Value: "Computer Science"},
				{Type: TokenEOF},
			},
		},
		{
			name:  "negative and decimal numbers",
			input: "-3 4.25",
			expected: []Token{
				{Type: TokenNumber, Value: "-3"},
				{Type: TokenNumber, Value: "4.25"},
				{Type: TokenEOF},
			},
		},
		{
			name:  "escaped quote",
			input: `'Bachelor\'s'`,
			expected: []Token{
				{Type: TokenString, Value: "Bachelor's"},
				{Type: TokenEOF},
			},
		},
		{
			name:  "multi-byte string",
			input: "instructors = 'José Ortega'",
			expected: []Token{
				{Type: TokenIdent, Value: "instructors"},
				{Type: TokenEqual, Value: "="},
				{Type: TokenString, Value: "José Ortega"},
				{Type: TokenEOF},
			},
		},
		{
			name:  "unterminated string",
			input: "institution = 'abc",
			expected: []Token{
				{Type: TokenIdent, Value: "institution"},
				{Type: TokenEqual, Value: "="},
				{Type: TokenError, Value: "unterminated string 'abc"},
			},
		},
		{
			name:  "stops at invalid character",
			input: "year # 2",
			expected: []Token{
				{Type: TokenIdent, Value: "year"},
				{Type: TokenError, Value: "#"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != len(tt.expected) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tt.expected), len(tokens), tokens)
			}
			for i, tok := range tokens {
				if tok.Type != tt.expected[i].Type {
					t.Errorf("token %d: expected type %v, got %v", i, tt.expected[i].Type, tok.Type)
				}
				if tok.Value != tt.expected[i].Value {
					t.Errorf("token %d: expected value %q, got %q", i, tt.expected[i].Value, tok.Value)
				}
			}
		})
	}
}
