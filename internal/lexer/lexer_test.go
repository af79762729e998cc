package lexer

import "testing"

func TestBasicTokens(t *testing.T) {
	input := `x * ( y + 2 ) ; 3`

	tests := []struct {
		expectedType  TokenType
		expectedValue string
	}{
		{TokenIdentifier, "x"},
		{TokenStar, "*"},
		{TokenLParen, "("},
		{TokenIdentifier, "y"},
		{TokenPlus, "+"},
		{TokenNumber, "2"},
		{TokenRParen, ")"},
		{TokenSemicolon, ";"},
		{TokenNumber, "3"},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedValue {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Literal)
		}
	}
}

func TestKeywordOperators(t *testing.T) {
	input := `a div b mod divisor`

	tests := []struct {
		expectedType  TokenType
		expectedValue string
	}{
		{TokenIdentifier, "a"},
		{TokenDiv, "div"},
		{TokenIdentifier, "b"},
		{TokenMod, "mod"},
		{TokenIdentifier, "divisor"}, // keyword prefix does not make a keyword
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedValue {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Literal)
		}
	}
}

func TestOperatorsAndPunctuation(t *testing.T) {
	input := `+-*/();`

	tests := []struct {
		expectedType  TokenType
		expectedValue string
	}{
		{TokenPlus, "+"},
		{TokenMinus, "-"},
		{TokenStar, "*"},
		{TokenSlash, "/"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenSemicolon, ";"},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedValue {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Literal)
		}
	}
}

func TestMultiCharacterLexemes(t *testing.T) {
	input := `foo42 + 12345`

	tests := []struct {
		expectedType  TokenType
		expectedValue string
	}{
		{TokenIdentifier, "foo42"},
		{TokenPlus, "+"},
		{TokenNumber, "12345"},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedValue {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Literal)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	input := "ab + 1\n  cd"

	tests := []struct {
		expectedType   TokenType
		expectedLine   int
		expectedColumn int
		expectedOffset int
	}{
		{TokenIdentifier, 1, 1, 0},
		{TokenPlus, 1, 4, 3},
		{TokenNumber, 1, 6, 5},
		{TokenIdentifier, 2, 3, 9},
		{TokenEOF, 2, 5, 11},
	}

	l := NewWithFilename(input, "test.expr")

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		pos := tok.Pos()
		if pos.Line != tt.expectedLine || pos.Column != tt.expectedColumn || pos.Offset != tt.expectedOffset {
			t.Fatalf("tests[%d] - position wrong. expected=%d:%d@%d, got=%d:%d@%d",
				i, tt.expectedLine, tt.expectedColumn, tt.expectedOffset,
				pos.Line, pos.Column, pos.Offset)
		}

		if pos.Filename != "test.expr" {
			t.Fatalf("tests[%d] - filename wrong. expected=%q, got=%q",
				i, "test.expr", pos.Filename)
		}
	}
}

func TestInvalidCharacter(t *testing.T) {
	input := `a $ b`

	l := New(input)

	tok := l.NextToken()
	if tok.Type != TokenIdentifier {
		t.Fatalf("tokentype wrong. expected=%q, got=%q", TokenIdentifier, tok.Type)
	}

	tok = l.NextToken()
	if tok.Type != TokenError {
		t.Fatalf("tokentype wrong. expected=%q, got=%q", TokenError, tok.Type)
	}
	if tok.Literal != "$" {
		t.Fatalf("literal wrong. expected=%q, got=%q", "$", tok.Literal)
	}

	// Scanning continues past the bad character.
	tok = l.NextToken()
	if tok.Type != TokenIdentifier || tok.Literal != "b" {
		t.Fatalf("expected identifier %q after error token, got %s", "b", tok)
	}
}

func TestEmptyInput(t *testing.T) {
	l := New("")

	for i := 0; i < 3; i++ {
		tok := l.NextToken()
		if tok.Type != TokenEOF {
			t.Fatalf("call %d - tokentype wrong. expected=%q, got=%q",
				i, TokenEOF, tok.Type)
		}
	}
}

func TestWhitespaceOnlyInput(t *testing.T) {
	l := New(" \t\r\n  ")

	tok := l.NextToken()
	if tok.Type != TokenEOF {
		t.Fatalf("tokentype wrong. expected=%q, got=%q", TokenEOF, tok.Type)
	}
}
