// Package lexer implements the lexical analyzer for infix arithmetic
// expressions. It turns raw input text into a finite stream of typed
// tokens terminated by exactly one EOF token; the translator in
// internal/parser consumes that stream with one token of lookahead.
package lexer

import (
	"fmt"

	"github.com/rpnlabs/infix2postfix/internal/position"
)

// TokenType represents the type of a token.
type TokenType int

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token types.
const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Operands
	TokenIdentifier
	TokenNumber

	// Operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenDiv
	TokenMod

	// Punctuation
	TokenLParen
	TokenRParen
	TokenSemicolon
)

// tokenNames provides string representations for token types.
var tokenNames = map[TokenType]string{
	TokenEOF:   "EOF",
	TokenError: "ERROR",

	TokenIdentifier: "IDENTIFIER",
	TokenNumber:     "NUMBER",

	TokenPlus:  "PLUS",
	TokenMinus: "MINUS",
	TokenStar:  "STAR",
	TokenSlash: "SLASH",
	TokenDiv:   "DIV",
	TokenMod:   "MOD",

	TokenLParen:    "LPAREN",
	TokenRParen:    "RPAREN",
	TokenSemicolon: "SEMICOLON",
}

// keywords maps the word-shaped operators to their token types. An
// identifier whose lexeme appears here is reclassified before it is
// returned, so `div` and `mod` are never Identifier tokens.
var keywords = map[string]TokenType{
	"div": TokenDiv,
	"mod": TokenMod,
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Span    position.Span
}

// String returns a string representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q, Pos: %s}",
		t.Type, t.Literal, t.Span.Start)
}

// Pos returns the position of the token's first character.
func (t Token) Pos() position.Position {
	return t.Span.Start
}

// Lexer represents the lexical analyzer. It scans the input a byte at a
// time; the expression language is pure ASCII, so no rune decoding is
// needed.
type Lexer struct {
	input    string
	pos      int  // current position in input (points to current char)
	readPos  int  // current reading position in input (after current char)
	ch       byte // current char under examination
	line     int  // 1-based line of the current char
	column   int  // 1-based column of the current char
	filename string
}

// New creates a new lexer instance for anonymous input.
func New(input string) *Lexer {
	return NewWithFilename(input, "")
}

// NewWithFilename creates a new lexer instance with a source name for
// error reporting.
func NewWithFilename(input, filename string) *Lexer {
	l := &Lexer{
		input:    input,
		line:     1,
		column:   0,
		filename: filename,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL represents end-of-input
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
}

// position returns the position of the current character.
func (l *Lexer) position() position.Position {
	return position.Position{
		Filename: l.filename,
		Line:     l.line,
		Column:   l.column,
		Offset:   l.pos,
	}
}

// skipWhitespace skips spaces, tabs and line breaks. Newlines carry no
// meaning in this grammar; only `;` separates expressions.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// NextToken scans and returns the next token. Once end-of-input is
// reached it returns an EOF token on every subsequent call.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.position()

	switch {
	case l.ch == 0:
		return l.token(TokenEOF, "", start)
	case l.ch == '+':
		return l.tokenAdvance(TokenPlus, start)
	case l.ch == '-':
		return l.tokenAdvance(TokenMinus, start)
	case l.ch == '*':
		return l.tokenAdvance(TokenStar, start)
	case l.ch == '/':
		return l.tokenAdvance(TokenSlash, start)
	case l.ch == '(':
		return l.tokenAdvance(TokenLParen, start)
	case l.ch == ')':
		return l.tokenAdvance(TokenRParen, start)
	case l.ch == ';':
		return l.tokenAdvance(TokenSemicolon, start)
	case isDigit(l.ch):
		return l.token(TokenNumber, l.readNumber(), start)
	case isLetter(l.ch):
		literal := l.readIdentifier()
		if tt, ok := keywords[literal]; ok {
			return l.token(tt, literal, start)
		}
		return l.token(TokenIdentifier, literal, start)
	default:
		return l.tokenAdvance(TokenError, start)
	}
}

// token builds a token whose lexeme has already been consumed.
func (l *Lexer) token(tt TokenType, literal string, start position.Position) Token {
	return Token{
		Type:    tt,
		Literal: literal,
		Span:    position.Span{Start: start, End: l.position()},
	}
}

// tokenAdvance builds a single-character token and consumes it.
func (l *Lexer) tokenAdvance(tt TokenType, start position.Position) Token {
	literal := string(l.ch)
	l.readChar()
	return l.token(tt, literal, start)
}

// readNumber reads a run of decimal digits.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readIdentifier reads a letter followed by letters and digits.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
