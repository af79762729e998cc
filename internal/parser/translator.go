// Package parser implements the recursive descent translator that
// rewrites infix arithmetic expressions into postfix notation.
//
// The grammar is the right-recursive form obtained by eliminating left
// recursion from the usual expression grammar:
//
//	exprList → additive exprTail | ε
//	exprTail → ';' exprList | ε
//	additive → multiplicative { ('+' | '-') multiplicative }
//	multiplicative → primary { ('*' | '/' | 'div' | 'mod') primary }
//	primary → '(' additive ')' | identifier | number
//
// The transformation keeps operands in left-to-right order, and each
// operator is emitted after its right operand has been parsed, so the
// output is the postfix form without ever materializing a parse tree:
// the call stack of the grammar procedures is the implicit tree, and
// emission order is its post-order traversal. Parenthesis nesting is
// the only recursion left after the tail rules are turned into loops,
// so call-stack depth is bounded by the nesting depth of the input.
package parser

import (
	"fmt"

	"github.com/rpnlabs/infix2postfix/internal/lexer"
)

// ErrorKind identifies the grammar position a syntax error was
// detected at.
type ErrorKind int

const (
	// ErrorUnexpectedToken reports a token that cannot start an operand.
	ErrorUnexpectedToken ErrorKind = iota
	// ErrorUnmatchedParen reports a '(' whose ')' never arrived.
	ErrorUnmatchedParen
	// ErrorExpectedEndOfInput reports trailing tokens after a complete
	// statement list.
	ErrorExpectedEndOfInput
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorUnexpectedToken:
		return "unexpected token"
	case ErrorUnmatchedParen:
		return "unmatched parenthesis"
	case ErrorExpectedEndOfInput:
		return "expected end of input"
	default:
		return fmt.Sprintf("unknown error kind (%d)", int(k))
	}
}

// SyntaxError describes the first (and only) syntax error of a failed
// translation: the kind of mismatch and the offending token. The token
// carries its source position, attached upstream by the lexer.
type SyntaxError struct {
	Kind  ErrorKind
	Token lexer.Token
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	switch {
	case e.Token.Type == lexer.TokenEOF:
		return fmt.Sprintf("syntax error at %s: %s, reached end of input",
			e.Token.Pos(), e.Kind)
	case e.Token.Literal != "":
		return fmt.Sprintf("syntax error at %s: %s %s %q",
			e.Token.Pos(), e.Kind, e.Token.Type, e.Token.Literal)
	default:
		return fmt.Sprintf("syntax error at %s: %s %s",
			e.Token.Pos(), e.Kind, e.Token.Type)
	}
}

// Translator translates one statement list from infix to postfix. A
// Translator drives its lexer with a single token of lookahead and is
// good for exactly one Translate call; it keeps no state across
// invocations.
type Translator struct {
	lexer     *lexer.Lexer
	lookahead lexer.Token
	out       []string
	onEmit    func(string)
}

// New creates a translator reading tokens from l.
func New(l *lexer.Lexer) *Translator {
	return &Translator{lexer: l}
}

// OnEmit registers fn to be called once per emitted postfix token, at
// the moment it is emitted. The full output is still collected and
// returned by Translate; the callback exists for callers that want to
// observe emission incrementally.
func (t *Translator) OnEmit(fn func(string)) {
	t.onEmit = fn
}

// Translate consumes the entire token stream and returns the emitted
// postfix tokens in order. On failure it returns the first syntax
// error as a *SyntaxError together with whatever output was emitted
// before the failure point.
func (t *Translator) Translate() ([]string, error) {
	t.next()
	if err := t.exprList(); err != nil {
		return t.out, err
	}
	if t.lookahead.Type != lexer.TokenEOF {
		return t.out, &SyntaxError{Kind: ErrorExpectedEndOfInput, Token: t.lookahead}
	}
	return t.out, nil
}

// TranslateString is a convenience wrapper that lexes src and
// translates it in one call. The filename may be empty.
func TranslateString(src, filename string) ([]string, error) {
	return New(lexer.NewWithFilename(src, filename)).Translate()
}

// next advances the lookahead to the next token.
func (t *Translator) next() {
	t.lookahead = t.lexer.NextToken()
}

// emit appends s to the output sequence.
func (t *Translator) emit(s string) {
	t.out = append(t.out, s)
	if t.onEmit != nil {
		t.onEmit(s)
	}
}

// exprList parses a possibly empty, semicolon-separated statement
// list. An immediately following end of input matches the empty
// alternative, which makes both empty input and a trailing separator
// legal.
func (t *Translator) exprList() error {
	if t.lookahead.Type == lexer.TokenEOF {
		return nil
	}
	if err := t.additive(); err != nil {
		return err
	}
	return t.exprTail()
}

// exprTail parses the remaining `';' exprList` chain. The tail rule is
// right-recursive, so the recursion is replaced with a loop.
func (t *Translator) exprTail() error {
	for t.lookahead.Type == lexer.TokenSemicolon {
		t.next()
		if t.lookahead.Type == lexer.TokenEOF {
			return nil
		}
		if err := t.additive(); err != nil {
			return err
		}
	}
	return nil
}

// additive parses a chain of '+' and '-' operations. The operator is
// emitted after its right operand, which keeps the chain
// left-associative in the output.
func (t *Translator) additive() error {
	if err := t.multiplicative(); err != nil {
		return err
	}
	for t.lookahead.Type == lexer.TokenPlus || t.lookahead.Type == lexer.TokenMinus {
		op := t.lookahead.Literal
		t.next()
		if err := t.multiplicative(); err != nil {
			return err
		}
		t.emit(op)
	}
	return nil
}

// multiplicative parses a chain of '*', '/', 'div' and 'mod'
// operations. The division-family operators keep their own symbols in
// the output; none of them is normalized to another.
func (t *Translator) multiplicative() error {
	if err := t.primary(); err != nil {
		return err
	}
	for isMulOp(t.lookahead.Type) {
		op := t.lookahead.Literal
		t.next()
		if err := t.primary(); err != nil {
			return err
		}
		t.emit(op)
	}
	return nil
}

// primary parses a parenthesized expression or a single operand.
// Operand lexemes are emitted verbatim.
func (t *Translator) primary() error {
	switch t.lookahead.Type {
	case lexer.TokenLParen:
		t.next()
		if err := t.additive(); err != nil {
			return err
		}
		if t.lookahead.Type != lexer.TokenRParen {
			return &SyntaxError{Kind: ErrorUnmatchedParen, Token: t.lookahead}
		}
		t.next()
		return nil
	case lexer.TokenIdentifier, lexer.TokenNumber:
		t.emit(t.lookahead.Literal)
		t.next()
		return nil
	default:
		return &SyntaxError{Kind: ErrorUnexpectedToken, Token: t.lookahead}
	}
}

// isMulOp reports whether tt is a multiplicative-level operator.
func isMulOp(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenStar, lexer.TokenSlash, lexer.TokenDiv, lexer.TokenMod:
		return true
	default:
		return false
	}
}
