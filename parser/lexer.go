package parser

import (
	"unicode/utf8"

	"github.com/marcuscaisey/dartcomplete/token"
)

const eof = -1

// errorHandler is the function which handles syntax errors encountered during lexing.
// It's passed the offending token and a format string and arguments to construct an error message from.
type errorHandler func(tok token.Token, format string, args ...any)

// lexer converts Dart source code into lexical tokens.
// Tokens are read from the lexer using the Next method. Comments and whitespace are skipped.
// Syntax errors are handled by calling the error handler function which can be set using SetErrorHandler. The default
// error handler is a no-op.
type lexer struct {
	src        []byte
	errHandler errorHandler

	ch         rune // character currently being considered
	offset     int  // offset of character currently being considered
	readOffset int  // offset of next character to be read
}

// newLexer constructs a lexer which will lex the given source code.
func newLexer(src []byte) *lexer {
	l := &lexer{
		src:        src,
		errHandler: func(token.Token, string, ...any) {},
	}
	l.next()
	return l
}

// SetErrorHandler sets the error handler function which will be called when a syntax error is encountered.
func (l *lexer) SetErrorHandler(errHandler errorHandler) {
	l.errHandler = errHandler
}

// Next returns the next token. An EOF token is returned if the end of the source code has been reached. Characters
// which can't begin a token are reported to the error handler and skipped.
func (l *lexer) Next() token.Token {
	for {
		tok, ok := l.scan()
		if ok {
			return tok
		}
	}
}

func (l *lexer) scan() (token.Token, bool) {
	l.skipWhitespaceAndComments()

	startOffset := l.offset
	tok := token.Token{Offset: l.offset}

	switch {
	case l.ch == eof:
		tok.Type = token.EOF
		return tok, true
	case l.ch == ';':
		tok.Type = token.Semicolon
	case l.ch == ',':
		tok.Type = token.Comma
	case l.ch == '.':
		tok.Type = token.Dot
	case l.ch == '=':
		tok.Type = token.Equal
		switch l.peek() {
		case '=':
			l.next()
			tok.Type = token.EqualEqual
		case '>':
			l.next()
			tok.Type = token.Arrow
		}
	case l.ch == '+':
		tok.Type = token.Plus
		switch l.peek() {
		case '+':
			l.next()
			tok.Type = token.PlusPlus
		case '=':
			l.next()
			tok.Type = token.PlusEqual
		}
	case l.ch == '-':
		tok.Type = token.Minus
		switch l.peek() {
		case '-':
			l.next()
			tok.Type = token.MinusMinus
		case '=':
			l.next()
			tok.Type = token.MinusEqual
		}
	case l.ch == '*':
		tok.Type = token.Asterisk
	case l.ch == '/':
		tok.Type = token.Slash
	case l.ch == '%':
		tok.Type = token.Percent
	case l.ch == '<':
		tok.Type = token.Less
		if l.peek() == '=' {
			l.next()
			tok.Type = token.LessEqual
		}
	case l.ch == '>':
		tok.Type = token.Greater
		if l.peek() == '=' {
			l.next()
			tok.Type = token.GreaterEqual
		}
	case l.ch == '!':
		tok.Type = token.Bang
		if l.peek() == '=' {
			l.next()
			tok.Type = token.BangEqual
		}
	case l.ch == '&' && l.peek() == '&':
		l.next()
		tok.Type = token.AmpAmp
	case l.ch == '|' && l.peek() == '|':
		l.next()
		tok.Type = token.PipePipe
	case l.ch == '?':
		tok.Type = token.Question
	case l.ch == ':':
		tok.Type = token.Colon
	case l.ch == '(':
		tok.Type = token.LeftParen
	case l.ch == ')':
		tok.Type = token.RightParen
	case l.ch == '{':
		tok.Type = token.LeftBrace
	case l.ch == '}':
		tok.Type = token.RightBrace
	case l.ch == '[':
		tok.Type = token.LeftBracket
	case l.ch == ']':
		tok.Type = token.RightBracket
	case l.ch == '"' || l.ch == '\'':
		terminated := l.consumeString()
		tok.Type = token.String
		tok.Lexeme = string(l.src[startOffset:l.offset])
		if !terminated {
			l.errHandler(tok, "unterminated string literal")
		}
		return tok, true
	case isDigit(l.ch):
		tok.Type = l.consumeNumber()
		tok.Lexeme = string(l.src[startOffset:l.offset])
		return tok, true
	case isAlpha(l.ch):
		l.consumeIdent()
		tok.Lexeme = string(l.src[startOffset:l.offset])
		tok.Type = token.IdentType(tok.Lexeme)
		return tok, true
	default:
		ch := l.ch
		l.next()
		tok.Type = token.Illegal
		tok.Lexeme = string(l.src[startOffset:l.offset])
		l.errHandler(tok, "illegal character %#U", ch)
		return tok, false
	}

	l.next()
	tok.Lexeme = string(l.src[startOffset:l.offset])
	return tok, true
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case isWhitespace(l.ch):
			l.next()
		case l.ch == '/' && l.peek() == '/':
			for l.ch != '\n' && l.ch != eof {
				l.next()
			}
		case l.ch == '/' && l.peek() == '*':
			l.skipBlockComment()
		default:
			return
		}
	}
}

// skipBlockComment skips a possibly nested block comment.
func (l *lexer) skipBlockComment() {
	startOffset := l.offset
	depth := 0
	for {
		switch {
		case l.ch == eof:
			tok := token.Token{Type: token.Illegal, Offset: startOffset, Lexeme: string(l.src[startOffset:l.offset])}
			l.errHandler(tok, "unterminated block comment")
			return
		case l.ch == '/' && l.peek() == '*':
			l.next()
			l.next()
			depth++
		case l.ch == '*' && l.peek() == '/':
			l.next()
			l.next()
			depth--
			if depth == 0 {
				return
			}
		default:
			l.next()
		}
	}
}

func (l *lexer) consumeNumber() token.Type {
	typ := token.Int
	for isDigit(l.ch) {
		l.next()
	}
	if l.ch == '.' && isDigit(l.peek()) {
		typ = token.Double
		l.next()
		for isDigit(l.ch) {
			l.next()
		}
	}
	return typ
}

func (l *lexer) consumeString() (terminated bool) {
	quote := l.ch
	l.next()
	for {
		switch l.ch {
		case eof, '\n', '\r':
			return false
		case '\\':
			l.next()
			if l.ch != eof {
				l.next()
			}
		case quote:
			l.next()
			return true
		default:
			l.next()
		}
	}
}

func (l *lexer) consumeIdent() {
	for isAlphaNumeric(l.ch) {
		l.next()
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\r', '\t', '\n':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == '_' || r == '$'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

// next reads the next character into l.ch and advances the lexer.
// If the end of the source code has been reached, l.ch is set to eof.
func (l *lexer) next() {
	if l.ch == eof {
		return
	}

	l.offset = l.readOffset

	if l.readOffset == len(l.src) {
		l.ch = eof
		return
	}

	r, size := utf8.DecodeRune(l.src[l.readOffset:])
	l.readOffset += size

	if r == utf8.RuneError && size == 1 {
		// If we get here then we've read exactly one invalid UTF-8 byte
		tok := token.Token{
			Type:   token.Illegal,
			Offset: l.offset,
			Lexeme: string(l.src[l.offset : l.offset+1]),
		}
		l.errHandler(tok, "invalid UTF-8 byte %#x", l.src[l.offset])
		l.next()
		return
	}

	l.ch = r
}

// peek returns the next character without advancing the lexer.
// If the end of the source code has been reached, eof is returned.
func (l *lexer) peek() rune {
	if l.readOffset >= len(l.src) {
		return eof
	}
	return rune(l.src[l.readOffset])
}
