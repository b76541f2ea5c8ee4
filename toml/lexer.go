package toml

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Lexer state machine
type Lexer struct {
	input []byte
	pos   int // current position in input
	line  int
	col   int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input, line: 1}
}

// NextToken returns the next token in the stream
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return l.newToken(TokenEOF, "")
	}

	ch := l.peek()
	switch ch {
	case '\n':
		l.advance()
		return l.newToken(TokenNewline, "\n")
	case '#':
		return l.readComment()
	case '=':
		l.advance()
		return l.newToken(TokenEqual, "=")
	case '.':
		l.advance()
		return l.newToken(TokenDot, ".")
	case '[':
		l.advance()
		return l.newToken(TokenLBracket, "[")
	case ']':
		l.advance()
		return l.newToken(TokenRBracket, "]")
	case '"':
		return l.readString()
	}

	if isDigit(ch) || ch == '+' || ch == '-' {
		return l.readNumber()
	}
	if isAlpha(ch) || ch == '_' {
		return l.readBare()
	}

	l.advance()
	return l.newToken(TokenError, fmt.Sprintf("unexpected character: %q", ch))
}

func (l *Lexer) newToken(typ TokenType, literal string) Token {
	return Token{Type: typ, Literal: literal, Line: l.line, Col: l.col}
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, w := utf8.DecodeRune(l.input[l.pos:])
	l.pos += w
	if r == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch != ' ' && ch != '\t' && ch != '\r' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) readComment() Token {
	l.advance() // '#'
	start := l.pos
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
	return l.newToken(TokenComment, string(l.input[start:l.pos]))
}

func (l *Lexer) readString() Token {
	l.advance() // opening quote
	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.advance()
		switch ch {
		case '\n':
			return l.newToken(TokenError, "unterminated string (newlines not allowed in basic strings)")
		case '"':
			return l.newToken(TokenString, sb.String())
		case '\\':
			esc := l.advance()
			switch esc {
			case '"', '\\':
				sb.WriteRune(esc)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				return l.newToken(TokenError, fmt.Sprintf("invalid escape: \\%c", esc))
			}
		default:
			sb.WriteRune(ch)
		}
	}
	return l.newToken(TokenError, "unterminated string")
}

// readBare reads a bare key or boolean: A-Za-z0-9_-
func (l *Lexer) readBare() Token {
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.peek()
		if !isAlpha(ch) && !isDigit(ch) && ch != '_' && ch != '-' {
			break
		}
		l.advance()
	}
	lit := string(l.input[start:l.pos])
	if lit == "true" || lit == "false" {
		return l.newToken(TokenBool, lit)
	}
	return l.newToken(TokenIdent, lit)
}

// readNumber reads an integer or float; all-digit text followed by key characters is a bare key
func (l *Lexer) readNumber() Token {
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.peek()
		if !isDigit(ch) && !isAlpha(ch) && ch != '_' && ch != '-' && ch != '+' && ch != '.' {
			break
		}
		l.advance()
	}
	lit := string(l.input[start:l.pos])

	body := strings.TrimLeft(lit, "+-")
	if body == "" {
		return l.newToken(TokenError, fmt.Sprintf("invalid number: %q", lit))
	}
	isFloat := false
	for _, r := range body {
		switch {
		case isDigit(r) || r == '_':
		case r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-':
			isFloat = true
		default:
			// 1st, 80x25: digits leading a bare key
			if lit[0] != '+' && lit[0] != '-' && !strings.Contains(lit, ".") {
				return l.newToken(TokenIdent, lit)
			}
			return l.newToken(TokenError, fmt.Sprintf("invalid number: %q", lit))
		}
	}
	if isFloat {
		return l.newToken(TokenFloat, lit)
	}
	return l.newToken(TokenInteger, lit)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
