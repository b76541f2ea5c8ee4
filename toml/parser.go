package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses TOML tokens into a map[string]any
// Tables become nested map[string]any, scalars become string, int, float64 or bool
type Parser struct {
	lexer     *Lexer
	curToken  Token
	peekToken Token
	root      map[string]any
	current   map[string]any // table receiving key/value pairs
	declared  map[string]bool
}

func NewParser(input []byte) *Parser {
	p := &Parser{
		lexer:    NewLexer(input),
		root:     make(map[string]any),
		declared: make(map[string]bool),
	}
	p.nextToken()
	p.nextToken()
	p.current = p.root
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()

	// Skip comments automatically
	for p.peekToken.Type == TokenComment {
		p.peekToken = p.lexer.NextToken()
	}
}

func (p *Parser) Parse() (map[string]any, error) {
	for p.curToken.Type != TokenEOF {
		if p.curToken.Type == TokenNewline || p.curToken.Type == TokenComment {
			p.nextToken()
			continue
		}
		if err := p.parseStatement(); err != nil {
			return nil, err
		}
		if err := p.expectLineEnd(); err != nil {
			return nil, err
		}
	}
	return p.root, nil
}

func (p *Parser) parseStatement() error {
	switch p.curToken.Type {
	case TokenLBracket:
		return p.parseTableDeclaration()
	case TokenIdent, TokenString, TokenInteger, TokenBool:
		return p.parseKeyValuePair()
	case TokenError:
		return fmt.Errorf("lexing error line %d: %s", p.curToken.Line, p.curToken.Literal)
	default:
		return fmt.Errorf("unexpected token line %d: %s", p.curToken.Line, p.curToken.String())
	}
}

func (p *Parser) expectLineEnd() error {
	switch p.curToken.Type {
	case TokenNewline, TokenEOF, TokenComment:
		return nil
	}
	return fmt.Errorf("expected end of line at line %d, got %s", p.curToken.Line, p.curToken.String())
}

// parseTableDeclaration handles [key] and [a.b]
func (p *Parser) parseTableDeclaration() error {
	line := p.curToken.Line
	p.nextToken() // consume [

	if p.curToken.Type == TokenLBracket {
		return fmt.Errorf("arrays of tables are not supported (line %d)", line)
	}

	keys, err := p.parseKeyParts()
	if err != nil {
		return err
	}
	if p.curToken.Type != TokenRBracket {
		return fmt.Errorf("expected closing bracket for table at line %d", line)
	}
	p.nextToken() // consume ]

	path := strings.Join(keys, ".")
	if p.declared[path] {
		return fmt.Errorf("table [%s] redefined at line %d", path, line)
	}
	p.declared[path] = true

	table, err := p.descend(p.root, keys)
	if err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}
	p.current = table
	return nil
}

// descend walks or creates nested tables along keys
func (p *Parser) descend(m map[string]any, keys []string) (map[string]any, error) {
	for _, key := range keys {
		existing, ok := m[key]
		if !ok {
			next := make(map[string]any)
			m[key] = next
			m = next
			continue
		}
		next, ok := existing.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %s is not a table", key)
		}
		m = next
	}
	return m, nil
}

func (p *Parser) parseKeyValuePair() error {
	line := p.curToken.Line
	keys, err := p.parseKeyParts()
	if err != nil {
		return err
	}

	if p.curToken.Type != TokenEqual {
		return fmt.Errorf("expected '=' after key at line %d, got %s", line, p.curToken.String())
	}
	p.nextToken() // consume =

	val, err := p.parseValue()
	if err != nil {
		return err
	}

	table, err := p.descend(p.current, keys[:len(keys)-1])
	if err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}
	last := keys[len(keys)-1]
	if _, exists := table[last]; exists {
		return fmt.Errorf("duplicate key %s at line %d", last, line)
	}
	table[last] = val
	return nil
}

// parseKeyParts reads a dotted key; digit-only and boolean-looking bare keys are accepted
func (p *Parser) parseKeyParts() ([]string, error) {
	var keys []string
	for {
		switch p.curToken.Type {
		case TokenIdent, TokenString, TokenInteger, TokenBool:
			keys = append(keys, p.curToken.Literal)
		default:
			return nil, fmt.Errorf("expected key at line %d, got %s", p.curToken.Line, p.curToken.String())
		}
		p.nextToken()

		if p.curToken.Type != TokenDot {
			return keys, nil
		}
		p.nextToken() // consume dot
	}
}

func (p *Parser) parseValue() (any, error) {
	tok := p.curToken
	switch tok.Type {
	case TokenString:
		p.nextToken()
		return tok.Literal, nil
	case TokenInteger:
		v, err := strconv.ParseInt(strings.ReplaceAll(tok.Literal, "_", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q at line %d", tok.Literal, tok.Line)
		}
		p.nextToken()
		return int(v), nil
	case TokenFloat:
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok.Literal, "_", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q at line %d", tok.Literal, tok.Line)
		}
		p.nextToken()
		return v, nil
	case TokenBool:
		p.nextToken()
		return tok.Literal == "true", nil
	case TokenLBracket:
		return nil, fmt.Errorf("arrays are not supported (line %d)", tok.Line)
	case TokenError:
		return nil, fmt.Errorf("lexing error line %d: %s", tok.Line, tok.Literal)
	}
	return nil, fmt.Errorf("unexpected value token %s at line %d", tok.String(), tok.Line)
}
