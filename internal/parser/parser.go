package parser

import (
	"strconv"

	"github.com/leengari/mini-sql/internal/domain/errors"
	"github.com/leengari/mini-sql/internal/parser/ast"
	"github.com/leengari/mini-sql/internal/parser/lexer"
)

// tokenSource yields tokens one at a time, EOF once exhausted
type tokenSource interface {
	Next() (lexer.Token, error)
}

// tokenSlice replays tokens that were already scanned
type tokenSlice struct {
	tokens []lexer.Token
	pos    int
}

func (s *tokenSlice) Next() (lexer.Token, error) {
	if s.pos >= len(s.tokens) {
		return lexer.Token{Type: lexer.EOF}, nil
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}

// Parser is a recursive-descent parser over a token stream with one token
// of lookahead.
type Parser struct {
	tokens tokenSource
	peeked *lexer.Token
}

// New parses input while lazily scanning it
func New(input string) *Parser {
	return &Parser{tokens: lexer.New(input)}
}

// NewFromTokens parses tokens produced by an earlier lexer.Tokenize call.
// The source text is not scanned again.
func NewFromTokens(tokens []lexer.Token) *Parser {
	return &Parser{tokens: &tokenSlice{tokens: tokens}}
}

// Parse parses exactly one statement terminated by ';'
func Parse(input string) (ast.Statement, error) {
	return New(input).Parse()
}

func (p *Parser) Parse() (ast.Statement, error) {
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type != lexer.EOF {
		return nil, errors.NewParseError("unexpected token %s after end of statement", tok)
	}
	return stmt, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case lexer.CREATE:
		return p.parseCreateTable()
	case lexer.INSERT:
		return p.parseInsert()
	case lexer.SELECT:
		return p.parseSelect()
	case lexer.EOF:
		return nil, errors.NewParseError("unexpected end of input")
	default:
		return nil, errors.NewParseError("unexpected token %s, expected CREATE, INSERT or SELECT", tok)
	}
}

// CREATE TABLE name ( column [, column]* )
func (p *Parser) parseCreateTable() (*ast.CreateTableStatement, error) {
	if err := p.expect(lexer.CREATE); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TABLE); err != nil {
		return nil, err
	}

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.CreateTableStatement{Name: name}

	if err := p.expect(lexer.PAREN_OPEN); err != nil {
		return nil, err
	}
	for {
		col, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, col)

		ok, err := p.nextIf(lexer.COMMA)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	if err := p.expect(lexer.PAREN_CLOSE); err != nil {
		return nil, err
	}

	return stmt, nil
}

// name type [ NULL | NOT NULL | DEFAULT literal ]*
func (p *Parser) parseColumn() (*ast.ColumnDefinition, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	dt, ok := dataTypes[tok.Type]
	if !ok {
		return nil, errors.NewParseError("unexpected data type %s", tok)
	}
	col := &ast.ColumnDefinition{Name: name, DataType: dt}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !tok.Type.IsKeyword() {
			break
		}
		p.peeked = nil

		switch tok.Type {
		case lexer.NULL:
			col.Nullable = boolPtr(true)
		case lexer.NOT:
			if err := p.expect(lexer.NULL); err != nil {
				return nil, err
			}
			col.Nullable = boolPtr(false)
		case lexer.DEFAULT:
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			col.Default = expr
		default:
			// PRIMARY KEY is reserved but has no grammar rule
			return nil, errors.NewParseError("unexpected keyword %s in column definition", tok)
		}
	}

	return col, nil
}

// INSERT INTO name [ ( col [, col]* ) ] VALUES ( expr [, expr]* ) [, ( ... )]*
func (p *Parser) parseInsert() (*ast.InsertStatement, error) {
	if err := p.expect(lexer.INSERT); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.INTO); err != nil {
		return nil, err
	}

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.InsertStatement{TableName: name}

	hasColumns, err := p.nextIf(lexer.PAREN_OPEN)
	if err != nil {
		return nil, err
	}
	if hasColumns {
		stmt.Columns = []string{}
		for {
			col, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, col)

			done, err := p.listSeparator()
			if err != nil {
				return nil, err
			}
			if done {
				break
			}
		}
	}

	if err := p.expect(lexer.VALUES); err != nil {
		return nil, err
	}

	for {
		if err := p.expect(lexer.PAREN_OPEN); err != nil {
			return nil, err
		}
		var tuple []ast.Expression
		for {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			tuple = append(tuple, expr)

			done, err := p.listSeparator()
			if err != nil {
				return nil, err
			}
			if done {
				break
			}
		}
		stmt.Values = append(stmt.Values, tuple)

		more, err := p.nextIf(lexer.COMMA)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	return stmt, nil
}

// SELECT * FROM name
func (p *Parser) parseSelect() (*ast.SelectStatement, error) {
	if err := p.expect(lexer.SELECT); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ASTERISK); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.FROM); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	return &ast.SelectStatement{TableName: name}, nil
}

// parseExpression parses a single literal. Arithmetic symbols are never
// consumed here.
func (p *Parser) parseExpression() (ast.Expression, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case lexer.NUMBER:
		if isIntegerText(tok.Literal) {
			i, err := strconv.ParseInt(tok.Literal, 10, 64)
			if err != nil {
				return nil, errors.NewParseError("failed to parse integer: %v", err)
			}
			return ast.NewInt(i), nil
		}
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil && !isRangeError(err) {
			return nil, errors.NewParseError("failed to parse float: %v", err)
		}
		return ast.NewFloat(f), nil
	case lexer.STRING:
		return ast.NewString(tok.Literal), nil
	case lexer.TRUE:
		return ast.NewBool(true), nil
	case lexer.FALSE:
		return ast.NewBool(false), nil
	case lexer.NULL:
		return ast.NewNull(), nil
	default:
		return nil, errors.NewParseError("unexpected expression %s", tok)
	}
}

// listSeparator consumes ',' (returns false) or ')' (returns true)
func (p *Parser) listSeparator() (bool, error) {
	tok, err := p.next()
	if err != nil {
		return false, err
	}
	switch tok.Type {
	case lexer.PAREN_CLOSE:
		return true, nil
	case lexer.COMMA:
		return false, nil
	default:
		return false, errors.NewParseError("unexpected token %s, expected , or )", tok)
	}
}

func (p *Parser) peek() (lexer.Token, error) {
	if p.peeked == nil {
		tok, err := p.tokens.Next()
		if err != nil {
			return lexer.Token{}, err
		}
		p.peeked = &tok
	}
	return *p.peeked, nil
}

// next consumes a token; running out of input is an error here
func (p *Parser) next() (lexer.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return tok, err
	}
	if tok.Type == lexer.EOF {
		return tok, errors.NewParseError("unexpected end of input")
	}
	p.peeked = nil
	return tok, nil
}

func (p *Parser) expect(t lexer.TokenType) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Type != t {
		return errors.NewParseError("expected %s, got %s", t, tok)
	}
	return nil
}

func (p *Parser) expectIdent() (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	if tok.Type != lexer.IDENTIFIER {
		return "", errors.NewParseError("expected identifier, got %s", tok)
	}
	return tok.Literal, nil
}

// nextIf consumes the next token only when it has type t
func (p *Parser) nextIf(t lexer.TokenType) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	if tok.Type != t {
		return false, nil
	}
	p.peeked = nil
	return true, nil
}
