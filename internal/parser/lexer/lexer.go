package lexer

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leengari/mini-sql/internal/domain/errors"
)

type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Literals
	IDENTIFIER // table_name, column_name
	STRING     // 'value'
	NUMBER     // 123, 1.23

	keywordBeg
	// Keywords
	CREATE
	TABLE
	INT
	INTEGER
	BOOLEAN
	BOOL
	STRING_TYPE
	TEXT
	VARCHAR
	FLOAT
	DOUBLE
	SELECT
	FROM
	INSERT
	INTO
	VALUES
	TRUE
	FALSE
	DEFAULT
	NOT
	NULL
	PRIMARY
	KEY
	keywordEnd

	// Operators & Punctuation
	PAREN_OPEN  // (
	PAREN_CLOSE // )
	COMMA       // ,
	SEMICOLON   // ;
	ASTERISK    // *
	PLUS        // +
	MINUS       // -
	SLASH       // /
)

var tokenNames = [...]string{
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	STRING:     "STRING",
	NUMBER:     "NUMBER",

	CREATE:      "CREATE",
	TABLE:       "TABLE",
	INT:         "INT",
	INTEGER:     "INTEGER",
	BOOLEAN:     "BOOLEAN",
	BOOL:        "BOOL",
	STRING_TYPE: "STRING",
	TEXT:        "TEXT",
	VARCHAR:     "VARCHAR",
	FLOAT:       "FLOAT",
	DOUBLE:      "DOUBLE",
	SELECT:      "SELECT",
	FROM:        "FROM",
	INSERT:      "INSERT",
	INTO:        "INTO",
	VALUES:      "VALUES",
	TRUE:        "TRUE",
	FALSE:       "FALSE",
	DEFAULT:     "DEFAULT",
	NOT:         "NOT",
	NULL:        "NULL",
	PRIMARY:     "PRIMARY",
	KEY:         "KEY",

	PAREN_OPEN:  "(",
	PAREN_CLOSE: ")",
	COMMA:       ",",
	SEMICOLON:   ";",
	ASTERISK:    "*",
	PLUS:        "+",
	MINUS:       "-",
	SLASH:       "/",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsKeyword reports whether t is one of the reserved words
func (t TokenType) IsKeyword() bool {
	return keywordBeg < t && t < keywordEnd
}

// keywords is built once at package init and only read afterwards
var keywords = func() map[string]TokenType {
	m := make(map[string]TokenType, keywordEnd-keywordBeg-1)
	for t := keywordBeg + 1; t < keywordEnd; t++ {
		m[tokenNames[t]] = t
	}
	return m
}()

var symbols = map[rune]TokenType{
	'(': PAREN_OPEN,
	')': PAREN_CLOSE,
	',': COMMA,
	';': SEMICOLON,
	'*': ASTERISK,
	'+': PLUS,
	'-': MINUS,
	'/': SLASH,
}

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// String renders the token the way it would appear in SQL text
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case STRING:
		return "'" + t.Literal + "'"
	default:
		return t.Literal
	}
}

// Lexer is a single-pass, lazy token stream over its input.
// It cannot be restarted and becomes terminal after the first error.
type Lexer struct {
	input  string
	pos    int // byte offset of the next unread rune
	line   int
	column int
	done   bool
}

func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// peek returns the next rune without consuming it
func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r, true
}

// advance consumes one rune
func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// takeWhile consumes runes while pred holds and returns them
func (l *Lexer) takeWhile(pred func(rune) bool) string {
	start := l.pos
	for {
		r, ok := l.peek()
		if !ok || !pred(r) {
			break
		}
		l.advance()
	}
	return l.input[start:l.pos]
}

// Next returns the next token. End of input yields an EOF token, never an
// error. Once an error has been returned every later call yields EOF.
func (l *Lexer) Next() (Token, error) {
	if l.done {
		return Token{Type: EOF, Line: l.line, Column: l.column}, nil
	}

	tok, err := l.scan()
	if err != nil || tok.Type == EOF {
		l.done = true
	}
	return tok, err
}

// All exposes the token stream as an iterator. It stops after EOF or after
// yielding the first error.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if err != nil {
				yield(tok, err)
				return
			}
			if tok.Type == EOF {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

func (l *Lexer) scan() (Token, error) {
	l.takeWhile(unicode.IsSpace)

	tok := Token{Line: l.line, Column: l.column}

	ch, ok := l.peek()
	switch {
	case !ok:
		tok.Type = EOF
		return tok, nil
	case ch == '\'':
		lit, err := l.readString()
		if err != nil {
			return tok, err
		}
		tok.Type = STRING
		tok.Literal = lit
	case isDigit(ch):
		tok.Type = NUMBER
		tok.Literal = l.readNumber()
	case unicode.IsLetter(ch):
		ident := l.readIdentifier()
		tok.Type = LookupIdent(ident)
		if tok.Type == IDENTIFIER {
			tok.Literal = strings.ToLower(ident)
		} else {
			tok.Literal = tok.Type.String()
		}
	default:
		sym, ok := symbols[ch]
		if !ok {
			// the character is left unconsumed; Next marks the stream done
			if _, size := utf8.DecodeRuneInString(l.input[l.pos:]); ch == utf8.RuneError && size == 1 {
				return tok, errors.NewParseError("unexpected character '\\x%02x'", l.input[l.pos])
			}
			return tok, errors.NewParseError("unexpected character %q", ch)
		}
		l.advance()
		tok.Type = sym
		tok.Literal = string(ch)
	}
	return tok, nil
}

func (l *Lexer) readIdentifier() string {
	return l.takeWhile(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
	})
}

func (l *Lexer) readNumber() string {
	start := l.pos
	l.takeWhile(isDigit)
	if r, ok := l.peek(); ok && r == '.' {
		l.advance()
		l.takeWhile(isDigit)
	}
	return l.input[start:l.pos]
}

// readString reads a single-quoted literal. There are no escapes.
func (l *Lexer) readString() (string, error) {
	l.advance() // opening quote
	start := l.pos
	for {
		r, ok := l.peek()
		if !ok {
			return "", errors.NewParseError("unexpected end of input in string literal")
		}
		if r == '\'' {
			lit := l.input[start:l.pos]
			l.advance()
			return lit, nil
		}
		l.advance()
	}
}

// LookupIdent matches ident against the keyword table, ignoring case
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToUpper(ident)]; ok {
		return tok
	}
	return IDENTIFIER
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize drains a lexer over input, stopping at the first error
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	for tok, err := range New(input).All() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
