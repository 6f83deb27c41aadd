package ast

import (
	"bytes"
	"strings"

	"github.com/leengari/mini-sql/internal/domain/data"
)

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement represents a standalone SQL statement.
// The set is closed: CreateTableStatement, InsertStatement, SelectStatement.
type Statement interface {
	Node
	statementNode()
}

// Expression represents a value. Only literals exist in this grammar.
type Expression interface {
	Node
	expressionNode()
	// Evaluate maps the expression to a runtime value
	Evaluate() data.Value
}

type LiteralKind int

const (
	LiteralNull LiteralKind = iota
	LiteralBool
	LiteralInt
	LiteralFloat
	LiteralString
)

// Literal represents a fixed value (null, bool, number, string)
type Literal struct {
	Kind  LiteralKind
	Value interface{} // nil, bool, int64, float64, string
}

func NewNull() *Literal           { return &Literal{Kind: LiteralNull} }
func NewBool(b bool) *Literal     { return &Literal{Kind: LiteralBool, Value: b} }
func NewInt(i int64) *Literal     { return &Literal{Kind: LiteralInt, Value: i} }
func NewFloat(f float64) *Literal { return &Literal{Kind: LiteralFloat, Value: f} }
func NewString(s string) *Literal { return &Literal{Kind: LiteralString, Value: s} }

func (l *Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.String() }
func (l *Literal) String() string       { return l.Evaluate().String() }

func (l *Literal) Evaluate() data.Value {
	switch l.Kind {
	case LiteralBool:
		return data.NewBoolean(l.Value.(bool))
	case LiteralInt:
		return data.NewInteger(l.Value.(int64))
	case LiteralFloat:
		return data.NewFloat(l.Value.(float64))
	case LiteralString:
		return data.NewString(l.Value.(string))
	default:
		return data.Null()
	}
}

// ColumnDefinition is one column clause of CREATE TABLE, before resolution
type ColumnDefinition struct {
	Name     string
	DataType data.DataType
	Nullable *bool      // nil when neither NULL nor NOT NULL was given
	Default  Expression // nil when no DEFAULT was given
}

func (c *ColumnDefinition) String() string {
	var out bytes.Buffer
	out.WriteString(c.Name)
	out.WriteString(" ")
	out.WriteString(c.DataType.String())
	if c.Nullable != nil {
		if *c.Nullable {
			out.WriteString(" NULL")
		} else {
			out.WriteString(" NOT NULL")
		}
	}
	if c.Default != nil {
		out.WriteString(" DEFAULT ")
		out.WriteString(c.Default.String())
	}
	return out.String()
}

// CreateTableStatement: CREATE TABLE name (col type [modifiers], ...)
type CreateTableStatement struct {
	Name    string
	Columns []*ColumnDefinition
}

func (s *CreateTableStatement) statementNode()       {}
func (s *CreateTableStatement) TokenLiteral() string { return "CREATE" }
func (s *CreateTableStatement) String() string {
	var out bytes.Buffer
	out.WriteString("CREATE TABLE ")
	out.WriteString(s.Name)
	out.WriteString(" (")
	for i, c := range s.Columns {
		out.WriteString(c.String())
		if i < len(s.Columns)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(")")
	return out.String()
}

// InsertStatement: INSERT INTO table [(col1, col2)] VALUES (v1, v2), ...
type InsertStatement struct {
	TableName string
	// Columns is nil when the statement has no column list
	Columns []string
	Values  [][]Expression
}

func (s *InsertStatement) statementNode()       {}
func (s *InsertStatement) TokenLiteral() string { return "INSERT" }
func (s *InsertStatement) String() string {
	var out bytes.Buffer
	out.WriteString("INSERT INTO ")
	out.WriteString(s.TableName)
	if s.Columns != nil {
		out.WriteString(" (")
		out.WriteString(strings.Join(s.Columns, ", "))
		out.WriteString(")")
	}
	out.WriteString(" VALUES ")
	for i, tuple := range s.Values {
		out.WriteString("(")
		for j, v := range tuple {
			out.WriteString(v.String())
			if j < len(tuple)-1 {
				out.WriteString(", ")
			}
		}
		out.WriteString(")")
		if i < len(s.Values)-1 {
			out.WriteString(", ")
		}
	}
	return out.String()
}

// SelectStatement: SELECT * FROM table
type SelectStatement struct {
	TableName string
}

func (s *SelectStatement) statementNode()       {}
func (s *SelectStatement) TokenLiteral() string { return "SELECT" }
func (s *SelectStatement) String() string {
	return "SELECT * FROM " + s.TableName
}
