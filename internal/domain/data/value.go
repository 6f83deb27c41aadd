package data

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DataType is the declared type of a column
type DataType int

const (
	Boolean DataType = iota
	Float
	Integer
	String
)

func (t DataType) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Float:
		return "FLOAT"
	case Integer:
		return "INTEGER"
	case String:
		return "STRING"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ValueKind tags which field of a Value is meaningful
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBoolean
	KindFloat
	KindInteger
	KindString
)

// Value is a runtime literal used as a column default or a row cell.
// Only the field matching Kind is read; the others stay at their zero values
// so two Values compare equal with == when they hold the same literal.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int   int64
	Float float64
	Str   string
}

func Null() Value              { return Value{Kind: KindNull} }
func NewBoolean(b bool) Value  { return Value{Kind: KindBoolean, Bool: b} }
func NewFloat(f float64) Value { return Value{Kind: KindFloat, Float: f} }
func NewInteger(i int64) Value { return Value{Kind: KindInteger, Int: i} }
func NewString(s string) Value { return Value{Kind: KindString, Str: s} }

func (v Value) IsNull() bool { return v.Kind == KindNull }

// Interface returns the Go representation of the value (nil for NULL)
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindBoolean:
		return v.Bool
	case KindFloat:
		return v.Float
	case KindInteger:
		return v.Int
	case KindString:
		return v.Str
	default:
		return nil
	}
}

// String renders the value as SQL literal text
func (v Value) String() string {
	switch v.Kind {
	case KindBoolean:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindFloat:
		s := strconv.FormatFloat(v.Float, 'f', -1, 64)
		if math.IsInf(v.Float, 0) || math.IsNaN(v.Float) {
			return s
		}
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindString:
		return "'" + v.Str + "'"
	default:
		return "NULL"
	}
}
