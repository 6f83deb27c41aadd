package parser

import (
	"strconv"

	"github.com/leengari/mini-sql/internal/domain/data"
	"github.com/leengari/mini-sql/internal/parser/lexer"
)

// dataTypes maps every type keyword to the column type it declares
var dataTypes = map[lexer.TokenType]data.DataType{
	lexer.INT:         data.Integer,
	lexer.INTEGER:     data.Integer,
	lexer.FLOAT:       data.Float,
	lexer.DOUBLE:      data.Float,
	lexer.BOOL:        data.Boolean,
	lexer.BOOLEAN:     data.Boolean,
	lexer.STRING_TYPE: data.String,
	lexer.TEXT:        data.String,
	lexer.VARCHAR:     data.String,
}

// isIntegerText reports whether a number literal has no decimal point
func isIntegerText(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isRangeError reports a float literal out of float64 range. ParseFloat
// already returned the rounded value (+Inf for overflow) alongside it.
func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

func boolPtr(b bool) *bool {
	return &b
}
