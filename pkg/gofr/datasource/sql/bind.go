package sql

import (
	"strconv"
	"strings"
)

const (
	DialectMySQL    = "mysql"
	DialectPostgres = "postgres"
)

// syntax is how a dialect quotes identifiers and numbers its bind variables.
type syntax struct {
	quote   string
	bindVar func(position int) string
}

//nolint:gochecknoglobals // read only
var syntaxes = map[string]syntax{
	DialectMySQL: {
		quote:   "`",
		bindVar: func(int) string { return "?" },
	},
	DialectPostgres: {
		quote:   `"`,
		bindVar: func(position int) string { return "$" + strconv.Itoa(position) },
	},
}

// syntaxOf falls back to the mysql syntax for unknown dialects.
func syntaxOf(dialect string) syntax {
	if s, ok := syntaxes[dialect]; ok {
		return s
	}

	return syntaxes[DialectMySQL]
}

// identifier quotes name, doubling the quote character inside it.
func (s syntax) identifier(name string) string {
	return s.quote + strings.ReplaceAll(name, s.quote, s.quote+s.quote) + s.quote
}
