// Package mssql provides the SQL Server dialect for dynsql.
package mssql

import (
	"strings"

	"github.com/zoobzio/dynsql/internal/quoting"
)

// Dialect implements dynsql.Dialect for SQL Server.
type Dialect struct{}

// New creates a new SQL Server dialect.
func New() *Dialect {
	return &Dialect{}
}

// QuoteIdent quotes an identifier with square brackets, doubling any
// embedded closing brackets.
func (*Dialect) QuoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// QuoteValue renders a Go value as a SQL Server literal. SQL Server's BIT
// type takes 1/0, not keywords.
func (*Dialect) QuoteValue(v any) (string, error) {
	return quoting.Value(v, "1", "0")
}

// Placeholder returns a named parameter marker in SQL Server's @ style.
func (*Dialect) Placeholder(name string) string {
	return "@" + name
}
