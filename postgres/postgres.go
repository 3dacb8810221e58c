// Package postgres provides the PostgreSQL dialect for dynsql.
package postgres

import (
	"strings"

	"github.com/zoobzio/dynsql/internal/quoting"
)

// Dialect implements dynsql.Dialect for PostgreSQL.
type Dialect struct{}

// New creates a new PostgreSQL dialect.
func New() *Dialect {
	return &Dialect{}
}

// QuoteIdent quotes an identifier with double quotes, doubling any embedded
// double quotes.
func (*Dialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteValue renders a Go value as a PostgreSQL literal.
func (*Dialect) QuoteValue(v any) (string, error) {
	return quoting.Value(v, "TRUE", "FALSE")
}

// Placeholder returns a named parameter marker for use with sqlx-style
// named execution.
func (*Dialect) Placeholder(name string) string {
	return ":" + name
}
