// Package sqlite provides the SQLite dialect for dynsql.
package sqlite

import (
	"strings"

	"github.com/zoobzio/dynsql/internal/quoting"
)

// Dialect implements dynsql.Dialect for SQLite.
type Dialect struct{}

// New creates a new SQLite dialect.
func New() *Dialect {
	return &Dialect{}
}

// QuoteIdent quotes an identifier with double quotes, doubling any embedded
// double quotes.
func (*Dialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteValue renders a Go value as a SQLite literal. SQLite has no boolean
// type; booleans render as integers.
func (*Dialect) QuoteValue(v any) (string, error) {
	return quoting.Value(v, "1", "0")
}

// Placeholder returns a named parameter marker.
func (*Dialect) Placeholder(name string) string {
	return ":" + name
}
