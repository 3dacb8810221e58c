// Package mysql provides the MySQL/MariaDB dialect for dynsql.
package mysql

import (
	"strings"

	"github.com/zoobzio/dynsql/internal/quoting"
)

// Dialect implements dynsql.Dialect for MySQL and MariaDB.
type Dialect struct{}

// New creates a new MySQL dialect.
func New() *Dialect {
	return &Dialect{}
}

// QuoteIdent quotes an identifier with backticks, doubling any embedded
// backticks.
func (*Dialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// QuoteValue renders a Go value as a MySQL literal.
func (*Dialect) QuoteValue(v any) (string, error) {
	return quoting.Value(v, "TRUE", "FALSE")
}

// Placeholder returns a named parameter marker.
func (*Dialect) Placeholder(name string) string {
	return ":" + name
}
