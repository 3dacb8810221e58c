package dynsql

// Dialect supplies the identifier quoting, literal quoting, and bind
// placeholder syntax for a target database. It is passed down every render
// call unchanged and consulted only at leaf nodes.
//
// Implementations live in the postgres, mysql, sqlite, and mssql packages.
type Dialect interface {
	// QuoteIdent quotes an identifier, escaping embedded quote characters.
	QuoteIdent(name string) string

	// QuoteValue renders a Go value as a SQL literal.
	QuoteValue(v any) (string, error)

	// Placeholder returns the bind marker for a named parameter.
	Placeholder(name string) string
}
