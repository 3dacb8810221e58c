// Package dynsql renders SQL statements from an expression tree while
// pruning any sub-expression that depends on a query parameter the caller
// did not supply. One parameterized SELECT becomes many effective queries
// depending on which bind values are present, instead of failing or forcing
// hand-maintained query variants.
//
// # Basic Usage
//
//	stmt := dynsql.Select(dynsql.T("users")).
//		Columns(dynsql.F("id"), dynsql.F("email")).
//		Where(dynsql.C(dynsql.F("email"), dynsql.EQ, dynsql.P("email"))).
//		Limit(dynsql.PRaw("lim")).
//		MustBuild()
//
//	result, err := stmt.Render(postgres.New(), dynsql.Args{"email": "a@b.c", "lim": 10})
//	// result.SQL: SELECT "id", "email" FROM "users" WHERE "email" = 'a@b.c' LIMIT 10
//
//	result, err = stmt.Render(postgres.New(), dynsql.Args{})
//	// result.SQL: SELECT "id", "email" FROM "users" WHERE "email" IS NULL
//	// (LIMIT omitted: its parameter was not supplied)
//
// # Prepared Path
//
// Prepare leaves bind placeholders in place for a prepared-statement
// execution path and reports the parameters the statement requires:
//
//	result, err := stmt.Prepare(postgres.New(), dynsql.Args{"lim": 10})
//	// result.SQL ends with LIMIT 10; result.Params: []string{"email"}
//
// # Dialects
//
// Identifier and literal quoting is supplied per render call by a Dialect.
// Available dialects: postgres, mysql, sqlite, mssql.
//
// # Tree Rewriting
//
// Walk drives an enter/leave visitor over any tree and supports in-place
// replacement and removal, independent of rendering. See Visitor.
//
// # Schema-Validated Usage
//
// An Instance created from a DBML project validates table and field names
// at construction time; its T and F panic on names the schema doesn't know.
package dynsql

import "fmt"

// TryT creates a table reference, returning an error if invalid.
func TryT(name string, alias ...string) (*Table, error) {
	if !isValidIdentName(name) {
		return nil, fmt.Errorf("invalid table name: %q", name)
	}
	t := &Table{Name: name}
	if len(alias) > 0 {
		if !isValidAlias(alias[0]) {
			return nil, fmt.Errorf("table alias must be a single lowercase letter (a-z), got: %s", alias[0])
		}
		t.Alias = alias[0]
	}
	return t, nil
}

// T creates a table reference.
func T(name string, alias ...string) *Table {
	t, err := TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryF creates a field reference, returning an error if invalid.
func TryF(name string) (*Ident, error) {
	if !isValidIdentName(name) {
		return nil, fmt.Errorf("invalid field name: %q", name)
	}
	return &Ident{Name: name}, nil
}

// F creates a field reference.
func F(name string) *Ident {
	f, err := TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// WithTable returns a copy of f qualified by a table name or alias.
func (f *Ident) WithTable(tableOrAlias string) *Ident {
	if !isValidAlias(tableOrAlias) && !isValidIdentName(tableOrAlias) {
		panic(fmt.Errorf("WithTable requires a single-letter alias (a-z) or a valid table name, got: %s", tableOrAlias))
	}
	return &Ident{Qualifier: tableOrAlias, Name: f.Name}
}

// V creates a literal value node.
func V(value any) *Literal {
	return &Literal{Value: value}
}

// C creates a binary operator application. It is most often used for
// conditions but accepts any operator family.
func C(left Node, op Operator, right Node) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

// Fn creates a function call.
func Fn(name string, args ...Node) *FuncCall {
	return &FuncCall{Name: name, Args: args}
}

// Not negates a condition.
func Not(n Node) *Unary {
	return &Unary{Op: NOT, Operand: n}
}

// Group wraps a node in brackets.
func Group(n Node) *Expression {
	return &Expression{Nodes: []Node{n}, Brackets: true}
}

// List creates a bracketed, comma-separated expression list.
func List(nodes ...Node) *Expression {
	return &Expression{Nodes: nodes, Brackets: true}
}

// conn folds items into a left-nested tree of op applications. Connective
// pruning then applies pairwise: absent operands drop out one at a time.
func conn(op Operator, items []Node) Node {
	if len(items) == 0 {
		panic(fmt.Errorf("%s requires at least one condition", op))
	}
	out := items[0]
	for _, item := range items[1:] {
		out = &Binary{Op: op, Left: out, Right: item}
	}
	return out
}

// And combines conditions with AND.
func And(conditions ...Node) Node {
	return conn(AND, conditions)
}

// Or combines conditions with OR, bracketed so it composes under AND.
func Or(conditions ...Node) Node {
	return Group(conn(OR, conditions))
}

// Order creates an ORDER BY term.
func Order(expr Node, dir Direction) *OrderItem {
	return &OrderItem{Expr: expr, Dir: dir}
}

// Sub wraps a SELECT statement for use as an expression.
func Sub(stmt *SelectStmt) *Subquery {
	return &Subquery{Stmt: stmt}
}

// Identifier names allow letters, digits, underscores, and spaces, and must
// not embed quoting or statement characters. Quoting itself is the
// dialect's job; this only rejects names that are not identifiers at all.
func isValidIdentName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '_' || ch == ' ':
		default:
			return false
		}
	}
	return true
}

func isValidAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}
