package dynsql

import "fmt"

// Builder provides a fluent API for assembling a SELECT statement. The
// first error sticks; Build surfaces it.
type Builder struct {
	stmt *SelectStmt
	err  error
}

// Select creates a new SELECT builder over the given FROM sources.
func Select(from ...Node) *Builder {
	return &Builder{
		stmt: &SelectStmt{From: from},
	}
}

// Columns sets the column list.
func (b *Builder) Columns(cols ...Node) *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.Columns = cols
	return b
}

// Distinct marks the statement DISTINCT.
func (b *Builder) Distinct() *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.Distinct = true
	return b
}

// Option appends a raw SELECT option such as SQL_CALC_FOUND_ROWS.
func (b *Builder) Option(opt string) *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.Options = append(b.stmt.Options, opt)
	return b
}

// Where sets the WHERE condition. Repeated calls combine with AND.
func (b *Builder) Where(cond Node) *Builder {
	if b.err != nil {
		return b
	}
	if b.stmt.Where == nil {
		b.stmt.Where = cond
	} else {
		b.stmt.Where = &Binary{Op: AND, Left: b.stmt.Where, Right: cond}
	}
	return b
}

// GroupBy sets the GROUP BY list.
func (b *Builder) GroupBy(nodes ...Node) *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.GroupBy = nodes
	return b
}

// Having sets the HAVING condition. Repeated calls combine with AND.
func (b *Builder) Having(cond Node) *Builder {
	if b.err != nil {
		return b
	}
	if b.stmt.Having == nil {
		b.stmt.Having = cond
	} else {
		b.stmt.Having = &Binary{Op: AND, Left: b.stmt.Having, Right: cond}
	}
	return b
}

// OrderBy appends an ORDER BY term.
func (b *Builder) OrderBy(expr Node, dir Direction) *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.OrderBy = append(b.stmt.OrderBy, &OrderItem{Expr: expr, Dir: dir})
	return b
}

// Limit sets the LIMIT operand.
func (b *Builder) Limit(n Node) *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.Limit = n
	return b
}

// LimitCount sets a fixed LIMIT count.
func (b *Builder) LimitCount(count int) *Builder {
	return b.Limit(&Literal{Value: count})
}

// Offset sets the OFFSET operand. An offset without a limit is rejected at
// render time, not here: whether the limit resolves can depend on the
// argument map.
func (b *Builder) Offset(n Node) *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.Offset = n
	return b
}

// OffsetCount sets a fixed OFFSET count.
func (b *Builder) OffsetCount(count int) *Builder {
	return b.Offset(&Literal{Value: count})
}

// Build returns the assembled statement, or the first error recorded by a
// builder method.
func (b *Builder) Build() (*SelectStmt, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stmt.From) == 0 && len(b.stmt.Columns) == 0 {
		return nil, fmt.Errorf("SELECT requires columns or a FROM source")
	}
	return b.stmt, nil
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild() *SelectStmt {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Render builds and renders with extrapolation in one step.
func (b *Builder) Render(d Dialect, args Args) (*Result, error) {
	stmt, err := b.Build()
	if err != nil {
		return nil, err
	}
	return stmt.Render(d, args)
}

// Prepare builds and renders the prepared path in one step.
func (b *Builder) Prepare(d Dialect, args Args) (*Result, error) {
	stmt, err := b.Build()
	if err != nil {
		return nil, err
	}
	return stmt.Prepare(d, args)
}
