package dynsql

import "strings"

// SelectStmt is the top-level SELECT construct. Clause slots left nil or
// empty are simply absent; a clause whose content renders to nothing is
// omitted along with its keyword. Rendering never mutates the statement
// except for the one-time, idempotent normalization the set-membership
// operators perform on their own right operand.
type SelectStmt struct {
	Distinct bool
	Options  []string
	Columns  []Node
	From     []Node
	Where    Node
	GroupBy  []Node
	Having   Node
	OrderBy  []Node
	Limit    Node
	Offset   Node
}

// Result contains the rendered SQL and, on the prepared path, the bind
// parameters the statement requires, in first-use order.
type Result struct {
	SQL    string
	Params []string
}

// Render produces SQL with extrapolation: parameters are inlined as
// dialect-quoted literals and fragments depending on unsupplied parameters
// are pruned.
func (s *SelectStmt) Render(d Dialect, args Args) (*Result, error) {
	return s.RenderWithMode(d, args, ModeApply, true)
}

// Prepare produces SQL with bind placeholders for a prepared-statement
// execution path. Parameter presence is only tested where it must be
// decided now (unquoted LIMIT/OFFSET parameters, set membership).
func (s *SelectStmt) Prepare(d Dialect, args Args) (*Result, error) {
	return s.RenderWithMode(d, args, ModeApply, false)
}

// RenderWithMode is the full rendering entry point. Mode and the
// extrapolate flag are threaded unchanged through every recursive call.
func (s *SelectStmt) RenderWithMode(d Dialect, args Args, mode Mode, extrapolate bool) (*Result, error) {
	ctx := newRenderContext(d, args, mode, extrapolate)
	sql, err := renderSelect(ctx, s, 0)
	if err != nil {
		return nil, err
	}
	return &Result{SQL: sql, Params: ctx.params}, nil
}

// renderSelect assembles the clause strings in fixed order and joins the
// non-empty ones with newlines. Indent is informational pretty-printing for
// nested subqueries.
func renderSelect(ctx *renderContext, s *SelectStmt, indent int) (string, error) {
	var clauses []string

	head := "SELECT"
	if s.Distinct {
		head += " DISTINCT"
	}
	for _, opt := range s.Options {
		head += " " + opt
	}
	cols, ok, err := renderList(ctx, s.Columns, ", ", false, indent)
	if err != nil {
		return "", err
	}
	if !ok {
		cols = "*"
	}
	clauses = append(clauses, head+" "+cols)

	if from, ok, err := renderList(ctx, s.From, ", ", false, indent); err != nil {
		return "", err
	} else if ok {
		clauses = append(clauses, "FROM "+from)
	}

	if clause, err := renderClause(ctx, s.Where, "WHERE ", indent); err != nil {
		return "", err
	} else if clause != "" {
		clauses = append(clauses, clause)
	}

	if group, ok, err := renderList(ctx, s.GroupBy, ", ", false, indent); err != nil {
		return "", err
	} else if ok {
		clauses = append(clauses, "GROUP BY "+group)
	}

	if clause, err := renderClause(ctx, s.Having, "HAVING ", indent); err != nil {
		return "", err
	} else if clause != "" {
		clauses = append(clauses, clause)
	}

	if order, ok, err := renderList(ctx, s.OrderBy, ", ", false, indent); err != nil {
		return "", err
	} else if ok {
		clauses = append(clauses, "ORDER BY "+order)
	}

	limit, err := renderLimit(ctx, s, indent)
	if err != nil {
		return "", err
	}
	if limit != "" {
		clauses = append(clauses, limit)
	}

	sep := "\n" + strings.Repeat("  ", indent)
	return strings.Join(clauses, sep), nil
}

// renderClause renders a single-node clause slot with its keyword, or ""
// when the slot is nil or its content renders to nothing.
func renderClause(ctx *renderContext, n Node, keyword string, indent int) (string, error) {
	if n == nil {
		return "", nil
	}
	s, ok, err := renderNode(ctx, n, indent)
	if err != nil || !ok {
		return "", err
	}
	return keyword + s, nil
}

// renderLimit applies the one non-uniform clause rule: OFFSET is only valid
// with a resolvable LIMIT, and that can only be discovered after rendering.
func renderLimit(ctx *renderContext, s *SelectStmt, indent int) (string, error) {
	if s.Limit == nil {
		if s.Offset != nil {
			return "", InvalidClauseError{Reason: "OFFSET requires LIMIT"}
		}
		return "", nil
	}

	limit, limitOK, err := renderLimitTerm(ctx, s.Limit, indent)
	if err != nil {
		return "", err
	}

	if s.Offset == nil {
		if !limitOK {
			return "", nil
		}
		return "LIMIT " + limit, nil
	}

	if !limitOK {
		// Same invalid combination, discovered post-rendering.
		return "", InvalidClauseError{Reason: "OFFSET requires LIMIT"}
	}
	offset, offsetOK, err := renderLimitTerm(ctx, s.Offset, indent)
	if err != nil {
		return "", err
	}
	if !offsetOK {
		return "LIMIT " + limit, nil
	}
	return "LIMIT " + offset + ", " + limit, nil
}

// renderLimitTerm renders a LIMIT or OFFSET operand. A term that renders to
// nothing, or that reduced to a bare unresolved bind marker while
// extrapolating, counts as absent.
func renderLimitTerm(ctx *renderContext, n Node, indent int) (string, bool, error) {
	s, ok, err := renderNode(ctx, n, indent)
	if err != nil || !ok {
		return "", false, err
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false, nil
	}
	if ctx.extrapolate && isBareBindMarker(trimmed) {
		return "", false, nil
	}
	return s, true, nil
}

// isBareBindMarker reports whether s is exactly one ":name" token. A
// composite term that merely starts with a marker, such as ":lim + 1", is
// real SQL and must be kept.
func isBareBindMarker(s string) bool {
	if len(s) < 2 || s[0] != ':' {
		return false
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}
	return true
}
