package dynsql

import (
	"fmt"
	"strings"
)

// renderContext carries the immutable inputs of a render call. Every
// recursive call threads the same context unchanged; no component caches or
// defaults these independently.
type renderContext struct {
	dialect     Dialect
	args        Args
	mode        Mode
	extrapolate bool

	// Bind parameters collected on the prepared path, in first-use order.
	params []string
	used   map[string]bool
}

func newRenderContext(d Dialect, args Args, mode Mode, extrapolate bool) *renderContext {
	return &renderContext{
		dialect:     d,
		args:        args,
		mode:        mode,
		extrapolate: extrapolate,
		used:        make(map[string]bool),
	}
}

// placeholder emits the bind marker for name and records it once.
func (ctx *renderContext) placeholder(name string) string {
	if !ctx.used[name] {
		ctx.used[name] = true
		ctx.params = append(ctx.params, name)
	}
	return ctx.dialect.Placeholder(name)
}

// RenderNode renders a single expression fragment with extrapolation
// enabled. The boolean result is false when the fragment does not apply
// because a parameter it depends on was not supplied.
func RenderNode(n Node, d Dialect, args Args) (string, bool, error) {
	ctx := newRenderContext(d, args, ModeApply, true)
	return renderNode(ctx, n, 0)
}

// renderList renders each node, drops those that render to nothing, and
// joins the survivors with sep. An empty survivor list is itself "nothing".
func renderList(ctx *renderContext, nodes []Node, sep string, brackets bool, indent int) (string, bool, error) {
	var parts []string
	for _, n := range nodes {
		s, ok, err := renderNode(ctx, n, indent)
		if err != nil {
			return "", false, err
		}
		if ok {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "", false, nil
	}
	out := strings.Join(parts, sep)
	if brackets {
		out = "(" + out + ")"
	}
	return out, true, nil
}

// renderNode is the single dispatch point for all node variants. Absence is
// a first-class return state, never an error.
func renderNode(ctx *renderContext, n Node, indent int) (string, bool, error) {
	switch x := n.(type) {
	case *Ident:
		return renderIdent(ctx, x), true, nil

	case *Table:
		quoted := ctx.dialect.QuoteIdent(x.Name)
		if x.Alias != "" {
			// Aliases are restricted to single letters and need no quoting.
			return quoted + " " + x.Alias, true, nil
		}
		return quoted, true, nil

	case *Literal:
		s, err := ctx.dialect.QuoteValue(x.Value)
		if err != nil {
			return "", false, err
		}
		return s, true, nil

	case *Raw:
		return x.Text, true, nil

	case *Param:
		return renderParam(ctx, x)

	case *Expression:
		sep := x.Sep
		if sep == "" {
			sep = ", "
		}
		return renderList(ctx, x.Nodes, sep, x.Brackets, indent)

	case *FuncCall:
		var args []string
		for _, arg := range x.Args {
			s, ok, err := renderNode(ctx, arg, indent)
			if err != nil {
				return "", false, err
			}
			if !ok {
				return "", false, nil
			}
			args = append(args, s)
		}
		return x.Name + "(" + strings.Join(args, ", ") + ")", true, nil

	case *Unary:
		return renderUnary(ctx, x, indent)

	case *Binary:
		return renderBinary(ctx, x, indent)

	case *OrderItem:
		s, ok, err := renderNode(ctx, x.Expr, indent)
		if err != nil || !ok {
			return "", false, err
		}
		if x.Dir != "" {
			s += " " + string(x.Dir)
		}
		return s, true, nil

	case *Subquery:
		s, err := renderSelect(ctx, x.Stmt, indent+1)
		if err != nil {
			return "", false, err
		}
		return "(" + s + ")", true, nil

	case *SelectStmt:
		s, err := renderSelect(ctx, x, indent)
		if err != nil {
			return "", false, err
		}
		return s, true, nil

	default:
		return "", false, fmt.Errorf("unknown node type: %T", n)
	}
}

func renderIdent(ctx *renderContext, id *Ident) string {
	quoted := ctx.dialect.QuoteIdent(id.Name)
	if id.Qualifier == "" {
		return quoted
	}
	qual := id.Qualifier
	if len(qual) > 1 {
		qual = ctx.dialect.QuoteIdent(qual)
	}
	return qual + "." + quoted
}

func renderParam(ctx *renderContext, p *Param) (string, bool, error) {
	v, bound := ctx.args[p.Name]

	if p.Unquoted {
		// Unquoted parameters cannot wait for bind time in every dialect,
		// so absence is decided now regardless of extrapolation.
		if !bound {
			return "", false, nil
		}
		return fmt.Sprintf("%v", v), true, nil
	}

	if !ctx.extrapolate {
		// Prepared path: leave a placeholder for bind-time resolution.
		return ctx.placeholder(p.Name), true, nil
	}

	if !bound {
		return "", false, nil
	}
	if list, ok := asList(v); ok {
		parts := make([]string, len(list))
		for i, elem := range list {
			s, err := ctx.dialect.QuoteValue(elem)
			if err != nil {
				return "", false, err
			}
			parts[i] = s
		}
		return strings.Join(parts, ", "), true, nil
	}
	s, err := ctx.dialect.QuoteValue(v)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

func renderUnary(ctx *renderContext, u *Unary, indent int) (string, bool, error) {
	s, ok, err := renderNode(ctx, u.Operand, indent)
	if err != nil || !ok {
		return "", false, err
	}
	if u.Op == NOT {
		return "NOT " + s, true, nil
	}
	return u.Op.symbol() + s, true, nil
}

// renderBinary applies the operator family's rendering rules. The default
// rule is "left SP symbol SP right"; equality, set membership, and the
// boolean connectives override it.
func renderBinary(ctx *renderContext, b *Binary, indent int) (string, bool, error) {
	// Equality degrades to a null test when the right operand is a quoted
	// parameter that was not supplied. Only while extrapolating: the
	// prepared path leaves a placeholder for bind-time resolution.
	if b.Op == EQ && ctx.extrapolate {
		if p, ok := b.Right.(*Param); ok && !p.Unquoted && !ctx.args.Has(p.Name) {
			left, lok, err := renderNode(ctx, b.Left, indent)
			if err != nil || !lok {
				return "", false, err
			}
			return left + " IS NULL", true, nil
		}
	}

	if b.Op.isMembership() {
		return renderMembership(ctx, b, indent)
	}

	left, lok, err := renderNode(ctx, b.Left, indent)
	if err != nil {
		return "", false, err
	}
	right, rok, err := renderNode(ctx, b.Right, indent)
	if err != nil {
		return "", false, err
	}

	if b.Op.isConnective() {
		switch {
		case lok && rok:
			return left + " " + b.Op.symbol() + " " + right, true, nil
		case lok:
			return left, true, nil
		case rok:
			return right, true, nil
		default:
			return "", false, nil
		}
	}

	// Pure symbolic operators: absence of either operand propagates upward.
	if !lok || !rok {
		return "", false, nil
	}
	return left + " " + b.Op.symbol() + " " + right, true, nil
}

// renderMembership renders IN/NOT IN. Set membership cannot silently
// degrade: there is no safe default truth value for an unresolvable set.
func renderMembership(ctx *renderContext, b *Binary, indent int) (string, bool, error) {
	// Normalize a bare parameter into a bracketed one-element list so
	// "col IN :list" is structurally "col IN (:list)". One-time in-place
	// mutation, idempotent if repeated.
	if p, ok := b.Right.(*Param); ok {
		b.Right = &Expression{Nodes: []Node{p}, Brackets: true}
	}

	if expr, ok := b.Right.(*Expression); ok && len(expr.Nodes) > 0 {
		if p, ok := expr.Nodes[0].(*Param); ok {
			v, bound := ctx.args[p.Name]
			if !bound {
				return "", false, MissingParameterError{Name: p.Name}
			}
			if list, isList := asList(v); isList && len(list) == 0 {
				// An empty list matches nothing; short-circuit.
				return "FALSE", true, nil
			}
		}
	}

	left, lok, err := renderNode(ctx, b.Left, indent)
	if err != nil {
		return "", false, err
	}
	right, rok, err := renderNode(ctx, b.Right, indent)
	if err != nil {
		return "", false, err
	}
	if !lok || !rok {
		return "", false, nil
	}
	return left + " " + b.Op.symbol() + " " + right, true, nil
}
