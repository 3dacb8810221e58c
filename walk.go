package dynsql

import "fmt"

type visitKind int

const (
	visitUnchanged visitKind = iota
	visitReplace
	visitRemove
	visitSkipChildren
)

// VisitResult tells Walk what to do with the node just visited. Construct
// one with Unchanged, Replace, Remove, or SkipChildren.
type VisitResult struct {
	replacement Node
	kind        visitKind
}

// Unchanged continues the walk with the node as-is.
func Unchanged() VisitResult {
	return VisitResult{kind: visitUnchanged}
}

// Replace substitutes n in the parent's slot. From Enter, the walk descends
// into the replacement's children.
func Replace(n Node) VisitResult {
	return VisitResult{kind: visitReplace, replacement: n}
}

// Remove drops the node from its owning list, or clears its single-node
// slot. Valid only from Leave.
func Remove() VisitResult {
	return VisitResult{kind: visitRemove}
}

// SkipChildren proceeds straight to Leave without descending. Valid only
// from Enter.
func SkipChildren() VisitResult {
	return VisitResult{kind: visitSkipChildren}
}

// Visitor drives a depth-first walk. Enter is invoked before a node's
// children are walked, Leave after. The framework is orthogonal to
// rendering: it is a general tree-rewrite primitive.
type Visitor interface {
	Enter(Node) VisitResult
	Leave(Node) VisitResult
}

// VisitorFuncs adapts bare functions to the Visitor interface. A nil
// function behaves as Unchanged.
type VisitorFuncs struct {
	EnterFunc func(Node) VisitResult
	LeaveFunc func(Node) VisitResult
}

func (v VisitorFuncs) Enter(n Node) VisitResult {
	if v.EnterFunc == nil {
		return Unchanged()
	}
	return v.EnterFunc(n)
}

func (v VisitorFuncs) Leave(n Node) VisitResult {
	if v.LeaveFunc == nil {
		return Unchanged()
	}
	return v.LeaveFunc(n)
}

// Walk traverses the tree rooted at root, applying v's replacements and
// removals in place within parent slots and lists. It returns the
// (possibly replaced) root, or nil if the root itself was removed.
func Walk(root Node, v Visitor) (Node, error) {
	n, keep, err := walkNode(root, v)
	if err != nil {
		return nil, err
	}
	if !keep {
		return nil, nil
	}
	return n, nil
}

func walkNode(n Node, v Visitor) (Node, bool, error) {
	res := v.Enter(n)
	switch res.kind {
	case visitUnchanged:
	case visitReplace:
		n = res.replacement
	case visitSkipChildren:
	case visitRemove:
		return nil, false, fmt.Errorf("Remove is not a valid result from Enter")
	}

	if res.kind != visitSkipChildren {
		if err := walkChildren(n, v); err != nil {
			return nil, false, err
		}
	}

	res = v.Leave(n)
	switch res.kind {
	case visitUnchanged:
		return n, true, nil
	case visitReplace:
		return res.replacement, true, nil
	case visitRemove:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("SkipChildren is not a valid result from Leave")
	}
}

// walkChildren visits each child of n in order, storing replacements back
// into the owning slot or list.
func walkChildren(n Node, v Visitor) error {
	switch x := n.(type) {
	case *Expression:
		return walkList(&x.Nodes, v)
	case *FuncCall:
		return walkList(&x.Args, v)
	case *Unary:
		return walkSlot(&x.Operand, v)
	case *Binary:
		if err := walkSlot(&x.Left, v); err != nil {
			return err
		}
		return walkSlot(&x.Right, v)
	case *OrderItem:
		return walkSlot(&x.Expr, v)
	case *Subquery:
		if x.Stmt == nil {
			return nil
		}
		// The wrapped statement is a full node visit of its own, so a
		// visitor sees nested SELECTs the same way it sees the root.
		nn, keep, err := walkNode(x.Stmt, v)
		if err != nil {
			return err
		}
		if !keep {
			x.Stmt = nil
			return nil
		}
		stmt, ok := nn.(*SelectStmt)
		if !ok {
			return fmt.Errorf("subquery replacement must be a SELECT statement, got %T", nn)
		}
		x.Stmt = stmt
		return nil
	case *SelectStmt:
		for _, list := range []*[]Node{&x.Columns, &x.From, &x.GroupBy, &x.OrderBy} {
			if err := walkList(list, v); err != nil {
				return err
			}
		}
		for _, slot := range []*Node{&x.Where, &x.Having, &x.Limit, &x.Offset} {
			if err := walkSlot(slot, v); err != nil {
				return err
			}
		}
		return nil
	default:
		// Leaf nodes: Ident, Table, Literal, Raw, Param.
		return nil
	}
}

// walkList rebuilds the list while walking the old one, so removing element
// i never skips element i+1.
func walkList(nodes *[]Node, v Visitor) error {
	if len(*nodes) == 0 {
		return nil
	}
	out := make([]Node, 0, len(*nodes))
	for _, n := range *nodes {
		nn, keep, err := walkNode(n, v)
		if err != nil {
			return err
		}
		if keep {
			out = append(out, nn)
		}
	}
	if len(out) == 0 {
		out = nil
	}
	*nodes = out
	return nil
}

// walkSlot walks a single-node slot; removal clears the slot to nil.
func walkSlot(slot *Node, v Visitor) error {
	if *slot == nil {
		return nil
	}
	nn, keep, err := walkNode(*slot, v)
	if err != nil {
		return err
	}
	if !keep {
		*slot = nil
		return nil
	}
	*slot = nn
	return nil
}

// InlineParams replaces every bound quoted parameter in the tree with a
// literal carrying its value. Unbound and unquoted parameters are left in
// place. The root is returned in case it was itself a parameter.
func InlineParams(root Node, args Args) (Node, error) {
	return Walk(root, VisitorFuncs{
		LeaveFunc: func(n Node) VisitResult {
			if p, ok := n.(*Param); ok && !p.Unquoted {
				if v, bound := args[p.Name]; bound {
					return Replace(&Literal{Value: v})
				}
			}
			return Unchanged()
		},
	})
}
