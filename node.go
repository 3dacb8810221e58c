package dynsql

// Node is implemented by every element of the expression tree. A parent node
// exclusively owns its children: subtrees are never shared and never cyclic.
//
// The interface is sealed so the render dispatcher and the walker can match
// exhaustively over the closed set of variants.
type Node interface {
	isNode()
}

// Ident is a column or other identifier, optionally qualified by a table
// name or alias. The qualifier is quoted unless it is a single-letter alias.
type Ident struct {
	Qualifier string
	Name      string
}

// Table is a table reference with an optional alias, used in FROM lists.
type Table struct {
	Name  string
	Alias string
}

// Literal is a raw Go value rendered through the dialect's literal quoting.
type Literal struct {
	Value any
}

// Raw is verbatim SQL text emitted without any quoting or inspection.
type Raw struct {
	Text string
}

// Param is a placeholder resolved against the argument map at render time.
//
// A quoted parameter (the default) renders as a dialect-escaped literal when
// extrapolating, or as a bind placeholder otherwise. An unquoted parameter
// renders its bound value as raw text and is meant for LIMIT/OFFSET, where
// some dialects require literal numerals rather than placeholders.
type Param struct {
	Name     string
	Unquoted bool
}

// Expression is a parenthesizable wrapper around an ordered sequence of
// child nodes. Children that render to nothing are dropped; survivors are
// joined with Sep (", " when empty). It is also manufactured by the
// set-membership operators to normalize a bare Param into a one-element
// bracketed list.
type Expression struct {
	Nodes    []Node
	Brackets bool
	Sep      string
}

// FuncCall is a function application. If any argument renders to nothing,
// the whole call renders to nothing: arguments cannot be dropped without
// changing the function's meaning.
type FuncCall struct {
	Name string
	Args []Node
}

// Unary applies a prefix operator (NOT, Neg, BitNot) to a single operand.
type Unary struct {
	Op      Operator
	Operand Node
}

// Binary applies a two-operand operator. Rendering rules vary by operator
// family; see renderBinary.
type Binary struct {
	Op    Operator
	Left  Node
	Right Node
}

// OrderItem is a single ORDER BY term: an expression plus a direction.
type OrderItem struct {
	Expr Node
	Dir  Direction
}

// Subquery wraps a SELECT statement used as an expression. It always
// renders bracketed.
type Subquery struct {
	Stmt *SelectStmt
}

func (*Ident) isNode()      {}
func (*Table) isNode()      {}
func (*Literal) isNode()    {}
func (*Raw) isNode()        {}
func (*Param) isNode()      {}
func (*Expression) isNode() {}
func (*FuncCall) isNode()   {}
func (*Unary) isNode()      {}
func (*Binary) isNode()     {}
func (*OrderItem) isNode()  {}
func (*Subquery) isNode()   {}
func (*SelectStmt) isNode() {}
