package dynsql

// Operator represents expression operators. The value is the SQL symbol,
// except for prefix operators that collide with an infix symbol.
type Operator string

const (
	// Comparison operators.
	EQ Operator = "="
	NE Operator = "!="
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Pattern matching.
	LIKE    Operator = "LIKE"
	NotLike Operator = "NOT LIKE"

	// Set membership.
	IN    Operator = "IN"
	NotIn Operator = "NOT IN"

	// Boolean connectives.
	AND Operator = "AND"
	OR  Operator = "OR"

	// Arithmetic operators. Subtraction is Minus because Sub is the
	// subquery constructor.
	Add   Operator = "+"
	Minus Operator = "-"
	Mul   Operator = "*"
	Div   Operator = "/"
	Mod   Operator = "%"

	// Bitwise operators.
	BitAnd Operator = "&"
	BitOr  Operator = "|"
	BitXor Operator = "^"
	Shl    Operator = "<<"
	Shr    Operator = ">>"

	// String concatenation.
	Concat Operator = "||"

	// Prefix operators, valid only on Unary nodes.
	NOT    Operator = "NOT"
	Neg    Operator = "-neg"
	BitNot Operator = "~"
)

// isConnective reports whether op is a boolean connective. Connectives
// prune: an operand that renders to nothing is dropped and the survivor
// stands alone.
func (op Operator) isConnective() bool {
	return op == AND || op == OR
}

// isMembership reports whether op is a set-membership operator.
func (op Operator) isMembership() bool {
	return op == IN || op == NotIn
}

// symbol returns the SQL text for op.
func (op Operator) symbol() string {
	if op == Neg {
		return "-"
	}
	return string(op)
}

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// Mode selects the rendering policy for unresolved parameters. Only
// ModeApply exists today: sub-expressions that depend on an unsupplied
// parameter are pruned from the output.
type Mode int

const (
	ModeApply Mode = iota
)
