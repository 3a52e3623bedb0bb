package interp

import "github.com/tcztzy/wenyan/hanzi"

// node carries the byte offset of the first token of a construct so
// runtime failures can point back into the source.
type node struct {
	pos int
}

func (n node) Pos() int { return n.pos }

// Stmt is a wenyan statement.
type Stmt interface {
	Pos() int
}

// Expr is a wenyan expression.
type Expr interface {
	Pos() int
}

// DeclStmt declares values (吾有/今有/有). Values carries one entry per
// declared slot; missing literals are padded with the type default.
type DeclStmt struct {
	node
	Count  int
	Kind   string
	Values []Expr
}

// FuncDecl declares a named 術.
type FuncDecl struct {
	node
	Name   string
	Params []string
	Body   []Stmt
}

// NameStmt (名之曰) binds staged values to names, oldest first.
type NameStmt struct {
	node
	Names []string
}

// PrintStmt (書之) writes every staged value on its own line and
// empties the stage.
type PrintStmt struct {
	node
}

// DiscardStmt (噫) empties the stage.
type DiscardStmt struct {
	node
}

// MathStmt applies Op to Left and Right and stages the result. The
// parser already swapped the operands of the 於 form, and folds
// 除…所餘幾何 into OpRem.
type MathStmt struct {
	node
	Op    string
	Left  Expr
	Right Expr
}

// Math operators.
const (
	OpAdd = "加"
	OpSub = "減"
	OpMul = "乘"
	OpDiv = "除"
	OpRem = "餘"
)

// NotStmt (變) stages the logical negation of X.
type NotStmt struct {
	node
	X Expr
}

// ConcatStmt (銜) joins strings or lists and stages the result.
type ConcatStmt struct {
	node
	Items []Expr
}

// PushStmt (充) appends Items to the list Target evaluates to.
type PushStmt struct {
	node
	Target Expr
	Items  []Expr
}

// RefStmt (夫) stages the value of X.
type RefStmt struct {
	node
	X Expr
}

// AssignStmt (昔之…者。今…) rebinds Name, or one element of it when
// Index is set. Delete marks the 不復存矣 form: without an index the
// name becomes 空無, with an index the element is removed.
type AssignStmt struct {
	node
	Name   string
	Index  Expr
	Value  Expr
	Delete bool
}

// CondClause is the test of an 若 statement: X alone for truthiness,
// X Op Y for a comparison, Negate for the 若其不然者 form.
type CondClause struct {
	X      Expr
	Op     string
	Y      Expr
	Negate bool
}

// IfStmt covers 若, 若其然者, 若其不然者, with 或若 chains parsed into a
// nested IfStmt in Else.
type IfStmt struct {
	node
	Cond CondClause
	Then []Stmt
	Else []Stmt
}

// WhileStmt (恆為是) loops until 乃止 or a return.
type WhileStmt struct {
	node
	Body []Stmt
}

// RepeatStmt (為是…遍) runs Body Count times.
type RepeatStmt struct {
	node
	Count Expr
	Body  []Stmt
}

// ForEachStmt (凡…中之…) binds Var to each element of List in turn.
type ForEachStmt struct {
	node
	List Expr
	Var  string
	Body []Stmt
}

// BreakStmt (乃止/乃止是遍) leaves the innermost loop.
type BreakStmt struct {
	node
}

// ReturnStmt leaves the current 術. 乃得 returns Value, 乃得矣 sets
// FromStage and returns the newest staged value, 乃歸空無 returns 空無.
type ReturnStmt struct {
	node
	Value     Expr
	FromStage bool
}

// CallStmt (施/取…以施) calls Fn and stages the result. TakeN > 0 means
// the arguments are the newest TakeN staged values instead of Args.
type CallStmt struct {
	node
	Fn    Expr
	Args  []Expr
	TakeN int
}

// IntLit is an integer literal already converted from its numeral.
type IntLit struct {
	node
	V hanzi.Int
}

// FloatLit is a fractional literal.
type FloatLit struct {
	node
	V float64
}

// StrLit is a string literal with escapes resolved.
type StrLit struct {
	node
	V string
}

// BoolLit covers 陰 and 陽.
type BoolLit struct {
	node
	V bool
}

// ListLit evaluates to a fresh empty list; it pads 列 declarations.
type ListLit struct {
	node
}

// NilLit evaluates to 空無; it pads 元 declarations.
type NilLit struct {
	node
}

// Ident references a named value.
type Ident struct {
	node
	Name string
}

// ItExpr (其) references the newest staged value.
type ItExpr struct {
	node
}

// LenExpr (…之長) is the length of a list or string.
type LenExpr struct {
	node
	X Expr
}

// IndexExpr (…之…) selects a 1-based element of a list or string.
type IndexExpr struct {
	node
	X     Expr
	Index Expr
}
