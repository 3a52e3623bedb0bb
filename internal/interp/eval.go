package interp

import (
	"fmt"
	"io"

	"github.com/tcztzy/wenyan/hanzi"
	"github.com/tcztzy/wenyan/lexer"
)

// Interp evaluates wenyan programs. The zero value is not usable; make
// one with New. Global bindings and the value stage persist across Run
// calls so a session can build on earlier entries.
type Interp struct {
	globals *Env
	stage   []Value
	out     io.Writer
}

// New returns an interpreter writing program output to out.
func New(out io.Writer) *Interp {
	return &Interp{globals: NewEnv(nil), out: out}
}

// Run lexes, parses and evaluates src. The filename only labels lex
// errors. Lex failures are *lexer.SyntaxError; parse and runtime
// failures are *Error with a byte offset into src.
func (in *Interp) Run(src, filename string) error {
	tokens, err := lexer.Lex(src, filename)
	if err != nil {
		return err
	}
	prog, err := Parse(tokens)
	if err != nil {
		return err
	}
	_, _, err = in.execBlock(in.globals, prog)
	return err
}

type ctrl int

const (
	ctrlNone ctrl = iota
	ctrlBreak
	ctrlReturn
)

func (in *Interp) execBlock(env *Env, stmts []Stmt) (ctrl, Value, error) {
	for _, st := range stmts {
		c, v, err := in.exec(env, st)
		if err != nil {
			return ctrlNone, nil, err
		}
		if c != ctrlNone {
			return c, v, nil
		}
	}
	return ctrlNone, nil, nil
}

func (in *Interp) exec(env *Env, st Stmt) (ctrl, Value, error) {
	switch s := st.(type) {
	case *DeclStmt:
		for _, e := range s.Values {
			v, err := in.eval(env, e)
			if err != nil {
				return ctrlNone, nil, err
			}
			in.stage = append(in.stage, v)
		}
	case *FuncDecl:
		env.Define(s.Name, &Function{Name: s.Name, Params: s.Params, Body: s.Body, Env: env})
	case *NameStmt:
		n := len(s.Names)
		if n > len(in.stage) {
			return ctrlNone, nil, in.runtimeError(s, "nothing staged to name 「%s」", s.Names[0])
		}
		vals := in.stage[len(in.stage)-n:]
		in.stage = in.stage[:len(in.stage)-n]
		for i, name := range s.Names {
			env.Define(name, vals[i])
		}
	case *PrintStmt:
		for _, v := range in.stage {
			if _, err := io.WriteString(in.out, Format(v)+"\n"); err != nil {
				return ctrlNone, nil, err
			}
		}
		in.stage = in.stage[:0]
	case *DiscardStmt:
		in.stage = in.stage[:0]
	case *MathStmt:
		l, err := in.eval(env, s.Left)
		if err != nil {
			return ctrlNone, nil, err
		}
		r, err := in.eval(env, s.Right)
		if err != nil {
			return ctrlNone, nil, err
		}
		v, err := arith(s.Op, l, r)
		if err != nil {
			return ctrlNone, nil, in.wrap(s, err)
		}
		in.stage = append(in.stage, v)
	case *NotStmt:
		v, err := in.eval(env, s.X)
		if err != nil {
			return ctrlNone, nil, err
		}
		in.stage = append(in.stage, !truthy(v))
	case *ConcatStmt:
		v, err := in.concat(env, s)
		if err != nil {
			return ctrlNone, nil, err
		}
		in.stage = append(in.stage, v)
	case *PushStmt:
		tv, err := in.eval(env, s.Target)
		if err != nil {
			return ctrlNone, nil, err
		}
		list, ok := tv.(*List)
		if !ok {
			return ctrlNone, nil, in.runtimeError(s, "cannot 充 a %s", typeName(tv))
		}
		for _, e := range s.Items {
			v, err := in.eval(env, e)
			if err != nil {
				return ctrlNone, nil, err
			}
			list.Items = append(list.Items, v)
		}
	case *RefStmt:
		v, err := in.eval(env, s.X)
		if err != nil {
			return ctrlNone, nil, err
		}
		in.stage = append(in.stage, v)
	case *AssignStmt:
		if err := in.assign(env, s); err != nil {
			return ctrlNone, nil, err
		}
	case *IfStmt:
		ok, err := in.evalCond(env, s, s.Cond)
		if err != nil {
			return ctrlNone, nil, err
		}
		if ok {
			return in.execBlock(env, s.Then)
		}
		return in.execBlock(env, s.Else)
	case *WhileStmt:
		for {
			c, v, err := in.execBlock(env, s.Body)
			if err != nil {
				return ctrlNone, nil, err
			}
			if c == ctrlBreak {
				break
			}
			if c == ctrlReturn {
				return c, v, nil
			}
		}
	case *RepeatStmt:
		cv, err := in.eval(env, s.Count)
		if err != nil {
			return ctrlNone, nil, err
		}
		n, err := in.loopCount(s, cv)
		if err != nil {
			return ctrlNone, nil, err
		}
		for i := int64(0); i < n; i++ {
			c, v, err := in.execBlock(env, s.Body)
			if err != nil {
				return ctrlNone, nil, err
			}
			if c == ctrlBreak {
				break
			}
			if c == ctrlReturn {
				return c, v, nil
			}
		}
	case *ForEachStmt:
		lv, err := in.eval(env, s.List)
		if err != nil {
			return ctrlNone, nil, err
		}
		list, ok := lv.(*List)
		if !ok {
			return ctrlNone, nil, in.runtimeError(s, "cannot iterate a %s", typeName(lv))
		}
		scope := NewEnv(env)
		for _, item := range list.Items {
			scope.Define(s.Var, item)
			c, v, err := in.execBlock(scope, s.Body)
			if err != nil {
				return ctrlNone, nil, err
			}
			if c == ctrlBreak {
				break
			}
			if c == ctrlReturn {
				return c, v, nil
			}
		}
	case *BreakStmt:
		return ctrlBreak, nil, nil
	case *ReturnStmt:
		switch {
		case s.FromStage:
			v, err := in.popStage(s)
			if err != nil {
				return ctrlNone, nil, err
			}
			return ctrlReturn, v, nil
		case s.Value != nil:
			v, err := in.eval(env, s.Value)
			if err != nil {
				return ctrlNone, nil, err
			}
			return ctrlReturn, v, nil
		default:
			return ctrlReturn, nil, nil
		}
	case *CallStmt:
		v, err := in.call(env, s)
		if err != nil {
			return ctrlNone, nil, err
		}
		in.stage = append(in.stage, v)
	default:
		return ctrlNone, nil, in.runtimeError(st, "unknown statement")
	}
	return ctrlNone, nil, nil
}

func (in *Interp) loopCount(s Stmt, v Value) (int64, error) {
	i, ok := v.(hanzi.Int)
	if !ok {
		return 0, in.runtimeError(s, "loop count must be an integer, not %s", typeName(v))
	}
	n, ok := i.Int64()
	if !ok || n < 0 {
		return 0, in.runtimeError(s, "bad loop count %s", i)
	}
	return n, nil
}

func (in *Interp) concat(env *Env, s *ConcatStmt) (Value, error) {
	first, err := in.eval(env, s.Items[0])
	if err != nil {
		return nil, err
	}
	switch acc := first.(type) {
	case string:
		out := acc
		for _, e := range s.Items[1:] {
			v, err := in.eval(env, e)
			if err != nil {
				return nil, err
			}
			sv, ok := v.(string)
			if !ok {
				return nil, in.runtimeError(s, "cannot 銜 言 with %s", typeName(v))
			}
			out += sv
		}
		return out, nil
	case *List:
		out := &List{Items: append([]Value(nil), acc.Items...)}
		for _, e := range s.Items[1:] {
			v, err := in.eval(env, e)
			if err != nil {
				return nil, err
			}
			lv, ok := v.(*List)
			if !ok {
				return nil, in.runtimeError(s, "cannot 銜 列 with %s", typeName(v))
			}
			out.Items = append(out.Items, lv.Items...)
		}
		return out, nil
	default:
		return nil, in.runtimeError(s, "cannot 銜 a %s", typeName(first))
	}
}

func (in *Interp) assign(env *Env, s *AssignStmt) error {
	if s.Index == nil {
		var v Value
		if !s.Delete {
			var err error
			v, err = in.eval(env, s.Value)
			if err != nil {
				return err
			}
		}
		if !env.Set(s.Name, v) {
			env.Define(s.Name, v)
		}
		return nil
	}
	lv, ok := env.Get(s.Name)
	if !ok {
		return in.runtimeError(s, "「%s」 is not defined", s.Name)
	}
	list, ok := lv.(*List)
	if !ok {
		return in.runtimeError(s, "cannot index into a %s", typeName(lv))
	}
	iv, err := in.eval(env, s.Index)
	if err != nil {
		return err
	}
	idx, err := in.indexOf(s, iv, len(list.Items))
	if err != nil {
		return err
	}
	if s.Delete {
		list.Items = append(list.Items[:idx], list.Items[idx+1:]...)
		return nil
	}
	v, err := in.eval(env, s.Value)
	if err != nil {
		return err
	}
	list.Items[idx] = v
	return nil
}

func (in *Interp) evalCond(env *Env, s Stmt, c CondClause) (bool, error) {
	x, err := in.eval(env, c.X)
	if err != nil {
		return false, err
	}
	var ok bool
	if c.Op == "" {
		ok = truthy(x)
	} else {
		y, err := in.eval(env, c.Y)
		if err != nil {
			return false, err
		}
		ok, err = compare(c.Op, x, y)
		if err != nil {
			return false, in.wrap(s, err)
		}
	}
	if c.Negate {
		ok = !ok
	}
	return ok, nil
}

func (in *Interp) call(env *Env, s *CallStmt) (Value, error) {
	fv, err := in.eval(env, s.Fn)
	if err != nil {
		return nil, err
	}
	fn, ok := fv.(*Function)
	if !ok {
		return nil, in.runtimeError(s, "cannot call a %s", typeName(fv))
	}
	var args []Value
	if s.TakeN > 0 {
		if s.TakeN > len(in.stage) {
			return nil, in.runtimeError(s, "took %d values but only %d staged", s.TakeN, len(in.stage))
		}
		args = append(args, in.stage[len(in.stage)-s.TakeN:]...)
		in.stage = in.stage[:len(in.stage)-s.TakeN]
	} else {
		for _, e := range s.Args {
			v, err := in.eval(env, e)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
	}
	return in.apply(s, fn, args)
}

// apply runs fn, or binds the arguments into a copy when there are
// still parameters left to fill.
func (in *Interp) apply(s Stmt, fn *Function, args []Value) (Value, error) {
	bound := append(append([]Value(nil), fn.bound...), args...)
	if len(bound) > len(fn.Params) {
		return nil, in.runtimeError(s, "「%s」 takes %d arguments but got %d", fn.Name, len(fn.Params), len(bound))
	}
	if len(bound) < len(fn.Params) {
		partial := *fn
		partial.bound = bound
		return &partial, nil
	}
	scope := NewEnv(fn.Env)
	for i, p := range fn.Params {
		scope.Define(p, bound[i])
	}
	c, v, err := in.execBlock(scope, fn.Body)
	if err != nil {
		return nil, err
	}
	if c == ctrlReturn {
		return v, nil
	}
	return nil, nil
}

func (in *Interp) popStage(s Stmt) (Value, error) {
	if len(in.stage) == 0 {
		return nil, in.runtimeError(s, "nothing staged")
	}
	v := in.stage[len(in.stage)-1]
	in.stage = in.stage[:len(in.stage)-1]
	return v, nil
}

func (in *Interp) eval(env *Env, e Expr) (Value, error) {
	switch x := e.(type) {
	case *IntLit:
		return x.V, nil
	case *FloatLit:
		return x.V, nil
	case *StrLit:
		return x.V, nil
	case *BoolLit:
		return x.V, nil
	case *ListLit:
		return &List{}, nil
	case *NilLit:
		return nil, nil
	case *Ident:
		v, ok := env.Get(x.Name)
		if !ok {
			return nil, in.runtimeError(x, "「%s」 is not defined", x.Name)
		}
		return v, nil
	case *ItExpr:
		return in.popStage(x)
	case *LenExpr:
		v, err := in.eval(env, x.X)
		if err != nil {
			return nil, err
		}
		switch t := v.(type) {
		case *List:
			return hanzi.FromInt64(int64(len(t.Items))), nil
		case string:
			return hanzi.FromInt64(int64(len([]rune(t)))), nil
		default:
			return nil, in.runtimeError(x, "a %s has no length", typeName(v))
		}
	case *IndexExpr:
		v, err := in.eval(env, x.X)
		if err != nil {
			return nil, err
		}
		iv, err := in.eval(env, x.Index)
		if err != nil {
			return nil, err
		}
		switch t := v.(type) {
		case *List:
			idx, err := in.indexOf(x, iv, len(t.Items))
			if err != nil {
				return nil, err
			}
			return t.Items[idx], nil
		case string:
			runes := []rune(t)
			idx, err := in.indexOf(x, iv, len(runes))
			if err != nil {
				return nil, err
			}
			return string(runes[idx]), nil
		default:
			return nil, in.runtimeError(x, "cannot index into a %s", typeName(v))
		}
	default:
		return nil, in.runtimeError(e, "unknown expression")
	}
}

// indexOf converts the 1-based index value iv against a sequence of
// length n into a 0-based offset.
func (in *Interp) indexOf(at interface{ Pos() int }, iv Value, n int) (int, error) {
	i, ok := iv.(hanzi.Int)
	if !ok {
		return 0, in.runtimeError(at, "index must be an integer, not %s", typeName(iv))
	}
	v, ok := i.Int64()
	if !ok || v < 1 || v > int64(n) {
		return 0, in.runtimeError(at, "index %s out of range [1, %d]", i, n)
	}
	return int(v - 1), nil
}

func compare(op string, x, y Value) (bool, error) {
	switch op {
	case "等於":
		return equalValues(x, y), nil
	case "不等於":
		return !equalValues(x, y), nil
	}
	c, ok := compareValues(x, y)
	if !ok {
		return false, &Error{Msg: "cannot order " + typeName(x) + " and " + typeName(y)}
	}
	switch op {
	case "大於":
		return c > 0, nil
	case "小於":
		return c < 0, nil
	case "不大於":
		return c <= 0, nil
	case "不小於":
		return c >= 0, nil
	default:
		return false, &Error{Msg: "unknown comparison " + op}
	}
}

func (in *Interp) runtimeError(at interface{ Pos() int }, format string, args ...interface{}) error {
	return &Error{Msg: fmt.Sprintf(format, args...), Off: at.Pos()}
}

// wrap attaches a position to a bare arithmetic or comparison error.
func (in *Interp) wrap(at interface{ Pos() int }, err error) error {
	if e, ok := err.(*Error); ok {
		e.Off = at.Pos()
		return e
	}
	return &Error{Msg: err.Error(), Off: at.Pos()}
}
