package interp

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/tcztzy/wenyan/hanzi"
)

// Value is a runtime value: nil (空無), bool (爻), hanzi.Int or float64
// (數), string (言), *List (列) or *Function (術).
type Value interface{}

// List is a mutable sequence. It travels by pointer so 充 and indexed
// deletion stay visible through every binding of the same list.
type List struct {
	Items []Value
}

// Function is a callable 術. bound holds arguments applied so far; a
// call with fewer arguments than Params returns a copy with them
// bound, which is all partial application needs.
type Function struct {
	Name   string
	Params []string
	Body   []Stmt
	Env    *Env
	bound  []Value
}

func truthy(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case hanzi.Int:
		return !x.IsZero()
	case float64:
		return x != 0
	case string:
		return x != ""
	case *List:
		return len(x.Items) > 0
	case *Function:
		return true
	default:
		return false
	}
}

func typeName(v Value) string {
	switch v.(type) {
	case nil:
		return "空無"
	case bool:
		return "爻"
	case hanzi.Int, float64:
		return "數"
	case string:
		return "言"
	case *List:
		return "列"
	case *Function:
		return "術"
	default:
		return "?"
	}
}

func toFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case hanzi.Int:
		return x.Float64(), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// equalValues is 等於. Integers and fractions compare numerically
// across representations; lists and 術 compare by identity.
func equalValues(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case hanzi.Int:
		switch y := b.(type) {
		case hanzi.Int:
			return x.Equal(y)
		case float64:
			return x.Float64() == y
		}
		return false
	case float64:
		switch y := b.(type) {
		case hanzi.Int:
			return x == y.Float64()
		case float64:
			return x == y
		}
		return false
	default:
		return a == b
	}
}

// compareValues orders numbers numerically and stringsbytewise. The
// second result is false when the pair has no ordering.
func compareValues(a, b Value) (int, bool) {
	if x, ok := a.(string); ok {
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(x, y), true
	}
	if xi, ok := a.(hanzi.Int); ok {
		if yi, ok := b.(hanzi.Int); ok {
			return xi.Cmp(yi), true
		}
	}
	xf, xok := toFloat(a)
	yf, yok := toFloat(b)
	if !xok || !yok {
		return 0, false
	}
	switch {
	case xf < yf:
		return -1, true
	case xf > yf:
		return 1, true
	default:
		return 0, true
	}
}

// arith applies a math operator. Integer pairs stay exact; division
// falls back to a fraction only when the quotient is not whole.
func arith(op string, a, b Value) (Value, error) {
	if ai, ok := a.(hanzi.Int); ok {
		if bi, ok := b.(hanzi.Int); ok {
			switch op {
			case OpAdd:
				return ai.Add(bi), nil
			case OpSub:
				return ai.Sub(bi), nil
			case OpMul:
				return ai.Mul(bi), nil
			case OpDiv:
				if bi.IsZero() {
					return nil, errors.New("division by zero")
				}
				if ai.Rem(bi).IsZero() {
					return ai.Quo(bi), nil
				}
				return ai.Float64() / bi.Float64(), nil
			case OpRem:
				if bi.IsZero() {
					return nil, errors.New("division by zero")
				}
				return ai.Rem(bi), nil
			}
			return nil, errors.Errorf("unknown operator %s", op)
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, errors.Errorf("cannot apply %s to %s and %s", op, typeName(a), typeName(b))
	}
	switch op {
	case OpAdd:
		return af + bf, nil
	case OpSub:
		return af - bf, nil
	case OpMul:
		return af * bf, nil
	case OpDiv:
		if bf == 0 {
			return nil, errors.New("division by zero")
		}
		return af / bf, nil
	case OpRem:
		if bf == 0 {
			return nil, errors.New("division by zero")
		}
		return math.Mod(af, bf), nil
	default:
		return nil, errors.Errorf("unknown operator %s", op)
	}
}
