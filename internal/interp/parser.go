package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tcztzy/wenyan/hanzi"
	"github.com/tcztzy/wenyan/lexer"
)

// Parse turns a token stream into a statement list. Failures are
// *Error values whose Off points at the offending token.
func Parse(tokens []lexer.Token) ([]Stmt, error) {
	p := &parser{toks: tokens}
	return p.parseProgram()
}

type parser struct {
	toks []lexer.Token
	i    int
}

func (p *parser) eof() bool { return p.i >= len(p.toks) }

func (p *parser) peek() lexer.Token {
	if p.eof() {
		return lexer.Token{}
	}
	return p.toks[p.i]
}

func (p *parser) next() lexer.Token {
	t := p.peek()
	if !p.eof() {
		p.i++
	}
	return t
}

func (p *parser) at(typ string) bool { return p.peek().Type == typ }

func (p *parser) accept(typ string) bool {
	if p.at(typ) {
		p.i++
		return true
	}
	return false
}

func (p *parser) expect(typ string) (lexer.Token, error) {
	if !p.at(typ) {
		return lexer.Token{}, p.errorf(p.peek().Start, "expected 「%s」", typ)
	}
	return p.next(), nil
}

func (p *parser) errorf(off int, format string, args ...interface{}) error {
	return &Error{Msg: fmt.Sprintf(format, args...), Off: off}
}

func (p *parser) unexpected() error {
	t := p.peek()
	if t.Type == "" {
		return p.errorf(p.off(), "unexpected end of source")
	}
	if t.Type == lexer.TypeData {
		return p.errorf(t.Start, "unexpected text 「%s」", t.Value)
	}
	return p.errorf(t.Start, "unexpected 「%s」", t.Type)
}

func (p *parser) off() int {
	if p.eof() {
		if n := len(p.toks); n > 0 {
			return p.toks[n-1].End
		}
		return 0
	}
	return p.peek().Start
}

func (p *parser) parseProgram() ([]Stmt, error) {
	var stmts []Stmt
	for !p.eof() {
		// Closing particles with nothing open carry no meaning.
		if p.accept("也") || p.accept("云云") {
			continue
		}
		st, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	return stmts, nil
}

// parseBlock reads statements until a token in stop or the end of the
// stream. The stop token itself is left for the caller.
func (p *parser) parseBlock(stop map[string]bool) ([]Stmt, error) {
	var stmts []Stmt
	for !p.eof() && !stop[p.peek().Type] {
		st, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	return stmts, nil
}

var declKinds = map[string]bool{
	"數": true, "言": true, "爻": true, "列": true, "元": true,
}

func (p *parser) parseStmt() (Stmt, error) {
	t := p.peek()
	switch t.Type {
	case "吾有", "今有":
		return p.parseDecl()
	case "有":
		return p.parseShortDecl()
	case "名之曰":
		return p.parseName()
	case "書之":
		p.next()
		return &PrintStmt{node: node{t.Start}}, nil
	case "噫":
		p.next()
		return &DiscardStmt{node: node{t.Start}}, nil
	case "加", "減", "乘", "除":
		return p.parseMath()
	case "變":
		p.next()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &NotStmt{node: node{t.Start}, X: x}, nil
	case "銜":
		return p.parseConcat()
	case "充":
		return p.parsePush()
	case "夫":
		p.next()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &RefStmt{node: node{t.Start}, X: x}, nil
	case "昔之":
		return p.parseAssign()
	case "若", "若其然者", "若其不然者":
		return p.parseIf()
	case "恆為是":
		p.next()
		body, err := p.parseBlock(loopStops)
		if err != nil {
			return nil, err
		}
		p.accept("云云")
		return &WhileStmt{node: node{t.Start}, Body: body}, nil
	case "為是":
		return p.parseRepeat()
	case "凡":
		return p.parseForEach()
	case "乃止", "乃止是遍":
		p.next()
		return &BreakStmt{node: node{t.Start}}, nil
	case "乃得":
		p.next()
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ReturnStmt{node: node{t.Start}, Value: v}, nil
	case "乃得矣":
		p.next()
		return &ReturnStmt{node: node{t.Start}, FromStage: true}, nil
	case "乃歸空無":
		p.next()
		return &ReturnStmt{node: node{t.Start}}, nil
	case "施":
		return p.parseCall()
	case "取":
		return p.parseTakeCall()
	default:
		return nil, p.unexpected()
	}
}

// A loop body closes at 云云, at the surrounding function's 是謂, or
// implicitly where a return statement follows it.
var loopStops = map[string]bool{
	"云云": true, "是謂": true, "乃得": true, "乃得矣": true, "乃歸空無": true,
}

func (p *parser) parseCount() (int, error) {
	t := p.peek()
	if t.Type != lexer.TypeNumber {
		return 0, p.errorf(t.Start, "expected a count")
	}
	n, err := strconv.Atoi(t.Value)
	if err != nil || n < 1 {
		return 0, p.errorf(t.Start, "bad count 「%s」", t.Value)
	}
	p.next()
	return n, nil
}

func (p *parser) parseDecl() (Stmt, error) {
	kw := p.next()
	count, err := p.parseCount()
	if err != nil {
		return nil, err
	}
	kind := p.peek()
	switch {
	case kind.Type == "術":
		p.next()
		return p.parseFuncDecl(kw.Start)
	case kind.Type == "物":
		return nil, p.errorf(kind.Start, "objects are not supported")
	case declKinds[kind.Type]:
		p.next()
	default:
		return nil, p.errorf(kind.Start, "expected a type after the count")
	}
	st := &DeclStmt{node: node{kw.Start}, Count: count, Kind: kind.Type}
	for p.accept("曰") {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		st.Values = append(st.Values, v)
	}
	if len(st.Values) > count {
		return nil, p.errorf(kw.Start, "%d values declared but %d given", count, len(st.Values))
	}
	for len(st.Values) < count {
		st.Values = append(st.Values, defaultValue(kind.Type, kw.Start))
	}
	return st, nil
}

func (p *parser) parseShortDecl() (Stmt, error) {
	kw := p.next()
	kind := p.peek()
	if !declKinds[kind.Type] {
		return nil, p.errorf(kind.Start, "expected a type after 「有」")
	}
	p.next()
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &DeclStmt{node: node{kw.Start}, Count: 1, Kind: kind.Type, Values: []Expr{v}}, nil
}

func defaultValue(kind string, pos int) Expr {
	switch kind {
	case "數":
		return &IntLit{node: node{pos}, V: hanzi.FromInt64(0)}
	case "言":
		return &StrLit{node: node{pos}}
	case "爻":
		return &BoolLit{node: node{pos}}
	case "列":
		return &ListLit{node: node{pos}}
	default:
		return &NilLit{node: node{pos}}
	}
}

func (p *parser) parseFuncDecl(pos int) (Stmt, error) {
	if _, err := p.expect("名之曰"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	fn := &FuncDecl{node: node{pos}, Name: name}
	if _, err := p.expect("欲行是術"); err != nil {
		return nil, err
	}
	if p.accept("必先得") {
		for {
			if p.at("其餘") {
				return nil, p.errorf(p.off(), "rest parameters are not supported")
			}
			count, err := p.parseCount()
			if err != nil {
				return nil, err
			}
			if !declKinds[p.peek().Type] {
				return nil, p.errorf(p.off(), "expected a parameter type")
			}
			p.next()
			for j := 0; j < count; j++ {
				if _, err := p.expect("曰"); err != nil {
					return nil, err
				}
				pn, err := p.expectName()
				if err != nil {
					return nil, err
				}
				fn.Params = append(fn.Params, pn)
			}
			if p.peek().Type != lexer.TypeNumber && !p.at("其餘") {
				break
			}
		}
	}
	if _, err := p.expect("乃行是術曰"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(map[string]bool{"是謂": true})
	if err != nil {
		return nil, err
	}
	fn.Body = body
	if _, err := p.expect("是謂"); err != nil {
		return nil, err
	}
	closing, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if closing != name {
		return nil, p.errorf(p.off(), "「%s」 closed as 「%s」", name, closing)
	}
	if _, err := p.expect("之術也"); err != nil {
		return nil, err
	}
	return fn, nil
}

func (p *parser) parseName() (Stmt, error) {
	kw := p.next()
	st := &NameStmt{node: node{kw.Start}}
	n, err := p.expectName()
	if err != nil {
		return nil, err
	}
	st.Names = append(st.Names, n)
	for p.accept("曰") {
		n, err := p.expectName()
		if err != nil {
			return nil, err
		}
		st.Names = append(st.Names, n)
	}
	return st, nil
}

func (p *parser) expectName() (string, error) {
	t := p.peek()
	if t.Type != lexer.TypeName {
		return "", p.errorf(t.Start, "expected a name")
	}
	p.next()
	return t.Value, nil
}

func (p *parser) parseMath() (Stmt, error) {
	kw := p.next()
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	swap := false
	switch {
	case p.accept("以"):
	case p.accept("於"):
		swap = true
	default:
		return nil, p.errorf(p.off(), "expected 「以」 or 「於」")
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if swap {
		left, right = right, left
	}
	op := kw.Type
	if op == OpDiv && p.accept("所餘幾何") {
		op = OpRem
	}
	return &MathStmt{node: node{kw.Start}, Op: op, Left: left, Right: right}, nil
}

func (p *parser) parseConcat() (Stmt, error) {
	kw := p.next()
	st := &ConcatStmt{node: node{kw.Start}}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	st.Items = append(st.Items, first)
	for p.accept("以") {
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		st.Items = append(st.Items, x)
	}
	if len(st.Items) < 2 {
		return nil, p.errorf(kw.Start, "「銜」 needs at least two operands")
	}
	return st, nil
}

func (p *parser) parsePush() (Stmt, error) {
	kw := p.next()
	target, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	st := &PushStmt{node: node{kw.Start}, Target: target}
	if !p.accept("以") {
		return nil, p.errorf(p.off(), "expected 「以」")
	}
	for {
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		st.Items = append(st.Items, x)
		if !p.accept("以") {
			break
		}
	}
	return st, nil
}

func (p *parser) parseAssign() (Stmt, error) {
	kw := p.next()
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	st := &AssignStmt{node: node{kw.Start}, Name: name}
	if p.accept("之") {
		idx, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		st.Index = idx
	}
	if _, err := p.expect("者"); err != nil {
		return nil, err
	}
	if _, err := p.expect("今"); err != nil {
		return nil, err
	}
	if p.accept("不復存矣") {
		st.Delete = true
		return st, nil
	}
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	st.Value = v
	// The closing runs 是矣, 是也 and bare 也. The lexer hands 是 back
	// as loose text; a trailing 也 stays put because it may close the
	// enclosing 若 clause as well.
	if t := p.peek(); t.Type == lexer.TypeData && strings.TrimSpace(t.Value) == "是" {
		p.next()
	}
	p.accept("是矣")
	return st, nil
}

var ifStops = map[string]bool{
	"或若": true, "若非": true, "云云": true, "也": true, "是謂": true,
}

var compareOps = map[string]bool{
	"等於": true, "不等於": true, "大於": true, "小於": true, "不大於": true, "不小於": true,
}

func (p *parser) parseIf() (Stmt, error) {
	kw := p.next()
	var cond CondClause
	switch kw.Type {
	case "若其然者":
		cond = CondClause{X: &ItExpr{node: node{kw.Start}}}
	case "若其不然者":
		cond = CondClause{X: &ItExpr{node: node{kw.Start}}, Negate: true}
	default:
		var err error
		cond, err = p.parseCond()
		if err != nil {
			return nil, err
		}
	}
	return p.parseIfTail(kw.Start, cond)
}

func (p *parser) parseCond() (CondClause, error) {
	x, err := p.parseExpr()
	if err != nil {
		return CondClause{}, err
	}
	cond := CondClause{X: x}
	if compareOps[p.peek().Type] {
		cond.Op = p.next().Type
		y, err := p.parseExpr()
		if err != nil {
			return CondClause{}, err
		}
		cond.Y = y
	}
	if _, err := p.expect("者"); err != nil {
		return CondClause{}, err
	}
	return cond, nil
}

// parseIfTail reads the branches after a condition. A bare 也 closes
// the current branch; the statement itself ends at 云云, at a 也 with
// no further branch, or implicitly at a block boundary.
func (p *parser) parseIfTail(pos int, cond CondClause) (Stmt, error) {
	then, err := p.parseBlock(ifStops)
	if err != nil {
		return nil, err
	}
	st := &IfStmt{node: node{pos}, Cond: cond, Then: then}
	if p.accept("也") {
		if !p.at("若非") && !p.at("或若") {
			return st, nil
		}
	}
	if p.at("或若") {
		alt := p.next()
		cond2, err := p.parseCond()
		if err != nil {
			return nil, err
		}
		nested, err := p.parseIfTail(alt.Start, cond2)
		if err != nil {
			return nil, err
		}
		st.Else = []Stmt{nested}
		return st, nil
	}
	if p.accept("若非") {
		st.Else, err = p.parseBlock(ifStops)
		if err != nil {
			return nil, err
		}
		if !p.accept("云云") {
			p.accept("也")
		}
		return st, nil
	}
	p.accept("云云")
	return st, nil
}

func (p *parser) parseRepeat() (Stmt, error) {
	kw := p.next()
	count, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("遍"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(loopStops)
	if err != nil {
		return nil, err
	}
	p.accept("云云")
	return &RepeatStmt{node: node{kw.Start}, Count: count, Body: body}, nil
}

func (p *parser) parseForEach() (Stmt, error) {
	kw := p.next()
	list, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("中之"); err != nil {
		return nil, err
	}
	v, err := p.expectName()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock(loopStops)
	if err != nil {
		return nil, err
	}
	p.accept("云云")
	return &ForEachStmt{node: node{kw.Start}, List: list, Var: v, Body: body}, nil
}

func (p *parser) parseCall() (Stmt, error) {
	kw := p.next()
	fn, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	st := &CallStmt{node: node{kw.Start}, Fn: fn}
	for {
		if p.accept("於") || p.accept("以") {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			st.Args = append(st.Args, arg)
			continue
		}
		break
	}
	return st, nil
}

func (p *parser) parseTakeCall() (Stmt, error) {
	kw := p.next()
	if p.at("其餘") {
		return nil, p.errorf(p.off(), "rest arguments are not supported")
	}
	n, err := p.parseCount()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("以施"); err != nil {
		return nil, err
	}
	fn, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return &CallStmt{node: node{kw.Start}, Fn: fn, TakeN: n}, nil
}

// parseExpr is a primary expression with its 之長 and 之 postfixes.
func (p *parser) parseExpr() (Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at("之長"):
			t := p.next()
			x = &LenExpr{node: node{t.Start}, X: x}
		case p.at("之"):
			t := p.next()
			idx, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			x = &IndexExpr{node: node{t.Start}, X: x, Index: idx}
		default:
			return x, nil
		}
	}
}

// literalUnescaper undoes the lexer's string literal escapes.
var literalUnescaper = strings.NewReplacer(`\"`, `"`, `\n`, "\n")

func (p *parser) parsePrimary() (Expr, error) {
	t := p.peek()
	switch t.Type {
	case lexer.TypeNumber:
		p.next()
		if strings.ContainsRune(t.Value, '.') {
			f, err := strconv.ParseFloat(t.Value, 64)
			if err != nil {
				return nil, p.errorf(t.Start, "bad number 「%s」", t.Value)
			}
			return &FloatLit{node: node{t.Start}, V: f}, nil
		}
		v, ok := hanzi.FromDecimal(t.Value)
		if !ok {
			return nil, p.errorf(t.Start, "bad number 「%s」", t.Value)
		}
		return &IntLit{node: node{t.Start}, V: v}, nil
	case lexer.TypeString:
		p.next()
		return &StrLit{node: node{t.Start}, V: literalUnescaper.Replace(t.Value)}, nil
	case lexer.TypeName:
		p.next()
		return &Ident{node: node{t.Start}, Name: t.Value}, nil
	case "其":
		p.next()
		return &ItExpr{node: node{t.Start}}, nil
	case "陰":
		p.next()
		return &BoolLit{node: node{t.Start}}, nil
	case "陽":
		p.next()
		return &BoolLit{node: node{t.Start}, V: true}, nil
	default:
		return nil, p.unexpected()
	}
}
