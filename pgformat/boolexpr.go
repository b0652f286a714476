package pgformat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vparity/gpsolve/bddengine"
)

// parseBoolExpr parses a transition label of the kind HOA emits inside
// "[...]" brackets — atomic propositions referenced by their positional
// index into the automaton's AP list, combined with !, &, |, t and
// parentheses — into a Func over apVars. Grounded on
// explicit2symbolic_path's reliance on Spot's own formula parser;
// reimplemented here as a small recursive-descent parser since no Spot
// bindings are available.
func parseBoolExpr(engine *bddengine.Engine, expr string, apVars []int) (bddengine.Func, error) {
	toks := tokenizeBoolExpr(expr)
	p := &boolExprParser{toks: toks, engine: engine, apVars: apVars}
	f, err := p.parseOr()
	if err != nil {
		return bddengine.Func{}, err
	}
	if p.pos != len(p.toks) {
		return bddengine.Func{}, fmt.Errorf("pgformat: unexpected token %q in label %q", p.toks[p.pos], expr)
	}
	return f, nil
}

func tokenizeBoolExpr(expr string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range expr {
		switch r {
		case '!', '&', '|', '(', ')':
			flush()
			toks = append(toks, string(r))
		case ' ', '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

type boolExprParser struct {
	toks   []string
	pos    int
	engine *bddengine.Engine
	apVars []int
}

func (p *boolExprParser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *boolExprParser) parseOr() (bddengine.Func, error) {
	left, err := p.parseAnd()
	if err != nil {
		return bddengine.Func{}, err
	}
	for p.peek() == "|" {
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return bddengine.Func{}, err
		}
		left, err = p.engine.Or(left, right)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return left, nil
}

func (p *boolExprParser) parseAnd() (bddengine.Func, error) {
	left, err := p.parseNot()
	if err != nil {
		return bddengine.Func{}, err
	}
	for p.peek() == "&" {
		p.pos++
		right, err := p.parseNot()
		if err != nil {
			return bddengine.Func{}, err
		}
		left, err = p.engine.And(left, right)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return left, nil
}

func (p *boolExprParser) parseNot() (bddengine.Func, error) {
	if p.peek() == "!" {
		p.pos++
		inner, err := p.parseNot()
		if err != nil {
			return bddengine.Func{}, err
		}
		return p.engine.Not(inner)
	}
	return p.parseAtom()
}

func (p *boolExprParser) parseAtom() (bddengine.Func, error) {
	tok := p.peek()
	switch tok {
	case "":
		return bddengine.Func{}, fmt.Errorf("pgformat: unexpected end of label")
	case "(":
		p.pos++
		f, err := p.parseOr()
		if err != nil {
			return bddengine.Func{}, err
		}
		if p.peek() != ")" {
			return bddengine.Func{}, fmt.Errorf("pgformat: missing closing parenthesis in label")
		}
		p.pos++
		return f, nil
	case "t", "true":
		p.pos++
		return p.engine.True(), nil
	case "f", "false":
		p.pos++
		return p.engine.False(), nil
	default:
		p.pos++
		apNum, err := strconv.Atoi(tok)
		if err != nil {
			return bddengine.Func{}, fmt.Errorf("pgformat: unknown atomic proposition reference %q in label", tok)
		}
		if apNum < 0 || apNum >= len(p.apVars) {
			return bddengine.Func{}, fmt.Errorf("pgformat: atomic proposition index %d out of range", apNum)
		}
		return p.engine.Ithvar(p.apVars[apNum])
	}
}
