// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"
)

// NoPosition is the cursor returned by a failed evaluation.
const NoPosition = -1

// operators are the binary operators, all of equal precedence.
const operators = "+-*/%&|"

// Evaluator computes the value of expressions against a label table.
//
// Operators have no precedence: `2 + 3 * 4` is 20. Undefined labels are an
// error when Strict is set, and evaluate to zero otherwise.
type Evaluator struct {
	Labels  *LabelTable // Label table to resolve names against.
	Master  *Label      // Active global label for '.' references.
	PC      uint32      // Value of the '$$' location counter.
	Strict  bool        // If set, undefined labels are an error.
	Depth   int         // Value and operator stack limit; zero is EXPR_DEPTH.
	Nesting int         // Parenthesis nesting limit; zero is EXPR_NESTING.

	tolerated bool
	refs      []*Label
}

// Eval evaluates the expression starting at text[pos], returning its value
// and the position just past it. On error next is NoPosition.
func (ev *Evaluator) Eval(text string, pos int) (value uint32, next int, err error) {
	ev.tolerated = false
	ev.refs = ev.refs[:0]

	value, next, err = ev.expr(text, pos, 0)
	if err != nil {
		return 0, NoPosition, err
	}

	for _, l := range ev.refs {
		l.Flags |= LABEL_USED
	}

	return
}

// Tolerated returns true if the last Eval resolved an undefined label to zero.
func (ev *Evaluator) Tolerated() bool {
	return ev.tolerated
}

// expr evaluates one parenthesis level.
func (ev *Evaluator) expr(text string, p int, nesting int) (value uint32, next int, err error) {
	limit := ev.Nesting
	if limit <= 0 {
		limit = EXPR_NESTING
	}
	if nesting >= limit {
		err = ErrExprNesting
		return
	}

	depth := ev.Depth
	if depth <= 0 {
		depth = EXPR_DEPTH
	}
	vals := Stack[uint32]{Limit: depth}
	ops := Stack[byte]{Limit: depth}

	for {
		p = skipBlank(text, p)
		start := p

		var v uint32
		var op byte

		c := at(text, p)
		switch {
		case c == '(':
			v, p, err = ev.expr(text, p+1, nesting+1)
			if err != nil {
				return
			}
			if at(text, p) != ')' {
				err = ErrExprParen
				return
			}
			p++
		case c == '$':
			p++
			if at(text, p) == '$' {
				v = ev.PC
				p++
				break
			}
			for d := hexDigit(at(text, p)); d >= 0; d = hexDigit(at(text, p)) {
				v = v<<4 | uint32(d)
				p++
			}
		case isDigit(c) || (c == '-' && isDigit(at(text, p+1)) && vals.Len() == ops.Len()):
			minus := c == '-'
			if minus {
				p++
			}
			for ; isDigit(at(text, p)); p++ {
				v = v*10 + uint32(text[p]-'0')
			}
			if minus {
				v = -v
			}
		case c == '\'' && p+2 < len(text) && text[p+2] == '\'':
			v = uint32(text[p+1])
			p += 3
		case c != 0 && strings.IndexByte(operators, c) >= 0:
			op = c
			p++
		case c == ':' || c == '.' || isAlpha(c):
			v, p, err = ev.label(text, p)
			if err != nil {
				return
			}
		default:
			return ev.reduce(&vals, &ops, start)
		}

		if op != 0 {
			if ops.Len()+1 != vals.Len() {
				return ev.reduce(&vals, &ops, start)
			}
			if !ops.Push(op) {
				err = ErrExprTooLong
				return
			}
		} else {
			if vals.Len() != ops.Len() {
				return ev.reduce(&vals, &ops, start)
			}
			if !vals.Push(v) {
				err = ErrExprTooLong
				return
			}
		}
	}
}

// reduce applies the stacked operators left to right.
func (ev *Evaluator) reduce(vals *Stack[uint32], ops *Stack[byte], p int) (value uint32, next int, err error) {
	if ops.Len()+1 != vals.Len() {
		err = ErrExprSyntax
		return
	}

	value = vals.Data[0]
	for n, op := range ops.Data {
		rhs := vals.Data[n+1]
		switch op {
		case '+':
			value += rhs
		case '-':
			value -= rhs
		case '*':
			value *= rhs
		case '/':
			if rhs == 0 {
				err = ErrDivideByZero
				return
			}
			value /= rhs
		case '%':
			if rhs == 0 {
				err = ErrDivideByZero
				return
			}
			value %= rhs
		case '&':
			value &= rhs
		case '|':
			value |= rhs
		}
	}

	next = p
	return
}

// label resolves a label reference: NAME, :NAME or .LOCAL.
func (ev *Evaluator) label(text string, p int) (value uint32, next int, err error) {
	if at(text, p) == ':' {
		p++
	}

	local := at(text, p) == '.'
	if local {
		p++
	}

	start := p
	p = span(text, p, isName)
	name := text[start:p]
	if len(name) == 0 {
		err = ErrExprSyntax
		return
	}

	var master *Label
	if local {
		if ev.Master == nil {
			err = ErrLocalWithoutMaster
			return
		}
		master = ev.Master
	}

	next = p

	l := ev.Labels.Find(master, name)
	if l == nil {
		if ev.Strict {
			if master != nil {
				name = master.Name + "." + name
			}
			err = ErrLabelUndefined(strings.ToUpper(name))
			next = NoPosition
			return
		}
		ev.tolerated = true
		return
	}

	ev.refs = append(ev.refs, l)
	value = l.Value

	return
}

// Constant evaluates text as a complete expression without labels.
func Constant(text string) (value uint32, err error) {
	ev := &Evaluator{Labels: &LabelTable{}, Strict: true}
	value, next, err := ev.Eval(text, 0)
	if err != nil {
		return
	}
	if skipBlank(text, next) != len(text) {
		err = ErrExtraCharacters
	}
	return
}
