package asm

import (
	"strings"
)

// statement is one source line being assembled.
type statement struct {
	text  string
	p     int
	label *Label // Label defined by the line.
	code  []byte // Emitted bytes.
	size  uint32 // Location counter advance.
	org   bool   // Set by .ORG.
	equ   bool   // Set by .EQU.
	space bool   // Set by .SPACE.
}

func (st *statement) peek() byte {
	return at(st.text, st.p)
}

func (st *statement) skipBlank() {
	st.p = skipBlank(st.text, st.p)
}

// word consumes a run of characters accepted by ok, upper-cased.
func (st *statement) word(ok func(byte) bool) string {
	start := st.p
	st.p = span(st.text, st.p, ok)
	return strings.ToUpper(st.text[start:st.p])
}

// statement assembles one line at the current location counter.
func (asm *Assembler) statement(text string) (st *statement, err error) {
	st = &statement{text: text}

	err = asm.defineLabel(st)
	if err != nil {
		return
	}

	st.skipBlank()
	switch c := st.peek(); {
	case c == '.':
		err = asm.directive(st)
	case isAlpha(c):
		err = asm.instruction(st)
	}
	if err != nil {
		return
	}

	st.skipBlank()
	if c := st.peek(); c != 0 && c != ';' && c != '#' {
		err = ErrExtraCharacters
		return
	}

	if !st.org && !st.space {
		st.size = uint32(len(st.code))
	}

	return
}

// defineLabel handles a label in column 0.
func (asm *Assembler) defineLabel(st *statement) (err error) {
	c := st.peek()
	if !isAlpha(c) && c != '.' {
		return
	}

	local := c == '.'
	if local {
		st.p++
	}

	name := st.word(isName)
	if len(name) == 0 {
		err = ErrLabelSyntax
		return
	}

	var master *Label
	if local {
		if asm.master == nil {
			err = ErrLocalWithoutMaster
			return
		}
		master = asm.master
	}

	lbl := asm.Labels.Find(master, name)
	if lbl != nil {
		if asm.pass == 0 {
			err = ErrLabelDuplicate
		} else if asm.Labels.Observe(lbl, asm.pc) {
			asm.changed()
		}
	} else {
		lbl, err = asm.Labels.Add(master, name, asm.pc)
		if err != nil {
			return
		}
		asm.changed()
		if asm.final {
			err = ErrLabelLastPass
		}
	}

	if !local {
		asm.master = lbl
	}
	st.label = lbl

	if st.peek() == ':' {
		st.p++
	}

	return
}

// eval evaluates the expression at the statement cursor.
// Undefined labels are tolerated unless strict is set or on the final pass.
func (asm *Assembler) eval(st *statement, strict bool) (value uint32, forward bool, err error) {
	ev := &asm.ev
	ev.Labels = &asm.Labels
	ev.Master = asm.master
	ev.PC = asm.pc
	ev.Strict = strict || asm.final
	ev.Depth = asm.limits.ExprDepth
	ev.Nesting = asm.limits.ExprNesting

	value, next, err := ev.Eval(st.text, st.p)
	if err != nil {
		return
	}

	st.p = next
	forward = ev.Tolerated()

	return
}

// instruction assembles an opcode statement.
func (asm *Assembler) instruction(st *statement) (err error) {
	mnemonic := st.word(isAlnum)
	op, ok := opcodeMap[mnemonic]
	if !ok {
		err = ErrOpcodeUnknown
		return
	}

	args, err := asm.operands(st)
	if err != nil {
		return
	}

	tmpl := Match(op, args)
	if tmpl == nil {
		kinds := make([]ArgKind, len(args))
		for n, arg := range args {
			kinds[n] = arg.Kind
		}
		err = &ErrNoEncoding{Mnemonic: mnemonic, Args: kinds}
		return
	}

	enc := Encoder{PC: asm.pc, Final: asm.final}
	st.code, err = enc.Encode(tmpl, args)
	if enc.Unstable {
		asm.unstable = true
	}

	return
}

// operands parses up to three instruction operands.
func (asm *Assembler) operands(st *statement) (args []Operand, err error) {
	sep := false
	for len(args) < 3 {
		st.skipBlank()

		c := st.peek()
		if c == ',' {
			if !sep {
				err = ErrUnexpectedComma
				return
			}
			st.p++
			sep = false
			continue
		}

		var arg Operand
		switch {
		case isAlpha(c):
			start := st.p
			reg, ok := registerMap[st.word(isAlnum)]
			if ok && !isName(st.peek()) {
				arg = Operand{Kind: ARG_REG, Reg: reg}
				break
			}
			st.p = start
			arg, err = asm.immediate(st)
		case c == '[':
			arg, err = asm.memory(st)
		case c == ':' || c == '.' || c == '$' || c == '\'' || c == '-' || c == '(' || isDigit(c):
			arg, err = asm.immediate(st)
		default:
			return
		}
		if err != nil {
			return
		}

		args = append(args, arg)
		sep = true
	}

	return
}

// immediate parses an expression operand.
func (asm *Assembler) immediate(st *statement) (arg Operand, err error) {
	value, forward, err := asm.eval(st, false)
	if err != nil {
		return
	}

	arg = Operand{Kind: ARG_IMM, Value: int32(value), Forward: forward}
	return
}

// memory parses a `[reg]`, `[reg + expr]` or `[reg - expr]` operand.
func (asm *Assembler) memory(st *statement) (arg Operand, err error) {
	st.p++
	st.skipBlank()

	reg, ok := registerMap[st.word(isAlnum)]
	if !ok {
		err = ErrRegisterUnknown
		return
	}
	arg = Operand{Kind: ARG_MEM, Reg: reg}

	st.skipBlank()
	if c := st.peek(); c == '+' || c == '-' {
		st.p++
		var value uint32
		value, arg.Forward, err = asm.eval(st, false)
		if err != nil {
			return
		}
		arg.Value = int32(value)
		if c == '-' {
			arg.Value = -arg.Value
		}
	}

	if st.peek() != ']' {
		err = ErrMemoryBracket
		return
	}
	st.p++

	return
}
