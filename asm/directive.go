package asm

import (
	"strings"
)

// directive assembles a '.' directive statement.
func (asm *Assembler) directive(st *statement) (err error) {
	st.p++
	name := st.word(isAlpha)
	st.skipBlank()

	switch name {
	case "ORG":
		var value uint32
		value, _, err = asm.eval(st, true)
		if err != nil {
			return
		}
		st.org = true
		st.size = value - asm.pc
	case "EQU":
		err = asm.equ(st)
	case "ZERO":
		var count uint32
		count, _, err = asm.eval(st, true)
		if err != nil {
			return
		}
		if count > uint32(asm.limits.MaxCode) {
			err = ErrZeroOverflow
			return
		}
		st.code = make([]byte, count)
	case "SPACE":
		var count uint32
		count, _, err = asm.eval(st, true)
		if err != nil {
			return
		}
		st.space = true
		st.size = count
	case "BYTE":
		err = asm.bytes(st)
	case "WORD":
		err = asm.words(st)
	default:
		err = ErrDirectiveUnknown
	}

	return
}

// equ binds the statement label to a constant.
func (asm *Assembler) equ(st *statement) (err error) {
	value, _, err := asm.eval(st, true)
	if err != nil {
		return
	}

	lbl := st.label
	if lbl == nil {
		err = ErrEquWithoutLabel
		return
	}

	if lbl.Value != value {
		asm.changed()
	}
	lbl.Value = value
	lbl.Flags |= LABEL_USED | LABEL_EQU
	st.equ = true

	return
}

// bytes assembles the operands of .BYTE; strings expand to their characters.
func (asm *Assembler) bytes(st *statement) (err error) {
	for {
		st.skipBlank()

		if st.peek() == '"' {
			st.p++
			end := strings.IndexByte(st.text[st.p:], '"')
			if end < 0 {
				err = ErrStringIncomplete
				return
			}
			st.code = append(st.code, st.text[st.p:st.p+end]...)
			st.p += end + 1
			st.skipBlank()
		} else {
			var value uint32
			value, _, err = asm.eval(st, false)
			if err != nil {
				return
			}
			if asm.final && value > 0xff {
				err = ErrByteOverflow
				return
			}
			st.code = append(st.code, byte(value))
		}

		if st.peek() != ',' {
			return
		}
		st.p++
	}
}

// words assembles the big-endian operands of .WORD.
func (asm *Assembler) words(st *statement) (err error) {
	for {
		var value uint32
		value, _, err = asm.eval(st, false)
		if err != nil {
			return
		}
		if asm.final && value > 0xffff {
			err = ErrWordOverflow
			return
		}
		st.code = append(st.code, byte(value>>8), byte(value))

		if st.peek() != ',' {
			return
		}
		st.p++
	}
}
