package asm

import (
	"encoding/binary"
)

// Encoder turns matched templates into instruction bytes at a location.
type Encoder struct {
	PC    uint32 // Address of the instruction.
	Final bool   // If set, range checks are enforced.

	// Unstable is set when an instruction length depended on a forward
	// reference, so the addresses that follow it are not yet known.
	Unstable bool
}

// encodeState is a template being rewritten towards a canonical encoding.
type encodeState struct {
	kind Encoding
	word uint16
	args [3]Operand
}

// Encode emits the bytes of tmpl applied to args.
func (enc *Encoder) Encode(tmpl *Template, args []Operand) (code []byte, err error) {
	st := encodeState{kind: tmpl.Kind, word: tmpl.Word}
	copy(st.args[:], args)

	for rewrites := 0; ; rewrites++ {
		if rewrites > MAX_REWRITES {
			err = ErrRewrite(tmpl.Kind)
			return
		}

		var done bool
		code, done, err = enc.resolve(&st)
		if err != nil || done {
			return
		}
	}
}

// inRange16 returns true if v fits a signed 16-bit field.
func inRange16(v int32) bool {
	return v >= -32768 && v <= 32767
}

// resolve emits the bytes of a canonical encoding, or rewrites a sugar form
// into the state of another encoding and returns done == false.
func (enc *Encoder) resolve(st *encodeState) (code []byte, done bool, err error) {
	w := st.word
	a := &st.args
	hi := byte(w >> 8)
	lo := byte(w)

	switch st.kind {
	case ENC_FIXED:
		code = []byte{hi, lo}
	case ENC_REG3:
		code = []byte{hi | byte(a[0].Reg), byte(a[1].Reg<<4 | a[2].Reg)}
	case ENC_REG3_SUGAR:
		// op rd, rs => op rd, rd, rs
		a[2].Reg = a[1].Reg
		a[1].Reg = a[0].Reg
		st.kind = ENC_REG3
		return
	case ENC_REG2_IMM_SUGAR:
		// op rd, imm => op rd, rd, imm
		a[2].Value = a[1].Value
		a[1].Reg = a[0].Reg
		st.kind = ENC_REG2_IMM
		return
	case ENC_REG2_IMM:
		if enc.Final && !inRange16(a[2].Value) {
			err = ErrImmediateRange
			return
		}
		code = []byte{hi | byte(a[0].Reg), lo | byte(a[1].Reg<<4)}
		code = binary.BigEndian.AppendUint16(code, uint16(a[2].Value))
	case ENC_UNARY:
		code = []byte{hi | byte(a[0].Reg), lo | byte(a[1].Reg<<4)}
	case ENC_UNARY_SUGAR:
		code = []byte{hi | byte(a[0].Reg), lo | byte(a[0].Reg<<4)}
	case ENC_IMM:
		// op imm => op r0, r0, imm
		a[2].Value = a[0].Value
		a[0].Reg = 0
		a[1].Reg = 0
		st.kind = ENC_REG2_IMM
		return
	case ENC_BRANCH:
		off := (a[0].Value - (int32(enc.PC) + 4)) / 2
		if enc.Final && !inRange16(off) {
			err = ErrBranchRange
			return
		}
		code = []byte{hi, lo}
		code = binary.BigEndian.AppendUint16(code, uint16(off))
	case ENC_BRANCH_COND:
		st.word |= uint16(a[0].Reg)<<8 | uint16(a[1].Reg)<<4
		a[0].Value = a[2].Value
		st.kind = ENC_BRANCH
		return
	case ENC_BRANCH_ZERO:
		st.word |= uint16(a[0].Reg) << 8
		a[0].Value = a[1].Value
		st.kind = ENC_BRANCH
		return
	case ENC_MEM:
		if enc.Final && !inRange16(a[1].Value) {
			err = ErrOffsetRange
			return
		}
		code = []byte{hi | byte(a[0].Reg), lo | byte(a[1].Reg<<4)}
		code = binary.BigEndian.AppendUint16(code, uint16(a[1].Value))
	case ENC_STORE:
		// st [rb + off], rs => (rs, [rb + off])
		a[0], a[1] = a[1], a[0]
		st.kind = ENC_MEM
		return
	case ENC_JUMP:
		off := a[0].Value - (int32(enc.PC) + 6)
		code = []byte{hi, lo}
		code = binary.BigEndian.AppendUint32(code, uint32(off))
	case ENC_LEA:
		off := a[1].Value - (int32(enc.PC) + 6)
		code = []byte{hi, lo | byte(a[0].Reg<<4)}
		code = binary.BigEndian.AppendUint32(code, uint32(off))
	case ENC_LEA_MEM:
		if a[1].Reg == REG_SP {
			// lea rd, [sp + off] has its own memory form.
			a[1].Reg = a[0].Reg
			a[0].Reg = 0
			st.kind = ENC_MEM
		} else {
			// lea rd, [rs + off] => add rd, rs, off
			st.word = 0x3004
			a[2].Value = a[1].Value
			st.kind = ENC_REG2_IMM
		}
		return
	case ENC_LI:
		if a[1].Forward {
			enc.Unstable = true
		}
		n := a[1].Value
		switch {
		case n == 0:
			// and rd, zero, sp
			code = []byte{0x80 | byte(a[0].Reg), 0xff}
		case n == 1:
			// csetz rd, sp
			code = []byte{byte(a[0].Reg), 0xf8}
		case inRange16(n):
			// ori rd, r0, n
			st.word = 0x30f9
			a[1].Reg = 0
			a[2].Value = n
			st.kind = ENC_REG2_IMM
			return
		default:
			code = []byte{hi, lo | byte(a[0].Reg<<4)}
			code = binary.BigEndian.AppendUint32(code, uint32(n))
		}
	case ENC_REG1:
		code = []byte{hi, lo | byte(a[0].Reg<<4)}
	case ENC_MOVE:
		code = []byte{hi | byte(a[0].Reg), lo | byte(a[1].Reg)}
	case ENC_GET:
		if enc.Final && (a[1].Value < 0 || a[1].Value > 15) {
			err = ErrSpecialRange
			return
		}
		code = []byte{hi, lo | byte(a[0].Reg<<4)}
		code = binary.BigEndian.AppendUint16(code, uint16(a[1].Value))
	case ENC_SET:
		// set n, rs => get-form with the register first
		a[0].Reg = a[1].Reg
		a[1].Value = a[0].Value
		st.kind = ENC_GET
		return
	default:
		err = ErrRewrite(st.kind)
		return
	}

	done = true
	return
}
