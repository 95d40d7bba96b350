package asm

import (
	"fmt"
	"strings"
)

// list writes the listing lines of a statement at address pc.
func (asm *Assembler) list(st *statement, pc uint32, lineno int) (err error) {
	var out strings.Builder

	count := len(st.code)
	if st.org {
		count = 0
	}

	fmt.Fprintf(&out, "%04X ", uint16(pc))
	switch {
	case st.equ:
		value := st.label.Value
		fmt.Fprintf(&out, "= %04X.%04X ", uint16(value>>16), uint16(value))
	case st.space:
		fmt.Fprintf(&out, "? %04X %5d", uint16(st.size), st.size)
	default:
		asm.listBytes(&out, st.code[:count], 0)
	}
	fmt.Fprintf(&out, " %5d\t%s\n", lineno, st.text)

	if !st.space {
		for n := LISTING_BYTES; n < count; n += LISTING_BYTES {
			fmt.Fprintf(&out, "%04X ", uint16(pc+uint32(n)))
			asm.listBytes(&out, st.code[:count], n)
			out.WriteByte('\n')
		}
	}

	_, err = asm.Listing.Write([]byte(out.String()))
	if err != nil {
		err = &ErrIO{Path: "listing", Err: err}
	}
	return
}

// listBytes writes LISTING_BYTES slots of code starting at index from.
func (asm *Assembler) listBytes(out *strings.Builder, code []byte, from int) {
	for n := from; n < from+LISTING_BYTES; n++ {
		if n < len(code) {
			fmt.Fprintf(out, "%02X", code[n])
		} else {
			out.WriteString("  ")
		}
	}
}

// listSource writes the listing header of a source.
func (asm *Assembler) listSource(name string) (err error) {
	_, err = fmt.Fprintf(asm.Listing, "####################### %s\n", name)
	if err != nil {
		err = &ErrIO{Path: "listing", Err: err}
	}
	return
}
