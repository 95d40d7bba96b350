package asm

import (
	"bufio"
	"io"
)

// Source is an assembly input, read once and scanned on every pass.
type Source struct {
	Name  string
	Lines []string
}

// ReadSource reads the lines of an assembly input.
func (asm *Assembler) ReadSource(name string, input io.Reader) (src Source, err error) {
	lim := asm.Limits.orDefault()

	src.Name = name

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		text := scanner.Text()
		if len(text) >= lim.MaxLine-1 {
			err = &ErrLine{Source: name, LineNo: len(src.Lines) + 1, Line: text, Err: ErrLineTooLong}
			return
		}
		src.Lines = append(src.Lines, text)
	}

	switch err = scanner.Err(); err {
	case nil:
	case bufio.ErrTooLong:
		err = &ErrLine{Source: name, LineNo: len(src.Lines) + 1, Err: ErrLineTooLong}
	default:
		err = &ErrIO{Path: name, Err: err}
	}

	return
}
