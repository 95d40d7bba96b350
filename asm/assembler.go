// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"io"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/eonasm/ihex"
)

// Assembler is a multi-pass assembler for the eon CPU.
type Assembler struct {
	Verbose bool      // If set, verbosely logs each pass.
	Listing io.Writer // If set, the final pass writes a listing here.
	Limits  Limits    // Bounds of the run; zero fields take defaults.

	Labels  LabelTable // Labels of the run, kept across sources and passes.
	Errors  []error    // Recoverable errors recorded by the run.
	Passes  int        // Passes run so far.
	Changes int        // Label changes seen by the last pass.

	predefine map[string]uint32 // Constants defined before the first pass.

	limits   Limits
	pass     int
	final    bool
	pc       uint32
	unstable bool
	master   *Label
	hex      *ihex.Writer
	ev       Evaluator
}

// Predefine defines a constant global label before the first pass.
// The name must be a global label name: a letter, then letters, digits or '_'.
func (asm *Assembler) Predefine(name string, value uint32) (err error) {
	if !isAlpha(at(name, 0)) || span(name, 0, isName) != len(name) {
		err = ErrLabelSyntax
		return
	}

	if asm.predefine == nil {
		asm.predefine = map[string]uint32{name: value}
	} else {
		asm.predefine[name] = value
	}

	return
}

// Assemble runs passes over sources until the labels converge, then a final
// pass writing the image to out as Intel HEX records.
func (asm *Assembler) Assemble(sources []Source, out io.Writer) (err error) {
	asm.limits = asm.Limits.orDefault()
	asm.Errors = nil
	asm.Passes = 0

	asm.Labels.Reset()
	asm.Labels.Capacity = asm.limits.MaxLabels
	asm.Labels.Chars = asm.limits.LabelChars
	for _, name := range slices.Sorted(maps.Keys(asm.predefine)) {
		var lbl *Label
		lbl, err = asm.Labels.Add(nil, name, asm.predefine[name])
		if err != nil {
			return
		}
		lbl.Flags |= LABEL_USED | LABEL_EQU
	}

	final := false
	for {
		if asm.Passes >= asm.limits.MaxPasses {
			err = ErrNoConvergence
			return
		}

		var more bool
		more, err = asm.Pass(sources, final, out)
		if err != nil {
			return
		}

		if len(asm.Errors) > 0 || final {
			break
		}

		final = !more
	}

	if len(asm.Errors) > 0 {
		err = &ErrAssembly{Errors: slices.Clone(asm.Errors)}
	}

	return
}

// Pass runs a single pass over sources. The first pass of a run discovers
// the labels; a final pass writes the image to out. more is true if the
// label values may still change.
func (asm *Assembler) Pass(sources []Source, final bool, out io.Writer) (more bool, err error) {
	if asm.limits.MaxLine == 0 {
		asm.limits = asm.Limits.orDefault()
	}

	asm.pass = asm.Passes
	asm.Passes++
	asm.final = final
	asm.pc = 0
	asm.Changes = 0
	asm.unstable = false
	asm.hex = nil

	if asm.Verbose {
		last := ""
		if final {
			last = " (last)"
		}
		log.Printf("begin pass %d%s", asm.pass, last)
	}

	if final && out != nil {
		asm.hex = ihex.NewWriter(out, asm.limits.RecordBytes)
	}

	for _, src := range sources {
		err = asm.assemble(src)
		if err != nil {
			return
		}
	}

	if asm.hex != nil {
		err = asm.hex.Close()
		if err != nil {
			err = &ErrIO{Path: "output", Err: err}
			return
		}
	}

	if asm.pass == 0 {
		more = asm.unstable
	} else {
		more = asm.Changes > 0
	}

	if asm.Verbose {
		log.Printf("end pass %d: %d label changes, pc %#x", asm.pass, asm.Changes, asm.pc)
	}

	return
}

// changed notes a label created or changed in this pass.
func (asm *Assembler) changed() {
	asm.Changes++
}

// assemble runs the lines of a single source.
func (asm *Assembler) assemble(src Source) (err error) {
	asm.master = nil

	listing := asm.final && asm.Listing != nil
	if listing {
		err = asm.listSource(src.Name)
		if err != nil {
			return
		}
	}

	for n, text := range src.Lines {
		lineno := n + 1

		st, serr := asm.statement(text)
		if serr != nil {
			serr = &ErrLine{Source: src.Name, LineNo: lineno, Line: text, Err: serr}
			if Fatal(serr) {
				err = serr
				return
			}
			asm.Errors = append(asm.Errors, serr)
			if len(asm.Errors) >= asm.limits.MaxErrors {
				err = ErrTooManyErrors
				return
			}
			continue
		}

		if listing {
			err = asm.list(st, asm.pc, lineno)
			if err != nil {
				return
			}
		}

		if asm.hex != nil && !st.org && !st.space {
			for i, b := range st.code {
				err = asm.hex.Emit(uint16(asm.pc+uint32(i)), b)
				if err != nil {
					err = &ErrIO{Path: "output", Err: err}
					return
				}
			}
		}

		asm.pc += st.size
	}

	return
}

// Summary writes the pass and label statistics of the run.
func (asm *Assembler) Summary(w io.Writer) (err error) {
	lim := asm.Limits.orDefault()
	_, err = fmt.Fprintf(w, "####################### %5d passes. global/local labels (MAX %5d): %5d / %5d\n",
		asm.Passes, lim.MaxLabels, asm.Labels.Globals(), asm.Labels.Locals())
	return
}
