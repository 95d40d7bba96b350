package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzEvaluator(f *testing.F) {
	for _, text := range []string{"2+3*4", "(1+2", "$ff|'A'", "-1/0", ".x+y", ":Z%3", "((((("} {
		f.Add(text, uint32(0x1000), false)
	}

	f.Fuzz(func(t *testing.T, text string, pc uint32, strict bool) {
		assert := assert.New(t)

		lt := &LabelTable{}
		main, _ := lt.Add(nil, "main", 0x100)
		lt.Add(main, "x", 0x104)

		ev := &Evaluator{Labels: lt, Master: main, PC: pc, Strict: strict}
		value, next, err := ev.Eval(text, 0)
		if err != nil {
			assert.Equal(NoPosition, next)
			assert.Equal(uint32(0), value)
			assert.False(main.Used())
			return
		}
		assert.True(next > 0 && next <= len(text), text)
	})
}

func FuzzStatement(f *testing.F) {
	for _, line := range []string{
		"start:\tli r1, start+$10000",
		"\tld4 r2, [sp - 4]",
		"\t.byte \"abc\", 1, 2",
		".local\tbra .local",
		"\tst8 [r1], r2 ; comment",
		"k\t.equ 3*(4",
	} {
		f.Add(line)
	}

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		var listing strings.Builder
		asm := &Assembler{Listing: &listing}
		out, err := run(asm, source("fuzz.s", line))
		if err == nil {
			assert.True(strings.HasSuffix(out, ":00000001FF\n"), out)
			assert.Equal(0, len(asm.Errors))
			checkRecords(t, out)
		} else {
			assert.NotEqual(CLASS_IO, ClassOf(err))
		}
	})
}
