package asm

import (
	"errors"
	"slices"
	"strings"

	"github.com/ezrec/eonasm/translate"
)

var f = translate.From

// ErrClass is the category of an assembly error.
type ErrClass int

//go:generate go tool stringer -linecomment -type=ErrClass
const (
	CLASS_SYNTAX   = ErrClass(0) // syntax
	CLASS_SEMANTIC = ErrClass(1) // semantic
	CLASS_LIMIT    = ErrClass(2) // limit
	CLASS_IO       = ErrClass(3) // io
)

var (
	// Expression errors
	ErrExprSyntax         = errors.New(f("expr syntax"))
	ErrExprTooLong        = errors.New(f("expr too long"))
	ErrExprNesting        = errors.New(f("expression too deeply nested"))
	ErrExprParen          = errors.New(f("expr without ')'"))
	ErrDivideByZero       = errors.New(f("division by zero"))
	ErrLocalWithoutMaster = errors.New(f("local label without main label"))

	// Statement errors
	ErrLabelSyntax      = errors.New(f("label name missing"))
	ErrStringIncomplete = errors.New(f("incomplete string"))
	ErrUnexpectedComma  = errors.New(f("unexpected ','"))
	ErrRegisterUnknown  = errors.New(f("unknown register"))
	ErrMemoryBracket    = errors.New(f("memory access arg without ']'"))
	ErrExtraCharacters  = errors.New(f("extra characters at end"))

	// Semantic errors
	ErrLabelDuplicate   = errors.New(f("duplicated label"))
	ErrLabelLastPass    = errors.New(f("undefined label on last pass"))
	ErrDirectiveUnknown = errors.New(f("unknown directive"))
	ErrOpcodeUnknown    = errors.New(f("unknown opcode"))
	ErrOpcodeArgs       = errors.New(f("unknown combination of opcode and args"))
	ErrEquWithoutLabel  = errors.New(f(".EQU without label"))
	ErrZeroOverflow     = errors.New(f(".ZERO size overflow"))
	ErrByteOverflow     = errors.New(f(".BYTE overflow"))
	ErrWordOverflow     = errors.New(f(".WORD overflow"))
	ErrImmediateRange   = errors.New(f("immediate out of range"))
	ErrBranchRange      = errors.New(f("branch out of range"))
	ErrOffsetRange      = errors.New(f("memory offset out of range"))
	ErrSpecialRange     = errors.New(f("special register out of range"))
	ErrEncodingLoop     = errors.New(f("encoding rewrite limit exceeded"))

	// Limit errors
	ErrLabelTableFull = errors.New(f("label table exhausted"))
	ErrLineTooLong    = errors.New(f("line too long"))
	ErrTooManyErrors  = errors.New(f("too many errors"))
	ErrNoConvergence  = errors.New(f("label values do not converge"))
)

var syntaxErrors = []error{
	ErrExprSyntax,
	ErrDivideByZero,
	ErrExprTooLong,
	ErrExprNesting,
	ErrExprParen,
	ErrLabelSyntax,
	ErrStringIncomplete,
	ErrUnexpectedComma,
	ErrRegisterUnknown,
	ErrMemoryBracket,
	ErrExtraCharacters,
}

var limitErrors = []error{
	ErrLabelTableFull,
	ErrLineTooLong,
	ErrTooManyErrors,
	ErrNoConvergence,
}

// ClassOf returns the category of err.
func ClassOf(err error) ErrClass {
	var eio *ErrIO
	is := func(target error) bool { return errors.Is(err, target) }

	switch {
	case errors.As(err, &eio):
		return CLASS_IO
	case slices.ContainsFunc(limitErrors, is):
		return CLASS_LIMIT
	case slices.ContainsFunc(syntaxErrors, is):
		return CLASS_SYNTAX
	}

	return CLASS_SEMANTIC
}

// Fatal returns true if err must abort the run immediately.
func Fatal(err error) bool {
	class := ClassOf(err)
	return class == CLASS_LIMIT || class == CLASS_IO
}

type ErrLabelUndefined string

func (el ErrLabelUndefined) Error() string {
	return f("undefined label %v in expr", string(el))
}

// ErrNoEncoding reports an opcode used with operands no template accepts.
type ErrNoEncoding struct {
	Mnemonic string
	Args     []ArgKind
}

func (err *ErrNoEncoding) Error() string {
	kinds := make([]string, len(err.Args))
	for n, kind := range err.Args {
		kinds[n] = kind.String()
	}
	return f("%v: %v %v", ErrOpcodeArgs, err.Mnemonic, strings.Join(kinds, ","))
}

func (err *ErrNoEncoding) Is(target error) bool {
	return target == ErrOpcodeArgs
}

// ErrRewrite reports a sugar template that did not reach a canonical encoding.
type ErrRewrite Encoding

func (err ErrRewrite) Error() string {
	return f("%v: %v", ErrEncodingLoop, Encoding(err))
}

func (err ErrRewrite) Is(target error) bool {
	return target == ErrEncodingLoop
}

// ErrIO is an input or output failure.
type ErrIO struct {
	Path string
	Err  error
}

func (err *ErrIO) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrIO) Unwrap() error {
	return err.Err
}

// ErrLine locates an error in the assembly source.
type ErrLine struct {
	Source string
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d of %v: %v", err.LineNo, err.Source, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// ErrAssembly collects the errors recorded by a failed run.
type ErrAssembly struct {
	Errors []error
}

func (err *ErrAssembly) Error() string {
	return f("%d errors", len(err.Errors))
}

func (err *ErrAssembly) Unwrap() []error {
	return err.Errors
}
