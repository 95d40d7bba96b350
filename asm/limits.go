package asm

const (
	MAX_LINE          = 128 // Line buffer size, including newline and terminator.
	MAX_CODE          = 128 // Bytes of a single .ZERO statement.
	MAX_ERRORS        = 8   // Recorded errors that abort the run.
	MAX_LABELS        = 256 // Label table size, globals and locals combined.
	MAX_CHAR_LABEL    = 22  // Significant label characters.
	OUTPUT_LINE_BYTES = 32  // Data bytes per hex record.
	MAX_PASSES        = 64  // Passes before convergence is abandoned.
	EXPR_DEPTH        = 8   // Value and operator stack depth of an expression.
	EXPR_NESTING      = 32  // Parenthesis nesting of an expression.
	MAX_REWRITES      = 2   // Sugar rewrites of a single template.
	LISTING_BYTES     = 6   // Code bytes per listing line.
)

// Limits holds the configurable bounds of an assembly run.
// Zero fields take the default value.
type Limits struct {
	MaxLine     int // Line buffer size.
	MaxCode     int // Bytes of a single .ZERO statement.
	MaxErrors   int // Recorded errors that abort the run.
	MaxLabels   int // Label table capacity.
	LabelChars  int // Significant label characters.
	RecordBytes int // Data bytes per hex record.
	MaxPasses   int // Passes before convergence is abandoned.
	ExprDepth   int // Expression stack depth.
	ExprNesting int // Expression parenthesis nesting.
}

// DefaultLimits returns the limits of the classical eon assembler.
func DefaultLimits() Limits {
	return Limits{
		MaxLine:     MAX_LINE,
		MaxCode:     MAX_CODE,
		MaxErrors:   MAX_ERRORS,
		MaxLabels:   MAX_LABELS,
		LabelChars:  MAX_CHAR_LABEL,
		RecordBytes: OUTPUT_LINE_BYTES,
		MaxPasses:   MAX_PASSES,
		ExprDepth:   EXPR_DEPTH,
		ExprNesting: EXPR_NESTING,
	}
}

// orDefault fills the zero fields of lim from DefaultLimits.
func (lim Limits) orDefault() Limits {
	def := DefaultLimits()
	fields := []struct{ val, def *int }{
		{&lim.MaxLine, &def.MaxLine},
		{&lim.MaxCode, &def.MaxCode},
		{&lim.MaxErrors, &def.MaxErrors},
		{&lim.MaxLabels, &def.MaxLabels},
		{&lim.LabelChars, &def.LabelChars},
		{&lim.RecordBytes, &def.RecordBytes},
		{&lim.MaxPasses, &def.MaxPasses},
		{&lim.ExprDepth, &def.ExprDepth},
		{&lim.ExprNesting, &def.ExprNesting},
	}
	for _, field := range fields {
		if *field.val <= 0 {
			*field.val = *field.def
		}
	}
	return lim
}
