// Package asm implements the multi-pass assembler for the eon CPU.
//
// Source text is scanned once per pass. Labels are discovered on the first
// pass and re-resolved on every following pass until no label value changes;
// the pass after that is the final pass, which writes the memory image as
// Intel HEX records and, optionally, a listing.
//
// Global labels start in column 0. Local labels are written with a leading
// '.' and belong to the nearest preceding global label of the same source.
// Expressions are evaluated strictly left to right, without precedence.
package asm
