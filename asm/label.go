package asm

import (
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/eonasm/internal"
)

// LabelFlag is a set of label attributes.
type LabelFlag uint8

const (
	LABEL_USED = LabelFlag(1 << 0) // Referenced by a successfully evaluated expression.
	LABEL_EQU  = LabelFlag(1 << 1) // Bound by .EQU, never recomputed from position.
)

// Label is a named 32-bit value. Local labels have a Master.
type Label struct {
	Name   string    // Normalized name.
	Value  uint32    // Current value.
	Flags  LabelFlag // Attributes.
	Master *Label    // Owning global label, nil for globals.

	locals []*Label
}

// Used returns true if the label was referenced.
func (l *Label) Used() bool {
	return l.Flags&LABEL_USED != 0
}

// Constant returns true if the label was bound by .EQU or predefined.
func (l *Label) Constant() bool {
	return l.Flags&LABEL_EQU != 0
}

// String returns the qualified name, MASTER.LOCAL for local labels.
func (l *Label) String() string {
	if l.Master != nil {
		return l.Master.Name + "." + l.Name
	}
	return l.Name
}

// LabelTable holds the global labels and their locals, bounded by a
// combined capacity.
type LabelTable struct {
	Capacity int // Combined global and local entries; zero is MAX_LABELS.
	Chars    int // Significant name characters; zero is MAX_CHAR_LABEL.

	globals []*Label
	nlocal  int
}

// normalize upper-cases a name and truncates it to the significant characters.
func (lt *LabelTable) normalize(name string) string {
	chars := lt.Chars
	if chars <= 0 {
		chars = MAX_CHAR_LABEL
	}
	if len(name) > chars {
		name = name[:chars]
	}
	return strings.ToUpper(name)
}

// scope returns the labels visible from master; nil selects the globals.
func (lt *LabelTable) scope(master *Label) []*Label {
	if master == nil {
		return lt.globals
	}
	return master.locals
}

// Find looks up name among the globals, or among the locals of master.
func (lt *LabelTable) Find(master *Label, name string) *Label {
	name = lt.normalize(name)
	for _, l := range lt.scope(master) {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Add registers a new label, local to master if master is not nil.
func (lt *LabelTable) Add(master *Label, name string, value uint32) (l *Label, err error) {
	capacity := lt.Capacity
	if capacity <= 0 {
		capacity = MAX_LABELS
	}
	if len(lt.globals)+lt.nlocal >= capacity {
		err = ErrLabelTableFull
		return
	}

	l = &Label{
		Name:   lt.normalize(name),
		Value:  value,
		Master: master,
	}

	if master != nil {
		master.locals = append(master.locals, l)
		lt.nlocal++
	} else {
		lt.globals = append(lt.globals, l)
	}

	return
}

// Observe re-sights label l at value, returning true if the value changed.
// Constant labels keep their value.
func (lt *LabelTable) Observe(l *Label, value uint32) (changed bool) {
	if l.Constant() || l.Value == value {
		return
	}
	l.Value = value
	return true
}

// Globals returns the number of global labels.
func (lt *LabelTable) Globals() int {
	return len(lt.globals)
}

// Locals returns the number of local labels.
func (lt *LabelTable) Locals() int {
	return lt.nlocal
}

// All iterates over the globals, then over the locals grouped by master.
func (lt *LabelTable) All() iter.Seq[*Label] {
	seqs := []iter.Seq[*Label]{slices.Values(lt.globals)}
	for _, master := range lt.globals {
		seqs = append(seqs, slices.Values(master.locals))
	}
	return internal.IterSeqConcat(seqs...)
}

// Unused iterates over the labels never referenced by an expression.
func (lt *LabelTable) Unused() iter.Seq[*Label] {
	return internal.IterSeqFilter(lt.All(), func(l *Label) bool { return !l.Used() })
}

// Reset empties the table.
func (lt *LabelTable) Reset() {
	lt.globals = nil
	lt.nlocal = 0
}
