// Package table holds the static catalog of every language element:
// commands, operators, internal functions and the operand-bearing
// primitive codes, together with the alternate-entry web that lets
// the translator retype an element in place instead of inserting a
// conversion.
//
// The table is built once and read-only afterwards; it is passed by
// reference into the parser, translator, encoder and recreator.
package table

import "strings"

// Table is the built catalog with its name map.
type Table struct {
	entries []Entry
	names   map[string]*Entry
}

// New builds the table from the static catalog. Catalog defects are
// programming errors and panic.
func New() *Table {
	t, err := build()
	if err != nil {
		panic(err)
	}
	return t
}

// Entry returns the entry for a code.
func (t *Table) Entry(code Code) *Entry {
	return &t.entries[code]
}

// EntryWithType returns the entry for a code retyped to the given
// return data type through its slot-0 alternates. It returns nil if
// no alternate has that return type.
func (t *Table) EntryWithType(code Code, dataType DataType) *Entry {
	return t.Entry(code).AlternateForReturn(dataType)
}

// Find looks a name up case-insensitively. It returns nil when the
// name is not in the table.
func (t *Table) Find(name string) *Entry {
	return t.names[strings.ToUpper(name)]
}

// FindTwo looks up a two-word name ("INPUT PROMPT").
func (t *Table) FindTwo(word1, word2 string) *Entry {
	return t.Find(word1 + " " + word2)
}

// EntryCount returns the number of entries (the instruction word
// code space).
func (t *Table) EntryCount() int {
	return len(t.entries)
}
