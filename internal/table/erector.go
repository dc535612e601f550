package table

import (
	"fmt"
	"strings"
)

// build erects the table: it copies the catalog, registers names,
// links alternates (both the name-derived typed variants and the
// hand-listed cross-code groups) and derives expected data types.
func build() (*Table, error) {
	t := &Table{
		entries: make([]Entry, len(catalog)),
		names:   make(map[string]*Entry, len(catalog)),
	}
	copy(t.entries, catalog)

	for i := range t.entries {
		entry := &t.entries[i]
		if entry.code != Code(i) {
			return nil, fmt.Errorf("table: entry %d out of order (code %d)",
				i, entry.code)
		}
		entry.expected = initialExpected(entry)
		if err := t.erect(entry); err != nil {
			return nil, err
		}
	}

	// hand-listed alternates (assignments, command codes, operands)
	for _, info := range alternateInfo {
		primary := t.Entry(info.primary)
		for _, code := range info.codes {
			alternate := t.Entry(code)
			primary.alternates[info.index] =
				append(primary.alternates[info.index], alternate)
			if alternate.OperandCount() > info.index {
				addExpected(primary,
					alternate.OperandDataType(info.index))
			}
		}
	}
	return t, nil
}

// erect handles one entry's name registration; an entry whose name is
// already registered becomes an alternate of the name's primary.
func (t *Table) erect(entry *Entry) error {
	// the internal assignment codes reuse function names; they are
	// linked by the hand-listed table, never by name
	if entry.name == "" || entry.HasFlag(FlagReference|FlagKeep) {
		return nil
	}

	if entry.typ == TypeCommand && isWord(entry.name2) {
		// two-word command, registered under the composite name
		t.names[strings.ToUpper(entry.name+" "+entry.name2)] = entry
		return nil
	}

	primary, found := t.names[strings.ToUpper(entry.name)]
	if !found {
		if entry.typ == TypeOperator && entry.OperandCount() == 2 &&
			entry.OperandDataType(0) != entry.OperandDataType(1) {
			return fmt.Errorf(
				"table: binary operator '%s' not homogeneous",
				entry.DebugName())
		}
		t.names[strings.ToUpper(entry.name)] = entry
		return nil
	}
	return t.linkAlternate(primary, entry)
}

// linkAlternate places an entry into the alternate web under a
// primary sharing its name. An entry with more operands goes to the
// slot of its own last operand (chaining under an existing alternate
// of the same arity); an entry with the same arity goes to the slot
// of the first operand whose type differs, chaining under an
// existing alternate that already covers that operand type so that
// two-operand retyping composes (I1 then Int).
func (t *Table) linkAlternate(primary, entry *Entry) error {
	if entry.OperandCount() != primary.OperandCount() {
		if entry.OperandCount() < primary.OperandCount() {
			return fmt.Errorf("table: '%s' has fewer operands than '%s'",
				entry.DebugName(), primary.DebugName())
		}
		slot := entry.OperandCount() - 1
		for _, existing := range primary.alternates[slot] {
			if existing.OperandCount() == entry.OperandCount() {
				return t.linkAlternate(existing, entry)
			}
		}
		primary.alternates[slot] = append(primary.alternates[slot], entry)
		if primary.typ == TypeIntFunc {
			primary.flags |= FlagMultiple
		}
		addExpected(primary, entry.OperandDataType(0))
		return nil
	}

	diff := -1
	for i := 0; i < entry.OperandCount(); i++ {
		if entry.OperandDataType(i) != primary.OperandDataType(i) {
			diff = i
			break
		}
	}
	if diff < 0 {
		if entry.ReturnDataType() != primary.ReturnDataType() {
			primary.alternates[0] = append(primary.alternates[0], entry)
			return nil
		}
		return fmt.Errorf("table: duplicate entry '%s'", entry.DebugName())
	}
	for _, existing := range primary.alternates[diff] {
		if existing.OperandDataType(diff) == entry.OperandDataType(diff) {
			return t.linkAlternate(existing, entry)
		}
	}
	primary.alternates[diff] = append(primary.alternates[diff], entry)
	addExpected(primary, entry.OperandDataType(diff))
	return nil
}

// initialExpected merges an entry's own operand types; entries with
// no operands expect their return type.
func initialExpected(entry *Entry) DataType {
	if entry.OperandCount() == 0 {
		return entry.ReturnDataType()
	}
	expected := entry.OperandDataType(0)
	for i := 1; i < entry.OperandCount(); i++ {
		expected = mergeExpected(expected, entry.OperandDataType(i))
	}
	return expected
}

// addExpected merges a data type into an entry's expected data type;
// Double merged with Integer (either way) yields Number.
func addExpected(entry *Entry, dataType DataType) {
	entry.expected = mergeExpected(entry.expected, dataType)
}

func mergeExpected(current, dataType DataType) DataType {
	if current.Numeric() && current != dataType {
		return Number
	}
	return current
}
