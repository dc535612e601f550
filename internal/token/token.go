// Package token defines the token value produced by the parser and
// moved through the translator's stacks, together with the sub-code
// annotation bits, the reference discipline and the error statuses.
package token

import (
	"strings"

	"gobasic/internal/table"
)

// SubCode bits annotate a token. The bits under ProgramMask are
// persisted into the instruction word's sub-code field; the rest are
// translator internal.
type SubCode uint16

const (
	SubParen    SubCode = 0x0400 // reproduce unnecessary parentheses
	SubColon    SubCode = 0x0800 // reproduce ":" after token
	SubOption   SubCode = 0x1000 // reproduce command specific option
	SubDouble   SubCode = 0x2000 // identifier was spelled with '#'
	SubIntConst SubCode = 0x4000 // double constant is integer-representable
	SubEnd      SubCode = 0x8000 // last input parse code of statement

	// ProgramMask selects the sub-code bits stored in program words.
	ProgramMask SubCode = 0xFC00
)

// Reference describes which l-value forms an operand request admits.
type Reference int

const (
	ReferenceNone Reference = iota
	ReferenceVariable
	ReferenceVarDefFn
	ReferenceAll
)

// Token is one lexeme bound to its table entry, with the source range
// and payload needed for diagnostics, encoding and recreation.
// Tokens are value types; the translator moves them by pointer
// through its stacks into the RPN list.
type Token struct {
	Column    int
	Length    int
	Text      string
	Entry     *table.Entry
	Reference bool
	SubCode   SubCode
	Value     float64
	ValueInt  int
	Offset    int
}

// New creates a token bound to a table entry.
func New(entry *table.Entry, column, length int, text string) *Token {
	return &Token{Column: column, Length: length, Text: text, Entry: entry}
}

// table pass-through accessors

func (t *Token) Code() table.Code          { return t.Entry.Code() }
func (t *Token) IsCode(c table.Code) bool  { return t.Entry.IsCode(c) }
func (t *Token) Type() table.Type          { return t.Entry.Type() }
func (t *Token) IsType(typ table.Type) bool { return t.Entry.Type() == typ }
func (t *Token) Name() string              { return t.Entry.Name() }
func (t *Token) DebugName() string         { return t.Entry.DebugName() }
func (t *Token) HasFlag(flag uint) bool    { return t.Entry.HasFlag(flag) }
func (t *Token) Precedence() int           { return t.Entry.Precedence() }
func (t *Token) DataType() table.DataType  { return t.Entry.ReturnDataType() }

func (t *Token) IsDataType(dataType table.DataType) bool {
	return t.Entry.ReturnDataType() == dataType
}

// IsDataTypeCompatible reports whether the token can satisfy a
// request for the given data type.
func (t *Token) IsDataTypeCompatible(dataType table.DataType) bool {
	return dataType == t.DataType() ||
		(dataType == table.Number && t.DataType() != table.String) ||
		dataType == table.Any || dataType == table.None
}

func (t *Token) IsNull() bool { return t.Entry.IsCode(table.Null) }

// SetEntry rebinds the token to another table entry (retyping in
// place via an alternate).
func (t *Token) SetEntry(entry *table.Entry) { t.Entry = entry }

// SetFirstAlternate rebinds the token to the first alternate at the
// given operand slot.
func (t *Token) SetFirstAlternate(operandIndex int) {
	t.Entry = t.Entry.Alternate(operandIndex)
}

func (t *Token) HasSubCode(sub SubCode) bool { return t.SubCode&sub != 0 }
func (t *Token) AddSubCode(sub SubCode)      { t.SubCode |= sub }
func (t *Token) RemoveSubCode(sub SubCode)   { t.SubCode &^= sub }

// StringWithDataType returns the token's spelling with its data type
// suffix restored ('%', '$', or '#' when originally present).
func (t *Token) StringWithDataType() string {
	text := t.Text
	if t.Type() != table.TypeConstant {
		switch t.DataType() {
		case table.Double:
			if t.HasSubCode(SubDouble) {
				text += "#"
			}
		case table.Integer:
			text += "%"
		case table.String:
			text += "$"
		}
	}
	return text
}

// Convert reconciles an operand's data type with the type this
// token's entry expects at the given operand slot. In order it: keeps
// a matching operand as is; retypes a constant operand in place (for
// the last operand, unless the entry uses constants as is); retypes
// this token through a per-operand alternate; or returns a CvtDbl or
// CvtInt entry to append. A status other than StatusGood reports an
// incompatible operand; the caller owns the error span.
func (t *Token) Convert(tbl *table.Table, operand *Token, operandIndex int) (*table.Entry, Status) {
	expected := t.Entry.OperandDataType(operandIndex)

	if operand.DataType() == expected {
		operand.RemoveSubCode(SubIntConst) // safe for any token
		return nil, StatusGood
	}

	if operandIndex == t.Entry.LastOperand() &&
		!t.HasFlag(table.FlagUseConstAsIs) {
		operand.changeConstantIgnoreError(tbl, expected)
	}

	if alternate := t.Entry.AlternateForOperand(operandIndex,
		operand.DataType()); alternate != nil {
		t.SetEntry(alternate)
		return nil, StatusGood
	}

	return operand.ConvertTo(tbl, expected)
}

// ConvertTo returns the conversion entry needed to produce the given
// data type from this token, after trying to retype a constant in
// place. A nil entry with StatusGood means no conversion is needed.
func (t *Token) ConvertTo(tbl *table.Table, dataType table.DataType) (*table.Entry, Status) {
	changed, status := t.ChangeConstant(tbl, dataType)
	if status != StatusGood {
		return nil, status
	}
	if changed || t.DataType() == dataType {
		return nil, StatusGood
	}
	switch dataType {
	case table.Double:
		if t.DataType() != table.Integer {
			return nil, ExpNumExpr
		}
		return tbl.Entry(table.CvtDbl), StatusGood
	case table.Integer:
		if t.DataType() != table.Double {
			return nil, ExpNumExpr
		}
		return tbl.Entry(table.CvtInt), StatusGood
	case table.String:
		return nil, ExpStrExpr
	case table.Number:
		if t.DataType() == table.String {
			return nil, ExpNumExpr
		}
	}
	return nil, StatusGood
}

// ChangeConstant retypes a numeric constant token in place. Double to
// Integer is permitted only when the IntConst sub-code is set;
// otherwise ExpIntConst is reported.
func (t *Token) ChangeConstant(tbl *table.Table, toDataType table.DataType) (bool, Status) {
	if t.Type() != table.TypeConstant {
		return false, StatusGood
	}
	switch toDataType {
	case table.Double:
		if t.DataType() == table.Double {
			t.RemoveSubCode(SubIntConst)
			return true, StatusGood
		}
		if t.DataType() != table.Integer {
			return false, StatusGood
		}
	case table.Integer:
		if t.DataType() == table.Double {
			if !t.HasSubCode(SubIntConst) {
				return false, ExpIntConst
			}
			t.RemoveSubCode(SubIntConst)
		} else {
			return t.DataType() == table.Integer, StatusGood
		}
	default:
		return false, StatusGood
	}
	t.SetEntry(tbl.EntryWithType(table.Const, toDataType))
	return true, StatusGood
}

func (t *Token) changeConstantIgnoreError(tbl *table.Table, toDataType table.DataType) {
	t.ChangeConstant(tbl, toDataType)
}

// Equal compares tokens the way program storage does: same entry,
// same program-visible sub-codes, and the same text (case-sensitive
// only for remarks and string constants).
func (t *Token) Equal(other *Token) bool {
	if t.Entry != other.Entry {
		return false
	}
	if t.SubCode&ProgramMask != other.SubCode&ProgramMask {
		return false
	}
	if t.IsCode(table.Rem) || t.IsCode(table.RemOp) ||
		t.IsCode(table.ConstStr) {
		return t.Text == other.Text
	}
	return strings.EqualFold(t.Text, other.Text)
}
