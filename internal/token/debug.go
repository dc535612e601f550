package token

import (
	"strings"

	"gobasic/internal/table"
)

// DebugString renders the abbreviated token spelling used by the
// trace commands: names for commands and operators, spellings with
// restored suffixes for identifiers and constants, sub-code marks
// between single quotes, and the remark body between vertical bars.
func (t *Token) DebugString() string {
	var sb strings.Builder
	remark := false

	switch {
	case t.IsType(table.TypeCommand):
		if t.IsCode(table.Rem) {
			sb.WriteString(t.Name())
			remark = true
		} else if name2 := t.Entry.Name2(); name2 != "" && isUpperWord(name2) {
			// two-word command
			sb.WriteString(t.Name())
			sb.WriteByte('-')
			sb.WriteString(name2)
		} else {
			sb.WriteString(t.DebugName())
		}
	case t.IsType(table.TypeOperator):
		if t.IsCode(table.RemOp) {
			sb.WriteString(t.Name())
			remark = true
		} else {
			sb.WriteString(t.DebugName())
		}
	default:
		switch t.Type() {
		case table.TypeNoParen:
			sb.WriteString(t.StringWithDataType())
			if t.HasFlag(table.FlagReference) {
				sb.WriteString("<ref>")
			}
		case table.TypeDefFuncNoArgs:
			sb.WriteString(t.StringWithDataType())
		case table.TypeDefFunc, table.TypeParen:
			sb.WriteString(t.StringWithDataType())
			sb.WriteByte('(')
		case table.TypeConstant:
			switch t.DataType() {
			case table.Double:
				sb.WriteString(t.Text)
			case table.Integer:
				sb.WriteString(t.Text)
				sb.WriteByte('%')
			case table.String:
				sb.WriteByte('"')
				sb.WriteString(t.Text)
				sb.WriteByte('"')
			}
		default:
			sb.WriteString(t.DebugName())
		}
	}

	if t.Reference {
		sb.WriteString("<ref>")
	}

	if t.SubCode&(SubParen|SubOption|SubColon|SubDouble) != 0 {
		sb.WriteByte('\'')
		if !t.HasFlag(table.FlagCommand) && t.HasSubCode(SubParen) {
			sb.WriteByte(')')
		}
		if t.HasSubCode(SubOption) {
			if option := t.Entry.Option(); option != "" {
				sb.WriteString(option)
			} else {
				sb.WriteString("BUG")
			}
		}
		if t.HasFlag(table.FlagCommand) && t.HasSubCode(SubColon) {
			sb.WriteByte(':')
		}
		if t.HasSubCode(SubDouble) {
			sb.WriteString("Double")
		}
		sb.WriteByte('\'')
	}

	if remark {
		sb.WriteByte('|')
		sb.WriteString(t.Text)
		sb.WriteByte('|')
	}
	return sb.String()
}

func isUpperWord(s string) bool {
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
