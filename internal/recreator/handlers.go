package recreator

import (
	"strings"

	"gobasic/internal/table"
	"gobasic/internal/token"
	"gobasic/internal/translator"
)

// operand pushes the token's spelling with its data type suffix.
func (r *Recreator) operand(item *translator.RpnItem) {
	r.push(item.Token.StringWithDataType())
}

// unaryOperator pops its operand, parenthesizing when the operand
// binds looser and is not itself unary, and prepends the operator
// with a space when the operator is a word or the operand starts
// with a digit or decimal point.
func (r *Recreator) unaryOperator(item *translator.RpnItem) {
	precedence := item.Token.Precedence()

	operand := r.popWithParens(!r.top2Unary() &&
		precedence > r.top2Precedence())

	text := item.Token.Name()
	last := text[len(text)-1]
	if isAlpha(last) || operand != "" &&
		(isDigit(operand[0]) || operand[0] == '.') {
		text += " "
	}
	text += operand
	r.pushOperator(text, precedence, true)
}

// binaryOperator pops the right then the left operand, adding
// parentheses by precedence, and joins them around the operator.
func (r *Recreator) binaryOperator(item *translator.RpnItem) {
	precedence := item.Token.Precedence()

	// right operand: parens when the operator binds at least as
	// tight and the operand is not unary
	text := r.popWithParens(precedence >= r.top2Precedence() &&
		!r.top2Unary())

	// left operand: parens when the operator binds tighter
	text = r.popWithParens(precedence > r.top2Precedence()) +
		" " + item.Token.Name() + " " + text
	r.pushOperator(text, precedence, false)
}

// top2Precedence and top2Unary inspect the stack top before a pop.
func (r *Recreator) top2Precedence() int {
	if r.empty() {
		return table.HighestPrecedence
	}
	return r.top().precedence
}

func (r *Recreator) top2Unary() bool {
	if r.empty() {
		return false
	}
	return r.top().unaryOperator
}

// internalFunction rebuilds "NAME(arg, ...)" from the entry's arity.
func (r *Recreator) internalFunction(item *translator.RpnItem) {
	entry := item.Token.Entry
	r.pushWithOperands(entry.Name(), entry.OperandCount())
}

// parenIdentifier rebuilds an array or user function call from the
// attached operand count (the name is not stored with the entry).
func (r *Recreator) parenIdentifier(item *translator.RpnItem) {
	name := item.Token.StringWithDataType() + "("
	r.pushWithOperands(name, item.AttachedCount())
}

// defineFunction rebuilds FN functions with or without arguments.
func (r *Recreator) defineFunction(item *translator.RpnItem) {
	name := item.Token.StringWithDataType()
	count := item.AttachedCount()
	if count > 0 {
		name += "("
	}
	r.pushWithOperands(name, count)
}

// remark reproduces REM and ' remarks, lower-casing the keyword when
// the remark body starts in lower case.
func (r *Recreator) remark(item *translator.RpnItem) {
	text := item.Token.Name()
	remark := item.Token.Text
	if remark != "" && remark[0] >= 'a' && remark[0] <= 'z' {
		text = strings.ToLower(text)
	}
	if item.Token.IsCode(table.RemOp) && r.backIsNotSpace() &&
		r.opts.SpaceBeforeRemOperator {
		r.append(" ")
	}
	r.append(text)
	r.append(remark)
}

// constantString re-quotes a string constant, doubling embedded
// quotes.
func (r *Recreator) constantString(item *translator.RpnItem) {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(item.Token.Text); i++ {
		c := item.Token.Text[i]
		sb.WriteByte(c)
		if c == '"' {
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	r.push(sb.String())
}

// assign writes an assignment statement: every remaining stack item
// is a target, the top is the value.
func (r *Recreator) assign(item *translator.RpnItem) {
	text := r.popString()
	separator := " = "
	for !r.empty() {
		text = r.popString() + separator + text
		separator = ", "
	}
	if item.Token.HasSubCode(token.SubOption) {
		text = item.Token.Entry.Option() + " " + text
	}
	r.append(text)
}

// assignString handles string assigns and the sub-string assignment
// forms; keep forms rebuild their target and leave the value on top
// for the assignment that follows.
func (r *Recreator) assignString(item *translator.RpnItem) {
	tok := item.Token
	if tok.HasFlag(table.FlagSubStr) {
		value := r.popString()
		r.pushWithOperands(tok.Name(), tok.Entry.OperandCount())
		r.push(value)
	}
	if tok.HasFlag(table.FlagKeep) {
		return // value stays for the next assign code
	}
	r.assign(item)
}

// printItem appends the previous separator and the expression on the
// stack top to the print item list under construction.
func (r *Recreator) printItem(*translator.RpnItem) {
	var text string
	if r.separatorIsSet() {
		if r.separator != ' ' || r.opts.SpaceAfterPrintComma {
			text = string(r.separator)
		}
		if r.separator != ' ' && r.opts.SpaceAfterPrintSemicolon {
			text += " "
		}
	}
	text += r.popString()

	if r.empty() {
		r.push(text)
	} else {
		r.topAppend(text)
	}
	r.setSeparator(';')
}

// printComma appends the column separating comma.
func (r *Recreator) printComma(item *translator.RpnItem) {
	var text string
	if !r.empty() {
		text = r.popString()
	}
	text += item.Token.Name()
	r.push(text)
	// space state so that consecutive commas stay tight
	r.setSeparator(' ')
}

// printSemicolon handles a trailing semicolon standing in for the
// PRINT token.
func (r *Recreator) printSemicolon(item *translator.RpnItem) {
	r.topAppend(item.Token.Name())
	printItem := &translator.RpnItem{
		Token: token.New(item.Token.Entry.Alternate(0), -1, -1, ""),
	}
	r.print(printItem)
}

// print writes the PRINT statement with its item list.
func (r *Recreator) print(item *translator.RpnItem) {
	r.append(item.Token.Name())
	if !r.empty() {
		if r.opts.SpaceAfterCommands {
			r.append(" ")
		}
		r.append(r.popString())
	}
	r.clearSeparator()
}

// inputPromptBegin sets the separator following the prompt string.
func (r *Recreator) inputPromptBegin(item *translator.RpnItem) {
	if item.Token.HasSubCode(token.SubOption) {
		r.setSeparator(',')
	} else {
		r.setSeparator(';')
	}
}

// inputAssign joins an input variable to the previous one.
func (r *Recreator) inputAssign(*translator.RpnItem) {
	if r.separatorIsSet() {
		text := r.popString()
		r.topAppend(string(r.separator))
		if r.opts.SpaceAfterInputComma {
			r.topAppend(" ")
		}
		r.topAppend(text)
	}
	r.setSeparator(',')
}

// input writes the INPUT statement; the Option sub-code restores the
// trailing semicolon that keeps the cursor on the line.
func (r *Recreator) input(item *translator.RpnItem) {
	r.append(item.Token.Entry.CommandName())
	if r.opts.SpaceAfterCommands {
		r.append(" ")
	}
	r.append(r.popString())
	if item.Token.HasSubCode(token.SubOption) {
		r.append(";")
	}
	r.clearSeparator()
}

func isAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
