// Package recreator reproduces a canonical source line from a
// translated RPN list. It walks the list driving each entry's
// recreate handler over a stack of partial expression strings, each
// tagged with the precedence of its outermost operator so that only
// the parentheses the source needs (plus the ones the translator
// marked for faithful round-trips) are emitted.
package recreator

import (
	"strings"

	"gobasic/internal/config"
	"gobasic/internal/table"
	"gobasic/internal/token"
	"gobasic/internal/translator"
)

// stackItem is a partial expression string with the precedence of
// its outermost operator.
type stackItem struct {
	text          string
	precedence    int
	unaryOperator bool
}

// Recreator rebuilds source text from RPN lists.
type Recreator struct {
	tbl       *table.Table
	opts      config.Recreate
	stack     []stackItem
	separator byte
	output    strings.Builder
}

// New creates a recreator with the given spacing options.
func New(tbl *table.Table, opts config.Recreate) *Recreator {
	return &Recreator{tbl: tbl, opts: opts}
}

// Recreate produces the canonical source line for an RPN list. With
// exprMode the list is a bare expression rather than statements.
func (r *Recreator) Recreate(rpn *translator.RpnList, exprMode bool) string {
	r.stack = r.stack[:0]
	r.separator = 0
	r.output.Reset()

	for _, item := range rpn.Items() {
		r.recreateItem(item)
		tok := item.Token
		if !tok.HasFlag(table.FlagCommand) && tok.HasSubCode(token.SubParen) {
			r.topAddParens()
		}
		if tok.HasFlag(table.FlagCommand) && tok.HasSubCode(token.SubColon) {
			if r.opts.SpaceBeforeColon {
				r.output.WriteByte(' ')
			}
			r.output.WriteByte(':')
			if r.opts.SpaceAfterColon {
				r.output.WriteByte(' ')
			}
		}
	}
	if exprMode {
		r.output.WriteString(r.popString())
	}
	for len(r.stack) > 0 { // stack empty error check
		r.output.WriteString(" NotEmpty:" + r.popString())
	}
	return r.output.String()
}

func (r *Recreator) recreateItem(item *translator.RpnItem) {
	switch item.Token.Entry.RecreateFunc() {
	case table.RecreateOperand:
		r.operand(item)
	case table.RecreateUnaryOperator:
		r.unaryOperator(item)
	case table.RecreateBinaryOperator:
		r.binaryOperator(item)
	case table.RecreateParen:
		r.topAddParens()
	case table.RecreateIntFunc:
		r.internalFunction(item)
	case table.RecreateArray, table.RecreateFunction:
		r.parenIdentifier(item)
	case table.RecreateDefFunc:
		r.defineFunction(item)
	case table.RecreateBlank:
		// hidden code, nothing to reproduce
	case table.RecreateRem:
		r.remark(item)
	case table.RecreateConstStr:
		r.constantString(item)
	case table.RecreateAssign:
		r.assign(item)
	case table.RecreateAssignStr:
		r.assignString(item)
	case table.RecreatePrintItem:
		r.printItem(item)
	case table.RecreatePrintComma:
		r.printComma(item)
	case table.RecreatePrintFunction:
		r.internalFunction(item)
		r.printItem(item)
	case table.RecreatePrintSemicolon:
		r.printSemicolon(item)
	case table.RecreatePrint:
		r.print(item)
	case table.RecreateInputPromptBegin:
		r.inputPromptBegin(item)
	case table.RecreateInputAssign:
		r.inputAssign(item)
	case table.RecreateInput:
		r.input(item)
	default:
		// missing from the table
		r.push("?" + item.Token.Text + "?")
	}
}

// stack helpers

func (r *Recreator) push(text string) {
	r.pushOperator(text, table.HighestPrecedence, false)
}

func (r *Recreator) pushOperator(text string, precedence int, unaryOperator bool) {
	r.stack = append(r.stack, stackItem{text, precedence, unaryOperator})
}

func (r *Recreator) popString() string {
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return top.text
}

func (r *Recreator) empty() bool { return len(r.stack) == 0 }

func (r *Recreator) top() *stackItem { return &r.stack[len(r.stack)-1] }

func (r *Recreator) topAppend(text string) { r.top().text += text }

func (r *Recreator) topAddParens() {
	r.top().text = "(" + r.top().text + ")"
}

// popWithParens pops the stack top, parenthesized when requested.
func (r *Recreator) popWithParens(addParens bool) string {
	text := r.popString()
	if addParens {
		return "(" + text + ")"
	}
	return text
}

// pushWithOperands pops count operands and pushes
// "name(op, op, ...)"; also correct for no-operand functions.
func (r *Recreator) pushWithOperands(name string, count int) {
	operands := make([]string, count)
	for i := count - 1; i >= 0; i-- {
		operands[i] = r.popString()
	}
	if count == 0 {
		r.push(name)
		return
	}
	r.push(name + strings.Join(operands, ", ") + ")")
}

// separator state

func (r *Recreator) separatorIsSet() bool { return r.separator != 0 }

func (r *Recreator) setSeparator(separator byte) { r.separator = separator }

func (r *Recreator) clearSeparator() { r.separator = 0 }

// append writes to the output line.
func (r *Recreator) append(text string) { r.output.WriteString(text) }

func (r *Recreator) backIsNotSpace() bool {
	out := r.output.String()
	return out != "" && out[len(out)-1] != ' '
}
