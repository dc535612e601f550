// Package translator turns one tokenized line into an RPN list. It is
// a shunting-yard expression translator with explicit hold and done
// stacks, pending-parenthesis tracking for faithful recreation,
// reference-mode operand discipline, and data-type reconciliation
// through table alternates or conversion codes, plus the per-command
// statement handlers.
package translator

import (
	"gobasic/internal/parser"
	"gobasic/internal/table"
	"gobasic/internal/token"
)

// TestMode selects what a translation call accepts and finalizes.
type TestMode int

const (
	TestModeNo         TestMode = iota // normal translation
	TestModeExpression                 // translate a single expression
	TestModeYes                        // full statements, test output only
)

// holdItem is an operator, function or open-parenthesis token waiting
// for its operands, with the token that started its first operand for
// span error reporting.
type holdItem struct {
	token *token.Token
	first *token.Token
}

// doneItem is a produced RPN item annotated with the tokens spanning
// the source range that produced it.
type doneItem struct {
	item   *RpnItem
	first  *token.Token
	second *token.Token
}

// Translator translates one input line.
type Translator struct {
	tbl   *table.Table
	parse *parser.Parser

	output         RpnList
	holdStack      []holdItem
	doneStack      []doneItem
	token          *token.Token
	pendingParen   *token.Token
	lastPrecedence int
}

// New creates a translator for one input line.
func New(tbl *table.Table, input string, opts ...parser.Option) *Translator {
	return &Translator{
		tbl:   tbl,
		parse: parser.New(tbl, input, opts...),
	}
}

// Translate runs the translation and returns the RPN list. The
// returned error is always a *token.Error carrying the status and the
// source range of the offense; the output is discarded on error.
func (t *Translator) Translate(testMode TestMode) (*RpnList, error) {
	t.holdPush(token.New(t.tbl.Entry(table.Null), -1, -1, ""), nil)

	if testMode == TestModeExpression {
		if err := t.getExpression(table.Any, 0); err != nil {
			return nil, rewrite(err, token.UnknownToken, token.ExpOpOrEnd)
		}
		if len(t.doneStack) == 0 {
			return nil, token.TokenError(token.BugDoneStackEmpty, t.token)
		}
		t.donePop() // drop result
	} else {
		if err := t.getCommands(); err != nil {
			return nil, err
		}
	}

	if !t.token.IsCode(table.EOL) {
		return nil, token.TokenError(token.ExpOpOrEnd, t.token)
	}
	t.holdPop() // sentinel
	if len(t.holdStack) != 0 {
		return nil, token.TokenError(token.BugHoldStackNotEmpty, t.token)
	}
	if len(t.doneStack) != 0 {
		return nil, token.TokenError(token.BugDoneStackNotEmpty, t.token)
	}
	return &t.output, nil
}

// getCommands consumes colon separated statements until a remark,
// end-of-line, or a token the caller must judge.
func (t *Translator) getCommands() error {
	for {
		// any reference is allowed so that the first identifier of an
		// assignment can appear as a reference
		if err := t.getToken(token.StatusGood, table.Any,
			token.ReferenceAll); err != nil {
			e, _ := token.AsError(err)
			e.Status = token.ExpCmdOrAssignItem
			return e
		}

		if t.token.IsCode(table.EOL) && t.output.Empty() {
			return nil // blank line allowed
		}

		if t.token.IsCode(table.Rem) || t.token.IsCode(table.RemOp) {
			break
		}

		// process command; a non-command token starts an assignment
		translate := translateLet
		if t.token.IsType(table.TypeCommand) {
			switch t.token.Entry.TranslateFunc() {
			case table.TranslateLet:
				translate = translateLet
			case table.TranslatePrint:
				translate = translatePrint
			case table.TranslateInput:
				translate = translateInput
			default:
				return token.TokenError(token.BugNotYetImplemented, t.token)
			}
		}
		if err := translate(t); err != nil {
			return err
		}

		if t.token.IsCode(table.RemOp) {
			break
		} else if t.token.IsCode(table.Colon) {
			// set colon sub-code on the statement's last token
			t.output.LastToken().AddSubCode(token.SubColon)
			t.token = nil
		} else {
			return nil // unknown end statement token, caller decides
		}
	}
	t.output.Append(t.moveToken()) // Rem or RemOp token
	return t.getToken(token.StatusGood, table.NoType, token.ReferenceNone)
}

// getExpression translates one expression of the desired data type;
// on return the current token is the token that terminated the
// expression. At the outermost level the expression result receives
// its return-type conversion.
func (t *Translator) getExpression(dataType table.DataType, level int) error {
	expected := dataType
	for {
		if err := t.getToken(token.StatusGood, expected,
			token.ReferenceNone); err != nil {
			return err
		}

		if t.token.IsCode(table.OpenParen) {
			// the open parenthesis blocks waiting tokens on the hold
			// stack while the inside expression is translated
			t.holdPush(t.moveToken(), nil)
			if expected == table.None {
				expected = table.Any
			}
			if err := t.getExpression(expected, level+1); err != nil {
				if e, ok := token.AsError(err); ok {
					if e.Is(token.ExpBinOpOrEnd) {
						e.Status = token.ExpBinOpOrParen
					} else if e.Is(token.UnknownToken) {
						e.Status = token.ExpOpOrParen
					}
				}
				return err
			}
			if !t.token.IsCode(table.CloseParen) {
				return token.TokenError(token.ExpOpOrParen, t.token)
			}
			topToken := t.holdPop().token
			if !topToken.IsCode(table.OpenParen) {
				return token.TokenError(token.BugUnexpectedCloseParen, t.token)
			}

			// the done item now spans the parentheses
			top := t.doneTop()
			top.first = topToken
			top.second = t.token

			// highest precedence when no operator is inside the parens
			doneToken := top.item.Token
			if doneToken.IsType(table.TypeOperator) {
				t.lastPrecedence = doneToken.Precedence()
			} else {
				t.lastPrecedence = table.HighestPrecedence
			}
			t.pendingParen = t.moveToken()
		} else if !t.token.Entry.IsUnaryOperator() {
			ok, err := t.getOperand(expected, token.ReferenceNone)
			if err != nil {
				return err
			}
			if !ok {
				break // terminating token, caller determines action
			}
			if t.doneTopToken().IsDataType(table.None) &&
				dataType != table.None {
				// print functions are not allowed here
				return t.doneStackTopTokenError(
					expectedErrorStatus(dataType, token.ReferenceNone))
			}
		}

		if t.token == nil {
			// get binary operator or end-of-expression token
			if err := t.getToken(token.StatusGood, table.NoType,
				token.ReferenceNone); err != nil {
				return err
			}
			if t.doneTopToken().IsDataType(table.None) &&
				t.holdTop().token.IsNull() && dataType == table.None {
				// print function: current token is the terminator
				break
			}
			if t.token.Entry.IsUnaryOperator() {
				// a binary operator was expected here
				if t.token.Entry.AlternateCount(1) > 0 {
					t.token.SetFirstAlternate(1) // change to binary
				} else {
					return token.TokenError(token.ExpBinOpOrEnd, t.token)
				}
			}
		}

		ok, err := t.processOperator()
		if err != nil {
			return err
		}
		if !ok {
			if level == 0 {
				doneToken := t.doneTopToken()
				convert, status := doneToken.ConvertTo(t.tbl, dataType)
				if status != token.StatusGood {
					return t.doneStackTopTokenError(status)
				}
				if convert != nil {
					t.output.Append(token.New(convert, -1, -1, ""))
				}
			}
			break
		}

		// the pushed operator's expected type guides the next operand
		expected = t.holdTop().token.Entry.ExpectedDataType()
	}
	return nil
}

// getOperand handles the operand side of the expression loop. It
// returns false (with the token kept) when the token does not start
// an operand and nothing was expected; with a reference requested it
// reports an error instead.
func (t *Translator) getOperand(dataType table.DataType, reference token.Reference) (bool, error) {
	if err := t.getToken(token.StatusGood, dataType, reference); err != nil {
		return false, err
	}

	doneAppend := true
	switch t.token.Type() {
	case table.TypeCommand, table.TypeOperator:
		if dataType == table.None {
			// nothing is acceptable, this is a terminating token
			return false, nil
		}
		return false, token.TokenError(
			expectedErrorStatus(dataType, reference), t.token)

	case table.TypeConstant, table.TypeNoParen:
		// token goes to the output and the done stack

	case table.TypeIntFunc:
		if reference != token.ReferenceNone {
			if reference != token.ReferenceAll ||
				!t.token.HasFlag(table.FlagSubStr) {
				return false, token.TokenError(
					expectedErrorStatus(dataType, reference), t.token)
			}
		} else if t.token.IsDataType(table.None) && dataType != table.None {
			return false, token.TokenError(
				expectedErrorStatus(dataType, token.ReferenceNone), t.token)
		}
		if t.token.Entry.OperandCount() > 0 {
			if err := t.processInternalFunction(reference); err != nil {
				return false, err
			}
			doneAppend = false // already appended
		}

	case table.TypeDefFuncNoArgs:
		if reference == token.ReferenceVariable {
			return false, token.TokenError(
				expectedErrorStatus(dataType, reference), t.token)
		}

	case table.TypeDefFunc:
		if reference == token.ReferenceVariable {
			return false, token.TokenError(
				expectedErrorStatus(dataType, reference), t.token)
		}
		if reference != token.ReferenceNone {
			// allowed only in a DEF command; point at the parenthesis
			tok := t.moveToken()
			return false, token.NewError(token.ExpEqualOrComma,
				tok.Column+tok.Length, 1)
		}
		if err := t.processParenToken(); err != nil {
			return false, err
		}
		doneAppend = false

	case table.TypeParen:
		if err := t.processParenToken(); err != nil {
			return false, err
		}
		doneAppend = false

	default:
		return false, token.TokenError(token.BugNotYetImplemented, t.token)
	}

	if doneAppend {
		item := t.output.Append(t.moveToken())
		t.donePush(item, nil, nil)
	}
	if reference != token.ReferenceNone &&
		!t.doneTopToken().IsDataTypeCompatible(dataType) {
		return false, t.doneStackTopTokenError(
			expectedErrorStatus(dataType, reference))
	}
	return true, nil
}

// getToken fetches the current token from the parser if it is not
// already set. Parser errors are narrowed: an unknown token where an
// operand of a known type was wanted becomes the matching expected
// error; otherwise the caller's error status is applied.
func (t *Translator) getToken(errorStatus token.Status, dataType table.DataType, reference token.Reference) error {
	if t.token != nil {
		return nil
	}
	tok, err := t.parse.Next(dataType, reference)
	if err != nil {
		e, _ := token.AsError(err)
		if dataType != table.NoType && dataType != table.None &&
			e.Is(token.UnknownToken) {
			e.Status = expectedErrorStatus(dataType, reference)
		} else if errorStatus != token.StatusGood {
			e.Status = errorStatus
		}
		return e
	}
	t.token = tok
	return nil
}

// processInternalFunction translates an internal function's
// arguments. A non-none reference admits the sub-string assignment
// form: the first operand must be a string variable reference
// followed by a comma, and the function item stays off the output.
func (t *Translator) processInternalFunction(reference token.Reference) error {
	topToken := t.moveToken()
	t.holdPush(topToken, nil)

	lastOperand := topToken.Entry.LastOperand()
	for i := 0; ; i++ {
		var expected table.DataType
		if i == 0 && reference != token.ReferenceNone {
			expected = table.String
			if _, err := t.getOperand(expected,
				token.ReferenceVarDefFn); err != nil {
				return err
			}
			if err := t.getToken(token.ExpComma, table.NoType,
				token.ReferenceNone); err != nil {
				return err
			}
			if !t.token.IsCode(table.Comma) {
				return token.TokenError(token.ExpComma, t.token)
			}
			// the comma is consumed by the terminator check below
		} else {
			if i == 0 {
				expected = topToken.Entry.ExpectedDataType()
			} else {
				expected = topToken.Entry.OperandDataType(i)
			}
			if err := t.getExpression(expected, 0); err != nil {
				if e, ok := token.AsError(err); ok {
					if e.Is(token.ExpBinOpOrEnd) {
						e.Status = expressionErrorStatus(i == lastOperand,
							true, topToken.Entry)
					} else if e.Is(token.UnknownToken) {
						e.Status = expressionErrorStatus(i == lastOperand,
							false, topToken.Entry)
					}
				}
				return err
			}
		}

		// a Number expectation retypes the function by its argument
		if expected == table.Number {
			tok := t.doneTopToken()
			if tok.DataType() != topToken.Entry.OperandDataType(0) {
				topToken.SetFirstAlternate(0)
			}
			tok.RemoveSubCode(token.SubIntConst) // safe for all tokens
		}

		if t.token.IsCode(table.Comma) {
			if i == lastOperand {
				if !topToken.HasFlag(table.FlagMultiple) {
					return token.TokenError(token.ExpOpOrParen, t.token)
				}
				// advance to the next-arity alternate
				lastOperand++
				topToken.SetFirstAlternate(lastOperand)
			}
			t.token = nil
			t.donePop()
		} else if t.token.IsCode(table.CloseParen) {
			if i < lastOperand {
				return token.TokenError(token.ExpOpOrComma, t.token)
			}
			t.donePop()

			// a sub-string assignment target stays off the output
			var item *RpnItem
			if reference != token.ReferenceNone {
				item = &RpnItem{Token: topToken}
			} else {
				item = t.output.Append(topToken)
			}
			t.donePush(item, nil, t.moveToken())
			t.holdPop()
			return nil
		} else {
			return token.TokenError(expressionErrorStatus(i == lastOperand,
				false, topToken.Entry), t.token)
		}
	}
}

// processParenToken translates array subscripts (integer, not
// attached) or user/defined function arguments (any type, attached
// in source order).
func (t *Translator) processParenToken() error {
	t.holdPush(t.token, nil)
	dataType := table.Any
	// TODO with function dictionaries, check each argument's type
	if t.token.IsCode(table.Array) || t.token.IsCode(table.ArrayInt) ||
		t.token.IsCode(table.ArrayStr) {
		dataType = table.Integer // array subscripts
	}
	topToken := t.moveToken()

	for count := 1; ; count++ {
		if err := t.getExpression(dataType, 0); err != nil {
			if e, ok := token.AsError(err); ok {
				if e.Is(token.ExpBinOpOrEnd) {
					e.Status = token.ExpBinOpCommaOrParen
				} else if e.Is(token.UnknownToken) {
					e.Status = token.ExpOpCommaOrParen
				}
			}
			return err
		}

		if topToken.IsType(table.TypeParen) {
			if dataType == table.Integer { // array subscript
				t.donePop()
			} else {
				// function arguments may be passed by reference
				tok := t.doneTopToken()
				if (tok.IsType(table.TypeNoParen) ||
					tok.IsType(table.TypeParen)) &&
					!tok.HasSubCode(token.SubParen) {
					tok.Reference = true
				}
			}
		}

		if t.token.IsCode(table.Comma) {
			t.token = nil
		} else if t.token.IsCode(table.CloseParen) {
			attached := make([]*RpnItem, count)
			for j := count - 1; j >= 0; j-- {
				if dataType != table.Integer {
					attached[j] = t.doneTop().item
					t.donePop()
				}
			}
			item := t.output.AppendWithAttached(topToken, attached)
			t.donePush(item, nil, t.moveToken())
			t.holdPop()
			return nil
		} else {
			return token.TokenError(token.ExpOpCommaOrParen, t.token)
		}
	}
}

// processOperator adds every hold-stack operator of higher (or same)
// precedence to the output, then pushes the current token if it is a
// unary or binary operator. It returns false, with the token kept,
// when the end of the expression has been reached.
func (t *Translator) processOperator() (bool, error) {
	// unary operators never dislodge anything from the hold stack
	tokenPrecedence := t.token.Precedence()
	if t.token.Entry.IsUnaryOperator() {
		tokenPrecedence = table.HighestPrecedence
	}

	for {
		topToken := t.holdTop().token
		if topToken.Precedence() < tokenPrecedence ||
			!topToken.Entry.IsUnaryOrBinaryOperator() {
			break
		}
		t.checkPendingParen(topToken, true)

		first := t.holdTop().first
		if err := t.processFinalOperand(topToken, first); err != nil {
			return false, err
		}
		t.lastPrecedence = topToken.Precedence()
		t.holdPop()
	}

	t.checkPendingParen(t.token, false)

	if !t.token.Entry.IsUnaryOrBinaryOperator() {
		return false, nil // end of expression
	}

	var first *token.Token
	if !t.token.Entry.IsUnaryOperator() {
		// reconcile the left operand now and remember its span
		operands, err := t.processDoneStackTop(t.token, 0)
		if err != nil {
			return false, err
		}
		first = operands.first
	}
	t.holdPush(t.moveToken(), first)
	return true, nil
}

type operandSpan struct {
	first  *token.Token
	second *token.Token
}

// processFinalOperand reconciles a token's last operand from the done
// stack, appends the token to the output, and for operators pushes
// the result back on the done stack with its source span.
func (t *Translator) processFinalOperand(tok *token.Token, first *token.Token) error {
	operands, err := t.processDoneStackTop(tok, tok.Entry.LastOperand())
	if err != nil {
		return err
	}

	if tok.IsType(table.TypeOperator) {
		if tok.Entry.IsUnaryOperator() {
			operands.first = tok
		} else {
			operands.first = first
		}
	}

	item := t.output.Append(tok)

	if tok.IsType(table.TypeOperator) {
		t.donePush(item, operands.first, operands.second)
	}
	return nil
}

// processDoneStackTop pops the done stack top and reconciles its data
// type against the token's operand slot, retyping the token through
// an alternate or appending a conversion code. The popped operand's
// source span is returned; on an incompatible operand the error
// reports that entire span.
func (t *Translator) processDoneStackTop(tok *token.Token, operandIndex int) (operandSpan, error) {
	if len(t.doneStack) == 0 {
		return operandSpan{}, token.TokenError(
			token.BugDoneStackEmptyFindCode, tok)
	}
	top := t.doneTop()
	topToken := top.item.Token

	span := operandSpan{first: top.first, second: top.second}
	if span.first == nil {
		span.first = topToken
	}
	if span.second == nil {
		span.second = topToken
	}
	t.donePop()

	convert, status := tok.Convert(t.tbl, topToken, operandIndex)
	if status != token.StatusGood {
		return operandSpan{}, token.NewError(status, span.first.Column,
			span.second.Column+span.second.Length-span.first.Column)
	}
	if convert != nil {
		t.output.Append(token.New(convert, -1, -1, ""))
	}
	return span, nil
}

// checkPendingParen decides the fate of a pending close parenthesis:
// when the operator context shows the parentheses would not be
// recreated from precedence alone, the last output token gets the
// Paren sub-code (or, if already marked, the close parenthesis itself
// goes to the output as a dummy token). Parentheses around a lone
// operand are dropped.
func (t *Translator) checkPendingParen(tok *token.Token, popped bool) {
	if t.pendingParen == nil {
		return
	}
	precedence := tok.Precedence()
	if t.lastPrecedence != table.HighestPrecedence &&
		(t.lastPrecedence > precedence ||
			(!popped && t.lastPrecedence == precedence)) {
		lastToken := t.output.LastToken()
		if !lastToken.HasSubCode(token.SubParen) {
			lastToken.AddSubCode(token.SubParen)
		} else {
			// second layer of parentheses: keep the token itself
			t.output.Append(t.pendingParen)
			t.pendingParen = nil
			return
		}
	}
	t.pendingParen = nil
}

// doneStackTopTokenError builds an error spanning the done stack
// top's source range.
func (t *Translator) doneStackTopTokenError(errorStatus token.Status) error {
	top := t.doneTop()
	tok := top.first
	if tok == nil {
		tok = top.item.Token
	}
	column := tok.Column
	length := tok.Length
	if second := top.second; second != nil {
		length = second.Column - column + second.Length
	}
	return token.NewError(errorStatus, column, length)
}

// expectedErrorStatus maps an expected data type and reference mode
// to the error reported when something else was found.
func expectedErrorStatus(dataType table.DataType, reference token.Reference) token.Status {
	switch dataType {
	case table.Double:
		if reference == token.ReferenceNone {
			return token.ExpNumExpr
		}
		return token.ExpDblVar
	case table.Integer:
		if reference == token.ReferenceNone {
			return token.ExpNumExpr
		}
		return token.ExpIntVar
	case table.String:
		switch reference {
		case token.ReferenceNone:
			return token.ExpStrExpr
		case token.ReferenceVariable, token.ReferenceVarDefFn:
			return token.ExpStrVar
		default:
			return token.ExpStrItem
		}
	case table.None:
		if reference == token.ReferenceNone {
			return token.ExpExpr
		}
		return token.ExpAssignItem
	case table.Number:
		if reference == token.ReferenceNone {
			return token.ExpNumExpr
		}
		return token.BugInvalidDataType
	case table.Any:
		switch reference {
		case token.ReferenceNone:
			return token.ExpExpr
		case token.ReferenceVariable:
			return token.ExpVar
		default:
			return token.ExpAssignItem
		}
	}
	return token.BugInvalidDataType
}

// expressionErrorStatus narrows an expression error inside a
// parenthesized argument list.
func expressionErrorStatus(lastOperand, unaryOperator bool, entry *table.Entry) token.Status {
	if !lastOperand {
		if unaryOperator {
			return token.ExpBinOpOrComma
		}
		return token.ExpOpOrComma
	}
	if !entry.HasFlag(table.FlagMultiple) {
		if unaryOperator {
			return token.ExpBinOpOrParen
		}
		return token.ExpOpOrParen
	}
	if unaryOperator {
		return token.ExpBinOpCommaOrParen
	}
	return token.ExpOpCommaOrParen
}

// rewrite changes an error's status when it matches.
func rewrite(err error, from, to token.Status) error {
	if e, ok := token.AsError(err); ok && e.Is(from) {
		e.Status = to
	}
	return err
}

// stack helpers

func (t *Translator) moveToken() *token.Token {
	tok := t.token
	t.token = nil
	return tok
}

func (t *Translator) holdPush(tok, first *token.Token) {
	t.holdStack = append(t.holdStack, holdItem{token: tok, first: first})
}

func (t *Translator) holdPop() holdItem {
	top := t.holdStack[len(t.holdStack)-1]
	t.holdStack = t.holdStack[:len(t.holdStack)-1]
	return top
}

func (t *Translator) holdTop() *holdItem {
	return &t.holdStack[len(t.holdStack)-1]
}

func (t *Translator) donePush(item *RpnItem, first, second *token.Token) {
	t.doneStack = append(t.doneStack,
		doneItem{item: item, first: first, second: second})
}

func (t *Translator) donePop() {
	t.doneStack = t.doneStack[:len(t.doneStack)-1]
}

func (t *Translator) doneTop() *doneItem {
	return &t.doneStack[len(t.doneStack)-1]
}

func (t *Translator) doneTopToken() *token.Token {
	return t.doneTop().item.Token
}
