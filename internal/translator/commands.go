package translator

import (
	"gobasic/internal/table"
	"gobasic/internal/token"
)

// translateLet handles LET statements and implicit assignments. The
// target references are collected until '='; the value expression is
// translated with the first target's data type; the assign code is
// resolved to its typed (list) alternate, with sub-string targets
// emitted as their assign or keep-assign forms.
func translateLet(t *Translator) error {
	explicitLet := false
	if t.token.IsCode(table.Let) {
		explicitLet = true
		t.token = nil
	}

	dataType := table.Any
	var refs []doneItem
	for done := false; !done; {
		if _, err := t.getOperand(dataType, token.ReferenceAll); err != nil {
			return err
		}
		if err := t.getToken(token.ExpEqualOrComma, table.NoType,
			token.ReferenceNone); err != nil {
			return err
		}
		switch {
		case t.token.IsCode(table.Comma):
			t.token = nil
		case t.token.IsCode(table.Eq):
			t.token = nil
			done = true
		default:
			return token.TokenError(token.ExpEqualOrComma, t.token)
		}

		// the first reference fixes the statement's data type
		if dataType == table.Any {
			dataType = t.doneTopToken().DataType()
		}
		refs = append(refs, *t.doneTop())
		t.donePop()
	}

	// the value expression receives its conversion to the statement's
	// data type at the outermost expression level
	if err := t.getExpression(dataType, 0); err != nil {
		return rewrite(err, token.UnknownToken, token.ExpOpOrEnd)
	}
	t.donePop() // value

	// assign code selected by the statement's data type
	assignEntry := t.tbl.Entry(table.Let).Alternate(0)
	if alternate := assignEntry.AlternateForOperand(0,
		dataType); alternate != nil {
		assignEntry = alternate
	}
	assignToken := token.New(assignEntry, -1, -1, "")

	if len(refs) == 1 && refs[0].item.Token.HasFlag(table.FlagSubStr) {
		// sole sub-string target: its assign form is the statement code
		target := refs[0].item
		target.Token.SetFirstAlternate(1)
		if explicitLet {
			target.Token.AddSubCode(token.SubOption)
		}
		t.output.AppendItem(target)
		return nil
	}

	// sub-string targets other than a sole one keep the value on the
	// stack for the targets assigned after them
	for i := len(refs) - 1; i >= 0; i-- {
		target := refs[i].item
		if target.Token.HasFlag(table.FlagSubStr) {
			target.Token.SetFirstAlternate(1) // assign form
			target.Token.SetFirstAlternate(0) // keep form
			t.output.AppendItem(target)
		}
	}
	if len(refs) > 1 {
		assignToken.SetFirstAlternate(1) // list form
	}
	if explicitLet {
		assignToken.AddSubCode(token.SubOption)
	}
	t.output.Append(assignToken)
	return nil
}

// translatePrint handles PRINT: comma or semicolon separated items,
// print-only functions, and the trailing separator that suppresses
// the newline by becoming the statement's final token.
func translatePrint(t *Translator) error {
	commandToken := t.moveToken()
	printFunction := false
	separator := false
	var lastSemicolon *token.Token
	for {
		if err := t.getExpression(table.None, 0); err != nil {
			if e, ok := token.AsError(err); ok && e.Is(token.UnknownToken) {
				if len(t.doneStack) == 0 {
					e.Status = token.ExpExprCommaPfnOrEnd
				} else if t.doneTopToken().IsDataType(table.None) {
					e.Status = token.ExpSemiCommaOrEnd
				} else {
					e.Status = token.ExpOpSemiCommaOrEnd
				}
			}
			return err
		}

		if len(t.doneStack) != 0 {
			if t.doneTopToken().IsDataType(table.None) {
				t.donePop() // print function carries its own output
				printFunction = true
			} else {
				// append the data type specific print code
				printToken := token.New(commandToken.Entry.Alternate(0),
					-1, -1, "")
				if err := t.processFinalOperand(printToken, nil); err != nil {
					return err
				}
				printFunction = false
			}
			separator = true
			lastSemicolon = nil
		}

		switch {
		case t.token.IsCode(table.Comma):
			if lastSemicolon != nil {
				return token.TokenError(token.ExpExprPfnOrEnd, t.token)
			}
			t.output.Append(t.moveToken())
		case t.token.IsCode(table.Semicolon):
			if !separator {
				status := token.ExpExprCommaPfnOrEnd
				if lastSemicolon != nil {
					status = token.ExpExprPfnOrEnd
				}
				return token.TokenError(status, t.token)
			}
			lastSemicolon = t.moveToken()
		default:
			if !t.token.HasFlag(table.FlagEndStmt) {
				status := token.ExpOpSemiCommaOrEnd
				if printFunction {
					status = token.ExpSemiCommaOrEnd
				}
				return token.TokenError(status, t.token)
			}
			// trailing semicolon stays on the line instead of PRINT
			if lastSemicolon != nil {
				t.output.Append(lastSemicolon)
			} else {
				t.output.Append(commandToken)
			}
			return nil
		}
		separator = false
	}
}

// translateInput handles INPUT and INPUT PROMPT: an optional string
// prompt, then variable references, with the parse codes inserted
// before all assign codes in the output stream.
func translateInput(t *Translator) error {
	commandToken := t.moveToken()
	beginEntry := commandToken.Entry.Alternate(0)

	var beginToken *token.Token
	if commandToken.Entry.Name2() == "" {
		beginToken = token.New(beginEntry, -1, -1, "")
	} else { // INPUT PROMPT
		if err := t.getExpression(table.String, 0); err != nil {
			return rewrite(err, token.UnknownToken, token.ExpSemiOrComma)
		}
		t.donePop()
		if err := t.getToken(token.StatusGood, table.NoType,
			token.ReferenceNone); err != nil {
			return err
		}
		beginToken = t.moveToken()
		if beginToken.IsCode(table.Comma) {
			beginToken.AddSubCode(token.SubOption) // prompt ends with '?'
		} else if !beginToken.IsCode(table.Semicolon) {
			return token.TokenError(token.ExpOpSemiOrComma, beginToken)
		}
		beginToken.SetEntry(beginEntry) // reuse token as InputBeginStr
	}

	t.output.Append(beginToken)
	insertPoint := t.output.Len() // where the parse codes go

	var lastParse *token.Token
	for done := false; !done; {
		// a variable reference never returns false from getOperand
		if _, err := t.getOperand(table.Any,
			token.ReferenceVariable); err != nil {
			return err
		}
		if err := t.getToken(token.ExpCommaSemiOrEnd, table.NoType,
			token.ReferenceNone); err != nil {
			return err
		}

		var assignToken *token.Token
		switch {
		case t.token.IsCode(table.Comma):
			assignToken = t.moveToken()
		case t.token.IsCode(table.Semicolon):
			commandToken.AddSubCode(token.SubOption) // keep cursor
			done = true
			assignToken = t.moveToken()
			if err := t.getToken(token.ExpEndStmt, table.NoType,
				token.ReferenceNone); err != nil {
				return err
			}
		default:
			if !t.token.HasFlag(table.FlagEndStmt) {
				return token.TokenError(token.ExpCommaSemiOrEnd, t.token)
			}
			done = true
			assignToken = token.New(t.tbl.Entry(table.Null), -1, -1, "")
		}

		// data type specific assign code, then the matching parse
		// code inserted before all assign codes
		assignToken.SetEntry(commandToken.Entry.Alternate(1))
		if err := t.processFinalOperand(assignToken, nil); err != nil {
			return err
		}
		parseToken := token.New(assignToken.Entry.Alternate(1), -1, -1, "")
		t.output.InsertAt(insertPoint, parseToken)
		insertPoint++
		lastParse = parseToken
	}

	lastParse.AddSubCode(token.SubEnd)
	t.output.Append(commandToken)
	return nil
}
