package parser

import (
	"testing"

	"gobasic/internal/table"
	"gobasic/internal/token"
)

var tbl = table.New()

func nextToken(t *testing.T, p *Parser, dataType table.DataType, reference token.Reference) *token.Token {
	t.Helper()
	tok, err := p.Next(dataType, reference)
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	return tok
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input    string
		code     table.Code
		text     string
		column   int
		length   int
		subCode  token.SubCode
	}{
		{"count", table.Var, "count", 0, 5, 0},
		{"n%", table.VarInt, "n", 0, 2, 0},
		{"name$", table.VarStr, "name", 0, 5, 0},
		{"x#", table.Var, "x", 0, 2, token.SubDouble},
		{"  value", table.Var, "value", 2, 5, 0},
		{"a_1", table.Var, "a_1", 0, 3, 0},
		{"tally(", table.Array, "tally", 0, 5, 0},
		{"marks%(", table.ArrayInt, "marks", 0, 6, 0},
		{"fsum(", table.Function, "fsum", 0, 4, 0},
		{"FNA(", table.DefFuncP, "FNA", 0, 3, 0},
		{"fnx", table.DefFuncN, "fnx", 0, 3, 0},
		{"fnv$", table.DefFuncNStr, "fnv", 0, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(tbl, tt.input)
			tok := nextToken(t, p, table.Any, token.ReferenceNone)
			if tok.Code() != tt.code {
				t.Errorf("code = %s, want %d", tok.DebugName(), tt.code)
			}
			if tok.Text != tt.text {
				t.Errorf("text = %q, want %q", tok.Text, tt.text)
			}
			if tok.Column != tt.column || tok.Length != tt.length {
				t.Errorf("span = %d:%d, want %d:%d",
					tok.Column, tok.Length, tt.column, tt.length)
			}
			if tok.SubCode != tt.subCode {
				t.Errorf("sub-code = %04x, want %04x",
					tok.SubCode, tt.subCode)
			}
		})
	}
}

func TestIdentifierReference(t *testing.T) {
	p := New(tbl, "count%")
	tok := nextToken(t, p, table.Any, token.ReferenceAll)
	if tok.Code() != table.VarRefInt {
		t.Errorf("code = %s, want VarRefInt", tok.DebugName())
	}

	// with a reference requested a parenthesized name is an array
	// even when the heuristic would call it a function
	p = New(tbl, "fsum(")
	tok = nextToken(t, p, table.Any, token.ReferenceVariable)
	if tok.Code() != table.Array {
		t.Errorf("code = %s, want Array", tok.DebugName())
	}
}

func TestParenResolver(t *testing.T) {
	resolver := func(string) table.Code { return table.Function }
	p := New(tbl, "total(", WithParenResolver(resolver))
	tok := nextToken(t, p, table.Any, token.ReferenceNone)
	if tok.Code() != table.Function {
		t.Errorf("code = %s, want Function", tok.DebugName())
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		code  table.Code
	}{
		{"PRINT", table.Print},
		{"let", table.Let},
		{"ABS(", table.Abs},
		{"mid$(", table.Mid2},
		{"MOD", table.Mod},
		{"not", table.Not},
		{"RND", table.Rnd},
	}
	for _, tt := range tests {
		p := New(tbl, tt.input)
		tok := nextToken(t, p, table.Any, token.ReferenceNone)
		if tok.Code() != tt.code {
			t.Errorf("%q: code = %s, want %d",
				tt.input, tok.DebugName(), tt.code)
		}
	}
}

func TestTwoWordCommand(t *testing.T) {
	p := New(tbl, "INPUT PROMPT")
	tok := nextToken(t, p, table.Any, token.ReferenceNone)
	if tok.Code() != table.InputPrompt {
		t.Fatalf("code = %s, want INPUT-PROMPT", tok.DebugName())
	}
	if tok.Length != 12 {
		t.Errorf("length = %d, want 12", tok.Length)
	}

	// second word not forming a command is left for the next token
	p = New(tbl, "INPUT total")
	tok = nextToken(t, p, table.Any, token.ReferenceNone)
	if tok.Code() != table.Input {
		t.Fatalf("code = %s, want INPUT", tok.DebugName())
	}
	tok = nextToken(t, p, table.Any, token.ReferenceNone)
	if tok.Code() != table.Var || tok.Text != "total" {
		t.Errorf("second token = %s %q", tok.DebugName(), tok.Text)
	}
}

func TestRemark(t *testing.T) {
	p := New(tbl, "REM hello")
	tok := nextToken(t, p, table.Any, token.ReferenceNone)
	if tok.Code() != table.Rem {
		t.Fatalf("code = %s, want REM", tok.DebugName())
	}
	if tok.Text != " hello" {
		t.Errorf("remark = %q, want %q", tok.Text, " hello")
	}

	// no whitespace required after the keyword
	p = New(tbl, "remark")
	tok = nextToken(t, p, table.Any, token.ReferenceNone)
	if tok.Code() != table.Rem || tok.Text != "ark" {
		t.Errorf("token = %s %q", tok.DebugName(), tok.Text)
	}

	// single quote remark operator
	p = New(tbl, "' note")
	tok = nextToken(t, p, table.Any, token.ReferenceNone)
	if tok.Code() != table.RemOp || tok.Text != " note" {
		t.Errorf("token = %s %q", tok.DebugName(), tok.Text)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		dataType table.DataType
		code     table.Code
		value    float64
		valueInt int
		intConst bool
	}{
		{"123", table.Any, table.ConstInt, 123, 123, false},
		{"0", table.Any, table.ConstInt, 0, 0, false},
		{"123", table.Double, table.Const, 123, 123, true},
		{"1.5", table.Any, table.Const, 1.5, 0, false},
		{"1.", table.Any, table.Const, 1, 1, true},
		{".5", table.Any, table.Const, 0.5, 0, false},
		{"2e1", table.Any, table.Const, 20, 20, true},
		{"1E-2", table.Any, table.Const, 0.01, 0, false},
		{"-5", table.Any, table.ConstInt, -5, -5, false},
		{"3000000000", table.Any, table.Const, 3e9, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(tbl, tt.input)
			tok := nextToken(t, p, tt.dataType, token.ReferenceNone)
			if tok.Code() != tt.code {
				t.Fatalf("code = %s, want %d", tok.DebugName(), tt.code)
			}
			if tok.Value != tt.value {
				t.Errorf("value = %g, want %g", tok.Value, tt.value)
			}
			if tok.ValueInt != tt.valueInt {
				t.Errorf("int value = %d, want %d",
					tok.ValueInt, tt.valueInt)
			}
			if tok.HasSubCode(token.SubIntConst) != tt.intConst {
				t.Errorf("IntConst = %v, want %v",
					tok.HasSubCode(token.SubIntConst), tt.intConst)
			}
			if tok.Text != tt.input {
				t.Errorf("text = %q, want %q", tok.Text, tt.input)
			}
		})
	}
}

func TestNumberErrors(t *testing.T) {
	tests := []struct {
		input  string
		status token.Status
		column int
		length int
	}{
		{"01", token.ExpNonZeroDigit, 0, 1},
		{"..", token.ExpDigitsOrSngDP, 0, 2},
		{".", token.ExpDigits, 0, 1},
		{".E1", token.ExpManDigits, 0, 2},
		{"1e", token.ExpExpSignOrDigits, 2, 1},
		{"1e+", token.ExpExpDigits, 3, 1},
		{"1E999", token.FPOutOfRange, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(tbl, tt.input)
			_, err := p.Next(table.Any, token.ReferenceNone)
			e, ok := token.AsError(err)
			if !ok {
				t.Fatalf("error = %v, want token error", err)
			}
			if e.Status != tt.status {
				t.Errorf("status = %v, want %v", e.Status, tt.status)
			}
			if e.Column != tt.column || e.Length != tt.length {
				t.Errorf("span = %d:%d, want %d:%d",
					e.Column, e.Length, tt.column, tt.length)
			}
		})
	}
}

func TestMinusWithoutDigits(t *testing.T) {
	// a lone '-' is the unary operator, not a number
	p := New(tbl, "-A")
	tok := nextToken(t, p, table.Any, token.ReferenceNone)
	if tok.Code() != table.Neg {
		t.Errorf("code = %s, want unary '-'", tok.DebugName())
	}

	// '-E...' backs out to the operator as well
	p = New(tbl, "-E1")
	tok = nextToken(t, p, table.Any, token.ReferenceNone)
	if tok.Code() != table.Neg {
		t.Errorf("code = %s, want unary '-'", tok.DebugName())
	}
}

func TestNumbersNotAllowed(t *testing.T) {
	// no numbers when an operator is wanted: '-' binds as an operator
	p := New(tbl, "-5")
	tok := nextToken(t, p, table.NoType, token.ReferenceNone)
	if tok.Code() != table.Neg {
		t.Errorf("code = %s, want unary '-'", tok.DebugName())
	}

	// no numbers for a reference
	p = New(tbl, "5")
	_, err := p.Next(table.Any, token.ReferenceAll)
	if e, ok := token.AsError(err); !ok || e.Status != token.UnknownToken {
		t.Errorf("error = %v, want UnknownToken", err)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input  string
		body   string
		length int
	}{
		{`"hello"`, "hello", 7},
		{`""`, "", 2},
		{`"say ""hi"""`, `say "hi"`, 12},
		{`"unterminated`, "unterminated", 13},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(tbl, tt.input)
			tok := nextToken(t, p, table.Any, token.ReferenceNone)
			if tok.Code() != table.ConstStr {
				t.Fatalf("code = %s, want ConstStr", tok.DebugName())
			}
			if tok.Text != tt.body {
				t.Errorf("body = %q, want %q", tok.Text, tt.body)
			}
			if tok.Length != tt.length {
				t.Errorf("length = %d, want %d", tok.Length, tt.length)
			}
		})
	}
}

func TestOperators(t *testing.T) {
	p := New(tbl, "a<=b<>c")
	wantCodes := []table.Code{table.Var, table.LtEq, table.Var,
		table.NotEq, table.Var, table.EOL}
	for i, want := range wantCodes {
		tok := nextToken(t, p, table.Any, token.ReferenceNone)
		if tok.Code() != want {
			t.Fatalf("token %d = %s, want code %d", i, tok.DebugName(), want)
		}
	}
}

func TestUnknownToken(t *testing.T) {
	p := New(tbl, "  @")
	_, err := p.Next(table.Any, token.ReferenceNone)
	e, ok := token.AsError(err)
	if !ok || e.Status != token.UnknownToken {
		t.Fatalf("error = %v, want UnknownToken", err)
	}
	if e.Column != 2 || e.Length != 1 {
		t.Errorf("span = %d:%d, want 2:1", e.Column, e.Length)
	}
}

func TestEndOfLine(t *testing.T) {
	p := New(tbl, "a")
	nextToken(t, p, table.Any, token.ReferenceNone)
	tok := nextToken(t, p, table.Any, token.ReferenceNone)
	if tok.Code() != table.EOL {
		t.Fatalf("code = %s, want EOL", tok.DebugName())
	}
	if tok.Column != 1 {
		t.Errorf("column = %d, want 1", tok.Column)
	}
}
