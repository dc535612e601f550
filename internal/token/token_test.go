package token

import (
	"testing"

	"gobasic/internal/table"
)

var tbl = table.New()

func constant(dataType table.DataType, text string) *Token {
	tok := New(tbl.EntryWithType(table.Const, dataType), 0, len(text), text)
	switch dataType {
	case table.Integer:
		tok.ValueInt = 1
		tok.Value = 1
	case table.Double:
		tok.Value = 1.5
	}
	return tok
}

func TestChangeConstant(t *testing.T) {
	t.Run("integer to double", func(t *testing.T) {
		tok := constant(table.Integer, "1")
		changed, status := tok.ChangeConstant(tbl, table.Double)
		if !changed || status != StatusGood {
			t.Fatalf("changed=%v status=%v", changed, status)
		}
		if !tok.IsCode(table.Const) {
			t.Errorf("entry = %s, want Const", tok.DebugName())
		}
	})

	t.Run("double to integer requires IntConst", func(t *testing.T) {
		tok := constant(table.Double, "1.5")
		_, status := tok.ChangeConstant(tbl, table.Integer)
		if status != ExpIntConst {
			t.Fatalf("status = %v, want ExpIntConst", status)
		}
	})

	t.Run("double with IntConst to integer", func(t *testing.T) {
		tok := constant(table.Double, "1")
		tok.AddSubCode(SubIntConst)
		changed, status := tok.ChangeConstant(tbl, table.Integer)
		if !changed || status != StatusGood {
			t.Fatalf("changed=%v status=%v", changed, status)
		}
		if !tok.IsCode(table.ConstInt) {
			t.Errorf("entry = %s, want ConstInt", tok.DebugName())
		}
		if tok.HasSubCode(SubIntConst) {
			t.Error("IntConst sub-code not cleared")
		}
	})

	t.Run("string never converts", func(t *testing.T) {
		tok := constant(table.String, "x")
		changed, status := tok.ChangeConstant(tbl, table.Double)
		if changed || status != StatusGood {
			t.Fatalf("changed=%v status=%v", changed, status)
		}
	})

	t.Run("non-constant is left alone", func(t *testing.T) {
		tok := New(tbl.Entry(table.Var), 0, 1, "A")
		changed, status := tok.ChangeConstant(tbl, table.Integer)
		if changed || status != StatusGood {
			t.Fatalf("changed=%v status=%v", changed, status)
		}
	})
}

func TestConvertSelectsAlternate(t *testing.T) {
	// '+' with an integer left operand retypes to the I1 alternate
	// instead of emitting a conversion
	add := New(tbl.Entry(table.Add), 2, 1, "")
	left := New(tbl.Entry(table.VarInt), 0, 1, "I")
	convert, status := add.Convert(tbl, left, 0)
	if status != StatusGood || convert != nil {
		t.Fatalf("convert=%v status=%v", convert, status)
	}
	if !add.IsCode(table.AddI1) {
		t.Errorf("entry = %s, want +%%1", add.DebugName())
	}

	// an integer right operand then composes to the all-integer form
	right := New(tbl.Entry(table.VarInt), 4, 1, "J")
	convert, status = add.Convert(tbl, right, 1)
	if status != StatusGood || convert != nil {
		t.Fatalf("convert=%v status=%v", convert, status)
	}
	if !add.IsCode(table.AddInt) {
		t.Errorf("entry = %s, want +%%", add.DebugName())
	}
}

func TestConvertEmitsConversion(t *testing.T) {
	// NOT expects nothing but integer, so a double variable needs
	// CvtInt
	not := New(tbl.Entry(table.Not), 0, 3, "")
	operand := New(tbl.Entry(table.Var), 4, 1, "A")
	convert, status := not.Convert(tbl, operand, 0)
	if status != StatusGood {
		t.Fatalf("status = %v", status)
	}
	if convert == nil || !convert.IsCode(table.CvtInt) {
		t.Fatalf("convert = %v, want CvtInt", convert)
	}

	// strings cannot convert to numbers
	str := New(tbl.Entry(table.VarStr), 4, 2, "S")
	if _, status := not.Convert(tbl, str, 0); status != ExpNumExpr {
		t.Errorf("status = %v, want ExpNumExpr", status)
	}
}

func TestConvertUseConstAsIs(t *testing.T) {
	// unary '-' keeps an integer constant as is and retypes itself
	neg := New(tbl.Entry(table.Neg), 0, 1, "")
	operand := constant(table.Integer, "2")
	convert, status := neg.Convert(tbl, operand, 0)
	if status != StatusGood || convert != nil {
		t.Fatalf("convert=%v status=%v", convert, status)
	}
	if !neg.IsCode(table.NegInt) {
		t.Errorf("entry = %s, want -U%%", neg.DebugName())
	}
	if !operand.IsCode(table.ConstInt) {
		t.Error("constant operand was retyped despite UseConstAsIs")
	}
}

func TestStringWithDataType(t *testing.T) {
	tests := []struct {
		code    table.Code
		text    string
		subCode SubCode
		want    string
	}{
		{table.Var, "A", 0, "A"},
		{table.Var, "A", SubDouble, "A#"},
		{table.VarInt, "N", 0, "N%"},
		{table.VarStr, "S", 0, "S$"},
		{table.ConstInt, "12", 0, "12"},
	}
	for _, tt := range tests {
		tok := New(tbl.Entry(tt.code), 0, len(tt.text), tt.text)
		tok.SubCode = tt.subCode
		if got := tok.StringWithDataType(); got != tt.want {
			t.Errorf("StringWithDataType(%s %q) = %q, want %q",
				tbl.Entry(tt.code).DebugName(), tt.text, got, tt.want)
		}
	}
}

func TestTokenEqual(t *testing.T) {
	a := New(tbl.Entry(table.Var), 0, 1, "count")
	b := New(tbl.Entry(table.Var), 8, 1, "COUNT")
	if !a.Equal(b) {
		t.Error("identifiers must compare case-insensitively")
	}

	s1 := New(tbl.Entry(table.ConstStr), 0, 3, "hi")
	s2 := New(tbl.Entry(table.ConstStr), 0, 3, "HI")
	if s1.Equal(s2) {
		t.Error("string constants must compare case-sensitively")
	}

	c := New(tbl.Entry(table.Var), 0, 1, "count")
	c.AddSubCode(SubColon)
	if a.Equal(c) {
		t.Error("program-visible sub-codes must participate in equality")
	}
	d := New(tbl.Entry(table.Var), 0, 1, "count")
	d.AddSubCode(SubIntConst) // program-visible bit
	if a.Equal(d) {
		t.Error("IntConst is a program-visible bit")
	}
}
