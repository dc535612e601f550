package table

import "testing"

func testTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return tbl
}

func TestBuild(t *testing.T) {
	tbl := testTable(t)
	if tbl.EntryCount() != int(codeCount) {
		t.Errorf("entry count = %d, want %d", tbl.EntryCount(), codeCount)
	}
	// the instruction word format holds 10 bits of code index
	if tbl.EntryCount() > 0x400 {
		t.Errorf("entry count %d does not fit the code mask", tbl.EntryCount())
	}
}

func TestFind(t *testing.T) {
	tbl := testTable(t)
	tests := []struct {
		name string
		code Code
	}{
		{"PRINT", Print},
		{"print", Print},
		{"Let", Let},
		{"ABS(", Abs},
		{"abs(", Abs},
		{"MID$(", Mid2},
		{"CHR$(", Chr},
		{"+", Add},
		{"-", Neg},
		{"<", Lt},
		{"<=", LtEq},
		{"<>", NotEq},
		{">=", GtEq},
		{`\`, IntDiv},
		{"'", RemOp},
		{"MOD", Mod},
		{"NOT", Not},
		{"RND", Rnd},
		{"RND(", RndArg},
	}
	for _, tt := range tests {
		entry := tbl.Find(tt.name)
		if entry == nil {
			t.Errorf("Find(%q) = nil, want code %d", tt.name, tt.code)
			continue
		}
		if entry.Code() != tt.code {
			t.Errorf("Find(%q) = %s (code %d), want code %d",
				tt.name, entry.DebugName(), entry.Code(), tt.code)
		}
	}

	if entry := tbl.Find("BOGUS"); entry != nil {
		t.Errorf("Find(BOGUS) = %s, want nil", entry.DebugName())
	}
	if entry := tbl.FindTwo("INPUT", "PROMPT"); entry == nil ||
		entry.Code() != InputPrompt {
		t.Error("FindTwo(INPUT, PROMPT) did not find the two-word command")
	}
	if entry := tbl.Find("Assign"); entry != nil {
		t.Error("internal assignment codes must not be findable by name")
	}
}

func TestOperatorAlternates(t *testing.T) {
	tbl := testTable(t)
	tests := []struct {
		primary Code
		index   int
		operand DataType
		want    Code
	}{
		// typed alternates of '+'
		{Add, 0, Integer, AddI1},
		{Add, 1, Integer, AddI2},
		{Add, 0, String, CatStr},
		{AddI1, 1, Integer, AddInt},
		{CatStr, 1, String, CatStr}, // no further alternates needed
		// unary minus gains operands and an integer form
		{Neg, 0, Integer, NegInt},
		{Sub, 0, Integer, SubI1},
		{SubI1, 1, Integer, SubInt},
		// relational operators compare strings through slot 0
		{Eq, 0, String, EqStr},
		{Eq, 0, Integer, EqI1},
		{EqI1, 1, Integer, EqInt},
		{Lt, 1, Integer, LtI2},
		// power has its multiply form
		{Power, 1, Integer, PowerMul},
		{PowerI1, 1, Integer, PowerInt},
	}
	for _, tt := range tests {
		primary := tbl.Entry(tt.primary)
		alternate := primary.AlternateForOperand(tt.index, tt.operand)
		if tt.want == tt.primary {
			if alternate != nil && alternate.Code() != tt.primary {
				t.Errorf("%s alternate(%d, %s) = %s, want none",
					primary.DebugName(), tt.index, tt.operand,
					alternate.DebugName())
			}
			continue
		}
		if alternate == nil || alternate.Code() != tt.want {
			t.Errorf("%s alternate(%d, %s) = %v, want code %d",
				primary.DebugName(), tt.index, tt.operand,
				alternate, tt.want)
		}
	}

	if alt := tbl.Entry(Neg).Alternate(1); alt == nil || alt.Code() != Sub {
		t.Error("unary '-' has no binary alternate at slot 1")
	}
}

func TestFunctionAlternates(t *testing.T) {
	tbl := testTable(t)

	// multi-arity chains set the Multiple flag on the primary
	for _, code := range []Code{Asc, Instr2, Mid2} {
		if !tbl.Entry(code).HasFlag(FlagMultiple) {
			t.Errorf("%s is missing the Multiple flag",
				tbl.Entry(code).DebugName())
		}
	}
	if alt := tbl.Entry(Asc).Alternate(1); alt == nil || alt.Code() != Asc2 {
		t.Error("ASC( has no two-operand alternate")
	}
	if alt := tbl.Entry(Mid2).Alternate(2); alt == nil || alt.Code() != Mid3 {
		t.Error("MID$( has no three-operand alternate")
	}
	if alt := tbl.Entry(Abs).AlternateForOperand(0, Integer); alt == nil ||
		alt.Code() != AbsInt {
		t.Error("ABS( has no integer alternate")
	}
}

func TestAssignmentAlternates(t *testing.T) {
	tbl := testTable(t)

	assign := tbl.Entry(Let).Alternate(0)
	if assign == nil || assign.Code() != Assign {
		t.Fatal("LET has no assign alternate")
	}
	if alt := assign.AlternateForOperand(0, Integer); alt == nil ||
		alt.Code() != AssignInt {
		t.Error("Assign has no integer alternate")
	}
	if alt := assign.AlternateForOperand(0, String); alt == nil ||
		alt.Code() != AssignStr {
		t.Error("Assign has no string alternate")
	}
	if alt := tbl.Entry(AssignInt).Alternate(1); alt == nil ||
		alt.Code() != AssignListInt {
		t.Error("Assign% has no list alternate")
	}
	if alt := tbl.Entry(Left).Alternate(1); alt == nil ||
		alt.Code() != AssignLeft {
		t.Error("LEFT$( has no assign alternate")
	}
	if alt := tbl.Entry(AssignLeft).Alternate(0); alt == nil ||
		alt.Code() != AssignKeepLeft {
		t.Error("LEFT$(Assign has no keep alternate")
	}
}

func TestCommandCodeAlternates(t *testing.T) {
	tbl := testTable(t)

	printDbl := tbl.Entry(Print).Alternate(0)
	if printDbl == nil || printDbl.Code() != PrintDbl {
		t.Fatal("PRINT has no print code alternate")
	}
	if alt := printDbl.AlternateForOperand(0, String); alt == nil ||
		alt.Code() != PrintStr {
		t.Error("PrintDbl has no string alternate")
	}
	if alt := tbl.Entry(Semicolon).Alternate(0); alt == nil ||
		alt.Code() != Print {
		t.Error("';' does not lead back to PRINT")
	}
	if alt := tbl.Entry(Input).Alternate(1); alt == nil ||
		alt.Code() != InputAssign {
		t.Error("INPUT has no input assign alternate")
	}
	if alt := tbl.Entry(InputAssignStr).Alternate(1); alt == nil ||
		alt.Code() != InputParseStr {
		t.Error("InputAssignStr has no parse alternate")
	}
}

func TestEntryWithType(t *testing.T) {
	tbl := testTable(t)
	tests := []struct {
		code     Code
		dataType DataType
		want     Code
	}{
		{Const, Double, Const},
		{Const, Integer, ConstInt},
		{Const, String, ConstStr},
		{Var, Integer, VarInt},
		{Var, String, VarStr},
		{VarRef, Double, VarRef},
		{VarRef, Integer, VarRefInt},
		{Array, String, ArrayStr},
		{DefFuncP, Integer, DefFuncPInt},
		{Function, String, FunctionStr},
	}
	for _, tt := range tests {
		entry := tbl.EntryWithType(tt.code, tt.dataType)
		if entry == nil || entry.Code() != tt.want {
			t.Errorf("EntryWithType(%d, %s) = %v, want code %d",
				tt.code, tt.dataType, entry, tt.want)
		}
	}
}

func TestExpectedDataType(t *testing.T) {
	tbl := testTable(t)
	tests := []struct {
		code Code
		want DataType
	}{
		{Add, Number},    // Double merged with Integer (and String)
		{Eq, Number},     // relational alternates
		{Asc, String},    // first operand stays a string
		{Mid2, String},   // string slice target
		{Abs, Number},    // AbsInt alternate
		{Tab, Integer},   // single integer operand
		{Not, Integer},   // integer only
		{IntDiv, Double}, // no typed alternates
		{Rnd, Double},    // no operands: expects its return type
	}
	for _, tt := range tests {
		if got := tbl.Entry(tt.code).ExpectedDataType(); got != tt.want {
			t.Errorf("%s expected data type = %s, want %s",
				tbl.Entry(tt.code).DebugName(), got, tt.want)
		}
	}
}

func TestEntryProperties(t *testing.T) {
	tbl := testTable(t)

	if !tbl.Entry(Neg).IsUnaryOperator() {
		t.Error("unary '-' is not a unary operator")
	}
	if tbl.Entry(Sub).IsUnaryOperator() {
		t.Error("binary '-' claims to be unary")
	}
	if !tbl.Entry(Sub).IsUnaryOrBinaryOperator() {
		t.Error("binary '-' is not unary-or-binary")
	}
	if tbl.Entry(CloseParen).IsUnaryOrBinaryOperator() {
		t.Error("')' must not count as an operator with operands")
	}
	if !tbl.Entry(Rem).HasOperand() {
		t.Error("REM has no operand word")
	}
	if tbl.Entry(Add).HasOperand() {
		t.Error("'+' must not have an operand word")
	}
	if got := tbl.Entry(InputPrompt).CommandName(); got != "INPUT PROMPT" {
		t.Errorf("INPUT PROMPT command name = %q", got)
	}
	if got := tbl.Entry(Assign).CommandName(); got != "LET" {
		t.Errorf("Assign command name = %q, want LET", got)
	}
	// every execution data type has a constant entry
	for _, dataType := range []DataType{Double, Integer, String} {
		if tbl.EntryWithType(Const, dataType) == nil {
			t.Errorf("no constant entry for %s", dataType)
		}
	}
}
