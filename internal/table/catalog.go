package table

// Expression signatures shared by the catalog entries. Named by
// return type followed by operand types.
var (
	nullInfo = &ExprInfo{None, nil}

	dblNone   = &ExprInfo{Double, nil}
	dblDbl    = &ExprInfo{Double, []DataType{Double}}
	dblDblDbl = &ExprInfo{Double, []DataType{Double, Double}}
	dblDblInt = &ExprInfo{Double, []DataType{Double, Integer}}
	dblInt    = &ExprInfo{Double, []DataType{Integer}}
	dblIntDbl = &ExprInfo{Double, []DataType{Integer, Double}}
	dblStr    = &ExprInfo{Double, []DataType{String}}

	intNone      = &ExprInfo{Integer, nil}
	intDbl       = &ExprInfo{Integer, []DataType{Double}}
	intDblDbl    = &ExprInfo{Integer, []DataType{Double, Double}}
	intDblInt    = &ExprInfo{Integer, []DataType{Double, Integer}}
	intInt       = &ExprInfo{Integer, []DataType{Integer}}
	intIntDbl    = &ExprInfo{Integer, []DataType{Integer, Double}}
	intIntInt    = &ExprInfo{Integer, []DataType{Integer, Integer}}
	intStr       = &ExprInfo{Integer, []DataType{String}}
	intStrInt    = &ExprInfo{Integer, []DataType{String, Integer}}
	intStrStr    = &ExprInfo{Integer, []DataType{String, String}}
	intStrStrInt = &ExprInfo{Integer, []DataType{String, String, Integer}}

	strNone      = &ExprInfo{String, nil}
	strDbl       = &ExprInfo{String, []DataType{Double}}
	strInt       = &ExprInfo{String, []DataType{Integer}}
	strStr       = &ExprInfo{String, []DataType{String}}
	strStrInt    = &ExprInfo{String, []DataType{String, Integer}}
	strStrStr    = &ExprInfo{String, []DataType{String, String}}
	strStrIntInt = &ExprInfo{String, []DataType{String, Integer, Integer}}
	strStrStrInt = &ExprInfo{String, []DataType{String, String, Integer}}

	noneDbl = &ExprInfo{None, []DataType{Double}}
	noneInt = &ExprInfo{None, []DataType{Integer}}
	noneStr = &ExprInfo{None, []DataType{String}}
)

// catalog lists every table entry in code order. The erector turns
// this into the name map and the alternate web.
var catalog = []Entry{
	{code: Null, typ: TypeOperator, exprInfo: nullInfo},

	// commands
	{code: Let, typ: TypeCommand, name: "LET", flags: FlagCommand,
		precedence: 4, exprInfo: nullInfo, translate: TranslateLet},
	{code: Print, typ: TypeCommand, name: "PRINT", flags: FlagCommand,
		precedence: 4, exprInfo: nullInfo, translate: TranslatePrint,
		recreate: RecreatePrint},
	{code: Input, typ: TypeCommand, name: "INPUT", option: "Keep",
		flags: FlagCommand | FlagTwo, precedence: 4, exprInfo: nullInfo,
		translate: TranslateInput, recreate: RecreateInput},
	{code: InputPrompt, typ: TypeCommand, name: "INPUT", name2: "PROMPT",
		option: "Keep", flags: FlagCommand, precedence: 4, exprInfo: nullInfo,
		translate: TranslateInput, recreate: RecreateInput},
	{code: Rem, typ: TypeCommand, name: "REM", flags: FlagCommand,
		precedence: 4, exprInfo: nullInfo, encode: EncodeRem,
		operandText: EncodeRem, remove: EncodeRem, recreate: RecreateRem},

	// internal functions (no parentheses)
	{code: Rnd, typ: TypeIntFunc, name: "RND", precedence: 2,
		exprInfo: dblNone, recreate: RecreateIntFunc},

	// word operators
	{code: Mod, typ: TypeOperator, name: "MOD", precedence: 42,
		exprInfo: dblDblDbl, recreate: RecreateBinaryOperator},
	{code: And, typ: TypeOperator, name: "AND", precedence: 18,
		exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: Or, typ: TypeOperator, name: "OR", precedence: 14,
		exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: Not, typ: TypeOperator, name: "NOT", precedence: 20,
		exprInfo: intInt, recreate: RecreateUnaryOperator},
	{code: Eqv, typ: TypeOperator, name: "EQV", precedence: 12,
		exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: Imp, typ: TypeOperator, name: "IMP", precedence: 10,
		exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: Xor, typ: TypeOperator, name: "XOR", precedence: 16,
		exprInfo: intIntInt, recreate: RecreateBinaryOperator},

	// internal functions (parentheses)
	{code: Abs, typ: TypeIntFunc, name: "ABS(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Fix, typ: TypeIntFunc, name: "FIX(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Frac, typ: TypeIntFunc, name: "FRAC(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Int, typ: TypeIntFunc, name: "INT(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: RndArg, typ: TypeIntFunc, name: "RND(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Sgn, typ: TypeIntFunc, name: "SGN(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Cint, typ: TypeIntFunc, name: "CINT(", precedence: 2,
		exprInfo: intDbl, recreate: RecreateIntFunc},
	{code: Cdbl, typ: TypeIntFunc, name: "CDBL(", precedence: 2,
		exprInfo: dblInt, recreate: RecreateIntFunc},
	{code: Sqr, typ: TypeIntFunc, name: "SQR(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Atn, typ: TypeIntFunc, name: "ATN(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Cos, typ: TypeIntFunc, name: "COS(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Sin, typ: TypeIntFunc, name: "SIN(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Tan, typ: TypeIntFunc, name: "TAN(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Exp, typ: TypeIntFunc, name: "EXP(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Log, typ: TypeIntFunc, name: "LOG(", precedence: 2,
		exprInfo: dblDbl, recreate: RecreateIntFunc},
	{code: Tab, typ: TypeIntFunc, name: "TAB(", flags: FlagPrint,
		precedence: 2, exprInfo: noneInt, recreate: RecreatePrintFunction},
	{code: Spc, typ: TypeIntFunc, name: "SPC(", flags: FlagPrint,
		precedence: 2, exprInfo: noneInt, recreate: RecreatePrintFunction},
	{code: Asc, typ: TypeIntFunc, name: "ASC(", precedence: 2,
		exprInfo: intStr, recreate: RecreateIntFunc},
	{code: Asc2, typ: TypeIntFunc, name: "ASC(", name2: "2", precedence: 2,
		exprInfo: intStrInt, recreate: RecreateIntFunc},
	{code: Chr, typ: TypeIntFunc, name: "CHR$(", precedence: 2,
		exprInfo: strInt, recreate: RecreateIntFunc},
	{code: Instr2, typ: TypeIntFunc, name: "INSTR(", name2: "2",
		precedence: 2, exprInfo: intStrStr, recreate: RecreateIntFunc},
	{code: Instr3, typ: TypeIntFunc, name: "INSTR(", name2: "3",
		precedence: 2, exprInfo: intStrStrInt, recreate: RecreateIntFunc},
	{code: Left, typ: TypeIntFunc, name: "LEFT$(", flags: FlagSubStr,
		precedence: 2, exprInfo: strStrInt, recreate: RecreateIntFunc},
	{code: Len, typ: TypeIntFunc, name: "LEN(", precedence: 2,
		exprInfo: intStr, recreate: RecreateIntFunc},
	{code: Mid2, typ: TypeIntFunc, name: "MID$(", name2: "2",
		flags: FlagSubStr, precedence: 2, exprInfo: strStrInt,
		recreate: RecreateIntFunc},
	{code: Mid3, typ: TypeIntFunc, name: "MID$(", name2: "3",
		flags: FlagSubStr, precedence: 2, exprInfo: strStrIntInt,
		recreate: RecreateIntFunc},
	{code: Repeat, typ: TypeIntFunc, name: "REPEAT$(", precedence: 2,
		exprInfo: strStrInt, recreate: RecreateIntFunc},
	{code: Right, typ: TypeIntFunc, name: "RIGHT$(", flags: FlagSubStr,
		precedence: 2, exprInfo: strStrInt, recreate: RecreateIntFunc},
	{code: Space, typ: TypeIntFunc, name: "SPACE$(", precedence: 2,
		exprInfo: strInt, recreate: RecreateIntFunc},
	{code: Str, typ: TypeIntFunc, name: "STR$(", precedence: 2,
		exprInfo: strDbl, recreate: RecreateIntFunc},
	{code: Val, typ: TypeIntFunc, name: "VAL(", precedence: 2,
		exprInfo: dblStr, recreate: RecreateIntFunc},

	// symbol operators
	{code: Add, typ: TypeOperator, name: "+", precedence: 40,
		exprInfo: dblDblDbl, recreate: RecreateBinaryOperator},
	{code: Neg, typ: TypeOperator, name: "-", name2: "U",
		flags: FlagUseConstAsIs, precedence: 48, exprInfo: dblDbl,
		recreate: RecreateUnaryOperator},
	{code: Mul, typ: TypeOperator, name: "*", precedence: 46,
		exprInfo: dblDblDbl, recreate: RecreateBinaryOperator},
	{code: Div, typ: TypeOperator, name: "/", precedence: 46,
		exprInfo: dblDblDbl, recreate: RecreateBinaryOperator},
	{code: IntDiv, typ: TypeOperator, name: `\`, precedence: 44,
		exprInfo: intDblDbl, recreate: RecreateBinaryOperator},
	{code: Power, typ: TypeOperator, name: "^", flags: FlagUseConstAsIs,
		precedence: 50, exprInfo: dblDblDbl, recreate: RecreateBinaryOperator},
	{code: Eq, typ: TypeOperator, name: "=", precedence: 30,
		exprInfo: intDblDbl, recreate: RecreateBinaryOperator},
	{code: Gt, typ: TypeOperator, name: ">", flags: FlagTwo,
		precedence: 32, exprInfo: intDblDbl, recreate: RecreateBinaryOperator},
	{code: GtEq, typ: TypeOperator, name: ">=", precedence: 32,
		exprInfo: intDblDbl, recreate: RecreateBinaryOperator},
	{code: Lt, typ: TypeOperator, name: "<", flags: FlagTwo,
		precedence: 32, exprInfo: intDblDbl, recreate: RecreateBinaryOperator},
	{code: LtEq, typ: TypeOperator, name: "<=", precedence: 32,
		exprInfo: intDblDbl, recreate: RecreateBinaryOperator},
	{code: NotEq, typ: TypeOperator, name: "<>", precedence: 30,
		exprInfo: intDblDbl, recreate: RecreateBinaryOperator},
	{code: OpenParen, typ: TypeOperator, name: "(", precedence: 2,
		exprInfo: nullInfo},
	{code: CloseParen, typ: TypeOperator, name: ")", precedence: 4,
		exprInfo: nullInfo, recreate: RecreateParen},
	{code: Comma, typ: TypeOperator, name: ",", flags: FlagCommand,
		precedence: 6, exprInfo: nullInfo, recreate: RecreatePrintComma},
	{code: Semicolon, typ: TypeOperator, name: ";", flags: FlagCommand,
		precedence: 6, exprInfo: nullInfo, recreate: RecreatePrintSemicolon},
	{code: Colon, typ: TypeOperator, name: ":", flags: FlagEndStmt,
		precedence: 4, exprInfo: nullInfo},
	{code: RemOp, typ: TypeOperator, name: "'", flags: FlagEndStmt,
		precedence: 2, exprInfo: nullInfo, encode: EncodeRem,
		operandText: EncodeRem, remove: EncodeRem, recreate: RecreateRem},

	// assignment codes
	{code: Assign, typ: TypeCommand, name2: "Assign", option: "LET",
		flags: FlagReference | FlagCommand, precedence: 4, exprInfo: dblDbl,
		recreate: RecreateAssign},
	{code: AssignInt, typ: TypeCommand, name2: "Assign%", option: "LET",
		flags: FlagReference | FlagCommand, precedence: 4, exprInfo: intInt,
		recreate: RecreateAssign},
	{code: AssignStr, typ: TypeCommand, name2: "Assign$", option: "LET",
		flags: FlagReference | FlagCommand, precedence: 4, exprInfo: strStr,
		recreate: RecreateAssignStr},
	{code: AssignLeft, typ: TypeCommand, name: "LEFT$(", name2: "Assign",
		option: "LET", flags: FlagReference | FlagSubStr | FlagCommand,
		precedence: 4, exprInfo: strStrInt, recreate: RecreateAssignStr},
	{code: AssignMid2, typ: TypeCommand, name: "MID$(", name2: "Assign2",
		option: "LET", flags: FlagReference | FlagSubStr | FlagCommand,
		precedence: 4, exprInfo: strStrInt, recreate: RecreateAssignStr},
	{code: AssignMid3, typ: TypeCommand, name: "MID$(", name2: "Assign3",
		option: "LET", flags: FlagReference | FlagSubStr | FlagCommand,
		precedence: 4, exprInfo: strStrIntInt, recreate: RecreateAssignStr},
	{code: AssignRight, typ: TypeCommand, name: "RIGHT$(", name2: "Assign",
		option: "LET", flags: FlagReference | FlagSubStr | FlagCommand,
		precedence: 4, exprInfo: strStrInt, recreate: RecreateAssignStr},
	{code: AssignList, typ: TypeCommand, name2: "AssignList",
		option: "LET", flags: FlagReference | FlagCommand, precedence: 4,
		exprInfo: dblDbl, recreate: RecreateAssign},
	{code: AssignListInt, typ: TypeCommand, name2: "AssignList%",
		option: "LET", flags: FlagReference | FlagCommand, precedence: 4,
		exprInfo: intInt, recreate: RecreateAssign},
	{code: AssignListStr, typ: TypeCommand, name2: "AssignList$",
		option: "LET", flags: FlagReference | FlagCommand, precedence: 4,
		exprInfo: strStr, recreate: RecreateAssign},
	{code: AssignKeepStr, typ: TypeCommand, name2: "AssignKeep$",
		option: "LET", flags: FlagReference | FlagKeep, precedence: 4,
		exprInfo: strStr, recreate: RecreateAssignStr},
	{code: AssignKeepLeft, typ: TypeCommand, name: "LEFT$(",
		name2: "AssignKeep", option: "LET",
		flags: FlagReference | FlagSubStr | FlagKeep, precedence: 4,
		exprInfo: strStrInt, recreate: RecreateAssignStr},
	{code: AssignKeepMid2, typ: TypeCommand, name: "MID$(",
		name2: "AssignKeep2", option: "LET",
		flags: FlagReference | FlagSubStr | FlagKeep, precedence: 4,
		exprInfo: strStrInt, recreate: RecreateAssignStr},
	{code: AssignKeepMid3, typ: TypeCommand, name: "MID$(",
		name2: "AssignKeep3", option: "LET",
		flags: FlagReference | FlagSubStr | FlagKeep, precedence: 4,
		exprInfo: strStrStrInt, recreate: RecreateAssignStr},
	{code: AssignKeepRight, typ: TypeCommand, name: "RIGHT$(",
		name2: "AssignKeep", option: "LET",
		flags: FlagReference | FlagSubStr | FlagKeep, precedence: 4,
		exprInfo: strStrInt, recreate: RecreateAssignStr},

	{code: EOL, typ: TypeOperator, name2: "EOL", flags: FlagEndStmt,
		precedence: 4, exprInfo: nullInfo},

	// typed operator alternates
	{code: AddI1, typ: TypeOperator, name: "+", name2: "%1",
		precedence: 40, exprInfo: dblIntDbl, recreate: RecreateBinaryOperator},
	{code: AddI2, typ: TypeOperator, name: "+", name2: "%2",
		precedence: 40, exprInfo: dblDblInt, recreate: RecreateBinaryOperator},
	{code: AddInt, typ: TypeOperator, name: "+", name2: "%",
		precedence: 40, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: CatStr, typ: TypeOperator, name: "+", name2: "$",
		precedence: 40, exprInfo: strStrStr, recreate: RecreateBinaryOperator},
	{code: Sub, typ: TypeOperator, name: "-", precedence: 40,
		exprInfo: dblDblDbl, recreate: RecreateBinaryOperator},
	{code: SubI1, typ: TypeOperator, name: "-", name2: "%1",
		precedence: 40, exprInfo: dblIntDbl, recreate: RecreateBinaryOperator},
	{code: SubI2, typ: TypeOperator, name: "-", name2: "%2",
		precedence: 40, exprInfo: dblDblInt, recreate: RecreateBinaryOperator},
	{code: SubInt, typ: TypeOperator, name: "-", name2: "%",
		precedence: 40, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: NegInt, typ: TypeOperator, name: "-", name2: "U%",
		precedence: 48, exprInfo: intInt, recreate: RecreateUnaryOperator},
	{code: MulI1, typ: TypeOperator, name: "*", name2: "%1",
		precedence: 46, exprInfo: dblIntDbl, recreate: RecreateBinaryOperator},
	{code: MulI2, typ: TypeOperator, name: "*", name2: "%2",
		precedence: 46, exprInfo: dblDblInt, recreate: RecreateBinaryOperator},
	{code: MulInt, typ: TypeOperator, name: "*", name2: "%",
		precedence: 46, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: DivI1, typ: TypeOperator, name: "/", name2: "%1",
		precedence: 46, exprInfo: dblIntDbl, recreate: RecreateBinaryOperator},
	{code: DivI2, typ: TypeOperator, name: "/", name2: "%2",
		precedence: 46, exprInfo: dblDblInt, recreate: RecreateBinaryOperator},
	{code: DivInt, typ: TypeOperator, name: "/", name2: "%",
		precedence: 46, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: ModI1, typ: TypeOperator, name: "MOD", name2: "%1",
		precedence: 42, exprInfo: dblIntDbl, recreate: RecreateBinaryOperator},
	{code: ModI2, typ: TypeOperator, name: "MOD", name2: "%2",
		precedence: 42, exprInfo: dblDblInt, recreate: RecreateBinaryOperator},
	{code: ModInt, typ: TypeOperator, name: "MOD", name2: "%",
		precedence: 42, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: PowerI1, typ: TypeOperator, name: "^", name2: "%1",
		precedence: 50, exprInfo: dblIntDbl, recreate: RecreateBinaryOperator},
	{code: PowerMul, typ: TypeOperator, name: "^", name2: "*",
		precedence: 50, exprInfo: dblDblInt, recreate: RecreateBinaryOperator},
	{code: PowerInt, typ: TypeOperator, name: "^", name2: "%",
		precedence: 50, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: EqI1, typ: TypeOperator, name: "=", name2: "%1",
		precedence: 30, exprInfo: intIntDbl, recreate: RecreateBinaryOperator},
	{code: EqI2, typ: TypeOperator, name: "=", name2: "%2",
		precedence: 30, exprInfo: intDblInt, recreate: RecreateBinaryOperator},
	{code: EqInt, typ: TypeOperator, name: "=", name2: "%",
		precedence: 30, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: EqStr, typ: TypeOperator, name: "=", name2: "$",
		precedence: 30, exprInfo: intStrStr, recreate: RecreateBinaryOperator},
	{code: GtI1, typ: TypeOperator, name: ">", name2: "%1",
		precedence: 32, exprInfo: intIntDbl, recreate: RecreateBinaryOperator},
	{code: GtI2, typ: TypeOperator, name: ">", name2: "%2",
		precedence: 32, exprInfo: intDblInt, recreate: RecreateBinaryOperator},
	{code: GtInt, typ: TypeOperator, name: ">", name2: "%",
		precedence: 32, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: GtStr, typ: TypeOperator, name: ">", name2: "$",
		precedence: 32, exprInfo: intStrStr, recreate: RecreateBinaryOperator},
	{code: GtEqI1, typ: TypeOperator, name: ">=", name2: "%1",
		precedence: 32, exprInfo: intIntDbl, recreate: RecreateBinaryOperator},
	{code: GtEqI2, typ: TypeOperator, name: ">=", name2: "%2",
		precedence: 32, exprInfo: intDblInt, recreate: RecreateBinaryOperator},
	{code: GtEqInt, typ: TypeOperator, name: ">=", name2: "%",
		precedence: 32, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: GtEqStr, typ: TypeOperator, name: ">=", name2: "$",
		precedence: 32, exprInfo: intStrStr, recreate: RecreateBinaryOperator},
	{code: LtI1, typ: TypeOperator, name: "<", name2: "%1",
		precedence: 32, exprInfo: intIntDbl, recreate: RecreateBinaryOperator},
	{code: LtI2, typ: TypeOperator, name: "<", name2: "%2",
		precedence: 32, exprInfo: intDblInt, recreate: RecreateBinaryOperator},
	{code: LtInt, typ: TypeOperator, name: "<", name2: "%",
		precedence: 32, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: LtStr, typ: TypeOperator, name: "<", name2: "$",
		precedence: 32, exprInfo: intStrStr, recreate: RecreateBinaryOperator},
	{code: LtEqI1, typ: TypeOperator, name: "<=", name2: "%1",
		precedence: 32, exprInfo: intIntDbl, recreate: RecreateBinaryOperator},
	{code: LtEqI2, typ: TypeOperator, name: "<=", name2: "%2",
		precedence: 32, exprInfo: intDblInt, recreate: RecreateBinaryOperator},
	{code: LtEqInt, typ: TypeOperator, name: "<=", name2: "%",
		precedence: 32, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: LtEqStr, typ: TypeOperator, name: "<=", name2: "$",
		precedence: 32, exprInfo: intStrStr, recreate: RecreateBinaryOperator},
	{code: NotEqI1, typ: TypeOperator, name: "<>", name2: "%1",
		precedence: 30, exprInfo: intIntDbl, recreate: RecreateBinaryOperator},
	{code: NotEqI2, typ: TypeOperator, name: "<>", name2: "%2",
		precedence: 30, exprInfo: intDblInt, recreate: RecreateBinaryOperator},
	{code: NotEqInt, typ: TypeOperator, name: "<>", name2: "%",
		precedence: 30, exprInfo: intIntInt, recreate: RecreateBinaryOperator},
	{code: NotEqStr, typ: TypeOperator, name: "<>", name2: "$",
		precedence: 30, exprInfo: intStrStr, recreate: RecreateBinaryOperator},

	// typed function alternates
	{code: AbsInt, typ: TypeIntFunc, name: "ABS(", name2: "%",
		precedence: 2, exprInfo: intInt, recreate: RecreateIntFunc},
	{code: RndArgInt, typ: TypeIntFunc, name: "RND(", name2: "%",
		precedence: 2, exprInfo: intInt, recreate: RecreateIntFunc},
	{code: SgnInt, typ: TypeIntFunc, name: "SGN(", name2: "%",
		precedence: 2, exprInfo: intInt, recreate: RecreateIntFunc},
	{code: CvtInt, typ: TypeIntFunc, name2: "CvtInt", flags: FlagHidden,
		precedence: 2, exprInfo: nullInfo, recreate: RecreateBlank},
	{code: CvtDbl, typ: TypeIntFunc, name2: "CvtDbl", flags: FlagHidden,
		precedence: 2, exprInfo: nullInfo, recreate: RecreateBlank},
	{code: StrInt, typ: TypeIntFunc, name: "STR$(", name2: "%",
		precedence: 2, exprInfo: strInt, recreate: RecreateIntFunc},

	// print codes
	{code: PrintDbl, typ: TypeIntFunc, name2: "PrintDbl",
		flags: FlagPrint | FlagUseConstAsIs, precedence: 2, exprInfo: noneDbl,
		recreate: RecreatePrintItem},
	{code: PrintInt, typ: TypeIntFunc, name2: "PrintInt", flags: FlagPrint,
		precedence: 2, exprInfo: noneInt, recreate: RecreatePrintItem},
	{code: PrintStr, typ: TypeIntFunc, name2: "PrintStr", flags: FlagPrint,
		precedence: 2, exprInfo: noneStr, recreate: RecreatePrintItem},

	// input codes
	{code: InputBegin, typ: TypeIntFunc, name2: "InputBegin",
		precedence: 2, exprInfo: nullInfo, recreate: RecreateBlank},
	{code: InputBeginStr, typ: TypeIntFunc, name2: "InputBeginStr",
		option: "Question", precedence: 2, exprInfo: noneInt,
		recreate: RecreateInputPromptBegin},
	{code: InputAssign, typ: TypeIntFunc, name2: "InputAssign",
		flags: FlagReference, precedence: 2, exprInfo: noneDbl,
		recreate: RecreateInputAssign},
	{code: InputAssignInt, typ: TypeIntFunc, name2: "InputAssignInt",
		flags: FlagReference, precedence: 2, exprInfo: noneInt,
		recreate: RecreateInputAssign},
	{code: InputAssignStr, typ: TypeIntFunc, name2: "InputAssignStr",
		flags: FlagReference, precedence: 2, exprInfo: noneStr,
		recreate: RecreateInputAssign},
	{code: InputParse, typ: TypeIntFunc, name2: "InputParse",
		precedence: 2, exprInfo: nullInfo, recreate: RecreateBlank},
	{code: InputParseInt, typ: TypeIntFunc, name2: "InputParseInt",
		precedence: 2, exprInfo: nullInfo, recreate: RecreateBlank},
	{code: InputParseStr, typ: TypeIntFunc, name2: "InputParseStr",
		precedence: 2, exprInfo: nullInfo, recreate: RecreateBlank},

	// codes with operands
	{code: Const, typ: TypeConstant, name2: "Const", precedence: 2,
		exprInfo: dblNone, encode: EncodeConstNum,
		operandText: EncodeConstNum, remove: EncodeConstNum,
		recreate: RecreateOperand},
	{code: ConstInt, typ: TypeConstant, name2: "ConstInt", precedence: 2,
		exprInfo: intNone, encode: EncodeConstNum,
		operandText: EncodeConstNum, remove: EncodeConstNum,
		recreate: RecreateOperand},
	{code: ConstStr, typ: TypeConstant, name2: "ConstStr", precedence: 2,
		exprInfo: strNone, encode: EncodeConstStr,
		operandText: EncodeConstStr, remove: EncodeConstStr,
		recreate: RecreateConstStr},
	{code: Var, typ: TypeNoParen, name2: "Var", precedence: 2,
		exprInfo: dblNone, encode: EncodeVarDbl, operandText: EncodeVarDbl,
		remove: EncodeVarDbl, recreate: RecreateOperand},
	{code: VarInt, typ: TypeNoParen, name2: "VarInt", precedence: 2,
		exprInfo: intNone, encode: EncodeVarInt, operandText: EncodeVarInt,
		remove: EncodeVarInt, recreate: RecreateOperand},
	{code: VarStr, typ: TypeNoParen, name2: "VarStr", precedence: 2,
		exprInfo: strNone, encode: EncodeVarStr, operandText: EncodeVarStr,
		remove: EncodeVarStr, recreate: RecreateOperand},
	{code: VarRef, typ: TypeNoParen, name2: "VarRef", flags: FlagReference,
		precedence: 2, exprInfo: dblNone, encode: EncodeVarDbl,
		operandText: EncodeVarDbl, remove: EncodeVarDbl,
		recreate: RecreateOperand},
	{code: VarRefInt, typ: TypeNoParen, name2: "VarRefInt",
		flags: FlagReference, precedence: 2, exprInfo: intNone,
		encode: EncodeVarInt, operandText: EncodeVarInt,
		remove: EncodeVarInt, recreate: RecreateOperand},
	{code: VarRefStr, typ: TypeNoParen, name2: "VarRefStr",
		flags: FlagReference, precedence: 2, exprInfo: strNone,
		encode: EncodeVarStr, operandText: EncodeVarStr,
		remove: EncodeVarStr, recreate: RecreateOperand},
	{code: Array, typ: TypeParen, name2: "Array", precedence: 2,
		exprInfo: dblNone, recreate: RecreateArray},
	{code: ArrayInt, typ: TypeParen, name2: "ArrayInt", precedence: 2,
		exprInfo: intNone, recreate: RecreateArray},
	{code: ArrayStr, typ: TypeParen, name2: "ArrayStr", precedence: 2,
		exprInfo: strNone, recreate: RecreateArray},
	{code: DefFuncN, typ: TypeDefFuncNoArgs, name2: "DefFuncN",
		precedence: 2, exprInfo: dblNone, recreate: RecreateDefFunc},
	{code: DefFuncNInt, typ: TypeDefFuncNoArgs, name2: "DefFuncNInt",
		precedence: 2, exprInfo: intNone, recreate: RecreateDefFunc},
	{code: DefFuncNStr, typ: TypeDefFuncNoArgs, name2: "DefFuncNStr",
		precedence: 2, exprInfo: strNone, recreate: RecreateDefFunc},
	{code: DefFuncP, typ: TypeDefFunc, name2: "DefFuncP", precedence: 2,
		exprInfo: dblNone, recreate: RecreateDefFunc},
	{code: DefFuncPInt, typ: TypeDefFunc, name2: "DefFuncPInt",
		precedence: 2, exprInfo: intNone, recreate: RecreateDefFunc},
	{code: DefFuncPStr, typ: TypeDefFunc, name2: "DefFuncPStr",
		precedence: 2, exprInfo: strNone, recreate: RecreateDefFunc},
	{code: Function, typ: TypeParen, name2: "Function", precedence: 2,
		exprInfo: dblNone, recreate: RecreateFunction},
	{code: FunctionInt, typ: TypeParen, name2: "FunctionInt",
		precedence: 2, exprInfo: intNone, recreate: RecreateFunction},
	{code: FunctionStr, typ: TypeParen, name2: "FunctionStr",
		precedence: 2, exprInfo: strNone, recreate: RecreateFunction},
}

// alternateInfo hand-links the alternates that are not derivable from
// shared names: the assignment web, the internal command codes, and
// the codes with operands.
var alternateInfo = []struct {
	primary Code
	index   int
	codes   []Code
}{
	// assignment alternate codes
	{Let, 0, []Code{Assign}},
	{Assign, 0, []Code{AssignInt, AssignStr}},
	{Assign, 1, []Code{AssignList}},
	{AssignInt, 1, []Code{AssignListInt}},
	{AssignStr, 0, []Code{AssignKeepStr}},
	{AssignStr, 1, []Code{AssignListStr}},

	// sub-string assignment alternate codes
	{Left, 1, []Code{AssignLeft}},
	{AssignLeft, 0, []Code{AssignKeepLeft}},
	{Mid2, 1, []Code{AssignMid2}},
	{AssignMid2, 0, []Code{AssignKeepMid2}},
	{Mid3, 1, []Code{AssignMid3}},
	{AssignMid3, 0, []Code{AssignKeepMid3}},
	{Right, 1, []Code{AssignRight}},
	{AssignRight, 0, []Code{AssignKeepRight}},

	// internal command alternate codes
	{Input, 0, []Code{InputBegin}},
	{Input, 1, []Code{InputAssign}},
	{InputPrompt, 0, []Code{InputBeginStr}},
	{InputPrompt, 1, []Code{InputAssign}},
	{InputAssign, 0, []Code{InputAssignInt, InputAssignStr}},
	{InputAssign, 1, []Code{InputParse}},
	{InputAssignInt, 1, []Code{InputParseInt}},
	{InputAssignStr, 1, []Code{InputParseStr}},
	{Print, 0, []Code{PrintDbl}},
	{PrintDbl, 0, []Code{PrintInt, PrintStr}},
	{Semicolon, 0, []Code{Print}},

	// codes with operands alternate codes
	{Const, 0, []Code{ConstInt, ConstStr}},
	{Var, 0, []Code{VarInt, VarStr}},
	{Var, 1, []Code{VarRef}},
	{VarRef, 0, []Code{VarRefInt, VarRefStr}},
	{Array, 0, []Code{ArrayInt, ArrayStr}},
	{DefFuncN, 0, []Code{DefFuncNInt, DefFuncNStr}},
	{DefFuncP, 0, []Code{DefFuncPInt, DefFuncPStr}},
	{Function, 0, []Code{FunctionInt, FunctionStr}},
}
