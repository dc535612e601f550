package table

// Code identifies one table entry. The value doubles as the entry's
// index, which is what gets packed into program instruction words.
type Code uint16

// Code constants, in catalog order. The order is part of the program
// word format: changing it invalidates previously encoded programs.
const (
	Null Code = iota

	// commands
	Let
	Print
	Input
	InputPrompt
	Rem

	// internal functions (no parentheses)
	Rnd

	// word operators
	Mod
	And
	Or
	Not
	Eqv
	Imp
	Xor

	// internal functions (parentheses)
	Abs
	Fix
	Frac
	Int
	RndArg
	Sgn
	Cint
	Cdbl
	Sqr
	Atn
	Cos
	Sin
	Tan
	Exp
	Log
	Tab
	Spc
	Asc
	Asc2
	Chr
	Instr2
	Instr3
	Left
	Len
	Mid2
	Mid3
	Repeat
	Right
	Space
	Str
	Val

	// symbol operators
	Add
	Neg
	Mul
	Div
	IntDiv
	Power
	Eq
	Gt
	GtEq
	Lt
	LtEq
	NotEq
	OpenParen
	CloseParen
	Comma
	Semicolon
	Colon
	RemOp

	// assignment codes
	Assign
	AssignInt
	AssignStr
	AssignLeft
	AssignMid2
	AssignMid3
	AssignRight
	AssignList
	AssignListInt
	AssignListStr
	AssignKeepStr
	AssignKeepLeft
	AssignKeepMid2
	AssignKeepMid3
	AssignKeepRight

	EOL

	// typed operator alternates
	AddI1
	AddI2
	AddInt
	CatStr
	Sub
	SubI1
	SubI2
	SubInt
	NegInt
	MulI1
	MulI2
	MulInt
	DivI1
	DivI2
	DivInt
	ModI1
	ModI2
	ModInt
	PowerI1
	PowerMul
	PowerInt
	EqI1
	EqI2
	EqInt
	EqStr
	GtI1
	GtI2
	GtInt
	GtStr
	GtEqI1
	GtEqI2
	GtEqInt
	GtEqStr
	LtI1
	LtI2
	LtInt
	LtStr
	LtEqI1
	LtEqI2
	LtEqInt
	LtEqStr
	NotEqI1
	NotEqI2
	NotEqInt
	NotEqStr

	// typed function alternates
	AbsInt
	RndArgInt
	SgnInt
	CvtInt
	CvtDbl
	StrInt

	// print codes
	PrintDbl
	PrintInt
	PrintStr

	// input codes
	InputBegin
	InputBeginStr
	InputAssign
	InputAssignInt
	InputAssignStr
	InputParse
	InputParseInt
	InputParseStr

	// codes with operands
	Const
	ConstInt
	ConstStr
	Var
	VarInt
	VarStr
	VarRef
	VarRefInt
	VarRefStr
	Array
	ArrayInt
	ArrayStr
	DefFuncN
	DefFuncNInt
	DefFuncNStr
	DefFuncP
	DefFuncPInt
	DefFuncPStr
	Function
	FunctionInt
	FunctionStr

	codeCount // number of codes (must be last)
)
