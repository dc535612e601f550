package table

// DataType identifies the data type of an operand, a constant, or the
// return value of a table entry.
//
// The first three values are the execution data types; the remaining
// values are used internally: None marks void (print-only) results,
// Number stands for Double-or-Integer when describing what an operand
// slot accepts, and Any is a request-side placeholder.
type DataType int

const (
	// NoType is the request sentinel used when no particular data
	// type is wanted (for example when fetching an operator token,
	// where numeric constants are not allowed).
	NoType DataType = iota - 1

	Double
	Integer
	String
	None
	Number
	Any
)

var dataTypeNames = map[DataType]string{
	NoType:  "NoType",
	Double:  "Double",
	Integer: "Integer",
	String:  "String",
	None:    "None",
	Number:  "Number",
	Any:     "Any",
}

// String returns the name of the data type.
func (dt DataType) String() string {
	if name, ok := dataTypeNames[dt]; ok {
		return name
	}
	return "Invalid"
}

// Numeric reports whether the data type is Double or Integer.
func (dt DataType) Numeric() bool {
	return dt == Double || dt == Integer
}
