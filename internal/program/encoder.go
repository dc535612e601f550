package program

import (
	"gobasic/internal/table"
	"gobasic/internal/token"
	"gobasic/internal/translator"
)

// assignCodes finalizes the codes of primitive tokens before
// encoding. Constants already carry their typed entries; plain
// identifiers flagged as references during translation are resolved
// to the reference codes. Token types the program format cannot hold
// yet (arrays, user and defined functions, pending their
// dictionaries) report BugNotYetImplemented.
func assignCodes(tbl *table.Table, rpn *translator.RpnList) *token.Error {
	for _, item := range rpn.Items() {
		tok := item.Token
		switch tok.Type() {
		case table.TypeConstant, table.TypeCommand, table.TypeOperator,
			table.TypeIntFunc:
			// these token types already carry finalized codes
		case table.TypeNoParen:
			if tok.Reference {
				tok.SetEntry(tbl.EntryWithType(table.VarRef, tok.DataType()))
				tok.Reference = false
			}
		default:
			return token.TokenError(token.BugNotYetImplemented, tok)
		}
	}
	return nil
}

// LineReader is a positional iterator over one line's program words.
type LineReader struct {
	model *Model
	pos   int
	end   int
}

// Next returns the word at the position and advances.
func (r *LineReader) Next() Word {
	word := r.model.code.At(r.pos)
	r.pos++
	return word
}

// HasMoreWords reports whether words remain in the line.
func (r *LineReader) HasMoreWords() bool {
	return r.pos < r.end
}
