// Package program owns the per-unit state of a translated program:
// the packed 16-bit word vector, the six operand dictionaries, the
// per-line offsets and errors, and the encoder that turns RPN lists
// into program words (and back into tokens for display).
package program

import (
	"strconv"
	"strings"

	"gobasic/internal/table"
	"gobasic/internal/token"
	"gobasic/internal/translator"
)

// dictionary is what the writer, reader and remover need from any of
// the model's dictionaries.
type dictionary interface {
	Add(*token.Token) (uint16, EntryKind)
	Remove(uint16) bool
	String(uint16) string
}

// lineInfo locates one line inside the code vector.
type lineInfo struct {
	offset int
	size   int
	text   string
	rpn    *translator.RpnList
	err    *token.Error
}

// Model holds one program unit. Editing is line based through Update;
// a translation error stores the error on the line, which then holds
// no words and no dictionary references (a replaced line's old words
// and references are released).
type Model struct {
	tbl   *table.Table
	code  Code
	lines []lineInfo

	rem      *Dictionary
	constNum *ConstNumDictionary
	constStr *ConstStrDictionary
	varDbl   *Dictionary
	varInt   *Dictionary
	varStr   *Dictionary

	// optional listeners for line edits
	LineCountChanged func(newCount int)
	LineChanged      func(lineIndex int)
}

// NewModel creates an empty program unit.
func NewModel(tbl *table.Table) *Model {
	return &Model{
		tbl:      tbl,
		rem:      NewDictionary(true),
		constNum: NewConstNumDictionary(),
		constStr: NewConstStrDictionary(),
		varDbl:   NewDictionary(false),
		varInt:   NewDictionary(false),
		varStr:   NewDictionary(false),
	}
}

// Dictionaries.
func (m *Model) RemDictionary() *Dictionary              { return m.rem }
func (m *Model) ConstNumDictionary() *ConstNumDictionary { return m.constNum }
func (m *Model) ConstStrDictionary() *ConstStrDictionary { return m.constStr }
func (m *Model) VarDblDictionary() *Dictionary           { return m.varDbl }
func (m *Model) VarIntDictionary() *Dictionary           { return m.varInt }
func (m *Model) VarStrDictionary() *Dictionary           { return m.varStr }

func (m *Model) dictionaryFor(fn table.EncodeFn) dictionary {
	switch fn {
	case table.EncodeRem:
		return m.rem
	case table.EncodeConstNum:
		return m.constNum
	case table.EncodeConstStr:
		return m.constStr
	case table.EncodeVarDbl:
		return m.varDbl
	case table.EncodeVarInt:
		return m.varInt
	case table.EncodeVarStr:
		return m.varStr
	}
	return nil
}

// RowCount returns the number of program lines.
func (m *Model) RowCount() int { return len(m.lines) }

// LineText returns a line's source text.
func (m *Model) LineText(lineIndex int) string { return m.lines[lineIndex].text }

// LineError returns the translation error stored on a line, or nil.
func (m *Model) LineError(lineIndex int) *token.Error {
	return m.lines[lineIndex].err
}

// Update executes a mixed replace/delete/insert edit in one step:
// the first len(lines)-linesInserted lines replace existing lines
// starting at lineIndex, then linesDeleted lines are removed or the
// remaining lines inserted. Listener callbacks fire per changed line
// and once when the line count changes.
func (m *Model) Update(lineIndex, linesDeleted, linesInserted int, lines []string) {
	oldCount := len(m.lines)
	i := 0
	for ; i < len(lines)-linesInserted; i++ {
		if m.replaceLine(lineIndex, lines[i]) && m.LineChanged != nil {
			m.LineChanged(lineIndex)
		}
		lineIndex++
	}
	if linesDeleted > 0 {
		for ; linesDeleted > 0; linesDeleted-- {
			m.removeLine(lineIndex)
		}
	} else {
		for ; i < len(lines); i++ {
			m.insertLine(lineIndex, lines[i])
			lineIndex++
		}
	}
	if len(m.lines) != oldCount && m.LineCountChanged != nil {
		m.LineCountChanged(len(m.lines))
	}
}

// translateLine translates one source line; the error is stored per
// line rather than propagated.
func (m *Model) translateLine(text string) (*translator.RpnList, *token.Error) {
	rpn, err := translator.New(m.tbl, text).Translate(translator.TestModeNo)
	if err != nil {
		e, _ := token.AsError(err)
		return nil, e
	}
	if e := assignCodes(m.tbl, rpn); e != nil {
		return nil, e
	}
	return rpn, nil
}

// replaceLine retranslates a line in place; it reports whether the
// stored translation actually changed.
func (m *Model) replaceLine(lineIndex int, text string) bool {
	line := &m.lines[lineIndex]
	rpn, err := m.translateLine(text)
	if err == nil && line.err == nil && line.rpn.Equal(rpn) {
		line.text = text
		return false
	}

	m.removeLineReferences(line)
	var words []Word
	if err == nil {
		words = m.encodeLine(rpn)
	}
	m.code.ReplaceLine(line.offset, line.size, words)
	m.shiftOffsets(lineIndex+1, len(words)-line.size)
	*line = lineInfo{offset: line.offset, size: len(words), text: text,
		rpn: rpn, err: err}
	return true
}

// insertLine translates and encodes a new line at the index.
func (m *Model) insertLine(lineIndex int, text string) {
	offset := m.code.Len()
	if lineIndex < len(m.lines) {
		offset = m.lines[lineIndex].offset
	}
	rpn, err := m.translateLine(text)
	var words []Word
	if err == nil {
		words = m.encodeLine(rpn)
	}
	m.code.InsertLine(offset, words)
	m.lines = append(m.lines, lineInfo{})
	copy(m.lines[lineIndex+1:], m.lines[lineIndex:])
	m.lines[lineIndex] = lineInfo{offset: offset, size: len(words),
		text: text, rpn: rpn, err: err}
	m.shiftOffsets(lineIndex+1, len(words))
}

// removeLine releases a line's dictionary references and erases its
// words.
func (m *Model) removeLine(lineIndex int) {
	line := &m.lines[lineIndex]
	m.removeLineReferences(line)
	m.code.RemoveLine(line.offset, line.size)
	m.shiftOffsets(lineIndex+1, -line.size)
	m.lines = append(m.lines[:lineIndex], m.lines[lineIndex+1:]...)
}

func (m *Model) shiftOffsets(fromLine, delta int) {
	if delta == 0 {
		return
	}
	for i := fromLine; i < len(m.lines); i++ {
		m.lines[i].offset += delta
	}
}

// removeLineReferences walks a line's old words and decrements each
// operand's dictionary reference count.
func (m *Model) removeLineReferences(line *lineInfo) {
	reader := m.lineReader(line)
	for reader.HasMoreWords() {
		entry := m.tbl.Entry(table.Code(reader.Next().InstructionCode()))
		if entry.HasOperand() {
			m.dictionaryFor(entry.RemoveFunc()).Remove(reader.Next().Operand())
		}
	}
}

// encodeLine emits one line's program words, interning operands.
func (m *Model) encodeLine(rpn *translator.RpnList) []Word {
	var words []Word
	for _, item := range rpn.Items() {
		tok := item.Token
		tok.Offset = len(words)
		words = append(words,
			NewInstructionWord(tok.Entry.Index(), tok.SubCode))
		if tok.Entry.HasOperand() {
			index, _ := m.dictionaryFor(tok.Entry.EncodeFunc()).Add(tok)
			words = append(words, Word(index))
		}
	}
	return words
}

// lineReader returns a positional reader over a line's words.
func (m *Model) lineReader(line *lineInfo) *LineReader {
	return &LineReader{model: m, pos: line.offset, end: line.offset + line.size}
}

// DecodeLine rebuilds a line's RPN list from its program words and
// dictionaries, for recreation and debug display. Error lines return
// nil.
func (m *Model) DecodeLine(lineIndex int) *translator.RpnList {
	line := &m.lines[lineIndex]
	if line.err != nil {
		return nil
	}
	rpn := &translator.RpnList{}
	reader := m.lineReader(line)
	for reader.HasMoreWords() {
		word := reader.Next()
		entry := m.tbl.Entry(table.Code(word.InstructionCode()))
		text := ""
		if entry.HasOperand() {
			operand := reader.Next().Operand()
			text = m.dictionaryFor(entry.OperandTextFunc()).String(operand)
		}
		tok := token.New(entry, -1, -1, text)
		tok.SubCode = token.SubCode(word.InstructionSubCode())
		rpn.Append(tok)
	}
	return rpn
}

// DebugText dumps a line's words: each instruction's debug name with
// its sub-code marks, operands as "index:|text|".
func (m *Model) DebugText(lineIndex int) string {
	line := &m.lines[lineIndex]
	if line.err != nil {
		return line.err.Error()
	}
	var sb strings.Builder
	reader := m.lineReader(line)
	for reader.HasMoreWords() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		word := reader.Next()
		entry := m.tbl.Entry(table.Code(word.InstructionCode()))
		sb.WriteString(entry.DebugName())
		sb.WriteString(subCodeMarks(entry, token.SubCode(word.InstructionSubCode())))
		if entry.HasOperand() {
			operand := reader.Next().Operand()
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(int(operand)))
			sb.WriteString(":|")
			sb.WriteString(m.dictionaryFor(entry.OperandTextFunc()).String(operand))
			sb.WriteByte('|')
		}
	}
	return sb.String()
}

func subCodeMarks(entry *table.Entry, sub token.SubCode) string {
	if sub&(token.SubParen|token.SubOption|token.SubColon|token.SubDouble) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('\'')
	if !entry.HasFlag(table.FlagCommand) && sub&token.SubParen != 0 {
		sb.WriteByte(')')
	}
	if sub&token.SubOption != 0 {
		if option := entry.Option(); option != "" {
			sb.WriteString(option)
		} else {
			sb.WriteString("BUG")
		}
	}
	if entry.HasFlag(table.FlagCommand) && sub&token.SubColon != 0 {
		sb.WriteByte(':')
	}
	if sub&token.SubDouble != 0 {
		sb.WriteString("Double")
	}
	sb.WriteByte('\'')
	return sb.String()
}
