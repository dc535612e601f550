// Package parser turns one line of BASIC source into a stream of
// tokens. Token categorization already consults the table: names
// resolve to commands, internal functions and operators as they are
// scanned, and identifiers come back bound to the typed variable,
// array or function entries.
package parser

import (
	"math"
	"strconv"
	"strings"

	"gobasic/internal/table"
	"gobasic/internal/token"
)

// Parser scans a single input line. The input and the table are
// fixed; only the read position advances.
type Parser struct {
	tbl      *table.Table
	input    string
	pos      int
	resolver ParenResolver
}

// ParenResolver decides whether an unknown identifier followed by an
// opening parenthesis is a user function or an array. The default is
// a placeholder rule (names starting with 'F' are functions) until
// function and array dictionaries exist to consult.
type ParenResolver func(name string) table.Code

// Option configures a Parser.
type Option func(*Parser)

// WithParenResolver overrides the function-versus-array decision for
// unknown parenthesized identifiers.
func WithParenResolver(resolver ParenResolver) Option {
	return func(p *Parser) {
		p.resolver = resolver
	}
}

// New creates a parser over one input line.
func New(tbl *table.Table, input string, opts ...Option) *Parser {
	p := &Parser{
		tbl:   tbl,
		input: input,
		resolver: func(name string) table.Code {
			if name[0] == 'F' || name[0] == 'f' {
				return table.Function
			}
			return table.Array
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Next returns the next token. Numeric constants are only scanned
// when the requested data type admits them (a leading '-' is then
// left for the unary operator). The reference argument makes plain
// identifiers come back as variable references.
func (p *Parser) Next(dataType table.DataType, reference token.Reference) (*token.Token, error) {
	p.skipWhitespace()
	if p.atEnd() {
		return token.New(p.tbl.Entry(table.EOL), len(p.input), 1, ""), nil
	}
	if tok := p.getIdentifier(reference); tok != nil {
		return tok, nil
	}
	if dataType != table.NoType && dataType != table.String &&
		reference == token.ReferenceNone {
		tok, err := p.getNumber(dataType)
		if err != nil {
			return nil, err
		}
		if tok != nil {
			return tok, nil
		}
	}
	if tok := p.getString(); tok != nil {
		return tok, nil
	}
	if tok := p.getOperator(); tok != nil {
		return tok, nil
	}
	return nil, token.NewError(token.UnknownToken, p.pos, 1)
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *Parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) get() byte {
	c := p.input[p.pos]
	p.pos++
	return c
}

func (p *Parser) skipWhitespace() {
	for !p.atEnd() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

// word is an identifier candidate: its spelling, the data type of an
// optional suffix character, and whether an opening parenthesis
// followed.
type word struct {
	text     string
	dataType table.DataType
	paren    bool
}

type wordType int

const (
	firstWord  wordType = iota
	secondWord // second word of a command; no suffix or parenthesis
)

func (p *Parser) getWord(wordType wordType) word {
	w := word{dataType: table.None}
	if !isLetter(p.peek()) {
		return w
	}
	start := p.pos
	for {
		w.text += string(p.get())
		if !isLetter(p.peek()) && !isDigit(p.peek()) && p.peek() != '_' {
			break
		}
	}
	switch p.peek() {
	case '%':
		w.dataType = table.Integer
		w.text += string(p.get())
	case '$':
		w.dataType = table.String
		w.text += string(p.get())
	case '#':
		w.dataType = table.Double
		w.text += string(p.get())
	}
	if p.peek() == '(' {
		w.paren = true
		w.text += string(p.get())
	}
	if wordType == secondWord && (w.dataType != table.None || w.paren) {
		w.text = ""
		p.pos = start
	}
	return w
}

// getIdentifier scans a command, internal function, word operator,
// defined function, or identifier (with or without parenthesis).
// Returns nil when the input does not start with a letter.
func (p *Parser) getIdentifier(reference token.Reference) *token.Token {
	start := p.pos
	w := p.getWord(firstWord)
	if w.text == "" {
		return nil
	}

	// a remark does not require whitespace after the keyword
	remName := p.tbl.Entry(table.Rem).Name()
	if len(w.text) >= len(remName) &&
		strings.EqualFold(w.text[:len(remName)], remName) {
		p.pos = start + len(remName)
		remark := p.input[p.pos:]
		p.pos = len(p.input)
		return token.New(p.tbl.Entry(table.Rem), start, len(remName), remark)
	}

	// defined function: FN followed by at least one letter
	if len(w.text) >= 3 && (w.text[0] == 'F' || w.text[0] == 'f') &&
		(w.text[1] == 'N' || w.text[1] == 'n') && isLetter(w.text[2]) {
		code := table.DefFuncN
		if w.paren {
			code = table.DefFuncP
		}
		return p.identifierToken(code, start, w)
	}

	entry := p.tbl.Find(w.text)
	if entry == nil {
		// not in the table: variable, array or generic function
		var code table.Code
		if !w.paren {
			code = table.Var
			if reference != token.ReferenceNone {
				code = table.VarRef
			}
		} else if reference == token.ReferenceNone {
			code = p.resolver(w.text)
		} else {
			code = table.Array
		}
		return p.identifierToken(code, start, w)
	}

	length := len(w.text)
	if entry.HasFlag(table.FlagTwo) {
		// command could be a two-word command
		p.skipWhitespace()
		start2 := p.pos
		w2 := p.getWord(secondWord)
		if w2.text != "" {
			if entry2 := p.tbl.FindTwo(w.text, w2.text); entry2 != nil {
				entry = entry2
				length = start2 - start + len(w2.text)
			} else {
				p.pos = start2
			}
		}
	}
	return token.New(entry, start, length, "")
}

// identifierToken builds a token for an identifier code, stripping
// the parenthesis and data type suffix from the stored spelling.
func (p *Parser) identifierToken(code table.Code, start int, w word) *token.Token {
	text := w.text
	if w.paren {
		text = text[:len(text)-1]
	}
	length := len(text)
	var subCode token.SubCode
	if w.dataType != table.None {
		text = text[:len(text)-1]
		if w.dataType == table.Double {
			subCode = token.SubDouble
		}
	}
	dataType := w.dataType
	if dataType == table.None {
		dataType = table.Double
	}
	tok := token.New(p.tbl.EntryWithType(code, dataType), start, length, text)
	tok.SubCode = subCode
	return tok
}

// getNumber scans a numeric constant. A dotless, exponent-less
// lexeme that fits a 32-bit integer produces an Integer constant
// (unless Double was requested); overflow and decimal or exponent
// spellings produce a Double constant. Returns nil when the input
// does not start a number (a lone '-' is the unary operator).
func (p *Parser) getNumber(dataType table.DataType) (*token.Token, error) {
	var digits, decimal, sign, expSign bool
	var number strings.Builder

	start := p.pos
scan:
	for {
		switch c := p.peek(); {
		case isDigit(c):
			number.WriteByte(p.get())
			if !digits {
				digits = true
				if !decimal && c == '0' && p.peek() != '.' {
					if isDigit(p.peek()) {
						return nil, token.NewError(token.ExpNonZeroDigit,
							start, 1)
					}
					break scan // single zero
				}
			}
		case c == '.':
			if decimal {
				if !digits {
					return nil, token.NewError(token.ExpDigitsOrSngDP,
						start, 2)
				}
				break scan
			}
			decimal = true
			number.WriteByte(p.get())
		case c == 'e' || c == 'E':
			if !digits {
				if sign && !decimal {
					// '-E' is not a number; leave '-' for the
					// unary operator
					p.pos = start
					return nil, nil
				}
				return nil, token.NewError(token.ExpManDigits, start, 2)
			}
			number.WriteByte(p.get())
			if p.peek() == '+' || p.peek() == '-' {
				expSign = true
				number.WriteByte(p.get())
			}
			digits = false
			for isDigit(p.peek()) {
				number.WriteByte(p.get())
				digits = true
			}
			if !digits {
				status := token.ExpExpSignOrDigits
				if expSign {
					status = token.ExpExpDigits
				}
				return nil, token.NewError(status, start+number.Len(), 1)
			}
			decimal = true // process as double
			break scan
		default:
			if !digits && !decimal {
				if !sign && c == '-' {
					number.WriteByte(p.get())
					sign = true
					continue
				}
				p.pos = start
				return nil, nil // not a numeric constant
			}
			if !digits {
				return nil, token.NewError(token.ExpDigits, start, 1)
			}
			break scan
		}
	}

	text := number.String()
	length := len(text)

	if !decimal {
		if value, err := strconv.ParseInt(text, 10, 32); err == nil {
			if dataType == table.Double {
				return p.doubleToken(start, length, text,
					float64(value)), nil
			}
			tok := token.New(p.tbl.EntryWithType(table.Const, table.Integer),
				start, length, text)
			tok.Value = float64(value)
			tok.ValueInt = int(value)
			return tok, nil
		}
		// overflow: fall through and scan as double
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(value, 0) {
		return nil, token.NewError(token.FPOutOfRange, start, length)
	}
	return p.doubleToken(start, length, text, value), nil
}

// doubleToken builds a Double constant; the IntConst sub-code marks
// a value exactly representable as a 32-bit integer, which the
// translator may retype in place where Integer is expected.
func (p *Parser) doubleToken(column, length int, text string, value float64) *token.Token {
	tok := token.New(p.tbl.EntryWithType(table.Const, table.Double),
		column, length, text)
	tok.Value = value
	if value == math.Trunc(value) &&
		value >= math.MinInt32 && value <= math.MaxInt32 {
		tok.ValueInt = int(value)
		tok.AddSubCode(token.SubIntConst)
	}
	return tok
}

// getString scans a string constant; two consecutive quotes inside
// encode one quote. A missing closing quote is tolerated.
func (p *Parser) getString() *token.Token {
	if p.peek() != '"' {
		return nil
	}
	start := p.pos
	p.get() // opening quote
	var body strings.Builder
	for !p.atEnd() {
		c := p.get()
		if c == '"' {
			if p.peek() != '"' {
				break // closing quote
			}
			p.get() // second quote counts as one character
		}
		body.WriteByte(c)
	}
	return token.New(p.tbl.EntryWithType(table.Const, table.String),
		start, p.pos-start, body.String())
}

// getOperator scans a symbol operator of one or two characters; the
// single quote starts a remark running to the end of the line.
func (p *Parser) getOperator() *token.Token {
	entry := p.tbl.Find(string(p.peek()))
	if entry == nil {
		return nil
	}
	start := p.pos
	p.get()
	if entry.IsCode(table.RemOp) {
		remark := p.input[p.pos:]
		p.pos = len(p.input)
		return token.New(entry, start, 1, remark)
	}
	length := 1
	if entry.HasFlag(table.FlagTwo) && !p.atEnd() {
		if entry2 := p.tbl.Find(p.input[start : p.pos+1]); entry2 != nil {
			p.get()
			entry = entry2
			length = 2
		}
	}
	return token.New(entry, start, length, "")
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
