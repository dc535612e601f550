package program

import (
	"strconv"
	"strings"

	"gobasic/internal/token"
)

// EntryKind reports what a dictionary add did with the key.
type EntryKind int

const (
	EntryNew    EntryKind = iota // appended a new slot
	EntryReused                  // reused a freed slot
	EntryExists                  // key already present
)

// CaseSensitive selects the dictionary's key comparison policy.
type CaseSensitive bool

// Dictionary is an insertion-order-stable intern table with
// refcounted slots. A slot freed by Remove is reused by the next Add
// of any key; the slot index is what gets stored in operand words.
type Dictionary struct {
	caseSensitive bool
	freeStack     []uint16
	keys          []string // key per slot ("" for freed slots)
	useCount      []uint16
	keyMap        map[string]uint16
}

// NewDictionary creates an empty dictionary with the given case
// policy (case-insensitive matching is the default for identifiers;
// string constants and remarks compare case-sensitively).
func NewDictionary(caseSensitive CaseSensitive) *Dictionary {
	return &Dictionary{
		caseSensitive: bool(caseSensitive),
		keyMap:        make(map[string]uint16),
	}
}

func (d *Dictionary) fold(key string) string {
	if d.caseSensitive {
		return key
	}
	return strings.ToUpper(key)
}

// Add interns a token's text and returns its slot index and what
// happened: a fresh append, the reuse of a freed slot, or a use-count
// bump of an existing slot.
func (d *Dictionary) Add(tok *token.Token) (uint16, EntryKind) {
	folded := d.fold(tok.Text)
	if index, ok := d.keyMap[folded]; ok {
		d.useCount[index]++
		return index, EntryExists
	}
	if n := len(d.freeStack); n > 0 {
		index := d.freeStack[n-1]
		d.freeStack = d.freeStack[:n-1]
		d.keys[index] = tok.Text
		d.useCount[index] = 1
		d.keyMap[folded] = index
		return index, EntryReused
	}
	index := uint16(len(d.keys))
	d.keys = append(d.keys, tok.Text)
	d.useCount = append(d.useCount, 1)
	d.keyMap[folded] = index
	return index, EntryNew
}

// Remove decrements a slot's use count; at zero the slot is freed and
// true is returned.
func (d *Dictionary) Remove(index uint16) bool {
	if d.useCount[index] == 0 {
		return false
	}
	d.useCount[index]--
	if d.useCount[index] > 0 {
		return false
	}
	delete(d.keyMap, d.fold(d.keys[index]))
	d.keys[index] = ""
	d.freeStack = append(d.freeStack, index)
	return true
}

// String returns the key stored at a live slot.
func (d *Dictionary) String(index uint16) string {
	return d.keys[index]
}

// UseCount returns a slot's reference count.
func (d *Dictionary) UseCount(index uint16) int {
	return int(d.useCount[index])
}

// Clear discards everything.
func (d *Dictionary) Clear() {
	d.freeStack = nil
	d.keys = nil
	d.useCount = nil
	d.keyMap = make(map[string]uint16)
}

// FreeSlots returns the free stack, most recently freed first.
func (d *Dictionary) FreeSlots() []uint16 {
	free := make([]uint16, len(d.freeStack))
	for i, index := range d.freeStack {
		free[len(free)-1-i] = index
	}
	return free
}

// DebugString dumps the live slots and the free stack in the test
// driver's format.
func (d *Dictionary) DebugString() string {
	var sb strings.Builder
	for i := range d.keys {
		if d.useCount[i] > 0 {
			sb.WriteString(strconv.Itoa(i))
			sb.WriteString(": ")
			sb.WriteString(strconv.Itoa(int(d.useCount[i])))
			sb.WriteString(" |")
			sb.WriteString(d.keys[i])
			sb.WriteString("|\n")
		}
	}
	sb.WriteString("Free:")
	if len(d.freeStack) == 0 {
		sb.WriteString(" none")
	} else {
		for _, index := range d.FreeSlots() {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(int(index)))
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// infoValues is the typed side table an InfoDictionary mutates in
// lockstep with the key table.
type infoValues interface {
	add(tok *token.Token)
	set(index uint16, tok *token.Token)
	clear(index uint16)
	reset()
}

// InfoDictionary pairs a Dictionary with a typed value vector.
type InfoDictionary struct {
	*Dictionary
	info infoValues
}

// Add interns the token and keeps the value vector coherent: a new
// slot appends, a reused slot overwrites, an existing slot is left
// alone.
func (d *InfoDictionary) Add(tok *token.Token) (uint16, EntryKind) {
	index, kind := d.Dictionary.Add(tok)
	switch kind {
	case EntryNew:
		d.info.add(tok)
	case EntryReused:
		d.info.set(index, tok)
	}
	return index, kind
}

// Remove frees the slot's value along with the key.
func (d *InfoDictionary) Remove(index uint16) bool {
	if d.Dictionary.Remove(index) {
		d.info.clear(index)
		return true
	}
	return false
}

// Clear discards keys and values.
func (d *InfoDictionary) Clear() {
	d.Dictionary.Clear()
	d.info.reset()
}

// constNumInfo stores the double and integer values of numeric
// constants.
type constNumInfo struct {
	values    []float64
	intValues []int
}

func (i *constNumInfo) add(tok *token.Token) {
	i.values = append(i.values, tok.Value)
	i.intValues = append(i.intValues, tok.ValueInt)
}

func (i *constNumInfo) set(index uint16, tok *token.Token) {
	i.values[index] = tok.Value
	i.intValues[index] = tok.ValueInt
}

func (i *constNumInfo) clear(index uint16) {
	i.values[index] = 0
	i.intValues[index] = 0
}

func (i *constNumInfo) reset() {
	i.values = nil
	i.intValues = nil
}

// ConstNumDictionary interns numeric constants by spelling, keeping
// both value forms.
type ConstNumDictionary struct {
	InfoDictionary
	info *constNumInfo
}

// NewConstNumDictionary creates the numeric constant dictionary.
func NewConstNumDictionary() *ConstNumDictionary {
	info := &constNumInfo{}
	return &ConstNumDictionary{
		InfoDictionary: InfoDictionary{
			Dictionary: NewDictionary(false),
			info:       info,
		},
		info: info,
	}
}

// Value returns the double value at a slot.
func (d *ConstNumDictionary) Value(index uint16) float64 {
	return d.info.values[index]
}

// IntValue returns the integer value at a slot.
func (d *ConstNumDictionary) IntValue(index uint16) int {
	return d.info.intValues[index]
}

// constStrInfo stores string constant bodies.
type constStrInfo struct {
	values []string
}

func (i *constStrInfo) add(tok *token.Token)               { i.values = append(i.values, tok.Text) }
func (i *constStrInfo) set(index uint16, tok *token.Token) { i.values[index] = tok.Text }
func (i *constStrInfo) clear(index uint16)                 { i.values[index] = "" }
func (i *constStrInfo) reset()                             { i.values = nil }

// ConstStrDictionary interns string constants case-sensitively.
type ConstStrDictionary struct {
	InfoDictionary
	info *constStrInfo
}

// NewConstStrDictionary creates the string constant dictionary.
func NewConstStrDictionary() *ConstStrDictionary {
	info := &constStrInfo{}
	return &ConstStrDictionary{
		InfoDictionary: InfoDictionary{
			Dictionary: NewDictionary(true),
			info:       info,
		},
		info: info,
	}
}

// Value returns the string body at a slot.
func (d *ConstStrDictionary) Value(index uint16) string {
	return d.info.values[index]
}
