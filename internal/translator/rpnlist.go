package translator

import (
	"strconv"
	"strings"

	"gobasic/internal/token"
)

// RpnItem is one element of the translator's output: a token plus the
// attached operand items of arrays, user functions and defined
// functions (in source order; array subscripts attach nil
// placeholders). Expression operators take their operands implicitly
// from the surrounding stream and attach nothing.
type RpnItem struct {
	Token    *token.Token
	Attached []*RpnItem
}

// AttachedCount returns the number of attached operand slots.
func (i *RpnItem) AttachedCount() int {
	return len(i.Attached)
}

// RpnList is the ordered output of a translation. Attached references
// only point at earlier items of the same list.
type RpnList struct {
	items []*RpnItem
}

// Append adds a token as a new item and returns the item.
func (l *RpnList) Append(tok *token.Token) *RpnItem {
	item := &RpnItem{Token: tok}
	l.items = append(l.items, item)
	return item
}

// AppendWithAttached adds a token with its attached operand items.
func (l *RpnList) AppendWithAttached(tok *token.Token, attached []*RpnItem) *RpnItem {
	item := &RpnItem{Token: tok, Attached: attached}
	l.items = append(l.items, item)
	return item
}

// AppendItem adds an already built item (a sub-string assignment
// target that was held off the output while its arguments were
// translated).
func (l *RpnList) AppendItem(item *RpnItem) {
	l.items = append(l.items, item)
}

// InsertAt inserts a token as a new item before index i.
func (l *RpnList) InsertAt(i int, tok *token.Token) *RpnItem {
	item := &RpnItem{Token: tok}
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	return item
}

// Items returns the item slice.
func (l *RpnList) Items() []*RpnItem { return l.items }

func (l *RpnList) Len() int    { return len(l.items) }
func (l *RpnList) Empty() bool { return len(l.items) == 0 }

// LastToken returns the token of the last item.
func (l *RpnList) LastToken() *token.Token {
	return l.items[len(l.items)-1].Token
}

// Equal compares two lists structurally: same length, equal tokens,
// and the same attachment shape.
func (l *RpnList) Equal(other *RpnList) bool {
	if other == nil || len(l.items) != len(other.items) {
		return false
	}
	index := make(map[*RpnItem]int, len(l.items))
	otherIndex := make(map[*RpnItem]int, len(other.items))
	for i := range l.items {
		index[l.items[i]] = i
		otherIndex[other.items[i]] = i
	}
	for i, item := range l.items {
		otherItem := other.items[i]
		if !item.Token.Equal(otherItem.Token) {
			return false
		}
		if len(item.Attached) != len(otherItem.Attached) {
			return false
		}
		for j := range item.Attached {
			a, b := item.Attached[j], otherItem.Attached[j]
			if (a == nil) != (b == nil) {
				return false
			}
			if a != nil && index[a] != otherIndex[b] {
				return false
			}
		}
	}
	return true
}

// DebugString renders the list in the trace spelling: items separated
// by spaces, attached operands as "[index:item,...]".
func (l *RpnList) DebugString() string {
	index := make(map[*RpnItem]int, len(l.items))
	var sb strings.Builder
	for i, item := range l.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		index[item] = i
		sb.WriteString(item.Token.DebugString())
		if len(item.Attached) > 0 {
			separator := byte('[')
			written := false
			for _, attached := range item.Attached {
				if attached == nil {
					continue
				}
				sb.WriteByte(separator)
				sb.WriteString(strconv.Itoa(index[attached]))
				sb.WriteByte(':')
				sb.WriteString(attached.Token.DebugString())
				separator = ','
				written = true
			}
			if written {
				sb.WriteByte(']')
			}
		}
	}
	return sb.String()
}
