package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobasic/internal/table"
	"gobasic/internal/token"
)

var tbl = table.New()

func varToken(text string) *token.Token {
	return token.New(tbl.Entry(table.Var), 0, len(text), text)
}

func TestDictionaryAdd(t *testing.T) {
	d := NewDictionary(false)

	index, kind := d.Add(varToken("alpha"))
	assert.Equal(t, uint16(0), index)
	assert.Equal(t, EntryNew, kind)

	index, kind = d.Add(varToken("beta"))
	assert.Equal(t, uint16(1), index)
	assert.Equal(t, EntryNew, kind)

	// case-insensitive match bumps the use count
	index, kind = d.Add(varToken("ALPHA"))
	assert.Equal(t, uint16(0), index)
	assert.Equal(t, EntryExists, kind)
	assert.Equal(t, 2, d.UseCount(0))

	// the stored key keeps the first spelling
	assert.Equal(t, "alpha", d.String(0))
}

func TestDictionaryCaseSensitive(t *testing.T) {
	d := NewDictionary(true)
	d.Add(varToken("Note"))
	index, kind := d.Add(varToken("note"))
	assert.Equal(t, uint16(1), index)
	assert.Equal(t, EntryNew, kind)
}

func TestDictionaryRemoveAndReuse(t *testing.T) {
	d := NewDictionary(false)
	d.Add(varToken("alpha"))
	d.Add(varToken("beta"))
	d.Add(varToken("alpha"))

	// first remove only decrements
	assert.False(t, d.Remove(0))
	assert.Equal(t, 1, d.UseCount(0))

	// second remove frees the slot
	assert.True(t, d.Remove(0))
	assert.Equal(t, []uint16{0}, d.FreeSlots())

	// the next add of any key reuses the freed slot
	index, kind := d.Add(varToken("gamma"))
	assert.Equal(t, uint16(0), index)
	assert.Equal(t, EntryReused, kind)
	assert.Equal(t, "gamma", d.String(0))
	assert.Empty(t, d.FreeSlots())

	// the untouched slot is still live
	assert.Equal(t, "beta", d.String(1))
}

func TestConstNumDictionary(t *testing.T) {
	d := NewConstNumDictionary()

	one := token.New(tbl.EntryWithType(table.Const, table.Integer), 0, 1, "1")
	one.Value, one.ValueInt = 1, 1
	half := token.New(tbl.Entry(table.Const), 0, 2, ".5")
	half.Value = 0.5

	index, kind := d.Add(one)
	require.Equal(t, EntryNew, kind)
	assert.Equal(t, 1.0, d.Value(index))
	assert.Equal(t, 1, d.IntValue(index))

	index, _ = d.Add(half)
	assert.Equal(t, 0.5, d.Value(index))

	// the values follow slot reuse
	require.True(t, d.Remove(0))
	two := token.New(tbl.EntryWithType(table.Const, table.Integer), 0, 1, "2")
	two.Value, two.ValueInt = 2, 2
	index, kind = d.Add(two)
	assert.Equal(t, uint16(0), index)
	assert.Equal(t, EntryReused, kind)
	assert.Equal(t, 2.0, d.Value(0))
	assert.Equal(t, 2, d.IntValue(0))
}

func TestConstStrDictionary(t *testing.T) {
	d := NewConstStrDictionary()
	hi := token.New(tbl.EntryWithType(table.Const, table.String), 0, 4, "hi")
	index, _ := d.Add(hi)
	assert.Equal(t, "hi", d.Value(index))

	// case-sensitive keys
	caps := token.New(tbl.EntryWithType(table.Const, table.String), 0, 4, "HI")
	index2, kind := d.Add(caps)
	assert.Equal(t, EntryNew, kind)
	assert.NotEqual(t, index, index2)
}

func TestDictionaryDebugString(t *testing.T) {
	d := NewDictionary(false)
	d.Add(varToken("alpha"))
	d.Add(varToken("beta"))
	d.Add(varToken("alpha"))
	d.Remove(1)

	want := "0: 2 |alpha|\nFree: 1\n"
	assert.Equal(t, want, d.DebugString())
}
