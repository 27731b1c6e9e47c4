package biglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCounter_Monotonic(t *testing.T) {
	var c KeyCounter
	assert.Equal(t, Key(0), c.Last())
	assert.Equal(t, Key(1), c.Next())
	assert.Equal(t, Key(2), c.Next())
	assert.Equal(t, Key(2), c.Last())
}

func TestRecycler_NewElementsGetFreshKeys(t *testing.T) {
	keys := &KeyCounter{}
	r := NewRecycler(nil, keys)
	a := r.Get(ElementItem, 0, 0, 0, 10)
	b := r.Get(ElementItem, 0, 1, 10, 10)
	assert.Equal(t, UnassignedKey, a.Key)

	r.Fill()
	assert.Equal(t, Key(1), a.Key)
	assert.Equal(t, Key(2), b.Key)
}

func TestRecycler_GetIsIdempotentWithinPass(t *testing.T) {
	r := NewRecycler(nil, nil)
	a := r.Get(ElementSpacer, 2, -1, 0, 10)
	b := r.Get(ElementSpacer, 2, -1, 0, 30)
	require.Same(t, a, b)
	assert.Equal(t, 30.0, a.Height)

	r.Fill()
	assert.NotEqual(t, UnassignedKey, a.Key)
}

func TestRecycler_MatchedElementKeepsKeyAndMoves(t *testing.T) {
	prev := &Element{Type: ElementItem, Key: 7, Position: 100, Height: 10, Section: 1, Index: 3}
	r := NewRecycler([]*Element{prev}, &KeyCounter{})

	e := r.Get(ElementItem, 1, 3, 250, 12)
	r.Fill()
	require.Same(t, prev, e)
	assert.Equal(t, Key(7), e.Key)
	assert.Equal(t, 250.0, e.Position)
	assert.Equal(t, 12.0, e.Height)
}

func TestRecycler_FreedKeysReusedInPreviousOrder(t *testing.T) {
	previous := []*Element{
		{Type: ElementItem, Key: 5, Section: 0, Index: 0},
		{Type: ElementItem, Key: 3, Section: 0, Index: 1},
		{Type: ElementItem, Key: 9, Section: 0, Index: 2},
	}
	keys := &KeyCounter{}
	r := NewRecycler(previous, keys)

	kept := r.Get(ElementItem, 0, 1, 0, 10)
	x := r.Get(ElementItem, 0, 7, 10, 10)
	y := r.Get(ElementItem, 0, 8, 20, 10)
	z := r.Get(ElementItem, 0, 9, 30, 10)
	r.Fill()

	assert.Equal(t, Key(3), kept.Key)
	assert.Equal(t, Key(5), x.Key)
	assert.Equal(t, Key(9), y.Key)
	assert.Equal(t, Key(1), z.Key, "pool exhausted, fresh key minted")
}

func TestRecycler_KeysDoNotCrossTypes(t *testing.T) {
	previous := []*Element{{Type: ElementSectionHeader, Key: 4, Section: 0}}
	keys := &KeyCounter{}
	r := NewRecycler(previous, keys)

	item := r.Get(ElementItem, 3, 0, 0, 10)
	r.Fill()
	assert.Equal(t, Key(1), item.Key)
}

func TestRecycler_ReleaseReturnsKeyToPool(t *testing.T) {
	previous := []*Element{{Type: ElementSpacer, Key: 11, Section: 0, Index: -1}}
	r := NewRecycler(previous, &KeyCounter{})

	dropped := r.Get(ElementSpacer, 0, -1, 0, 40)
	require.Equal(t, Key(11), dropped.Key)
	r.Release(dropped)

	other := r.Get(ElementSpacer, 4, -1, 0, 40)
	r.Fill()
	assert.Equal(t, Key(11), other.Key)
}

func TestRecycler_ReleasePendingSkipsFill(t *testing.T) {
	keys := &KeyCounter{}
	r := NewRecycler(nil, keys)

	dropped := r.Get(ElementSectionHeader, 0, 0, 0, 10)
	r.Release(dropped)
	kept := r.Get(ElementSectionHeader, 1, 0, 10, 10)
	r.Fill()

	assert.Equal(t, UnassignedKey, dropped.Key)
	assert.Equal(t, Key(1), kept.Key)
	assert.Equal(t, Key(1), keys.Last())
}
