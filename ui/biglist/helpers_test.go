package biglist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Shared fixtures
// ---------------------------------------------------------------------------

func flatLayout(n int, h float64) Layout {
	return Layout{Sections: []int{n}, ItemHeight: Fixed(h)}
}

// mixedLayout exercises every height kind, empty sections and insets.
func mixedLayout(cols int) Layout {
	return Layout{
		Sections:            []int{3, 0, 7, 12, 1, 0, 9},
		HeaderHeight:        Static(func() float64 { return 30 }),
		FooterHeight:        Fixed(20),
		SectionHeaderHeight: PerSection(func(s int) float64 { return float64(8 + s) }),
		SectionFooterHeight: Fixed(5),
		ItemHeight: PerItem(func(s, i int) float64 {
			return float64(10 + (s+i)%3*5)
		}),
		InsetTop:    4,
		InsetBottom: 6,
		NumColumns:  cols,
	}
}

// describe renders elements without keys for order/geometry comparisons.
func describe(elements []*Element) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = fmt.Sprintf("%s@%g+%g", e.Identity(), e.Position, e.Height)
	}
	return out
}

// snapshotKeys copies identity→key before the elements are recycled.
func snapshotKeys(elements []*Element) map[Identity]Key {
	keys := make(map[Identity]Key, len(elements))
	for _, e := range elements {
		keys[e.Identity()] = e.Key
	}
	return keys
}

// requireTiled asserts that the frame's elements cover [0, Height] without
// gaps or overlap. Items sharing a row position count once.
func requireTiled(t *testing.T, f Frame) {
	t.Helper()
	var end float64
	var prev *Element
	for i, e := range f.Elements {
		if prev != nil && prev.Type == ElementItem && e.Type == ElementItem && e.Position == prev.Position {
			require.Equal(t, prev.Height, e.Height, "column %d height differs from its row", i)
			continue
		}
		require.Equal(t, end, e.Position, "element %d (%s) does not start where the previous ended", i, e)
		end = e.End()
		prev = e
	}
	require.Equal(t, f.Height, end, "elements do not end at the content height")
}

// requireUniqueKeys asserts every element carries a distinct assigned key.
func requireUniqueKeys(t *testing.T, elements []*Element) {
	t.Helper()
	seen := make(map[Key]*Element, len(elements))
	for _, e := range elements {
		require.NotEqual(t, UnassignedKey, e.Key, "element %s left unassigned", e)
		if other, ok := seen[e.Key]; ok {
			t.Fatalf("key %d shared by %s and %s", e.Key, other, e)
		}
		seen[e.Key] = e
	}
}
