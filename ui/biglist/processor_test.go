package biglist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Window selection
// ---------------------------------------------------------------------------

func TestProcess_FlatWindow(t *testing.T) {
	p := NewProcessor(flatLayout(100, 50), nil)
	f := p.Process(500, 1000, nil)

	want := []string{
		"section_header:0:0@0+0",
		"spacer:0:10@0+500",
		"item:0:10@500+50",
		"item:0:11@550+50",
		"item:0:12@600+50",
		"item:0:13@650+50",
		"item:0:14@700+50",
		"item:0:15@750+50",
		"item:0:16@800+50",
		"item:0:17@850+50",
		"item:0:18@900+50",
		"item:0:19@950+50",
		"spacer:1:1@1000+4000",
	}
	if diff := cmp.Diff(want, describe(f.Elements)); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5000.0, f.Height)
	requireTiled(t, f)
	requireUniqueKeys(t, f.Elements)
}

func TestProcess_InsetsBecomeSpacers(t *testing.T) {
	l := flatLayout(3, 10)
	l.InsetTop = 7
	l.InsetBottom = 9
	f := NewProcessor(l, nil).Process(0, 1000, nil)

	want := []string{
		"spacer:0:-1@0+7",
		"section_header:0:0@7+0",
		"item:0:0@7+10",
		"item:0:1@17+10",
		"item:0:2@27+10",
		"spacer:1:1@37+9",
	}
	if diff := cmp.Diff(want, describe(f.Elements)); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 46.0, f.Height)
}

func TestProcess_HeaderAndFooterAlwaysPresent(t *testing.T) {
	l := flatLayout(1000, 10)
	l.HeaderHeight = Fixed(40)
	l.FooterHeight = Fixed(25)
	f := NewProcessor(l, nil).Process(5000, 5100, nil)

	var types []ElementType
	for _, e := range f.Elements {
		types = append(types, e.Type)
	}
	require.NotEmpty(t, types)
	assert.Equal(t, ElementHeader, types[0])
	assert.Contains(t, types, ElementFooter)
	requireTiled(t, f)
}

func TestProcess_ZeroHeightMarginalsAreNotEmitted(t *testing.T) {
	l := flatLayout(2, 10)
	l.HeaderHeight = Fixed(0)
	l.FooterHeight = Fixed(0)
	l.SectionFooterHeight = Fixed(0)
	f := NewProcessor(l, nil).Process(0, 100, nil)

	for _, e := range f.Elements {
		assert.NotContains(t, []ElementType{ElementHeader, ElementFooter, ElementSectionFooter}, e.Type)
	}
}

func TestProcess_EmptySectionsSkipped(t *testing.T) {
	l := Layout{
		Sections:            []int{0, 3, 0},
		SectionHeaderHeight: Fixed(40),
		SectionFooterHeight: Fixed(10),
		ItemHeight:          Fixed(50),
	}
	f := NewProcessor(l, nil).Process(0, 1000, nil)

	want := []string{
		"section_header:1:0@0+40",
		"item:1:0@40+50",
		"item:1:1@90+50",
		"item:1:2@140+50",
		"section_footer:1:0@190+10",
	}
	if diff := cmp.Diff(want, describe(f.Elements)); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 200.0, f.Height)
}

// ---------------------------------------------------------------------------
// Columns
// ---------------------------------------------------------------------------

func TestProcess_MultiColumnRowGrouping(t *testing.T) {
	l := flatLayout(5, 50)
	l.NumColumns = 2
	f := NewProcessor(l, nil).Process(0, 1000, nil)

	assert.Equal(t, 150.0, f.Height, "5 items in 2 columns are 3 rows")
	var positions []float64
	for _, e := range f.Elements {
		if e.Type == ElementItem {
			positions = append(positions, e.Position)
		}
	}
	assert.Equal(t, []float64{0, 0, 50, 50, 100}, positions)
	requireTiled(t, f)
}

func TestProcess_ColumnGroupingRestartsPerSection(t *testing.T) {
	l := Layout{Sections: []int{3, 3}, ItemHeight: Fixed(10), NumColumns: 2}
	f := NewProcessor(l, nil).Process(0, 1000, nil)

	// Each section has ceil(3/2) = 2 rows.
	assert.Equal(t, 40.0, f.Height)
	requireTiled(t, f)
}

// ---------------------------------------------------------------------------
// Sticky section header re-basing
// ---------------------------------------------------------------------------

func TestProcess_KeepsOnlyNearestSectionHeaderAbove(t *testing.T) {
	l := Layout{
		Sections:            []int{5, 5, 5, 5},
		SectionHeaderHeight: Fixed(10),
		ItemHeight:          Fixed(10),
	}
	f := NewProcessor(l, nil).Process(200, 230, nil)

	want := []string{
		"spacer:2:-1@0+120",
		"section_header:2:0@120+10",
		"spacer:3:-1@130+50",
		"section_header:3:0@180+10",
		"spacer:3:1@190+10",
		"item:3:1@200+10",
		"item:3:2@210+10",
		"item:3:3@220+10",
		"spacer:4:1@230+10",
	}
	if diff := cmp.Diff(want, describe(f.Elements)); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
	requireTiled(t, f)
	requireUniqueKeys(t, f.Elements)
}

func TestProcess_RebaseKeepsListHeader(t *testing.T) {
	l := Layout{
		Sections:            []int{5, 5, 5, 5},
		HeaderHeight:        Fixed(15),
		SectionHeaderHeight: Fixed(10),
		ItemHeight:          Fixed(10),
	}
	f := NewProcessor(l, nil).Process(215, 245, nil)

	require.NotEmpty(t, f.Elements)
	assert.Equal(t, ElementHeader, f.Elements[0].Type)
	var headers []int
	for _, e := range f.Elements {
		if e.Type == ElementSectionHeader {
			headers = append(headers, e.Section)
		}
	}
	assert.Equal(t, []int{2, 3}, headers)
	requireTiled(t, f)
}

// ---------------------------------------------------------------------------
// Properties
// ---------------------------------------------------------------------------

func TestProcess_HeightIndependentOfWindow(t *testing.T) {
	for _, cols := range []int{1, 2, 3} {
		l := mixedLayout(cols)
		want := ContentHeight(l)
		p := NewProcessor(l, nil)
		for top := -100.0; top < want+100; top += 37 {
			f := p.Process(top, top+80, nil)
			require.Equal(t, want, f.Height, "cols=%d window=[%g,%g]", cols, top, top+80)
		}
	}
}

func TestProcess_CoversEveryIntersectingItem(t *testing.T) {
	for _, cols := range []int{1, 2, 3} {
		l := mixedLayout(cols)
		p := NewProcessor(l, nil)
		var prev []*Element
		for top := 0.0; top < ContentHeight(l); top += 23 {
			bottom := top + 60
			f := p.Process(top, bottom, prev)
			requireTiled(t, f)
			requireUniqueKeys(t, f.Elements)

			got := make(map[Identity]bool, len(f.Elements))
			for _, e := range f.Elements {
				got[e.Identity()] = true
			}
			for s, rows := range l.Sections {
				for i := 0; i < rows; i++ {
					start := ItemOffset(l, s, i)
					end := start + l.itemHeight(s, i-i%l.Columns())
					if end > top && start < bottom {
						assert.True(t, got[Identity{ElementItem, s, i}],
							"cols=%d window=[%g,%g] missing item %d/%d", cols, top, bottom, s, i)
					}
				}
			}
			prev = f.Elements
		}
	}
}

func TestProcess_KeysStableAcrossOverlappingWindows(t *testing.T) {
	keys := &KeyCounter{}
	p := NewProcessor(flatLayout(1000, 10), keys)

	first := p.Process(0, 200, nil)
	before := snapshotKeys(first.Elements)

	second := p.Process(100, 300, first.Elements)
	requireUniqueKeys(t, second.Elements)
	for _, e := range second.Elements {
		if e.Type != ElementItem || e.Index < 10 || e.Index >= 20 {
			continue
		}
		assert.Equal(t, before[e.Identity()], e.Key, "item %d changed key", e.Index)
	}
}

func TestProcess_VanishedKeysAreReused(t *testing.T) {
	keys := &KeyCounter{}
	p := NewProcessor(flatLayout(1000, 10), keys)

	first := p.Process(0, 100, nil)
	itemKeys := func(f Frame) map[Key]bool {
		out := make(map[Key]bool)
		for _, e := range f.Elements {
			if e.Type == ElementItem {
				out[e.Key] = true
			}
		}
		return out
	}
	firstKeys := itemKeys(first)
	require.Len(t, firstKeys, 10)

	second := p.Process(5000, 5100, first.Elements)
	assert.Equal(t, firstKeys, itemKeys(second), "disjoint window must draw item keys from the freed pool")
	requireUniqueKeys(t, second.Elements)
}

func TestProcess_SameWindowKeepsEveryKey(t *testing.T) {
	keys := &KeyCounter{}
	p := NewProcessor(mixedLayout(2), keys)

	first := p.Process(300, 360, nil)
	before := snapshotKeys(first.Elements)
	minted := keys.Last()

	second := p.Process(300, 360, first.Elements)
	assert.Equal(t, before, snapshotKeys(second.Elements))
	assert.Equal(t, minted, keys.Last(), "no key minted for an unchanged window")
}

func TestProcess_IdempotentGeometry(t *testing.T) {
	p := NewProcessor(mixedLayout(2), nil)
	a := p.Process(120, 260, nil)
	b := p.Process(120, 260, nil)

	opts := cmpopts.IgnoreFields(Element{}, "Key")
	if diff := cmp.Diff(a.Elements, b.Elements, opts); diff != "" {
		t.Errorf("geometry differs between identical passes (-a +b):\n%s", diff)
	}
	assert.Equal(t, a.Height, b.Height)
}

func TestProcess_HeightFunctionsCalledPerRow(t *testing.T) {
	calls := 0
	l := Layout{
		Sections: []int{6},
		ItemHeight: PerItem(func(s, i int) float64 {
			calls++
			return 10
		}),
		NumColumns: 3,
	}
	NewProcessor(l, nil).Process(0, 100, nil)
	assert.Equal(t, 2, calls, "one call per visual row")
}
