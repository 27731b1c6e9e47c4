// Package biglist is the windowing and recycling engine behind very large,
// sectioned, scrollable lists.
//
// Given a Layout (section row counts plus header, footer, section and item
// heights) and a window of the content, a Processor materializes only the
// elements that intersect the window and folds everything else into spacers
// that preserve the total height. Elements keep stable keys across passes
// so a retained-mode renderer can reuse what it drew before.
//
// Key properties:
//   - One forward walk per pass; no measurement, all heights come from the
//     Layout.
//   - Recomputation is quantized into blocks (see ProcessBlock) so that
//     high-frequency scroll events rarely trigger a pass.
//   - ItemOffset and OffsetOf replay the same accumulation for imperative
//     scrolls and visibility checks.
package biglist

// Layout describes the shape of a sectioned collection and the heights of
// its parts. A Layout must not change while a pass is computing.
type Layout struct {
	// Sections holds the row count of each section. A flat collection is a
	// single section.
	Sections []int

	HeaderHeight        Height
	FooterHeight        Height
	SectionHeaderHeight Height
	SectionFooterHeight Height
	ItemHeight          Height

	InsetTop    float64
	InsetBottom float64

	// NumColumns groups items of a section into visual rows. Values below 1
	// are treated as 1.
	NumColumns int
}

// SectionLengths converts sectioned caller data into row counts.
func SectionLengths[T any](sections [][]T) []int {
	lengths := make([]int, len(sections))
	for i, s := range sections {
		lengths[i] = len(s)
	}
	return lengths
}

// Columns returns the effective column count.
func (l Layout) Columns() int {
	if l.NumColumns < 1 {
		return 1
	}
	return l.NumColumns
}

// TotalSectionRowCounts returns a copy of the per-section row counts.
func (l Layout) TotalSectionRowCounts() []int {
	return append([]int(nil), l.Sections...)
}

// TotalRows returns the number of items across all sections.
func (l Layout) TotalRows() int {
	total := 0
	for _, rows := range l.Sections {
		total += rows
	}
	return total
}

// Empty reports whether the collection has no items.
func (l Layout) Empty() bool {
	return l.TotalRows() == 0
}

// rowsIn returns the item count of section, or 0 when the section does not
// exist.
func (l Layout) rowsIn(section int) int {
	if section < 0 || section >= len(l.Sections) {
		return 0
	}
	return l.Sections[section]
}

// visualRows returns ceil(rows / columns).
func (l Layout) visualRows(rows int) int {
	cols := l.Columns()
	return (rows + cols - 1) / cols
}

func (l Layout) headerHeight() float64 { return l.HeaderHeight.Resolve(0, 0) }
func (l Layout) footerHeight() float64 { return l.FooterHeight.Resolve(0, 0) }

func (l Layout) sectionHeaderHeight(section int) float64 {
	return l.SectionHeaderHeight.Resolve(section, 0)
}

func (l Layout) sectionFooterHeight(section int) float64 {
	return l.SectionFooterHeight.Resolve(section, 0)
}

func (l Layout) itemHeight(section, index int) float64 {
	return l.ItemHeight.Resolve(section, index)
}

// positive clamps heights of elements that are skipped when not positive.
func positive(h float64) float64 {
	if h > 0 {
		return h
	}
	return 0
}
