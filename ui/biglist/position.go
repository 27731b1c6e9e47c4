package biglist

import "math"

// ItemOffset returns the absolute offset of the visual row holding the item
// at (section, index). It replays the processor's accumulation without
// materializing anything. Sections with no rows contribute nothing, and
// sections past the end of the layout count as empty.
func ItemOffset(l Layout, section, index int) float64 {
	offset := l.InsetTop + positive(l.headerHeight())
	for s := 0; s <= section; s++ {
		rows := l.rowsIn(s)
		if rows <= 0 {
			continue
		}
		offset += l.sectionHeaderHeight(s)
		if s == section {
			return offset + l.rowsHeight(s, l.rowOf(index))
		}
		offset += l.rowsHeight(s, l.visualRows(rows)) + positive(l.sectionFooterHeight(s))
	}
	return offset
}

// OffsetOf returns the scroll offset that brings (section, index) into view
// just below its section header, so that a pinned header does not cover the
// target. For index 0 this is the offset of the section header itself.
func OffsetOf(l Layout, section, index int) float64 {
	return math.Max(0, ItemOffset(l, section, index)-l.sectionHeaderHeight(section))
}

// rowOf maps an item index to its visual row within the section.
func (l Layout) rowOf(index int) int {
	if index <= 0 {
		return 0
	}
	return index / l.Columns()
}

// rowsHeight sums the heights of the first n visual rows of section. A row
// is as tall as its first item.
func (l Layout) rowsHeight(section, n int) float64 {
	if n <= 0 {
		return 0
	}
	if l.ItemHeight.Uniform() {
		return float64(n) * l.itemHeight(section, 0)
	}
	cols := l.Columns()
	var total float64
	for row := 0; row < n; row++ {
		total += l.itemHeight(section, row*cols)
	}
	return total
}

// ContentHeight returns the total content height of the layout. It equals
// the Height of any frame the processor computes for the layout.
func ContentHeight(l Layout) float64 {
	total := l.InsetTop + positive(l.headerHeight())
	for s, rows := range l.Sections {
		if rows <= 0 {
			continue
		}
		total += l.sectionHeaderHeight(s) + l.rowsHeight(s, l.visualRows(rows))
		total += positive(l.sectionFooterHeight(s))
	}
	return total + positive(l.footerHeight()) + l.InsetBottom
}
