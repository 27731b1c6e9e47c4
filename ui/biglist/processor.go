package biglist

// Processor computes frames for one layout. It is cheap to construct; build
// a new one whenever the layout changes.
type Processor struct {
	layout Layout
	keys   *KeyCounter
}

// NewProcessor returns a processor for layout. keys mints stable keys and
// must be shared by every pass whose previous frame feeds the next one.
func NewProcessor(layout Layout, keys *KeyCounter) *Processor {
	if keys == nil {
		keys = &KeyCounter{}
	}
	return &Processor{layout: layout, keys: keys}
}

// Layout returns the layout the processor walks.
func (p *Processor) Layout() Layout {
	return p.layout
}

// Process walks the layout once and materializes every element that
// intersects [top, bottom]. Runs of skipped content are folded into spacers
// so that the elements tile the content from 0 to the returned height
// without gaps. Elements of previous are reused (and mutated) when their
// identity is still materialized.
func (p *Processor) Process(top, bottom float64, previous []*Element) Frame {
	w := &walk{
		layout:   p.layout,
		top:      top,
		bottom:   bottom,
		recycler: NewRecycler(previous, p.keys),
		cursor:   p.layout.InsetTop,
		spacer:   p.layout.InsetTop,
	}
	w.header()
	for section, rows := range p.layout.Sections {
		if rows <= 0 {
			continue
		}
		w.section(section, rows)
	}
	w.footer()
	w.tail()
	w.recycler.Fill()
	return Frame{Height: w.cursor, Elements: w.elements}
}

// walk is the state of one forward pass.
type walk struct {
	layout   Layout
	top      float64
	bottom   float64
	recycler *Recycler

	// cursor is the running absolute offset; spacer is the height skipped
	// since the last emitted element.
	cursor   float64
	spacer   float64
	elements []*Element
}

// overlaps reports whether [start, end] intersects the window.
func (w *walk) overlaps(start, end float64) bool {
	return end > w.top && start < w.bottom
}

func (w *walk) header() {
	h := w.layout.headerHeight()
	if h <= 0 {
		return
	}
	position := w.cursor
	w.cursor += h
	w.push(ElementHeader, 0, 0, position, h)
}

func (w *walk) footer() {
	h := w.layout.footerHeight()
	if h <= 0 {
		return
	}
	position := w.cursor
	w.cursor += h
	w.push(ElementFooter, 0, 0, position, h)
}

func (w *walk) section(section, rows int) {
	if n := len(w.elements); n > 0 && w.elements[n-1].Type == ElementSectionHeader && w.cursor <= w.top {
		w.rebase()
	}

	h := w.layout.sectionHeaderHeight(section)
	position := w.cursor
	w.cursor += h
	if position < w.bottom {
		w.push(ElementSectionHeader, section, 0, position, h)
	} else {
		w.spacer += h
	}

	w.items(section, rows)

	if h := w.layout.sectionFooterHeight(section); h > 0 {
		position := w.cursor
		w.cursor += h
		w.emitOrSkip(ElementSectionFooter, section, 0, position, h)
	}
}

// items walks the rows of a section. Items of one visual row share the
// row's position and the height of its first item.
func (w *walk) items(section, rows int) {
	cols := w.layout.Columns()
	uniform := w.layout.ItemHeight.Uniform()
	var uniformHeight float64
	if uniform {
		uniformHeight = w.layout.itemHeight(section, 0)
	}

	var rowStart, rowHeight float64
	var rowVisible bool
	for index := 0; index < rows; index++ {
		if index%cols == 0 {
			rowHeight = uniformHeight
			if !uniform {
				rowHeight = w.layout.itemHeight(section, index)
			}
			rowStart = w.cursor
			w.cursor += rowHeight
			rowVisible = w.overlaps(rowStart, w.cursor)
			if !rowVisible {
				w.spacer += rowHeight
			}
		}
		if rowVisible {
			w.push(ElementItem, section, index, rowStart, rowHeight)
		}
	}
}

func (w *walk) emitOrSkip(typ ElementType, section, index int, position, height float64) {
	if w.overlaps(position, position+height) {
		w.push(typ, section, index, position, height)
		return
	}
	w.spacer += height
}

// push emits an element, preceded by a spacer for any skipped run.
func (w *walk) push(typ ElementType, section, index int, position, height float64) {
	e := w.recycler.Get(typ, section, index, position, height)
	if w.spacer > 0 {
		w.elements = append(w.elements, w.spacerBefore(e, position-w.spacer, w.spacer))
		w.spacer = 0
	}
	w.elements = append(w.elements, e)
}

// tail emits the trailing spacer covering the bottom inset and any skipped
// content after the last emitted element.
func (w *walk) tail() {
	w.cursor += w.layout.InsetBottom
	w.spacer += w.layout.InsetBottom
	if w.spacer > 0 {
		e := w.recycler.Get(ElementSpacer, len(w.layout.Sections), 1, w.cursor-w.spacer, w.spacer)
		w.elements = append(w.elements, e)
		w.spacer = 0
	}
}

// rebase runs when a new section starts while the previous section header is
// the last emitted element and everything walked so far lies above the
// window. Only the list header and that section header stay materialized;
// everything else above is folded into exactly sized spacers, which keeps
// the nearest header available for sticky presentation without carrying
// every header above the window.
func (w *walk) rebase() {
	last := w.elements[len(w.elements)-1]
	kept := make([]*Element, 0, 4)
	var end float64
	keep := func(e *Element) {
		if gap := e.Position - end; gap > 0 {
			kept = append(kept, w.spacerBefore(e, end, gap))
		}
		kept = append(kept, e)
		end = e.End()
	}
	for _, e := range w.elements[:len(w.elements)-1] {
		if e.Type == ElementHeader {
			keep(e)
		}
	}
	keep(last)

	survivors := make(map[*Element]bool, len(kept))
	for _, e := range kept {
		survivors[e] = true
	}
	for _, e := range w.elements {
		if !survivors[e] {
			w.recycler.Release(e)
		}
	}
	w.elements = kept
}

// spacerBefore returns the spacer that precedes e. Spacer coordinates are
// derived from the element that follows them so that every spacer of a pass
// has a distinct identity:
//
//	header            (-1, 0)
//	section header s  (s, -1)
//	item (s, i)       (s, i)
//	section footer s  (s, rows(s))
//	footer            (len(sections), 0)
//	trailing          (len(sections), 1)
func (w *walk) spacerBefore(e *Element, position, height float64) *Element {
	section, index := e.Section, e.Index
	switch e.Type {
	case ElementHeader:
		section, index = -1, 0
	case ElementSectionHeader:
		index = -1
	case ElementSectionFooter:
		index = w.layout.rowsIn(e.Section)
	case ElementFooter:
		section, index = len(w.layout.Sections), 0
	}
	return w.recycler.Get(ElementSpacer, section, index, position, height)
}
