package biglist

import "math"

// Scroller is the scroll container a List drives for imperative scrolls.
type Scroller interface {
	ScrollTo(offset float64, animated bool)
}

// ScrollEvent describes a scroll position change reported by the container.
type ScrollEvent struct {
	Offset         float64
	ViewportHeight float64
	ContentHeight  float64
}

// ViewableItem is an item of the current frame together with whether its
// offset lies inside the viewport.
type ViewableItem struct {
	Section  int
	Index    int
	Key      Key
	Viewable bool
}

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

// Option is a functional option for NewList.
type Option func(*List)

// WithBatchSizeThreshold sets the batch size as a multiple of the container
// height. Values below 0.5 are raised to 0.5.
func WithBatchSizeThreshold(t float64) Option {
	return func(l *List) { l.threshold = t }
}

// WithScroller attaches the scroll container used by the ScrollTo* methods.
func WithScroller(s Scroller) Option {
	return func(l *List) { l.scroller = s }
}

// WithContentInset subtracts insets of the container from its measured
// height.
func WithContentInset(top, bottom float64) Option {
	return func(l *List) {
		l.contentInsetTop = top
		l.contentInsetBottom = bottom
	}
}

// WithEndReachedThreshold sets how close to the end, in viewport heights,
// OnEndReached fires.
func WithEndReachedThreshold(t float64) Option {
	return func(l *List) { l.endReachedThreshold = t }
}

// WithOnEndReached registers a callback fired once each time the scroll
// position comes within the end-reached threshold.
func WithOnEndReached(fn func(distanceFromEnd float64)) Option {
	return func(l *List) { l.onEndReached = fn }
}

// WithOnViewableItemsChanged registers a callback fired after a scroll when
// the set of viewable items changed.
func WithOnViewableItemsChanged(fn func(viewable, changed []ViewableItem)) Option {
	return func(l *List) { l.onViewableItemsChanged = fn }
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

// List keeps the windowing state of one scrollable collection: the layout,
// the container measurements, the current block and the last frame. It
// recomputes only when the scroll position crosses into a new block.
//
// A List is not safe for concurrent use; drive it from one event loop.
type List struct {
	layout    Layout
	keys      KeyCounter
	threshold float64
	scroller  Scroller

	contentInsetTop    float64
	contentInsetBottom float64

	containerHeight float64
	scrollTop       float64
	block           Block
	frame           Frame
	passes          int

	viewable               []ViewableItem
	onViewableItemsChanged func(viewable, changed []ViewableItem)

	endReached          bool
	endReachedThreshold float64
	onEndReached        func(distanceFromEnd float64)
}

// NewList constructs a List for layout. The list stays empty until the
// container is measured with OnLayout or OnScroll.
func NewList(layout Layout, opts ...Option) *List {
	l := &List{layout: layout, threshold: 1}
	for _, o := range opts {
		o(l)
	}
	l.recompute()
	return l
}

// SetScroller attaches or replaces the scroll container.
func (l *List) SetScroller(s Scroller) {
	l.scroller = s
}

// SetLayout replaces the layout and recomputes the frame for the current
// block, reusing the previous frame's keys.
func (l *List) SetLayout(layout Layout) {
	l.layout = layout
	l.recompute()
}

// SetBatchSizeThreshold changes the batch size and recomputes when the block
// changes as a result.
func (l *List) SetBatchSizeThreshold(t float64) bool {
	l.threshold = t
	return l.update()
}

// Layout returns the current layout.
func (l *List) Layout() Layout { return l.layout }

// Frame returns the last computed frame. The caller must not mutate it.
func (l *List) Frame() Frame { return l.frame }

// Block returns the block the current frame was computed for.
func (l *List) Block() Block { return l.block }

// ScrollTop returns the last clamped scroll offset.
func (l *List) ScrollTop() float64 { return l.scrollTop }

// ContainerHeight returns the measured viewport height minus content insets.
func (l *List) ContainerHeight() float64 { return l.containerHeight }

// Passes returns how many frames have been computed.
func (l *List) Passes() int { return l.passes }

// OnLayout records a new container height. It reports whether the frame was
// recomputed.
func (l *List) OnLayout(height float64) bool {
	l.containerHeight = height - l.contentInsetTop - l.contentInsetBottom
	return l.update()
}

// OnScroll records a scroll position change. It reports whether the frame
// was recomputed. Viewable-items and end-reached callbacks fire from here.
func (l *List) OnScroll(ev ScrollEvent) bool {
	l.containerHeight = ev.ViewportHeight - l.contentInsetTop - l.contentInsetBottom
	l.scrollTop = math.Max(0, math.Min(ev.Offset, ev.ContentHeight-l.containerHeight))

	changed := l.update()

	if l.onViewableItemsChanged != nil {
		l.notifyViewableItems()
	}

	distanceFromEnd := ev.ContentHeight - (ev.ViewportHeight + ev.Offset)
	if distanceFromEnd <= ev.ViewportHeight*l.endReachedThreshold {
		if !l.endReached {
			l.endReached = true
			if l.onEndReached != nil {
				l.onEndReached(distanceFromEnd)
			}
		}
	} else {
		l.endReached = false
	}
	return changed
}

// update recomputes when the block changed.
func (l *List) update() bool {
	next := ProcessBlock(l.containerHeight, l.scrollTop, l.threshold)
	if next == l.block {
		return false
	}
	l.block = next
	l.recompute()
	return true
}

func (l *List) recompute() {
	if !l.block.Measured() {
		l.frame = Frame{Height: l.layout.InsetTop + l.layout.InsetBottom}
		return
	}
	top, bottom := l.block.Window()
	l.frame = NewProcessor(l.layout, &l.keys).Process(top, bottom, l.frame.Elements)
	l.passes++
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// TotalSectionRowCounts returns the row count of every section.
func (l *List) TotalSectionRowCounts() []int {
	return l.layout.TotalSectionRowCounts()
}

// IsEmpty reports whether the collection has no items.
func (l *List) IsEmpty() bool {
	return l.layout.Empty()
}

// OffsetOf returns the scroll offset ScrollToIndex would scroll to.
func (l *List) OffsetOf(section, index int) float64 {
	return OffsetOf(l.layout, section, index)
}

// IsVisible reports whether the item's offset lies within the last known
// viewport.
func (l *List) IsVisible(section, index int) bool {
	position := ItemOffset(l.layout, section, index)
	return position >= l.scrollTop && position <= l.scrollTop+l.containerHeight
}

// ViewableItems returns the items of the current frame that are visible.
func (l *List) ViewableItems() []ViewableItem {
	var out []ViewableItem
	for _, e := range l.frame.Elements {
		if e.Type != ElementItem {
			continue
		}
		if l.IsVisible(e.Section, e.Index) {
			out = append(out, ViewableItem{Section: e.Section, Index: e.Index, Key: e.Key, Viewable: true})
		}
	}
	return out
}

func (l *List) notifyViewableItems() {
	prev := l.viewable
	l.viewable = l.ViewableItems()

	current := make(map[[2]int]bool, len(l.viewable))
	for _, it := range l.viewable {
		current[[2]int{it.Section, it.Index}] = true
	}
	var changed []ViewableItem
	for _, it := range prev {
		if current[[2]int{it.Section, it.Index}] {
			continue
		}
		it.Viewable = l.IsVisible(it.Section, it.Index)
		changed = append(changed, it)
	}
	if len(changed) > 0 || len(prev) != len(l.viewable) {
		l.onViewableItemsChanged(l.viewable, changed)
	}
}

// ---------------------------------------------------------------------------
// Imperative scrolling
// ---------------------------------------------------------------------------

// ScrollToIndex scrolls so that the item lands just below its section
// header. It returns false when no scroll container is attached.
func (l *List) ScrollToIndex(section, index int, animated bool) bool {
	return l.ScrollToOffset(l.OffsetOf(section, index), animated)
}

// ScrollToLocation is ScrollToIndex with section-list argument order.
func (l *List) ScrollToLocation(itemIndex, sectionIndex int, animated bool) bool {
	return l.ScrollToIndex(sectionIndex, itemIndex, animated)
}

// ScrollToSection scrolls to the header of section.
func (l *List) ScrollToSection(section int, animated bool) bool {
	return l.ScrollToIndex(section, 0, animated)
}

// ScrollToOffset scrolls to an absolute offset.
func (l *List) ScrollToOffset(offset float64, animated bool) bool {
	if l.scroller == nil {
		return false
	}
	l.scroller.ScrollTo(offset, animated)
	return true
}

// ScrollToTop scrolls to the start of the content.
func (l *List) ScrollToTop(animated bool) bool {
	return l.ScrollToOffset(0, animated)
}

// ScrollToEnd scrolls past the last item of the last section.
func (l *List) ScrollToEnd(animated bool) bool {
	last := len(l.layout.Sections) - 1
	if last < 0 {
		return l.ScrollToTop(animated)
	}
	return l.ScrollToIndex(last, l.layout.Sections[last], animated)
}
