// Package list renders a biglist.List as a Bubble Tea component. It is the
// retained-mode half of the windowing engine: the engine decides which
// elements exist, this package draws them.
//
// Key properties:
//   - Only the elements materialized by the engine are rendered; spacers are
//     drawn as blank or placeholder lines of the same height.
//   - Rendered content is cached per stable element key and reused while the
//     key still carries the same identity at the same width.
//   - Items sharing a visual row are laid out side by side in equal columns.
//   - The nearest section header can be pinned to the top of the viewport and
//     is pushed up by the next one.
//   - Imperative scrolls requested through the engine are either applied at
//     once or animated with a tween advanced by tick messages.
//   - Engine callbacks (recomputation, viewable items, end reached) surface as
//     msg types returned from Update and the scroll methods.
package list

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/miosa/osa-biglist/msg"
	"github.com/miosa/osa-biglist/style"
	"github.com/miosa/osa-biglist/ui/biglist"
)

// ---------------------------------------------------------------------------
// Public interfaces
// ---------------------------------------------------------------------------

// Renderer supplies the content of every element kind. Each method receives
// the width it must fill; output taller or wider than the element is clipped
// and shorter output is padded.
type Renderer interface {
	RenderHeader(width int) string
	RenderFooter(width int) string
	RenderSectionHeader(section, width int) string
	RenderSectionFooter(section, width int) string
	RenderItem(section, index, width int) string

	// RenderEmpty fills the space between header and footer when the
	// collection has no items.
	RenderEmpty(width, height int) string
}

// StickyRenderer renderers draw the pinned section header differently from
// the in-flow one.
type StickyRenderer interface {
	RenderStickyHeader(section, width int) string
}

// ClickHandler renderers receive clicks on items.
type ClickHandler interface {
	HandleClick(section, index int) tea.Cmd
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// ScrollTickMsg advances an animated scroll. ID and Seq ensure that only the
// model and animation that scheduled the tick respond to it.
type ScrollTickMsg struct {
	ID  int64
	Seq int
}

const (
	fps           = 60
	frameDuration = time.Second / fps

	defaultAnimationDuration = 200 * time.Millisecond
	wheelLines               = 3
)

// idCounter gives each Model a unique ID so ScrollTickMsg events don't
// cross-talk between lists.
var idCounter atomic.Int64

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

// Option is a functional option for New.
type Option func(*Model)

// WithWidth sets the initial viewport width.
func WithWidth(w int) Option {
	return func(m *Model) { m.width = w }
}

// WithHeight sets the initial viewport height (number of terminal lines
// visible at once).
func WithHeight(h int) Option {
	return func(m *Model) { m.height = h }
}

// WithRenderer sets the content renderer.
func WithRenderer(r Renderer) Option {
	return func(m *Model) { m.renderer = r }
}

// WithPlaceholder sets the pattern spacer lines are filled with. An empty
// pattern leaves spacers blank.
func WithPlaceholder(p string) Option {
	return func(m *Model) { m.placeholder = p }
}

// WithStickyHeaders pins the current section header to the top.
func WithStickyHeaders(s bool) Option {
	return func(m *Model) { m.sticky = s }
}

// WithScrollbar reserves the rightmost column for a scrollbar.
func WithScrollbar(s bool) Option {
	return func(m *Model) { m.scrollbar = s }
}

// WithAnimation sets the duration and easing of animated scrolls. A
// non-positive duration makes every scroll immediate; a nil easing function
// selects ease.OutCubic.
func WithAnimation(d time.Duration, fn ease.TweenFunc) Option {
	return func(m *Model) {
		m.duration = d
		if fn != nil {
			m.easing = fn
		}
	}
}

// WithBatchSizeThreshold forwards the batch size threshold to the engine.
func WithBatchSizeThreshold(t float64) Option {
	return func(m *Model) { m.listOpts = append(m.listOpts, biglist.WithBatchSizeThreshold(t)) }
}

// WithEndReachedThreshold forwards the end-reached threshold to the engine.
func WithEndReachedThreshold(t float64) Option {
	return func(m *Model) { m.listOpts = append(m.listOpts, biglist.WithEndReachedThreshold(t)) }
}

// WithContentInset forwards container insets to the engine.
func WithContentInset(top, bottom float64) Option {
	return func(m *Model) { m.listOpts = append(m.listOpts, biglist.WithContentInset(top, bottom)) }
}

// WithHideHeaderOnEmpty omits the list header while the collection is empty.
func WithHideHeaderOnEmpty(h bool) Option {
	return func(m *Model) { m.hideHeaderOnEmpty = h }
}

// WithHideFooterOnEmpty omits the list footer while the collection is empty.
func WithHideFooterOnEmpty(h bool) Option {
	return func(m *Model) { m.hideFooterOnEmpty = h }
}

// WithHideMarginalsOnEmpty omits both header and footer while the collection
// is empty.
func WithHideMarginalsOnEmpty(h bool) Option {
	return func(m *Model) {
		m.hideHeaderOnEmpty = h
		m.hideFooterOnEmpty = h
	}
}

// ---------------------------------------------------------------------------
// Cache
// ---------------------------------------------------------------------------

type cachedRender struct {
	id    biglist.Identity
	width int
	lines []string
}

// ---------------------------------------------------------------------------
// Engine bridge
// ---------------------------------------------------------------------------

type scrollRequest struct {
	offset   float64
	animated bool
}

// bridge is the engine's Scroller and callback sink. The engine calls into
// it synchronously; the model drains it after every operation and turns the
// contents into scrolls and commands.
type bridge struct {
	requests []scrollRequest
	events   []tea.Msg
}

func (b *bridge) ScrollTo(offset float64, animated bool) {
	b.requests = append(b.requests, scrollRequest{offset: offset, animated: animated})
}

func (b *bridge) emit(m tea.Msg) {
	b.events = append(b.events, m)
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type scrollAnim struct {
	tween  *gween.Tween
	target float64
}

// Model is a windowed, sectioned, scrollable list.
// The zero value is not usable; construct with New.
type Model struct {
	id       int64
	list     *biglist.List
	renderer Renderer
	listOpts []biglist.Option

	width  int
	height int

	// offset is the scroll position in content lines.
	offset float64

	placeholder       string
	sticky            bool
	scrollbar         bool
	hideHeaderOnEmpty bool
	hideFooterOnEmpty bool

	duration time.Duration
	easing   ease.TweenFunc
	anim     *scrollAnim
	animSeq  int

	bridge *bridge
	bar    ScrollbarModel

	// cache stores rendered lines keyed by element key.
	cache map[biglist.Key]cachedRender
}

// New constructs a Model for layout with the supplied options.
func New(layout biglist.Layout, opts ...Option) Model {
	m := Model{
		id:       idCounter.Add(1),
		duration: defaultAnimationDuration,
		easing:   ease.OutCubic,
		bridge:   &bridge{},
		cache:    make(map[biglist.Key]cachedRender),
	}
	for _, o := range opts {
		o(&m)
	}

	b := m.bridge
	listOpts := []biglist.Option{
		biglist.WithScroller(b),
		biglist.WithOnViewableItemsChanged(func(viewable, changed []biglist.ViewableItem) {
			b.emit(msg.ViewableItemsChanged{Viewable: viewable, Changed: changed})
		}),
		biglist.WithOnEndReached(func(distance float64) {
			b.emit(msg.EndReached{DistanceFromEnd: distance})
		}),
	}
	m.list = biglist.NewList(layout, append(listOpts, m.listOpts...)...)
	if m.height > 0 {
		m.list.OnLayout(float64(m.height))
		m.setOffset(0)
		m.bridge.events = nil
	}
	return m
}

// List returns the underlying engine.
func (m Model) List() *biglist.List { return m.list }

// Offset returns the scroll position in content lines.
func (m Model) Offset() float64 { return m.offset }

// Width returns the viewport width.
func (m Model) Width() int { return m.width }

// Height returns the viewport height.
func (m Model) Height() int { return m.height }

// Animating reports whether an animated scroll is in progress.
func (m Model) Animating() bool { return m.anim != nil }

// StickyHeaders reports whether section headers are pinned.
func (m Model) StickyHeaders() bool { return m.sticky }

// Scrollbar reports whether the scrollbar column is reserved.
func (m Model) Scrollbar() bool { return m.scrollbar }

// ContentWidth returns the width renderers are asked to fill, which excludes
// the scrollbar column.
func (m Model) ContentWidth() int { return m.contentWidth() }

// AtTop reports whether the viewport shows the start of the content.
func (m Model) AtTop() bool { return m.offset <= 0 }

// AtBottom reports whether the viewport shows the end of the content.
func (m Model) AtBottom() bool { return m.offset >= m.maxOffset() }

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// SetSize updates the viewport dimensions. The cache is invalidated when
// width changes because every element must be re-rendered at the new width.
func (m *Model) SetSize(w, h int) tea.Cmd {
	if w != m.width {
		m.cache = make(map[biglist.Key]cachedRender)
	}
	m.width = w
	m.height = h
	if m.list.OnLayout(float64(h)) {
		m.recomputed()
	}
	m.setOffset(m.offset)
	return m.flush()
}

// SetLayout replaces the collection shape. Element keys carry over, so
// elements that keep their identity are not re-rendered.
func (m *Model) SetLayout(layout biglist.Layout) tea.Cmd {
	m.list.SetLayout(layout)
	m.recomputed()
	m.setOffset(m.offset)
	return m.flush()
}

// SetRenderer replaces the renderer and drops every cached render.
func (m *Model) SetRenderer(r Renderer) {
	m.renderer = r
	m.InvalidateCache()
}

// SetStickyHeaders toggles pinned section headers.
func (m *Model) SetStickyHeaders(s bool) { m.sticky = s }

// SetScrollbar toggles the scrollbar column.
func (m *Model) SetScrollbar(s bool) {
	if s != m.scrollbar {
		m.cache = make(map[biglist.Key]cachedRender)
	}
	m.scrollbar = s
}

// SetPlaceholder changes the spacer fill pattern.
func (m *Model) SetPlaceholder(p string) { m.placeholder = p }

// InvalidateCache forces all cached renders to be discarded.
func (m *Model) InvalidateCache() {
	m.cache = make(map[biglist.Key]cachedRender)
}

// ---------------------------------------------------------------------------
// Scroll
// ---------------------------------------------------------------------------

// ScrollDown scrolls the content down by lines lines. It cancels any
// animated scroll in progress.
func (m *Model) ScrollDown(lines int) tea.Cmd {
	return m.ScrollBy(float64(lines))
}

// ScrollUp scrolls the content up by lines lines.
func (m *Model) ScrollUp(lines int) tea.Cmd {
	return m.ScrollBy(-float64(lines))
}

// ScrollBy moves the viewport by delta lines.
func (m *Model) ScrollBy(delta float64) tea.Cmd {
	m.anim = nil
	m.setOffset(m.offset + delta)
	return m.flush()
}

// PageDown scrolls down by one full viewport height.
func (m *Model) PageDown() tea.Cmd { return m.ScrollDown(m.height) }

// PageUp scrolls up by one full viewport height.
func (m *Model) PageUp() tea.Cmd { return m.ScrollUp(m.height) }

// HalfPageDown scrolls down by half the viewport height.
func (m *Model) HalfPageDown() tea.Cmd { return m.ScrollDown(m.height / 2) }

// HalfPageUp scrolls up by half the viewport height.
func (m *Model) HalfPageUp() tea.Cmd { return m.ScrollUp(m.height / 2) }

// ScrollToIndex scrolls the item just below its section header.
func (m *Model) ScrollToIndex(section, index int, animated bool) tea.Cmd {
	m.list.ScrollToIndex(section, index, animated)
	return m.flush()
}

// ScrollToLocation is ScrollToIndex with section-list argument order.
func (m *Model) ScrollToLocation(itemIndex, sectionIndex int, animated bool) tea.Cmd {
	m.list.ScrollToLocation(itemIndex, sectionIndex, animated)
	return m.flush()
}

// ScrollToSection scrolls to the header of section.
func (m *Model) ScrollToSection(section int, animated bool) tea.Cmd {
	m.list.ScrollToSection(section, animated)
	return m.flush()
}

// ScrollToOffset scrolls to an absolute content offset.
func (m *Model) ScrollToOffset(offset float64, animated bool) tea.Cmd {
	m.list.ScrollToOffset(offset, animated)
	return m.flush()
}

// ScrollToTop scrolls to the start of the content.
func (m *Model) ScrollToTop(animated bool) tea.Cmd {
	m.list.ScrollToTop(animated)
	return m.flush()
}

// ScrollToEnd scrolls to the end of the content.
func (m *Model) ScrollToEnd(animated bool) tea.Cmd {
	m.list.ScrollToEnd(animated)
	return m.flush()
}

// SectionAt returns the section whose header or rows cover the top line of
// the viewport, or -1 when the viewport starts in the list header.
func (m Model) SectionAt() int {
	section := -1
	for _, e := range m.list.Frame().Elements {
		if e.Type == biglist.ElementSpacer || e.Type == biglist.ElementHeader || e.Type == biglist.ElementFooter {
			continue
		}
		if e.Position > m.offset {
			break
		}
		section = e.Section
	}
	return section
}

// ---------------------------------------------------------------------------
// Update (bubbletea)
// ---------------------------------------------------------------------------

// Update handles mouse events and animation ticks. Callers forward whichever
// tea.Msg events they want the list to respond to.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		switch msg.Button {
		case tea.MouseWheelUp:
			cmd = m.ScrollUp(wheelLines)
		case tea.MouseWheelDown:
			cmd = m.ScrollDown(wheelLines)
		}
		return m, cmd
	case tea.MouseClickMsg:
		h, ok := m.renderer.(ClickHandler)
		if !ok {
			return m, nil
		}
		if section, index, found := m.ItemAt(msg.X, msg.Y); found {
			return m, h.HandleClick(section, index)
		}
	case ScrollTickMsg:
		if msg.ID != m.id || msg.Seq != m.animSeq || m.anim == nil {
			return m, nil
		}
		cmd := m.advance()
		return m, cmd
	}
	return m, nil
}

// ItemAt resolves a viewport cell to the item drawn there.
func (m Model) ItemAt(x, y int) (section, index int, ok bool) {
	if y < 0 || y >= m.height || x < 0 || x >= m.contentWidth() {
		return 0, 0, false
	}
	line := float64(lineOf(m.offset) + y)
	cols := m.list.Layout().Columns()
	colWidth := max(1, m.contentWidth()/cols)
	column := min(cols-1, x/colWidth)
	for _, e := range m.list.Frame().Elements {
		if e.Type != biglist.ElementItem || line < e.Position || line >= e.End() {
			continue
		}
		if e.Index%cols == column {
			return e.Section, e.Index, true
		}
	}
	return 0, 0, false
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View renders the viewport. Elements outside of it are skipped entirely.
func (m Model) View() string {
	if m.height <= 0 || m.width <= 0 || m.renderer == nil {
		return ""
	}
	w := m.contentWidth()

	var lines []string
	if m.list.IsEmpty() {
		lines = m.viewEmpty(w)
	} else {
		lines = m.viewWindow(w)
	}
	body := strings.Join(lines, "\n")

	if m.scrollbar {
		if bar := m.scrollbarView(); bar != "" {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
		}
	}
	return body
}

func (m Model) viewWindow(w int) []string {
	top := lineOf(m.offset)
	out := make([]string, m.height)
	elements := m.list.Frame().Elements

	for i := 0; i < len(elements); {
		e := elements[i]
		next := i + 1
		if e.Type == biglist.ElementItem {
			for next < len(elements) && elements[next].Type == biglist.ElementItem &&
				elements[next].Position == e.Position {
				next++
			}
		}
		start, h := lineOf(e.Position), lineOf(e.Height)
		if h > 0 && start+h > top && start < top+m.height {
			var block []string
			if e.Type == biglist.ElementItem {
				block = m.renderRow(elements[i:next], w, h)
			} else {
				block = m.renderElement(e, w, h)
			}
			paint(out, block, start-top)
		}
		i = next
	}

	if m.sticky {
		if header, shift := biglist.StickyHeader(elements, m.offset); header != nil && shift > 0 {
			h := lineOf(header.Height)
			paint(out, m.renderSticky(header, w, h), lineOf(header.Position+shift)-top)
		}
	}

	blank := strings.Repeat(" ", w)
	for i := range out {
		if out[i] == "" {
			out[i] = blank
		}
	}
	return out
}

// viewEmpty shows the header, the renderer's empty view and the footer.
func (m Model) viewEmpty(w int) []string {
	layout := m.list.Layout()
	var head, foot []string
	if !m.hideHeaderOnEmpty {
		head = fitLines(m.renderer.RenderHeader(w), w, lineOf(layout.HeaderHeight.Resolve(0, 0)))
	}
	if !m.hideFooterOnEmpty {
		foot = fitLines(m.renderer.RenderFooter(w), w, lineOf(layout.FooterHeight.Resolve(0, 0)))
	}
	remaining := max(0, m.height-len(head)-len(foot))
	body := fitLines(m.renderer.RenderEmpty(w, remaining), w, remaining)

	out := make([]string, 0, m.height)
	out = append(out, head...)
	out = append(out, body...)
	out = append(out, foot...)
	if len(out) > m.height {
		out = out[:m.height]
	}
	return out
}

func (m Model) scrollbarView() string {
	frame := m.list.Frame()
	m.bar.SetDimensions(m.height, lineOf(frame.Height), lineOf(m.offset))
	top, bottom := materialized(frame.Elements)
	m.bar.SetWindow(lineOf(top), lineOf(bottom))
	return m.bar.View()
}

// materialized returns the content range covered by non-spacer elements.
func materialized(elements []*biglist.Element) (top, bottom float64) {
	top = math.Inf(1)
	for _, e := range elements {
		if e.Type == biglist.ElementSpacer {
			continue
		}
		top = math.Min(top, e.Position)
		bottom = math.Max(bottom, e.End())
	}
	if math.IsInf(top, 1) {
		return 0, 0
	}
	return top, bottom
}

// ---------------------------------------------------------------------------
// Element rendering
// ---------------------------------------------------------------------------

// renderElement returns exactly h lines of width w for a non-item element.
func (m Model) renderElement(e *biglist.Element, w, h int) []string {
	if e.Type == biglist.ElementSpacer {
		return m.spacerLines(w, h)
	}
	return m.cached(e, w, h, func() string {
		switch e.Type {
		case biglist.ElementHeader:
			return m.renderer.RenderHeader(w)
		case biglist.ElementFooter:
			return m.renderer.RenderFooter(w)
		case biglist.ElementSectionHeader:
			return m.renderer.RenderSectionHeader(e.Section, w)
		case biglist.ElementSectionFooter:
			return m.renderer.RenderSectionFooter(e.Section, w)
		default:
			return ""
		}
	})
}

// renderRow lays the items of one visual row out in equal columns.
func (m Model) renderRow(row []*biglist.Element, w, h int) []string {
	cols := m.list.Layout().Columns()
	if cols == 1 {
		e := row[0]
		return m.cached(e, w, h, func() string {
			return m.renderer.RenderItem(e.Section, e.Index, w)
		})
	}

	colWidth := w / cols
	blocks := make([]string, cols)
	for c := range cols {
		cw := colWidth
		if c == cols-1 {
			cw = w - colWidth*(cols-1)
		}
		if c >= len(row) {
			blocks[c] = strings.Join(fitLines("", cw, h), "\n")
			continue
		}
		e := row[c]
		blocks[c] = strings.Join(m.cached(e, cw, h, func() string {
			return m.renderer.RenderItem(e.Section, e.Index, cw)
		}), "\n")
	}
	return strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), "\n")
}

func (m Model) renderSticky(e *biglist.Element, w, h int) []string {
	if sr, ok := m.renderer.(StickyRenderer); ok {
		return fitLines(sr.RenderStickyHeader(e.Section, w), w, h)
	}
	return fitLines(style.StickyHeader.Render(m.renderer.RenderSectionHeader(e.Section, w)), w, h)
}

// cached returns the render for e, reusing the entry stored under its key
// when the key still belongs to the same identity at the same width.
func (m Model) cached(e *biglist.Element, w, h int, render func() string) []string {
	id := e.Identity()
	if cr, ok := m.cache[e.Key]; ok && cr.id == id && cr.width == w && len(cr.lines) == h {
		return cr.lines
	}
	lines := fitLines(render(), w, h)
	m.cache[e.Key] = cachedRender{id: id, width: w, lines: lines}
	return lines
}

func (m Model) spacerLines(w, h int) []string {
	out := make([]string, h)
	line := strings.Repeat(" ", w)
	if m.placeholder != "" {
		pattern := strings.Repeat(m.placeholder, w/max(1, ansi.StringWidth(m.placeholder))+1)
		line = style.Placeholder.Render(fitWidth(ansi.Truncate(pattern, w, ""), w))
	}
	for i := range out {
		out[i] = line
	}
	return out
}

// ---------------------------------------------------------------------------
// Internal scroll helpers
// ---------------------------------------------------------------------------

func (m Model) contentWidth() int {
	if m.scrollbar && m.width > 1 {
		return m.width - 1
	}
	return m.width
}

func (m Model) contentHeight() float64 {
	if m.list.Block().Measured() {
		return m.list.Frame().Height
	}
	return biglist.ContentHeight(m.list.Layout())
}

func (m Model) maxOffset() float64 {
	return math.Max(0, m.contentHeight()-float64(m.height))
}

// setOffset clamps and applies a scroll position and reports it to the
// engine.
func (m *Model) setOffset(offset float64) {
	m.offset = math.Max(0, math.Min(offset, m.maxOffset()))
	if m.height <= 0 {
		return
	}
	ev := biglist.ScrollEvent{
		Offset:         m.offset,
		ViewportHeight: float64(m.height),
		ContentHeight:  m.contentHeight(),
	}
	if m.list.OnScroll(ev) {
		m.recomputed()
	}
}

// recomputed drops cache entries of keys that left the frame and reports
// the new frame.
func (m *Model) recomputed() {
	frame := m.list.Frame()
	live := make(map[biglist.Key]bool, len(frame.Elements))
	for _, e := range frame.Elements {
		live[e.Key] = true
	}
	for k := range m.cache {
		if !live[k] {
			delete(m.cache, k)
		}
	}
	m.bridge.emit(msg.FrameRecomputed{
		Block:    m.list.Block(),
		Passes:   m.list.Passes(),
		Elements: len(frame.Elements),
		Height:   frame.Height,
	})
}

// flush applies the scroll requests the engine issued and returns the
// collected engine events as commands.
func (m *Model) flush() tea.Cmd {
	var cmds []tea.Cmd
	for len(m.bridge.requests) > 0 {
		reqs := m.bridge.requests
		m.bridge.requests = nil
		for _, r := range reqs {
			cmds = append(cmds, m.scrollTo(r.offset, r.animated))
		}
	}
	for _, ev := range m.bridge.events {
		cmds = append(cmds, func() tea.Msg { return ev })
	}
	m.bridge.events = nil
	return tea.Batch(cmds...)
}

// scrollTo jumps to offset or starts a tween towards it.
func (m *Model) scrollTo(offset float64, animated bool) tea.Cmd {
	if !animated || m.duration <= 0 || m.height <= 0 {
		m.anim = nil
		m.setOffset(offset)
		return nil
	}
	target := math.Max(0, math.Min(offset, m.maxOffset()))
	m.animSeq++
	m.anim = &scrollAnim{
		tween:  gween.New(float32(m.offset), float32(target), float32(m.duration.Seconds()), m.easing),
		target: target,
	}
	return m.tick()
}

// advance steps the running animation by one frame.
func (m *Model) advance() tea.Cmd {
	val, done := m.anim.tween.Update(float32(frameDuration.Seconds()))
	if done {
		m.setOffset(m.anim.target)
		m.anim = nil
		m.bridge.emit(msg.ScrollSettled{Offset: m.offset})
		return m.flush()
	}
	m.setOffset(float64(val))
	return tea.Batch(m.flush(), m.tick())
}

func (m Model) tick() tea.Cmd {
	id, seq := m.id, m.animSeq
	return tea.Tick(frameDuration, func(time.Time) tea.Msg {
		return ScrollTickMsg{ID: id, Seq: seq}
	})
}

// ---------------------------------------------------------------------------
// String helpers
// ---------------------------------------------------------------------------

// lineOf converts an engine offset to a terminal line.
func lineOf(v float64) int {
	return int(math.Round(v))
}

// paint copies block into out starting at row, clipping to out.
func paint(out, block []string, row int) {
	for i, line := range block {
		if r := row + i; r >= 0 && r < len(out) {
			out[r] = line
		}
	}
}

// fitLines clips or pads content to exactly h lines of width w.
func fitLines(content string, w, h int) []string {
	if h <= 0 {
		return nil
	}
	src := strings.Split(content, "\n")
	out := make([]string, h)
	for i := range out {
		var line string
		if i < len(src) {
			line = src[i]
		}
		out[i] = fitWidth(line, w)
	}
	return out
}

// fitWidth truncates or pads a line to exactly w cells.
func fitWidth(line string, w int) string {
	if ansi.StringWidth(line) > w {
		line = ansi.Truncate(line, w, "…")
	}
	if pad := w - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}
