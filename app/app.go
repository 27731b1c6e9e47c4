// Package app is the root Bubble Tea model of the biglist demo. It owns the
// generated collection, translates key presses into list commands and shows
// what the windowing engine is doing in a status line.
package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/miosa/osa-biglist/config"
	"github.com/miosa/osa-biglist/msg"
	"github.com/miosa/osa-biglist/style"
	"github.com/miosa/osa-biglist/ui/biglist"
	"github.com/miosa/osa-biglist/ui/list"
	"github.com/miosa/osa-biglist/ui/status"
)

// Model is the root model.
type Model struct {
	cfg    config.Config
	keys   KeyMap
	help   help.Model
	layout Layout

	list     list.Model
	renderer *rowRenderer

	// base is the configured layout; sections, columns and the measured
	// header height are applied on top of it.
	base       biglist.Layout
	sections   []int
	columns    int
	autoHeader bool
	animate    bool

	status status.Model

	width  int
	height int
}

// New builds the root model from cfg.
func New(cfg config.Config) (Model, error) {
	base, err := cfg.Layout()
	if err != nil {
		return Model{}, err
	}
	sections := append([]int(nil), cfg.Collection.Sections...)

	h := help.New()
	h.Styles.ShortKey = style.HelpKey
	h.Styles.ShortDesc = style.HelpDesc
	h.Styles.ShortSeparator = style.HelpSeparator
	h.Styles.FullKey = style.HelpKey
	h.Styles.FullDesc = style.HelpDesc
	h.Styles.FullSeparator = style.HelpSeparator

	m := Model{
		cfg:        cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		renderer:   newRowRenderer(cfg.Title, sections),
		base:       base,
		sections:   sections,
		columns:    max(cfg.View.Columns, 1),
		autoHeader: strings.TrimSpace(cfg.Heights.Header) == "",
		animate:    cfg.View.AnimationMS > 0,
		status:     status.New(),
	}
	m.list = list.New(m.layoutFor(0),
		list.WithRenderer(m.renderer),
		list.WithPlaceholder(cfg.View.Placeholder),
		list.WithStickyHeaders(cfg.View.StickyHeaders),
		list.WithScrollbar(cfg.View.Scrollbar),
		list.WithAnimation(time.Duration(cfg.View.AnimationMS)*time.Millisecond, nil),
		list.WithBatchSizeThreshold(cfg.Batching.BatchSizeThreshold),
		list.WithEndReachedThreshold(cfg.Batching.EndReachedThreshold),
		list.WithHideHeaderOnEmpty(cfg.View.HideHeaderOnEmpty),
		list.WithHideFooterOnEmpty(cfg.View.HideFooterOnEmpty),
		list.WithHideMarginalsOnEmpty(cfg.View.HideMarginalsOnEmpty),
	)
	return m, nil
}

// List returns the list component.
func (m Model) List() list.Model { return m.list }

// Sections returns the current row count of every section.
func (m Model) Sections() []int { return append([]int(nil), m.sections...) }

// Columns returns the current column count.
func (m Model) Columns() int { return m.columns }

// Layout returns the computed screen layout.
func (m Model) Layout() Layout { return m.layout }

// Notice returns the transient status message.
func (m Model) Notice() string { return m.status.Notice() }

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tea.RequestWindowSize() }
}

// -- Update -------------------------------------------------------------------

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := rawMsg.(type) {

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		cmd := m.recomputeLayout()
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(v)

	case tea.MouseWheelMsg, tea.MouseClickMsg, list.ScrollTickMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(v)
		return m, cmd

	// -- Engine --

	case msg.FrameRecomputed:
		m.status.SetFrame(v)
		log.Printf("biglist: pass %d block [%g, %g) batch %g, %d elements, height %g",
			v.Passes, v.Block.BlockStart, v.Block.BlockEnd, v.Block.BatchSize, v.Elements, v.Height)
		return m, nil

	case msg.ViewableItemsChanged:
		m.status.SetViewable(v.Viewable)
		return m, nil

	case msg.EndReached:
		return m.handleEndReached(v)

	case msg.ScrollSettled:
		log.Printf("biglist: scroll settled at %g", v.Offset)
		return m, nil

	case itemSelected:
		m.renderer.selectItem(v.Section, v.Index)
		m.list.InvalidateCache()
		m.status.SetNotice(fmt.Sprintf("selected %d.%d", v.Section, v.Index))
		return m, nil
	}
	return m, nil
}

// handleEndReached appends a section in infinite mode.
func (m Model) handleEndReached(v msg.EndReached) (tea.Model, tea.Cmd) {
	c := m.cfg.Collection
	if !c.Infinite {
		return m, nil
	}
	if c.MaxSections > 0 && len(m.sections) >= c.MaxSections {
		m.status.SetNotice("no more sections")
		return m, nil
	}
	m.sections = append(m.sections, c.PageSize)
	m.renderer.setSections(m.sections)
	m.status.SetNotice(fmt.Sprintf("loaded section %d", len(m.sections)-1))
	log.Printf("biglist: end reached (distance %g), appended section %d with %d rows",
		v.DistanceFromEnd, len(m.sections)-1, c.PageSize)
	cmd := m.list.SetLayout(m.layoutFor(m.list.ContentWidth()))
	return m, cmd
}

// -- Key handling -------------------------------------------------------------

func (m Model) handleKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches[tea.KeyPressMsg](k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		cmd = m.recomputeLayout()

	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollUp):
		cmd = m.list.ScrollUp(1)
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollDown):
		cmd = m.list.ScrollDown(1)
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageUp):
		cmd = m.list.PageUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageDown):
		cmd = m.list.PageDown()
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageUp):
		cmd = m.list.HalfPageUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageDown):
		cmd = m.list.HalfPageDown()

	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollTop):
		log.Printf("biglist: scroll to top (animated=%t)", m.animate)
		cmd = m.list.ScrollToTop(m.animate)
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollBottom):
		log.Printf("biglist: scroll to end (animated=%t)", m.animate)
		cmd = m.list.ScrollToEnd(m.animate)
	case key.Matches[tea.KeyPressMsg](k, m.keys.NextSection):
		if s, ok := m.adjacentSection(1); ok {
			log.Printf("biglist: scroll to section %d", s)
			cmd = m.list.ScrollToSection(s, m.animate)
		}
	case key.Matches[tea.KeyPressMsg](k, m.keys.PrevSection):
		if s, ok := m.adjacentSection(-1); ok {
			log.Printf("biglist: scroll to section %d", s)
			cmd = m.list.ScrollToSection(s, m.animate)
		}

	case key.Matches[tea.KeyPressMsg](k, m.keys.ToggleSticky):
		m.list.SetStickyHeaders(!m.list.StickyHeaders())
		m.status.SetNotice("sticky headers " + onOff(m.list.StickyHeaders()))
	case key.Matches[tea.KeyPressMsg](k, m.keys.ToggleScrollbar):
		m.list.SetScrollbar(!m.list.Scrollbar())
		m.status.SetNotice("scrollbar " + onOff(m.list.Scrollbar()))
		cmd = m.recomputeLayout()
	case key.Matches[tea.KeyPressMsg](k, m.keys.CycleColumns):
		m.columns = m.columns%3 + 1
		m.status.SetNotice(fmt.Sprintf("%d columns", m.columns))
		cmd = m.list.SetLayout(m.layoutFor(m.list.ContentWidth()))
	case key.Matches[tea.KeyPressMsg](k, m.keys.ToggleAnimation):
		m.animate = !m.animate
		m.status.SetNotice("animated jumps " + onOff(m.animate))
	case key.Matches[tea.KeyPressMsg](k, m.keys.CycleTheme):
		next := nextTheme(style.CurrentThemeName)
		style.SetTheme(next)
		m.renderer.reset()
		m.list.InvalidateCache()
		m.status.SetNotice("theme " + next)
	}
	return m, cmd
}

// adjacentSection finds the next non-empty section in direction dir. Going
// back from inside a section first returns to its own header.
func (m Model) adjacentSection(dir int) (int, bool) {
	cur := m.list.SectionAt()
	if dir < 0 && cur >= 0 && m.list.Offset() > m.list.List().OffsetOf(cur, 0) {
		return cur, true
	}
	for s := cur + dir; s >= 0 && s < len(m.sections); s += dir {
		if m.sections[s] > 0 {
			return s, true
		}
	}
	return 0, false
}

func nextTheme(current string) string {
	for i, name := range style.ThemeNames {
		if name == current {
			return style.ThemeNames[(i+1)%len(style.ThemeNames)]
		}
	}
	return style.ThemeNames[0]
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// -- Layout -------------------------------------------------------------------

// layoutFor returns the engine layout for the current collection. A title
// without a configured header height is measured at width.
func (m Model) layoutFor(width int) biglist.Layout {
	l := m.base
	l.Sections = append([]int(nil), m.sections...)
	l.NumColumns = m.columns
	if m.autoHeader {
		l.HeaderHeight = biglist.Fixed(float64(m.renderer.headerLines(width)))
	}
	return l
}

// recomputeLayout recalculates the screen layout and propagates the list
// dimensions. The header height depends on the list width, so the engine
// layout is refreshed too.
func (m *Model) recomputeLayout() tea.Cmd {
	m.layout = ComputeLayout(m.width, m.height, countLines(m.help.View(m.keys)))
	sizeCmd := m.list.SetSize(m.layout.ListWidth, m.layout.ListHeight)
	layoutCmd := m.list.SetLayout(m.layoutFor(m.list.ContentWidth()))
	return tea.Batch(sizeCmd, layoutCmd)
}

// -- View ---------------------------------------------------------------------

// View returns the tea.View for the current frame.
func (m Model) View() tea.View {
	v := tea.NewView(m.renderView())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) renderView() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	parts := []string{m.list.View(), m.statusView()}
	if m.layout.HelpHeight > 0 {
		parts = append(parts, m.help.View(m.keys))
	}
	return strings.Join(parts, "\n")
}

// statusView refreshes the position fields and renders the status line.
func (m Model) statusView() string {
	total := 0
	for _, rows := range m.sections {
		total += rows
	}
	st := m.status
	st.SetPosition(m.list.SectionAt(), total, m.progress())
	st.SetScrolling(m.list.Animating())
	return st.View(m.width)
}

// progress returns how far through the content the viewport is.
func (m Model) progress() float64 {
	if m.list.AtBottom() {
		return 1
	}
	span := m.status.Frame().Height - float64(m.list.Height())
	if span <= 0 {
		return 1
	}
	return m.list.Offset() / span
}
