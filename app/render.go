package app

import (
	"fmt"
	"hash/fnv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/miosa/osa-biglist/style"
)

// itemSelected is sent when an item is clicked.
type itemSelected struct {
	Section int
	Index   int
}

var words = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel",
	"india", "juliet", "kilo", "lima", "mike", "november", "oscar", "papa",
	"quebec", "romeo", "sierra", "tango", "uniform", "victor", "whiskey",
	"xray", "yankee", "zulu",
}

// rowRenderer draws the generated demo collection. It implements
// list.Renderer, list.StickyRenderer and list.ClickHandler.
type rowRenderer struct {
	title    string
	sections []int

	// markdown caches the rendered title per width.
	markdown map[int]string

	selected    [2]int
	hasSelected bool
}

func newRowRenderer(title string, sections []int) *rowRenderer {
	return &rowRenderer{
		title:    title,
		sections: sections,
		markdown: make(map[int]string),
	}
}

// setSections replaces the section row counts used for titles.
func (r *rowRenderer) setSections(sections []int) { r.sections = sections }

// selectItem marks one item as selected.
func (r *rowRenderer) selectItem(section, index int) {
	r.selected = [2]int{section, index}
	r.hasSelected = true
}

// reset drops cached markdown, e.g. after a theme change.
func (r *rowRenderer) reset() { r.markdown = make(map[int]string) }

// headerLines returns the height of the rendered title at width.
func (r *rowRenderer) headerLines(width int) int {
	if strings.TrimSpace(r.title) == "" || width <= 0 {
		return 0
	}
	return countLines(r.RenderHeader(width))
}

func (r *rowRenderer) RenderHeader(width int) string {
	if out, ok := r.markdown[width]; ok {
		return out
	}
	out := renderMarkdown(r.title, width)
	r.markdown[width] = out
	return out
}

func (r *rowRenderer) RenderFooter(width int) string {
	return style.ListFooter.Width(width).Align(lipgloss.Center).Render("· end of list ·")
}

func (r *rowRenderer) RenderSectionHeader(section, width int) string {
	return style.SectionHeader.Width(width).Render(r.sectionTitle(section))
}

func (r *rowRenderer) RenderStickyHeader(section, width int) string {
	return style.StickyHeader.Width(width).Render(r.sectionTitle(section))
}

func (r *rowRenderer) RenderSectionFooter(section, width int) string {
	return style.SectionFooter.Render(strings.Repeat("─", max(width, 0)))
}

func (r *rowRenderer) RenderItem(section, index, width int) string {
	s := style.Item
	switch {
	case r.hasSelected && r.selected == [2]int{section, index}:
		s = style.ItemSelected
	case index%2 == 1:
		s = style.ItemAlt
	}
	label := style.ItemIndex.Render(fmt.Sprintf("%d.%d", section, index))
	first := label + " " + s.Render(word(section, index, 0)+" "+word(section, index, 1))
	detail := style.Faint.Render("  " + word(section, index, 2) + " " + word(section, index, 3))
	return first + "\n" + detail + "\n" + detail
}

func (r *rowRenderer) RenderEmpty(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		style.EmptyText.Render("nothing to show"))
}

func (r *rowRenderer) HandleClick(section, index int) tea.Cmd {
	return func() tea.Msg { return itemSelected{Section: section, Index: index} }
}

func (r *rowRenderer) sectionTitle(section int) string {
	rows := 0
	if section >= 0 && section < len(r.sections) {
		rows = r.sections[section]
	}
	return fmt.Sprintf(" § %d · %d rows", section, rows)
}

// word picks a deterministic word for an item so rows are stable across
// renders.
func word(section, index, n int) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d:%d:%d", section, index, n)
	return words[h.Sum32()%uint32(len(words))]
}

// renderMarkdown renders markdown text using glamour, falling back to plain
// text on error.
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// countLines returns the number of lines in a rendered string.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
