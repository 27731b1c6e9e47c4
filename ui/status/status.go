// Package status provides the bottom status bar of the biglist demo. It
// shows where the viewport is and what the windowing engine materialized.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/osa-biglist/msg"
	"github.com/miosa/osa-biglist/style"
	"github.com/miosa/osa-biglist/ui/biglist"
)

// Model is the status bar state. Drive it via setter methods; it has no Update loop.
type Model struct {
	frame     msg.FrameRecomputed
	section   int
	totalRows int
	viewable  int
	first     biglist.ViewableItem
	hasFirst  bool
	progress  float64 // 0.0–1.0
	scrolling bool
	notice    string
}

// New returns a Model with no section under the viewport.
func New() Model {
	return Model{section: -1}
}

// SetFrame records the last recomputation.
func (m *Model) SetFrame(f msg.FrameRecomputed) {
	m.frame = f
}

// Frame returns the last recorded recomputation.
func (m Model) Frame() msg.FrameRecomputed { return m.frame }

// SetViewable records the items currently in the viewport.
func (m *Model) SetViewable(items []biglist.ViewableItem) {
	m.viewable = len(items)
	m.hasFirst = len(items) > 0
	if m.hasFirst {
		m.first = items[0]
	}
}

// SetPosition updates the section at the viewport top (-1 for none), the
// collection size and the scroll progress.
func (m *Model) SetPosition(section, totalRows int, progress float64) {
	m.section = section
	m.totalRows = totalRows
	m.progress = max(0, min(progress, 1))
}

// SetScrolling marks an animated scroll in progress.
func (m *Model) SetScrolling(s bool) {
	m.scrolling = s
}

// SetNotice sets the transient message shown at the end of the bar.
func (m *Model) SetNotice(s string) {
	m.notice = s
}

// Notice returns the transient message.
func (m Model) Notice() string { return m.notice }

// View renders the status line truncated to width.
//
//	§ 3  row 3.14  rows 18/10k  block 800–1600  el 42  pass 7  31%
func (m Model) View(width int) string {
	var fields []string
	if m.section >= 0 {
		fields = append(fields, field("§", fmt.Sprint(m.section)))
	}
	if m.hasFirst {
		fields = append(fields, field("row", fmt.Sprintf("%d.%d", m.first.Section, m.first.Index)))
	}
	fields = append(fields,
		field("rows", fmt.Sprintf("%d/%s", m.viewable, formatCount(m.totalRows))),
		field("block", fmt.Sprintf("%g–%g", m.frame.Block.BlockStart, m.frame.Block.BlockEnd)),
		field("el", fmt.Sprint(m.frame.Elements)),
		field("pass", fmt.Sprint(m.frame.Passes)),
		ProgressPill(m.progress),
	)
	if m.scrolling {
		fields = append(fields, style.StatusAlert.Render("scrolling"))
	}
	if m.notice != "" {
		fields = append(fields, style.StatusAlert.Render(m.notice))
	}

	line := style.StatusBar.Render(strings.Join(fields, "  "))
	if width > 0 && ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}

func field(k, v string) string {
	return style.StatusKey.Render(k+" ") + style.StatusValue.Render(v)
}

// formatCount returns a compact row count: 950 → "950", 10000 → "10k".
func formatCount(n int) string {
	if n >= 1000 && n%1000 == 0 {
		return fmt.Sprintf("%dk", n/1000)
	}
	if n >= 10000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}
