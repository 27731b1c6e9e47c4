package status

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/osa-biglist/msg"
	"github.com/miosa/osa-biglist/ui/biglist"
)

func TestView_ShowsFrameAndPosition(t *testing.T) {
	m := New()
	m.SetFrame(msg.FrameRecomputed{
		Block:    biglist.Block{BatchSize: 10, BlockStart: 20, BlockEnd: 30},
		Passes:   4,
		Elements: 17,
	})
	m.SetViewable([]biglist.ViewableItem{{Section: 2, Index: 7}, {Section: 2, Index: 8}})
	m.SetPosition(2, 10000, 0.5)

	got := ansi.Strip(m.View(0))
	for _, want := range []string{"§ 2", "row 2.7", "rows 2/10k", "block 20–30", "el 17", "pass 4", "50%"} {
		if !strings.Contains(got, want) {
			t.Errorf("view %q missing %q", got, want)
		}
	}
}

func TestView_NoSectionAtTop(t *testing.T) {
	got := ansi.Strip(New().View(0))
	if strings.Contains(got, "§") {
		t.Errorf("view %q shows a section before any was set", got)
	}
	if !strings.Contains(got, "top") {
		t.Errorf("view %q should read top at zero progress", got)
	}
}

func TestView_NoticeAndScrolling(t *testing.T) {
	m := New()
	m.SetScrolling(true)
	m.SetNotice("loaded section 3")
	got := ansi.Strip(m.View(0))
	if !strings.Contains(got, "scrolling") || !strings.HasSuffix(got, "loaded section 3") {
		t.Errorf("view = %q", got)
	}
	if m.Notice() != "loaded section 3" {
		t.Errorf("notice = %q", m.Notice())
	}
}

func TestView_TruncatesToWidth(t *testing.T) {
	m := New()
	m.SetNotice(strings.Repeat("x", 100))
	if w := ansi.StringWidth(m.View(30)); w > 30 {
		t.Errorf("width = %d, want <= 30", w)
	}
}

func TestSetPosition_ClampsProgress(t *testing.T) {
	m := New()
	m.SetPosition(0, 5, 3)
	if got := ansi.Strip(m.View(0)); !strings.Contains(got, "end") {
		t.Errorf("view %q should read end", got)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1k"},
		{1500, "1500"},
		{10000, "10k"},
		{12345, "12.3k"},
	}
	for _, tt := range tests {
		if got := formatCount(tt.n); got != tt.want {
			t.Errorf("formatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
