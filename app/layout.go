package app

const (
	// Minimum list pane height; enforced even if the status and help lines
	// are clipped.
	listMinHeight = 3

	// Narrow terminals drop the help bar.
	helpMinWidth = 40
)

// Layout holds computed dimensions for the current frame.
type Layout struct {
	TermWidth    int
	TermHeight   int
	StatusHeight int
	HelpHeight   int
	ListWidth    int
	ListHeight   int
}

// ComputeLayout calculates the layout dimensions based on terminal size.
//
// The status line is always one line. The help area takes helpLines lines
// unless the terminal is narrower than helpMinWidth. The remainder goes to
// the list pane.
func ComputeLayout(termW, termH, helpLines int) Layout {
	l := Layout{
		TermWidth:    termW,
		TermHeight:   termH,
		StatusHeight: 1,
		ListWidth:    max(termW, 0),
	}
	if termW >= helpMinWidth && helpLines > 0 {
		l.HelpHeight = helpLines
	}

	l.ListHeight = termH - l.StatusHeight - l.HelpHeight
	if l.ListHeight < listMinHeight {
		l.ListHeight = min(listMinHeight, max(termH, 0))
	}
	return l
}
