package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors, initialized to dark theme defaults. Updated via SetTheme().
var (
	Primary   color.Color = lipgloss.Color("#7C3AED")
	Secondary color.Color = lipgloss.Color("#06B6D4")
	Success   color.Color = lipgloss.Color("#22C55E")
	Warning   color.Color = lipgloss.Color("#F59E0B")
	Error     color.Color = lipgloss.Color("#EF4444")
	Muted     color.Color = lipgloss.Color("#6B7280")
	Dim       color.Color = lipgloss.Color("#374151")
	Border    color.Color = lipgloss.Color("#4B5563")

	SectionBgColor   color.Color = lipgloss.Color("#1F2937")
	StickyBgColor    color.Color = lipgloss.Color("#111827")
	SelectionBgColor color.Color = lipgloss.Color("#312E81")
)

// Base styles, rebuilt when the theme changes via rebuildStyles().
var (
	Faint lipgloss.Style

	// -------------------------------------------------------------------------
	// List chrome
	// -------------------------------------------------------------------------

	ListHeader    lipgloss.Style
	ListFooter    lipgloss.Style
	SectionHeader lipgloss.Style
	SectionFooter lipgloss.Style
	StickyHeader  lipgloss.Style // section header while pinned to the top
	Item          lipgloss.Style
	ItemAlt       lipgloss.Style // odd rows
	ItemSelected  lipgloss.Style
	ItemIndex     lipgloss.Style
	Placeholder   lipgloss.Style // spacer fill
	EmptyText     lipgloss.Style

	// -------------------------------------------------------------------------
	// Scrollbar
	// -------------------------------------------------------------------------

	ScrollbarThumb  lipgloss.Style
	ScrollbarTrack  lipgloss.Style
	ScrollbarWindow lipgloss.Style // track rows whose content is materialized

	// -------------------------------------------------------------------------
	// Status bar / help
	// -------------------------------------------------------------------------

	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusAlert lipgloss.Style

	HelpKey       lipgloss.Style // key binding display
	HelpDesc      lipgloss.Style // key description
	HelpSeparator lipgloss.Style
)

func init() {
	rebuildStyles()
}

// SetTheme applies a named theme, updating all color vars and rebuilding styles.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentThemeName = name
	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border
	SectionBgColor = t.SectionBg
	StickyBgColor = t.StickyBg
	SelectionBgColor = t.SelectionBg
	rebuildStyles()
	return true
}

// IsDark returns whether the current theme is dark.
func IsDark() bool {
	return CurrentThemeName != "light"
}

func rebuildStyles() {
	Faint = lipgloss.NewStyle().Foreground(Muted)

	ListHeader = lipgloss.NewStyle().Foreground(Primary)
	ListFooter = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	SectionHeader = lipgloss.NewStyle().
		Foreground(Secondary).
		Background(SectionBgColor).
		Bold(true)
	SectionFooter = lipgloss.NewStyle().Foreground(Border)
	StickyHeader = lipgloss.NewStyle().
		Foreground(Secondary).
		Background(StickyBgColor).
		Bold(true).
		Underline(true)
	Item = lipgloss.NewStyle()
	ItemAlt = lipgloss.NewStyle().Foreground(Muted)
	ItemSelected = lipgloss.NewStyle().Background(SelectionBgColor).Bold(true)
	ItemIndex = lipgloss.NewStyle().Foreground(Primary)
	Placeholder = lipgloss.NewStyle().Foreground(Dim)
	EmptyText = lipgloss.NewStyle().Foreground(Muted).Italic(true)

	ScrollbarThumb = lipgloss.NewStyle().Foreground(Primary)
	ScrollbarTrack = lipgloss.NewStyle().Foreground(Dim)
	ScrollbarWindow = lipgloss.NewStyle().Foreground(Secondary)

	StatusBar = lipgloss.NewStyle().Foreground(Muted)
	StatusKey = lipgloss.NewStyle().Foreground(Muted)
	StatusValue = lipgloss.NewStyle().Foreground(Secondary)
	StatusAlert = lipgloss.NewStyle().Foreground(Warning).Bold(true)

	HelpKey = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	HelpDesc = lipgloss.NewStyle().Foreground(Muted)
	HelpSeparator = lipgloss.NewStyle().Foreground(Dim)
}
