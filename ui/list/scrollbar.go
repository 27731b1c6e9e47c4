package list

import (
	"strings"

	"github.com/miosa/osa-biglist/style"
)

const (
	scrollTrackChar  = "│"
	scrollWindowChar = "┃"
	scrollThumbChar  = "█"
)

// ScrollbarModel tracks the dimensions needed to render a vertical scrollbar.
// Besides the thumb it marks the part of the track whose content is
// currently materialized.
type ScrollbarModel struct {
	viewportHeight int
	contentHeight  int
	offset         int

	windowTop    int
	windowBottom int
}

// NewScrollbar creates a ScrollbarModel with the given dimensions.
func NewScrollbar(viewportHeight, contentHeight, offset int) ScrollbarModel {
	return ScrollbarModel{
		viewportHeight: viewportHeight,
		contentHeight:  contentHeight,
		offset:         offset,
	}
}

// SetDimensions updates the scrollbar dimensions.
func (s *ScrollbarModel) SetDimensions(viewportHeight, contentHeight, offset int) {
	s.viewportHeight = viewportHeight
	s.contentHeight = contentHeight
	s.offset = offset
}

// SetWindow records the content range [top, bottom) that is materialized.
func (s *ScrollbarModel) SetWindow(top, bottom int) {
	s.windowTop = top
	s.windowBottom = bottom
}

// View renders a vertical scrollbar as a single column of characters.
//
// The track occupies viewportHeight rows. The thumb is positioned and sized
// proportionally to the visible region within the total content. When the
// content fits within the viewport the returned string is empty.
func (s ScrollbarModel) View() string {
	rows := s.rows()
	if rows == nil {
		return ""
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		switch r {
		case rowThumb:
			out[i] = style.ScrollbarThumb.Render(scrollThumbChar)
		case rowWindow:
			out[i] = style.ScrollbarWindow.Render(scrollWindowChar)
		default:
			out[i] = style.ScrollbarTrack.Render(scrollTrackChar)
		}
	}
	return strings.Join(out, "\n")
}

type scrollRow int

const (
	rowTrack scrollRow = iota
	rowWindow
	rowThumb
)

// rows classifies every track row.
func (s ScrollbarModel) rows() []scrollRow {
	vh := s.viewportHeight
	ch := s.contentHeight

	if vh <= 0 || ch <= vh {
		return nil
	}

	// Thumb height is at least 1 row.
	thumbH := max(1, min(vh, vh*vh/ch))

	scrollable := ch - vh
	thumbTop := (s.offset * (vh - thumbH)) / scrollable
	thumbTop = max(0, min(thumbTop, vh-thumbH))

	// The materialized range is scaled onto the track like the content.
	winTop := s.windowTop * vh / ch
	winBottom := (s.windowBottom*vh + ch - 1) / ch

	rows := make([]scrollRow, vh)
	for i := range rows {
		switch {
		case i >= thumbTop && i < thumbTop+thumbH:
			rows[i] = rowThumb
		case i >= winTop && i < winBottom:
			rows[i] = rowWindow
		default:
			rows[i] = rowTrack
		}
	}
	return rows
}
