package biglist

// StickyOffset returns how far a section header must be translated down so
// that it stays pinned to the top of the viewport. The header starts moving
// once scrollTop passes its position and is pushed back up by the next
// section header; next may be nil when no later header is materialized.
func StickyOffset(header, next *Element, scrollTop float64) float64 {
	if header == nil || scrollTop <= header.Position {
		return 0
	}
	if next != nil {
		collision := next.Position - header.Height
		if collision >= header.Position {
			return min(scrollTop, collision) - header.Position
		}
	}
	return scrollTop - header.Position
}

// StickyHeader returns the section header that is pinned at scrollTop and
// the translation to apply to it, or nil when no section header of the frame
// has been scrolled past.
func StickyHeader(elements []*Element, scrollTop float64) (*Element, float64) {
	var current, next *Element
	for _, e := range elements {
		if e.Type != ElementSectionHeader {
			continue
		}
		if e.Position <= scrollTop {
			current = e
			continue
		}
		next = e
		break
	}
	if current == nil {
		return nil, 0
	}
	return current, StickyOffset(current, next, scrollTop)
}
