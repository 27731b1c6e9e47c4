// Package msg defines the tea.Msg types dispatched between the list widget
// and the application model. It depends only on the windowing engine.
package msg

import "github.com/miosa/osa-biglist/ui/biglist"

// -- Windowing --

// FrameRecomputed is sent when a scroll or resize moved the list into a new
// block and the materialized elements were recomputed.
type FrameRecomputed struct {
	Block    biglist.Block
	Passes   int
	Elements int
	Height   float64
}

// ViewableItemsChanged mirrors the list's viewable-items callback. Changed
// holds the items that left the viewport since the previous notification.
type ViewableItemsChanged struct {
	Viewable []biglist.ViewableItem
	Changed  []biglist.ViewableItem
}

// EndReached is sent once each time scrolling comes within the end-reached
// threshold of the content end.
type EndReached struct {
	DistanceFromEnd float64
}

// -- Navigation --

// ScrollSettled is sent when an animated scroll reaches its target offset.
type ScrollSettled struct {
	Offset float64
}
