package biglist

import "fmt"

// ElementType tags the kind of a materialized element.
type ElementType int

const (
	ElementHeader ElementType = iota
	ElementSectionHeader
	ElementItem
	ElementSectionFooter
	ElementFooter
	ElementSpacer
)

// elementTypes lists every type in the order Fill visits them.
var elementTypes = []ElementType{
	ElementHeader,
	ElementSectionHeader,
	ElementItem,
	ElementSectionFooter,
	ElementFooter,
	ElementSpacer,
}

func (t ElementType) String() string {
	switch t {
	case ElementHeader:
		return "header"
	case ElementSectionHeader:
		return "section_header"
	case ElementItem:
		return "item"
	case ElementSectionFooter:
		return "section_footer"
	case ElementFooter:
		return "footer"
	case ElementSpacer:
		return "spacer"
	default:
		return "unknown"
	}
}

// Key is the stable identity of an element across passes.
type Key int64

// UnassignedKey marks an element that has not been given a key yet.
const UnassignedKey Key = -1

// Element is one unit of the rendered sequence. Position is the absolute
// offset from the content origin, insets included.
type Element struct {
	Type     ElementType
	Key      Key
	Position float64
	Height   float64
	Section  int
	Index    int
}

// Identity is the logical coordinate the recycler matches elements on.
type Identity struct {
	Type    ElementType
	Section int
	Index   int
}

func (id Identity) String() string {
	return fmt.Sprintf("%s:%d:%d", id.Type, id.Section, id.Index)
}

// Identity returns the element's recycling identity.
func (e *Element) Identity() Identity {
	return Identity{Type: e.Type, Section: e.Section, Index: e.Index}
}

// End returns the offset just past the element.
func (e *Element) End() float64 {
	return e.Position + e.Height
}

func (e *Element) String() string {
	return fmt.Sprintf("%s#%d@%g+%g", e.Identity(), e.Key, e.Position, e.Height)
}

// Frame is the result of one pass: the total content height and the
// materialized elements in top-to-bottom order.
type Frame struct {
	Height   float64
	Elements []*Element
}
