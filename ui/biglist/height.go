package biglist

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHeight is returned by ParseHeight for input that is not a finite
// number.
var ErrInvalidHeight = errors.New("invalid height")

// Height is a layout dimension. The zero value is a fixed height of 0.
//
// A Height is either a fixed number or a function of logical coordinates.
// Functions must be pure: the engine calls them more than once per pass and
// never caches the result.
type Height struct {
	fixed      float64
	static     func() float64
	perSection func(section int) float64
	perItem    func(section, index int) float64
}

// Fixed returns a height that never depends on coordinates.
func Fixed(h float64) Height {
	return Height{fixed: h}
}

// Static returns a height computed by fn with no coordinates. It is the
// function form used for the list header and footer.
func Static(fn func() float64) Height {
	return Height{static: fn}
}

// PerSection returns a height computed from the section index.
func PerSection(fn func(section int) float64) Height {
	return Height{perSection: fn}
}

// PerItem returns a height computed from the section and item index.
func PerItem(fn func(section, index int) float64) Height {
	return Height{perItem: fn}
}

// ParseHeight parses a numeric string such as "48" or "12.5" into a fixed
// Height.
func ParseHeight(raw string) (Height, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Height{}, fmt.Errorf("%w: %q", ErrInvalidHeight, raw)
	}
	return Fixed(v), nil
}

// Uniform reports whether the height is the same for every item of a section.
func (h Height) Uniform() bool {
	return h.perItem == nil
}

// IsFixed reports whether the height is a plain number.
func (h Height) IsFixed() bool {
	return h.static == nil && h.perSection == nil && h.perItem == nil
}

// Resolve returns the height for the given coordinates. Coordinates the
// height does not depend on are ignored.
func (h Height) Resolve(section, index int) float64 {
	switch {
	case h.perItem != nil:
		return h.perItem(section, index)
	case h.perSection != nil:
		return h.perSection(section)
	case h.static != nil:
		return h.static()
	default:
		return h.fixed
	}
}

func (h Height) String() string {
	switch {
	case h.perItem != nil:
		return "func(section, index)"
	case h.perSection != nil:
		return "func(section)"
	case h.static != nil:
		return "func()"
	default:
		return strconv.FormatFloat(h.fixed, 'f', -1, 64)
	}
}
