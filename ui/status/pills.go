package status

import (
	"fmt"

	"github.com/miosa/osa-biglist/style"
)

// ProgressPill renders the scroll position as a percentage, e.g. "31%".
// The top and bottom of the content read "top" and "end".
func ProgressPill(progress float64) string {
	switch {
	case progress <= 0:
		return style.Faint.Render("top")
	case progress >= 1:
		return style.Faint.Render("end")
	}
	return style.StatusValue.Render(fmt.Sprintf("%d%%", int(progress*100)))
}
