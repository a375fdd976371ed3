package width

import (
	"errors"
	"fmt"
)

// ErrInvalidPercent is returned for percentages that are not positive.
var ErrInvalidPercent = errors.New("percentage must be positive")

// Percent is a whole-number percentage of a reference width.
type Percent int

// NewPercent validates p.
func NewPercent(p int) (Percent, error) {
	if p <= 0 {
		return 0, fmt.Errorf("%d%%: %w", p, ErrInvalidPercent)
	}
	return Percent(p), nil
}

// Of returns p percent of ref, truncated toward zero.
func (p Percent) Of(ref int) int {
	return ref * int(p) / 100
}

func (p Percent) String() string {
	return fmt.Sprintf("%d%%", int(p))
}
