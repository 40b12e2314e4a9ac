package render

import (
	"html/template"
	"math"
)

// StarState is one glyph of the five-slot rating.
type StarState string

const (
	StarFull  StarState = "full"
	StarHalf  StarState = "half"
	StarEmpty StarState = "empty"
)

// StarSlots maps rating to five glyph states. full = floor(rating), one
// half star when the fractional part is at least 0.5, the rest empty.
// Ratings outside 0..5 are clamped.
func StarSlots(rating float64) [5]StarState {
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	full := int(math.Floor(rating))
	half := rating-float64(full) >= 0.5

	var slots [5]StarState
	for i := range slots {
		switch {
		case i < full:
			slots[i] = StarFull
		case i == full && half:
			slots[i] = StarHalf
		default:
			slots[i] = StarEmpty
		}
	}
	return slots
}

// Stars renders the five glyphs for rating.
func (v *View) Stars(rating float64) template.HTML {
	return v.execute("stars", struct {
		V      *View
		Rating float64
		Slots  [5]StarState
	}{v, rating, StarSlots(rating)})
}
