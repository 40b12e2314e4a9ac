package catalog

import "time"

// Review is a user review shown on the detail page.
type Review struct {
	ID      int
	Author  string
	Initial string
	// Color is the avatar palette name.
	Color  string
	Rating float64
	Body   Message
	Date   time.Time
}

// SampleReviews returns the fixed review set shown for every tool until a
// review backend exists.
func SampleReviews() []Review {
	return []Review{
		{ID: 1, Author: "李明", Initial: "L", Color: "blue", Rating: 5, Body: Message{Key: "review.sample.1"}, Date: time.Date(2023, time.September, 28, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Author: "张小红", Initial: "Z", Color: "red", Rating: 4, Body: Message{Key: "review.sample.2"}, Date: time.Date(2023, time.September, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Author: "王大山", Initial: "W", Color: "green", Rating: 5, Body: Message{Key: "review.sample.3"}, Date: time.Date(2023, time.August, 30, 0, 0, 0, 0, time.UTC)},
	}
}
