package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func answerKeys(e FAQEntry) []string {
	keys := make([]string, 0, len(e.Answer))
	for _, m := range e.Answer {
		keys = append(keys, m.Key)
	}
	return keys
}

func TestFAQDependsOnPricing(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pricing Pricing
		free    []string
		start   []string
	}{
		{
			name:    "free tier",
			pricing: Pricing{HasFree: true},
			free:    []string{"faq.free.yes"},
			start:   []string{"faq.start.intro", "faq.start.free", "faq.start.done"},
		},
		{
			name:    "trial only",
			pricing: Pricing{HasFreeTrial: true, StartingPrice: "$10"},
			free:    []string{"faq.free.no", "faq.free.trial"},
			start:   []string{"faq.start.intro", "faq.start.trial", "faq.start.done"},
		},
		{
			name:    "paid",
			pricing: Pricing{StartingPrice: "$20"},
			free:    []string{"faq.free.no"},
			start:   []string{"faq.start.intro", "faq.start.paid", "faq.start.done"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := FAQ(Tool{Name: "Tool", URL: "https://tool.example", Pricing: tc.pricing})
			require.Len(t, entries, 3)
			require.Equal(t, tc.free, answerKeys(entries[0]))
			require.Equal(t, []string{"faq.lang.a"}, answerKeys(entries[1]))
			require.Equal(t, tc.start, answerKeys(entries[2]))
			require.Equal(t, []string{"name", "Tool", "url", "https://tool.example"}, entries[2].Answer[0].Args)
		})
	}
}

func TestSampleReviewsAreFixed(t *testing.T) {
	t.Parallel()

	reviews := SampleReviews()
	require.Len(t, reviews, 3)
	require.Equal(t, SampleReviews(), reviews)
	for _, r := range reviews {
		require.NotEmpty(t, r.Body.Key)
		require.LessOrEqual(t, r.Rating, 5.0)
	}
}
