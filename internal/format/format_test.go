package format

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("智", 120)
	got := Truncate(long, 100)
	if utf8.RuneCountInString(got) != 101 || !strings.HasSuffix(got, "…") {
		t.Fatalf("unexpected truncation: %d runes", utf8.RuneCountInString(got))
	}
	if got := Truncate("short", 100); got != "short" {
		t.Fatalf("expected untouched string, got %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRatingAndCount(t *testing.T) {
	cases := map[float64]string{4.5: "4.5", 5: "5", 0: "0", 3.25: "3.25"}
	for in, want := range cases {
		if got := Rating(in); got != want {
			t.Errorf("Rating(%v)=%q want %q", in, got, want)
		}
	}
	if got := Count(1234567); got != "1,234,567" {
		t.Errorf("unexpected count: %s", got)
	}
	if got := Count(-980); got != "-980" {
		t.Errorf("unexpected negative count: %s", got)
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2023, time.September, 28, 0, 0, 0, 0, time.UTC)
	if got := Date(d, "zh"); got != "2023年9月28日" {
		t.Fatalf("unexpected zh date: %s", got)
	}
	if got := Date(d, "en"); got != "Sep 28, 2023" {
		t.Fatalf("unexpected en date: %s", got)
	}
}
