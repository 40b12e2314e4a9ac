package format

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "…"
}

// Rating renders a rating without trailing zeros: 4.5 => "4.5", 5 => "5".
func Rating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Count formats an integer with thousands separators.
// Example: Count(12345) => "12,345"
func Count(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Date formats t in a locale-friendly long form.
func Date(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "zh", "ja":
		return strconv.Itoa(t.Year()) + "年" + strconv.Itoa(int(t.Month())) + "月" + strconv.Itoa(t.Day()) + "日"
	default:
		return t.Format("Jan 2, 2006")
	}
}
