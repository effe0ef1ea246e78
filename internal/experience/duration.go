// Package experience detects date ranges in resume text and sums their
// durations into total years of experience.
package experience

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// maxRangeMonths rejects implausibly long ranges (page footers, award years,
// ticker noise) as noise rather than experience.
const maxRangeMonths = 120

// yearRange matches bare year pairs like "2020 - 2023" or "2019 to 2021".
var yearRange = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*[-to]+\s*((?:19|20)\d{2})\b`)

const monthNames = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec|` +
	`January|February|March|April|June|July|August|September|October|November|December`

const dateToken = `(?:\d{1,2}\s+(?:` + monthNames + `)\s+\d{4}|(?:` + monthNames + `)\s+\d{4})`

// monthRange matches "Month YYYY - Month YYYY" pairs, optionally with a day.
var monthRange = regexp.MustCompile(`(?i)(` + dateToken + `)\s*[-to]+\s*(` + dateToken + `)`)

var presentWords = regexp.MustCompile(`(?i)\b(present|current)\b`)

// endpointLayouts are tried in order for each range endpoint.
var endpointLayouts = []string{"2 Jan 2006", "2 January 2006", "Jan 2006", "January 2006"}

// Years computes total experience in years from all date ranges in the text,
// rounded to two decimals. Open-ended ranges ("Jan 2022 - Present") resolve
// to the current month. Empty or unparseable input yields 0.
func Years(text string) float64 {
	return yearsAt(text, time.Now())
}

// yearsAt runs both detection passes against a fixed "now" so open-ended
// ranges are deterministic under test.
//
// The two passes share one running total and one deduplication set keyed by
// the literal matched span pair; a bare-year range and a month+year range
// describing the same period in different words are still counted separately.
func yearsAt(text string, now time.Time) float64 {
	if text == "" {
		return 0
	}

	t := strings.NewReplacer("–", "-", "—", "-").Replace(text)
	t = presentWords.ReplaceAllString(t, now.Format("Jan 2006"))

	totalMonths := 0
	used := make(map[string]bool)

	// Pass 1: year-only ranges, duration in whole years.
	for _, m := range yearRange.FindAllStringSubmatch(t, -1) {
		key := m[1] + "|" + m[2]
		if used[key] {
			continue
		}
		used[key] = true

		diff := atoi(m[2]) - atoi(m[1])
		if diff > 0 && diff <= maxRangeMonths/12 {
			totalMonths += diff * 12
		}
	}

	// Pass 2: month+year ranges, duration in whole months.
	for _, m := range monthRange.FindAllStringSubmatch(t, -1) {
		key := m[1] + "|" + m[2]
		if used[key] {
			continue
		}
		used[key] = true

		start, ok := parseEndpoint(m[1])
		if !ok {
			continue
		}
		end, ok := parseEndpoint(m[2])
		if !ok {
			continue
		}

		months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
		if months >= 1 && months <= maxRangeMonths {
			totalMonths += months
		}
	}

	return math.Round(float64(totalMonths)/12*100) / 100
}

// parseEndpoint parses one range endpoint, trying each candidate layout in
// order. Month names are recapitalized first since matching is
// case-insensitive but time.Parse is not.
func parseEndpoint(s string) (time.Time, bool) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	s = capitalizeWords(s)

	for _, layout := range endpointLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
