// Package dates turns free-text dates scraped from citations into canonical
// ISO partial dates: "2016-10-03", "2016-10", "2016". Unparseable or
// sentinel input yields the empty string, meaning "no usable date"; nothing
// here ever fails.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Sane publication-year bounds. Anything outside is treated as a driver
// artifact or typo rather than a date.
const (
	minSaneYear = 1500
	maxSaneSlop = 1 // years into the future still accepted
)

var (
	dashVariants = strings.NewReplacer(
		"‐", "-", "‑", "-", "‒", "-", "–", "-",
		"—", "-", "―", "-", "−", "-",
	)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
	centurylessRe = regexp.MustCompile(`(?i)^\d{2}xx$`)
	isoRangeRe    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})\s*[-/]\s*(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashDateRe   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	dottedDateRe  = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	signedIntRe   = regexp.MustCompile(`^[+-]?\d+$`)
	trailingYear  = regexp.MustCompile(`\b(1[5-9]\d{2}|20\d{2})\b`)
)

// dayLayouts are accepted layouts that state an explicit day.
var dayLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2 January 2006",
	"2 January, 2006",
	"2 Jan 2006",
	"2 Jan, 2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2006 January 2",
}

// monthLayouts state only a month and a year.
var monthLayouts = []string{
	"January 2006",
	"January, 2006",
	"Jan 2006",
	"Jan, 2006",
	"2006-01",
	"2006 January",
}

// Tidy canonicalizes a free-text date. The heuristics are ordered from most
// to least specific; the general layout ladder is the last resort before
// bare-year extraction.
func Tidy(in string) string {
	s := strings.TrimSpace(multiSpaceRe.ReplaceAllString(dashVariants.Replace(in), " "))
	if s == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(s), "invalid") {
		return ""
	}
	if centurylessRe.MatchString(s) {
		return ""
	}

	if m := isoRangeRe.FindStringSubmatch(s); m != nil {
		return tidyISORange(m)
	}
	if m := slashDateRe.FindStringSubmatch(s); m != nil {
		return tidySlashDate(m)
	}
	if m := dottedDateRe.FindStringSubmatch(s); m != nil {
		// Dotted day.month.year is the slash form in different clothes.
		return Tidy(fmt.Sprintf("%s/%s/%s", m[1], m[2], m[3]))
	}
	if signedIntRe.MatchString(s) {
		return tidyBareYear(s)
	}
	if out := tidyParsed(s); out != "" {
		return out
	}
	// Last resort: a recognizable year somewhere in the text.
	if years := trailingYear.FindAllString(s, -1); len(years) > 0 {
		return years[len(years)-1]
	}
	return ""
}

// tidyISORange normalizes a date range to the abbreviated ISO 8601 interval
// form, collapsing the repeated year (and month) on the right-hand side.
func tidyISORange(m []string) string {
	y1, mo1, d1 := m[1], pad2(m[2]), pad2(m[3])
	y2, mo2, d2 := m[4], pad2(m[5]), pad2(m[6])
	if !plausibleMonthDay(m[2], m[3]) || !plausibleMonthDay(m[5], m[6]) {
		return ""
	}
	start := y1 + "-" + mo1 + "-" + d1
	switch {
	case y1 == y2 && mo1 == mo2:
		return start + "/" + d2
	case y1 == y2:
		return start + "/" + mo2 + "-" + d2
	default:
		return start + "/" + y2 + "-" + mo2 + "-" + d2
	}
}

// tidySlashDate disambiguates DD/MM/YYYY against MM/DD/YYYY: a component
// over 12 must be the day; two components over 12 is no date at all; equal
// components are that day of that month. The genuinely ambiguous remainder
// is read month-first.
func tidySlashDate(m []string) string {
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	year := m[3]
	var month, day int
	switch {
	case a > 12 && b > 12:
		return ""
	case a > 12:
		day, month = a, b
	case b > 12:
		day, month = b, a
	case a == b:
		day, month = a, a
	default:
		month, day = a, b
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	y, err := strconv.Atoi(year)
	if err != nil || !saneYear(y) || epochPlaceholder(y, time.Month(month), day) {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, month, day)
}

// epochPlaceholder reports whether a parsed date is the Unix epoch or the day
// before it, in any spelling. Broken upstream drivers emit these to mean
// "unknown", not "new year 1970".
func epochPlaceholder(y int, m time.Month, d int) bool {
	return (y == 1970 && m == time.January && d == 1) ||
		(y == 1969 && m == time.December && d == 31)
}

// tidyBareYear interprets a signed integer as a year. The values -1, 0 and
// 1 are rejected outright: they are error codes and array indexes, never
// publication years.
func tidyBareYear(s string) string {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil {
		return ""
	}
	if n >= -1 && n <= 1 {
		return ""
	}
	if n < minSaneYear || n > time.Now().Year()+maxSaneSlop {
		return ""
	}
	return strconv.Itoa(n)
}

// tidyParsed runs the explicit layout ladder. Month-only layouts yield a
// partial date; a parsed January 1st is demoted to a partial date too,
// since "the 1st" is how unknown days surface in upstream feeds.
func tidyParsed(s string) string {
	for _, layout := range dayLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if !saneYear(t.Year()) {
			return ""
		}
		if epochPlaceholder(t.Year(), t.Month(), t.Day()) {
			return ""
		}
		if t.Month() == time.January && t.Day() == 1 {
			return fmt.Sprintf("%04d-01", t.Year())
		}
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
	}
	for _, layout := range monthLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if !saneYear(t.Year()) {
			return ""
		}
		return fmt.Sprintf("%04d-%02d", t.Year(), t.Month())
	}
	return ""
}

func plausibleMonthDay(mo, d string) bool {
	m, _ := strconv.Atoi(mo)
	day, _ := strconv.Atoi(d)
	return m >= 1 && m <= 12 && day >= 1 && day <= 31
}

func saneYear(y int) bool {
	return y >= minSaneYear && y <= time.Now().Year()+maxSaneSlop
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
