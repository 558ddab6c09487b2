package extract

import (
	"regexp"
	"strconv"
	"time"

	"github.com/ooiea/DataExtraction/internal/model"
)

const (
	minYear = 1990
	maxYear = 2099
)

type datePattern struct {
	re               *regexp.Regexp
	year, month, day int // Submatch group numbers
}

// Date layouts seen on the share. Digits must not continue on either side,
// which the leading/trailing (^|\D) and (\D|$) groups enforce.
var datePatterns = []datePattern{
	{re: regexp.MustCompile(`(?:^|\D)(\d{4})[-_.](\d{2})[-_.](\d{2})(?:\D|$)`), year: 1, month: 2, day: 3},
	{re: regexp.MustCompile(`(?:^|\D)(\d{2})\.(\d{2})\.(\d{4})(?:\D|$)`), year: 3, month: 2, day: 1},
	{re: regexp.MustCompile(`(?:^|\D)(\d{4})(\d{2})(\d{2})(?:\D|$)`), year: 1, month: 2, day: 3},
}

var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:^|\D)(\d{2})[-_:.](\d{2})[-_:.](\d{2})(?:\D|$)`),
	regexp.MustCompile(`(?:^|\D)(\d{2})h(\d{2})m(\d{2})s?(?:\D|$)`),
}

type span struct {
	start, end int
	value      string
}

// DateTimeExtractor reads the recording date and clock time from a path.
// The rightmost valid occurrence wins: file names are more specific than folders.
type DateTimeExtractor struct{}

// NewDateTimeExtractor creates a new date/time extractor
func NewDateTimeExtractor() *DateTimeExtractor {
	return &DateTimeExtractor{}
}

// Extract returns the date (2006-01-02) and time (15:04:05) labels
func (e *DateTimeExtractor) Extract(path string) (date model.Value, clock model.Value) {
	dates := findDates(path)

	date = model.Unknown()
	if last := rightmost(dates); last != nil {
		date = model.Label(last.value)
	}

	// Mask date digits so "2019_05_14" is not read as 20:19:05
	masked := []byte(path)
	for _, d := range dates {
		for i := d.start; i < d.end; i++ {
			masked[i] = ' '
		}
	}

	clock = model.Unknown()
	if last := rightmost(findTimes(string(masked))); last != nil {
		clock = model.Label(last.value)
	}
	return date, clock
}

func findDates(path string) []span {
	var found []span
	for _, p := range datePatterns {
		for _, loc := range findAllOverlapping(p.re, path) {
			y := atoi(path[loc[2*p.year]:loc[2*p.year+1]])
			m := atoi(path[loc[2*p.month]:loc[2*p.month+1]])
			d := atoi(path[loc[2*p.day]:loc[2*p.day+1]])
			if !validDate(y, m, d) {
				continue
			}
			start, end := groupBounds(loc)
			if overlapsAny(found, start, end) {
				continue
			}
			found = append(found, span{
				start: start,
				end:   end,
				value: time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			})
		}
	}
	return found
}

func findTimes(path string) []span {
	var found []span
	for _, re := range timePatterns {
		for _, loc := range findAllOverlapping(re, path) {
			h := atoi(path[loc[2]:loc[3]])
			m := atoi(path[loc[4]:loc[5]])
			s := atoi(path[loc[6]:loc[7]])
			if h > 23 || m > 59 || s > 59 {
				continue
			}
			start, end := groupBounds(loc)
			if overlapsAny(found, start, end) {
				continue
			}
			found = append(found, span{
				start: start,
				end:   end,
				value: time.Date(2000, 1, 1, h, m, s, 0, time.UTC).Format("15:04:05"),
			})
		}
	}
	return found
}

// findAllOverlapping is FindAllStringSubmatchIndex, except that the
// boundary character consumed by one match may start the next one
func findAllOverlapping(re *regexp.Regexp, s string) [][]int {
	var all [][]int
	offset := 0
	for offset < len(s) {
		loc := re.FindStringSubmatchIndex(s[offset:])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += offset
			}
		}
		all = append(all, loc)
		_, end := groupBounds(loc)
		if end <= offset {
			end = offset + 1
		}
		offset = end
	}
	return all
}

// groupBounds returns the span covered by the capture groups, excluding
// the boundary characters
func groupBounds(loc []int) (int, int) {
	start, end := -1, -1
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			continue
		}
		if start < 0 || loc[i] < start {
			start = loc[i]
		}
		if loc[i+1] > end {
			end = loc[i+1]
		}
	}
	return start, end
}

func overlapsAny(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

func rightmost(spans []span) *span {
	var best *span
	for i := range spans {
		if best == nil || spans[i].start > best.start {
			best = &spans[i]
		}
	}
	return best
}

func validDate(y, m, d int) bool {
	if y < minYear || y > maxYear || m < 1 || m > 12 || d < 1 {
		return false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return t.Day() == d && int(t.Month()) == m
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
