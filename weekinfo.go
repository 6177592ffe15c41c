package mensafeed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reFullDate = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)
	reDayMonth = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\b`)
	reYear     = regexp.MustCompile(`\b(20\d{2})\b`)
	reSmallNum = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// DateResolutionError means the week info text yielded no usable
// Monday. Callers recover by anchoring on the current system week.
type DateResolutionError struct {
	Info string
}

func (e *DateResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve week start from %q", e.Info)
}

type monthPattern struct {
	re    *regexp.Regexp
	month int
}

// DateResolver extracts the calendar Monday a "week info" string like
// "Mo, 15. bis Fr, 19. November 2024" refers to.
type DateResolver struct {
	months []monthPattern
	now    func() time.Time
}

// NewDateResolver takes the month-name table from configuration and a
// clock, so venue language and "current year" are both injectable.
func NewDateResolver(months map[string]int, now func() time.Time) *DateResolver {
	r := &DateResolver{now: now}
	if r.now == nil {
		r.now = time.Now
	}
	for name, num := range months {
		r.months = append(r.months, monthPattern{
			re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(name)) + `\b`),
			month: num,
		})
	}
	return r
}

// Monday resolves the week info string to the Monday it names, trying
// increasingly permissive layers:
//
//  1. a full DD.MM.YYYY date
//  2. DD.MM plus a 20xx year found elsewhere, else the current year
//  3. a textual month name; the day is the last standalone 1-2 digit
//     number before it, else the first number in the string
//  4. the first standalone 1-2 digit number with the current month and
//     year
//
// A layer's candidate only wins when it is a real calendar date that
// falls on a Monday; otherwise the next layer gets its turn. When all
// layers are exhausted a DateResolutionError is returned.
func (r *DateResolver) Monday(info string) (time.Time, error) {
	s := strings.TrimSpace(info)
	today := r.now()

	// 1: explicit DD.MM.YYYY
	if m := reFullDate.FindStringSubmatch(s); m != nil {
		if d, ok := mondayDate(atoi(m[3]), atoi(m[2]), atoi(m[1])); ok {
			return d, nil
		}
	}

	// 2: DD.MM with the year found elsewhere in the string
	if m := reDayMonth.FindStringSubmatch(s); m != nil {
		if d, ok := mondayDate(r.yearIn(s), atoi(m[2]), atoi(m[1])); ok {
			return d, nil
		}
	}

	nums := reSmallNum.FindAllStringSubmatchIndex(s, -1)

	// 3: textual month name
	if month, pos, found := r.monthIn(s); found && len(nums) > 0 {
		day := atoi(s[nums[0][2]:nums[0][3]])
		for _, num := range nums {
			if num[2] >= pos {
				break
			}
			day = atoi(s[num[2]:num[3]])
		}
		if d, ok := mondayDate(r.yearIn(s), month, day); ok {
			return d, nil
		}
	}

	// 4: last resort, first small number in the current month
	if len(nums) > 0 {
		day := atoi(s[nums[0][2]:nums[0][3]])
		if d, ok := mondayDate(today.Year(), int(today.Month()), day); ok {
			return d, nil
		}
	}

	return time.Time{}, &DateResolutionError{Info: info}
}

// yearIn finds a 4-digit 20xx year in s, defaulting to the current one.
func (r *DateResolver) yearIn(s string) int {
	if m := reYear.FindStringSubmatch(s); m != nil {
		return atoi(m[1])
	}
	return r.now().Year()
}

// monthIn locates the leftmost configured month name in s and returns
// its number and byte position.
func (r *DateResolver) monthIn(s string) (month, pos int, found bool) {
	lower := strings.ToLower(s)
	pos = len(lower) + 1
	for _, mp := range r.months {
		if loc := mp.re.FindStringIndex(lower); loc != nil && loc[0] < pos {
			pos = loc[0]
			month = mp.month
			found = true
		}
	}
	return month, pos, found
}

// mondayDate builds the date and accepts it only if it is a real
// calendar day (no silent overflow like 31.06.) landing on a Monday.
func mondayDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return time.Time{}, false
	}
	if d.Weekday() != time.Monday {
		return time.Time{}, false
	}
	return d, true
}

// CurrentWeekMonday is the caller-side fallback anchor: the Monday of
// the week containing t.
func CurrentWeekMonday(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// AdjustFutureWeek guards against a page still showing last year's
// final week: a week start more than 7 days past the fetch date is
// pulled back one year. Near year boundaries this stays a heuristic,
// the source gives no stronger signal.
func AdjustFutureWeek(monday, fetched time.Time) time.Time {
	if monday.After(fetched.AddDate(0, 0, 7)) {
		return monday.AddDate(-1, 0, 0)
	}
	return monday
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
