package mensafeed

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tileh/mensafeed/config"
)

// a Wednesday in the week of Monday 2024-11-18
var testNow = func() time.Time {
	return time.Date(2024, time.November, 20, 12, 0, 0, 0, time.UTC)
}

func testResolver() *DateResolver {
	return NewDateResolver(config.Default().Locale.Months, testNow)
}

func mustDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMondayNumericRange(t *testing.T) {
	// the leading 18.11. carries no year, the trailing full date is a
	// Friday; the resolver has to pair day and month with the year
	// found elsewhere
	monday, errMonday := testResolver().Monday("Mo, 18.11. bis Fr, 22.11.2024")
	assert.NoError(t, errMonday)
	assert.Equal(t, mustDate(2024, time.November, 18), monday)
}

func TestMondayFullDate(t *testing.T) {
	monday, errMonday := testResolver().Monday("Woche ab 18.11.2024")
	assert.NoError(t, errMonday)
	assert.Equal(t, mustDate(2024, time.November, 18), monday)
}

func TestMondayTextualMonth(t *testing.T) {
	monday, errMonday := testResolver().Monday("Woche vom 18. November 2024")
	assert.NoError(t, errMonday)
	assert.Equal(t, mustDate(2024, time.November, 18), monday)

	// transliterated month name, year taken from the clock
	monday, errMonday = testResolver().Monday("ab 25. Maerz")
	assert.NoError(t, errMonday)
	assert.Equal(t, mustDate(2024, time.March, 25), monday)
}

func TestMondayLastResort(t *testing.T) {
	// bare day number, current month and year filled in
	monday, errMonday := testResolver().Monday("ab 18.")
	assert.NoError(t, errMonday)
	assert.Equal(t, mustDate(2024, time.November, 18), monday)
}

func TestMondayRejectsNonMonday(t *testing.T) {
	// 19.11.2024 is a Tuesday and no later layer can rescue it
	_, errMonday := testResolver().Monday("Di, 19.11.2024")
	assert.Error(t, errMonday)

	var resolutionErr *DateResolutionError
	assert.True(t, errors.As(errMonday, &resolutionErr))
}

func TestMondayNothingToParse(t *testing.T) {
	_, errMonday := testResolver().Monday("derzeit geschlossen")
	assert.Error(t, errMonday)
}

func TestMondayInvalidCalendarDay(t *testing.T) {
	// 31.11. does not exist; the resolver must not let time.Date roll
	// it over into December
	_, errMonday := testResolver().Monday("ab 31.11.2024")
	assert.Error(t, errMonday)
}

func TestCurrentWeekMonday(t *testing.T) {
	assert.Equal(t, mustDate(2024, time.November, 18), CurrentWeekMonday(testNow()))
	// Sunday still belongs to the week started the Monday before
	assert.Equal(t, mustDate(2024, time.November, 18),
		CurrentWeekMonday(mustDate(2024, time.November, 24)))
	// a Monday maps to itself
	assert.Equal(t, mustDate(2024, time.November, 18),
		CurrentWeekMonday(mustDate(2024, time.November, 18)))
}

func TestAdjustFutureWeek(t *testing.T) {
	fetched := mustDate(2024, time.December, 30)

	// next week is fine
	near := mustDate(2025, time.January, 6)
	assert.Equal(t, near, AdjustFutureWeek(near, fetched))

	// a week nearly a year out means the page still shows last year
	far := mustDate(2025, time.November, 17)
	assert.Equal(t, mustDate(2024, time.November, 17), AdjustFutureWeek(far, fetched))
}
