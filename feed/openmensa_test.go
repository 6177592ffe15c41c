package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, time.November, d, 0, 0, 0, 0, time.UTC)
}

func TestOpenMensaFeed(t *testing.T) {
	builder := NewOpenMensa()
	builder.AddMeal(day(18), "Nicht Vegetarisch", "Gulasch mit Knödel", nil,
		map[string]string{"student": "5.00", "other": "7.00"})
	builder.AddMeal(day(18), "Vegan", "Kartoffelsuppe", []string{"A", "L"},
		map[string]string{"student": "4.00", "other": "6.00"})
	builder.AddMeal(day(19), "Vegan", "Linsencurry", []string{"A"},
		map[string]string{"other": "6.00"})

	document, errDoc := builder.ToFeedDocument()
	assert.NoError(t, errDoc)

	assert.Contains(t, document, `<openmensa version="2.1" xmlns="http://openmensa.org/open-mensa-v2">`)
	assert.Contains(t, document, `<day date="2024-11-18">`)
	assert.Contains(t, document, `<day date="2024-11-19">`)
	assert.Contains(t, document, `<category name="Vegan">`)
	assert.Contains(t, document, `<name>Gulasch mit Knödel</name>`)
	assert.Contains(t, document, `<note>A</note>`)
	assert.Contains(t, document, `<price role="other">7.00</price>`)
	assert.Contains(t, document, `<price role="student">5.00</price>`)
}

func TestOpenMensaGroupsByDayAndCategory(t *testing.T) {
	builder := NewOpenMensa()
	builder.AddMeal(day(18), "Vegan", "Suppe", nil, map[string]string{"other": "6.00"})
	builder.AddMeal(day(18), "Vegan", "Eintopf", nil, map[string]string{"other": "6.00"})

	assert.Len(t, builder.days, 1)
	assert.Len(t, builder.days[0].Categories, 1)
	assert.Len(t, builder.days[0].Categories[0].Meals, 2)
}

func TestRecorder(t *testing.T) {
	recorder := NewRecorder()
	recorder.AddMeal(day(18), "Vegan", "Suppe", []string{"A"}, map[string]string{"other": "6.00"})

	assert.Len(t, recorder.Entries, 1)
	document, errDoc := recorder.ToFeedDocument()
	assert.NoError(t, errDoc)
	assert.Contains(t, document, "2024-11-18\tVegan\tSuppe\tA")
}
