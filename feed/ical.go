package feed

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ICal builds an iCalendar feed with one all-day event per meal, for
// people who want the menu in their calendar client instead of an
// OpenMensa consumer.
type ICal struct {
	cal   *ics.Calendar
	count int
	now   func() time.Time
}

func NewICal() *ICal {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//mensafeed//menu feed//DE")
	return &ICal{cal: cal, now: time.Now}
}

func (b *ICal) AddMeal(date time.Time, category, name string, allergens []string, prices map[string]string) {
	b.count++
	event := b.cal.AddEvent(fmt.Sprintf("%s-%d@mensafeed", date.Format("20060102"), b.count))
	event.SetDtStampTime(b.now().UTC())
	event.SetAllDayStartAt(date)
	event.SetAllDayEndAt(date.AddDate(0, 0, 1))
	event.SetSummary(fmt.Sprintf("%s (%s)", name, category))

	var desc []string
	if len(allergens) > 0 {
		desc = append(desc, "Allergene: "+strings.Join(allergens, ", "))
	}
	if price, ok := prices["other"]; ok {
		desc = append(desc, "Preis: "+price)
	}
	if len(desc) > 0 {
		event.SetDescription(strings.Join(desc, "\n"))
	}
}

func (b *ICal) ToFeedDocument() (string, error) {
	return b.cal.Serialize(), nil
}
