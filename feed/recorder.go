package feed

import (
	"fmt"
	"strings"
	"time"
)

// Entry is one recorded AddMeal call.
type Entry struct {
	Date      time.Time
	Category  string
	Name      string
	Allergens []string
	Prices    map[string]string
}

// Recorder keeps every meal handed to it. It backs the human-readable
// renderers and test assertions.
type Recorder struct {
	Entries []Entry
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) AddMeal(date time.Time, category, name string, allergens []string, prices map[string]string) {
	r.Entries = append(r.Entries, Entry{
		Date:      date,
		Category:  category,
		Name:      name,
		Allergens: allergens,
		Prices:    prices,
	})
}

func (r *Recorder) ToFeedDocument() (string, error) {
	var b strings.Builder
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n",
			e.Date.Format("2006-01-02"), e.Category, e.Name, strings.Join(e.Allergens, ","))
	}
	return b.String(), nil
}
