package mensafeed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tileh/mensafeed/config"
	"github.com/tileh/mensafeed/vo"
)

// FeedBuilder is the external collaborator the assembler hands meals
// to. The wire format of the finished feed is the builder's business.
type FeedBuilder interface {
	AddMeal(date time.Time, category, name string, allergens []string, prices map[string]string)
	ToFeedDocument() (string, error)
}

// Assembler drives one extraction pass over a fetched menu page:
// resolve the week's Monday, partition the weekday sections, locate and
// parse each day's meals, emit dated meals to a feed builder.
type Assembler struct {
	conf     *config.Config
	resolver *DateResolver
	locator  *MenuLocator
	now      func() time.Time
}

func NewAssembler(conf *config.Config) *Assembler {
	return newAssembler(conf, time.Now)
}

func newAssembler(conf *config.Config, now func() time.Time) *Assembler {
	return &Assembler{
		conf:     conf,
		resolver: NewDateResolver(conf.Locale.Months, now),
		locator:  &MenuLocator{Weekdays: conf.Locale.Weekdays},
		now:      now,
	}
}

// Run fetches the configured menu page and builds the feed in one
// synchronous pass. Fetch failures propagate, nothing is emitted.
func (a *Assembler) Run(ctx context.Context, builder FeedBuilder) error {
	fetcher := NewFetcher(a.conf.Agent, a.conf.Timeout.Std())
	doc, errFetch := fetcher.FetchDocument(ctx, a.conf.Source)
	if errFetch != nil {
		return errFetch
	}
	return a.BuildFeed(doc, a.now(), builder)
}

// BuildFeed runs the extraction pass over an already parsed document.
// fetched anchors both the current-week fallback and the stale-page
// year correction.
func (a *Assembler) BuildFeed(doc *goquery.Document, fetched time.Time, builder FeedBuilder) error {
	NormalizeDocument(doc)

	anchor, ok := FindFirst(doc.Selection, TagWithText("h2", a.conf.AnchorHeading))
	if !ok {
		return fmt.Errorf("no %q heading in document", a.conf.AnchorHeading)
	}

	monday := a.resolveMonday(anchor, fetched)
	special := a.parseWeeklySpecial(anchor)

	mondayAnchor, ok := NextSibling(anchor, TagWithText("p", a.conf.Locale.Weekdays[0]))
	if !ok {
		return fmt.Errorf("no %q section after the %q heading",
			a.conf.Locale.Weekdays[0], a.conf.AnchorHeading)
	}
	buckets := PartitionWeekdays(mondayAnchor, a.conf.Locale.Weekdays)

	for offset := 0; offset < 7; offset++ {
		bucket, ok := buckets[offset]
		if !ok {
			continue
		}
		date := monday.AddDate(0, 0, offset)

		items, found := a.locator.Locate(bucket)
		if !found {
			log.Printf("no menu for %s, skipping", date.Format("2006-01-02"))
			mtc.daysSkipped.Inc()
			continue
		}

		for _, item := range items {
			meal := ParseMealText(item)
			a.emit(builder, vo.DatedMeal{Date: date, Meal: meal, Tier: meal.Category.Tier()})
		}
		log.Printf("added %d meals for %s", len(items), date.Format("2006-01-02"))

		if special != nil {
			a.emitSpecial(builder, date, *special)
		}
	}
	return nil
}

// resolveMonday finds the week info text next to the anchor heading and
// resolves it, falling back to the current system week when the text is
// missing or unusable.
func (a *Assembler) resolveMonday(anchor *goquery.Selection, fetched time.Time) time.Time {
	info := ""
	if p, ok := NextSibling(anchor, func(sel *goquery.Selection) bool { return sel.Is("p") }); ok {
		info = p.Text()
		if strong := p.Find("strong").First(); strong.Length() > 0 {
			info = strong.Text()
		}
	}
	log.Printf("week info: %q", info)

	monday, errMonday := a.resolver.Monday(info)
	if errMonday != nil {
		mtc.dateFallbacks.Inc()
		monday = CurrentWeekMonday(fetched)
		log.Printf("week start unresolved (%v), using current week %s",
			errMonday, monday.Format("2006-01-02"))
		return monday
	}
	if adjusted := AdjustFutureWeek(monday, fetched); !adjusted.Equal(monday) {
		log.Printf("week start %s is too far ahead of %s, assuming previous year",
			monday.Format("2006-01-02"), fetched.Format("2006-01-02"))
		monday = adjusted
	}
	return monday
}

// parseWeeklySpecial locates the Wochenteller, the one special meal the
// venue offers on every day of the week. Lookup failures are recovered:
// the special is omitted for the run.
func (a *Assembler) parseWeeklySpecial(anchor *goquery.Selection) *vo.MealRecord {
	heading, ok := NextSibling(anchor, TagWithText("p", a.conf.SpecialHeading))
	if !ok {
		log.Printf("no %q section found", a.conf.SpecialHeading)
		mtc.specialFailures.Inc()
		return nil
	}
	item := heading.Next().Find("li").First()
	if item.Length() == 0 {
		log.Printf("no meal under the %q section", a.conf.SpecialHeading)
		mtc.specialFailures.Inc()
		return nil
	}
	meal := ParseMealText(item.Text())
	log.Printf("weekly special: %s", meal.Name)
	return &meal
}

func (a *Assembler) emit(builder FeedBuilder, dated vo.DatedMeal) {
	price := a.conf.Prices.NonVegetarian
	if dated.Tier == vo.PriceTierVegetarian {
		price = a.conf.Prices.Vegetarian
	}
	prices := map[string]string{
		"student": fmt.Sprintf("%d.00", price-a.conf.Prices.StudentDiscount),
		"other":   fmt.Sprintf("%d.00", price),
	}
	builder.AddMeal(dated.Date, a.categoryLabel(dated.Meal.Category), dated.Meal.Name, dated.Meal.Allergens, prices)
	mtc.mealCounter.WithLabelValues(string(dated.Meal.Category)).Inc()
}

func (a *Assembler) emitSpecial(builder FeedBuilder, date time.Time, meal vo.MealRecord) {
	prices := map[string]string{
		"other": fmt.Sprintf("%d.00", a.conf.Prices.WeeklySpecial),
	}
	label := a.conf.SpecialHeading + " " + a.categoryLabel(meal.Category)
	builder.AddMeal(date, label, meal.Name, meal.Allergens, prices)
	mtc.mealCounter.WithLabelValues(string(meal.Category)).Inc()
}

func (a *Assembler) categoryLabel(c vo.Category) string {
	switch c {
	case vo.CategoryVegan:
		return a.conf.Labels.Vegan
	case vo.CategoryVegetarian:
		return a.conf.Labels.Vegetarian
	default:
		return a.conf.Labels.NonVegetarian
	}
}
