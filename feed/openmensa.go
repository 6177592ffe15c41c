// Package feed holds the feed-builder collaborators meals are handed
// to. Builders accumulate dated meals and serialize a feed document;
// the extraction engine stays ignorant of any wire format.
package feed

import (
	"encoding/xml"
	"fmt"
	"sort"
	"time"
)

const openMensaNamespace = "http://openmensa.org/open-mensa-v2"

type mealXML struct {
	Name   string     `xml:"name"`
	Notes  []string   `xml:"note,omitempty"`
	Prices []priceXML `xml:"price"`
}

type priceXML struct {
	Role  string `xml:"role,attr"`
	Value string `xml:",chardata"`
}

type categoryXML struct {
	Name  string    `xml:"name,attr"`
	Meals []mealXML `xml:"meal"`
}

type dayXML struct {
	Date       string        `xml:"date,attr"`
	Categories []categoryXML `xml:"category"`
}

type canteenXML struct {
	Days []dayXML `xml:"day"`
}

type openMensaXML struct {
	XMLName xml.Name   `xml:"openmensa"`
	Version string     `xml:"version,attr"`
	Xmlns   string     `xml:"xmlns,attr"`
	Canteen canteenXML `xml:"canteen"`
}

// OpenMensa builds an OpenMensa v2 XML feed, grouping meals per day and
// per category in insertion order.
type OpenMensa struct {
	days     []*dayXML
	dayIndex map[string]*dayXML
}

func NewOpenMensa() *OpenMensa {
	return &OpenMensa{
		dayIndex: map[string]*dayXML{},
	}
}

func (b *OpenMensa) AddMeal(date time.Time, category, name string, allergens []string, prices map[string]string) {
	dateStr := date.Format("2006-01-02")
	day, ok := b.dayIndex[dateStr]
	if !ok {
		day = &dayXML{Date: dateStr}
		b.dayIndex[dateStr] = day
		b.days = append(b.days, day)
	}

	var cat *categoryXML
	for i := range day.Categories {
		if day.Categories[i].Name == category {
			cat = &day.Categories[i]
			break
		}
	}
	if cat == nil {
		day.Categories = append(day.Categories, categoryXML{Name: category})
		cat = &day.Categories[len(day.Categories)-1]
	}

	roles := make([]string, 0, len(prices))
	for role := range prices {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	meal := mealXML{Name: name, Notes: allergens}
	for _, role := range roles {
		meal.Prices = append(meal.Prices, priceXML{Role: role, Value: prices[role]})
	}
	cat.Meals = append(cat.Meals, meal)
}

func (b *OpenMensa) ToFeedDocument() (string, error) {
	doc := openMensaXML{
		Version: "2.1",
		Xmlns:   openMensaNamespace,
	}
	for _, day := range b.days {
		doc.Canteen.Days = append(doc.Canteen.Days, *day)
	}
	out, errMarshal := xml.MarshalIndent(doc, "", "  ")
	if errMarshal != nil {
		return "", fmt.Errorf("serializing openmensa feed: %w", errMarshal)
	}
	return xml.Header + string(out) + "\n", nil
}
