package mensafeed

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/tileh/mensafeed/config"
)

func testLocator() *MenuLocator {
	return &MenuLocator{Weekdays: config.Default().Locale.Weekdays}
}

func bucketOf(doc *goquery.Document, selectors ...string) WeekdayBucket {
	var bucket WeekdayBucket
	for _, sel := range selectors {
		bucket = append(bucket, doc.Find(sel))
	}
	return bucket
}

func TestLocateStructuredList(t *testing.T) {
	doc := getDoc(t, `
<body>
<p id="day">Montag</p>
<ul id="menu">
  <li><p>Frittatensuppe A, C, G</p></li>
  <li><p>Gulasch mit Knödel</p></li>
</ul>
</body>
`)
	items, found := testLocator().Locate(bucketOf(doc, "#day", "#menu"))
	assert.True(t, found)
	assert.Len(t, items, 2)
	assert.Contains(t, items[0], "Frittatensuppe")
	assert.Contains(t, items[1], "Gulasch")
}

// Incidental lists, footnote markers for instance, have bare list items
// without a nested paragraph and must not be mistaken for the menu.
func TestLocateSkipsIncidentalList(t *testing.T) {
	doc := getDoc(t, `
<body>
<ul id="footnotes"><li>A ... Gluten</li><li>C ... Ei</li></ul>
<ul id="menu"><li><p>Lasagne</p></li></ul>
</body>
`)
	items, found := testLocator().Locate(bucketOf(doc, "#footnotes", "#menu"))
	assert.True(t, found)
	assert.Equal(t, []string{"Lasagne"}, items)
}

func TestLocateLooseText(t *testing.T) {
	doc := getDoc(t, `<body><p id="day">Freitag</p><p id="text">Suppe<br>Hauptspeise A</p></body>`)
	NormalizeDocument(doc)

	items, found := testLocator().Locate(bucketOf(doc, "#day", "#text"))
	assert.True(t, found)
	assert.Equal(t, []string{"Suppe", "Hauptspeise A"}, items)
}

func TestLocateLooseTextStripsBullets(t *testing.T) {
	doc := getDoc(t, "<body><p id='text'>• Suppe\n- Salat\n1. Gulasch  mit   Knödel</p></body>")
	NormalizeDocument(doc)

	items, found := testLocator().Locate(bucketOf(doc, "#text"))
	assert.True(t, found)
	assert.Equal(t, []string{"Suppe", "Salat", "Gulasch mit Knödel"}, items)
}

func TestLocateNoMenu(t *testing.T) {
	doc := getDoc(t, `<body><p id="day">Mittwoch</p><p id="empty">   </p></body>`)
	items, found := testLocator().Locate(bucketOf(doc, "#day", "#empty"))
	assert.False(t, found)
	assert.Nil(t, items)
}

func TestLocateEmptyBucket(t *testing.T) {
	_, found := testLocator().Locate(WeekdayBucket{})
	assert.False(t, found)
}
