package mensafeed

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	reBulletPrefix = regexp.MustCompile(`^[•\-\*\s]*\d*\.*\s*`)
	reSpaceRun     = regexp.MustCompile(`\s+`)
)

// MenuLocator finds the actual meal list inside one weekday bucket.
// It needs the weekday names to keep day headings out of the loose-text
// fallback.
type MenuLocator struct {
	Weekdays []string
}

// Locate returns the raw text of each meal item in the bucket, in
// order. Roughly half the weekdays render as a proper nested list, the
// rest as a flat paragraph with line breaks; both come out as the same
// item sequence here. The second return is false when the day has no
// menu at all (closed, holiday), which is a valid state, not an error.
//
// A real meal list is recognized by its shape: a list whose first item
// wraps a paragraph. Incidental lists on the page, footnote markers for
// instance, never have that nesting.
func (l *MenuLocator) Locate(bucket WeekdayBucket) ([]string, bool) {
	for _, node := range bucket {
		list := node
		if !list.Is("ul") {
			list = node.Find("ul").First()
		}
		if list.Length() == 0 {
			continue
		}
		firstItem := list.Find("li").First()
		if firstItem.Length() == 0 || firstItem.Find("p").Length() == 0 {
			continue
		}
		var items []string
		list.Find("li").Each(func(i int, li *goquery.Selection) {
			items = append(items, li.Text())
		})
		return items, true
	}

	if items := l.looseItems(bucket); len(items) > 0 {
		return items, true
	}
	return nil, false
}

// looseItems synthesizes meal items from newline-separated text when no
// structured list exists. The newlines were injected for <br> elements
// by NormalizeDocument.
func (l *MenuLocator) looseItems(bucket WeekdayBucket) []string {
	var items []string
	for _, node := range bucket {
		for _, line := range strings.Split(node.Text(), "\n") {
			line = reBulletPrefix.ReplaceAllString(strings.TrimSpace(line), "")
			line = strings.TrimSpace(reSpaceRun.ReplaceAllString(line, " "))
			if line == "" || l.isDayHeading(line) {
				continue
			}
			items = append(items, line)
		}
	}
	return items
}

// isDayHeading drops lines that are weekday headings rather than
// meals; the partitioner keeps heading nodes inside their buckets.
func (l *MenuLocator) isDayHeading(line string) bool {
	for _, weekday := range l.Weekdays {
		if strings.Contains(line, weekday) {
			return true
		}
	}
	return false
}
