package mensafeed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Predicate decides whether a node is the one a search is after.
type Predicate func(sel *goquery.Selection) bool

// TagWithText matches an element by tag name and a substring of its
// text content. This is how the menu page is navigated: the markup has
// no usable classes or ids, only recognizable headings.
func TagWithText(tag, substr string) Predicate {
	return func(sel *goquery.Selection) bool {
		return sel.Is(tag) && strings.Contains(sel.Text(), substr)
	}
}

// FindFirst returns the first descendant of root, in document order,
// satisfying pred. The second return is false when nothing matches.
func FindFirst(root *goquery.Selection, pred Predicate) (*goquery.Selection, bool) {
	var found *goquery.Selection
	root.Find("*").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if pred(sel) {
			found = sel
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return found, true
}

// NextSibling returns the first following sibling of sel satisfying
// pred, walking in document order.
func NextSibling(sel *goquery.Selection, pred Predicate) (*goquery.Selection, bool) {
	var found *goquery.Selection
	sel.NextAll().EachWithBreak(func(i int, sibling *goquery.Selection) bool {
		if pred(sibling) {
			found = sibling
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return found, true
}

// Siblings returns every following sibling of sel as single-node
// selections, preserving document order.
func Siblings(sel *goquery.Selection) []*goquery.Selection {
	var out []*goquery.Selection
	sel.NextAll().Each(func(i int, sibling *goquery.Selection) {
		out = append(out, sibling)
	})
	return out
}
