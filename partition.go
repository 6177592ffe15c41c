package mensafeed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// WeekdayBucket is the ordered run of sibling nodes belonging to one
// weekday section of the menu.
type WeekdayBucket []*goquery.Selection

// PartitionWeekdays splits the flat sibling sequence starting at the
// Monday anchor into one bucket per weekday offset (0=Monday). A
// sibling whose text contains the name of the next weekday closes the
// current bucket and opens the next one, which it belongs to. Whatever
// trails the last named weekday stays in that weekday's bucket, so a
// page without weekend sections folds trailing content into Friday.
//
// The name check is a plain substring match. A weekday name inside
// unrelated text starts a bucket too early; that risk is accepted, the
// page offers nothing more reliable.
func PartitionWeekdays(anchor *goquery.Selection, weekdays []string) map[int]WeekdayBucket {
	buckets := map[int]WeekdayBucket{}
	current := WeekdayBucket{anchor}
	offset := 0

	for _, sibling := range Siblings(anchor) {
		text := sibling.Text()
		if offset+1 < len(weekdays) && strings.Contains(text, weekdays[offset+1]) {
			buckets[offset] = current
			current = WeekdayBucket{sibling}
			offset++
			continue
		}
		current = append(current, sibling)
	}
	if len(current) > 0 {
		buckets[offset] = current
	}
	return buckets
}
