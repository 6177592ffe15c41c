// Package render produces human-readable views of a scraped menu, next
// to the machine feeds built by package feed.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MenuMarkdown converts the fetched menu page into Markdown, useful for
// eyeballing what the extraction engine is up against.
func MenuMarkdown(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting menu page to markdown: %w", err)
	}
	return markdown, nil
}
