package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/tileh/mensafeed/feed"
)

// MenuCard renders the recorded week as a printable A4 menu card, one
// block per day.
func MenuCard(title string, entries []feed.Entry) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr(title), "", "L", false)
	pdf.Ln(4)

	lastDate := ""
	for _, entry := range entries {
		date := entry.Date.Format("Monday, 02.01.2006")
		if date != lastDate {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 13)
			pdf.MultiCell(0, 7, tr(date), "", "L", false)
			lastDate = date
		}

		line := "• " + entry.Name
		if len(entry.Allergens) > 0 {
			line += " (" + strings.Join(entry.Allergens, ", ") + ")"
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(line), "", "L", false)

		detail := entry.Category
		if price, ok := entry.Prices["other"]; ok {
			detail += ", " + price
		}
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 4, tr("   "+detail), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
