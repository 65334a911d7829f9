package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText reduces HTML-ish article text to what a reader would see.
// Text without tags is returned unchanged, as is text goquery cannot parse.
func PlainText(raw string) string {
	if !strings.ContainsAny(raw, "<>") {
		return raw
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}

	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
