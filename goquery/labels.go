package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mbarbey/bergfex"
)

// lookupLabel resolves a label category against the document's term
// pairs. Term (dt) elements are scanned in document order; the first
// element whose text contains any of the category's locale variants
// wins, and its next dd sibling's trimmed text is returned. A category
// with no match is a missing field, not an error.
func lookupLabel(doc *goquery.Document, category bergfex.LabelCategory) (string, bool) {
	variants := bergfex.Labels[category]

	var value string
	var found bool
	doc.Find("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		text := dt.Text()
		for _, variant := range variants {
			if !strings.Contains(text, variant) {
				continue
			}
			dd := dt.NextAllFiltered("dd").First()
			if dd.Length() == 0 {
				// Label without a value element; keep scanning.
				return true
			}
			value = strings.TrimSpace(dd.Text())
			found = true
			return false
		}
		return true
	})

	return value, found
}

// matchesAny reports whether text contains any of the variants.
func matchesAny(text string, variants []string) bool {
	for _, variant := range variants {
		if strings.Contains(text, variant) {
			return true
		}
	}
	return false
}
