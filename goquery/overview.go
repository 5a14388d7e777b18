package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mbarbey/bergfex"
)

// Column positions in the snow-status table.
const (
	colResort = iota
	colValleyDepth
	colMountainDepth
	colNewSnow
	colStatusIcon
	colLifts
	colLastUpdate

	minOverviewColumns = 6
)

// Overview extracts the listing page's snow-status table into one record
// per resort, keyed by the resort's relative link path. Row order is
// preserved while scanning, so a duplicated path keeps the last row, and
// rows without a usable resort link or with fewer than six cells are
// skipped. A page without the snow table yields an empty map, not an
// error.
func (e *Extractor) Overview(html string) (map[string]bergfex.Record, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	records := make(map[string]bergfex.Record)

	table := doc.Find("table.snowtable").First()
	if table.Length() == 0 {
		e.logger.Warn("snow-status table not found in overview page")
		return records, nil
	}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < minOverviewColumns {
			// Header row (th cells) or malformed row.
			return
		}

		link := cells.Eq(colResort).Find("a[href]").First()
		path, ok := link.Attr("href")
		path = strings.TrimSpace(path)
		if !ok || path == "" {
			e.logger.Debug("overview row without resort link skipped")
			return
		}

		rec := bergfex.Record{}
		rec.Set(bergfex.FieldResortName, strings.TrimSpace(link.Text()))

		// Depth cells decorate their rendered text; the raw number lives
		// in the data-value attribute.
		rec.Set(bergfex.FieldSnowValley, cells.Eq(colValleyDepth).AttrOr("data-value", ""))
		rec.Set(bergfex.FieldSnowMountain, cells.Eq(colMountainDepth).AttrOr("data-value", ""))
		rec.Set(bergfex.FieldNewSnow, cells.Eq(colNewSnow).AttrOr("data-value", ""))

		rec.Set(bergfex.FieldStatus, iconStatus(cells.Eq(colStatusIcon)))

		e.overviewLifts(cells.Eq(colLifts).Text(), rec)

		if cells.Length() > colLastUpdate {
			e.lastUpdate(cells.Eq(colLastUpdate), rec)
		}

		records[path] = rec
	})

	return records, nil
}

// iconStatus derives the lift status from the status icon's class-name
// suffix: "…status1" means open, "…status0" closed, anything else is
// unknown. Returns nil when the row has no status icon.
func iconStatus(cell *goquery.Selection) any {
	icon := cell.Find(`[class*="icon-status"]`).First()
	if icon.Length() == 0 {
		return nil
	}
	for _, name := range strings.Fields(icon.AttrOr("class", "")) {
		suffix, ok := strings.CutPrefix(name, "icon-status")
		if !ok {
			continue
		}
		switch suffix {
		case "1":
			return bergfex.StatusOpen
		case "0":
			return bergfex.StatusClosed
		default:
			return bergfex.StatusUnknown
		}
	}
	return nil
}

// overviewLifts parses the slash-delimited lifts cell: "8/10" carries
// open and total counts, a bare integer is an open count only.
func (e *Extractor) overviewLifts(text string, rec bergfex.Record) {
	text = strings.TrimSpace(text)
	if text == "" || text == "-" {
		return
	}

	openPart, totalPart, found := strings.Cut(text, "/")
	if !found {
		open, err := strconv.Atoi(openPart)
		if err != nil {
			e.logger.Debug("unparseable lifts cell", "text", text)
			return
		}
		rec.Set(bergfex.FieldLiftsOpenCount, open)
		return
	}

	open, err1 := strconv.Atoi(strings.TrimSpace(openPart))
	total, err2 := strconv.Atoi(strings.TrimSpace(totalPart))
	if err1 != nil || err2 != nil {
		e.logger.Debug("unparseable lifts cell", "text", text)
		return
	}
	rec.Set(bergfex.FieldLiftsOpenCount, open)
	rec.Set(bergfex.FieldLiftsTotalCount, total)
}

// lastUpdate reads the update stamp from the cell's data-value attribute
// when present, else its rendered text, and normalizes it when the date
// parser can. Unparseable stamps are kept as raw text.
func (e *Extractor) lastUpdate(cell *goquery.Selection, rec bergfex.Record) {
	raw, ok := cell.Attr("data-value")
	if !ok {
		raw = cell.Text()
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}

	if ts, parsed := bergfex.ParseUpdateTime(raw, e.siteNow()); parsed {
		rec.Set(bergfex.FieldLastUpdate, ts)
		return
	}
	e.logger.Debug("unparseable update stamp kept as text", "text", raw)
	rec.Set(bergfex.FieldLastUpdate, raw)
}
