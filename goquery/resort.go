package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mbarbey/bergfex"
)

var (
	liftSepRe   = regexp.MustCompile(`\bvon\b|\bof\b|\bsur\b`)
	decimalRe   = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	integerRe   = regexp.MustCompile(`\d+`)
	elevationRe = regexp.MustCompile(`\(([\d\s.]+)\s*m\)`)
)

// Resort extracts a single resort snow-report page into a Record.
// Missing fields are omitted; malformed values are dropped and logged at
// Debug. The returned record never holds empty or placeholder values.
func (e *Extractor) Resort(html string) (bergfex.Record, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	rec := bergfex.Record{}

	rec.Set(bergfex.FieldResortName, resortName(doc))

	e.snowDepths(doc, rec)

	if v, ok := lookupLabel(doc, bergfex.LabelSnowCondition); ok {
		rec.Set(bergfex.FieldSnowCondition, v)
	}
	if v, ok := lookupLabel(doc, bergfex.LabelLastSnowfall); ok {
		rec.Set(bergfex.FieldLastSnowfall, v)
	}
	if v, ok := lookupLabel(doc, bergfex.LabelAvalancheWarning); ok {
		// Austrian pages embed the warning provider's name in the value.
		rec.Set(bergfex.FieldAvalancheWarning, strings.ReplaceAll(v, "Lawinenwarndienst", ""))
	}
	if v, ok := lookupLabel(doc, bergfex.LabelLifts); ok {
		e.liftCounts(v, rec)
	}
	if v, ok := lookupLabel(doc, bergfex.LabelSlopes); ok {
		slopeMeasure(v, rec)
	}
	if v, ok := lookupLabel(doc, bergfex.LabelSlopeCondition); ok {
		rec.Set(bergfex.FieldSlopeCondition, v)
	}

	if v := strings.TrimSpace(doc.Find(".new-snow .value").First().Text()); v != "" {
		rec.Set(bergfex.FieldNewSnow, stripUnit(v, "cm"))
	}

	if sub := strings.TrimSpace(doc.Find("div.h2-sub").First().Text()); sub != "" {
		if ts, ok := bergfex.ParseUpdateTime(sub, e.siteNow()); ok {
			rec.Set(bergfex.FieldLastUpdate, ts)
		} else {
			e.logger.Debug("unparseable update stamp kept as text", "text", sub)
			rec.Set(bergfex.FieldLastUpdate, sub)
		}
	}

	rec.Set(bergfex.FieldStatus, rec.DeriveStatus())

	return rec, nil
}

// resortName reads the page's primary heading. Newer templates nest the
// name in sub-spans with the display name last; older ones use a bare h1.
func resortName(doc *goquery.Document) string {
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return ""
	}
	if spans := h1.Find("span"); spans.Length() > 0 {
		return strings.TrimSpace(spans.Last().Text())
	}
	return strings.TrimSpace(h1.Text())
}

type labelValue struct {
	label string
	value string
}

// snowDepths reads the snow-depth label/value pairs. Two template shapes
// are in circulation: emphasis-styled dt.big/dd.big pairs and plain
// dt/dd pairs inside the snow-report list. Both are probed every time;
// the first shape that yields pairs wins. A generic snow-height label
// doubles as the valley depth only when no valley value was found.
func (e *Extractor) snowDepths(doc *goquery.Document, rec bergfex.Record) {
	pairs := depthPairs(doc.Find("dt.big"), "dd.big")
	if len(pairs) == 0 {
		pairs = depthPairs(doc.Find("dl.snow-report dt"), "dd")
	}

	for _, p := range pairs {
		if matchesAny(p.label, bergfex.Labels[bergfex.LabelMountain]) {
			rec.Set(bergfex.FieldSnowMountain, stripUnit(p.value, "cm"))
			setElevation(rec, bergfex.FieldElevationMountain, p.label)
		}
		if matchesAny(p.label, bergfex.Labels[bergfex.LabelValley]) {
			rec.Set(bergfex.FieldSnowValley, stripUnit(p.value, "cm"))
			setElevation(rec, bergfex.FieldElevationValley, p.label)
		}
		if matchesAny(p.label, bergfex.Labels[bergfex.LabelSnowHeight]) {
			if _, ok := rec[bergfex.FieldSnowValley]; !ok {
				rec.Set(bergfex.FieldSnowValley, stripUnit(p.value, "cm"))
			}
		}
	}
}

// depthPairs collects each dt in dts with its next sibling matching
// ddSelector, skipping labels without a value element.
func depthPairs(dts *goquery.Selection, ddSelector string) []labelValue {
	var pairs []labelValue
	dts.Each(func(_ int, dt *goquery.Selection) {
		dd := dt.NextAllFiltered(ddSelector).First()
		if dd.Length() == 0 {
			return
		}
		pairs = append(pairs, labelValue{
			label: strings.TrimSpace(dt.Text()),
			value: strings.TrimSpace(dd.Text()),
		})
	})
	return pairs
}

// liftCounts parses a combined "open of total" phrase ("8 of 10",
// "8 von 10 Liften", "8 sur 10"). A failed parse leaves both fields
// absent.
func (e *Extractor) liftCounts(text string, rec bergfex.Record) {
	parts := liftSepRe.Split(text, 2)
	if len(parts) < 2 {
		e.logger.Debug("lift count without open/total separator", "text", text)
		return
	}

	open, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		e.logger.Debug("unparseable open-lift count", "text", text)
		return
	}

	totalFields := strings.Fields(parts[1])
	if len(totalFields) == 0 {
		e.logger.Debug("lift total missing", "text", text)
		return
	}
	total, err := strconv.Atoi(totalFields[0])
	if err != nil {
		e.logger.Debug("unparseable total-lift count", "text", text)
		return
	}

	rec.Set(bergfex.FieldLiftsOpenCount, open)
	rec.Set(bergfex.FieldLiftsTotalCount, total)
}

// slopeMeasure parses the open-slopes phrase. Values carrying a distance
// unit yield open/total kilometers (comma or dot decimals); otherwise
// the first two integers are open/total piste counts.
func slopeMeasure(text string, rec bergfex.Record) {
	if strings.Contains(text, "km") {
		nums := decimalRe.FindAllString(text, 2)
		if len(nums) >= 1 {
			if f, err := strconv.ParseFloat(strings.ReplaceAll(nums[0], ",", "."), 64); err == nil {
				rec.Set(bergfex.FieldSlopesOpenKm, f)
			}
		}
		if len(nums) >= 2 {
			if f, err := strconv.ParseFloat(strings.ReplaceAll(nums[1], ",", "."), 64); err == nil {
				rec.Set(bergfex.FieldSlopesTotalKm, f)
			}
		}
		return
	}

	nums := integerRe.FindAllString(text, 2)
	if len(nums) >= 1 {
		if n, err := strconv.Atoi(nums[0]); err == nil {
			rec.Set(bergfex.FieldSlopesOpenCount, n)
		}
	}
	if len(nums) >= 2 {
		if n, err := strconv.Atoi(nums[1]); err == nil {
			rec.Set(bergfex.FieldSlopesTotalCount, n)
		}
	}
}

// setElevation captures an elevation annotation such as "Berg (2.263 m)"
// attached to a depth label.
func setElevation(rec bergfex.Record, key, label string) {
	m := elevationRe.FindStringSubmatch(label)
	if m == nil {
		return
	}
	rec.Set(key, strings.TrimSpace(m[1]))
}

// stripUnit removes a unit token from a rendered value.
func stripUnit(s, unit string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, unit, ""))
}
