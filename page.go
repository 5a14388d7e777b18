package bergfex

import (
	"context"
	"time"
)

// Page represents one fetched HTML page, already decoded.
type Page struct {
	URL  string
	HTML string

	// ContentHash is a stable hash of HTML, letting the refresh layer
	// skip re-extraction when a page has not changed between polls.
	ContentHash uint64

	FetchedAt time.Time
}

// PageFetcher retrieves the three page kinds the extractors understand.
// Implementations own timeouts, retries and politeness; the extraction
// core never performs network I/O.
type PageFetcher interface {
	// OverviewPage fetches the snow-report listing page for a country
	// code (e.g. "oesterreich", "frankreich").
	OverviewPage(ctx context.Context, country string) (*Page, error)

	// ResortPage fetches a single resort's snow-report page by its
	// relative link path, as produced by the overview extractor.
	ResortPage(ctx context.Context, areaPath string) (*Page, error)

	// ForecastPage fetches a resort's snow-forecast page. page is the
	// 0-based forecast page number.
	ForecastPage(ctx context.Context, areaPath string, page int) (*Page, error)
}
