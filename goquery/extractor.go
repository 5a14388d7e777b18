// Package goquery implements the bergfex HTML extractors on top of the
// goquery document API. Every extraction is a pure, synchronous
// transformation of one page's HTML into a record; malformed markup
// degrades to a partial or empty result, never to a failure.
package goquery

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mbarbey/bergfex"
)

// Extractor turns raw site HTML into bergfex records.
//
// The zero configuration discards logs, uses the wall clock and the
// site's reference timezone. Concurrent use is safe: an Extractor holds
// no mutable state.
type Extractor struct {
	logger *slog.Logger
	now    func() time.Time
	loc    *time.Location
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger for parse diagnostics. Parse failures log
// at Debug, missing structural anchors at Warn.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithNow sets the clock that anchors relative dates and year inference.
func WithNow(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// WithLocation overrides the reference timezone used to interpret date
// strings. Defaults to bergfex.SiteLocation().
func WithLocation(loc *time.Location) Option {
	return func(e *Extractor) {
		e.loc = loc
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
		loc:    bergfex.SiteLocation(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// siteNow returns the current time in the reference timezone.
func (e *Extractor) siteNow() time.Time {
	return e.now().In(e.loc)
}

// parse wraps goquery document construction with the package error type.
func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bergfex.Errorf(bergfex.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
