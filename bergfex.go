// Package bergfex extracts structured ski-resort status (snow depths,
// lift and slope counts, avalanche risk, last-update timestamps) from
// HTML pages of the bergfex snow-report site, in its French, English
// and German variants.
//
// This package contains domain types and the dependency-free leaf logic
// (label tables, date normalization) following Ben Johnson's Standard
// Package Layout. Implementations live in subdirectories named after
// their primary dependency (goquery/ for the extractors, http/ for the
// page fetcher).
//
// The callers that schedule refreshes, register entities or format
// values for display are external collaborators: they hand raw HTML to
// the extractors and receive plain records back.
package bergfex
