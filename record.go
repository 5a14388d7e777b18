package bergfex

import "strings"

// Canonical record field keys. Fields are independent and optional;
// presence depends on what the source markup exposed.
const (
	FieldResortName        = "resort_name"
	FieldSnowValley        = "snow_valley"
	FieldSnowMountain      = "snow_mountain"
	FieldNewSnow           = "new_snow"
	FieldSnowCondition     = "snow_condition"
	FieldSlopeCondition    = "slope_condition"
	FieldLastSnowfall      = "last_snowfall"
	FieldAvalancheWarning  = "avalanche_warning"
	FieldLiftsOpenCount    = "lifts_open_count"
	FieldLiftsTotalCount   = "lifts_total_count"
	FieldSlopesOpenKm      = "slopes_open_km"
	FieldSlopesTotalKm     = "slopes_total_km"
	FieldSlopesOpenCount   = "slopes_open_count"
	FieldSlopesTotalCount  = "slopes_total_count"
	FieldElevationMountain = "elevation_mountain"
	FieldElevationValley   = "elevation_valley"
	FieldStatus            = "status"
	FieldLastUpdate        = "last_update"
)

// Status describes whether a resort is operating.
type Status string

// Status values. StatusUnknown only occurs in overview rows whose status
// icon carries an unrecognized suffix; the detail extractor derives
// Open/Closed from the open-lift count.
const (
	StatusOpen    Status = "Open"
	StatusClosed  Status = "Closed"
	StatusUnknown Status = "Unknown"
)

// Record maps canonical field names to extracted values. Values are
// strings, ints, floats, a Status, or a time.Time for last_update.
//
// Records are constructed fresh on each extraction call and never hold
// empty values: Set drops empty strings, lone dashes and nils instead of
// storing them.
type Record map[string]any

// Set stores value under key unless the value is empty. Empty means nil,
// an empty or whitespace-only string, or a bare dash placeholder.
func (r Record) Set(key string, value any) {
	if value == nil {
		return
	}
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" || s == "-" {
			return
		}
		r[key] = s
		return
	}
	r[key] = value
}

// DeriveStatus reports the operating status implied by the record's
// open-lift count: Open iff lifts_open_count > 0.
func (r Record) DeriveStatus() Status {
	if n, ok := r[FieldLiftsOpenCount].(int); ok && n > 0 {
		return StatusOpen
	}
	return StatusClosed
}

// ForecastImages maps forecast image names to URLs and captions.
type ForecastImages map[string]string

// ForecastImages keys. The summary pair is present only when the
// requested page number is non-zero and the markup carries a third
// gallery entry.
const (
	ForecastDailyURL          = "daily_forecast_url"
	ForecastDailyCaption      = "daily_caption"
	ForecastTwelveHourURL     = "twelve_hour_forecast_url"
	ForecastTwelveHourCaption = "twelve_hour_caption"
	ForecastSummaryURL        = "summary_url"
	ForecastSummaryCaption    = "summary_caption"
)
