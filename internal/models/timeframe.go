package models

// Timeframe is the lookback window for historical price data. Only the
// enumerated values are valid; anything else is rejected before any
// network call is made.
type Timeframe string

const (
	Timeframe1D  Timeframe = "1d"
	Timeframe7D  Timeframe = "7d"
	Timeframe30D Timeframe = "30d"
	Timeframe90D Timeframe = "90d"
	Timeframe1Y  Timeframe = "1y"
)

var timeframeDays = map[Timeframe]int{
	Timeframe1D:  1,
	Timeframe7D:  7,
	Timeframe30D: 30,
	Timeframe90D: 90,
	Timeframe1Y:  365,
}

// ParseTimeframe validates a raw timeframe string from the API surface.
func ParseTimeframe(s string) (Timeframe, bool) {
	tf := Timeframe(s)
	_, ok := timeframeDays[tf]
	return tf, ok
}

// Days returns the upstream "days" query parameter for the timeframe.
// Returns 0 for a Timeframe that did not come from ParseTimeframe.
func (t Timeframe) Days() int {
	return timeframeDays[t]
}
