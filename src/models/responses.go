package models

// -----------------------------------------------------------------------------
// API response envelopes. Every endpoint answers HTTP 200 with a `success`
// flag; "no data" conditions carry a human-readable `message` instead of a
// payload.
// -----------------------------------------------------------------------------

type MPagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type MCoinsResponse struct {
	Success    bool        `json:"success"`
	Data       []MCoin     `json:"data"`
	Pagination MPagination `json:"pagination"`
}

// -----------------------------------------------------------------------------

type MHistogramBin struct {
	RangeStart float64 `json:"range_start"`
	RangeEnd   float64 `json:"range_end"`
	Label      string  `json:"label"`
	RangeLabel string  `json:"range_label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

type MSummaryStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

type MHistogramResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message,omitempty"`
	Column      string          `json:"column"`
	Bins        []MHistogramBin `json:"bins"`
	Stats       *MSummaryStats  `json:"stats,omitempty"`
	TotalValues int             `json:"total_values"`
}

// -----------------------------------------------------------------------------

type MScatterCell struct {
	XBin  int `json:"x_bin"`
	YBin  int `json:"y_bin"`
	Count int `json:"count"`
}

type MAxisScale struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Range    float64 `json:"range"`
	Scale    string  `json:"scale"`
	BinCount int     `json:"bin_count"`
}

type MScatterResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message,omitempty"`
	XColumn     string         `json:"x_column"`
	YColumn     string         `json:"y_column"`
	Cells       []MScatterCell `json:"cells"`
	XAxis       *MAxisScale    `json:"x_axis,omitempty"`
	YAxis       *MAxisScale    `json:"y_axis,omitempty"`
	Correlation float64        `json:"correlation"`
	TotalPairs  int            `json:"total_pairs"`
}

// -----------------------------------------------------------------------------

type MHeatmapResponse struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message,omitempty"`
	Columns      []string    `json:"columns"`
	Matrix       [][]float64 `json:"matrix"`
	FoundColumns int         `json:"found_columns"`
	DataPoints   int         `json:"data_points"`
}

// -----------------------------------------------------------------------------

type MWordmapEntry struct {
	Rank      int     `json:"rank"`
	Name      string  `json:"name"`
	Symbol    string  `json:"symbol"`
	MarketCap float64 `json:"market_cap"`
	Size      float64 `json:"size"`
	Hue       float64 `json:"hue"`
}

type MWordmapResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Entries []MWordmapEntry `json:"entries"`
	Total   int             `json:"total"`
}

// -----------------------------------------------------------------------------

// MDatasetSnapshot is pushed to every websocket client on connect and
// broadcast once after the initial load.
type MDatasetSnapshot struct {
	Type           string         `json:"type"`
	TotalCoins     int            `json:"total_coins"`
	Source         string         `json:"source"`
	MarketCapStats *MSummaryStats `json:"market_cap_stats,omitempty"`
	Timestamp      int64          `json:"timestamp"`
}
