package model

import "time"

// PricePoint is one daily closing price for a symbol.
type PricePoint struct {
	Time  time.Time
	Close float64
}

// ChangeRecord holds the day-over-day change for one symbol. ChangePercent is
// kept as a ratio (0.0149 renders as 1.49%); formatting happens at the
// rendering boundary only. Records are never mutated after computation.
type ChangeRecord struct {
	Symbol         string
	PreviousClose  float64
	LatestClose    float64
	Change         float64
	ChangePercent  float64
	Recommendation RecommendationTag
}

// ThresholdPolicy maps a symbol to its minimum target price. A symbol without
// an entry never appears in the report.
type ThresholdPolicy map[string]float64
