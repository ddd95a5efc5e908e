package collector

import "StockDigest/internal/model"

// Fetcher defines the interface for fetching daily closing prices.
type Fetcher interface {
	FetchDailyCloses(symbol string, days int) ([]model.PricePoint, error)
	Name() string
}
