package collector

import (
	"errors"
	"log"
	"time"

	"StockDigest/internal/model"
)

// ErrNoData is returned when no watchlist symbol yielded usable price data.
var ErrNoData = errors.New("no usable price data for any symbol")

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price  float64
	Series map[string][]model.PricePoint
	Errs   map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(symbol string, days int) ([]model.PricePoint, error) {
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if points, ok := m.Series[symbol]; ok {
		return points, nil
	}
	return generateMockSeries(m.Price, days), nil
}

func generateMockSeries(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		points[i] = model.PricePoint{
			Time:  time.Now().AddDate(0, 0, -(count - i)),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return points
}

// Collector fetches the daily close history for every watchlist symbol.
type Collector struct {
	Fetcher Fetcher
	Symbols []string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbols []string) *Collector {
	return &Collector{Fetcher: fetcher, Symbols: symbols}
}

// Collect fetches the close series per symbol. A symbol that fails or comes
// back empty is skipped with a warning; partial data per symbol is normal
// (holidays, new listings). Only when no symbol yields any data does Collect
// fail, which aborts the run before any report is produced.
func (c *Collector) Collect(days int) (map[string][]model.PricePoint, error) {
	series := make(map[string][]model.PricePoint, len(c.Symbols))
	for _, sym := range c.Symbols {
		points, err := c.Fetcher.FetchDailyCloses(sym, days)
		if err != nil {
			log.Printf("[WARN] fetch %s: %v", sym, err)
			continue
		}
		if len(points) == 0 {
			log.Printf("[WARN] fetch %s: empty series", sym)
			continue
		}
		series[sym] = points
	}
	if len(series) == 0 {
		return nil, ErrNoData
	}
	return series, nil
}
