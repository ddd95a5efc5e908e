package report

import "StockDigest/internal/model"

// Compute derives a change record for every watchlist symbol with enough
// history, then keeps only the symbols whose latest close reached their
// configured target. Output order follows the watchlist, so repeated runs on
// the same input produce identical reports.
func Compute(series map[string][]model.PricePoint, watchlist []string, policy model.ThresholdPolicy, tags map[string]model.RecommendationTag) []model.ChangeRecord {
	records := make([]model.ChangeRecord, 0, len(watchlist))
	for _, sym := range watchlist {
		points := series[sym]
		if len(points) < 2 {
			continue // not enough history: holidays, new listings
		}
		previous := points[len(points)-2].Close
		latest := points[len(points)-1].Close
		if previous <= 0 {
			continue
		}
		target, ok := policy[sym]
		if !ok || latest < target {
			continue
		}
		change := latest - previous
		records = append(records, model.ChangeRecord{
			Symbol:         sym,
			PreviousClose:  previous,
			LatestClose:    latest,
			Change:         change,
			ChangePercent:  change / previous,
			Recommendation: tags[sym],
		})
	}
	return records
}
