package report

import (
	"fmt"
	"time"

	"StockDigest/internal/model"
)

// EmptyReportMessage replaces the table when no symbol passed the threshold.
const EmptyReportMessage = "No stocks met the threshold today."

// Formatter renders change records into aligned, styled report lines.
type Formatter struct {
	// Watchlist is the full configured symbol list. The ticker column is
	// sized against all of it, not just the records that passed the filter.
	Watchlist []string
}

// NewFormatter creates a Formatter for the given watchlist.
func NewFormatter(watchlist []string) *Formatter {
	return &Formatter{Watchlist: watchlist}
}

// Format produces the report line sequence: a spacer, a dated title, a
// pipe-delimited header, then one row per record. An empty record set yields
// an explicit message line instead of a table.
func (f *Formatter) Format(records []model.ChangeRecord, date time.Time) []Line {
	lines := []Line{
		{},
		{Text: "Your stocks today " + DateLabel(date)},
	}
	if len(records) == 0 {
		return append(lines, Line{Text: EmptyReportMessage})
	}

	cells := make([][]string, len(records))
	for i, rec := range records {
		cells[i] = []string{
			rec.Symbol,
			formatPrice(rec.PreviousClose),
			formatPrice(rec.LatestClose),
			formatPrice(rec.Change),
			formatPercent(rec.ChangePercent),
			string(rec.Recommendation),
		}
	}

	widths := make([]int, len(Columns))
	for i, col := range Columns {
		widths[i] = len(col.Label)
	}
	for _, sym := range f.Watchlist {
		if len(sym) > widths[0] {
			widths[0] = len(sym)
		}
	}
	for _, row := range cells {
		for i, text := range row {
			if len(text) > widths[i] {
				widths[i] = len(text)
			}
		}
	}

	header := Line{Cells: make([]Cell, len(Columns))}
	for i, col := range Columns {
		header.Cells[i] = Cell{Text: col.Label, Pad: widths[i] - len(col.Label), Right: col.Right}
	}
	lines = append(lines, header)

	for i, rec := range records {
		row := Line{Cells: make([]Cell, len(Columns))}
		for j, col := range Columns {
			row.Cells[j] = Cell{Text: cells[i][j], Pad: widths[j] - len(cells[i][j]), Right: col.Right}
		}
		// Strictly positive change is green; a flat day stays red.
		color := model.ColorRed
		if rec.Change > 0 {
			color = model.ColorGreen
		}
		row.Cells[0].Color = color
		row.Cells[0].Bold = true
		row.Cells[len(Columns)-1].Color = rec.Recommendation.Color()
		lines = append(lines, row)
	}
	return lines
}

// DateLabel formats a report date like "Monday, January 02".
func DateLabel(date time.Time) string {
	return date.Format("Monday, January 02")
}

func formatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}
