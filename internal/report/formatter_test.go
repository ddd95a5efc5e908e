package report

import (
	"strings"
	"testing"
	"time"

	"StockDigest/internal/model"
)

var testDate = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC) // a Monday

func record(symbol string, previous, latest float64, tag model.RecommendationTag) model.ChangeRecord {
	change := latest - previous
	return model.ChangeRecord{
		Symbol:         symbol,
		PreviousClose:  previous,
		LatestClose:    latest,
		Change:         change,
		ChangePercent:  change / previous,
		Recommendation: tag,
	}
}

func TestFormat_ColumnWidthInvariant(t *testing.T) {
	f := NewFormatter([]string{"AAPL", "GOOG", "MSFT"})
	records := []model.ChangeRecord{
		record("AAPL", 168.00, 170.50, model.RecommendHold),
		record("MSFT", 1360.00, 1380.25, model.RecommendBlank),
	}
	lines := f.Format(records, testDate)
	text := RenderText(lines)

	// spacer, title, header, two rows
	if len(text) != 5 {
		t.Fatalf("expected 5 lines, got %d: %v", len(text), text)
	}
	var widths []int
	for _, row := range text[2:] {
		cols := strings.Split(row, " | ")
		if len(cols) != len(Columns) {
			t.Fatalf("expected %d columns, got %d in %q", len(Columns), len(cols), row)
		}
		if widths == nil {
			widths = make([]int, len(cols))
			for i, c := range cols {
				widths[i] = len(c)
			}
			continue
		}
		for i, c := range cols {
			if len(c) != widths[i] {
				t.Errorf("column %d width %d, want %d (row %q)", i, len(c), widths[i], row)
			}
		}
	}
}

func TestFormat_TickerWidthSpansWatchlist(t *testing.T) {
	f := NewFormatter([]string{"AAPL", "GOOG", "MSFT"})
	records := []model.ChangeRecord{record("GOOG", 138.00, 145.00, model.RecommendBlank)}
	lines := f.Format(records, testDate)
	text := RenderText(lines)

	header := strings.Split(text[2], " | ")
	if len(header[0]) != 5 {
		t.Errorf("ticker column width = %d, want 5", len(header[0]))
	}
}

func TestFormat_EmptyRecordSet(t *testing.T) {
	f := NewFormatter([]string{"AAPL", "GOOG"})
	lines := f.Format(nil, testDate)
	text := RenderText(lines)
	if len(text) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(text))
	}
	if text[2] != EmptyReportMessage {
		t.Errorf("expected empty-report message, got %q", text[2])
	}
	// HTML rendering of the same lines must not panic either.
	if body := HTMLBody(lines, testDate); !strings.Contains(body, EmptyReportMessage) {
		t.Error("HTML body missing empty-report message")
	}
}

func TestFormat_ChangeSignColoring(t *testing.T) {
	f := NewFormatter([]string{"AAPL", "GOOG", "MSFT"})
	records := []model.ChangeRecord{
		record("AAPL", 168.00, 170.50, model.RecommendBlank), // up
		record("GOOG", 145.00, 145.00, model.RecommendBlank), // flat
		record("MSFT", 380.00, 375.00, model.RecommendBlank), // down
	}
	lines := f.Format(records, testDate)
	rows := lines[3:]
	if got := rows[0].Cells[0].Color; got != model.ColorGreen {
		t.Errorf("positive change ticker color = %q, want green", got)
	}
	if got := rows[1].Cells[0].Color; got != model.ColorRed {
		t.Errorf("zero change ticker color = %q, want red", got)
	}
	if got := rows[2].Cells[0].Color; got != model.ColorRed {
		t.Errorf("negative change ticker color = %q, want red", got)
	}
}

func TestFormat_RecommendationColoring(t *testing.T) {
	f := NewFormatter([]string{"AAPL", "GOOG", "MSFT", "AMZN"})
	records := []model.ChangeRecord{
		record("AAPL", 168.00, 170.50, model.RecommendBuy),
		record("GOOG", 138.00, 145.00, model.RecommendSell),
		record("MSFT", 360.00, 380.00, model.RecommendHold),
		record("AMZN", 170.00, 180.00, model.RecommendationTag("wild")),
	}
	lines := f.Format(records, testDate)
	rows := lines[3:]
	last := len(Columns) - 1
	if got := rows[0].Cells[last].Color; got != model.ColorGreen {
		t.Errorf("buy color = %q, want green", got)
	}
	if got := rows[1].Cells[last].Color; got != model.ColorRed {
		t.Errorf("sell color = %q, want red", got)
	}
	if got := rows[2].Cells[last].Color; got != "" {
		t.Errorf("hold color = %q, want none", got)
	}
	if got := rows[3].Cells[last].Color; got != "" {
		t.Errorf("unknown tag color = %q, want none", got)
	}
}

func TestRenderHTML_Markup(t *testing.T) {
	f := NewFormatter([]string{"AAPL", "GOOG", "MSFT"})
	records := []model.ChangeRecord{record("GOOG", 138.00, 145.00, model.RecommendBuy)}
	html := RenderHTML(f.Format(records, testDate))

	if html[0] != "&nbsp;" {
		t.Errorf("spacer = %q, want &nbsp;", html[0])
	}
	if want := "Your stocks today Monday, March 04"; html[1] != want {
		t.Errorf("title = %q, want %q", html[1], want)
	}
	row := html[3]
	if !strings.Contains(row, `<span style="color:`+model.ColorGreen+`;"><strong>GOOG`) {
		t.Errorf("row missing green bold ticker: %q", row)
	}
	if !strings.Contains(row, "&nbsp;") {
		t.Errorf("row padding not rendered as &nbsp;: %q", row)
	}
	if !strings.Contains(row, `>buy</span>`) {
		t.Errorf("row missing styled recommendation: %q", row)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	f := NewFormatter([]string{"AAPL", "GOOG", "MSFT"})
	records := []model.ChangeRecord{
		record("AAPL", 168.00, 170.50, model.RecommendHold),
		record("GOOG", 138.00, 145.00, model.RecommendBuy),
	}
	first := HTMLBody(f.Format(records, testDate), testDate)
	second := HTMLBody(f.Format(records, testDate), testDate)
	if first != second {
		t.Error("repeated formatting produced different output")
	}
}

func TestHTMLBody_Document(t *testing.T) {
	f := NewFormatter([]string{"AAPL"})
	records := []model.ChangeRecord{record("AAPL", 168.00, 170.50, model.RecommendBlank)}
	body := HTMLBody(f.Format(records, testDate), testDate)

	if !strings.Contains(body, "Your Stocks Update for Monday, March 04") {
		t.Error("body missing dated heading")
	}
	if !strings.Contains(body, "<pre style=") {
		t.Error("body missing monospace block")
	}
}
