package report

// Column describes one report column. The schema is declared statically and
// is never inferred from the records being rendered.
type Column struct {
	Label string
	Right bool // right-justified when padded
}

// Columns is the report column schema, recommendation last.
var Columns = []Column{
	{Label: "stock"},
	{Label: "before_close", Right: true},
	{Label: "latest_close", Right: true},
	{Label: "change", Right: true},
	{Label: "change_percent", Right: true},
	{Label: "recommendation", Right: true},
}

// Cell is one styled report cell. Pad is the number of fill characters needed
// to reach the column width; how the fill renders depends on the output
// format (plain spaces for text, non-breaking spaces for HTML).
type Cell struct {
	Text  string
	Pad   int
	Right bool
	Color string
	Bold  bool
}

// Line is one report row. A line without cells is a plain text line
// (spacer, title, or the empty-report message).
type Line struct {
	Cells []Cell
	Text  string
}
