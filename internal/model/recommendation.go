package model

// Display colors shared by the report renderer.
const (
	ColorGreen = "#5d921c"
	ColorRed   = "#ff4411"
)

// RecommendationTag is an advisory label attached to a reported symbol.
// The tag is supplied as configuration, not derived from price data.
type RecommendationTag string

const (
	RecommendBlank RecommendationTag = ""
	RecommendHold  RecommendationTag = "hold"
	RecommendNone  RecommendationTag = "none"
	RecommendBuy   RecommendationTag = "buy"
	RecommendSell  RecommendationTag = "sell"
)

// Color returns the display color for the tag. Unknown or neutral tags get
// no color.
func (t RecommendationTag) Color() string {
	switch t {
	case RecommendBuy:
		return ColorGreen
	case RecommendSell:
		return ColorRed
	default:
		return ""
	}
}
