package domain

// ChartSpec is chart-ready data attached to an answer when the matched intent
// has something to plot. Labels and Values are index-aligned.
type ChartSpec struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Answer is the Query Responder output: formatted text plus optional chart data.
type Answer struct {
	Text  string     `json:"text"`
	Chart *ChartSpec `json:"chart,omitempty"`
}
