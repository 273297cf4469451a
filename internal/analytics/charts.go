package analytics

// ChartDataset is one renderable series in a chart.
type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"border_color,omitempty"`
	BackgroundColor []string  `json:"background_color,omitempty"`
	Fill            bool      `json:"fill"`
}

// Annotation marks a horizontal reference line on a chart.
type Annotation struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

// ChartData is a chart description the web client renders directly.
type ChartData struct {
	Type        string         `json:"type"`
	Labels      []string       `json:"labels"`
	Datasets    []ChartDataset `json:"datasets"`
	YAxisMin    *float64       `json:"y_axis_min,omitempty"`
	YAxisMax    *float64       `json:"y_axis_max,omitempty"`
	Annotations []Annotation   `json:"annotations,omitempty"`
	CenterText  string         `json:"center_text,omitempty"`
}

func yAxis(min, max float64) (*float64, *float64) {
	return &min, &max
}
