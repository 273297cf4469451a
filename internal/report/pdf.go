package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"calcsuite/internal/calculator"
)

// Generator renders calculation results as downloadable PDF reports.
type Generator struct {
	conf *model.Configuration
}

func NewGenerator() *Generator {
	return &Generator{conf: model.NewDefaultConfiguration()}
}

// pageDescription is the JSON form pdfcpu's create API consumes.
type pageDescription struct {
	Pages map[string]page `json:"pages"`
}

type page struct {
	Content content `json:"content"`
}

type content struct {
	Text []textBox `json:"text"`
}

type textBox struct {
	Value    string   `json:"value"`
	Anchor   string   `json:"anchor"`
	Dx       float64  `json:"dx,omitempty"`
	Dy       float64  `json:"dy,omitempty"`
	Font     fontSpec `json:"font"`
	Position []int    `json:"position,omitempty"`
}

type fontSpec struct {
	Name  string  `json:"name"`
	Size  int     `json:"size"`
	Color string  `json:"color,omitempty"`
	Scale float64 `json:"scale,omitempty"`
}

// Generate builds a one-page report for the given result and returns the
// PDF bytes plus the download filename.
func (g *Generator) Generate(calcType calculator.Type, results json.RawMessage) ([]byte, string, error) {
	fields := map[string]any{}
	if err := json.Unmarshal(results, &fields); err != nil {
		return nil, "", fmt.Errorf("decode results: %w", err)
	}

	desc, err := json.Marshal(buildPage(calcType, fields))
	if err != nil {
		return nil, "", fmt.Errorf("marshal page description: %w", err)
	}

	var out bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(desc), &out, g.conf); err != nil {
		return nil, "", fmt.Errorf("render pdf: %w", err)
	}

	return out.Bytes(), Filename(calcType, time.Now()), nil
}

// Filename builds the Content-Disposition filename for a report.
func Filename(calcType calculator.Type, now time.Time) string {
	name := strings.ReplaceAll(calcType.DisplayName(), " ", "_")
	return fmt.Sprintf("%s_Report_%s.pdf", name, now.Format("20060102"))
}

func buildPage(calcType calculator.Type, fields map[string]any) pageDescription {
	boxes := []textBox{
		{
			Value:  calcType.DisplayName() + " Report",
			Anchor: "tc",
			Dy:     -40,
			Font:   fontSpec{Name: "Helvetica-Bold", Size: 20, Color: "#2c3e50"},
		},
		{
			Value:  "Generated " + time.Now().Format("January 2, 2006"),
			Anchor: "tc",
			Dy:     -70,
			Font:   fontSpec{Name: "Helvetica", Size: 10, Color: "#7f8c8d"},
		},
	}

	// Scalar fields only, nested structures do not fit a summary page.
	keys := make([]string, 0, len(fields))
	for key, value := range fields {
		switch value.(type) {
		case string, float64, bool:
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	y := -120.0
	for _, key := range keys {
		boxes = append(boxes, textBox{
			Value:  fmt.Sprintf("%s: %v", labelize(key), fields[key]),
			Anchor: "tl",
			Dx:     60,
			Dy:     y,
			Font:   fontSpec{Name: "Helvetica", Size: 12, Color: "#2c3e50"},
		})
		y -= 24
	}

	return pageDescription{Pages: map[string]page{
		"1": {Content: content{Text: boxes}},
	}}
}

// labelize turns a snake_case field name into a title-case label.
func labelize(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
