package palette

import (
	"strings"

	"calcsuite/internal/calculator"
)

// Item is one command palette entry.
type Item struct {
	Type     calculator.Type `json:"type"`
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	URL      string          `json:"url"`
	Icon     string          `json:"icon"`
	Keywords []string        `json:"keywords"`
}

// keywordsByType supplements the display name with search terms users
// actually type.
var keywordsByType = map[calculator.Type][]string{
	calculator.TypeBMI:              {"body mass index", "weight", "health"},
	calculator.TypeBMR:              {"metabolic rate", "metabolism", "health"},
	calculator.TypeLoan:             {"emi", "finance", "borrow", "interest"},
	calculator.TypeMortgage:         {"home loan", "house", "finance", "property"},
	calculator.TypeCompoundInterest: {"investment", "savings", "finance", "growth"},
	calculator.TypeDiscount:         {"sale", "price", "savings", "shopping"},
	calculator.TypeCurrency:         {"exchange rate", "forex", "money", "convert"},
	calculator.TypeAge:              {"birthday", "date", "years"},
	calculator.TypeGPA:              {"grades", "college", "academic", "semester"},
	calculator.TypeGrade:            {"marks", "exam", "score", "percentage"},
	calculator.TypePercentage:       {"marks", "subjects", "score"},
	calculator.TypeAttendance:       {"classes", "college", "bunk"},
	calculator.TypeCalorie:          {"diet", "food", "tdee", "nutrition"},
	calculator.TypeCalorieBurn:      {"exercise", "workout", "activity", "met"},
	calculator.TypeMacros:           {"protein", "carbs", "fat", "nutrition"},
	calculator.TypeWaterIntake:      {"hydration", "drink", "health"},
	calculator.TypeSleep:            {"bedtime", "wake", "cycles", "rest"},
	calculator.TypePregnancy:        {"due date", "baby", "trimester"},
	calculator.TypeUnit:             {"length", "weight", "temperature", "convert"},
	calculator.TypeMath:             {"expression", "scientific", "arithmetic"},
}

var iconsByType = map[calculator.Type]string{
	calculator.TypeBMI:              "⚖️",
	calculator.TypeBMR:              "🫀",
	calculator.TypeLoan:             "💰",
	calculator.TypeMortgage:         "🏠",
	calculator.TypeCompoundInterest: "📈",
	calculator.TypeDiscount:         "🏷️",
	calculator.TypeCurrency:         "💱",
	calculator.TypeAge:              "🎂",
	calculator.TypeGPA:              "🎓",
	calculator.TypeGrade:            "📝",
	calculator.TypePercentage:       "📈",
	calculator.TypeAttendance:       "📊",
	calculator.TypeCalorie:          "🔥",
	calculator.TypeCalorieBurn:      "🏃",
	calculator.TypeMacros:           "🥗",
	calculator.TypeWaterIntake:      "💧",
	calculator.TypeSleep:            "😴",
	calculator.TypePregnancy:        "🤰",
	calculator.TypeUnit:             "📏",
	calculator.TypeMath:             "🧮",
}

// Catalog returns every palette item in catalog order.
func Catalog() []Item {
	items := make([]Item, 0, len(calculator.AllTypes))
	for _, t := range calculator.AllTypes {
		items = append(items, Item{
			Type:     t,
			Name:     t.DisplayName(),
			Slug:     t.Slug(),
			URL:      "/" + t.Slug(),
			Icon:     iconsByType[t],
			Keywords: keywordsByType[t],
		})
	}
	return items
}

// Filter returns the items whose name or keywords contain the query,
// case-insensitively. An empty query returns the full catalog.
func Filter(items []Item, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	matched := []Item{}
	for _, item := range items {
		if matches(item, query) {
			matched = append(matched, item)
		}
	}
	return matched
}

func matches(item Item, query string) bool {
	if strings.Contains(strings.ToLower(item.Name), query) {
		return true
	}
	for _, keyword := range item.Keywords {
		if strings.Contains(strings.ToLower(keyword), query) {
			return true
		}
	}
	return false
}

// State models an open command palette with keyboard selection.
type State struct {
	catalog       []Item
	query         string
	open          bool
	selectedIndex int
}

func NewState() *State {
	return &State{catalog: Catalog()}
}

func (s *State) Open() {
	s.open = true
	s.selectedIndex = 0
}

// Close hides the palette and clears the query so the next open starts
// fresh.
func (s *State) Close() {
	s.open = false
	s.query = ""
	s.selectedIndex = 0
}

func (s *State) IsOpen() bool {
	return s.open
}

func (s *State) Query() string {
	return s.query
}

// SetQuery updates the filter and resets the selection to the top.
func (s *State) SetQuery(query string) {
	s.query = query
	s.selectedIndex = 0
}

// Visible returns the items matching the current query.
func (s *State) Visible() []Item {
	return Filter(s.catalog, s.query)
}

// MoveSelection shifts the highlighted row by delta, clamped to the
// visible range.
func (s *State) MoveSelection(delta int) {
	s.selectedIndex = clamp(s.selectedIndex+delta, len(s.Visible()))
}

// SelectedIndex is always a valid index into Visible, or 0 when nothing
// matches.
func (s *State) SelectedIndex() int {
	return clamp(s.selectedIndex, len(s.Visible()))
}

// Selected returns the highlighted item, or false when nothing matches.
func (s *State) Selected() (Item, bool) {
	visible := s.Visible()
	if len(visible) == 0 {
		return Item{}, false
	}
	return visible[s.SelectedIndex()], true
}

func clamp(index, length int) int {
	if length == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}
