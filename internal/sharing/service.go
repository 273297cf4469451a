package sharing

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"calcsuite/internal/calculator"
)

// Service formats calculation results for social sharing.
type Service struct {
	baseURL string
}

func NewService(baseURL string) *Service {
	return &Service{baseURL: baseURL}
}

const shareHashtags = "Calculator,Health,Fitness,Education"

// ShareLinks carries platform-specific share URLs for one result.
type ShareLinks struct {
	Text     string `json:"text"`
	URL      string `json:"url"`
	WhatsApp string `json:"whatsapp"`
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	LinkedIn string `json:"linkedin"`
	Telegram string `json:"telegram"`
	Email    string `json:"email"`
}

// CardData describes a visual share card for one result.
type CardData struct {
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	MainValue   string   `json:"main_value"`
	Subtitle    string   `json:"subtitle"`
	Details     []string `json:"details"`
	ColorScheme string   `json:"color_scheme"`
}

// ShareText builds the one-line share message for a result.
func (s *Service) ShareText(calcType calculator.Type, results json.RawMessage) (string, error) {
	fields := map[string]any{}
	if err := json.Unmarshal(results, &fields); err != nil {
		return "", fmt.Errorf("decode results: %w", err)
	}

	switch calcType {
	case calculator.TypeBMI:
		return fmt.Sprintf("My BMI is %v (%v). Calculate yours!",
			fields["bmi"], fields["category"]), nil
	case calculator.TypeGPA:
		return fmt.Sprintf("I scored a %v GPA! Calculate yours!", fields["gpa"]), nil
	case calculator.TypeLoan:
		return fmt.Sprintf("My monthly EMI is %v. Plan your loan!", fields["emi"]), nil
	case calculator.TypeCalorie:
		return fmt.Sprintf("My daily calorie need is %v kcal. Find yours!", fields["calories"]), nil
	case calculator.TypeAttendance:
		return fmt.Sprintf("My attendance is %v%%. Track yours!", fields["percentage"]), nil
	case calculator.TypeGrade:
		return fmt.Sprintf("I scored %v%% (grade %v)! Calculate yours!",
			fields["percentage"], fields["grade"]), nil
	case calculator.TypePercentage:
		return fmt.Sprintf("My overall percentage is %v%%. Calculate yours!", fields["percentage"]), nil
	case calculator.TypeAge:
		return fmt.Sprintf("I am %v years, %v months and %v days old. Find your exact age!",
			fields["years"], fields["months"], fields["days"]), nil
	default:
		return fmt.Sprintf("I used the %s. Try it yourself!", calcType.DisplayName()), nil
	}
}

// Links builds share links for every supported platform.
func (s *Service) Links(calcType calculator.Type, results json.RawMessage) (ShareLinks, error) {
	text, err := s.ShareText(calcType, results)
	if err != nil {
		return ShareLinks{}, err
	}

	pageURL := s.baseURL + "/" + calcType.Slug()
	encodedText := url.QueryEscape(text)
	encodedURL := url.QueryEscape(pageURL)

	return ShareLinks{
		Text:     text,
		URL:      pageURL,
		WhatsApp: "https://wa.me/?text=" + url.QueryEscape(text+" "+pageURL),
		Twitter: "https://twitter.com/intent/tweet?text=" + encodedText +
			"&url=" + encodedURL + "&hashtags=" + shareHashtags,
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + encodedURL,
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + encodedURL,
		Telegram: "https://t.me/share/url?url=" + encodedURL + "&text=" + encodedText,
		Email:    "mailto:?subject=" + url.QueryEscape("Check out my result") + "&body=" + url.QueryEscape(text+"\n\n"+pageURL),
	}, nil
}

// Card builds the share card description for one result.
func (s *Service) Card(calcType calculator.Type, results json.RawMessage) (CardData, error) {
	fields := map[string]any{}
	if err := json.Unmarshal(results, &fields); err != nil {
		return CardData{}, fmt.Errorf("decode results: %w", err)
	}

	card := CardData{
		Title:       calcType.DisplayName(),
		Icon:        "🧮",
		ColorScheme: "#34495e",
		MainValue:   calcType.DisplayName(),
		Details:     detailLines(fields),
	}

	switch calcType {
	case calculator.TypeBMI:
		card.Icon, card.ColorScheme = "⚖️", "#3498db"
		card.MainValue = fmt.Sprintf("BMI %v", fields["bmi"])
		card.Subtitle = stringField(fields, "category")
	case calculator.TypeGPA:
		card.Icon, card.ColorScheme = "🎓", "#9b59b6"
		card.MainValue = fmt.Sprintf("GPA %v", fields["gpa"])
		card.Subtitle = stringField(fields, "grade")
	case calculator.TypeLoan:
		card.Icon, card.ColorScheme = "💰", "#27ae60"
		card.MainValue = fmt.Sprintf("EMI %v", fields["emi"])
		card.Subtitle = "per month"
	case calculator.TypeCalorie:
		card.Icon, card.ColorScheme = "🔥", "#e67e22"
		card.MainValue = fmt.Sprintf("%v kcal/day", fields["calories"])
		card.Subtitle = "to maintain your weight"
	case calculator.TypeAttendance:
		card.Icon, card.ColorScheme = "📊", "#e74c3c"
		card.MainValue = fmt.Sprintf("%v%% attendance", fields["percentage"])
		card.Subtitle = stringField(fields, "status")
	case calculator.TypeGrade:
		card.Icon, card.ColorScheme = "📝", "#f39c12"
		card.MainValue = fmt.Sprintf("Grade %v", fields["grade"])
		if percentage, ok := fields["percentage"]; ok {
			card.Subtitle = fmt.Sprintf("%v%%", percentage)
		}
	case calculator.TypePercentage:
		card.Icon, card.ColorScheme = "📈", "#16a085"
		card.MainValue = fmt.Sprintf("%v%%", fields["percentage"])
		card.Subtitle = "overall"
	}

	return card, nil
}

// detailLines renders the scalar result fields as display lines, sorted by
// field name.
func detailLines(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for key, value := range fields {
		switch value.(type) {
		case string, float64, bool:
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", labelize(key), fields[key]))
	}
	return lines
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

func stringField(fields map[string]any, key string) string {
	value, _ := fields[key].(string)
	return value
}

// CopyText builds the clipboard-ready text with hashtags and link.
func (s *Service) CopyText(calcType calculator.Type, results json.RawMessage) (string, error) {
	text, err := s.ShareText(calcType, results)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n📱 Calculate yours at: ")
	b.WriteString(s.baseURL + "/" + calcType.Slug())
	b.WriteString("\n\n")
	for _, tag := range strings.Split(shareHashtags, ",") {
		b.WriteString("#" + tag + " ")
	}
	return strings.TrimSpace(b.String()), nil
}
