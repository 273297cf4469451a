package calculator

import "sort"

// CurrencyRequest converts Amount from one currency to another. When
// Compare lists additional target currencies the result carries a row for
// each of them alongside the primary conversion.
type CurrencyRequest struct {
	Amount  float64  `json:"amount"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Compare []string `json:"compare,omitempty"`
}

type CurrencyComparison struct {
	Currency string  `json:"currency"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Rate     float64 `json:"rate"`
}

type CurrencyResult struct {
	Amount       float64              `json:"amount"`
	From         string               `json:"from"`
	To           string               `json:"to"`
	Converted    float64              `json:"converted"`
	ExchangeRate float64              `json:"exchange_rate"`
	InverseRate  float64              `json:"inverse_rate"`
	Comparisons  []CurrencyComparison `json:"comparisons,omitempty"`
}

type currencyInfo struct {
	Name string
	// Rate is units per 1 USD.
	Rate float64
}

// usdRates is a static snapshot. Live rates are out of scope, the table
// exists so conversions are deterministic and testable.
var usdRates = map[string]currencyInfo{
	"USD": {"US Dollar", 1.0},
	"EUR": {"Euro", 0.92},
	"GBP": {"British Pound", 0.79},
	"JPY": {"Japanese Yen", 149.50},
	"INR": {"Indian Rupee", 83.12},
	"AUD": {"Australian Dollar", 1.53},
	"CAD": {"Canadian Dollar", 1.36},
	"CHF": {"Swiss Franc", 0.88},
	"CNY": {"Chinese Yuan", 7.24},
	"SEK": {"Swedish Krona", 10.45},
	"NZD": {"New Zealand Dollar", 1.64},
	"MXN": {"Mexican Peso", 17.15},
	"SGD": {"Singapore Dollar", 1.34},
	"HKD": {"Hong Kong Dollar", 7.82},
	"NOK": {"Norwegian Krone", 10.60},
	"KRW": {"South Korean Won", 1320.50},
	"TRY": {"Turkish Lira", 28.95},
	"RUB": {"Russian Ruble", 92.50},
	"BRL": {"Brazilian Real", 4.97},
	"ZAR": {"South African Rand", 18.65},
	"AED": {"UAE Dirham", 3.67},
	"SAR": {"Saudi Riyal", 3.75},
	"THB": {"Thai Baht", 35.40},
	"PKR": {"Pakistani Rupee", 278.50},
}

func ComputeCurrency(req CurrencyRequest) (CurrencyResult, error) {
	if req.Amount <= 0 {
		return CurrencyResult{}, invalidf("amount", "must be positive")
	}
	from, ok := usdRates[req.From]
	if !ok {
		return CurrencyResult{}, invalidf("from", "unsupported currency %q", req.From)
	}
	to, ok := usdRates[req.To]
	if !ok {
		return CurrencyResult{}, invalidf("to", "unsupported currency %q", req.To)
	}

	// Conversions route through USD since all rates are USD-based.
	rate := to.Rate / from.Rate

	result := CurrencyResult{
		Amount:       req.Amount,
		From:         req.From,
		To:           req.To,
		Converted:    round2(req.Amount * rate),
		ExchangeRate: roundN(rate, 4),
		InverseRate:  roundN(1/rate, 4),
	}

	for _, code := range req.Compare {
		info, ok := usdRates[code]
		if !ok {
			return CurrencyResult{}, invalidf("compare", "unsupported currency %q", code)
		}
		r := info.Rate / from.Rate
		result.Comparisons = append(result.Comparisons, CurrencyComparison{
			Currency: code,
			Name:     info.Name,
			Amount:   round2(req.Amount * r),
			Rate:     roundN(r, 4),
		})
	}

	return result, nil
}

// SupportedCurrencies returns the catalog sorted by code.
func SupportedCurrencies() []CurrencyComparison {
	out := make([]CurrencyComparison, 0, len(usdRates))
	for code, info := range usdRates {
		out = append(out, CurrencyComparison{Currency: code, Name: info.Name, Rate: info.Rate})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}
