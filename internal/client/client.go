package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"calcsuite/internal/advisor"
	"calcsuite/internal/analytics"
	"calcsuite/internal/calculator"
	"calcsuite/internal/history"
	"calcsuite/internal/report"
	"calcsuite/internal/sharing"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// NetworkError wraps a transport failure before any response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client talks to the calculator API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.Error == "" {
		body.Error = resp.Status
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
}

// Compute runs a calculation server-side.
func (c *Client) Compute(ctx context.Context, calcType calculator.Type, inputs any) (json.RawMessage, error) {
	var result json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/"+calcType.Slug(), inputs, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SaveHistory stores a completed calculation and returns the entry id.
func (c *Client) SaveHistory(ctx context.Context, calcType calculator.Type, inputs, results json.RawMessage) (string, error) {
	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/history/save", map[string]any{
		"calculator_type": string(calcType),
		"inputs":          inputs,
		"results":         results,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

// History fetches saved entries, newest first.
func (c *Client) History(ctx context.Context) ([]history.Entry, error) {
	var resp struct {
		History []history.Entry `json:"history"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/history/get", nil, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// DeleteHistory removes one entry by id.
func (c *Client) DeleteHistory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/history/delete/"+id, nil, nil)
}

// ClearHistory removes all entries, or only those of the given type when
// calcType is non-empty. A previously fetched history list is stale after
// this call.
func (c *Client) ClearHistory(ctx context.Context, calcType string) error {
	path := "/api/history/clear"
	if calcType != "" {
		path += "?calculator_type=" + url.QueryEscape(calcType)
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// MonthlySummary fetches the current month's aggregate.
func (c *Client) MonthlySummary(ctx context.Context) (history.MonthlySummary, error) {
	var summary history.MonthlySummary
	err := c.do(ctx, http.MethodGet, "/api/history/monthly-summary", nil, &summary)
	return summary, err
}

// Trends fetches the analytics trend series.
func (c *Client) Trends(ctx context.Context) ([]analytics.Trend, error) {
	var resp struct {
		Trends []analytics.Trend `json:"trends"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/analytics/trends", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Trends, nil
}

// ShareLinks fetches the share URLs for one result.
func (c *Client) ShareLinks(ctx context.Context, calcType calculator.Type, results json.RawMessage) (sharing.ShareLinks, error) {
	var links sharing.ShareLinks
	err := c.do(ctx, http.MethodPost, "/api/share/links", map[string]any{
		"calculator_type": string(calcType),
		"results":         results,
	}, &links)
	return links, err
}

// Chat sends a free-text question to the advisor. calcType names the
// calculator page the question was asked from and may be empty.
func (c *Client) Chat(ctx context.Context, message, calcType string) (string, error) {
	var resp struct {
		Response string `json:"response"`
	}
	err := c.do(ctx, http.MethodPost, "/api/ai/chat", map[string]string{
		"message":         message,
		"calculator_type": calcType,
	}, &resp)
	return resp.Response, err
}

// Explain fetches the advisor's breakdown of one result.
func (c *Client) Explain(ctx context.Context, calcType calculator.Type, result, inputs json.RawMessage) (advisor.Explanation, error) {
	var explanation advisor.Explanation
	err := c.do(ctx, http.MethodPost, "/api/ai/explain", map[string]any{
		"calculator_type": string(calcType),
		"result":          result,
		"inputs":          inputs,
	}, &explanation)
	return explanation, err
}

// ChartData fetches the chart payload for one calculator.
func (c *Client) ChartData(ctx context.Context, calcType calculator.Type) (analytics.ChartData, error) {
	var chart analytics.ChartData
	err := c.do(ctx, http.MethodGet, "/api/analytics/chart/"+calcType.Slug(), nil, &chart)
	return chart, err
}

// Insights fetches observations and recommendations, optionally for one
// calculator type.
func (c *Client) Insights(ctx context.Context, calcType string) ([]string, []string, error) {
	path := "/api/analytics/insights"
	if calcType != "" {
		path += "?calculator_type=" + url.QueryEscape(calcType)
	}

	var resp struct {
		Insights        []string `json:"insights"`
		Recommendations []string `json:"recommendations"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Insights, resp.Recommendations, nil
}

// ShareCard fetches the card payload for one result.
func (c *Client) ShareCard(ctx context.Context, calcType calculator.Type, results json.RawMessage) (sharing.CardData, error) {
	var card sharing.CardData
	err := c.do(ctx, http.MethodPost, "/api/share/card-data", map[string]any{
		"calculator_type": string(calcType),
		"results":         results,
	}, &card)
	return card, err
}

// CopyText fetches the clipboard text for one result.
func (c *Client) CopyText(ctx context.Context, calcType calculator.Type, results json.RawMessage) (string, error) {
	var resp struct {
		Text string `json:"text"`
	}
	err := c.do(ctx, http.MethodPost, "/api/share/copy-text", map[string]any{
		"calculator_type": string(calcType),
		"results":         results,
	}, &resp)
	return resp.Text, err
}

// BMIRecommendations fetches diet and workout advice for a BMI value.
func (c *Client) BMIRecommendations(ctx context.Context, bmi float64) (advisor.BMIRecommendation, error) {
	var rec advisor.BMIRecommendation
	err := c.do(ctx, http.MethodPost, "/api/ai/bmi-recommendations",
		map[string]float64{"bmi": bmi}, &rec)
	return rec, err
}

// PDFReport is a downloaded report with its suggested filename.
type PDFReport struct {
	Filename string
	Data     []byte
}

// DownloadPDF fetches the PDF report for one result. The filename comes
// from the Content-Disposition header, falling back to the same
// {Calculator}_Report_{date}.pdf name the server generates.
func (c *Client) DownloadPDF(ctx context.Context, calcType calculator.Type, results json.RawMessage) (PDFReport, error) {
	encoded, err := json.Marshal(map[string]any{"results": results})
	if err != nil {
		return PDFReport{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/pdf/"+calcType.Slug(), bytes.NewReader(encoded))
	if err != nil {
		return PDFReport{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return PDFReport{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PDFReport{}, decodeAPIError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return PDFReport{}, fmt.Errorf("read pdf: %w", err)
	}

	filename := report.Filename(calcType, time.Now())
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				filename = name
			}
		}
	}

	return PDFReport{Filename: filename, Data: data}, nil
}
