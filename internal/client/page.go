package client

import (
	"context"
	"encoding/json"
	"sync"

	"calcsuite/internal/advisor"
	"calcsuite/internal/calculator"
)

// PageStatus is the lifecycle of a calculator page.
type PageStatus string

const (
	StatusIdle            PageStatus = "idle"
	StatusSubmitting      PageStatus = "submitting"
	StatusResultDisplayed PageStatus = "result_displayed"
	StatusError           PageStatus = "error"
)

// Page drives one calculator form. Submissions are last-write-wins: if a
// second submit starts while an earlier one is in flight, the earlier
// response is discarded when it arrives.
type Page struct {
	client   *Client
	calcType calculator.Type

	mu     sync.Mutex
	status PageStatus
	seq    int
	inputs json.RawMessage
	result json.RawMessage
	err    error
}

func NewPage(client *Client, calcType calculator.Type) *Page {
	return &Page{
		client:   client,
		calcType: calcType,
		status:   StatusIdle,
	}
}

func (p *Page) Status() PageStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Result returns the displayed result, or nil before the first success.
func (p *Page) Result() json.RawMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

func (p *Page) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Submit sends the inputs to the server and updates the page state. It
// blocks until the response arrives or ctx is done.
func (p *Page) Submit(ctx context.Context, inputs any) error {
	encoded, err := json.Marshal(inputs)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.status = StatusSubmitting
	p.inputs = encoded
	p.mu.Unlock()

	result, err := p.client.Compute(ctx, p.calcType, json.RawMessage(encoded))

	p.mu.Lock()
	defer p.mu.Unlock()

	// A newer submit superseded this one, drop the response.
	if seq != p.seq {
		return nil
	}

	if err != nil {
		p.status = StatusError
		p.err = err
		return err
	}

	p.status = StatusResultDisplayed
	p.result = result
	p.err = nil
	return nil
}

// Reset returns the page to idle, clearing any result or error.
func (p *Page) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	p.status = StatusIdle
	p.inputs = nil
	p.result = nil
	p.err = nil
}

// Save persists the displayed result to history. It is a side operation
// and does not change the page status.
func (p *Page) Save(ctx context.Context) (string, error) {
	p.mu.Lock()
	inputs, result := p.inputs, p.result
	status := p.status
	p.mu.Unlock()

	if status != StatusResultDisplayed {
		return "", &APIError{StatusCode: 0, Message: "no result to save"}
	}

	return p.client.SaveHistory(ctx, p.calcType, inputs, result)
}

// Share fetches share links for the displayed result. Like Save it leaves
// the page status alone.
func (p *Page) Share(ctx context.Context) (any, error) {
	p.mu.Lock()
	result := p.result
	status := p.status
	p.mu.Unlock()

	if status != StatusResultDisplayed {
		return nil, &APIError{StatusCode: 0, Message: "no result to share"}
	}

	return p.client.ShareLinks(ctx, p.calcType, result)
}

// Explain fetches the advisor's breakdown of the displayed result. Advice
// is a side operation, a failure here never touches the displayed result.
func (p *Page) Explain(ctx context.Context) (advisor.Explanation, error) {
	p.mu.Lock()
	inputs, result := p.inputs, p.result
	status := p.status
	p.mu.Unlock()

	if status != StatusResultDisplayed {
		return advisor.Explanation{}, &APIError{StatusCode: 0, Message: "no result to explain"}
	}

	return p.client.Explain(ctx, p.calcType, result, inputs)
}

// Download fetches the PDF report for the displayed result.
func (p *Page) Download(ctx context.Context) (PDFReport, error) {
	p.mu.Lock()
	result := p.result
	status := p.status
	p.mu.Unlock()

	if status != StatusResultDisplayed {
		return PDFReport{}, &APIError{StatusCode: 0, Message: "no result to download"}
	}

	return p.client.DownloadPDF(ctx, p.calcType, result)
}
