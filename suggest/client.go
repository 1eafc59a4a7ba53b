package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	internalstrings "github.com/amonks/devflow/internal/strings"
	"github.com/amonks/devflow/task"
)

// DefaultTimeout bounds a single suggestion request.
const DefaultTimeout = 30 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Option configures a client.
type Option func(*base)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(b *base) {
		if c != nil {
			b.client = c
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(b *base) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// WithHeaders adds headers sent with every request.
func WithHeaders(h map[string]string) Option {
	return func(b *base) {
		for k, v := range h {
			b.headers[k] = v
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *base) {
		if log != nil {
			b.log = log
		}
	}
}

type base struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
	headers  map[string]string
	log      *zap.Logger
}

func newBase(endpoint string, opts []Option) base {
	b := base{
		endpoint: normalizeEndpoint(endpoint),
		client:   &http.Client{},
		timeout:  DefaultTimeout,
		headers:  make(map[string]string),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func normalizeEndpoint(addr string) string {
	addr = internalstrings.TrimTrailingSlash(strings.TrimSpace(addr))
	if addr == "" {
		return ""
	}
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	return addr
}

// Configured reports whether the client has an endpoint.
func (b *base) Configured() bool {
	return b.endpoint != ""
}

// do sends req and returns the body of a 2xx response. Non-2xx responses and
// HTML bodies become errors.
func (b *base) do(req *http.Request) ([]byte, error) {
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := b.client.Do(req)
	if err != nil {
		b.log.Warn("suggestion request failed", zap.String("url", req.URL.Redacted()), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	b.log.Debug("suggestion response",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, Excerpt: excerpt(body)}
	}
	if IsHTML(body) {
		return nil, &PayloadError{Kind: ErrHTMLResponse, Excerpt: excerpt(body)}
	}
	return body, nil
}

func (b *base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, b.timeout)
}

// LearningClient asks the learning service for resources related to a
// question.
type LearningClient struct {
	base
}

// NewLearningClient creates a client for the given endpoint. An empty
// endpoint yields a client whose calls fail with ErrNotConfigured.
func NewLearningClient(endpoint string, opts ...Option) *LearningClient {
	return &LearningClient{base: newBase(endpoint, opts)}
}

// Recommend sends question as a query parameter and returns the resources
// in the response. A JSON object is treated as a single resource.
func (c *LearningClient) Recommend(ctx context.Context, question string) ([]Recommendation, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse learning url: %w", err)
	}
	q := u.Query()
	q.Set("question", question)
	u.RawQuery = q.Encode()

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return decodeRecommendations(body)
}

func decodeRecommendations(body []byte) ([]Recommendation, error) {
	trimmed := bytes.TrimSpace(body)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		var items []Recommendation
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, &PayloadError{Kind: ErrUnexpectedPayload, Excerpt: excerpt(body), Err: err}
		}
		return items, nil
	case bytes.HasPrefix(trimmed, []byte("{")):
		var item Recommendation
		if err := json.Unmarshal(trimmed, &item); err != nil {
			return nil, &PayloadError{Kind: ErrUnexpectedPayload, Excerpt: excerpt(body), Err: err}
		}
		return []Recommendation{item}, nil
	default:
		return nil, &PayloadError{Kind: ErrUnexpectedPayload, Excerpt: excerpt(body)}
	}
}

// PlannerClient asks the planning service for suggestions about the current
// task list.
type PlannerClient struct {
	base
}

// NewPlannerClient creates a client for the given endpoint.
func NewPlannerClient(endpoint string, opts ...Option) *PlannerClient {
	return &PlannerClient{base: newBase(endpoint, opts)}
}

type planRequest struct {
	Tasks []task.Task `json:"tasks"`
}

// Plan posts the task list and returns the suggestions in the response.
// The response may be a bare array or an object holding the array under
// "suggestions" or "data"; any other object yields no suggestions.
func (c *PlannerClient) Plan(ctx context.Context, tasks []task.Task) ([]PlanSuggestion, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	payload, err := json.Marshal(planRequest{Tasks: tasks})
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return decodePlan(body)
}

func decodePlan(body []byte) ([]PlanSuggestion, error) {
	trimmed := bytes.TrimSpace(body)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var items []PlanSuggestion
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, &PayloadError{Kind: ErrUnexpectedPayload, Excerpt: excerpt(body), Err: err}
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, &PayloadError{Kind: ErrUnexpectedPayload, Excerpt: excerpt(body), Err: err}
	}
	for _, key := range []string{"suggestions", "data"} {
		raw, ok := envelope[key]
		if !ok || !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
			continue
		}
		var items []PlanSuggestion
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, &PayloadError{Kind: ErrUnexpectedPayload, Excerpt: excerpt(body), Err: err}
		}
		return items, nil
	}
	return []PlanSuggestion{}, nil
}

// IsHTML reports whether body looks like an HTML document rather than JSON.
func IsHTML(body []byte) bool {
	trimmed := strings.ToLower(string(bytes.TrimSpace(body[:min(len(body), 512)])))
	return strings.HasPrefix(trimmed, "<!doctype html") || strings.HasPrefix(trimmed, "<html")
}

func excerpt(body []byte) string {
	return internalstrings.Excerpt(string(body), ExcerptLength)
}
