package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxErrorBody caps how much of a failed response ends up in an APIError.
const maxErrorBody = 512

// Client talks to the Memos v1 REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a Memos client. A zero timeout means none.
func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// APIError is a non-200 answer from Memos.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("memos: %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

// CreateMemo posts a new memo.
func (c *Client) CreateMemo(ctx context.Context, req CreateMemoRequest) (*Memo, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("memos: encode memo: %w", err)
	}

	var memo Memo
	if err := c.do(ctx, "create", http.MethodPost, "/api/v1/memos", bytes.NewReader(body), &memo); err != nil {
		return nil, err
	}
	return &memo, nil
}

// ListMemos returns up to limit memos carrying tag. The leading '#' is optional.
func (c *Client) ListMemos(ctx context.Context, tag string, limit int) ([]Memo, error) {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(limit))
	if tag != "" {
		q.Set("filter", fmt.Sprintf("tag in [%q]", strings.TrimPrefix(tag, "#")))
	}

	var out struct {
		Memos []Memo `json:"memos"`
	}
	if err := c.do(ctx, "list", http.MethodGet, "/api/v1/memos?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Memos, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("memos: %s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("memos: %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("memos: %s: decode response: %w", op, err)
	}
	return nil
}

// CreateMemoRequest is the body for POST /api/v1/memos.
type CreateMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// Memo is the subset of the Memos memo resource this service reads.
type Memo struct {
	Name       string `json:"name"`
	UID        string `json:"uid"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
}
