// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/danielhkuo/contractflow/models"
	"github.com/danielhkuo/contractflow/store"
)

const defaultTimeout = 15 * time.Second

// Client talks to a contractflow server.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Projects() store.Repository[models.Project] {
	return &resource[models.Project]{c: c, path: "/api/projects", entity: store.EntityProject}
}

func (c *Client) Contractors() store.Repository[models.Contractor] {
	return &resource[models.Contractor]{c: c, path: "/api/contractors", entity: store.EntityContractor}
}

func (c *Client) AdvancePayments() store.Repository[models.AdvancePayment] {
	return &resource[models.AdvancePayment]{c: c, path: "/api/advance-payments", entity: store.EntityAdvancePayment}
}

func (c *Client) BillPayments() store.Repository[models.BillPayment] {
	return &resource[models.BillPayment]{c: c, path: "/api/bill-payments", entity: store.EntityBillPayment}
}

func (c *Client) Adjustments() store.Repository[models.Adjustment] {
	return &resource[models.Adjustment]{c: c, path: "/api/adjustments", entity: store.EntityAdjustment}
}

// Summary fetches the dashboard aggregate.
func (c *Client) Summary(ctx context.Context) (models.Summary, error) {
	var s models.Summary
	if err := c.do(ctx, http.MethodGet, "/api/reports/summary", store.EntityReport, nil, &s); err != nil {
		return models.Summary{}, err
	}
	return s, nil
}

// RecentPayments fetches the latest bill payments. The server decides how
// many.
func (c *Client) RecentPayments(ctx context.Context) ([]models.RecentPayment, error) {
	out := make([]models.RecentPayment, 0)
	if err := c.do(ctx, http.MethodGet, "/api/reports/recent-payments", store.EntityReport, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// resource is the HTTP implementation of store.Repository for one entity.
type resource[T any] struct {
	c      *Client
	path   string
	entity string
}

// createdID accepts both {insertId} (projects) and {id}.
type createdID struct {
	ID       int64 `json:"id"`
	InsertID int64 `json:"insertId"`
}

func (r *resource[T]) Create(ctx context.Context, rec *T) (int64, error) {
	var resp createdID
	if err := r.c.do(ctx, http.MethodPost, r.path, r.entity, rec, &resp); err != nil {
		return 0, err
	}
	if resp.InsertID != 0 {
		return resp.InsertID, nil
	}
	return resp.ID, nil
}

func (r *resource[T]) ListAll(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	if err := r.c.do(ctx, http.MethodGet, r.path, r.entity, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path, entity string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", entity, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &store.Error{Kind: store.ErrStorage, Entity: entity, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(entity, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &store.Error{Kind: store.ErrStorage, Entity: entity, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// decodeError rebuilds a typed error from the server's error code and the
// failing field, when present.
func decodeError(entity string, resp *http.Response) error {
	var body models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &store.Error{Kind: store.ErrStorage, Entity: entity, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	return &store.Error{
		Kind:       kindFor(body.Code),
		Entity:     entity,
		Field:      body.Field,
		Err:        &StatusError{Status: resp.StatusCode, Code: body.Code, Message: msg},
	}
}

func kindFor(code string) error {
	switch code {
	case models.CodeForeignKey:
		return store.ErrForeignKey
	case models.CodeDuplicate:
		return store.ErrDuplicate
	case models.CodeValidation, models.CodeInvalidJSON:
		return store.ErrValidation
	default:
		return store.ErrStorage
	}
}

// StatusError is the server's error response.
type StatusError struct {
	Status  int
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// Message returns the server's message for a failed call, or "".
func Message(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
