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

	"github.com/danielhkuo/classroom-quorum/models"
)

// ErrUnexpectedStatus is wrapped by every error caused by a non-2xx response
var ErrUnexpectedStatus = errors.New("unexpected status")

const apiPrefix = "/api/classroom"

// Client is a typed client for the classroom API
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL. A nil httpClient gets a
// default with a 10s timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) Status(ctx context.Context) (bool, error) {
	var inSession bool
	err := c.do(ctx, http.MethodGet, "/status", nil, &inSession)
	return inSession, err
}

func (c *Client) UniqueID(ctx context.Context) (int, error) {
	var id int
	err := c.do(ctx, http.MethodGet, "/getUniqueId", nil, &id)
	return id, err
}

func (c *Client) EnoughStudents(ctx context.Context) (bool, error) {
	var enough bool
	err := c.do(ctx, http.MethodGet, "/enoughstudents", nil, &enough)
	return enough, err
}

func (c *Client) Join(ctx context.Context, t models.Teacher) (models.Teacher, error) {
	var stored models.Teacher
	err := c.do(ctx, http.MethodPost, "/join", t, &stored)
	return stored, err
}

// VoteStart reports whether t's vote started the class
func (c *Client) VoteStart(ctx context.Context, t models.Teacher) (bool, error) {
	var started bool
	err := c.do(ctx, http.MethodPost, "/vote/start", t, &started)
	return started, err
}

// VoteEnd reports whether t's vote ended the class
func (c *Client) VoteEnd(ctx context.Context, t models.Teacher) (bool, error) {
	var ended bool
	err := c.do(ctx, http.MethodPost, "/vote/end", t, &ended)
	return ended, err
}

// Generate reports a door's student delta
func (c *Client) Generate(ctx context.Context, d models.Door) error {
	return c.do(ctx, http.MethodPost, "/generate", d, nil)
}

func (c *Client) Session(ctx context.Context) (models.SessionSnapshot, error) {
	var snap models.SessionSnapshot
	err := c.do(ctx, http.MethodGet, "/session", nil, &snap)
	return snap, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp models.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("%w: %s %s: %d %s", ErrUnexpectedStatus, method, path, resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("%w: %s %s: %d", ErrUnexpectedStatus, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
