// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package bugzillaint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/l3montree-dev/updatehub/shared"
	"github.com/pkg/errors"
)

// BugzillaClient implements the ticket tracker gateway against a bugzilla
// style REST API. The service identity used for comments comes from the
// UPDATEHUB_EMAIL environment variable.
type BugzillaClient struct {
	baseURL    string
	apiKey     string
	email      string
	httpClient *http.Client
}

func NewBugzillaClient() *BugzillaClient {
	return &BugzillaClient{
		baseURL: os.Getenv("BUGZILLA_URL"),
		apiKey:  os.Getenv("BUGZILLA_API_KEY"),
		email:   os.Getenv("UPDATEHUB_EMAIL"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *BugzillaClient) do(ctx context.Context, method, path string, payload any, result any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return errors.Errorf("unexpected status %d: %s", resp.StatusCode, string(b))
	}
	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *BugzillaClient) GetTicket(ctx context.Context, id int) (shared.Ticket, error) {
	var ticket shared.Ticket
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rest/bug/%d", id), nil, &ticket); err != nil {
		return ticket, errors.Wrapf(err, "could not fetch ticket %d", id)
	}
	return ticket, nil
}

func (c *BugzillaClient) AddComment(ctx context.Context, id int, text string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/rest/bug/%d/comment", id), map[string]string{
		"comment": text,
		"author":  c.email,
	}, nil)
}

func (c *BugzillaClient) SetStatus(ctx context.Context, id int, status, comment string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/rest/bug/%d", id), map[string]string{
		"status":  status,
		"comment": comment,
	}, nil)
}

func (c *BugzillaClient) Close(ctx context.Context, id int, resolution, fixedInVersion string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/rest/bug/%d", id), map[string]string{
		"status":     "CLOSED",
		"resolution": resolution,
		"fixedIn":    fixedInVersion,
	}, nil)
}
