// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package mailint

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/l3montree-dev/updatehub/shared"
	"github.com/pkg/errors"
)

// MailQueueClient enqueues rendered notifications on the mail queue
// service. Delivery happens asynchronously on the other side.
type MailQueueClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewMailQueueClient() *MailQueueClient {
	return &MailQueueClient{
		baseURL: os.Getenv("MAIL_QUEUE_URL"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type enqueueRequest struct {
	Recipients []string       `json:"recipients"`
	Template   string         `json:"template"`
	Context    map[string]any `json:"context"`
}

func (c *MailQueueClient) Enqueue(ctx context.Context, recipients []string, template string, templateContext map[string]any) error {
	b, err := json.Marshal(enqueueRequest{
		Recipients: recipients,
		Template:   template,
		Context:    templateContext,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/enqueue", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return errors.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

var _ shared.NotificationGateway = (*MailQueueClient)(nil)
