// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package kojiint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	version "github.com/knqyf263/go-rpm-version"
	"github.com/l3montree-dev/updatehub/shared"
	"github.com/pkg/errors"
)

// KojiClient talks to the build-tag system over its JSON HTTP API.
type KojiClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewKojiClient() *KojiClient {
	return &KojiClient{
		baseURL: os.Getenv("KOJI_URL"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *KojiClient) get(ctx context.Context, path string, query url.Values, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *KojiClient) post(ctx context.Context, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		b, _ := io.ReadAll(resp.Body)
		return errors.Errorf("unexpected status %d: %s", resp.StatusCode, string(b))
	}
	return nil
}

func (c *KojiClient) GetBuild(ctx context.Context, nvr string) (shared.BuildInfo, error) {
	var build shared.BuildInfo
	if err := c.get(ctx, "/build/"+url.PathEscape(nvr), nil, &build); err != nil {
		return build, errors.Wrap(err, "could not fetch build")
	}
	return build, nil
}

func (c *KojiClient) GetLatestBuilds(ctx context.Context, tag, pkg string) ([]shared.BuildInfo, error) {
	return c.ListTagged(ctx, tag, pkg, true)
}

func (c *KojiClient) ListTagged(ctx context.Context, tag, pkg string, latest bool) ([]shared.BuildInfo, error) {
	query := url.Values{}
	if pkg != "" {
		query.Set("package", pkg)
	}
	if latest {
		query.Set("latest", "true")
	}
	var builds []shared.BuildInfo
	if err := c.get(ctx, "/tag/"+url.PathEscape(tag)+"/tagged", query, &builds); err != nil {
		return nil, errors.Wrap(err, "could not list tagged builds")
	}
	return builds, nil
}

func (c *KojiClient) TagBuild(ctx context.Context, tag, nvr string) error {
	return c.post(ctx, fmt.Sprintf("/tag/%s/%s", url.PathEscape(tag), url.PathEscape(nvr)), nil)
}

func (c *KojiClient) UntagBuild(ctx context.Context, tag, nvr string) error {
	return c.post(ctx, fmt.Sprintf("/untag/%s/%s", url.PathEscape(tag), url.PathEscape(nvr)), nil)
}

func (c *KojiClient) MoveBuild(ctx context.Context, fromTag, toTag, nvr string) error {
	return c.post(ctx, "/move", map[string]string{
		"fromTag": fromTag,
		"toTag":   toTag,
		"nvr":     nvr,
	})
}

// CompareVersionRelease orders two builds the way rpm does, including the
// epoch. It never falls back to a plain string compare.
func (c *KojiClient) CompareVersionRelease(a, b shared.BuildInfo) int {
	left := version.NewVersion(fmt.Sprintf("%d:%s-%s", a.Epoch, a.Version, a.Release))
	right := version.NewVersion(fmt.Sprintf("%d:%s-%s", b.Epoch, b.Version, b.Release))
	return left.Compare(right)
}
