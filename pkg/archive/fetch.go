package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// doRaw executes one HTTP request against the archive and returns the
// response. The caller owns the body. route is the path without the base URL;
// it doubles as the label reported to the observer, so callers pass a
// template like "/series/{id}" rather than the expanded path when the path
// carries an identifier.
func (c *Client) doRaw(ctx context.Context, method, path, route string, body io.Reader, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(route, method, 0, started, err)
		return nil, fmt.Errorf("http error: %w", err)
	}
	c.observe(route, method, resp.StatusCode, started, nil)
	return resp, nil
}

// getJSON fetches path and decodes the response into out. Non-2xx statuses
// are translated through the package error taxonomy.
func (c *Client) getJSON(ctx context.Context, path, route string, out any) error {
	resp, err := c.doRaw(ctx, http.MethodGet, path, route, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := translateStatus(route, resp.StatusCode); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", route, err)
	}
	return nil
}

// GetJSONOrNil fetches path and decodes the response into out. A 404 is not
// an error: it reports found=false and leaves out untouched. This is the
// generic "get JSON by path, or null" accessor the higher layers build on.
func (c *Client) GetJSONOrNil(ctx context.Context, path string, out any) (bool, error) {
	err := c.getJSON(ctx, path, path, out)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// postJSON sends body as JSON to path and optionally decodes the response
// into out.
func (c *Client) postJSON(ctx context.Context, path, route string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	resp, err := c.doRaw(ctx, http.MethodPost, path, route, bytes.NewReader(data), header)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := translateStatus(route, resp.StatusCode); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", route, err)
	}
	return nil
}
