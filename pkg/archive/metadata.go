package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ListMetadataKeys fetches the index of metadata keys present on a series.
// The archive returns either a key->label map or a bare list of key names
// depending on version; both decode to the map form (list entries get an
// empty label). Returns ErrNotFound if the series itself is absent.
func (c *Client) ListMetadataKeys(ctx context.Context, seriesID string) (map[string]string, error) {
	route := "/series/{id}/metadata"
	resp, err := c.doRaw(ctx, http.MethodGet, "/series/"+seriesID+"/metadata", route, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := translateStatus(route, resp.StatusCode); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", route, err)
	}

	keys := map[string]string{}
	if err := json.Unmarshal(body, &keys); err == nil {
		return keys, nil
	}
	var names []string
	if err := json.Unmarshal(body, &names); err != nil {
		return nil, fmt.Errorf("decode %s: %w", route, err)
	}
	for _, name := range names {
		keys[name] = ""
	}
	return keys, nil
}

// GetMetadataKey reads the raw stored text of one metadata key plus the
// entity tag the archive returned for it. The body is not interpreted here.
func (c *Client) GetMetadataKey(ctx context.Context, seriesID, key string) (body string, etag string, err error) {
	route := "/series/{id}/metadata/{key}"
	resp, err := c.doRaw(ctx, http.MethodGet, "/series/"+seriesID+"/metadata/"+key, route, nil, nil)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if err := translateStatus(route, resp.StatusCode); err != nil {
		return "", "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", route, err)
	}
	return string(data), resp.Header.Get("ETag"), nil
}

// PutMetadataKey stores raw text under one metadata key. When ifMatch is
// non-empty the write is conditional: the archive rejects it with
// ErrConflict if the key changed since that entity tag was read.
func (c *Client) PutMetadataKey(ctx context.Context, seriesID, key, body, ifMatch string) error {
	route := "/series/{id}/metadata/{key}"
	header := http.Header{}
	header.Set("Content-Type", "text/plain")
	if ifMatch != "" {
		header.Set("If-Match", ifMatch)
	}

	resp, err := c.doRaw(ctx, http.MethodPut, "/series/"+seriesID+"/metadata/"+key, route, strings.NewReader(body), header)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return translateStatus(route, resp.StatusCode)
}
