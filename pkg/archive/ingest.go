package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// IngestResult describes one instance accepted by the archive.
type IngestResult struct {
	ID           string `json:"ID"`
	Status       string `json:"Status"`
	ParentSeries string `json:"ParentSeries"`
}

// UploadInstances posts a binary body to the archive's ingest endpoint. The
// body is a single dataset or a zip of datasets; the archive responds with
// one result object, or an array when the upload expanded to several
// instances.
func (c *Client) UploadInstances(ctx context.Context, body io.Reader) ([]IngestResult, error) {
	route := "/instances"
	header := http.Header{}
	header.Set("Content-Type", "application/octet-stream")

	resp, err := c.doRaw(ctx, http.MethodPost, "/instances", route, body, header)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := translateStatus(route, resp.StatusCode); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", route, err)
	}

	var many []IngestResult
	if err := json.Unmarshal(data, &many); err == nil {
		return many, nil
	}
	var one IngestResult
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("decode %s: %w", route, err)
	}
	return []IngestResult{one}, nil
}

// DeleteSeries removes a series and everything under it from the archive.
func (c *Client) DeleteSeries(ctx context.Context, seriesID string) error {
	route := "/series/{id}"
	resp, err := c.doRaw(ctx, http.MethodDelete, "/series/"+seriesID, route, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return translateStatus(route, resp.StatusCode)
}

// OpenArchive streams the zip export of a series. The caller must close the
// returned reader.
func (c *Client) OpenArchive(ctx context.Context, seriesID string) (io.ReadCloser, error) {
	route := "/series/{id}/archive"
	resp, err := c.doRaw(ctx, http.MethodGet, "/series/"+seriesID+"/archive", route, nil, nil)
	if err != nil {
		return nil, err
	}

	if err := translateStatus(route, resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}
