package archive

import (
	"context"
	"encoding/json"
	"fmt"
)

// Match is one series-level hit from a bulk find. RequestedTags carries
// whatever subset of the requested tag names the archive chose to return
// inline; it is a hint, not the full attribute set.
type Match struct {
	ID            string
	RequestedTags map[string]string
}

// FindRequest mirrors the archive's POST /tools/find body.
type FindRequest struct {
	Level         string            `json:"Level"`
	Query         map[string]string `json:"Query"`
	Expand        bool              `json:"Expand"`
	RequestedTags []string          `json:"RequestedTags,omitempty"`
}

// findItem is the wire shape of one find result when the archive expands
// matches into objects. Different archive versions use different field names
// for the identifier.
type findItem struct {
	ID            string            `json:"ID"`
	LowerID       string            `json:"id"`
	SeriesUID     string            `json:"SeriesInstanceUID"`
	RequestedTags map[string]string `json:"RequestedTags"`
}

// Find runs a bulk find at the given level and coerces the heterogeneous
// result items into Matches. Items may be bare identifier strings or objects
// under varying id field names; anything without a resolvable identifier is
// dropped and counted, never guessed at.
func (c *Client) Find(ctx context.Context, level string, query map[string]string, requestedTags []string) ([]Match, error) {
	if query == nil {
		query = map[string]string{}
	}
	req := FindRequest{
		Level:         level,
		Query:         query,
		Expand:        true,
		RequestedTags: requestedTags,
	}

	var raw []json.RawMessage
	if err := c.postJSON(ctx, "/tools/find", "/tools/find", req, &raw); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(raw))
	dropped := 0
	for _, item := range raw {
		m, ok := decodeMatch(item)
		if !ok {
			dropped++
			continue
		}
		matches = append(matches, m)
	}

	if dropped > 0 {
		c.logger.Warn("find returned items without a resolvable identifier", nil, map[string]interface{}{
			"dropped": dropped,
			"total":   len(raw),
		})
	}

	return matches, nil
}

// decodeMatch resolves one find result item. Decode order: a JSON string is
// the identifier itself; an object yields the first non-empty of its known
// id fields. Anything else fails.
func decodeMatch(raw json.RawMessage) (Match, bool) {
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		if id == "" {
			return Match{}, false
		}
		return Match{ID: id}, true
	}

	var item findItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return Match{}, false
	}
	for _, candidate := range []string{item.ID, item.LowerID, item.SeriesUID} {
		if candidate != "" {
			return Match{ID: candidate, RequestedTags: item.RequestedTags}, true
		}
	}
	return Match{}, false
}

// FindSeries is the common case: a series-level find.
func (c *Client) FindSeries(ctx context.Context, query map[string]string, requestedTags []string) ([]Match, error) {
	matches, err := c.Find(ctx, "Series", query, requestedTags)
	if err != nil {
		return nil, fmt.Errorf("find series: %w", err)
	}
	return matches, nil
}
