package archive

import (
	"context"
	"fmt"
)

// SeriesResource mirrors GET /series/<id>.
type SeriesResource struct {
	ID             string            `json:"ID"`
	MainTags       map[string]string `json:"MainDicomTags"`
	ParentStudy    string            `json:"ParentStudy"`
	Instances      []string          `json:"Instances"`
	InstancesCount *int              `json:"InstancesCount"`
}

// SliceCount prefers the archive's explicit count and falls back to the
// embedded instance list.
func (s *SeriesResource) SliceCount() int {
	if s.InstancesCount != nil && *s.InstancesCount >= 0 {
		return *s.InstancesCount
	}
	return len(s.Instances)
}

// StudyResource mirrors GET /studies/<id>. Patient-level tags are inlined by
// some archive versions; they are kept separate from the study's own tags.
type StudyResource struct {
	ID            string            `json:"ID"`
	MainTags      map[string]string `json:"MainDicomTags"`
	PatientTags   map[string]string `json:"PatientMainDicomTags"`
	ParentPatient string            `json:"ParentPatient"`
}

// PatientResource mirrors GET /patients/<id>.
type PatientResource struct {
	ID       string            `json:"ID"`
	MainTags map[string]string `json:"MainDicomTags"`
}

// Series fetches series detail. found is false when the series does not
// exist; that is not an error.
func (c *Client) Series(ctx context.Context, id string) (*SeriesResource, bool, error) {
	var res SeriesResource
	found, err := c.GetJSONOrNil(ctx, "/series/"+id, &res)
	if err != nil {
		return nil, false, fmt.Errorf("series %s: %w", id, err)
	}
	if !found {
		return nil, false, nil
	}
	return &res, true, nil
}

// Study fetches study detail.
func (c *Client) Study(ctx context.Context, id string) (*StudyResource, bool, error) {
	var res StudyResource
	found, err := c.GetJSONOrNil(ctx, "/studies/"+id, &res)
	if err != nil {
		return nil, false, fmt.Errorf("study %s: %w", id, err)
	}
	if !found {
		return nil, false, nil
	}
	return &res, true, nil
}

// Patient fetches patient detail.
func (c *Client) Patient(ctx context.Context, id string) (*PatientResource, bool, error) {
	var res PatientResource
	found, err := c.GetJSONOrNil(ctx, "/patients/"+id, &res)
	if err != nil {
		return nil, false, fmt.Errorf("patient %s: %w", id, err)
	}
	if !found {
		return nil, false, nil
	}
	return &res, true, nil
}
