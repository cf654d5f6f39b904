package archive

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

// recordingObserver collects the route labels reported per request.
type recordingObserver struct {
	mu     sync.Mutex
	routes []string
}

func (r *recordingObserver) ObserveRequest(route, method string, status int, duration time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	obs := &recordingObserver{}
	client, err := NewClient(Config{BaseURL: srv.URL, HTTPTimeoutS: 5}, nopLogger{}, obs)
	require.NoError(t, err)
	return client, obs
}

func TestFind_CoercesHeterogeneousItems(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tools/find", r.URL.Path)
		w.Write([]byte(`[
			"plain-id",
			{"ID":"upper-id","RequestedTags":{"Modality":"CT"}},
			{"id":"lower-id"},
			{"SeriesInstanceUID":"1.2.840.1"},
			{"Unrelated":"field"},
			""
		]`))
	}))

	matches, err := client.FindSeries(context.Background(), map[string]string{"Modality": "CT"}, []string{"Modality"})
	require.NoError(t, err)

	require.Len(t, matches, 4)
	assert.Equal(t, "plain-id", matches[0].ID)
	assert.Equal(t, "upper-id", matches[1].ID)
	assert.Equal(t, map[string]string{"Modality": "CT"}, matches[1].RequestedTags)
	assert.Equal(t, "lower-id", matches[2].ID)
	assert.Equal(t, "1.2.840.1", matches[3].ID)
}

func TestFind_SendsExpandedSeriesQuery(t *testing.T) {
	var body string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.Write([]byte(`[]`))
	}))

	_, err := client.Find(context.Background(), "Series", nil, []string{"Modality", "StudyDate"})
	require.NoError(t, err)

	assert.Contains(t, body, `"Level":"Series"`)
	assert.Contains(t, body, `"Expand":true`)
	assert.Contains(t, body, `"Query":{}`)
	assert.Contains(t, body, `"RequestedTags":["Modality","StudyDate"]`)
}

func TestGetJSONOrNil_NotFoundIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	var out map[string]string
	found, err := client.GetJSONOrNil(context.Background(), "/series/missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, out)
}

func TestSeries_PrefersExplicitInstanceCount(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/series/s1", r.URL.Path)
		w.Write([]byte(`{
			"ID":"s1",
			"MainDicomTags":{"Modality":"MR"},
			"ParentStudy":"st1",
			"Instances":["i1","i2"],
			"InstancesCount":5
		}`))
	}))

	series, found, err := client.Series(context.Background(), "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "st1", series.ParentStudy)
	assert.Equal(t, 5, series.SliceCount())
}

func TestSeries_CountFallsBackToInstanceList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ID":"s1","Instances":["i1","i2","i3"]}`))
	}))

	series, found, err := client.Series(context.Background(), "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, series.SliceCount())
}

func TestListMetadataKeys_DecodesMapAndListForms(t *testing.T) {
	t.Run("map form", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"seriesdesk-tags":"","other":""}`))
		}))
		keys, err := client.ListMetadataKeys(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"seriesdesk-tags": "", "other": ""}, keys)
	})

	t.Run("list form", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`["seriesdesk-tags","other"]`))
		}))
		keys, err := client.ListMetadataKeys(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"seriesdesk-tags": "", "other": ""}, keys)
	})
}

func TestGetMetadataKey_ReturnsBodyAndEntityTag(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/series/s1/metadata/seriesdesk-tags", r.URL.Path)
		w.Header().Set("ETag", "abc123")
		w.Write([]byte(`{"Project":"Fenix"}`))
	}))

	body, etag, err := client.GetMetadataKey(context.Background(), "s1", "seriesdesk-tags")
	require.NoError(t, err)
	assert.Equal(t, `{"Project":"Fenix"}`, body)
	assert.Equal(t, "abc123", etag)
}

func TestPutMetadataKey_SendsConditionalWrite(t *testing.T) {
	var ifMatch, contentType, body string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		ifMatch = r.Header.Get("If-Match")
		contentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		body = string(data)
	}))

	err := client.PutMetadataKey(context.Background(), "s1", "seriesdesk-tags", `{"a":"1"}`, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", ifMatch)
	assert.Equal(t, "text/plain", contentType)
	assert.Equal(t, `{"a":"1"}`, body)
}

func TestPutMetadataKey_OmitsIfMatchWhenUnversioned(t *testing.T) {
	var hasIfMatch bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasIfMatch = r.Header["If-Match"]
	}))

	require.NoError(t, client.PutMetadataKey(context.Background(), "s1", "seriesdesk-tags", `{}`, ""))
	assert.False(t, hasIfMatch)
}

func TestPutMetadataKey_PreconditionFailureIsConflict(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
	}))

	err := client.PutMetadataKey(context.Background(), "s1", "seriesdesk-tags", `{}`, "stale")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestUploadInstances_AcceptsObjectAndArrayResponses(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ID":"i1","Status":"Success","ParentSeries":"s1"}`))
		}))
		results, err := client.UploadInstances(context.Background(), strings.NewReader("dicom-bytes"))
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "s1", results[0].ParentSeries)
	})

	t.Run("array", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"ID":"i1"},{"ID":"i2"}]`))
		}))
		results, err := client.UploadInstances(context.Background(), strings.NewReader("zip-bytes"))
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestOpenArchive_StreamsBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/series/s1/archive", r.URL.Path)
		w.Write([]byte("zip-payload"))
	}))

	rc, err := client.OpenArchive(context.Background(), "s1")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "zip-payload", string(data))
}

func TestClient_SendsBasicAuth(t *testing.T) {
	var user, pass string
	var ok bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok = r.BasicAuth()
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL, Username: "desk", Password: "secret", HTTPTimeoutS: 5}, nopLogger{}, nil)
	require.NoError(t, err)

	require.NoError(t, client.DeleteSeries(context.Background(), "s1"))
	assert.True(t, ok)
	assert.Equal(t, "desk", user)
	assert.Equal(t, "secret", pass)
}

func TestObserver_SeesRouteTemplates(t *testing.T) {
	client, obs := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, _, _ = client.GetMetadataKey(context.Background(), "some-series", "some-key")
	_ = client.DeleteSeries(context.Background(), "some-series")

	assert.Equal(t, []string{"/series/{id}/metadata/{key}", "/series/{id}"}, obs.routes)
}
