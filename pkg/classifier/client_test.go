package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classify", r.URL.Path)
		var req ClassifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Bundestag beschließt Reform der Pflege", req.Title)

		_ = json.NewEncoder(w).Encode(ClassifyResult{
			Relevant:            true,
			RelevanceConfidence: 0.82,
			Priority:            "medium",
			AK:                  "AK3",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	out, err := c.Classify(context.Background(), ClassifyRequest{Title: "Bundestag beschließt Reform der Pflege"})
	require.NoError(t, err)
	assert.Equal(t, 0.82, out.RelevanceConfidence)
	assert.Equal(t, "AK3", out.AK)
}

func TestFindDuplicates_OrdersCandidatesAsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]DuplicateCandidate{{ID: "100", Score: 0.91}, {ID: "101", Score: 0.80}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	out, err := c.FindDuplicates(context.Background(), "t", "c", 0.75)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "100", out[0].ID)
}

func TestIndexBatch_IsIdempotentOnServerSide(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]int{"added": 0})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	added, err := c.IndexBatch(context.Background(), []IndexDoc{{ID: "1", Title: "t", Content: "c"}})
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Equal(t, 1, calls)
}

func TestIsAvailable_FalseOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	assert.False(t, c.IsAvailable(context.Background()))
}

func TestIsAvailable_TrueOnHealthyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(HealthStatus{SearchIndexItems: 10, DuplicateIndexItems: 3})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	assert.True(t, c.IsAvailable(context.Background()))
}
