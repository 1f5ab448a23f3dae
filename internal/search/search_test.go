package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodHead && r.URL.Path == "/" {
			w.WriteHeader(http.StatusOK)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchExercises(t *testing.T) {
	var query map[string]interface{}
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.URL.Path, "/exercises/_search"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &query))
		io.WriteString(w, `{"hits":{"hits":[{"_source":{"id":3,"name":"Back squat"}},{"_source":{"id":9,"name":"Front squat"}}]}}`)
	})

	c, err := New(srv.URL)
	require.NoError(t, err)

	ids, err := c.SearchExercises(context.Background(), "squat", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 9}, ids)
	assert.Equal(t, float64(5), query["size"])
	assert.Contains(t, query["query"], "multi_match")
}

func TestIndexExercise(t *testing.T) {
	var path string
	var doc ExerciseDoc
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &doc)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"result":"created"}`)
	})

	c, err := New(srv.URL)
	require.NoError(t, err)

	err = c.IndexExercise(context.Background(), ExerciseDoc{ID: 12, Name: "Deadlift", MuscleGroup: "posterior chain"})
	require.NoError(t, err)
	assert.Equal(t, "/exercises/_doc/12", path)
	assert.Equal(t, "Deadlift", doc.Name)
}

func TestSearchExercises_ErrorResponse(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"boom"}`)
	})

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.SearchExercises(context.Background(), "squat", 0)
	assert.Error(t, err)
}
