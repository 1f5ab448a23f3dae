package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotUpsert, gotType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotUpsert = r.Header.Get("x-upsert")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "profile-images", "service-key")
	url, err := c.Upload(context.Background(), "avatars/7/a.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/profile-images/avatars/7/a.jpg", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "true", gotUpsert)
	assert.Equal(t, "image/jpeg", gotType)
	assert.Equal(t, []byte("jpeg-bytes"), gotBody)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/profile-images/avatars/7/a.jpg", url)
}

func TestUpload_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket not found", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, "profile-images", "key")
	_, err := c.Upload(context.Background(), "a.jpg", "", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "bucket not found")
}

func TestDelete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "profile-images", "key")
	err := c.Delete(context.Background(), c.PublicURL("avatars/7/a.jpg"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/storage/v1/object/profile-images/avatars/7/a.jpg", gotPath)
}

func TestDelete_ForeignURL(t *testing.T) {
	c := New("http://storage.local", "profile-images", "key")
	err := c.Delete(context.Background(), "http://storage.local/storage/v1/object/public/other/a.jpg")
	assert.ErrorIs(t, err, ErrForeignURL)
}
