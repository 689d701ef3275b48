package generation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIImageClient_GenerateImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req imagesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-image-1", req.Model)
		assert.Equal(t, 1, req.N)

		io.WriteString(w, `{"data":[{"b64_json":"aW1n"}]}`)
	}))
	defer srv.Close()

	c, err := NewOpenAIImageClient("sk-test", srv.URL+"/", "", srv.Client())
	require.NoError(t, err)

	img, err := c.GenerateImage(context.Background(), "newborn on a cloud")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, img.Provider)
	assert.Equal(t, "aW1n", img.Base64)
}

func TestOpenAIImageClient_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[]}`)
	}))
	defer srv.Close()

	c, err := NewOpenAIImageClient("sk-test", srv.URL, "gpt-image-1", srv.Client())
	require.NoError(t, err)

	img, err := c.GenerateImage(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, img.Base64)
}

func TestOpenAIImageClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"bad key"}}`)
	}))
	defer srv.Close()

	c, err := NewOpenAIImageClient("sk-test", srv.URL, "gpt-image-1", srv.Client())
	require.NoError(t, err)

	_, err = c.GenerateImage(context.Background(), "x")
	var httpErr *openAIHTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestNewOpenAIImageClient_RequiresKey(t *testing.T) {
	_, err := NewOpenAIImageClient("", "", "", nil)
	assert.Error(t, err)
}
