//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoAPI(t *testing.T) {
	t.Run("Welcome", func(t *testing.T) {
		resp, err := Get("/")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body MessageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Welcome to the Example API!", body.Message)
	})

	t.Run("Echo object with ssh key", func(t *testing.T) {
		payload := `{"userSshKey":"ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAI","host":"example.com","port":22}`
		resp, err := PostRaw("/test/", []byte(payload))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var body ReceiptResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Got it", body.Message)
		assert.JSONEq(t, payload, string(body.RequestPayload))
	})

	t.Run("Echo array", func(t *testing.T) {
		resp, err := PostRaw("/test/", []byte(`[1,"two",{"three":3}]`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var body ReceiptResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.JSONEq(t, `[1,"two",{"three":3}]`, string(body.RequestPayload))
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		resp, err := PostRaw("/test/", []byte(`{invalid}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body MessageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, strings.HasPrefix(body.Message, "Invalid JSON: "), body.Message)
	})

	t.Run("Invalid UTF-8", func(t *testing.T) {
		resp, err := PostRaw("/test/", []byte{'"', 0xff, '"'})
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body MessageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body.Message, "UTF-8")
	})

	t.Run("Missing trailing slash redirects", func(t *testing.T) {
		resp, err := PostRaw("/test", []byte(`{}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
		assert.Equal(t, "/test/", resp.Header.Get("Location"))
	})
}
