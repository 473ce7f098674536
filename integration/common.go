//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"time"
)

var appURL string

func init() {
	appURL = os.Getenv("TEST_APP_URL")
	if appURL == "" {
		appURL = "http://localhost:8000"
	}
}

// MessageResponse is the body of the welcome and 400 responses
type MessageResponse struct {
	Message string `json:"message"`
}

// ReceiptResponse is the body of a successful echo
type ReceiptResponse struct {
	Message        string          `json:"message"`
	RequestPayload json.RawMessage `json:"request_payload"`
}

var client = &http.Client{
	Timeout: 10 * time.Second,
	// Redirects are asserted, not followed.
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

// PostRaw sends body as-is to path
func PostRaw(path string, body []byte) (*http.Response, error) {
	return client.Post(appURL+path, "application/json", bytes.NewReader(body))
}

// Get issues a GET request to path
func Get(path string) (*http.Response, error) {
	return client.Get(appURL + path)
}
