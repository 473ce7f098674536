package echo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	echoservice "github.com/bulatminnakhmetov/webhook-client/internal/service/echo"
)

// MockEchoService is a mock implementation of EchoService
type MockEchoService struct {
	mock.Mock
}

func (m *MockEchoService) Receive(ctx context.Context, body []byte) (*echoservice.Receipt, error) {
	args := m.Called(ctx, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*echoservice.Receipt), args.Error(1)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestEchoHandler_Welcome(t *testing.T) {
	handler := NewEchoHandler(new(MockEchoService))

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		handler.Welcome(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message": "Welcome to the Example API!"}`, rr.Body.String())
	}
}

func TestEchoHandler_Receive_Success(t *testing.T) {
	mockService := new(MockEchoService)
	body := []byte(`{"foo":"bar"}`)
	mockService.On("Receive", mock.Anything, body).Return(&echoservice.Receipt{
		Message:        echoservice.ReceivedMessage,
		RequestPayload: echoservice.NewPayload(map[string]any{"foo": "bar"}),
	}, nil)

	handler := NewEchoHandler(mockService)
	rr := httptest.NewRecorder()
	handler.Receive(rr, httptest.NewRequest(http.MethodPost, "/test/", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Got it","request_payload":{"foo":"bar"}}`, rr.Body.String())
	mockService.AssertExpectations(t)
}

func TestEchoHandler_Receive_ServiceErrors(t *testing.T) {
	svc := echoservice.NewService(zerolog.Nop())
	_, invalidJSON := svc.Decode([]byte(`{invalid}`))
	_, invalidUTF8 := svc.Decode([]byte{0xff})

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedPrefix string
	}{
		{
			name:           "Invalid JSON",
			serviceErr:     invalidJSON,
			expectedStatus: http.StatusBadRequest,
			expectedPrefix: "Invalid JSON: invalid character 'i'",
		},
		{
			name:           "Invalid UTF-8",
			serviceErr:     invalidUTF8,
			expectedStatus: http.StatusBadRequest,
			expectedPrefix: "Invalid JSON: body is not valid UTF-8",
		},
		{
			name:           "Unexpected error",
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockEchoService)
			mockService.On("Receive", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)

			handler := NewEchoHandler(mockService)
			rr := httptest.NewRecorder()
			handler.Receive(rr, httptest.NewRequest(http.MethodPost, "/test/", bytes.NewReader([]byte("x"))))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedPrefix == "" {
				assert.Equal(t, "Internal Server Error\n", rr.Body.String())
				return
			}

			var resp MessageResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp.Message, tt.expectedPrefix)
			mockService.AssertExpectations(t)
		})
	}
}

func TestEchoHandler_Receive_BodyReadFailure(t *testing.T) {
	mockService := new(MockEchoService)
	handler := NewEchoHandler(mockService)

	rr := httptest.NewRecorder()
	handler.Receive(rr, httptest.NewRequest(http.MethodPost, "/test/", failingReader{}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	mockService.AssertNotCalled(t, "Receive", mock.Anything, mock.Anything)
}

func TestEchoHandler_Receive_WithRealService(t *testing.T) {
	handler := NewEchoHandler(echoservice.NewService(zerolog.Nop()))

	payload := `{"userSshKey":"abcdefghijklmnop","html":"<b>&</b>","n":[1,2.5,null]}`
	rr := httptest.NewRecorder()
	handler.Receive(rr, httptest.NewRequest(http.MethodPost, "/test/", bytes.NewBufferString(payload)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"message":"Got it","request_payload":`+payload+`}`, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"<b>&</b>"`)
}
