package echo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	echoservice "github.com/bulatminnakhmetov/webhook-client/internal/service/echo"
)

// EchoService defines the payload processing used by the handler
type EchoService interface {
	Receive(ctx context.Context, body []byte) (*echoservice.Receipt, error)
}

// EchoHandler handles the welcome and echo endpoints
type EchoHandler struct {
	service EchoService
}

// NewEchoHandler creates a new instance of EchoHandler
func NewEchoHandler(service EchoService) *EchoHandler {
	return &EchoHandler{
		service: service,
	}
}

// @Summary      Welcome
// @Description  Liveness check returning a fixed welcome message
// @Tags         echo
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       / [get]
func (h *EchoHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: WelcomeMessage})
}

// @Summary      Echo payload
// @Description  Accepts an arbitrary JSON payload, logs it and returns it unchanged
// @Tags         echo
// @Accept       json
// @Produce      json
// @Param        payload  body      object  true  "Any JSON value"
// @Success      201      {object}  ReceiptResponse
// @Failure      400      {object}  MessageResponse  "Body is not UTF-8 or not valid JSON"
// @Failure      500      {string}  string           "Internal Server Error"
// @Router       /test/ [post]
func (h *EchoHandler) Receive(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(errors.Wrap(err, "read request body")).Msg("echo failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	receipt, err := h.service.Receive(r.Context(), body)
	if err != nil {
		if echoservice.IsInvalidPayload(err) {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: InvalidJSONPrefix + err.Error()})
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("echo failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, receipt)
}

// writeJSON encodes before writing the header so an encoding failure can still
// become a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
