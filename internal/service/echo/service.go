package echo

import (
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/bulatminnakhmetov/webhook-client/internal/metrics"
)

const (
	// SSHKeyField is inspected for diagnostics only.
	SSHKeyField = "userSshKey"

	// SSHKeyPreviewLen is how many characters of SSHKeyField reach the log.
	SSHKeyPreviewLen = 10

	ReceivedMessage = "Got it"
)

// Receipt is returned to the caller for every accepted payload.
type Receipt struct {
	Message        string  `json:"message"`
	RequestPayload Payload `json:"request_payload"`
}

// Service decodes incoming payloads and writes diagnostics about them.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	logger zerolog.Logger
}

// NewService creates a new Service
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Decode turns a raw request body into a Payload.
func (s *Service) Decode(body []byte) (Payload, error) {
	return decodePayload(body)
}

// Receive decodes body, logs it and wraps it in a Receipt.
func (s *Service) Receive(ctx context.Context, body []byte) (*Receipt, error) {
	payload, err := s.Decode(body)
	if err != nil {
		metrics.ObservePayload(metrics.PayloadInvalid)
		s.log(ctx).Debug().Err(err).Int("size", len(body)).Msg("payload rejected")
		return nil, err
	}
	metrics.ObservePayload(metrics.PayloadAccepted)

	s.Inspect(ctx, payload)

	return &Receipt{
		Message:        ReceivedMessage,
		RequestPayload: payload,
	}, nil
}

// Inspect logs the payload and a truncated preview of its userSshKey field.
// Payloads that are not objects skip the field lookup.
func (s *Service) Inspect(ctx context.Context, payload Payload) {
	logger := s.log(ctx)

	event := logger.Info().Str("kind", payload.Kind())
	if raw, err := payload.MarshalJSON(); err == nil {
		event = event.RawJSON("payload", raw)
	}
	event.Msg("data received")

	if payload.Kind() != "object" {
		return
	}

	value, ok := payload.Field(SSHKeyField)
	if !ok {
		logger.Warn().Str("field", SSHKeyField).Msg("userSshKey field is missing in the payload")
		return
	}

	logger.Info().
		Str("field", SSHKeyField).
		Str("user_ssh_key", PreviewValue(value, SSHKeyPreviewLen)).
		Msg("userSshKey found")
}

// log prefers the request-scoped logger attached by the request middleware.
func (s *Service) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}

// PreviewValue renders the first n characters of v followed by "...".
// Non-string values are rendered as their JSON text first.
func PreviewValue(v any, n int) string {
	s, ok := v.(string)
	if !ok {
		raw, err := marshalCompact(v)
		if err != nil {
			return "..."
		}
		s = string(raw)
	}
	return Truncate(s, n) + "..."
}

// Truncate returns at most the first n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
