package echo

// WelcomeMessage is returned by the root endpoint.
const WelcomeMessage = "Welcome to the Example API!"

// InvalidJSONPrefix starts the message of every 400 response.
const InvalidJSONPrefix = "Invalid JSON: "

// MessageResponse is the body of the welcome and error responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ReceiptResponse documents the 201 body of the echo endpoint.
type ReceiptResponse struct {
	Message        string `json:"message" example:"Got it"`
	RequestPayload any    `json:"request_payload" swaggertype:"object"`
}
