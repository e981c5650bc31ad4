package review

import "errors"

// Error kinds exposed to the transport layer. The handler maps these to
// status codes; anything the normalizer can repair is repaired silently
// and never surfaces as one of these.
var (
	// ErrInvalidInput marks caller-supplied content that fails precondition
	// checks (filename, extension, size) before the model is involved.
	ErrInvalidInput = errors.New("review: invalid input")

	// ErrService marks a failure of the model call itself (network, auth,
	// quota, provider-side fault). Never retried at this layer.
	ErrService = errors.New("review: model service failure")

	// ErrInvalidModelResponse marks a reply that is not JSON-shaped at all,
	// typically prose or a refusal.
	ErrInvalidModelResponse = errors.New("review: non-JSON model response")

	// ErrMalformedJSON marks a reply that opened like a JSON object but
	// failed strict parsing.
	ErrMalformedJSON = errors.New("review: malformed JSON from model")
)
