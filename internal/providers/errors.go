package providers

import (
	"errors"
	"fmt"
	"net/http"

	openai "github.com/openai/openai-go/v3"
)

var (
	// ErrEmptyResponse is returned when the model produced no content at all.
	ErrEmptyResponse = errors.New("no content returned from model")

	// ErrMalformedResponse is returned when model output fails the JSON
	// parse/validation boundary.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrInvalidVoice is returned for a voice selector outside the
	// configured set.
	ErrInvalidVoice = errors.New("invalid voice option")
)

// mapOpenAIError unwraps SDK errors into messages safe to persist on records.
func mapOpenAIError(op string, err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("%s rate limited (status %d): %s", op, apiErr.StatusCode, apiErr.Message)
		}
		if apiErr.Message != "" {
			return fmt.Errorf("%s error (status %d): %s", op, apiErr.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%s error (status %d)", op, apiErr.StatusCode)
	}
	return fmt.Errorf("%s: %w", op, err)
}
