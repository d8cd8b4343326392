package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"orator/internal/providers"
	"orator/internal/service"
)

// synthesizeRequest is the client payload for speech synthesis. Voice is
// optional; the service falls back to its configured default.
type synthesizeRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// SynthesizeSpeech handles POST /tts.
func SynthesizeSpeech(svc service.TTSService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// TODO: Validate the user is authenticated

		var req synthesizeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		resp, err := svc.Synthesize(c.UserContext(), req.Text, req.Voice)
		if err != nil {
			if errors.Is(err, service.ErrTextRequired) {
				return writeError(c, fiber.StatusBadRequest, "No text provided")
			}
			if errors.Is(err, providers.ErrInvalidVoice) {
				return writeError(c, fiber.StatusBadRequest, "Invalid voice option")
			}
			return writeError(c, fiber.StatusInternalServerError, "An error occurred during processing")
		}

		return c.JSON(resp)
	}
}
