package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"

	"orator/internal/logger"
)

const ttsDefaultModel = "gpt-4o-mini-tts"

// TTSConfig holds configuration for the OpenAI speech synthesizer.
type TTSConfig struct {
	APIKey       string
	Model        string        // "gpt-4o-mini-tts" (default)
	Voices       VoiceSet      // accepted voice selectors
	Instructions string        // delivery style, used by gpt-4o-mini-tts
	Timeout      time.Duration // HTTP timeout
	BaseURL      string        // optional (tests)
	HTTPClient   *http.Client  // optional (tests)
}

// OpenAISynthesizer implements Synthesizer using the official OpenAI SDK.
type OpenAISynthesizer struct {
	client       openai.Client
	model        string
	voices       VoiceSet
	instructions string
	log          zerolog.Logger
}

// NewOpenAISynthesizer creates a new OpenAI TTS client.
func NewOpenAISynthesizer(cfg TTSConfig) *OpenAISynthesizer {
	if cfg.Model == "" {
		cfg.Model = ttsDefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAISynthesizer{
		client:       openai.NewClient(opts...),
		model:        cfg.Model,
		voices:       cfg.Voices,
		instructions: cfg.Instructions,
		log:          logger.WithComponent("speech"),
	}
}

// Synthesize converts text to MP3 audio. The voice must be in the configured
// set; an unknown voice fails before any network call.
func (c *OpenAISynthesizer) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}
	v, ok := c.voices.Normalize(voice)
	if !ok {
		return nil, ErrInvalidVoice
	}

	params := openai.AudioSpeechNewParams{
		Input:          text,
		Model:          openai.SpeechModel(c.model),
		Voice:          openai.AudioSpeechNewParamsVoice(v),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	}
	if instr := strings.TrimSpace(c.instructions); instr != "" && supportsInstructions(c.model) {
		params.Instructions = openai.String(instr)
	}

	start := time.Now()
	resp, err := c.client.Audio.Speech.New(ctx, params)
	if err != nil {
		return nil, mapOpenAIError("speech synthesis", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio response: %w", err)
	}

	c.log.Debug().
		Str("voice", v).
		Int("char_count", len(text)).
		Int("audio_bytes", len(audio)).
		Dur("duration", time.Since(start)).
		Msg("speech synthesized")

	return audio, nil
}

// supportsInstructions reports whether the model honors the instructions
// parameter; legacy tts-1 models reject it.
func supportsInstructions(model string) bool {
	return strings.HasPrefix(model, "gpt-4o-mini-tts")
}
