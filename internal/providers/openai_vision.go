package providers

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"

	"orator/internal/logger"
	"orator/internal/model"
)

const (
	visionDefaultModel     = "gpt-4o-mini"
	visionDefaultMaxTokens = 2000

	// analysisPrompt asks for the four content regions as bare JSON.
	analysisPrompt = `Analyze this image and provide a JSON response with the following structure:
{
  "header": "any content that is in the top part of the page like section title or null if there is none",
  "footer": "any content that is in the bottom part of the page or null if there is none",
  "body": "any other text content that is on the page, ignoring images",
  "page": "the page number if one is listed or null if there is none"
}

Please format your response as valid JSON only, with no additional text or code block indicators.`
)

// VisionConfig holds configuration for the OpenAI vision analyzer.
type VisionConfig struct {
	APIKey     string
	Model      string        // "gpt-4o-mini" (default)
	MaxTokens  int64         // completion budget, 2000 by default
	Timeout    time.Duration // HTTP timeout
	BaseURL    string        // optional (tests)
	HTTPClient *http.Client  // optional (tests)
}

// OpenAIAnalyzer implements Analyzer using the official OpenAI SDK.
type OpenAIAnalyzer struct {
	client    openai.Client
	model     string
	maxTokens int64
	log       zerolog.Logger
}

// NewOpenAIAnalyzer creates a new OpenAI vision analyzer.
func NewOpenAIAnalyzer(cfg VisionConfig) *OpenAIAnalyzer {
	if cfg.Model == "" {
		cfg.Model = visionDefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = visionDefaultMaxTokens
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

	return &OpenAIAnalyzer{
		client:    openai.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.WithComponent("vision"),
	}
}

// Analyze sends the image to the vision model and parses the structured
// result. The filename is attached to the result server-side; the model
// never sees it.
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, image []byte, mimeType, filename string) (*model.PageContent, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image is required")
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	start := time.Now()
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(analysisPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL,
				}),
			}),
		},
		MaxTokens: openai.Int(a.maxTokens),
	})
	if err != nil {
		return nil, mapOpenAIError("vision analysis", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	a.log.Debug().
		Str("filename", filename).
		Int64("total_tokens", resp.Usage.TotalTokens).
		Dur("duration", time.Since(start)).
		Msg("image analyzed")

	content, err := parsePageContent(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	content.Filename = filename
	return content, nil
}
