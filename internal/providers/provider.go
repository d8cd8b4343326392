// Package providers contains the clients for hosted model APIs: vision
// analysis of page images and speech synthesis. Both are thin adapters with
// hard validation boundaries; no workflow state lives here.
package providers

import (
	"context"

	"orator/internal/model"
)

// Analyzer extracts structured page content from an image.
// Implementations must fail when the model returns anything that is not a
// valid content object — malformed output is an adapter failure, never a
// partially populated result.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType, filename string) (*model.PageContent, error)
}

// Synthesizer converts text to audio with a named voice.
// Implementations must reject voices outside their configured set before any
// network call is made.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}
