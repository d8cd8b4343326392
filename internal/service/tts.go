package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"orator/internal/logger"
	"orator/internal/model"
	"orator/internal/providers"
	"orator/internal/repository"
	"orator/internal/storage"
)

var ErrTextRequired = errors.New("text is required")

// TTSResponse is what a successful synthesis request returns to the client.
type TTSResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// TTSService turns text into stored audio.
type TTSService interface {
	// Synthesize converts text to speech, stores the audio, records an audit
	// row and returns the audio's URL. An unknown voice fails with
	// providers.ErrInvalidVoice before any synthesis happens.
	Synthesize(ctx context.Context, text, voice string) (*TTSResponse, error)
}

type ttsService struct {
	synth providers.Synthesizer
	store storage.Storage
	repo  repository.TTSResultRepository
	log   zerolog.Logger
}

// NewTTSService constructs a new TTSService.
func NewTTSService(synth providers.Synthesizer, store storage.Storage, repo repository.TTSResultRepository) TTSService {
	return &ttsService{
		synth: synth,
		store: store,
		repo:  repo,
		log:   logger.WithComponent("tts"),
	}
}

func (s *ttsService) Synthesize(ctx context.Context, text, voice string) (*TTSResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	audio, err := s.synth.Synthesize(ctx, text, voice)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%d.mp3", storage.AudioPrefix, time.Now().UnixMilli())
	_, err = s.store.Put(ctx, key, bytes.NewReader(audio), storage.PutObjectOptions{
		Size:        int64(len(audio)),
		ContentType: "audio/mpeg",
	})
	if err != nil {
		return nil, fmt.Errorf("upload audio: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign audio: %w", err)
	}

	res := &model.TTSResult{
		ID:        uuid.New().String(),
		Text:      text,
		AudioURL:  url,
		Timestamp: time.Now().UTC(),
	}
	if _, err := s.repo.Create(ctx, res); err != nil {
		// Roll back the stored object so a failed request leaves nothing behind.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.log.Error().Err(delErr).Str("key", key).Msg("rollback delete failed")
		}
		return nil, fmt.Errorf("save tts result: %w", err)
	}

	s.log.Info().Str("voice", voice).Int("char_count", len(text)).Int("audio_bytes", len(audio)).Msg("speech synthesized")

	return &TTSResponse{Message: "Audio file created", Path: url}, nil
}
