package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSynthesizer(t *testing.T, handler http.HandlerFunc) *OpenAISynthesizer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewOpenAISynthesizer(TTSConfig{
		APIKey:       "test-key",
		Voices:       NewVoiceSet(testVoices, "nova"),
		Instructions: "Speak in a cheerful and positive tone.",
		BaseURL:      srv.URL,
	})
}

func TestOpenAISynthesizerSynthesize(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotBody map[string]any
		synth := newTestSynthesizer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/audio/speech", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write([]byte("mp3-bytes"))
		})

		audio, err := synth.Synthesize(context.Background(), "Read me a story.", "Echo")

		require.NoError(t, err)
		assert.Equal(t, []byte("mp3-bytes"), audio)
		assert.Equal(t, "Read me a story.", gotBody["input"])
		assert.Equal(t, "echo", gotBody["voice"])
		assert.Equal(t, "mp3", gotBody["response_format"])
		assert.Equal(t, "Speak in a cheerful and positive tone.", gotBody["instructions"])
	})

	t.Run("empty voice uses default", func(t *testing.T) {
		var gotBody map[string]any
		synth := newTestSynthesizer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte("audio"))
		})

		_, err := synth.Synthesize(context.Background(), "hello", "")

		require.NoError(t, err)
		assert.Equal(t, "nova", gotBody["voice"])
	})

	t.Run("invalid voice fails before any request", func(t *testing.T) {
		synth := newTestSynthesizer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("unexpected request")
		})

		_, err := synth.Synthesize(context.Background(), "hello", "robotic")

		assert.ErrorIs(t, err, ErrInvalidVoice)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		synth := newTestSynthesizer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("unexpected request")
		})

		_, err := synth.Synthesize(context.Background(), "   ", "nova")

		assert.Error(t, err)
	})

	t.Run("API error", func(t *testing.T) {
		synth := newTestSynthesizer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "input too long", "type": "invalid_request_error"},
			})
		})

		_, err := synth.Synthesize(context.Background(), "hello", "nova")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "speech synthesis")
	})

	t.Run("legacy model omits instructions", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte("audio"))
		}))
		defer srv.Close()

		synth := NewOpenAISynthesizer(TTSConfig{
			APIKey:       "test-key",
			Model:        "tts-1",
			Voices:       NewVoiceSet(testVoices, "nova"),
			Instructions: "Speak slowly.",
			BaseURL:      srv.URL,
		})

		_, err := synth.Synthesize(context.Background(), "hello", "nova")

		require.NoError(t, err)
		_, hasInstructions := gotBody["instructions"]
		assert.False(t, hasInstructions)
	})
}
