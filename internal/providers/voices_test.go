package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testVoices = []string{
	"alloy", "ash", "ballad", "coral", "echo",
	"fable", "onyx", "nova", "sage", "shimmer", "verse",
}

func TestVoiceSetNormalize(t *testing.T) {
	set := NewVoiceSet(testVoices, "nova")

	t.Run("known voice passes through", func(t *testing.T) {
		v, ok := set.Normalize("onyx")

		assert.True(t, ok)
		assert.Equal(t, "onyx", v)
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		for _, in := range []string{"NOVA", "Nova", "nOvA"} {
			v, ok := set.Normalize(in)

			assert.True(t, ok, in)
			assert.Equal(t, "nova", v)
		}
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		v, ok := set.Normalize("  shimmer ")

		assert.True(t, ok)
		assert.Equal(t, "shimmer", v)
	})

	t.Run("empty falls back to default", func(t *testing.T) {
		v, ok := set.Normalize("")

		assert.True(t, ok)
		assert.Equal(t, "nova", v)
	})

	t.Run("unknown voice rejected", func(t *testing.T) {
		_, ok := set.Normalize("robotic")

		assert.False(t, ok)
	})

	t.Run("every configured voice accepted", func(t *testing.T) {
		for _, name := range testVoices {
			_, ok := set.Normalize(name)

			assert.True(t, ok, name)
		}
	})
}

func TestVoiceSetDefault(t *testing.T) {
	set := NewVoiceSet(testVoices, "Nova")

	assert.Equal(t, "nova", set.Default())
}
