package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageContent(t *testing.T) {
	t.Run("valid response with all fields", func(t *testing.T) {
		pc, err := parsePageContent(`{"header":"Chapter 1","footer":"Acme Press","body":"Once upon a time","page":"12"}`)

		require.NoError(t, err)
		require.NotNil(t, pc.Header)
		assert.Equal(t, "Chapter 1", *pc.Header)
		require.NotNil(t, pc.Footer)
		assert.Equal(t, "Acme Press", *pc.Footer)
		assert.Equal(t, "Once upon a time", pc.Body)
		require.NotNil(t, pc.Page)
		assert.Equal(t, "12", *pc.Page)
	})

	t.Run("null regions stay nil", func(t *testing.T) {
		pc, err := parsePageContent(`{"header":null,"footer":null,"body":"text","page":null}`)

		require.NoError(t, err)
		assert.Nil(t, pc.Header)
		assert.Nil(t, pc.Footer)
		assert.Nil(t, pc.Page)
		assert.Equal(t, "text", pc.Body)
	})

	t.Run("code fence with language tag is stripped", func(t *testing.T) {
		pc, err := parsePageContent("```json\n{\"body\":\"fenced\"}\n```")

		require.NoError(t, err)
		assert.Equal(t, "fenced", pc.Body)
	})

	t.Run("bare code fence is stripped", func(t *testing.T) {
		pc, err := parsePageContent("```\n{\"body\":\"fenced\"}\n```")

		require.NoError(t, err)
		assert.Equal(t, "fenced", pc.Body)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := parsePageContent("   ")

		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("non-JSON content", func(t *testing.T) {
		_, err := parsePageContent("I could not read the page, sorry.")

		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("missing body rejected", func(t *testing.T) {
		_, err := parsePageContent(`{"header":"only a header"}`)

		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("non-object rejected", func(t *testing.T) {
		_, err := parsePageContent(`["body"]`)

		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("wrong body type rejected", func(t *testing.T) {
		_, err := parsePageContent(`{"body": 42}`)

		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"body":"x"}`, `{"body":"x"}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.in))
		})
	}
}
