package providers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"orator/internal/model"
)

// pageContentSchema is the hard boundary for vision output: the parsed JSON
// must be an object with a string body and nullable header/footer/page.
// Anything else is rejected rather than stored partially populated.
var pageContentSchema = jsonschema.MustCompileString("page_content.json", `{
	"type": "object",
	"properties": {
		"header": {"type": ["string", "null"]},
		"footer": {"type": ["string", "null"]},
		"body":   {"type": "string"},
		"page":   {"type": ["string", "null"]}
	},
	"required": ["body"]
}`)

// parsePageContent parses model output into PageContent, with lightweight
// recovery for markdown code fences. The prompt forbids fences, but models
// add them anyway often enough to be worth stripping.
func parsePageContent(content string) (*model.PageContent, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyResponse
	}
	raw := stripCodeFences(content)

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := pageContentSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var pc model.PageContent
	if err := json.Unmarshal([]byte(raw), &pc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &pc, nil
}

// stripCodeFences removes a surrounding markdown code fence, with or without
// a language tag, leaving other content untouched.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop a language tag such as "json" on the opening fence line.
		first := strings.TrimSpace(trimmed[:idx])
		if len(first) <= 10 && !strings.ContainsAny(first, "{[") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
