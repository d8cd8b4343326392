package providers

import "strings"

// VoiceSet is the fixed set of voice names a Synthesizer accepts, matched
// case-insensitively. The set is configuration, not workflow logic.
type VoiceSet struct {
	names map[string]struct{}
	def   string
}

// NewVoiceSet builds a voice set from the configured names with def as the
// voice used when a request names none.
func NewVoiceSet(names []string, def string) VoiceSet {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}
	return VoiceSet{names: set, def: strings.ToLower(strings.TrimSpace(def))}
}

// Default returns the fallback voice name.
func (s VoiceSet) Default() string {
	return s.def
}

// Normalize lowercases the voice and reports whether it belongs to the set.
// An empty voice normalizes to the default.
func (s VoiceSet) Normalize(voice string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(voice))
	if v == "" {
		v = s.def
	}
	_, ok := s.names[v]
	return v, ok
}
