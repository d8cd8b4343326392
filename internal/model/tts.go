package model

import "time"

// TTSResult is an audit record of one speech synthesis request. Write-only in
// this system; no read endpoint exists.
type TTSResult struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	AudioURL  string    `json:"audioUrl"`
	Timestamp time.Time `json:"timestamp"`
}
