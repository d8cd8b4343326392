package model

import "time"

// Book is a named collection of scanned pages.
// Pure domain model with no persistence tags; JSON field names follow the
// mobile client's wire format.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
