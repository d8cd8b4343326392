package model

import "time"

// PageStatus tracks a page through its analysis lifecycle. A page is created
// in StatusProcessing and makes exactly one transition to a terminal state.
type PageStatus string

const (
	StatusProcessing PageStatus = "processing"
	StatusCompleted  PageStatus = "completed"
	StatusError      PageStatus = "error"
)

// Terminal reports whether the status allows no further transitions.
func (s PageStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// PageContent is the structured text extracted from a page image by the
// vision model. Header, Footer and Page are nullable because most pages have
// no such regions. Filename is attached by the server, not the model. Error
// is set only when analysis failed.
type PageContent struct {
	Header   *string `json:"header"`
	Footer   *string `json:"footer"`
	Body     string  `json:"body,omitempty"`
	Page     *string `json:"page"`
	Filename string  `json:"filename,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// Page is one scanned image plus its derived content and processing status.
// PageContent is nil exactly while Status is StatusProcessing.
type Page struct {
	ID          string       `json:"id"`
	BookID      string       `json:"bookId"`
	ImageURL    string       `json:"imageUrl"`
	PageContent *PageContent `json:"pageContent"`
	Status      PageStatus   `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
