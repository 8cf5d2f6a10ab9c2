package catalog

import "github.com/bookloft/biblioctl/internal/cover"

// Status is the reading state of a book. The server stores the numeric
// code; labels exist only for display.
type Status int

const (
	StatusUnread Status = iota
	StatusReading
	StatusRead
	StatusAbandoned
)

// Label returns the display name for a status code.
func (s Status) Label() string {
	switch s {
	case StatusUnread:
		return "unread"
	case StatusReading:
		return "reading"
	case StatusRead:
		return "read"
	case StatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// ParseStatus maps a display label back to its code. Unknown labels
// map to StatusUnread.
func ParseStatus(label string) Status {
	switch label {
	case "reading":
		return StatusReading
	case "read":
		return StatusRead
	case "abandoned":
		return StatusAbandoned
	default:
		return StatusUnread
	}
}

// Book is one entry in the user's library.
type Book struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Author          string        `json:"author"`
	Series          string        `json:"series,omitempty"`
	Publisher       string        `json:"publisher,omitempty"`
	Genre           string        `json:"genre,omitempty"`
	ISBN            string        `json:"isbn,omitempty"`
	PublicationDate string        `json:"publicationDate,omitempty"`
	PageCount       int           `json:"pageCount,omitempty"`
	StartDate       string        `json:"startDate,omitempty"`
	EndDate         string        `json:"endDate,omitempty"`
	Status          Status        `json:"status"`
	LentTo          string        `json:"lentTo,omitempty"`
	Summary         string        `json:"summary,omitempty"`
	Cover           cover.Payload `json:"cover,omitempty"`
	AddedDate       string        `json:"addedDate,omitempty"`
	Language        string        `json:"language,omitempty"`
	Country         string        `json:"country,omitempty"`
}
