// Package models defines the core data structures for customer inquiries
// and portfolio videos.
package models

// Inquiry represents a single customer request submitted through the
// public order form. It is ephemeral: created per submission and discarded
// after the delivery attempt.
type Inquiry struct {
	// Name is the customer's name. Required.
	Name string `json:"name"`
	// Phone is the customer's phone number. Required.
	Phone string `json:"phone"`
	// Email is the customer's email address. Optional.
	Email string `json:"email"`
	// Occasion is the event type identifier ("wedding", "birthday", ...). Required.
	Occasion string `json:"occasion"`
	// VideoCount is the requested number of videos: "1", "2", "3" or "4+".
	VideoCount string `json:"videoCount"`
	// Message holds additional free-text details. Optional.
	Message string `json:"message"`
}

// VideoEntry represents one portfolio item curated by the operator for
// public display. Entries are never mutated in place: they are created and
// deleted as a whole.
type VideoEntry struct {
	// ID is the unique identifier assigned at creation time.
	ID string `json:"id"`
	// Title is the display title of the video.
	Title string `json:"title"`
	// Description holds an optional short description.
	Description string `json:"description"`
	// URL points to the externally hosted video.
	URL string `json:"url"`
	// Type is the event type identifier, same set as Inquiry.Occasion.
	Type string `json:"type"`
}

// Occasion defines the set of valid event type identifiers.
type Occasion string

const (
	// Wedding represents a wedding event.
	Wedding Occasion = "wedding"
	// Birthday represents a birthday event.
	Birthday Occasion = "birthday"
	// Anniversary represents an anniversary event.
	Anniversary Occasion = "anniversary"
	// Corporate represents a corporate event.
	Corporate Occasion = "corporate"
	// Other represents any other kind of event.
	Other Occasion = "other"
)
