package domain

import "time"

// Coordinates is an optional map pin attached to a report.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FireReport is a citizen-submitted fire sighting. Reports are never deleted
// from the portal; admins only toggle Resolved.
type FireReport struct {
	ID              string       `json:"id,omitempty"`
	ReporterName    string       `json:"name"`
	Email           string       `json:"email"`
	Province        string       `json:"province"`
	District        string       `json:"district"`
	LocationDetails string       `json:"location_details"`
	FireDate        string       `json:"fire_date"`
	Description     string       `json:"description"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	Resolved        bool         `json:"resolved"`
	CreatedAt       *time.Time   `json:"created_at,omitempty"`
}

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
