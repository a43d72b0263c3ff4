package domain

import "time"

// Contact is a message left through the public contact form.
type Contact struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactRequest is the public submission payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactStats summarizes the contacts mirror for the tab header.
type ContactStats struct {
	Total  int
	Unread int
}

// CountContacts computes totals over contact records.
func CountContacts(records []Record) ContactStats {
	s := ContactStats{Total: len(records)}
	for _, r := range records {
		if !r.Bool("isRead") {
			s.Unread++
		}
	}
	return s
}
