package domain

import "time"

// Resource is a curated learning link.
type Resource struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	URL         string    `json:"url"`
	Icon        string    `json:"icon,omitempty"` // icon class, e.g. "fas fa-code"
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ResourceCategories are the allowed resource categories.
var ResourceCategories = []string{"frontend", "backend", "tools", "design", "documentation"}
