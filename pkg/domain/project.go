package domain

import "time"

// Project is a portfolio entry.
type Project struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Technologies []string  `json:"technologies,omitempty"`
	Status       string    `json:"status"` // "planning", "in-progress", "completed"
	DemoURL      string    `json:"demoUrl,omitempty"`
	GitHubURL    string    `json:"githubUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProjectStatuses are the allowed project statuses, in form order.
var ProjectStatuses = []string{"planning", "in-progress", "completed"}
