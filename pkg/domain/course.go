package domain

import "time"

// Course is a course offered on the site.
type Course struct {
	ID             string    `json:"_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Duration       string    `json:"duration"`
	Level          string    `json:"level"`
	Instructor     string    `json:"instructor"`
	Image          string    `json:"image"`
	Modules        []string  `json:"modules,omitempty"`
	Skills         []string  `json:"skills,omitempty"`
	CertificateURL string    `json:"certificateUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CourseLevels are the allowed course levels.
var CourseLevels = []string{"beginner", "intermediate", "advanced"}
