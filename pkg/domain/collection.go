package domain

import (
	"fmt"
	"strings"
)

// Collection names one of the four record kinds held by the store.
type Collection string

const (
	Projects  Collection = "projects"
	Resources Collection = "resources"
	Courses   Collection = "courses"
	Contacts  Collection = "contacts"
)

// Collections lists every collection in tab order.
var Collections = []Collection{Projects, Resources, Courses, Contacts}

// Valid returns true if c is a known collection.
func (c Collection) Valid() bool {
	switch c {
	case Projects, Resources, Courses, Contacts:
		return true
	}
	return false
}

// Title returns the display name, e.g. "Projects".
func (c Collection) Title() string {
	s := string(c)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Singular returns the display name of one record, e.g. "Project".
func (c Collection) Singular() string {
	return strings.TrimSuffix(c.Title(), "s")
}

// ParseCollection resolves a collection name, case-insensitively.
func ParseCollection(name string) (Collection, error) {
	c := Collection(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown collection %q", name)
	}
	return c, nil
}
