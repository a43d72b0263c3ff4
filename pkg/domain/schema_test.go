package domain

import (
	"errors"
	"testing"
)

func validProjectValues() map[string]string {
	return map[string]string{
		"title":        "Portfolio",
		"description":  "Personal site",
		"image":        "/img/p.png",
		"technologies": "React, Node",
		"status":       "completed",
	}
}

func TestBuildPayloadProject(t *testing.T) {
	p, err := BuildPayload(Projects, validProjectValues())
	if err != nil {
		t.Fatalf("BuildPayload() error: %v", err)
	}
	if p["status"] != "completed" {
		t.Errorf("status = %v, want completed", p["status"])
	}
	techs, ok := p["technologies"].([]string)
	if !ok || len(techs) != 2 || techs[0] != "React" || techs[1] != "Node" {
		t.Errorf("technologies = %#v, want [React Node]", p["technologies"])
	}
	if _, ok := p[IDField]; ok {
		t.Error("payload must not carry an id")
	}
	if p["demoUrl"] != "" {
		t.Errorf("demoUrl = %v, want empty string", p["demoUrl"])
	}
}

func TestBuildPayloadRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		coll  Collection
		drop  string
		field string
	}{
		{"project title", Projects, "title", "title"},
		{"project image", Projects, "image", "image"},
		{"project status", Projects, "status", "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validProjectValues()
			delete(values, tt.drop)
			_, err := BuildPayload(tt.coll, values)
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("BuildPayload() error = %v, want *FieldError", err)
			}
			if fe.Field.Name != tt.field {
				t.Errorf("FieldError.Field = %q, want %q", fe.Field.Name, tt.field)
			}
		})
	}
}

func TestBuildPayloadRejectsUnknownOption(t *testing.T) {
	values := validProjectValues()
	values["status"] = "abandoned"
	_, err := BuildPayload(Projects, values)
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestBuildPayloadWhitespaceIsMissing(t *testing.T) {
	values := map[string]string{
		"title":       "   ",
		"description": "d",
		"category":    "tools",
		"url":         "https://go.dev",
	}
	if _, err := BuildPayload(Resources, values); err == nil {
		t.Fatal("expected blank title to fail validation")
	}
}

func TestBuildPayloadUnknownCollection(t *testing.T) {
	if _, err := BuildPayload(Collection("widgets"), nil); err == nil {
		t.Fatal("expected error for unknown collection")
	}
}

func TestFormValuesPrefill(t *testing.T) {
	r := Record{
		"_id":     "c1",
		"title":   "Go Basics",
		"level":   "advanced",
		"modules": []any{"Intro", "Types"},
	}
	got := FormValues(Courses, r)
	if got["title"] != "Go Basics" {
		t.Errorf("title = %q", got["title"])
	}
	if got["modules"] != "Intro, Types" {
		t.Errorf("modules = %q, want %q", got["modules"], "Intro, Types")
	}
	if got["level"] != "advanced" {
		t.Errorf("level = %q, want advanced", got["level"])
	}
	if _, ok := got[IDField]; ok {
		t.Error("form values must not include the id")
	}
}

func TestFormValuesDefaults(t *testing.T) {
	got := FormValues(Resources, nil)
	if got["category"] != "frontend" {
		t.Errorf("category default = %q, want frontend", got["category"])
	}
	if got["title"] != "" {
		t.Errorf("title default = %q, want empty", got["title"])
	}
}

func TestSchemasCoverEveryCollection(t *testing.T) {
	for _, c := range Collections {
		if len(Schemas[c]) == 0 {
			t.Errorf("no schema for %s", c)
		}
		for _, f := range Schemas[c] {
			if f.Kind == KindSelect && len(f.Options) == 0 {
				t.Errorf("%s.%s is a select without options", c, f.Name)
			}
		}
	}
}

func TestValidateContact(t *testing.T) {
	ok := ContactRequest{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}
	if err := ValidateContact(ok); err != nil {
		t.Errorf("ValidateContact(valid) = %v", err)
	}
	bad := ok
	bad.Email = "not-an-email"
	if err := ValidateContact(bad); err == nil {
		t.Error("expected invalid email to fail")
	}
	missing := ok
	missing.Subject = ""
	if err := ValidateContact(missing); err == nil {
		t.Error("expected missing subject to fail")
	}
}
