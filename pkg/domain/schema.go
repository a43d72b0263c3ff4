package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldKind selects how a form field is edited and encoded.
type FieldKind int

const (
	KindText     FieldKind = iota // single line
	KindTextArea                  // multi-line
	KindSelect                    // one of Options
	KindList                      // comma-separated, sent as []string
)

// Field describes one editable field of a collection.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	Options  []string // KindSelect only
}

// Schemas is the form layout for every collection, in display order.
var Schemas = map[Collection][]Field{
	Projects: {
		{Name: "title", Label: "Title", Kind: KindText, Required: true},
		{Name: "description", Label: "Description", Kind: KindTextArea, Required: true},
		{Name: "image", Label: "Image URL", Kind: KindText, Required: true},
		{Name: "technologies", Label: "Technologies (comma-separated)", Kind: KindList},
		{Name: "status", Label: "Status", Kind: KindSelect, Required: true, Options: ProjectStatuses},
		{Name: "demoUrl", Label: "Demo URL", Kind: KindText},
		{Name: "githubUrl", Label: "GitHub URL", Kind: KindText},
	},
	Resources: {
		{Name: "title", Label: "Title", Kind: KindText, Required: true},
		{Name: "description", Label: "Description", Kind: KindTextArea, Required: true},
		{Name: "category", Label: "Category", Kind: KindSelect, Required: true, Options: ResourceCategories},
		{Name: "url", Label: "URL", Kind: KindText, Required: true},
		{Name: "icon", Label: "Icon Class (e.g., fas fa-code)", Kind: KindText},
	},
	Courses: {
		{Name: "title", Label: "Title", Kind: KindText, Required: true},
		{Name: "description", Label: "Description", Kind: KindTextArea, Required: true},
		{Name: "image", Label: "Image URL", Kind: KindText, Required: true},
		{Name: "duration", Label: "Duration", Kind: KindText, Required: true},
		{Name: "level", Label: "Level", Kind: KindSelect, Required: true, Options: CourseLevels},
		{Name: "instructor", Label: "Instructor", Kind: KindText, Required: true},
		{Name: "modules", Label: "Modules (comma-separated)", Kind: KindList},
		{Name: "skills", Label: "Skills (comma-separated)", Kind: KindList},
		{Name: "certificateUrl", Label: "Certificate URL", Kind: KindText},
	},
	Contacts: {
		{Name: "name", Label: "Name", Kind: KindText, Required: true},
		{Name: "email", Label: "Email", Kind: KindText, Required: true},
		{Name: "subject", Label: "Subject", Kind: KindText, Required: true},
		{Name: "message", Label: "Message", Kind: KindTextArea, Required: true},
	},
}

// Editable reports whether the console offers add/edit forms for c.
// Contacts are created by the public form only.
func (c Collection) Editable() bool {
	return c.Valid() && c != Contacts
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError reports a form field that failed validation.
type FieldError struct {
	Field  Field
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", strings.ToLower(e.Field.Label), e.Reason)
}

// BuildPayload validates raw form input against the collection schema and
// returns the write body. List fields are normalized with SplitList. Every
// schema field is present, so an update replaces all editable fields.
func BuildPayload(c Collection, values map[string]string) (Payload, error) {
	fields, ok := Schemas[c]
	if !ok {
		return nil, fmt.Errorf("domain.BuildPayload: unknown collection %q", c)
	}
	p := make(Payload, len(fields))
	for _, f := range fields {
		raw := strings.TrimSpace(values[f.Name])
		if err := checkField(f, raw); err != nil {
			return nil, err
		}
		if f.Kind == KindList {
			p[f.Name] = SplitList(raw)
			continue
		}
		p[f.Name] = raw
	}
	return p, nil
}

func checkField(f Field, raw string) error {
	var tags []string
	if f.Required {
		tags = append(tags, "required")
	} else if raw == "" {
		return nil
	}
	if f.Kind == KindSelect {
		tags = append(tags, "oneof="+strings.Join(f.Options, " "))
	}
	if len(tags) == 0 {
		return nil
	}
	err := validate.Var(raw, strings.Join(tags, ","))
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "oneof" {
		return &FieldError{Field: f, Reason: "must be one of " + strings.Join(f.Options, ", ")}
	}
	return &FieldError{Field: f, Reason: "is required"}
}

// FormValues pre-fills form input from an existing record. A nil record
// yields defaults: the first option for selects, empty text otherwise.
func FormValues(c Collection, r Record) map[string]string {
	out := make(map[string]string)
	for _, f := range Schemas[c] {
		switch {
		case r != nil && f.Kind == KindList:
			out[f.Name] = JoinList(r.Strings(f.Name))
		case r != nil:
			out[f.Name] = r.String(f.Name)
		}
		if f.Kind == KindSelect && out[f.Name] == "" && len(f.Options) > 0 {
			out[f.Name] = f.Options[0]
		}
	}
	return out
}

// ValidateContact checks a public contact submission.
func ValidateContact(req ContactRequest) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Tag() == "email" {
				return fmt.Errorf("%s is not a valid email address", strings.ToLower(fe.Field()))
			}
			return fmt.Errorf("%s is required", strings.ToLower(fe.Field()))
		}
		return fmt.Errorf("domain.ValidateContact: %w", err)
	}
	return nil
}
