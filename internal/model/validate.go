package model

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Field rule bounds. The rule set here is intentionally small — the contract
// that matters is how validation failures propagate, not the rules themselves.
const (
	MinTitleLength = 4
	MaxTitleLength = 200
	MaxTextLength  = 2000
)

// FieldError names one offending field with a human-readable reason.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates field-level rule failures. It is raised by
// entity validation and caught exactly at the use case boundary, where the
// representations needed to enrich it are available.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	paths := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		paths[i] = f.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(paths, ", "))
}

// Validate checks the item's field-level rules. Returns *ValidationError
// listing every offending field, or nil.
func (item Item) Validate() error {
	var fields []FieldError

	titleLen := utf8.RuneCountInString(item.Title)
	if titleLen < MinTitleLength {
		fields = append(fields, FieldError{
			Field:  "title",
			Reason: fmt.Sprintf("must be at least %d characters", MinTitleLength),
		})
	} else if titleLen > MaxTitleLength {
		fields = append(fields, FieldError{
			Field:  "title",
			Reason: fmt.Sprintf("must be at most %d characters", MaxTitleLength),
		})
	}

	if utf8.RuneCountInString(item.Description) > MaxTextLength {
		fields = append(fields, FieldError{
			Field:  "description",
			Reason: fmt.Sprintf("must be at most %d characters", MaxTextLength),
		})
	}

	if item.Ordinal < 0 {
		fields = append(fields, FieldError{Field: "ordinal", Reason: "must not be negative"})
	}

	if reason := checkURL(item.URL); reason != "" {
		fields = append(fields, FieldError{Field: "url", Reason: reason})
	}
	if reason := checkURL(item.ImageURL); reason != "" {
		fields = append(fields, FieldError{Field: "image_url", Reason: reason})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func checkURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "must be an absolute http(s) URL"
	}
	return ""
}
