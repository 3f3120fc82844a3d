package core

import (
	"strconv"
	"strings"
)

// A PostInput is a validated form submission, ready for persistence.
type PostInput struct {
	Text  string
	Group *Group // nil clears the group
}

type FieldError struct {
	Field   string
	Message string
}

type FieldErrors []FieldError

// Field returns the first message for the named field, or the empty string.
func (errs FieldErrors) Field(name string) string {
	for _, e := range errs {
		if e.Field == name {
			return e.Message
		}
	}
	return ""
}

// ValidatePostForm checks a submitted post form against the existing groups.
// Text is trimmed and must not be empty. An empty group value means "no group",
// anything else must be the id of one of the given groups.
// It returns either a normalized input or the field errors to re-render with.
func ValidatePostForm(text string, groupArg string, groups []*Group) (PostInput, FieldErrors) {

	var input PostInput
	var errs FieldErrors

	input.Text = strings.TrimSpace(text)
	if input.Text == "" {
		errs = append(errs, FieldError{"text", "Text must not be empty."})
	}

	if groupArg != "" {
		if id, err := strconv.Atoi(groupArg); err == nil {
			for _, g := range groups {
				if g.ID == id {
					input.Group = g
					break
				}
			}
		}
		if input.Group == nil {
			errs = append(errs, FieldError{"group", "Choose an existing group."})
		}
	}

	return input, errs
}
