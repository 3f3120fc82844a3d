package core

import (
	"testing"
)

var formGroups = []*Group{
	{ID: 1, Slug: "go", Title: "Go"},
	{ID: 2, Slug: "misc", Title: "Miscellaneous"},
}

func TestValidatePostFormText(t *testing.T) {

	for _, text := range []string{"", "   ", "\t\n "} {
		_, errs := ValidatePostForm(text, "", formGroups)
		if errs.Field("text") == "" {
			t.Errorf("text %q: want a field error", text)
		}
	}

	input, errs := ValidatePostForm("  hello  ", "", formGroups)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if input.Text != "hello" {
		t.Errorf("got text %q, want trimmed %q", input.Text, "hello")
	}
	if input.Group != nil {
		t.Errorf("got group %v, want none", input.Group)
	}
}

func TestValidatePostFormGroup(t *testing.T) {

	input, errs := ValidatePostForm("hello", "2", formGroups)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if input.Group == nil || input.Group.ID != 2 {
		t.Errorf("got group %v, want id 2", input.Group)
	}

	for _, groupArg := range []string{"99", "x", "-1"} {
		_, errs := ValidatePostForm("hello", groupArg, formGroups)
		if errs.Field("group") == "" {
			t.Errorf("group %q: want a field error", groupArg)
		}
	}
}

func TestValidatePostFormBothInvalid(t *testing.T) {

	_, errs := ValidatePostForm(" ", "99", formGroups)
	if errs.Field("text") == "" || errs.Field("group") == "" {
		t.Errorf("want errors on both fields, got %v", errs)
	}
	if errs.Field("title") != "" {
		t.Errorf("unexpected error for unknown field: %q", errs.Field("title"))
	}
}
