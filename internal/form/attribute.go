package form

import "strings"

// ValidateAttributeName checks the single input behind the add-attribute
// forms. The label names the attribute kind, e.g. "Category".
func ValidateAttributeName(label, name string) Errors {
	errs := Errors{}
	if strings.TrimSpace(name) == "" {
		errs["name"] = label + " name cannot be empty"
	}
	return errs
}
