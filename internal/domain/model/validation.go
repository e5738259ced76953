package model

import (
	"sort"
	"strings"
)

// ValidationErrors maps a form field name to one or more human-readable
// problems with the submitted value. It implements error so that a submission
// workflow can return it through a single error result.
type ValidationErrors map[string][]string

// Add appends a message to the field's error list.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Merge folds other's messages into v.
func (v ValidationErrors) Merge(other ValidationErrors) {
	for field, messages := range other {
		v[field] = append(v[field], messages...)
	}
}

// HasErrors reports whether any field failed validation.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, field := range fields {
		b.WriteString(" ")
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(strings.Join(v[field], "; "))
	}
	return b.String()
}
