package service

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LabelError reports a service name that cannot be used as a label.
type LabelError struct {
	Value  string
	Reason string
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("invalid service label %q: %s", e.Value, e.Reason)
}

// Label is the name under which the native manager tracks a service.
// It keeps the caller's string exactly as given.
type Label struct {
	raw string
}

// ParseLabel converts s into a Label. Only strings no native manager can
// store are rejected; everything else is left for the manager to judge.
func ParseLabel(s string) (Label, error) {
	if s == "" {
		return Label{}, &LabelError{Value: s, Reason: "empty"}
	}
	if !utf8.ValidString(s) {
		return Label{}, &LabelError{Value: s, Reason: "not valid UTF-8"}
	}
	if strings.ContainsRune(s, 0) {
		return Label{}, &LabelError{Value: s, Reason: "contains a NUL byte"}
	}
	return Label{raw: s}, nil
}

func (l Label) String() string {
	return l.raw
}

// Qualifier returns the leading component of a label with three or more
// dot-separated parts, e.g. "com" in "com.example.worker".
func (l Label) Qualifier() string {
	parts := strings.Split(l.raw, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[0]
}

// Organization returns "example" for both "com.example.worker" and
// "example.worker".
func (l Label) Organization() string {
	parts := strings.Split(l.raw, ".")
	switch {
	case len(parts) == 2:
		return parts[0]
	case len(parts) >= 3:
		return parts[1]
	}
	return ""
}

// Application returns the remainder after qualifier and organization.
func (l Label) Application() string {
	parts := strings.Split(l.raw, ".")
	switch {
	case len(parts) == 2:
		return parts[1]
	case len(parts) >= 3:
		return strings.Join(parts[2:], ".")
	}
	return l.raw
}
