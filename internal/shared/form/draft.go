// Package form holds the draft of one in-progress entity edit and the
// required-field validation that gates submission.
package form

import "strings"

// Draft maps field names to their current values. Set never mutates the
// receiver; every update produces a fresh map, so two screens holding the
// same draft can never observe each other's edits.
type Draft map[string]any

func New() Draft {
	return Draft{}
}

// Set replaces one field and returns the updated copy.
func (d Draft) Set(name string, value any) Draft {
	next := make(Draft, len(d)+1)
	for k, v := range d {
		next[k] = v
	}
	next[name] = value
	return next
}

func (d Draft) Get(name string) any {
	return d[name]
}

// Result lists every required field that is currently empty, in the order
// the fields were asked for.
type Result struct {
	Missing []string
}

func (r Result) OK() bool {
	return len(r.Missing) == 0
}

// Validate checks the named required fields. A field is missing when it is
// absent, nil, a blank string, or a non-positive numeric identifier (the
// zero value of an id reference points at nothing).
func (d Draft) Validate(required ...string) Result {
	var missing []string
	for _, name := range required {
		if isEmpty(d[name]) {
			missing = append(missing, name)
		}
	}
	return Result{Missing: missing}
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case int:
		return val <= 0
	case int64:
		return val <= 0
	case float64:
		return val <= 0
	default:
		return false
	}
}
