package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hr-console/internal/shared/form"
)

// requiredEmployeeFields mirrors the server's binding rules so an invalid
// draft is rejected before any request leaves the console.
var requiredEmployeeFields = []string{"full_name", "user_id", "department_id"}

// ValidationError names the required fields the draft is still missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// EmployeeWriter is the slice of Client a submission needs.
type EmployeeWriter interface {
	Create(ctx context.Context, fields map[string]string, photo *Photo) (EmployeeRecord, error)
	Update(ctx context.Context, id string, fields map[string]string, photo *Photo) (EmployeeRecord, error)
}

// SubmitCreate validates the draft and, only when it passes, posts it. A
// draft with a blank name or a zero user id never reaches the wire.
func SubmitCreate(ctx context.Context, api EmployeeWriter, draft form.Draft, photo *Photo) (EmployeeRecord, error) {
	if res := draft.Validate(requiredEmployeeFields...); !res.OK() {
		return EmployeeRecord{}, &ValidationError{Missing: res.Missing}
	}
	return api.Create(ctx, draftFields(draft), photo)
}

// SubmitUpdate applies the same gate to edits of an existing record.
func SubmitUpdate(ctx context.Context, api EmployeeWriter, id string, draft form.Draft, photo *Photo) (EmployeeRecord, error) {
	if res := draft.Validate(requiredEmployeeFields...); !res.OK() {
		return EmployeeRecord{}, &ValidationError{Missing: res.Missing}
	}
	return api.Update(ctx, id, draftFields(draft), photo)
}

// draftFields flattens the draft into the string form fields the wire
// contract expects.
func draftFields(d form.Draft) map[string]string {
	fields := make(map[string]string, len(d))
	for name := range d {
		switch v := d.Get(name).(type) {
		case string:
			fields[name] = v
		case int:
			fields[name] = strconv.Itoa(v)
		case int64:
			fields[name] = strconv.FormatInt(v, 10)
		case float64:
			fields[name] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			fields[name] = strconv.FormatBool(v)
		default:
			fields[name] = fmt.Sprint(v)
		}
	}
	return fields
}
