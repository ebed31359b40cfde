package console_test

import (
	"context"
	"testing"

	"hr-console/internal/console"
	"hr-console/internal/shared/form"

	"github.com/stretchr/testify/assert"
)

type recordingWriter struct {
	creates int
	updates int
	fields  map[string]string
	id      string
}

func (w *recordingWriter) Create(_ context.Context, fields map[string]string, _ *console.Photo) (console.EmployeeRecord, error) {
	w.creates++
	w.fields = fields
	return console.EmployeeRecord{ID: "e-1"}, nil
}

func (w *recordingWriter) Update(_ context.Context, id string, fields map[string]string, _ *console.Photo) (console.EmployeeRecord, error) {
	w.updates++
	w.id = id
	w.fields = fields
	return console.EmployeeRecord{ID: id}, nil
}

func validDraft() form.Draft {
	return form.New().
		Set("full_name", "Jane Doe").
		Set("user_id", int64(42)).
		Set("department_id", "0d9c3f1e-6f4a-4d36-9f7e-1a2b3c4d5e6f").
		Set("position", "Engineer")
}

func TestSubmitCreate_ZeroUserIDNeverReachesTheWire(t *testing.T) {
	api := &recordingWriter{}
	draft := validDraft().Set("user_id", 0)

	_, err := console.SubmitCreate(context.Background(), api, draft, nil)

	var verr *console.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"user_id"}, verr.Missing)
	assert.Zero(t, api.creates)
}

func TestSubmitCreate_BlankNameIsReportedByFieldName(t *testing.T) {
	api := &recordingWriter{}
	draft := validDraft().Set("full_name", "   ")

	_, err := console.SubmitCreate(context.Background(), api, draft, nil)

	var verr *console.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Missing, "full_name")
	assert.Zero(t, api.creates)
}

func TestSubmitCreate_ValidDraftPostsStringFields(t *testing.T) {
	api := &recordingWriter{}

	rec, err := console.SubmitCreate(context.Background(), api, validDraft(), nil)

	assert.NoError(t, err)
	assert.Equal(t, "e-1", rec.ID)
	assert.Equal(t, 1, api.creates)
	assert.Equal(t, "Jane Doe", api.fields["full_name"])
	assert.Equal(t, "42", api.fields["user_id"])
	assert.Equal(t, "Engineer", api.fields["position"])
}

func TestSubmitUpdate_SameGateAppliesToEdits(t *testing.T) {
	api := &recordingWriter{}
	draft := validDraft().Set("department_id", "")

	_, err := console.SubmitUpdate(context.Background(), api, "e-9", draft, nil)

	var verr *console.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Zero(t, api.updates)
}

func TestSubmitUpdate_ValidDraftTargetsTheRecord(t *testing.T) {
	api := &recordingWriter{}

	rec, err := console.SubmitUpdate(context.Background(), api, "e-9", validDraft(), nil)

	assert.NoError(t, err)
	assert.Equal(t, "e-9", rec.ID)
	assert.Equal(t, 1, api.updates)
	assert.Equal(t, "e-9", api.id)
}
