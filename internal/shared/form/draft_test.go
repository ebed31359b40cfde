package form_test

import (
	"testing"

	"hr-console/internal/shared/form"

	"github.com/stretchr/testify/assert"
)

func TestDraft_SetLeavesOriginalUntouched(t *testing.T) {
	base := form.New().
		Set("full_name", "Jane").
		Set("phone", "555-0101")

	edited := base.Set("phone", "555-0202")

	assert.Equal(t, "555-0101", base.Get("phone"))
	assert.Equal(t, "555-0202", edited.Get("phone"))
	assert.Equal(t, "Jane", edited.Get("full_name"))
}

func TestValidate_ReportsEveryMissingRequiredField(t *testing.T) {
	d := form.New().
		Set("full_name", "").
		Set("department_id", "d-1")

	res := d.Validate("full_name", "user_id", "department_id")

	assert.False(t, res.OK())
	assert.Equal(t, []string{"full_name", "user_id"}, res.Missing)
}

func TestValidate_MissingFullNameNamesExactlyFullName(t *testing.T) {
	d := form.New().
		Set("user_id", 7).
		Set("department_id", "d-1")

	res := d.Validate("full_name", "user_id", "department_id")

	assert.Equal(t, []string{"full_name"}, res.Missing)
}

func TestValidate_ZeroUserIDCountsAsMissing(t *testing.T) {
	d := form.New().
		Set("full_name", "Jane").
		Set("user_id", 0).
		Set("department_id", "d-1")

	res := d.Validate("full_name", "user_id", "department_id")

	assert.False(t, res.OK())
	assert.Equal(t, []string{"user_id"}, res.Missing)
}

func TestValidate_AllRequiredPresentSucceeds(t *testing.T) {
	d := form.New().
		Set("full_name", "Jane").
		Set("user_id", int64(42)).
		Set("department_id", "d-1")

	res := d.Validate("full_name", "user_id", "department_id")

	assert.True(t, res.OK())
	assert.Empty(t, res.Missing)
}

func TestValidate_BlankStringsAndWhitespaceAreEmpty(t *testing.T) {
	d := form.New().
		Set("title", "   ").
		Set("start", "2025-01-01T09:00").
		Set("end", "2025-01-01T17:00")

	res := d.Validate("title", "start", "end")

	assert.Equal(t, []string{"title"}, res.Missing)
}
