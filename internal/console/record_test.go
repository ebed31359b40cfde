package console_test

import (
	"testing"

	"hr-console/internal/console"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmployee(t *testing.T) {
	t.Run("canonical field names pass through", func(t *testing.T) {
		rec := console.NormalizeEmployee(map[string]any{
			"id":              "abc",
			"full_name":       "Jane Doe",
			"user_id":         float64(42),
			"employee_number": "EMP-000001",
			"status":          "active",
		})

		assert.Equal(t, "Jane Doe", rec.FullName)
		assert.Equal(t, int64(42), rec.UserID)
		assert.Equal(t, "EMP-000001", rec.EmployeeNumber)
	})

	t.Run("camel case and legacy aliases resolve to the same record", func(t *testing.T) {
		rec := console.NormalizeEmployee(map[string]any{
			"id":             "abc",
			"fullName":       "Jane Doe",
			"userId":         float64(42),
			"nip":            "EMP-000001",
			"departmentName": "Engineering",
			"hireDate":       "2023-02-01",
		})

		assert.Equal(t, "Jane Doe", rec.FullName)
		assert.Equal(t, int64(42), rec.UserID)
		assert.Equal(t, "EMP-000001", rec.EmployeeNumber)
		assert.Equal(t, "Engineering", rec.DepartmentName)
		assert.Equal(t, "2023-02-01", rec.HireDate)
	})

	t.Run("name is the last fallback for the full name", func(t *testing.T) {
		rec := console.NormalizeEmployee(map[string]any{"name": "Jane Doe"})
		assert.Equal(t, "Jane Doe", rec.FullName)
	})

	t.Run("nested department object wins over flat aliases", func(t *testing.T) {
		rec := console.NormalizeEmployee(map[string]any{
			"department_name": "Old Name",
			"department": map[string]any{
				"id":   "dep-1",
				"name": "Engineering",
			},
		})

		assert.Equal(t, "Engineering", rec.DepartmentName)
		assert.Equal(t, "dep-1", rec.DepartmentID)
	})

	t.Run("missing fields normalize to zero values", func(t *testing.T) {
		rec := console.NormalizeEmployee(map[string]any{})
		assert.Empty(t, rec.FullName)
		assert.Zero(t, rec.UserID)
	})
}
