package console

import (
	"encoding/json"
	"fmt"
)

// EmployeeRecord is the one canonical row shape the console works with.
// External payloads are mapped into it right after fetch, so nothing past
// the ingestion boundary ever branches on field spelling.
type EmployeeRecord struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	UserID         int64  `json:"user_id"`
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Position       string `json:"position"`
	Status         string `json:"status"`
	Phone          string `json:"phone"`
	HireDate       string `json:"hire_date"`
	PhotoPath      string `json:"photo_path"`
}

// NormalizeEmployee maps a loosely shaped payload onto the canonical record.
// Older backends spell fields differently (camelCase, legacy aliases), so
// each field is resolved through an ordered fallback list.
func NormalizeEmployee(raw map[string]any) EmployeeRecord {
	rec := EmployeeRecord{
		ID:             pickString(raw, "id", "employee_id", "employeeId"),
		EmployeeNumber: pickString(raw, "employee_number", "employeeNumber", "nip"),
		FullName:       pickString(raw, "full_name", "fullName", "name"),
		UserID:         pickInt64(raw, "user_id", "userId"),
		DepartmentID:   pickString(raw, "department_id", "departmentId"),
		DepartmentName: pickString(raw, "department_name", "departmentName"),
		Position:       pickString(raw, "position", "job_title", "jobTitle"),
		Status:         pickString(raw, "status"),
		Phone:          pickString(raw, "phone", "phone_number", "phoneNumber"),
		HireDate:       pickString(raw, "hire_date", "hireDate"),
		PhotoPath:      pickString(raw, "photo_path", "photoPath", "photo"),
	}

	// Nested department objects win over flat aliases when both appear.
	if dept, ok := raw["department"].(map[string]any); ok {
		if name := pickString(dept, "name"); name != "" {
			rec.DepartmentName = name
		}
		if id := pickString(dept, "id"); id != "" && rec.DepartmentID == "" {
			rec.DepartmentID = id
		}
	}

	return rec
}

func pickString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return fmt.Sprintf("%v", t)
		case json.Number:
			return t.String()
		}
	}
	return ""
}

func pickInt64(raw map[string]any, keys ...string) int64 {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			return int64(t)
		case int64:
			return t
		case json.Number:
			if n, err := t.Int64(); err == nil {
				return n
			}
		}
	}
	return 0
}
