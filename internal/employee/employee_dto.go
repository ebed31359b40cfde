package employee

// CreateEmployeeRequest binds from either a JSON body or a multipart form
// (the console submits multipart when a photo is attached).
type CreateEmployeeRequest struct {
	FullName     string `json:"full_name" form:"full_name" binding:"required"`
	UserID       int64  `json:"user_id" form:"user_id" binding:"required,gt=0"`
	DepartmentID string `json:"department_id" form:"department_id" binding:"required,uuid"`
	Gender       string `json:"gender" form:"gender" binding:"omitempty,oneof=Male Female Other"`
	DateOfBirth  string `json:"date_of_birth" form:"date_of_birth"`
	Phone        string `json:"phone" form:"phone"`
	HireDate     string `json:"hire_date" form:"hire_date"`
	Status       string `json:"status" form:"status" binding:"omitempty,oneof=active inactive pending"`
	Position     string `json:"position" form:"position"`
	Address      string `json:"address" form:"address"`
}

type UpdateEmployeeRequest struct {
	FullName     string `json:"full_name" form:"full_name" binding:"required"`
	UserID       int64  `json:"user_id" form:"user_id" binding:"required,gt=0"`
	DepartmentID string `json:"department_id" form:"department_id" binding:"required,uuid"`
	Gender       string `json:"gender" form:"gender" binding:"omitempty,oneof=Male Female Other"`
	DateOfBirth  string `json:"date_of_birth" form:"date_of_birth"`
	Phone        string `json:"phone" form:"phone"`
	HireDate     string `json:"hire_date" form:"hire_date"`
	Status       string `json:"status" form:"status" binding:"omitempty,oneof=active inactive pending"`
	Position     string `json:"position" form:"position"`
	Address      string `json:"address" form:"address"`
}

// ListQuery mirrors the grid's filter criteria. Department, Position and
// Status accept "all" (or empty) to match everything.
type ListQuery struct {
	Search     string
	Department string
	Position   string
	Status     string
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID             string                  `json:"id"`
	EmployeeNumber string                  `json:"employee_number"`
	FullName       string                  `json:"full_name"`
	UserID         int64                   `json:"user_id"`
	DepartmentID   string                  `json:"department_id"`
	Department     *DepartmentRefResponse  `json:"department,omitempty"`
	Gender         string                  `json:"gender,omitempty"`
	DateOfBirth    string                  `json:"date_of_birth,omitempty"`
	Phone          string                  `json:"phone,omitempty"`
	HireDate       string                  `json:"hire_date,omitempty"`
	Status         string                  `json:"status"`
	Position       string                  `json:"position,omitempty"`
	Address        string                  `json:"address,omitempty"`
	PhotoPath      string                  `json:"photo_path,omitempty"`
	CreatedAt      string                  `json:"created_at,omitempty"`
	UpdatedAt      string                  `json:"updated_at,omitempty"`
}

type DepartmentRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
