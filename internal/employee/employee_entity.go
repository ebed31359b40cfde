package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

type Employee struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	UserID         int64          `gorm:"column:user_id;not null;uniqueIndex"`
	DepartmentID   uuid.UUID      `gorm:"column:department_id;type:uuid;not null;index"`
	EmployeeNumber string         `gorm:"column:employee_number;type:varchar(20);uniqueIndex"`
	FullName       string         `gorm:"column:full_name;type:varchar(255);not null"`
	Gender         string         `gorm:"column:gender;type:varchar(10)"`
	DateOfBirth    *time.Time     `gorm:"column:date_of_birth;type:date"`
	Phone          string         `gorm:"column:phone;type:varchar(30)"`
	HireDate       *time.Time     `gorm:"column:hire_date;type:date"`
	Status         string         `gorm:"column:status;type:varchar(20);not null;default:'active'"`
	Position       string         `gorm:"column:position;type:varchar(100)"`
	Address        string         `gorm:"column:address;type:text"`
	PhotoPath      string         `gorm:"column:photo_path;type:text"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Department *DepartmentRef `gorm:"foreignKey:DepartmentID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

// DepartmentRef is the minimal join projection used to label rows without
// loading the full department entity.
type DepartmentRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (DepartmentRef) TableName() string {
	return "departments"
}
