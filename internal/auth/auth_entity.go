package auth

import (
	"time"

	"gorm.io/gorm"
)

// User is one console account. Employee records reference it through its
// numeric id.
type User struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement"`
	FullName  string         `gorm:"column:full_name;type:varchar(255);not null"`
	Email     string         `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Password  string         `gorm:"column:password;type:text;not null"`
	Role      string         `gorm:"column:role;type:varchar(50);not null;default:'EMPLOYEE'"`
	IsActive  bool           `gorm:"column:is_active;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}
