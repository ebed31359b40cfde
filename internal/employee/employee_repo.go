package employee

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindPage(ctx context.Context, q ListQuery) ([]Employee, int64, error)
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	DepartmentExists(ctx context.Context, departmentID string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func filterScope(q ListQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search := strings.TrimSpace(q.Search); search != "" {
			like := "%" + strings.ToLower(search) + "%"
			db = db.Where("LOWER(full_name) LIKE ? OR LOWER(employee_number) LIKE ?", like, like)
		}
		if q.Department != "" && q.Department != "all" {
			db = db.Where("department_id = ?", q.Department)
		}
		if q.Position != "" && q.Position != "all" {
			db = db.Where("position = ?", q.Position)
		}
		if q.Status != "" && q.Status != "all" {
			db = db.Where("status = ?", q.Status)
		}
		return db
	}
}

// FindPage pushes the grid's filter criteria into SQL and returns one page
// plus the filtered total, so the handler can report a consistent count.
func (r *repository) FindPage(ctx context.Context, q ListQuery) ([]Employee, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(filterScope(q)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var empls []Employee
	err = r.db.WithContext(ctx).
		Scopes(filterScope(q)).
		Preload("Department").
		Order("created_at ASC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&empls).Error
	if err != nil {
		return nil, 0, err
	}

	return empls, total, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("id = ?", departmentID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}
