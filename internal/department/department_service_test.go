package department_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"hr-console/internal/department"
	departmentMock "hr-console/internal/department/mock"
	"hr-console/internal/shared/listview"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	svc := department.NewService(db, repo, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
	}
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates the cached list", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *department.Department) error {
				assert.Equal(t, "Engineering", d.Name)
				assert.NotEqual(t, uuid.Nil, d.ID)
				return nil
			})
		deps.redisMock.ExpectDel("departments:all").SetVal(1)

		resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{
			Name:        "Engineering",
			Description: "Product engineering",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []department.DepartmentResponse{{ID: uuid.NewString(), Name: "HR"}}
		jsonResp, _ := json.Marshal(cached)
		deps.redisMock.ExpectGet("departments:all").SetVal(string(jsonResp))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "HR", resp[0].Name)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet("departments:all").RedisNil()
		deps.repo.EXPECT().
			FindAll(ctx).
			Return([]department.Department{{ID: uuid.New(), Name: "Finance"}}, nil)
		deps.redisMock.Regexp().ExpectSet("departments:all", `.*Finance.*`, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Finance", resp[0].Name)
	})
}

func TestDepartmentService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("filters and windows the catalogue in memory", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		depts := []department.Department{
			{ID: uuid.New(), Name: "Engineering"},
			{ID: uuid.New(), Name: "Human Resources"},
			{ID: uuid.New(), Name: "Engineering Support"},
		}
		deps.redisMock.ExpectGet("departments:all").RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(depts, nil)
		deps.redisMock.Regexp().ExpectSet("departments:all", `.*`, 30*time.Minute).SetVal("OK")

		page, err := deps.service.List(ctx,
			listview.Criteria{Query: "engineering"},
			listview.Window{Page: 1, Size: 10},
		)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		assert.Len(t, page.Rows, 2)
		assert.Equal(t, "Engineering", page.Rows[0].Name)
		assert.Equal(t, "Engineering Support", page.Rows[1].Name)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("department with employees is refused", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&department.Department{}, nil)
		deps.repo.EXPECT().CountEmployees(ctx, id).Return(int64(4), nil)

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, department.ErrDepartmentInUse)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown department maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	})

	t.Run("empty department is removed and cache dropped", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&department.Department{}, nil)
		deps.repo.EXPECT().CountEmployees(ctx, id).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)
		deps.redisMock.ExpectDel("departments:all").SetVal(1)

		err := deps.service.Delete(ctx, id)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
