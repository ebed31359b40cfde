package auth_test

import (
	"context"
	"errors"
	"testing"

	"hr-console/internal/auth"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepo struct {
	usersByEmail map[string]*auth.User
	usersByID    map[int64]*auth.User
	nextID       int64
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		usersByEmail: map[string]*auth.User{},
		usersByID:    map[int64]*auth.User{},
		nextID:       1,
	}
}

func (f *fakeAuthRepo) Create(ctx context.Context, user *auth.User) error {
	if _, exists := f.usersByEmail[user.Email]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	user.ID = f.nextID
	f.nextID++
	f.usersByEmail[user.Email] = user
	f.usersByID[user.ID] = user
	return nil
}

func (f *fakeAuthRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	if u, ok := f.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) GetByID(ctx context.Context, id int64) (*auth.User, error) {
	if u, ok := f.usersByID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func seedUser(t *testing.T, repo *fakeAuthRepo, email, password string, active bool) *auth.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	u := &auth.User{
		FullName: "Jane Doe",
		Email:    email,
		Password: string(hashed),
		Role:     "HR",
		IsActive: active,
	}
	assert.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("success returns tokens and profile", func(t *testing.T) {
		repo := newFakeAuthRepo()
		seedUser(t, repo, "jane@example.com", "hunter22", true)
		svc := auth.NewService(repo)

		access, refresh, resp, err := svc.Login(ctx, "jane@example.com", "hunter22")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, "jane@example.com", resp.Email)
		assert.Equal(t, "HR", resp.Role)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		repo := newFakeAuthRepo()
		seedUser(t, repo, "jane@example.com", "hunter22", true)
		svc := auth.NewService(repo)

		_, _, _, err := svc.Login(ctx, "jane@example.com", "wrong")

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email rejected with the same error", func(t *testing.T) {
		svc := auth.NewService(newFakeAuthRepo())

		_, _, _, err := svc.Login(ctx, "nobody@example.com", "hunter22")

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("inactive account rejected", func(t *testing.T) {
		repo := newFakeAuthRepo()
		seedUser(t, repo, "jane@example.com", "hunter22", false)
		svc := auth.NewService(repo)

		_, _, _, err := svc.Login(ctx, "jane@example.com", "hunter22")

		assert.ErrorIs(t, err, auth.ErrAccountInactive)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	repo := newFakeAuthRepo()
	seedUser(t, repo, "jane@example.com", "hunter22", true)
	svc := auth.NewService(repo)

	_, refresh, _, err := svc.Login(ctx, "jane@example.com", "hunter22")
	assert.NoError(t, err)

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		newAccess, newRefresh, resp, err := svc.Refresh(ctx, refresh)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, "jane@example.com", resp.Email)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, _, _, err := svc.Refresh(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		repo := newFakeAuthRepo()
		svc := auth.NewService(repo)

		resp, err := svc.Register(ctx, auth.RegisterRequest{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Password: "hunter22",
		})

		assert.NoError(t, err)
		assert.Positive(t, resp.ID)

		stored := repo.usersByEmail["jane@example.com"]
		assert.NotEqual(t, "hunter22", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		repo := newFakeAuthRepo()
		seedUser(t, repo, "jane@example.com", "hunter22", true)
		svc := auth.NewService(repo)

		_, err := svc.Register(ctx, auth.RegisterRequest{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Password: "hunter22",
		})

		assert.ErrorIs(t, err, auth.ErrEmailTaken)
	})
}
