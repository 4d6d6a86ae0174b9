package impl

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/service"
)

// mockUserRepository is a testify mock for repository.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// mockPasswordHasher is a testify mock for service.PasswordHasher.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// mockTokenService is a testify mock for service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(token string) (*service.Claims, error) {
	args := m.Called(token)

	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}
