package user

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, login, passwordHash, role string) (int, error) {
	args := m.Called(ctx, login, passwordHash, role)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByLogin(ctx context.Context, login string) (User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(User), args.Error(1)
}

func newTestService(repo Repository) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, NewCredentialsValidator(), log).WithCost(bcrypt.MinCost)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Seed(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	var hashes = map[string]string{}
	mockRepo.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			hashes[args.String(1)] = args.String(2)
		}).
		Return(1, nil)

	err := service.Seed(context.Background(), map[string]string{
		"user":  "user123",
		"admin": "admin123",
	})
	require.NoError(t, err)

	mockRepo.AssertCalled(t, "Save", mock.Anything, "admin", mock.Anything, RoleAdmin)
	mockRepo.AssertCalled(t, "Save", mock.Anything, "user", mock.Anything, RoleUser)

	assert.NotEqual(t, "user123", hashes["user"])
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashes["user"]), []byte("user123")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashes["admin"]), []byte("admin123")))
}

func TestService_Seed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		users   map[string]string
		repoErr error
		wantErr error
	}{
		{name: "short login", users: map[string]string{"ab": "pass123"}, wantErr: ErrInvalidInput},
		{name: "password without digit", users: map[string]string{"user": "password"}, wantErr: ErrInvalidInput},
		{name: "repository error", users: map[string]string{"user": "user123"}, repoErr: errors.New("database error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)
			mockRepo.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, tt.repoErr)

			err := service.Seed(context.Background(), tt.users)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.Contains(t, err.Error(), "database error")
			}
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	stored := User{ID: 2, Login: "admin", Password: "", Role: RoleAdmin}

	tests := []struct {
		name     string
		login    string
		password string
		setup    func(m *MockRepository, t *testing.T)
		wantErr  error
		wantRole string
	}{
		{
			name:     "valid credentials",
			login:    "admin",
			password: "admin123",
			setup: func(m *MockRepository, t *testing.T) {
				u := stored
				u.Password = hashOf(t, "admin123")
				m.On("FindByLogin", mock.Anything, "admin").Return(u, nil)
			},
			wantRole: RoleAdmin,
		},
		{
			name:     "wrong password",
			login:    "admin",
			password: "admin124",
			setup: func(m *MockRepository, t *testing.T) {
				u := stored
				u.Password = hashOf(t, "admin123")
				m.On("FindByLogin", mock.Anything, "admin").Return(u, nil)
			},
			wantErr: ErrInvalidAuth,
		},
		{
			name:     "unknown login",
			login:    "guest",
			password: "guest123",
			setup: func(m *MockRepository, t *testing.T) {
				m.On("FindByLogin", mock.Anything, "guest").Return(User{}, ErrNotFound)
			},
			wantErr: ErrInvalidAuth,
		},
		{
			name:     "invalid hash",
			login:    "admin",
			password: "admin123",
			setup: func(m *MockRepository, t *testing.T) {
				u := stored
				u.Password = "invalidhash"
				m.On("FindByLogin", mock.Anything, "admin").Return(u, nil)
			},
			wantErr: ErrInvalidAuth,
		},
		{
			name:     "malformed login skips repository",
			login:    "a b",
			password: "admin123",
			setup:    func(m *MockRepository, t *testing.T) {},
			wantErr:  ErrInvalidAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setup(mockRepo, t)
			service := newTestService(mockRepo)

			u, err := service.Authenticate(context.Background(), tt.login, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, u.Role)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Authenticate_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("FindByLogin", mock.Anything, "admin").Return(User{}, errors.New("connection reset"))
	service := newTestService(mockRepo)

	_, err := service.Authenticate(context.Background(), "admin", "admin123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidAuth)
}

func TestRoleFor(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleFor("admin"))
	assert.Equal(t, RoleUser, RoleFor("user"))
	assert.Equal(t, RoleUser, RoleFor("operator"))
}
