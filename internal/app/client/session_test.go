package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStorage {
	t.Helper()

	storage, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	return storage
}

func TestSQLiteStorage_Flags(t *testing.T) {
	storage := newTestSQLite(t)

	_, err := storage.GetFlag("site_auth")
	assert.ErrorIs(t, err, ErrFlagNotFound)

	require.NoError(t, storage.SetFlag("site_auth", "true"))
	require.NoError(t, storage.SetFlag("site_auth", "false"))

	value, err := storage.GetFlag("site_auth")
	require.NoError(t, err)
	assert.Equal(t, "false", value)

	require.NoError(t, storage.DeleteFlag("site_auth"))
	_, err = storage.GetFlag("site_auth")
	assert.ErrorIs(t, err, ErrFlagNotFound)

	// удаление отсутствующего ключа не ошибка
	assert.NoError(t, storage.DeleteFlag("missing"))
}

func TestSession_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		loginErr  error
		wantAuth  bool
		wantFlag  bool
		wantLevel AuthLevel
	}{
		{name: "valid credentials", wantAuth: true, wantFlag: true},
		{name: "invalid credentials", loginErr: &StatusError{Code: 401, Message: "Invalid credentials"}, wantLevel: AuthLevelSession},
		{name: "server unavailable", loginErr: errors.New("connection refused"), wantLevel: AuthLevelSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := new(MockBackend)
			backend.On("Login", mock.Anything, "user", "user123").Return("user", tt.loginErr)
			storage := NewMemoryStorage()

			session := NewSession(backend, storage, "admin123", testLogger(t))
			err := session.Login(ctx, "user", "user123")

			if tt.loginErr != nil {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantLevel, authErr.Level)
				assert.Equal(t, Unauthenticated{}, session.State())
			} else {
				require.NoError(t, err)
				assert.Equal(t, Authenticated{Mode: ModePublic, Role: "user"}, session.State())
			}

			assert.Equal(t, tt.wantAuth, session.IsAuthenticated())
			_, flagErr := storage.GetFlag(authFlagKey)
			assert.Equal(t, tt.wantFlag, flagErr == nil)
		})
	}
}

func TestSession_RestoresFlag(t *testing.T) {
	storage := newTestSQLite(t)
	require.NoError(t, storage.SetFlag(authFlagKey, authFlagValue))

	session := NewSession(new(MockBackend), storage, "admin123", testLogger(t))

	assert.True(t, session.IsAuthenticated())
	// режим администратора не переживает перезапуск
	assert.False(t, session.IsAdmin())
	assert.Equal(t, ModePublic, session.Mode())
}

func TestSession_IgnoresUnexpectedFlag(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetFlag(authFlagKey, "yes"))

	session := NewSession(new(MockBackend), storage, "admin123", testLogger(t))

	assert.False(t, session.IsAuthenticated())
}

func TestSession_Elevate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		login     bool
		secret    string
		wantErr   error
		wantAdmin bool
	}{
		{name: "not authenticated", login: false, secret: "admin123", wantErr: ErrNotAuthenticated},
		{name: "wrong secret", login: true, secret: "guess", wantErr: ErrInvalidSecret},
		{name: "empty secret", login: true, secret: "", wantErr: ErrInvalidSecret},
		{name: "correct secret", login: true, secret: "admin123", wantAdmin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := new(MockBackend)
			backend.On("Login", mock.Anything, mock.Anything, mock.Anything).Return("admin", nil)

			session := NewSession(backend, NewMemoryStorage(), "admin123", testLogger(t))
			if tt.login {
				require.NoError(t, session.Login(ctx, "admin", "admin123"))
			}

			err := session.Elevate(tt.secret)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAdmin, session.IsAdmin())
			assert.Equal(t, tt.login, session.IsAuthenticated())
		})
	}
}

func TestSession_DemoteAndLogout(t *testing.T) {
	ctx := context.Background()

	backend := new(MockBackend)
	backend.On("Login", mock.Anything, "admin", "admin123").Return("admin", nil)
	storage := newTestSQLite(t)

	session := NewSession(backend, storage, "admin123", testLogger(t))
	require.NoError(t, session.Login(ctx, "admin", "admin123"))
	require.NoError(t, session.Elevate("admin123"))
	assert.Equal(t, ModeAdmin, session.Mode())

	session.Demote()
	assert.Equal(t, Authenticated{Mode: ModePublic, Role: "admin"}, session.State())

	require.NoError(t, session.Elevate("admin123"))
	require.NoError(t, session.Logout())

	assert.Equal(t, Unauthenticated{}, session.State())
	assert.False(t, session.IsAdmin())
	_, err := storage.GetFlag(authFlagKey)
	assert.ErrorIs(t, err, ErrFlagNotFound)

	// повторный вход снова в публичном режиме
	require.NoError(t, session.Login(ctx, "admin", "admin123"))
	assert.Equal(t, ModePublic, session.Mode())
}
