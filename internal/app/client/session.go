package client

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"

	"golang.org/x/exp/slog"
)

const (
	authFlagKey   = "site_auth"
	authFlagValue = "true"
)

type Mode int

const (
	ModePublic Mode = iota
	ModeAdmin
)

func (m Mode) String() string {
	if m == ModeAdmin {
		return "admin"
	}
	return "public"
}

// State - состояние сессии: Unauthenticated или Authenticated{Mode}.
// Режим администратора без входа непредставим.
type State interface {
	isState()
}

type Unauthenticated struct{}

type Authenticated struct {
	Mode Mode
	Role string
}

func (Unauthenticated) isState() {}
func (Authenticated) isState()   {}

// Session управляет входом и режимом администратора. Вход сохраняется в
// хранилище клиента, режим администратора живет только в памяти.
type Session struct {
	auth    Authenticator
	storage Storage
	secret  string
	log     *slog.Logger

	mu    sync.RWMutex
	state State
}

func NewSession(auth Authenticator, storage Storage, secret string, log *slog.Logger) *Session {
	s := &Session{
		auth:    auth,
		storage: storage,
		secret:  secret,
		log:     log.With(slog.String("component", "session")),
		state:   Unauthenticated{},
	}

	value, err := storage.GetFlag(authFlagKey)
	switch {
	case err == nil && value == authFlagValue:
		s.state = Authenticated{Mode: ModePublic}
		s.log.Debug("Вход восстановлен из хранилища")
	case err != nil && !errors.Is(err, ErrFlagNotFound):
		s.log.Warn("Не удалось прочитать флаг входа", slog.String("error", err.Error()))
	}

	return s
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.State().(Authenticated)
	return ok
}

func (s *Session) IsAdmin() bool {
	st, ok := s.State().(Authenticated)
	return ok && st.Mode == ModeAdmin
}

// Mode возвращает ModePublic для неаутентифицированной сессии
func (s *Session) Mode() Mode {
	if st, ok := s.State().(Authenticated); ok {
		return st.Mode
	}
	return ModePublic
}

// Login проверяет учетные данные на сервере. При ошибке состояние не меняется.
func (s *Session) Login(ctx context.Context, username, password string) error {
	role, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return &AuthError{Level: AuthLevelSession, Err: err}
	}

	if err := s.storage.SetFlag(authFlagKey, authFlagValue); err != nil {
		s.log.Warn("Не удалось сохранить флаг входа", slog.String("error", err.Error()))
	}

	s.mu.Lock()
	s.state = Authenticated{Mode: ModePublic, Role: role}
	s.mu.Unlock()

	s.log.Info("Вход выполнен успешно", slog.String("username", username))
	return nil
}

// Elevate включает режим администратора после проверки пароля
func (s *Session) Elevate(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.state.(Authenticated)
	if !ok {
		return ErrNotAuthenticated
	}

	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.secret)) != 1 {
		return &AuthError{Level: AuthLevelElevation, Err: ErrInvalidSecret}
	}

	st.Mode = ModeAdmin
	s.state = st
	s.log.Info("Включен режим администратора")
	return nil
}

// Demote возвращает публичный режим
func (s *Session) Demote() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.state.(Authenticated); ok {
		st.Mode = ModePublic
		s.state = st
	}
}

// Logout удаляет флаг входа и сбрасывает оба состояния
func (s *Session) Logout() error {
	s.mu.Lock()
	s.state = Unauthenticated{}
	s.mu.Unlock()

	if err := s.storage.DeleteFlag(authFlagKey); err != nil {
		return err
	}

	s.log.Info("Выход выполнен")
	return nil
}
