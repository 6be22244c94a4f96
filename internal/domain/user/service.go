package user

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Seed(ctx context.Context, users map[string]string) error
	Authenticate(ctx context.Context, login, password string) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
	cost      int
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With(slog.String("component", "user_service")),
		cost:      bcrypt.DefaultCost,
	}
}

// WithCost меняет стоимость bcrypt, в тестах используется bcrypt.MinCost
func (s *Service) WithCost(cost int) *Service {
	s.cost = cost
	return s
}

// Seed сохраняет учетные записи из конфигурации, пароли хранятся только в
// виде bcrypt хэшей
func (s *Service) Seed(ctx context.Context, users map[string]string) error {
	logins := make([]string, 0, len(users))
	for login := range users {
		logins = append(logins, login)
	}
	sort.Strings(logins)

	for _, login := range logins {
		password := users[login]
		if err := s.validator.ValidateCredentials(login, password); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		if _, err := s.repo.Save(ctx, login, string(hash), RoleFor(login)); err != nil {
			return fmt.Errorf("save user %s: %w", login, err)
		}
	}

	s.log.Info("users seeded", slog.Int("count", len(logins)))
	return nil
}

// Authenticate возвращает ErrInvalidAuth и для неизвестного логина, и для
// неверного пароля
func (s *Service) Authenticate(ctx context.Context, login, password string) (User, error) {
	if err := s.validator.ValidateLogin(login); err != nil {
		return User{}, ErrInvalidAuth
	}

	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return User{}, fmt.Errorf("find user: %w", err)
		}
		s.log.Debug("unknown login", slog.String("login", login))
		return User{}, ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return user, nil
}
