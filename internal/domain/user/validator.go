package user

import (
	"fmt"
	"unicode"
)

const (
	MinLoginLen    = 3
	MaxLoginLen    = 32
	MinPasswordLen = 4
	// bcrypt не принимает пароли длиннее 72 байт
	MaxPasswordLen = 72
)

// Validator - интерфейс для валидации учетных данных
type Validator interface {
	ValidateCredentials(login, password string) error
	ValidateLogin(login string) error
	ValidatePassword(password string) error
}

type CredentialsValidator struct {
	requireDigit bool
}

// NewCredentialsValidator создает валидатор. Пароль должен содержать цифру.
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{requireDigit: true}
}

// ValidateCredentials валидирует пару логин и пароль из AUTH_USERS
func (v *CredentialsValidator) ValidateCredentials(login, password string) error {
	if err := v.ValidateLogin(login); err != nil {
		return fmt.Errorf("login validation failed: %w", err)
	}

	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	return nil
}

// ValidateLogin валидирует логин
func (v *CredentialsValidator) ValidateLogin(login string) error {
	if len(login) < MinLoginLen {
		return fmt.Errorf("login must be at least %d characters", MinLoginLen)
	}

	if len(login) > MaxLoginLen {
		return fmt.Errorf("login must be at most %d characters", MaxLoginLen)
	}

	for _, r := range login {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return fmt.Errorf("login can only contain letters, digits, '_', '-', '.'")
		}
	}

	return nil
}

// ValidatePassword валидирует пароль
func (v *CredentialsValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must be at most %d bytes", MaxPasswordLen)
	}

	if !v.requireDigit {
		return nil
	}

	for _, r := range password {
		if unicode.IsDigit(r) {
			return nil
		}
	}

	return fmt.Errorf("password must contain at least one digit")
}
