package common

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"invtrack/internal/app/client"
	"invtrack/internal/app/client/config"
)

type contextKey string

const (
	ClientAppKey contextKey = "app"
	ConfigKey    contextKey = "config"
)

const requestTimeout = 30 * time.Second

// App достает приложение, сохраненное в контексте команды
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, errors.New("приложение не инициализировано")
	}
	return app, nil
}

func Config(cmd *cobra.Command) *config.Config {
	cfg, _ := cmd.Context().Value(ConfigKey).(*config.Config)
	if cfg == nil {
		return &config.Config{Lang: "ru"}
	}
	return cfg
}

// Timeout ограничивает сетевые вызовы одной команды
func Timeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := Config(cmd).RequestTimeout
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return context.WithTimeout(cmd.Context(), timeout)
}

// EnsureLoaded загружает отчет, если он еще не загружен в этой сессии
func EnsureLoaded(cmd *cobra.Command, app *client.App) error {
	if app.View().Loaded {
		return nil
	}

	ctx, cancel := Timeout(cmd)
	defer cancel()

	if err := app.Load(ctx, ""); err != nil {
		return fmt.Errorf("ошибка загрузки данных: %w", err)
	}
	return nil
}

// RequireLogin возвращает ошибку, если вход на сайт не выполнен
func RequireLogin(app *client.App) error {
	if !app.IsAuthenticated() {
		return client.ErrNotAuthenticated
	}
	return nil
}

// RequireAdmin включает режим администратора: пароль берется из флага
// --secret или запрашивается в терминале
func RequireAdmin(cmd *cobra.Command, app *client.App) error {
	if err := RequireLogin(app); err != nil {
		return err
	}
	if app.IsAdmin() {
		return nil
	}

	secret, _ := cmd.Flags().GetString("secret")
	if secret == "" {
		var err error
		secret, err = ReadPassword("Пароль администратора: ")
		if err != nil {
			return err
		}
	}

	return app.Elevate(secret)
}

func ReadPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(password), nil
}

// ParseIDs разбирает список id из аргументов, допускаются запятые
func ParseIDs(args []string) ([]int, error) {
	var ids []int
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("неверный ID: %q", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func ParseID(arg string) (int, error) {
	ids, err := ParseIDs([]string{arg})
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, fmt.Errorf("неверный ID: %q", arg)
	}
	return ids[0], nil
}

// WriteFile сохраняет файл сервиса в каталог dir
func WriteFile(dir string, file client.File) (string, error) {
	path := filepath.Join(dir, file.Name)
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return "", fmt.Errorf("ошибка записи файла: %w", err)
	}
	return path, nil
}
