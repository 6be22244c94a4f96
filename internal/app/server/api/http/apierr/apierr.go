package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"invtrack/internal/domain/inventory"
	"invtrack/internal/domain/user"
)

// From переводит доменную ошибку в ответ huma. Неизвестные ошибки
// логируются и отдаются клиенту как 500 без подробностей.
func From(log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, inventory.ErrNotFound), errors.Is(err, user.ErrNotFound):
		return huma.Error404NotFound("Not found")
	case errors.Is(err, inventory.ErrInvalidInput), errors.Is(err, user.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, user.ErrInvalidAuth):
		return huma.Error401Unauthorized("Invalid credentials")
	}

	log.Error("request failed", slog.String("error", err.Error()))
	return huma.Error500InternalServerError("Internal server error")
}
