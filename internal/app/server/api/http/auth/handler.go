package auth

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"invtrack/internal/app/server/api/http/apierr"
	"invtrack/internal/domain/user"
	"invtrack/internal/observability/metrics"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With(slog.String("component", "auth_handler")),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if errors.Is(err, user.ErrInvalidAuth) {
		metrics.IncLogin(metrics.ResultError)
		h.log.Info("login rejected", slog.String("login", input.Body.Username))
		return nil, huma.Error401Unauthorized("Invalid credentials")
	}
	if err != nil {
		metrics.IncLogin(metrics.ResultError)
		return nil, apierr.From(h.log, err)
	}

	metrics.IncLogin(metrics.ResultSuccess)
	return &loginOutput{
		Body: LoginResponse{Success: true, Role: u.Role},
	}, nil
}
