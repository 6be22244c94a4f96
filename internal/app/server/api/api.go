// POST   /login                 # вход на сайт, возвращает роль
// GET    /report                # полный отчет
// GET    /rooms/, /categories/  # справочники
// POST   /{kind}/               # создать (rooms, categories, employees, devices)
// PUT    /{kind}/{id}           # обновить
// DELETE /{kind}/{id}           # удалить
// GET    /export_excel?lang=ru  # выгрузка в Excel
// POST   /import_excel          # загрузка из Excel, поле file
// POST   /export_qr_pdf         # лист QR этикеток
// GET    /backup_database       # резервная копия в JSON
// GET    /api/v1/health
// GET    /metrics

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	authAPI "invtrack/internal/app/server/api/http/auth"
	healthAPI "invtrack/internal/app/server/api/http/health"
	inventoryAPI "invtrack/internal/app/server/api/http/inventory"
	"invtrack/internal/app/server/api/http/middleware"
	"invtrack/internal/app/server/api/http/middleware/logger"
	metricsMW "invtrack/internal/app/server/api/http/middleware/metrics"
	"invtrack/internal/app/server/api/http/middleware/requestid"
	transferAPI "invtrack/internal/app/server/api/http/transfer"
	"invtrack/internal/domain/inventory"
	"invtrack/internal/domain/user"
	"invtrack/internal/observability/metrics"
)

// Deps - сервисы, которые обслуживает HTTP слой
type Deps struct {
	Inventory inventory.Servicer
	Users     user.Servicer
	Storage   healthAPI.Pinger
	PublicURL string
}

type Handlers struct {
	Health    *healthAPI.Handler
	Auth      *authAPI.Handler
	Inventory *inventoryAPI.Handler
	Transfer  *transferAPI.Handler
}

// New создает *chi.Mux со всеми операциями huma и эндпоинтом /metrics
func New(deps Deps, log *slog.Logger) *chi.Mux {
	metrics.Init()

	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)
	mux.Use(allowAllOrigins)
	mux.Handle("/metrics", promhttp.Handler())

	API := humachi.New(mux, huma.DefaultConfig("Invtrack API", "1.0.0"))

	h := handlers(deps, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Inventory.SetupRoutes(API)
	h.Transfer.SetupRoutes(API)

	return mux
}

func handlers(deps Deps, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()
	common := func() {
		middlewares.Add(requestid.Middleware(), metricsMW.Middleware(), loggerMW.Middleware())
	}

	common()
	healthHandler := healthAPI.NewHandler(deps.Storage, log, middlewares.GetAllAndClear())

	common()
	authHandler := authAPI.NewHandler(deps.Users, log, middlewares.GetAllAndClear())

	common()
	inventoryHandler := inventoryAPI.NewHandler(deps.Inventory, log, middlewares.GetAllAndClear())

	common()
	transferHandler := transferAPI.NewHandler(deps.Inventory, deps.PublicURL, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:    healthHandler,
		Auth:      authHandler,
		Inventory: inventoryHandler,
		Transfer:  transferHandler,
	}
}

// allowAllOrigins разрешает запросы веб-интерфейса с любого origin
func allowAllOrigins(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		h.Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
