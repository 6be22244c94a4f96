package metrics

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	"invtrack/internal/observability/metrics"
)

// Middleware считает запросы и их длительность по шаблону пути операции
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		route := ""
		if op := ctx.Operation(); op != nil {
			route = op.Path
		}
		metrics.ObserveHTTP(ctx.Method(), route, ctx.Status(), time.Since(start))
	}
}
