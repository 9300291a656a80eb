package health

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/field-orders/platform/logger"
)

const checkTimeout = 2 * time.Second

// Check probes one dependency, e.g. a database ping.
type Check func(ctx context.Context) error

// NewHealthHandler answers SERVING when every check passes and NOT_SERVING
// with the failing check names otherwise.
func NewHealthHandler(checks map[string]Check) http.HandlerFunc {
	names := lo.Keys(checks)
	slices.Sort(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		defer cancel()

		failed := lo.Filter(names, func(name string, _ int) bool {
			if err := checks[name](ctx); err != nil {
				logger.Warn(ctx, "health check failed", logger.String("check", name), logger.ErrorF(err))
				return true
			}
			return false
		})

		body := "SERVING"
		if len(failed) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			body = "NOT_SERVING: " + strings.Join(failed, ",")
		}
		if _, err := w.Write([]byte(body)); err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
