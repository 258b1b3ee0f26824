package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// служебные маршруты не логируются и не попадают в метрики
var opsPrefixes = []string{"/metrics", "/healthz", "/swagger"}

func isOps(path string) bool {
	for _, p := range opsPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// routePattern шаблон маршрута chi, чтобы id заказов не раздували кардинальность меток.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return "unknown"
}

func statusOf(ww interface{ Status() int }) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
