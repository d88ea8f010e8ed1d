package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// UsageTracker интерфейс счетчика использования API
type UsageTracker interface {
	Track(operation string)
}

// Usage учитывает каждый обработанный запрос в счетчике использования.
// Операция определяется по имени роута mux; безымянные роуты
// (metrics endpoint и т.п.) не учитываются
func Usage(tracker UsageTracker) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if route := mux.CurrentRoute(r); route != nil {
				if name := route.GetName(); name != "" {
					tracker.Track(name)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
