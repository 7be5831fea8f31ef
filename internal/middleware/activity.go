package middleware

import (
	"net/http"
)

// ActivityRecorder stores one dashboard action.
type ActivityRecorder interface {
	RecordActivity(username, method, path string)
}

// ActivityMiddleware records every authenticated mutating request. GETs are
// not logged. Recording happens after the handler so failed requests are
// still attributable but never blocked.
func ActivityMiddleware(recorder ActivityRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				return
			}
			recorder.RecordActivity(Username(r.Context()), r.Method, r.URL.Path)
		})
	}
}
