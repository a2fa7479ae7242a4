package middleware

import (
	"net/http"
	"sync/atomic"
)

// Metrics counts requests and error responses (4xx/5xx) into the given
// counters. The counters are owned by the caller so the health surface
// can report them.
func Metrics(requests, errors *atomic.Int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			if rw.statusCode >= http.StatusBadRequest {
				errors.Add(1)
			}
		})
	}
}
