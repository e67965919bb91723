package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// LoggingMiddleware пишет строку на каждый запрос, 5xx - на уровне Error
func LoggingMiddleware(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			if rec.status >= http.StatusInternalServerError {
				log.Error("%s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, time.Since(start))
				return
			}
			log.Info("%s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
