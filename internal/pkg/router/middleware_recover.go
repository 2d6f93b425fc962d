package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/adiwena/verimail/internal/pkg/stacktrace"
)

//nolint:errcheck,gosec // best effort response write during panic recovery
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:err113,errorlint // this must compare directly
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				if r.Header.Get("Connection") != "Upgrade" {
					w.WriteHeader(http.StatusInternalServerError)
				}

				stack := debug.Stack()
				if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
					slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", paths)
				} else {
					slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", string(stack))
				}

				json.NewEncoder(w).Encode(errorResponse{Message: "Internal server error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
