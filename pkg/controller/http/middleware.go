package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model/auth"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/utils/logging"
)

// Identity headers set by the fronting gateway. Session handling lives
// there; this service only consumes the resolved identity.
const (
	headerCallerSub   = "X-Caller-Sub"
	headerCallerName  = "X-Caller-Name"
	headerCallerRoles = "X-Caller-Roles"
)

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// callerMiddleware builds the caller identity from the gateway headers
// and attaches it to the request context. Requests without a subject
// proceed without a caller and fail the role guard downstream.
func callerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub := r.Header.Get(headerCallerSub)
		if sub == "" {
			next.ServeHTTP(w, r)
			return
		}

		var roles []types.Role
		for _, raw := range strings.Split(r.Header.Get(headerCallerRoles), ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			role, err := types.ParseRole(raw)
			if err != nil {
				http.Error(w, "invalid role in "+headerCallerRoles, http.StatusBadRequest)
				return
			}
			roles = append(roles, role)
		}

		caller := &auth.Caller{
			Sub:   sub,
			Name:  r.Header.Get(headerCallerName),
			Roles: roles,
		}
		ctx := auth.ContextWithCaller(r.Context(), caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
