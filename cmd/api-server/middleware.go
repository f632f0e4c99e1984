package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/protomem/schedule-app/internal/ctxstore"
	"github.com/protomem/schedule-app/internal/database"
	"github.com/protomem/schedule-app/internal/model"
	"github.com/protomem/schedule-app/internal/response"
	"github.com/rs/cors"

	"github.com/tomasen/realip"
)

const (
	_traceIDKey     = ctxstore.Key("traceId")
	_sessionUserKey = ctxstore.Key("sessionUser")

	_sessionCookieName = "session_token"
)

func (app *application) traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tid := genTraceID()
		ctx := ctxstore.With(r.Context(), _traceIDKey, tid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err != nil {
				app.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) logAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := response.NewMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		var (
			ip     = realip.FromRequest(r)
			method = r.Method
			url    = r.URL.String()
			proto  = r.Proto
			tid    = ctxstore.MustFrom[string](r.Context(), _traceIDKey)
		)

		userAttrs := slog.Group("user", "ip", ip)
		requestAttrs := slog.Group("request", "method", method, "url", url, "proto", proto, _traceIDKey.String(), tid)
		responseAttrs := slog.Group("response", "status", mw.StatusCode, "size", mw.BytesCount)

		app.serverLogger().Info("access", userAttrs, requestAttrs, responseAttrs)
	})
}

func (app *application) CORS(next http.Handler) http.Handler {
	return cors.AllowAll().Handler(next)
}

// authenticate resolves the session cookie into a SessionUser in the
// request context. Anonymous requests and stale cookies pass through
// unchanged; requireAuth decides whether that matters.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(_sessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		dao := database.NewSessionDAO(app.logger, app.db)

		session, err := dao.GetByToken(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				next.ServeHTTP(w, r)
				return
			}

			app.serverError(w, r, err)
			return
		}

		if time.Now().After(session.ExpiresAt) {
			if err := dao.DeleteByToken(r.Context(), session.Token); err != nil {
				app.serverError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
			return
		}

		sessionUser := model.SessionUser{ID: session.User, Email: session.UserEmail}
		ctx := ctxstore.With(r.Context(), _sessionUserKey, sessionUser)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sessionUserFromRequest(r); !ok {
			app.authenticationRequired(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func genTraceID() string {
	id, _ := uuid.NewRandom()
	return id.String()
}
