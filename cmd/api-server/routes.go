package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)
	mux.Use(app.authenticate)

	mux.Get("/status", app.handleStatus)

	// open: signup, login and list reads
	mux.Post("/users", app.handleRegisterUser)
	mux.Post("/users/login", app.handleLogin)
	mux.Post("/users/logout", app.handleLogout)
	mux.Get("/users", app.handleListUsers)
	mux.Get("/schedules", app.handleListSchedules)
	mux.Get("/schedules/{scheduleId}/comments", app.handleListComments)

	// everything else needs a live session
	mux.Group(func(mux chi.Router) {
		mux.Use(app.requireAuth)

		mux.Get("/users/{userId}", app.handleGetUser)
		mux.Patch("/users/{userId}", app.handleUpdateUser)
		mux.Delete("/users/{userId}", app.handleDeleteUser)

		mux.Post("/schedules", app.handleCreateSchedule)
		mux.Get("/schedules/{scheduleId}", app.handleGetSchedule)
		mux.Patch("/schedules/{scheduleId}", app.handleUpdateSchedule)
		mux.Delete("/schedules/{scheduleId}", app.handleDeleteSchedule)

		mux.Post("/schedules/{scheduleId}/comments", app.handleCreateComment)
		mux.Patch("/schedules/{scheduleId}/comments/{commentId}", app.handleUpdateComment)
		mux.Delete("/schedules/{scheduleId}/comments/{commentId}", app.handleDeleteComment)
	})

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
