package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/protomem/schedule-app/internal/ctxstore"
	"github.com/protomem/schedule-app/internal/model"
)

func userIDFromRequest(r *http.Request) (model.ID, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "userId"))
	return model.ID(id), err
}

func scheduleIDFromRequest(r *http.Request) (model.ID, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "scheduleId"))
	return model.ID(id), err
}

func commentIDFromRequest(r *http.Request) (model.ID, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "commentId"))
	return model.ID(id), err
}

func sessionUserFromRequest(r *http.Request) (model.SessionUser, bool) {
	return ctxstore.From[model.SessionUser](r.Context(), _sessionUserKey)
}
