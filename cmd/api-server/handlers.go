package main

import (
	"net/http"

	"github.com/protomem/schedule-app/internal/model"
	"github.com/protomem/schedule-app/internal/response"
)

func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, response.JSONObject{"status": "OK"}); err != nil {
		app.serverError(w, r, err)
	}
}

// isOwner is the single authorization rule of the service: the acting
// session user must match the resource's recorded owner.
func isOwner(sessionUser model.SessionUser, owner model.ID) bool {
	return sessionUser.ID == owner
}
