package main

import (
	"errors"
	"net/http"

	"github.com/protomem/schedule-app/internal/ctxstore"
	"github.com/protomem/schedule-app/internal/database"
	"github.com/protomem/schedule-app/internal/model"
	"github.com/protomem/schedule-app/internal/request"
	"github.com/protomem/schedule-app/internal/response"
	"github.com/protomem/schedule-app/internal/validator"
)

type requestCreateSchedule struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (app *application) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	sessionUser, _ := sessionUserFromRequest(r)

	var input requestCreateSchedule
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateScheduleTitle(&v, input.Title)
	validateScheduleContent(&v, input.Content)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	// the session user must still exist as a row
	userDAO := database.NewUserDAO(logger, app.db)
	owner, err := userDAO.Get(ctx, sessionUser.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	dao := database.NewScheduleDAO(logger, app.db)

	scheduleID, err := dao.Insert(ctx, database.InsertScheduleDTO{
		Title:   input.Title,
		Content: input.Content,
		User:    owner.ID,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	schedule, err := dao.Get(ctx, scheduleID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, schedule); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	dao := database.NewScheduleDAO(app.logger, app.db)

	schedules, err := dao.Find(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, schedules); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := scheduleIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	sessionUser, _ := sessionUserFromRequest(r)

	dao := database.NewScheduleDAO(app.logger, app.db)

	schedule, err := dao.Get(r.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if !isOwner(sessionUser, schedule.User) {
		app.forbidden(w, r)
		return
	}

	if err := response.JSON(w, http.StatusOK, schedule); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateSchedule struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (app *application) handleUpdateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	scheduleID, err := scheduleIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	sessionUser, _ := sessionUserFromRequest(r)

	var input requestUpdateSchedule
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestUpdateSchedule(&v, input)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewScheduleDAO(logger, app.db)

	schedule, err := dao.Get(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if !isOwner(sessionUser, schedule.User) {
		app.forbidden(w, r)
		return
	}

	// absent fields keep their stored values
	err = dao.Update(ctx, scheduleID, database.UpdateScheduleDTO{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	schedule, err = dao.Get(ctx, scheduleID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, schedule); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	scheduleID, err := scheduleIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	sessionUser, _ := sessionUserFromRequest(r)

	dao := database.NewScheduleDAO(logger, app.db)

	schedule, err := dao.Get(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if !isOwner(sessionUser, schedule.User) {
		app.forbidden(w, r)
		return
	}

	if err := dao.Delete(ctx, schedule.ID); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "schedule deleted"}); err != nil {
		app.serverError(w, r, err)
	}
}
