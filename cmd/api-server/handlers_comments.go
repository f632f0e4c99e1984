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

type requestCreateComment struct {
	Content string `json:"content"`
}

func (app *application) handleCreateComment(w http.ResponseWriter, r *http.Request) {
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

	var input requestCreateComment
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateCommentContent(&v, input.Content)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	scheduleDAO := database.NewScheduleDAO(logger, app.db)
	schedule, err := scheduleDAO.Get(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	userDAO := database.NewUserDAO(logger, app.db)
	author, err := userDAO.Get(ctx, sessionUser.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	dao := database.NewCommentDAO(logger, app.db)

	commentID, err := dao.Insert(ctx, database.InsertCommentDTO{
		Content:  input.Content,
		Schedule: schedule.ID,
		User:     author.ID,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	comment, err := dao.Get(ctx, commentID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, comment); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleListComments(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := scheduleIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewCommentDAO(app.logger, app.db)

	comments, err := dao.FindBySchedule(r.Context(), scheduleID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, comments); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateComment struct {
	Content *string `json:"content"`
}

func (app *application) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	commentID, err := commentIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	sessionUser, _ := sessionUserFromRequest(r)

	var input requestUpdateComment
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	if input.Content != nil {
		validateCommentContent(&v, *input.Content)
	}

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewCommentDAO(logger, app.db)

	comment, err := dao.Get(ctx, commentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	// author-only
	if !isOwner(sessionUser, comment.User) {
		app.forbidden(w, r)
		return
	}

	err = dao.Update(ctx, commentID, database.UpdateCommentDTO{
		Content: input.Content,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	comment, err = dao.Get(ctx, commentID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, comment); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	commentID, err := commentIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	sessionUser, _ := sessionUserFromRequest(r)

	dao := database.NewCommentDAO(logger, app.db)

	comment, err := dao.Get(ctx, commentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if !isOwner(sessionUser, comment.User) {
		app.forbidden(w, r)
		return
	}

	if err := dao.Delete(ctx, comment.ID); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "comment deleted"}); err != nil {
		app.serverError(w, r, err)
	}
}
