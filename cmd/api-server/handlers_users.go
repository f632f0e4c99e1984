package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/protomem/schedule-app/internal/auth"
	"github.com/protomem/schedule-app/internal/ctxstore"
	"github.com/protomem/schedule-app/internal/database"
	"github.com/protomem/schedule-app/internal/model"
	"github.com/protomem/schedule-app/internal/request"
	"github.com/protomem/schedule-app/internal/response"
	"github.com/protomem/schedule-app/internal/validator"
)

type requestRegisterUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	var input requestRegisterUser
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateUserName(&v, input.Name)
	validateUserEmail(&v, input.Email)
	validateUserPassword(&v, input.Password)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	userID, err := dao.Insert(ctx, database.InsertUserDTO{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, "Email is already registered", nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	user, err := dao.Get(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, user); err != nil {
		app.serverError(w, r, err)
	}
}

type requestLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type responseLogin struct {
	ID         model.ID  `json:"id"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	var input requestLogin
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	v.CheckField(validator.NotBlank(input.Email), "email", "cannot be blank")
	v.CheckField(validator.NotBlank(input.Password), "password", "cannot be blank")

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	userDAO := database.NewUserDAO(logger, app.db)

	user, err := userDAO.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.invalidCredentials(w, r)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if !auth.CheckPassword(user.Password, input.Password) {
		app.invalidCredentials(w, r)
		return
	}

	var (
		token     = uuid.NewString()
		expiresAt = time.Now().Add(app.config.session.ttl)
	)

	sessionDAO := database.NewSessionDAO(logger, app.db)

	err = sessionDAO.Insert(ctx, database.InsertSessionDTO{
		Token:     token,
		User:      user.ID,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     _sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	output := responseLogin{
		ID:         user.ID,
		Email:      user.Email,
		CreatedAt:  user.CreatedAt,
		ModifiedAt: user.ModifiedAt,
	}

	if err := response.JSON(w, http.StatusOK, output); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionUserFromRequest(r); !ok {
		app.errorMessage(w, r, http.StatusBadRequest, "No active session", nil)
		return
	}

	cookie, err := r.Cookie(_sessionCookieName)
	if err != nil {
		app.errorMessage(w, r, http.StatusBadRequest, "No active session", nil)
		return
	}

	dao := database.NewSessionDAO(app.logger, app.db)

	if err := dao.DeleteByToken(r.Context(), cookie.Value); err != nil {
		app.serverError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     _sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) handleListUsers(w http.ResponseWriter, r *http.Request) {
	dao := database.NewUserDAO(app.logger, app.db)

	users, err := dao.Find(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, users); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	sessionUser, _ := sessionUserFromRequest(r)

	dao := database.NewUserDAO(app.logger, app.db)

	user, err := dao.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	// self-access only
	if !isOwner(sessionUser, user.ID) {
		app.forbidden(w, r)
		return
	}

	if err := response.JSON(w, http.StatusOK, user); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateUser struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (app *application) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	userID, err := userIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	sessionUser, _ := sessionUserFromRequest(r)

	var input requestUpdateUser
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	user, err := dao.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if !isOwner(sessionUser, user.ID) {
		app.forbidden(w, r)
		return
	}

	if input.Name == nil && input.Email == nil {
		app.badRequest(w, r, errors.New("nothing to update"))
		return
	}

	var v validator.Validator
	validateRequestUpdateUser(&v, input)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	err = dao.Update(ctx, userID, database.UpdateUserDTO{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, "Email is already registered", nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	user, err = dao.Get(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, user); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	userID, err := userIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	sessionUser, _ := sessionUserFromRequest(r)

	dao := database.NewUserDAO(logger, app.db)

	user, err := dao.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if !isOwner(sessionUser, user.ID) {
		app.forbidden(w, r)
		return
	}

	// delete by the validated path id; schedules, comments and sessions
	// go with it via FK cascade
	if err := dao.Delete(ctx, user.ID); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"message": "user deleted"}); err != nil {
		app.serverError(w, r, err)
	}
}
