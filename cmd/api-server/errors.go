package main

import (
	"fmt"
	"net/http"

	"github.com/protomem/schedule-app/internal/ctxstore"
	"github.com/protomem/schedule-app/internal/response"
	"github.com/protomem/schedule-app/internal/validator"
)

func (app *application) reportServerError(r *http.Request, err error) {
	var (
		method = r.Method
		url    = r.URL.String()
		tid, _ = ctxstore.From[string](r.Context(), _traceIDKey)
	)

	requestAttrs := []any{"method", method, "url", url, _traceIDKey.String(), tid}
	app.logger.Error(err.Error(), requestAttrs...)
}

func (app *application) errorMessage(w http.ResponseWriter, r *http.Request, status int, message string, headers http.Header) {
	body := response.JSONObject{
		"status":  status,
		"message": message,
	}

	if err := response.JSONWithHeaders(w, status, body, headers); err != nil {
		app.reportServerError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.reportServerError(r, err)

	message := "The server encountered a problem and could not process your request"
	app.errorMessage(w, r, http.StatusInternalServerError, message, nil)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource could not be found"
	app.errorMessage(w, r, http.StatusNotFound, message, nil)
}

func (app *application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("The %s method is not supported for this resource", r.Method)
	app.errorMessage(w, r, http.StatusMethodNotAllowed, message, nil)
}

func (app *application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	app.errorMessage(w, r, http.StatusBadRequest, err.Error(), nil)
}

func (app *application) failedValidation(w http.ResponseWriter, r *http.Request, v validator.Validator) {
	body := response.JSONObject{
		"status":  http.StatusBadRequest,
		"message": "Invalid input",
		"errors":  v,
	}

	if err := response.JSON(w, http.StatusBadRequest, body); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) authenticationRequired(w http.ResponseWriter, r *http.Request) {
	message := "You must be logged in to access this resource"
	app.errorMessage(w, r, http.StatusUnauthorized, message, nil)
}

func (app *application) invalidCredentials(w http.ResponseWriter, r *http.Request) {
	message := "Email or password is incorrect"
	app.errorMessage(w, r, http.StatusUnauthorized, message, nil)
}

func (app *application) forbidden(w http.ResponseWriter, r *http.Request) {
	message := "You do not have permission to access this resource"
	app.errorMessage(w, r, http.StatusForbidden, message, nil)
}
