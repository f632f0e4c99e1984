package main

import (
	"github.com/protomem/schedule-app/internal/validator"
)

// Validation rules

func validateRequestUpdateUser(v *validator.Validator, request requestUpdateUser) {
	if request.Name != nil {
		validateUserName(v, *request.Name)
	}
	if request.Email != nil {
		validateUserEmail(v, *request.Email)
	}
}

func validateRequestUpdateSchedule(v *validator.Validator, request requestUpdateSchedule) {
	if request.Title != nil {
		validateScheduleTitle(v, *request.Title)
	}
	if request.Content != nil {
		validateScheduleContent(v, *request.Content)
	}
}

func validateUserName(v *validator.Validator, name string) {
	v.CheckField(validator.NotBlank(name), "name", "cannot be blank")
	v.CheckField(validator.MaxRunes(name, 50), "name", "must be at most 50 characters")
}

func validateUserEmail(v *validator.Validator, email string) {
	v.CheckField(validator.NotBlank(email), "email", "cannot be blank")
	v.CheckField(validator.MaxRunes(email, 100), "email", "must be at most 100 characters")
	v.CheckField(validator.IsEmail(email), "email", "must be a valid email address")
}

func validateUserPassword(v *validator.Validator, password string) {
	v.CheckField(validator.NotBlank(password), "password", "cannot be blank")
	v.CheckField(validator.MaxRunes(password, 72), "password", "must be at most 72 characters")
}

func validateScheduleTitle(v *validator.Validator, title string) {
	v.CheckField(validator.NotBlank(title), "title", "cannot be blank")
	v.CheckField(validator.MaxRunes(title, 100), "title", "must be at most 100 characters")
}

func validateScheduleContent(v *validator.Validator, content string) {
	v.CheckField(validator.NotBlank(content), "content", "cannot be blank")
}

func validateCommentContent(v *validator.Validator, content string) {
	v.CheckField(validator.NotBlank(content), "content", "cannot be blank")
}
