package main

import (
	"errors"
	"net/http"

	"github.com/poirierc/gazette/internal/auth"
	"github.com/poirierc/gazette/internal/validator"
)

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	type loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var requestPayload loginRequest
	if err := app.readJSON(w, r, &requestPayload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckNotBlank(requestPayload.Username, "username", "must be provided")
	v.CheckNotBlank(requestPayload.Password, "password", "must be provided")
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	token, err := app.auth.Login(r.Context(), requestPayload.Username, requestPayload.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			app.invalidCredentialsResponse(w, r, err)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	if err := app.writeJSON(w, http.StatusOK, envelope{"message": "Logged in"}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) logout(w http.ResponseWriter, r *http.Request) {
	if err := app.auth.Logout(r.Context(), sessionToken(r)); err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	if err := app.writeJSON(w, http.StatusOK, envelope{"message": "Logged out"}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
