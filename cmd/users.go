package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/poirierc/gazette/internal/auth"
	"github.com/poirierc/gazette/internal/core"
	"github.com/poirierc/gazette/internal/validator"
	"github.com/poirierc/gazette/models"
)

// userPayload is the JSON shape of a user create/modify request. The photo
// travels as a base64 string, decoded by encoding/json into raw bytes.
type userPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Prenom   string `json:"prenom"`
	Nom      string `json:"nom"`
	Courriel string `json:"courriel"`
	Photo    []byte `json:"photo"`
}

func (app *application) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := app.core.GetAllUsers(r.Context())
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"utilisateurs": users}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createUser(w http.ResponseWriter, r *http.Request) {
	var requestPayload userPayload
	if err := app.readJSON(w, r, &requestPayload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	form := validator.UserForm{
		Username: requestPayload.Username,
		Password: requestPayload.Password,
		Prenom:   requestPayload.Prenom,
		Nom:      requestPayload.Nom,
		Courriel: requestPayload.Courriel,
		Photo:    requestPayload.Photo,
	}

	v, err := validator.ValidateNewUser(form, func(username string) (bool, error) {
		return app.core.IsUsernameTaken(r.Context(), username)
	})
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	user := &models.User{
		Username:     requestPayload.Username,
		PasswordHash: auth.HashPassword(requestPayload.Password, salt),
		Salt:         salt,
		Prenom:       requestPayload.Prenom,
		Nom:          requestPayload.Nom,
		Courriel:     requestPayload.Courriel,
		Actif:        true,
	}

	// A photo row is only created when a valid PNG was actually supplied.
	if len(requestPayload.Photo) > 0 {
		picID := auth.NewToken()
		if err := app.core.CreatePicture(r.Context(), picID, requestPayload.Photo); err != nil {
			app.internalErrorResponse(w, r, err)
			return
		}
		user.PicID = &picID
	}

	id, err := app.core.CreateUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrDuplicateUsername):
			v.AddError("username", "Ce nom d'utilisateur existe déjà")
			app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors, ErrorStack: err})
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusCreated, envelope{"id": id}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) modifyUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	user, err := app.core.GetUser(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	var requestPayload userPayload
	if err := app.readJSON(w, r, &requestPayload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	form := validator.UserForm{
		Password: requestPayload.Password,
		Prenom:   requestPayload.Prenom,
		Nom:      requestPayload.Nom,
		Courriel: requestPayload.Courriel,
		Photo:    requestPayload.Photo,
	}
	if v := validator.ValidateUserUpdate(form); !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	// First upload creates the photo row, later ones update it in place.
	if len(requestPayload.Photo) > 0 {
		if user.PicID == nil {
			picID := auth.NewToken()
			if err := app.core.CreatePicture(r.Context(), picID, requestPayload.Photo); err != nil {
				app.internalErrorResponse(w, r, err)
				return
			}
			user.PicID = &picID
		} else {
			if err := app.core.ModifyPicture(r.Context(), *user.PicID, requestPayload.Photo); err != nil {
				app.internalErrorResponse(w, r, err)
				return
			}
		}
	}

	// A blank password keeps the stored hash and salt untouched.
	var passwordHash, salt string
	if requestPayload.Password != "" {
		salt, err = auth.GenerateSalt()
		if err != nil {
			app.internalErrorResponse(w, r, err)
			return
		}
		passwordHash = auth.HashPassword(requestPayload.Password, salt)
	}

	err = app.core.ModifyUser(r.Context(), id, passwordHash, salt,
		requestPayload.Prenom, requestPayload.Nom, requestPayload.Courriel, user.PicID)
	if err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"id": id}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) modifyUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(pathParam(r, "id"), 10, 64)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	if err := app.core.ModifyUserStatus(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"id": id}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
