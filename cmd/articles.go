package main

import (
	"errors"
	"net/http"

	"github.com/poirierc/gazette/internal/core"
	"github.com/poirierc/gazette/internal/validator"
)

func (app *application) latestArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := app.core.GetLatestArticles(r.Context())
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"articles": articles}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) searchArticles(w http.ResponseWriter, r *http.Request) {
	type searchRequest struct {
		Recherche string `json:"recherche"`
	}

	var requestPayload searchRequest
	if err := app.readJSON(w, r, &requestPayload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	if v := validator.ValidateSearch(requestPayload.Recherche); !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	articles, err := app.core.SearchArticles(r.Context(), requestPayload.Recherche)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	response := envelope{
		"articles":  articles,
		"nb_item":   len(articles),
		"recherche": requestPayload.Recherche,
	}
	if err := app.writeJSON(w, http.StatusOK, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) getArticle(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	article, err := app.core.GetArticle(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	// The author's photo is optional, and the author may no longer exist.
	picID, err := app.core.GetPhotoID(r.Context(), article.Auteur)
	if err != nil && !errors.Is(err, core.NoRecordFound) {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"article": article, "pic_id": picID}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) adminArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := app.core.GetArticlesOrderedByDate(r.Context())
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"articles": articles}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createArticle(w http.ResponseWriter, r *http.Request) {
	type createArticleRequest struct {
		Titre           string `json:"titre"`
		DatePublication string `json:"date_publication"`
		Contenu         string `json:"contenu"`
	}

	var requestPayload createArticleRequest
	if err := app.readJSON(w, r, &requestPayload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.ValidateArticle(requestPayload.Titre, requestPayload.DatePublication, requestPayload.Contenu)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	// The author is a snapshot of the logged-in user's full name.
	username, err := app.core.GetSession(r.Context(), sessionToken(r))
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}
	auteur, err := app.core.GetUserFullName(r.Context(), username)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	id, err := app.core.AddArticle(r.Context(), requestPayload.Titre, auteur, requestPayload.DatePublication, requestPayload.Contenu)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrDuplicateArticle):
			v.AddError("titre", "Un article avec ce titre existe déjà.")
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

func (app *application) modifyArticle(w http.ResponseWriter, r *http.Request) {
	type modifyArticleRequest struct {
		Titre   string `json:"titre"`
		Contenu string `json:"contenu"`
	}

	id := pathParam(r, "id")

	var requestPayload modifyArticleRequest
	if err := app.readJSON(w, r, &requestPayload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.ValidateArticleUpdate(requestPayload.Titre, requestPayload.Contenu)
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	if err := app.core.ModifyArticle(r.Context(), id, requestPayload.Titre, requestPayload.Contenu); err != nil {
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
