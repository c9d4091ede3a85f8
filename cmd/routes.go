package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// Not require authentication for these routes
	router.HandlerFunc(http.MethodGet, "/", app.latestArticles)
	router.HandlerFunc(http.MethodPost, "/recherche", app.searchArticles)
	router.HandlerFunc(http.MethodGet, "/article/:id", app.getArticle)
	router.HandlerFunc(http.MethodGet, "/image/:picID", app.downloadPicture)
	router.HandlerFunc(http.MethodPost, "/login", app.login)

	// Require authentication for these routes
	router.HandlerFunc(http.MethodGet, "/logout", app.requireAuthenticatedUser(app.logout))
	router.HandlerFunc(http.MethodGet, "/admin/articles", app.requireAuthenticatedUser(app.adminArticles))
	router.HandlerFunc(http.MethodPost, "/articles", app.requireAuthenticatedUser(app.createArticle))
	router.HandlerFunc(http.MethodPut, "/article/:id", app.requireAuthenticatedUser(app.modifyArticle))
	router.HandlerFunc(http.MethodGet, "/utilisateurs", app.requireAuthenticatedUser(app.listUsers))
	router.HandlerFunc(http.MethodPost, "/utilisateurs", app.requireAuthenticatedUser(app.createUser))
	router.HandlerFunc(http.MethodPut, "/utilisateurs/:id", app.requireAuthenticatedUser(app.modifyUser))
	router.HandlerFunc(http.MethodPost, "/utilisateurs/:id/statut", app.requireAuthenticatedUser(app.modifyUserStatus))

	return app.recoverPanic(router)
}
