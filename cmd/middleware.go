package main

import (
	"fmt"
	"net/http"

	"github.com/mdobak/go-xerrors"
)

const sessionCookieName = "session_id"

// sessionToken extracts the opaque session token from the request cookie,
// empty when the caller has none.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (app *application) requireAuthenticatedUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)

		authenticated, err := app.auth.IsAuthenticated(r.Context(), token)
		if err != nil {
			app.internalErrorResponse(w, r, err)
			return
		}
		if !authenticated {
			app.authenticationRequiredResponse(w, r, xerrors.New("no active session for request"))
			return
		}

		next(w, r)
	}
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.internalErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
