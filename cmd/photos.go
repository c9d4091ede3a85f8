package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/poirierc/gazette/internal/core"
)

// downloadPicture serves the raw photo bytes under /image/<pic_id>.png.
func (app *application) downloadPicture(w http.ResponseWriter, r *http.Request) {
	picID := strings.TrimSuffix(pathParam(r, "picID"), ".png")

	photo, err := app.core.LoadPicture(r.Context(), picID)
	if err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(photo); err != nil {
		app.logger.Error(err.Error())
	}
}
