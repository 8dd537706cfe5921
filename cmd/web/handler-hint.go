package main

import (
	"github.com/myrjola/pitwall/internal/contexthelpers"
	"github.com/myrjola/pitwall/internal/errors"
	"log/slog"
	"net/http"
)

type hintResponse struct {
	Hint      string `json:"hint"`
	SessionID string `json:"session_id"`
}

func (app *application) hint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := contexthelpers.SessionID(ctx)
	hint, err := app.engine.Hint(ctx, sessionID)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "get hint", slog.String("session_id", sessionID)),
			"An internal error occurred while generating a hint.")
		return
	}

	app.writeJSON(w, r, http.StatusOK, hintResponse{
		Hint:      hint,
		SessionID: sessionID,
	})
}
