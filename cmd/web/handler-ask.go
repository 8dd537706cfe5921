package main

import (
	"github.com/myrjola/pitwall/internal/contexthelpers"
	"github.com/myrjola/pitwall/internal/errors"
	"log/slog"
	"net/http"
	"strings"
)

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer    string `json:"answer"`
	GameOver  bool   `json:"game_over"`
	SessionID string `json:"session_id"`
}

func (app *application) ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decodeJSON(w, r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "Request body must be a JSON object with a question.")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		app.clientError(w, r, http.StatusBadRequest, "Question must not be empty.")
		return
	}

	ctx := r.Context()
	sessionID := contexthelpers.SessionID(ctx)
	answer, err := app.engine.Ask(ctx, sessionID, req.Question)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "ask question", slog.String("session_id", sessionID)),
			"An internal error occurred while processing the question.")
		return
	}

	app.writeJSON(w, r, http.StatusOK, askResponse{
		Answer:    answer.Text,
		GameOver:  answer.GameOver,
		SessionID: sessionID,
	})
}
