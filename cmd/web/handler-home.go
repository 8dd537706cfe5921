package main

import (
	"net/http"
)

type homeResponse struct {
	Message string `json:"message"`
}

// home welcomes players and confirms that the API is running.
func (app *application) home(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, homeResponse{
		Message: "Welcome to the Grand Prix Investigation API. Use the /ask and /hint endpoints to play.",
	})
}
