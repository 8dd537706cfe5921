package main

import (
	"github.com/justinas/alice"
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	game := alice.New(app.sessionID)

	mux.Handle("GET /{$}", http.HandlerFunc(app.home))
	mux.Handle("GET /api/healthy", http.HandlerFunc(app.healthy))
	mux.Handle("POST /ask", game.ThenFunc(app.ask))
	mux.Handle("GET /hint", game.ThenFunc(app.hint))

	common := alice.New(app.recoverPanic, app.logRequest, cors, secureHeaders)
	return common.Then(timeoutHandler(mux, app.handlerTimeout))
}
