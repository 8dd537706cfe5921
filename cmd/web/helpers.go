package main

import (
	"encoding/json"
	"github.com/myrjola/pitwall/internal/errors"
	"log/slog"
	"net/http"
)

const maxRequestBodyBytes = 1 << 20

type errorResponse struct {
	Detail string `json:"detail"`
}

// serverError logs err and responds with a generic message that does not leak internal details.
func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error, detail string) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	if detail == "" {
		detail = http.StatusText(http.StatusInternalServerError)
	}
	app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Detail: detail})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelDebug, http.StatusText(status),
		slog.String("method", method), slog.String("uri", uri), slog.String("detail", detail))
	app.writeJSON(w, r, status, errorResponse{Detail: detail})
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		err = errors.Wrap(err, "marshal response")
		app.logger.LogAttrs(r.Context(), slog.LevelError, "could not encode response", errors.SlogError(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// decodeJSON decodes the request body into dst. The body is limited to maxRequestBodyBytes.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return errors.Wrap(err, "decode JSON body")
	}
	return nil
}
