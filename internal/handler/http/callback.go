package http

import (
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var callbackPage = template.Must(template.New("callback").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body style="font-family: sans-serif; margin: 4em auto; max-width: 32em">
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
</body>
</html>
`))

type callbackView struct {
	Title   string
	Message string
}

func callbackFromRequest(r *http.Request) models.AuthCallback {
	q := r.URL.Query()
	return models.AuthCallback{
		Code:             q.Get("code"),
		TokenHash:        q.Get("token_hash"),
		Type:             q.Get("type"),
		Error:            q.Get("error"),
		ErrorDescription: q.Get("error_description"),
	}
}

func (h *Handler) authCallback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	callback := callbackFromRequest(r)

	status := http.StatusOK
	view := callbackView{
		Title:   "Signed in",
		Message: "You can close this tab and return to the terminal.",
	}

	if err := h.auth.CompleteSignIn(r.Context(), callback); err != nil {
		log.Err(err).Str("func", "*Handler.authCallback").Msg("sign-in callback failed")
		status = statusFromError(err)
		view = callbackView{
			Title:   "Sign-in failed",
			Message: callbackMessage(err, callback.ErrorDescription),
		}
	} else {
		log.Info().Str("func", "*Handler.authCallback").Msg("sign-in completed")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := callbackPage.Execute(w, view); err != nil {
		log.Err(err).Str("func", "*Handler.authCallback").Msg("error rendering callback page")
	}
}
