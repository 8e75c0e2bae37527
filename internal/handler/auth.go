package handler

import (
	"net/http"

	"github.com/qanda-dev/qanda/internal/api"
	"github.com/qanda-dev/qanda/internal/domain"
	"github.com/qanda-dev/qanda/internal/recovery"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.CredentialsRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		recovery.Write(w, err)
		return
	}

	if err := h.auth.Register(domain.Credentials{Email: body.Email, Password: body.Password}); err != nil {
		recovery.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Account added"))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.CredentialsRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		recovery.Write(w, err)
		return
	}

	token, err := h.auth.Login(domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		recovery.Write(w, err)
		return
	}

	// The token is the whole response body, as a JSON string.
	writeJSON(w, token)
}
