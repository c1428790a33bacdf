package handler

import (
	"net/http"

	"github.com/boardkit-dev/boardkit/shared/api"
	"github.com/boardkit-dev/boardkit/shared/domain"
	mw "github.com/boardkit-dev/boardkit/shared/middleware"
	"github.com/boardkit-dev/boardkit/shared/utils"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var body api.SignupRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Signup(r.Context(), domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.setAccessCookie(w, token)
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Login(r.Context(), domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.setAccessCookie(w, token)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     mw.AccessTokenCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) setAccessCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     mw.AccessTokenCookie,
		Value:    token,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
