package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/auth"
	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/http/middleware"
)

type AuthHandler struct {
	register *auth.Register
	login    *auth.Login
	refresh  *auth.Refresh
	logout   *auth.Logout
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthHandler(register *auth.Register, login *auth.Login, refresh *auth.Refresh, logout *auth.Logout, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		refresh:  refresh,
		logout:   logout,
		validate: validator.New(),
		log:      log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name" validate:"required,max=200"`
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,min=8,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	email := SanitizeAccountEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid email or password length")
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterInput{
		Name:     body.Name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.register", "", false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		switch err {
		case domerrors.ErrUserExists:
			writeErr(w, http.StatusConflict, "", err.Error())
		case domerrors.ErrInvalidCredentials:
			writeErr(w, http.StatusBadRequest, "", "invalid email format")
		default:
			h.log.Error().Err(err).Msg("register failed")
			writeErr(w, http.StatusInternalServerError, "", "internal error")
		}
		return
	}
	AuditLog(h.log, r, "user.register", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("register", true)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":         result.User.ID.String(),
		"name":       result.User.Name,
		"email":      result.User.Email,
		"created_at": result.User.CreatedAt,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	email := SanitizeAccountEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid email or password length")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{Email: email, Password: password})
	if err != nil {
		AuditLog(h.log, r, "user.login", "", false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		if err == domerrors.ErrInvalidCredentials {
			writeErr(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	AuditLog(h.log, r, "user.login", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
		"user": map[string]interface{}{
			"id":    result.User.ID.String(),
			"name":  result.User.Name,
			"email": result.User.Email,
		},
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token" validate:"required,max=1024"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	result, err := h.refresh.Execute(r.Context(), auth.RefreshInput{RefreshToken: body.RefreshToken})
	if err != nil {
		AuditLog(h.log, r, "auth.refresh", "", false, err.Error())
		middleware.RecordAuthAttempt("refresh", false)
		if err == domerrors.ErrInvalidToken {
			writeErr(w, http.StatusUnauthorized, ErrCodeInvalidToken, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("refresh failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	AuditLog(h.log, r, "auth.refresh", "", true, "")
	middleware.RecordAuthAttempt("refresh", true)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.RefreshToken != "" {
		if err := h.logout.Execute(r.Context(), body.RefreshToken); err != nil {
			h.log.Error().Err(err).Msg("logout failed")
			writeErr(w, http.StatusInternalServerError, "", "internal error")
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
