package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"johuart/internal/models"
	"johuart/internal/services"
	"johuart/utils"
)

type UserHandler struct {
	Service *services.UserService
	Tokens  *utils.Manager
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	createdUser, err := h.Service.CreateUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmailRequired):
			writeError(w, http.StatusBadRequest, "email is required")
		case errors.Is(err, models.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, "a user with this email already exists")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, createdUser)
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// SignIn issues an identity token for the submitted email and sets it as a
// session cookie. The claim is self-asserted: no password check and no
// lookup in the users table happens here. The cookie carries no Max-Age and
// lives for the browser session; the token payload's one-hour expiry is the
// real control.
func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := h.Tokens.Issue(email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     utils.CredentialCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":      token,
		"expires_in": int(utils.TokenTTL.Seconds()),
	})
}
