package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"johuart/internal/models"
	"johuart/utils"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requireAuth gates a route on a verified identity token. A request either
// carries a valid credential and proceeds with the identity claim on its
// context, or is rejected with 401 before any downstream handler runs.
func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := credentialFromRequest(r)
		if token == "" {
			app.unauthorized(w, "missing credential")
			return
		}

		email, err := app.tokens.Parse(token)
		if err != nil {
			app.unauthorized(w, "invalid or expired credential")
			return
		}

		ctx := context.WithValue(r.Context(), models.CtxEmail, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// credentialFromRequest reads the token cookie, falling back to a bearer
// Authorization header for non-browser clients.
func credentialFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(utils.CredentialCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
