package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

type SessionRequest struct {
	Email string `json:"email"`
}

// ContextKey is the type for values the auth middleware stores on the
// request context.
type ContextKey string

// CtxEmail holds the verified identity claim of the signed-in caller.
const CtxEmail = ContextKey("email")
