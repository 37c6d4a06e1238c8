package handlers

import (
	"net/http"

	"johuart/internal/models"
)

// identityFromContext returns the identity claim the auth middleware
// attached to the request, or "" when the route ran unauthenticated.
func identityFromContext(r *http.Request) string {
	email, _ := r.Context().Value(models.CtxEmail).(string)
	return email
}

// authorizeOwner allows a caller to read only records scoped to their own
// identity. Exact string equality, no normalization. It must run before the
// data read so a mismatch never touches the repository.
func authorizeOwner(requestedEmail, identity string) error {
	if requestedEmail != identity {
		return models.ErrForbidden
	}
	return nil
}
