package middleware

import (
	"net/http"

	"github.com/kenf/property-management/internal/api/respond"
	"github.com/kenf/property-management/internal/rbac"
)

// RequirePermission short-circuits the chain with 403 unless a role
// assigned to the authenticated user grants the named permission. A store
// failure during the check is a 500, not a denial.
func RequirePermission(checker *rbac.Checker, permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := GetUserID(r.Context())

			allowed, err := checker.HasPermission(r.Context(), userID, permission)
			if err != nil {
				respond.Error(w, http.StatusInternalServerError, "Something went wrong while checking permissions")
				return
			}
			if !allowed {
				respond.Error(w, http.StatusForbidden, "You do not have the required permission to perform this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
