package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/kenf/property-management/internal/api/respond"
	"github.com/kenf/property-management/internal/auth"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	PublicIDKey    contextKey = "public_id"
	UserEmailKey   contextKey = "user_email"
	PhoneNumberKey contextKey = "phone_number"
	UserRoleKey    contextKey = "user_role"
	FirstNameKey   contextKey = "first_name"
	LastNameKey    contextKey = "last_name"
)

// Auth verifies the bearer token and attaches the identity claims to the
// request context. Missing or invalid tokens end the chain with 401.
func Auth(jwtService *auth.JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}

			if token == "" {
				respond.Error(w, http.StatusUnauthorized, "Unauthorized, token missing")
				return
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "Unauthorized, invalid token")
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, PublicIDKey, claims.PublicID)
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
			ctx = context.WithValue(ctx, PhoneNumberKey, claims.PhoneNumber)
			ctx = context.WithValue(ctx, UserRoleKey, claims.Role)
			ctx = context.WithValue(ctx, FirstNameKey, claims.FirstName)
			ctx = context.WithValue(ctx, LastNameKey, claims.LastName)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Helper functions to extract values from context
func GetUserID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(UserIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func GetPublicID(ctx context.Context) string {
	if id, ok := ctx.Value(PublicIDKey).(string); ok {
		return id
	}
	return ""
}

func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

func GetPhoneNumber(ctx context.Context) string {
	if phone, ok := ctx.Value(PhoneNumberKey).(string); ok {
		return phone
	}
	return ""
}

func GetUserRole(ctx context.Context) string {
	if role, ok := ctx.Value(UserRoleKey).(string); ok {
		return role
	}
	return ""
}

// GetFullName joins the first and last name claims.
func GetFullName(ctx context.Context) string {
	first, _ := ctx.Value(FirstNameKey).(string)
	last, _ := ctx.Value(LastNameKey).(string)
	return strings.TrimSpace(first + " " + last)
}

// RequireRole ensures the authenticated identity holds one of the given
// roles. A wrong role is an authorization failure, not an authentication
// one, so the response is always 403.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userRole := GetUserRole(r.Context())

			for _, role := range roles {
				if userRole == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			respond.Error(w, http.StatusForbidden, "Forbidden, insufficient role")
		})
	}
}
