package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kenf/property-management/internal/api/dto"
	"github.com/kenf/property-management/internal/api/middleware"
	"github.com/kenf/property-management/internal/api/respond"
	"github.com/kenf/property-management/internal/auth"
	"github.com/kenf/property-management/internal/database"
)

type AuthHandler struct {
	authService *auth.Service
}

func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.Missing(); len(missing) > 0 {
		respond.MissingFields(w, missing)
		return
	}

	out, err := h.authService.Register(r.Context(), auth.RegisterInput{
		FirstName:   req.FirstName,
		MiddleName:  req.MiddleName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		Password:    req.Password,
	})
	if err != nil {
		if conflict, ok := database.AsConflict(err); ok {
			switch conflict.Field {
			case "email":
				respond.Error(w, http.StatusConflict, "Email is already in use.")
			case "phone_number":
				respond.Error(w, http.StatusConflict, "Phone number is already in use.")
			default:
				respond.Error(w, http.StatusConflict, "User already exists.")
			}
			return
		}
		if errors.Is(err, auth.ErrUnknownRole) {
			respond.Error(w, http.StatusBadRequest, "Invalid role. Please provide a valid role.")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respond.JSON(w, http.StatusCreated, "User created successfully", dto.RegisterData{
		ID:               out.User.ID.String(),
		UserID:           out.User.PublicID,
		Role:             out.User.Role,
		ConfirmationCode: out.ConfirmationCode,
		Token:            out.Token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.Missing(); len(missing) > 0 {
		respond.MissingFields(w, missing)
		return
	}

	out, err := h.authService.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrIncorrectCredentials):
			// Same body for unknown identifier and wrong password.
			respond.Error(w, http.StatusNotFound, "User not found or incorrect credentials")
		case errors.Is(err, auth.ErrNotConfirmed):
			respond.Error(w, http.StatusForbidden, "Account not confirmed. Please check your email for confirmation")
		default:
			respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	respond.JSON(w, http.StatusOK, "Login successful", dto.LoginData{
		UserID:      out.User.PublicID,
		Email:       out.User.Email,
		PhoneNumber: out.User.PhoneNumber,
		Token:       out.Token,
	})
}

func (h *AuthHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.Missing(); len(missing) > 0 {
		respond.MissingFields(w, missing)
		return
	}

	user, err := h.authService.Confirm(r.Context(), req.Email, req.ConfirmationCode)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidConfirmation) {
			respond.Error(w, http.StatusNotFound, "Invalid confirmation code or user not found")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respond.JSON(w, http.StatusOK, "Account confirmed successfully", dto.ConfirmData{
		Email:       user.Email,
		IsConfirmed: user.IsConfirmed,
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.Missing(); len(missing) > 0 {
		respond.MissingFields(w, missing)
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respond.JSON(w, http.StatusOK, "Password reset email sent", nil)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.Missing(); len(missing) > 0 {
		respond.MissingFields(w, missing)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
			respond.Error(w, http.StatusBadRequest, "Invalid or expired token")
		case errors.Is(err, auth.ErrUserNotFound):
			respond.Error(w, http.StatusNotFound, "User not found")
		default:
			respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	respond.JSON(w, http.StatusOK, "Password has been reset successfully", nil)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respond.JSON(w, http.StatusOK, "OK", dto.UserData{
		UserID:      user.PublicID,
		FirstName:   user.FirstName,
		MiddleName:  user.MiddleName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		IsConfirmed: user.IsConfirmed,
	})
}
