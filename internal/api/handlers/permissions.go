package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kenf/property-management/internal/api/dto"
	"github.com/kenf/property-management/internal/api/respond"
	"github.com/kenf/property-management/internal/rbac"
)

type PermissionHandler struct {
	checker *rbac.Checker
}

func NewPermissionHandler(checker *rbac.Checker) *PermissionHandler {
	return &PermissionHandler{checker: checker}
}

// Add handles POST /permissions/add-permission.
func (h *PermissionHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.PermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.Missing(); len(missing) > 0 {
		respond.MissingFields(w, missing)
		return
	}

	if err := h.checker.Grant(r.Context(), req.RoleID, req.PermissionName); err != nil {
		if errors.Is(err, rbac.ErrUnknownRole) {
			respond.Error(w, http.StatusBadRequest, "Invalid role. Please provide a valid role.")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Error adding permission to the role.")
		return
	}

	respond.JSON(w, http.StatusOK, "Permission added to the role successfully.", dto.PermissionData{
		RoleID:         req.RoleID,
		PermissionName: req.PermissionName,
	})
}

// Revoke handles DELETE /permissions/revoke.
func (h *PermissionHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	var req dto.PermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.Missing(); len(missing) > 0 {
		respond.MissingFields(w, missing)
		return
	}

	if err := h.checker.Revoke(r.Context(), req.RoleID, req.PermissionName); err != nil {
		switch {
		case errors.Is(err, rbac.ErrUnknownRole):
			respond.Error(w, http.StatusBadRequest, "Invalid role. Please provide a valid role.")
		case errors.Is(err, rbac.ErrGrantNotFound):
			respond.Error(w, http.StatusNotFound, "Permission grant not found.")
		default:
			respond.Error(w, http.StatusInternalServerError, "Error revoking permission from the role.")
		}
		return
	}

	respond.JSON(w, http.StatusOK, "Permission revoked from the role successfully.", dto.PermissionData{
		RoleID:         req.RoleID,
		PermissionName: req.PermissionName,
	})
}
