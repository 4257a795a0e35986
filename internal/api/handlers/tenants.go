package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kenf/property-management/internal/api/dto"
	"github.com/kenf/property-management/internal/api/middleware"
	"github.com/kenf/property-management/internal/api/respond"
	"github.com/kenf/property-management/internal/database"
	"github.com/kenf/property-management/internal/database/models"
	"gorm.io/gorm"
)

type TenantHandler struct {
	db       *gorm.DB
	notifier ProfileNotifier
	logger   *slog.Logger
}

func NewTenantHandler(db *gorm.DB, notifier ProfileNotifier, logger *slog.Logger) *TenantHandler {
	return &TenantHandler{db: db, notifier: notifier, logger: logger}
}

// Create handles POST /tenant/create.
func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.Missing(); len(missing) > 0 {
		respond.MissingFields(w, missing)
		return
	}

	ctx := r.Context()
	ownerID := middleware.GetUserID(ctx)

	// Friendly duplicate check scoped to this landlord's tenants; the
	// composite unique index is the real enforcement. Email is optional,
	// so an absent one must not match other email-less tenants.
	dup := h.db.WithContext(ctx).
		Where("phone_number = ?", req.PhoneNumber).
		Or("national_id = ?", req.NationalID)
	if req.Email != "" {
		dup = dup.Or("email = ?", req.Email)
	}

	var count int64
	err := h.db.WithContext(ctx).Model(&models.Tenant{}).
		Where("user_id = ?", ownerID).
		Where(dup).
		Count(&count).Error
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Something went wrong while creating the tenant profile")
		return
	}
	if count > 0 {
		respond.Error(w, http.StatusBadRequest, "A tenant with this phone number, email, or national ID already exists.")
		return
	}

	tenant := models.Tenant{
		UserID:          ownerID,
		FullName:        req.TenantFullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		NationalID:      req.NationalID,
		DateOfBirth:     req.DateOfBirth,
		PropertyAddress: req.PropertyAddress,
		LeaseStartDate:  req.LeaseStartDate,
		LeaseEndDate:    req.LeaseEndDate,
		MonthlyRent:     req.MonthlyRent,
		PaymentMethod:   req.PaymentMethod,
		SecurityDeposit: req.SecurityDeposit,

		TenantReferences:             string(req.References),
		EmergencyContactName:         req.EmergencyContactName,
		EmergencyContactPhone:        req.EmergencyContactPhone,
		EmergencyContactRelationship: req.EmergencyContactRelationship,
	}

	if err := h.db.WithContext(ctx).Create(&tenant).Error; err != nil {
		if database.IsDuplicateKey(err) {
			respond.Error(w, http.StatusBadRequest, "A tenant with this information already exists")
			return
		}
		h.logger.Error("failed to create tenant profile", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Something went wrong while creating the tenant profile")
		return
	}

	// Notice goes to the registering landlord's address.
	if err := h.notifier.ProfileCreatedEmail(ctx, middleware.GetUserEmail(ctx), tenant.FullName, "tenant"); err != nil {
		h.logger.Error("failed to send tenant welcome email", "error", err)
	}

	respond.JSON(w, http.StatusCreated, "Tenant profile created successfully", dto.TenantData{
		ID:              tenant.ID.String(),
		FullName:        tenant.FullName,
		PhoneNumber:     tenant.PhoneNumber,
		PropertyAddress: tenant.PropertyAddress,
		LeaseStartDate:  tenant.LeaseStartDate,
		LeaseEndDate:    tenant.LeaseEndDate,
	})
}

// List handles GET /tenant/list, returning the caller's tenants.
func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := middleware.GetUserID(ctx)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	pagination := dto.PaginationParams{Page: page, PerPage: perPage}
	pagination.Normalize()

	query := h.db.WithContext(ctx).Model(&models.Tenant{}).Where("user_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	var tenants []models.Tenant
	if err := query.Order("created_at DESC").Offset(pagination.Offset()).Limit(pagination.PerPage).Find(&tenants).Error; err != nil {
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	totalPages := int((total + int64(pagination.PerPage) - 1) / int64(pagination.PerPage))
	respond.JSON(w, http.StatusOK, "OK", dto.PaginatedData{
		Items:      tenants,
		Total:      total,
		Page:       pagination.Page,
		PerPage:    pagination.PerPage,
		TotalPages: totalPages,
	})
}
