package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kenf/property-management/internal/api/dto"
	"github.com/kenf/property-management/internal/api/middleware"
	"github.com/kenf/property-management/internal/api/respond"
	"github.com/kenf/property-management/internal/auth"
	"github.com/kenf/property-management/internal/database/models"
	"gorm.io/gorm"
)

const propertyUniqueIDLength = 10

type PropertyHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewPropertyHandler(db *gorm.DB, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{db: db, logger: logger}
}

// Add handles POST /property/add. Identity comes from the shared auth
// middleware; a caller without a landlord profile is refused.
func (h *PropertyHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var landlord models.Landlord
	if err := h.db.WithContext(ctx).Where("user_id = ?", middleware.GetUserID(ctx)).First(&landlord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(w, http.StatusForbidden, "Forbidden, not a landlord")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	var req dto.AddPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.Missing(); len(missing) > 0 {
		respond.MissingFields(w, missing)
		return
	}

	uniqueID, err := auth.GenerateCode(propertyUniqueIDLength)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	property := models.Property{
		LandlordID:       landlord.ID,
		PropertyName:     req.PropertyName,
		PropertyType:     req.PropertyType,
		Location:         req.Location,
		NumberOfUnits:    req.NumberOfUnits,
		PriceRange:       req.PriceRange,
		Amenities:        string(req.Amenities),
		PropertyUniqueID: uniqueID,
	}

	if err := h.db.WithContext(ctx).Create(&property).Error; err != nil {
		h.logger.Error("failed to add property", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respond.JSON(w, http.StatusCreated, "Property added successfully", dto.PropertyData{
		ID:               property.ID.String(),
		PropertyName:     property.PropertyName,
		PropertyType:     property.PropertyType,
		Location:         property.Location,
		PropertyUniqueID: property.PropertyUniqueID,
	})
}

// List handles GET /property/list, returning the caller's properties.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var landlord models.Landlord
	if err := h.db.WithContext(ctx).Where("user_id = ?", middleware.GetUserID(ctx)).First(&landlord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(w, http.StatusForbidden, "Forbidden, not a landlord")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	pagination := dto.PaginationParams{Page: page, PerPage: perPage}
	pagination.Normalize()

	query := h.db.WithContext(ctx).Model(&models.Property{}).Where("landlord_id = ?", landlord.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	var properties []models.Property
	if err := query.Order("created_at DESC").Offset(pagination.Offset()).Limit(pagination.PerPage).Find(&properties).Error; err != nil {
		respond.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	totalPages := int((total + int64(pagination.PerPage) - 1) / int64(pagination.PerPage))
	respond.JSON(w, http.StatusOK, "OK", dto.PaginatedData{
		Items:      properties,
		Total:      total,
		Page:       pagination.Page,
		PerPage:    pagination.PerPage,
		TotalPages: totalPages,
	})
}
