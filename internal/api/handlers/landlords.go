package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kenf/property-management/internal/api/dto"
	"github.com/kenf/property-management/internal/api/middleware"
	"github.com/kenf/property-management/internal/api/respond"
	"github.com/kenf/property-management/internal/database"
	"github.com/kenf/property-management/internal/database/models"
	"github.com/kenf/property-management/pkg/crypto"
	"gorm.io/gorm"
)

// ProfileNotifier sends the best-effort "profile created" email.
type ProfileNotifier interface {
	ProfileCreatedEmail(ctx context.Context, to, name, profile string) error
}

type LandlordHandler struct {
	db        *gorm.DB
	encryptor *crypto.Encryptor
	notifier  ProfileNotifier
	logger    *slog.Logger
}

func NewLandlordHandler(db *gorm.DB, encryptor *crypto.Encryptor, notifier ProfileNotifier, logger *slog.Logger) *LandlordHandler {
	return &LandlordHandler{db: db, encryptor: encryptor, notifier: notifier, logger: logger}
}

// Create handles POST /landlord/create. Name, email, and phone come from
// the token claims, not the body.
func (h *LandlordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLandlordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.Missing(); len(missing) > 0 {
		respond.MissingFields(w, missing)
		return
	}

	ctx := r.Context()
	fullName := middleware.GetFullName(ctx)
	phoneNumber := middleware.GetPhoneNumber(ctx)

	// Pre-check is a friendlier error only; the unique constraint on
	// user_national_id is what actually enforces this under races.
	var count int64
	if err := h.db.WithContext(ctx).Model(&models.Landlord{}).Where("user_national_id = ?", req.NationalID).Count(&count).Error; err != nil {
		respond.Error(w, http.StatusInternalServerError, "Something went wrong while creating the landlord profile")
		return
	}
	if count > 0 {
		respond.Error(w, http.StatusBadRequest, "This national ID is already in use by another landlord.")
		return
	}

	encryptedAccount, err := h.encryptor.EncryptString(req.AccountNumber)
	if err != nil {
		h.logger.Error("failed to encrypt account number", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Something went wrong while creating the landlord profile")
		return
	}

	landlord := models.Landlord{
		UserID:        middleware.GetUserID(ctx),
		FullName:      fullName,
		Email:         middleware.GetUserEmail(ctx),
		PhoneNumber:   phoneNumber,
		NationalID:    req.NationalID,
		PropertyName:  req.PropertyName,
		PropertyType:  req.PropertyType,
		Location:      req.Location,
		NumberOfUnits: req.NumberOfUnits,
		PriceRange:    req.PriceRange,
		Amenities:     string(req.Amenities),
		BankName:      req.BankName,
		AccountNumber: encryptedAccount,
		Branch:        req.Branch,
	}

	if err := h.db.WithContext(ctx).Create(&landlord).Error; err != nil {
		if database.IsDuplicateKey(err) {
			respond.Error(w, http.StatusBadRequest, "A landlord with this information already exists")
			return
		}
		h.logger.Error("failed to create landlord profile", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Something went wrong while creating the landlord profile")
		return
	}

	if err := h.notifier.ProfileCreatedEmail(ctx, landlord.Email, fullName, "landlord"); err != nil {
		h.logger.Error("failed to send landlord welcome email", "email", landlord.Email, "error", err)
	}

	respond.JSON(w, http.StatusCreated, "Landlord profile created successfully", dto.LandlordData{
		ID:           landlord.ID.String(),
		FullName:     fullName,
		PhoneNumber:  phoneNumber,
		PropertyName: landlord.PropertyName,
		Location:     landlord.Location,
	})
}
