package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kenf/property-management/internal/api/validation"
	"github.com/kenf/property-management/internal/database"
	"github.com/kenf/property-management/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUnknownRole          = errors.New("unknown role")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrNotConfirmed         = errors.New("account not confirmed")
	ErrInvalidConfirmation  = errors.New("invalid confirmation code or user not found")
)

const (
	publicIDLength         = 6
	confirmationCodeLength = 8
)

// Notifier delivers account emails. Delivery is best effort: the service
// logs failures and never fails the request over them.
type Notifier interface {
	WelcomeEmail(ctx context.Context, to, name, publicID, confirmationCode string) error
	PasswordResetEmail(ctx context.Context, to, resetLink string) error
}

type Service struct {
	db          *gorm.DB
	jwt         *JWTService
	notifier    Notifier
	frontendURL string
	logger      *slog.Logger
}

func NewService(db *gorm.DB, jwt *JWTService, notifier Notifier, frontendURL string, logger *slog.Logger) *Service {
	return &Service{
		db:          db,
		jwt:         jwt,
		notifier:    notifier,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

type RegisterInput struct {
	FirstName   string
	MiddleName  string
	LastName    string
	Email       string
	PhoneNumber string
	Role        string
	Password    string
}

type RegisterOutput struct {
	User             *models.User
	ConfirmationCode string
	Token            string
}

type LoginOutput struct {
	User  *models.User
	Token string
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	var role models.Role
	if err := s.db.WithContext(ctx).Where("name = ?", input.Role).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownRole
		}
		return nil, fmt.Errorf("looking up role: %w", err)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	publicID, err := GenerateCode(publicIDLength)
	if err != nil {
		return nil, err
	}
	confirmationCode, err := GenerateCode(confirmationCodeLength)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:        input.FirstName,
		MiddleName:       input.MiddleName,
		LastName:         input.LastName,
		Email:            input.Email,
		PhoneNumber:      input.PhoneNumber,
		Role:             input.Role,
		PasswordHash:     hash,
		PublicID:         publicID,
		ConfirmationCode: confirmationCode,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error
	})
	if err != nil {
		if database.IsDuplicateKey(err) {
			return nil, s.conflictField(ctx, input.Email, input.PhoneNumber)
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.jwt.GenerateToken(&user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	if err := s.notifier.WelcomeEmail(ctx, user.Email, user.FullName(), publicID, confirmationCode); err != nil {
		s.logger.Error("failed to send welcome email", "email", user.Email, "error", err)
	}

	return &RegisterOutput{
		User:             &user,
		ConfirmationCode: confirmationCode,
		Token:            token,
	}, nil
}

// conflictField resolves which unique column collided so the caller can
// name it, without parsing driver error messages. The unique constraint
// already enforced correctness; this lookup is only for the message.
func (s *Service) conflictField(ctx context.Context, email, phone string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err == nil && count > 0 {
		return &database.ConflictError{Field: "email"}
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("phone_number = ?", phone).Count(&count).Error; err == nil && count > 0 {
		return &database.ConflictError{Field: "phone_number"}
	}
	return &database.ConflictError{Field: "user"}
}

// Login authenticates by email or phone number; the identifier's format
// decides which column is matched. Unknown identifier and wrong password
// produce the same error so responses never reveal which one it was.
func (s *Service) Login(ctx context.Context, identifier, password string) (*LoginOutput, error) {
	column := "phone_number"
	if validation.IsValidEmail(identifier) {
		column = "email"
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where(column+" = ?", identifier).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncorrectCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrIncorrectCredentials
	}

	if !user.IsConfirmed {
		return nil, ErrNotConfirmed
	}

	token, err := s.jwt.GenerateToken(&user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: &user, Token: token}, nil
}

// Confirm flips a user to confirmed when the emailed code matches.
// The transition is one-way; confirming twice is a no-op success.
func (s *Service) Confirm(ctx context.Context, email, confirmationCode string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND confirmation_code = ?", email, confirmationCode).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidConfirmation
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !user.IsConfirmed {
		if err := s.db.WithContext(ctx).Model(&user).Update("is_confirmed", true).Error; err != nil {
			return nil, fmt.Errorf("confirming user: %w", err)
		}
		user.IsConfirmed = true
	}

	return &user, nil
}

func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("looking up user: %w", err)
	}

	token, err := s.jwt.GenerateResetToken(user.Email)
	if err != nil {
		return fmt.Errorf("generating reset token: %w", err)
	}

	resetLink := s.frontendURL + "/reset-password?token=" + token
	if err := s.notifier.PasswordResetEmail(ctx, user.Email, resetLink); err != nil {
		s.logger.Error("failed to send password reset email", "email", user.Email, "error", err)
	}

	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	email, err := s.jwt.ValidateResetToken(token)
	if err != nil {
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	result := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Update("password_hash", hash)
	if result.Error != nil {
		return fmt.Errorf("updating password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
