package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kenf/property-management/internal/auth"
	"github.com/kenf/property-management/internal/database/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Roles seeded into every test database.
var SeedRoles = []string{"landlord", "tenant", "caretaker", "admin"}

// SetupTestDB creates an in-memory SQLite database with the schema
// migrated and the standard roles seeded.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.RolePermission{},
		&models.UserRole{},
		&models.Landlord{},
		&models.Tenant{},
		&models.Property{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	for _, name := range SeedRoles {
		if err := db.Create(&models.Role{Name: name}).Error; err != nil {
			t.Fatalf("failed to seed role %s: %v", name, err)
		}
	}

	return db
}

// CleanupTestDB closes the test database connection.
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("warning: failed to get sql.DB: %v", err)
		return
	}
	sqlDB.Close()
}

// CreateTestUser creates a confirmed user with the given role, including
// the user_roles assignment. Password is "testpassword123".
func CreateTestUser(t *testing.T, db *gorm.DB, roleName string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("testpassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	suffix := uuid.New().String()[:8]
	user := &models.User{
		FirstName:        "Test",
		LastName:         "User",
		Email:            "test-" + suffix + "@example.com",
		PhoneNumber:      "+2547" + suffix[:6],
		Role:             roleName,
		PasswordHash:     hash,
		PublicID:         suffix[:6],
		ConfirmationCode: "CODE" + suffix[:4],
		IsConfirmed:      true,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		t.Fatalf("failed to find role %s: %v", roleName, err)
	}
	if err := db.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error; err != nil {
		t.Fatalf("failed to assign role: %v", err)
	}

	return user
}

// GrantPermission gives a permission to a role directly in the store.
func GrantPermission(t *testing.T, db *gorm.DB, roleName, permissionName string) {
	t.Helper()

	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		t.Fatalf("failed to find role %s: %v", roleName, err)
	}

	perm := models.Permission{Name: permissionName}
	if err := db.Where("name = ?", permissionName).FirstOrCreate(&perm).Error; err != nil {
		t.Fatalf("failed to create permission: %v", err)
	}

	if err := db.Create(&models.RolePermission{RoleID: role.ID, PermissionID: perm.ID}).Error; err != nil {
		t.Fatalf("failed to grant permission: %v", err)
	}
}

// CreateTestLandlord creates a landlord profile for the given user.
func CreateTestLandlord(t *testing.T, db *gorm.DB, user *models.User) *models.Landlord {
	t.Helper()

	landlord := &models.Landlord{
		UserID:        user.ID,
		FullName:      user.FullName(),
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		NationalID:    "ID-" + uuid.New().String()[:8],
		PropertyName:  "Test Apartments",
		PropertyType:  "apartment",
		Location:      "Nairobi",
		NumberOfUnits: 12,
		PriceRange:    "10000-30000",
		Amenities:     `{"water":true}`,
		BankName:      "Test Bank",
		AccountNumber: "encrypted-account",
		Branch:        "Main",
	}

	if err := db.Create(landlord).Error; err != nil {
		t.Fatalf("failed to create test landlord: %v", err)
	}

	return landlord
}

// CreateTestJWTService creates a JWT service for testing.
func CreateTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret-key-for-testing", time.Hour)
}

// GenerateTestToken generates a valid JWT token for the given user.
func GenerateTestToken(t *testing.T, jwtService *auth.JWTService, user *models.User) string {
	t.Helper()

	token, err := jwtService.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	return token
}

// NullNotifier satisfies the notification interfaces with no-ops and
// records recipients for assertions.
type NullNotifier struct {
	WelcomeSent []string
	ResetSent   []string
	ProfileSent []string
}

func (n *NullNotifier) WelcomeEmail(ctx context.Context, to, name, publicID, confirmationCode string) error {
	n.WelcomeSent = append(n.WelcomeSent, to)
	return nil
}

func (n *NullNotifier) PasswordResetEmail(ctx context.Context, to, resetLink string) error {
	n.ResetSent = append(n.ResetSent, resetLink)
	return nil
}

func (n *NullNotifier) ProfileCreatedEmail(ctx context.Context, to, name, profile string) error {
	n.ProfileSent = append(n.ProfileSent, to)
	return nil
}

// AuthenticatedRequest creates an HTTP request with authentication.
func AuthenticatedRequest(t *testing.T, method, path string, body interface{}, token string) *http.Request {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// UnauthenticatedRequest creates an HTTP request without authentication.
func UnauthenticatedRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	return AuthenticatedRequest(t, method, path, body, "")
}

// AssertStatus checks if the response has the expected status code.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if rr.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, rr.Code, rr.Body.String())
	}
}

// ParseJSONResponse parses the response body into the given struct.
func ParseJSONResponse(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response body: %v. Body: %s", err, rr.Body.String())
	}
}
