package models

import "github.com/google/uuid"

type Tenant struct {
	Base
	// UserID is the landlord (or caretaker) account that registered the tenant.
	UserID      uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_tenants_owner_national_id" json:"user_id"`
	FullName    string    `gorm:"not null" json:"full_name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `gorm:"not null" json:"phone_number"`
	NationalID  string    `gorm:"not null;uniqueIndex:idx_tenants_owner_national_id" json:"national_id"`
	DateOfBirth string    `gorm:"not null" json:"date_of_birth"`

	PropertyAddress string  `gorm:"not null" json:"property_address"`
	LeaseStartDate  string  `gorm:"not null" json:"lease_start_date"`
	LeaseEndDate    string  `gorm:"not null" json:"lease_end_date"`
	MonthlyRent     float64 `gorm:"not null" json:"monthly_rent"`
	PaymentMethod   string  `gorm:"not null" json:"payment_method"`
	SecurityDeposit float64 `json:"security_deposit,omitempty"`

	TenantReferences string `json:"tenant_references,omitempty"` // JSON-encoded list

	EmergencyContactName         string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty"`
}

func (Tenant) TableName() string {
	return "tenants"
}
