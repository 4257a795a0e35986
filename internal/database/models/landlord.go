package models

import "github.com/google/uuid"

type Landlord struct {
	Base
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	FullName    string    `gorm:"not null" json:"full_name"`
	Email       string    `gorm:"not null" json:"email"`
	PhoneNumber string    `gorm:"not null" json:"phone_number"`
	NationalID  string    `gorm:"column:user_national_id;uniqueIndex;not null" json:"national_id"`

	PropertyName  string `gorm:"not null" json:"property_name"`
	PropertyType  string `gorm:"not null" json:"property_type"`
	Location      string `gorm:"not null" json:"location"`
	NumberOfUnits int    `gorm:"not null" json:"number_of_units"`
	PriceRange    string `gorm:"not null" json:"price_range"`
	Amenities     string `json:"amenities"` // JSON-encoded

	BankName string `gorm:"not null" json:"bank_name"`
	// AccountNumber is stored encrypted; never returned in responses.
	AccountNumber string `gorm:"not null" json:"-"`
	Branch        string `gorm:"not null" json:"branch"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Landlord) TableName() string {
	return "landlords"
}
