package models

import "github.com/google/uuid"

type Property struct {
	Base
	LandlordID    uuid.UUID `gorm:"type:uuid;index;not null" json:"landlord_id"`
	PropertyName  string    `gorm:"not null" json:"property_name"`
	PropertyType  string    `gorm:"not null" json:"property_type"`
	Location      string    `gorm:"not null" json:"location"`
	NumberOfUnits int       `gorm:"not null" json:"number_of_units"`
	PriceRange    string    `gorm:"not null" json:"price_range"`
	Amenities     string    `json:"amenities"` // JSON-encoded

	// PropertyUniqueID is the short generated identifier shared with tenants.
	PropertyUniqueID string `gorm:"uniqueIndex;not null" json:"property_unique_id"`

	Landlord *Landlord `gorm:"foreignKey:LandlordID" json:"landlord,omitempty"`
}

func (Property) TableName() string {
	return "properties"
}
