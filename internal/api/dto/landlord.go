package dto

import "encoding/json"

type CreateLandlordRequest struct {
	NationalID    string          `json:"national_id"`
	PropertyName  string          `json:"property_name"`
	PropertyType  string          `json:"property_type"`
	Location      string          `json:"location"`
	NumberOfUnits int             `json:"number_of_units"`
	PriceRange    string          `json:"price_range"`
	Amenities     json.RawMessage `json:"amenities"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	Branch        string          `json:"branch"`
}

func (r CreateLandlordRequest) Missing() []string {
	var missing []string
	if r.NationalID == "" {
		missing = append(missing, "national_id")
	}
	if r.PropertyName == "" {
		missing = append(missing, "property_name")
	}
	if r.PropertyType == "" {
		missing = append(missing, "property_type")
	}
	if r.Location == "" {
		missing = append(missing, "location")
	}
	if r.NumberOfUnits == 0 {
		missing = append(missing, "number_of_units")
	}
	if r.PriceRange == "" {
		missing = append(missing, "price_range")
	}
	if len(r.Amenities) == 0 {
		missing = append(missing, "amenities")
	}
	if r.BankName == "" {
		missing = append(missing, "bank_name")
	}
	if r.AccountNumber == "" {
		missing = append(missing, "account_number")
	}
	if r.Branch == "" {
		missing = append(missing, "branch")
	}
	return missing
}

type LandlordData struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	PhoneNumber  string `json:"phone_number"`
	PropertyName string `json:"property_name"`
	Location     string `json:"location"`
}
