package dto

import "encoding/json"

type CreateTenantRequest struct {
	TenantFullName  string          `json:"tenant_full_name"`
	PhoneNumber     string          `json:"phone_number"`
	Email           string          `json:"email,omitempty"`
	NationalID      string          `json:"national_id"`
	DateOfBirth     string          `json:"date_of_birth"`
	PropertyAddress string          `json:"property_address"`
	LeaseStartDate  string          `json:"lease_start_date"`
	LeaseEndDate    string          `json:"lease_end_date"`
	MonthlyRent     float64         `json:"monthly_rent"`
	PaymentMethod   string          `json:"payment_method"`
	SecurityDeposit float64         `json:"security_deposit,omitempty"`
	References      json.RawMessage `json:"tenant_references,omitempty"`

	EmergencyContactName         string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string `json:"emergency_contact_number,omitempty"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty"`
}

func (r CreateTenantRequest) Missing() []string {
	var missing []string
	if r.TenantFullName == "" {
		missing = append(missing, "tenant_full_name")
	}
	if r.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	if r.NationalID == "" {
		missing = append(missing, "national_id")
	}
	if r.DateOfBirth == "" {
		missing = append(missing, "date_of_birth")
	}
	if r.PropertyAddress == "" {
		missing = append(missing, "property_address")
	}
	if r.LeaseStartDate == "" {
		missing = append(missing, "lease_start_date")
	}
	if r.LeaseEndDate == "" {
		missing = append(missing, "lease_end_date")
	}
	if r.MonthlyRent == 0 {
		missing = append(missing, "monthly_rent")
	}
	if r.PaymentMethod == "" {
		missing = append(missing, "payment_method")
	}
	return missing
}

type TenantData struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	PhoneNumber     string `json:"phone_number"`
	PropertyAddress string `json:"property_address"`
	LeaseStartDate  string `json:"lease_start_date"`
	LeaseEndDate    string `json:"lease_end_date"`
}
