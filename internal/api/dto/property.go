package dto

import "encoding/json"

type AddPropertyRequest struct {
	PropertyName  string          `json:"property_name"`
	PropertyType  string          `json:"property_type"`
	Location      string          `json:"location"`
	NumberOfUnits int             `json:"number_of_units"`
	PriceRange    string          `json:"price_range"`
	Amenities     json.RawMessage `json:"amenities"`
}

func (r AddPropertyRequest) Missing() []string {
	var missing []string
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
	return missing
}

type PropertyData struct {
	ID               string `json:"id"`
	PropertyName     string `json:"property_name"`
	PropertyType     string `json:"property_type"`
	Location         string `json:"location"`
	PropertyUniqueID string `json:"property_unique_id"`
}
