package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard API response wrapper used across handlers.
type Envelope struct {
	Status        int      `json:"status"`
	Message       string   `json:"message"`
	Data          any      `json:"data,omitempty"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

// JSON writes a success or informational response using the common envelope.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Envelope{Status: status, Message: message, Data: data})
}

// Error writes an error response with the shared envelope structure.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Status: status, Message: message})
}

// MissingFields writes the 400 response listing every absent required field.
func MissingFields(w http.ResponseWriter, fields []string) {
	write(w, http.StatusBadRequest, Envelope{
		Status:        http.StatusBadRequest,
		Message:       "Missing required fields",
		MissingFields: fields,
	})
}

func write(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
