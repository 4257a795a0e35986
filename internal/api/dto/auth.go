package dto

type RegisterRequest struct {
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name,omitempty"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	Password    string `json:"password"`
}

// Missing returns the names of absent required fields, in declaration
// order. Middle name is optional.
func (r RegisterRequest) Missing() []string {
	var missing []string
	if r.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if r.LastName == "" {
		missing = append(missing, "last_name")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	if r.Role == "" {
		missing = append(missing, "role")
	}
	if r.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}

type RegisterData struct {
	ID               string `json:"id"`
	UserID           string `json:"userId"`
	Role             string `json:"role"`
	ConfirmationCode string `json:"confirmationCode"`
	Token            string `json:"token"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"` // email or phone number
	Password   string `json:"password"`
}

func (r LoginRequest) Missing() []string {
	var missing []string
	if r.Identifier == "" {
		missing = append(missing, "identifier")
	}
	if r.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}

type LoginData struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Token       string `json:"token"`
}

type ConfirmRequest struct {
	Email            string `json:"email"`
	ConfirmationCode string `json:"confirmation_code"`
}

func (r ConfirmRequest) Missing() []string {
	var missing []string
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.ConfirmationCode == "" {
		missing = append(missing, "confirmation_code")
	}
	return missing
}

type ConfirmData struct {
	Email       string `json:"email"`
	IsConfirmed bool   `json:"is_confirmed"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) Missing() []string {
	if r.Email == "" {
		return []string{"email"}
	}
	return nil
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (r ResetPasswordRequest) Missing() []string {
	var missing []string
	if r.Token == "" {
		missing = append(missing, "token")
	}
	if r.NewPassword == "" {
		missing = append(missing, "new_password")
	}
	return missing
}

type UserData struct {
	UserID      string `json:"userId"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name,omitempty"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	IsConfirmed bool   `json:"is_confirmed"`
}
