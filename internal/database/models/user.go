package models

type User struct {
	Base
	FirstName   string `gorm:"not null" json:"first_name"`
	MiddleName  string `json:"middle_name,omitempty"`
	LastName    string `gorm:"not null" json:"last_name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"uniqueIndex;not null" json:"phone_number"`
	Role        string `gorm:"not null" json:"role"` // landlord, tenant, caretaker, admin

	PasswordHash string `gorm:"not null" json:"-"`

	// PublicID is the short generated identifier exposed to clients
	// instead of the database primary key.
	PublicID         string `gorm:"uniqueIndex;not null" json:"user_id"`
	ConfirmationCode string `gorm:"not null" json:"-"`
	IsConfirmed      bool   `gorm:"default:false" json:"is_confirmed"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
