package models

import "github.com/google/uuid"

type Role struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"` // landlord, tenant, caretaker, admin
}

func (Role) TableName() string {
	return "roles"
}

type Permission struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Permission) TableName() string {
	return "permissions"
}

// RolePermission grants a permission to a role.
type RolePermission struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"role_id"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"permission_id"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// UserRole assigns a role to a user.
type UserRole struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RoleID uuid.UUID `gorm:"type:uuid;primaryKey" json:"role_id"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
