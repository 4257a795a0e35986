// Package rbac answers "may this user do X" by joining the role and
// permission tables. There is no caching: a revoked grant is gone on the
// next request. Table sizes are small enough that the join per request
// is acceptable.
package rbac

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kenf/property-management/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrUnknownRole   = errors.New("unknown role")
	ErrGrantNotFound = errors.New("permission grant not found")
)

type Checker struct {
	db *gorm.DB
}

func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// HasPermission reports whether any role assigned to the user grants the
// named permission.
func (c *Checker) HasPermission(ctx context.Context, userID uuid.UUID, permission string) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Table("permissions").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ? AND permissions.name = ?", userID, permission).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking permission: %w", err)
	}
	return count > 0, nil
}

// Grant gives the named permission to a role, creating the permission row
// if it does not exist yet. Granting twice is a no-op success.
func (c *Checker) Grant(ctx context.Context, roleName, permissionName string) error {
	role, err := c.RoleByName(ctx, roleName)
	if err != nil {
		return err
	}

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var perm models.Permission
		if err := tx.Where("name = ?", permissionName).FirstOrCreate(&perm, models.Permission{Name: permissionName}).Error; err != nil {
			return fmt.Errorf("finding permission: %w", err)
		}

		grant := models.RolePermission{RoleID: role.ID, PermissionID: perm.ID}
		if err := tx.Where(&grant).FirstOrCreate(&grant).Error; err != nil {
			return fmt.Errorf("granting permission: %w", err)
		}
		return nil
	})
}

// Revoke removes a permission grant from a role.
func (c *Checker) Revoke(ctx context.Context, roleName, permissionName string) error {
	role, err := c.RoleByName(ctx, roleName)
	if err != nil {
		return err
	}

	var perm models.Permission
	if err := c.db.WithContext(ctx).Where("name = ?", permissionName).First(&perm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGrantNotFound
		}
		return fmt.Errorf("finding permission: %w", err)
	}

	result := c.db.WithContext(ctx).
		Where("role_id = ? AND permission_id = ?", role.ID, perm.ID).
		Delete(&models.RolePermission{})
	if result.Error != nil {
		return fmt.Errorf("revoking permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGrantNotFound
	}
	return nil
}

// RoleByName resolves a role, returning ErrUnknownRole when no such role
// exists in the roles table.
func (c *Checker) RoleByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	if err := c.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownRole
		}
		return nil, fmt.Errorf("looking up role: %w", err)
	}
	return &role, nil
}
