package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/kenf/property-management/internal/database/models"
	"github.com/kenf/property-management/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase_BeforeCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	t.Run("assigns a UUID on create", func(t *testing.T) {
		perm := models.Permission{Name: "some_permission"}
		require.NoError(t, db.Create(&perm).Error)
		assert.NotEqual(t, uuid.Nil, perm.ID)
	})

	t.Run("keeps a preset UUID", func(t *testing.T) {
		id := uuid.New()
		perm := models.Permission{Base: models.Base{ID: id}, Name: "preset_permission"}
		require.NoError(t, db.Create(&perm).Error)
		assert.Equal(t, id, perm.ID)
	})
}

func TestUser_FullName(t *testing.T) {
	u := models.User{FirstName: "Grace", MiddleName: "Wanjiru", LastName: "Njeri"}
	assert.Equal(t, "Grace Njeri", u.FullName())
}

func TestUser_SoftDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	user := testutil.CreateTestUser(t, db, "tenant")
	require.NoError(t, db.Delete(user).Error)

	var found models.User
	err := db.Where("id = ?", user.ID).First(&found).Error
	assert.Error(t, err)

	require.NoError(t, db.Unscoped().Where("id = ?", user.ID).First(&found).Error)
	assert.True(t, found.DeletedAt.Valid)
}
