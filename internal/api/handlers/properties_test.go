package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/kenf/property-management/internal/api/dto"
	"github.com/kenf/property-management/internal/database/models"
	"github.com/kenf/property-management/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propertyBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"property_name":   name,
		"property_type":   "apartment",
		"location":        "Kilimani, Nairobi",
		"number_of_units": 8,
		"price_range":     "30000-60000",
		"amenities":       map[string]bool{"gym": true},
	}
}

func TestAddProperty(t *testing.T) {
	t.Run("landlord with a profile adds a property", func(t *testing.T) {
		env := setupEnv(t)
		user := testutil.CreateTestUser(t, env.db, "landlord")
		landlord := testutil.CreateTestLandlord(t, env.db, user)
		token := testutil.GenerateTestToken(t, env.jwt, user)

		rr := env.do(testutil.AuthenticatedRequest(t, http.MethodPost,
			basePath+"/property/add", propertyBody("Hilltop Court"), token))

		testutil.AssertStatus(t, rr, http.StatusCreated)

		var data dto.PropertyData
		decodeData(t, parseEnvelope(t, rr), &data)
		assert.Equal(t, "Hilltop Court", data.PropertyName)
		assert.Len(t, data.PropertyUniqueID, 10)

		var stored models.Property
		require.NoError(t, env.db.Where("property_unique_id = ?", data.PropertyUniqueID).First(&stored).Error)
		assert.Equal(t, landlord.ID, stored.LandlordID)
	})

	t.Run("unique IDs differ between properties", func(t *testing.T) {
		env := setupEnv(t)
		user := testutil.CreateTestUser(t, env.db, "landlord")
		testutil.CreateTestLandlord(t, env.db, user)
		token := testutil.GenerateTestToken(t, env.jwt, user)

		seen := make(map[string]bool)
		for i := 0; i < 3; i++ {
			rr := env.do(testutil.AuthenticatedRequest(t, http.MethodPost,
				basePath+"/property/add", propertyBody(fmt.Sprintf("Block %d", i)), token))
			testutil.AssertStatus(t, rr, http.StatusCreated)

			var data dto.PropertyData
			decodeData(t, parseEnvelope(t, rr), &data)
			assert.False(t, seen[data.PropertyUniqueID], "duplicate unique ID %s", data.PropertyUniqueID)
			seen[data.PropertyUniqueID] = true
		}
	})

	t.Run("caller without a landlord profile gets 403", func(t *testing.T) {
		env := setupEnv(t)
		user := testutil.CreateTestUser(t, env.db, "landlord")
		token := testutil.GenerateTestToken(t, env.jwt, user)

		rr := env.do(testutil.AuthenticatedRequest(t, http.MethodPost,
			basePath+"/property/add", propertyBody("No Profile Court"), token))

		testutil.AssertStatus(t, rr, http.StatusForbidden)
		assert.Equal(t, "Forbidden, not a landlord", parseEnvelope(t, rr).Message)
	})

	t.Run("missing fields are listed", func(t *testing.T) {
		env := setupEnv(t)
		user := testutil.CreateTestUser(t, env.db, "landlord")
		testutil.CreateTestLandlord(t, env.db, user)
		token := testutil.GenerateTestToken(t, env.jwt, user)

		rr := env.do(testutil.AuthenticatedRequest(t, http.MethodPost,
			basePath+"/property/add", map[string]interface{}{"property_name": "X"}, token))

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		assert.Contains(t, parseEnvelope(t, rr).MissingFields, "location")
	})
}

func TestListProperties(t *testing.T) {
	env := setupEnv(t)

	owner := testutil.CreateTestUser(t, env.db, "landlord")
	ownerProfile := testutil.CreateTestLandlord(t, env.db, owner)
	other := testutil.CreateTestUser(t, env.db, "landlord")
	otherProfile := testutil.CreateTestLandlord(t, env.db, other)

	for i := 0; i < 2; i++ {
		require.NoError(t, env.db.Create(&models.Property{
			LandlordID:       ownerProfile.ID,
			PropertyName:     fmt.Sprintf("Owner Block %d", i),
			PropertyType:     "apartment",
			Location:         "Nairobi",
			NumberOfUnits:    4,
			PriceRange:       "10000-20000",
			PropertyUniqueID: fmt.Sprintf("OWNPROP%03d", i),
		}).Error)
	}
	require.NoError(t, env.db.Create(&models.Property{
		LandlordID:       otherProfile.ID,
		PropertyName:     "Other Block",
		PropertyType:     "apartment",
		Location:         "Mombasa",
		NumberOfUnits:    6,
		PriceRange:       "12000-22000",
		PropertyUniqueID: "OTHPROP001",
	}).Error)

	t.Run("only the caller's properties are returned", func(t *testing.T) {
		token := testutil.GenerateTestToken(t, env.jwt, owner)
		rr := env.do(testutil.AuthenticatedRequest(t, http.MethodGet, basePath+"/property/list", nil, token))

		testutil.AssertStatus(t, rr, http.StatusOK)

		var data dto.PaginatedData
		decodeData(t, parseEnvelope(t, rr), &data)
		assert.Equal(t, int64(2), data.Total)
	})

	t.Run("caller without a profile gets 403", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, env.db, "landlord")
		token := testutil.GenerateTestToken(t, env.jwt, stranger)

		rr := env.do(testutil.AuthenticatedRequest(t, http.MethodGet, basePath+"/property/list", nil, token))
		testutil.AssertStatus(t, rr, http.StatusForbidden)
	})
}
