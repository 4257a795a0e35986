package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kenf/property-management/internal/api/middleware"
	"github.com/kenf/property-management/internal/rbac"
	"github.com/kenf/property-management/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequirePermission(t *testing.T) {
	jwtService := testutil.CreateTestJWTService()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })
	checker := rbac.NewChecker(db)

	granted := testutil.CreateTestUser(t, db, "landlord")
	denied := testutil.CreateTestUser(t, db, "tenant")
	testutil.GrantPermission(t, db, "landlord", "create_tenant")

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	chain := middleware.Auth(jwtService)(
		middleware.RequirePermission(checker, "create_tenant")(ok),
	)

	t.Run("allows a user whose role holds the permission", func(t *testing.T) {
		token := testutil.GenerateTestToken(t, jwtService, granted)
		req := testutil.AuthenticatedRequest(t, http.MethodPost, "/tenants", nil, token)
		rr := httptest.NewRecorder()

		chain.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
	})

	t.Run("rejects a user without the permission", func(t *testing.T) {
		token := testutil.GenerateTestToken(t, jwtService, denied)
		req := testutil.AuthenticatedRequest(t, http.MethodPost, "/tenants", nil, token)
		rr := httptest.NewRecorder()

		chain.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusForbidden)
		assert.Contains(t, rr.Body.String(), "required permission")
	})

	t.Run("revoking takes effect immediately", func(t *testing.T) {
		if err := checker.Revoke(context.Background(), "landlord", "create_tenant"); err != nil {
			t.Fatalf("revoke failed: %v", err)
		}

		token := testutil.GenerateTestToken(t, jwtService, granted)
		req := testutil.AuthenticatedRequest(t, http.MethodPost, "/tenants", nil, token)
		rr := httptest.NewRecorder()

		chain.ServeHTTP(rr, req)

		testutil.AssertStatus(t, rr, http.StatusForbidden)
	})
}
