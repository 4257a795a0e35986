package handlers_test

import (
	"net/http"
	"testing"

	"github.com/kenf/property-management/internal/api/dto"
	"github.com/kenf/property-management/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody(email, phone string) map[string]interface{} {
	return map[string]interface{}{
		"first_name":   "Grace",
		"last_name":    "Njeri",
		"email":        email,
		"phone_number": phone,
		"role":         "landlord",
		"password":     "secret-password",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("creates a user and returns generated identifiers", func(t *testing.T) {
		env := setupEnv(t)

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/register", registerBody("grace@x.com", "+254700000001")))

		testutil.AssertStatus(t, rr, http.StatusCreated)

		var data dto.RegisterData
		decodeData(t, parseEnvelope(t, rr), &data)
		assert.Len(t, data.UserID, 6)
		assert.Len(t, data.ConfirmationCode, 8)
		assert.Equal(t, "landlord", data.Role)
		assert.NotEmpty(t, data.Token)
		assert.Equal(t, []string{"grace@x.com"}, env.notifier.WelcomeSent)
	})

	t.Run("lists every missing field", func(t *testing.T) {
		env := setupEnv(t)

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/register", map[string]interface{}{"first_name": "Grace"}))

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		resp := parseEnvelope(t, rr)
		assert.ElementsMatch(t,
			[]string{"last_name", "email", "phone_number", "role", "password"},
			resp.MissingFields)
	})

	t.Run("duplicate email is a 409 naming the email", func(t *testing.T) {
		env := setupEnv(t)

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/register", registerBody("dup@x.com", "+254700000002")))
		testutil.AssertStatus(t, rr, http.StatusCreated)

		rr = env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/register", registerBody("dup@x.com", "+254700000003")))
		testutil.AssertStatus(t, rr, http.StatusConflict)
		assert.Contains(t, parseEnvelope(t, rr).Message, "Email")
	})

	t.Run("duplicate phone is a 409 naming the phone number", func(t *testing.T) {
		env := setupEnv(t)

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/register", registerBody("one@x.com", "+254700000004")))
		testutil.AssertStatus(t, rr, http.StatusCreated)

		rr = env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/register", registerBody("two@x.com", "+254700000004")))
		testutil.AssertStatus(t, rr, http.StatusConflict)
		assert.Contains(t, parseEnvelope(t, rr).Message, "Phone number")
	})

	t.Run("unknown role is a 400", func(t *testing.T) {
		env := setupEnv(t)

		body := registerBody("role@x.com", "+254700000005")
		body["role"] = "superadmin"

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/register", body))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		assert.Contains(t, parseEnvelope(t, rr).Message, "Invalid role")
	})
}

// The full signup lifecycle: register, fail to log in unconfirmed, fail
// with the wrong code, confirm, log in.
func TestSignupLifecycle(t *testing.T) {
	env := setupEnv(t)

	rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
		basePath+"/users/register", registerBody("life@x.com", "+254700000010")))
	testutil.AssertStatus(t, rr, http.StatusCreated)

	var reg dto.RegisterData
	decodeData(t, parseEnvelope(t, rr), &reg)

	login := map[string]string{"identifier": "life@x.com", "password": "secret-password"}

	rr = env.do(testutil.UnauthenticatedRequest(t, http.MethodPost, basePath+"/users/login", login))
	testutil.AssertStatus(t, rr, http.StatusForbidden)
	assert.Contains(t, parseEnvelope(t, rr).Message, "not confirmed")

	rr = env.do(testutil.UnauthenticatedRequest(t, http.MethodPost, basePath+"/users/confirm",
		map[string]string{"email": "life@x.com", "confirmation_code": "WRONGCODE"}))
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = env.do(testutil.UnauthenticatedRequest(t, http.MethodPost, basePath+"/users/confirm",
		map[string]string{"email": "life@x.com", "confirmation_code": reg.ConfirmationCode}))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var confirmed dto.ConfirmData
	decodeData(t, parseEnvelope(t, rr), &confirmed)
	assert.True(t, confirmed.IsConfirmed)

	rr = env.do(testutil.UnauthenticatedRequest(t, http.MethodPost, basePath+"/users/login", login))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var loggedIn dto.LoginData
	decodeData(t, parseEnvelope(t, rr), &loggedIn)
	assert.Equal(t, reg.UserID, loggedIn.UserID)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("wrong password is a 404 with the shared message", func(t *testing.T) {
		env := setupEnv(t)
		user := testutil.CreateTestUser(t, env.db, "tenant")

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost, basePath+"/users/login",
			map[string]string{"identifier": user.Email, "password": "wrong"}))

		testutil.AssertStatus(t, rr, http.StatusNotFound)
		assert.Equal(t, "User not found or incorrect credentials", parseEnvelope(t, rr).Message)
	})

	t.Run("unknown identifier returns the identical body", func(t *testing.T) {
		env := setupEnv(t)

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost, basePath+"/users/login",
			map[string]string{"identifier": "ghost@x.com", "password": "whatever"}))

		testutil.AssertStatus(t, rr, http.StatusNotFound)
		assert.Equal(t, "User not found or incorrect credentials", parseEnvelope(t, rr).Message)
	})

	t.Run("login by phone number", func(t *testing.T) {
		env := setupEnv(t)
		user := testutil.CreateTestUser(t, env.db, "tenant")

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost, basePath+"/users/login",
			map[string]string{"identifier": user.PhoneNumber, "password": "testpassword123"}))

		testutil.AssertStatus(t, rr, http.StatusOK)
	})

	t.Run("missing fields", func(t *testing.T) {
		env := setupEnv(t)

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost, basePath+"/users/login",
			map[string]string{}))

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		assert.ElementsMatch(t, []string{"identifier", "password"}, parseEnvelope(t, rr).MissingFields)
	})
}

func TestPasswordResetEndpoints(t *testing.T) {
	t.Run("forgot then reset changes the password", func(t *testing.T) {
		env := setupEnv(t)
		user := testutil.CreateTestUser(t, env.db, "tenant")

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/forgot-password", map[string]string{"email": user.Email}))
		testutil.AssertStatus(t, rr, http.StatusOK)
		require.Len(t, env.notifier.ResetSent, 1)

		link := env.notifier.ResetSent[0]
		token := link[len("http://localhost:3000/reset-password?token="):]

		rr = env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/reset-password",
			map[string]string{"token": token, "new_password": "brand-new-password"}))
		testutil.AssertStatus(t, rr, http.StatusOK)

		rr = env.do(testutil.UnauthenticatedRequest(t, http.MethodPost, basePath+"/users/login",
			map[string]string{"identifier": user.Email, "password": "brand-new-password"}))
		testutil.AssertStatus(t, rr, http.StatusOK)
	})

	t.Run("forgot password for unknown email is a 404", func(t *testing.T) {
		env := setupEnv(t)

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/forgot-password", map[string]string{"email": "ghost@x.com"}))
		testutil.AssertStatus(t, rr, http.StatusNotFound)
	})

	t.Run("reset with a garbage token is a 400", func(t *testing.T) {
		env := setupEnv(t)

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/reset-password",
			map[string]string{"token": "garbage", "new_password": "x"}))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	t.Run("reset with an access token is a 400", func(t *testing.T) {
		env := setupEnv(t)
		user := testutil.CreateTestUser(t, env.db, "tenant")
		accessToken := testutil.GenerateTestToken(t, env.jwt, user)

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodPost,
			basePath+"/users/reset-password",
			map[string]string{"token": accessToken, "new_password": "x"}))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}

func TestMeEndpoint(t *testing.T) {
	t.Run("returns the authenticated user's profile", func(t *testing.T) {
		env := setupEnv(t)
		user := testutil.CreateTestUser(t, env.db, "landlord")
		token := testutil.GenerateTestToken(t, env.jwt, user)

		rr := env.do(testutil.AuthenticatedRequest(t, http.MethodGet, basePath+"/users/me", nil, token))
		testutil.AssertStatus(t, rr, http.StatusOK)

		var data dto.UserData
		decodeData(t, parseEnvelope(t, rr), &data)
		assert.Equal(t, user.PublicID, data.UserID)
		assert.Equal(t, user.Email, data.Email)
		assert.Equal(t, "landlord", data.Role)
		assert.True(t, data.IsConfirmed)
	})

	t.Run("requires authentication", func(t *testing.T) {
		env := setupEnv(t)

		rr := env.do(testutil.UnauthenticatedRequest(t, http.MethodGet, basePath+"/users/me", nil))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})
}
