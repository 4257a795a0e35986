package handlers_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kenf/property-management/internal/api"
	"github.com/kenf/property-management/internal/auth"
	"github.com/kenf/property-management/internal/rbac"
	"github.com/kenf/property-management/internal/testutil"
	"github.com/kenf/property-management/pkg/crypto"
	"gorm.io/gorm"
)

const basePath = "/api/kenf/management"

type testEnv struct {
	router   http.Handler
	db       *gorm.DB
	jwt      *auth.JWTService
	checker  *rbac.Checker
	notifier *testutil.NullNotifier
}

// setupEnv wires the full router against an in-memory store, the same
// composition cmd/server performs, minus redis.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelError}))
	jwtService := testutil.CreateTestJWTService()
	notifier := &testutil.NullNotifier{}
	checker := rbac.NewChecker(db)

	encryptor, err := crypto.NewEncryptor("")
	if err != nil {
		t.Fatalf("failed to create encryptor: %v", err)
	}

	router := api.NewRouter(api.RouterConfig{
		DB:          db,
		Logger:      logger,
		JWTService:  jwtService,
		AuthService: auth.NewService(db, jwtService, notifier, "http://localhost:3000", logger),
		Checker:     checker,
		Encryptor:   encryptor,
		Notifier:    notifier,
	})

	return &testEnv{
		router:   router,
		db:       db,
		jwt:      jwtService,
		checker:  checker,
		notifier: notifier,
	}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// envelope mirrors the response wrapper with Data left raw so each test
// decodes the shape it expects.
type envelope struct {
	Status        int             `json:"status"`
	Message       string          `json:"message"`
	Data          json.RawMessage `json:"data"`
	MissingFields []string        `json:"missing_fields"`
}

func parseEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	testutil.ParseJSONResponse(t, rr, &env)
	return env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("failed to decode data: %v. Data: %s", err, env.Data)
	}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
