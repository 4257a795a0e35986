package handlers

import (
	"net/http"

	"github.com/kenf/property-management/internal/api/respond"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// Health reports process liveness.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", nil)
}

// Ready reports whether the service can take traffic. Redis being down
// only degrades email delivery, so it is reported but not fatal.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(r.Context()) != nil {
		respond.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	deps := map[string]string{"database": "ok", "redis": "ok"}
	if h.redis == nil || h.redis.Ping(r.Context()).Err() != nil {
		deps["redis"] = "unavailable"
	}

	respond.JSON(w, http.StatusOK, "ready", deps)
}
