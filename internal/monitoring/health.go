package monitoring

import (
	"context"
	"net/http"
	"time"

	"todo-list/internal/sessions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type checkResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler reports reachability of the database and the session store.
// Returns 200 when everything is healthy, 503 otherwise.
func HealthHandler(db *gorm.DB, store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := []checkResult{
			checkDatabase(ctx, db),
			checkSessions(ctx, store),
		}

		status := http.StatusOK
		overall := "healthy"
		for _, check := range checks {
			if check.Status != "healthy" {
				status = http.StatusServiceUnavailable
				overall = "unhealthy"
			}
		}

		c.JSON(status, gin.H{
			"status": overall,
			"checks": checks,
		})
	}
}

func checkDatabase(ctx context.Context, db *gorm.DB) checkResult {
	result := checkResult{Name: "database", Status: "healthy"}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Message = err.Error()
		return result
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		result.Status = "unhealthy"
		result.Message = err.Error()
	}
	return result
}

func checkSessions(ctx context.Context, store *sessions.Store) checkResult {
	result := checkResult{Name: "sessions", Status: "healthy"}

	if err := store.Ping(ctx); err != nil {
		result.Status = "unhealthy"
		result.Message = err.Error()
	}
	return result
}
