package api

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shrawanc911/HealthSyncInnovators/internal/llm"
	"github.com/shrawanc911/HealthSyncInnovators/pkg/api"
)

// HealthHandler reports service readiness, including the outcome of the LLM
// startup probe so the kiosk can show a clear "assistant offline" state
// instead of timing out on the first question.
func HealthHandler(db *gorm.DB, supervisor *llm.Supervisor) http.HandlerFunc {
	return RestHandler(func(r *http.Request) (any, error) {
		dbOK := false
		if db != nil {
			if sqlDB, err := db.DB(); err == nil {
				dbOK = sqlDB.PingContext(r.Context()) == nil
			}
		}

		llmOK := supervisor == nil || supervisor.Available()

		status := "ok"
		if !dbOK || !llmOK {
			status = "degraded"
		}
		return api.HealthResponse{Status: status, DB: dbOK, LLM: llmOK}, nil
	})
}
