package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/feadoor/cryptopals/internal/models"
)

// ListRuns returns the most recent persisted attack runs.
func ListRuns(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			http.Error(w, "persistence disabled", http.StatusServiceUnavailable)
			return
		}
		var runs []models.AttackRun
		if err := db.Order("created_at desc").Limit(100).Find(&runs).Error; err != nil {
			lg.Errorw("list runs failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, runs)
	}
}
