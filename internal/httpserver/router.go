package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/feadoor/cryptopals/internal/auth"
	"github.com/feadoor/cryptopals/internal/httpserver/handlers"
)

// NewRouter wires the attack endpoints. db may be nil, in which case runs
// are not persisted and /v1/runs reports the persistence as disabled.
func NewRouter(db *gorm.DB, lg *zap.SugaredLogger, passwordHash string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Post("/v1/auth/login", handlers.Login(passwordHash, lg))
	r.Group(func(protected chi.Router) {
		protected.Use(auth.Bearer())
		protected.Post("/v1/attacks/suffix", handlers.RecoverSuffix(db, lg))
		protected.Post("/v1/attacks/mode", handlers.DetectMode(db, lg))
		protected.Post("/v1/attacks/cut-and-paste", handlers.CutAndPaste(db, lg))
		protected.Post("/v1/attacks/bit-flip", handlers.BitFlip(db, lg))
		protected.Get("/v1/runs", handlers.ListRuns(db, lg))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
