package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/feadoor/cryptopals/internal/auth"
)

type LoginReq struct {
	Password string `json:"password"`
}
type LoginRes struct {
	Token string `json:"token"`
}

// Login exchanges the operator password for a bearer token.
func Login(passwordHash string, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := auth.CheckPassword(passwordHash, req.Password); err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		token, err := auth.Sign("operator")
		if err != nil {
			lg.Errorw("token sign failed", "error", err)
			http.Error(w, "token sign failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, LoginRes{Token: token})
	}
}
