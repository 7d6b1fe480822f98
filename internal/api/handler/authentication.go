package handler

import (
	"net/http"

	"github.com/vfg2006/toy-store-api/internal/domain"
	"github.com/vfg2006/toy-store-api/internal/usecases/authenticating"
)

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		resp, err := service.Register(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro interno ao registrar usuário")
			return
		}

		writeJSON(w, r, http.StatusCreated, resp)
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		resp, err := service.Login(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

// GetMe retorna o perfil do dono autenticado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}
