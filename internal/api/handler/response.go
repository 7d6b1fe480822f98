package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/toy-store-api/internal/usecases/authenticating"
	"github.com/vfg2006/toy-store-api/internal/usecases/customer"
	"github.com/vfg2006/toy-store-api/internal/usecases/selling"
	"github.com/vfg2006/toy-store-api/pkg/apiErrors"
	"github.com/vfg2006/toy-store-api/pkg/log"
	"github.com/vfg2006/toy-store-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// ownerID lê o dono autenticado; responde 401 quando a rota não passou pelo AuthMiddleware
func ownerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := middleware.OwnerID(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
	}
	return id, ok
}

func queryInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return value
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		authErr     *authenticating.AuthError
		customerErr *customer.CustomerError
		saleErr     *selling.SaleError
	)

	switch {
	case errors.As(err, &authErr):
		writeCodedError(w, r, err, authErr.Code, authErr.Error(), authErr.Details, nil)
	case errors.As(err, &customerErr):
		writeCodedError(w, r, err, customerErr.Code, customerErr.Error(), customerErr.Details, idDetails(customerErr.CustomerID))
	case errors.As(err, &saleErr):
		writeCodedError(w, r, err, saleErr.Code, saleErr.Error(), saleErr.Details, idDetails(saleErr.SaleID))
	default:
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// erros de servidor não expõem a mensagem do banco para o cliente
func writeCodedError(w http.ResponseWriter, r *http.Request, err error, code, message, details string, extra any) {
	if strings.HasPrefix(code, "SRV_") {
		log.ForContext(r.Context()).WithError(err).Error(details)
		message = details
	}
	apiErrors.WriteError(w, code, message, extra)
}

func idDetails(id string) any {
	if id == "" {
		return nil
	}
	return map[string]string{"id": id}
}
