package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/toy-store-api/internal/domain"
	"github.com/vfg2006/toy-store-api/internal/usecases/customer"
)

func ListCustomers(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		resp, err := service.List(r.Context(), owner, domain.CustomerFilters{
			Name:  query.Get("name"),
			Email: query.Get("email"),
			Page:  queryInt(r, "page"),
			Limit: queryInt(r, "limit"),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar clientes")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

func CreateCustomer(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req domain.CreateCustomerRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		created, err := service.Create(r.Context(), owner, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar cliente")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func GetCustomer(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		found, err := service.Get(r.Context(), owner, id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar cliente")
			return
		}

		writeJSON(w, r, http.StatusOK, found)
	}
}

func UpdateCustomer(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateCustomerRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		updated, err := service.Update(r.Context(), owner, id, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar cliente")
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

func DeleteCustomer(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.Delete(r.Context(), owner, id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover cliente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
