package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/toy-store-api/internal/domain"
	"github.com/vfg2006/toy-store-api/internal/usecases/selling"
)

func ListSales(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		resp, err := service.List(r.Context(), owner, domain.SaleFilters{
			CustomerID: r.URL.Query().Get("customerId"),
			Page:       queryInt(r, "page"),
			Limit:      queryInt(r, "limit"),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

func CreateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req domain.CreateSaleRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		created, err := service.Create(r.Context(), owner, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar venda")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func GetSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		sale, err := service.Get(r.Context(), owner, id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar venda")
			return
		}

		writeJSON(w, r, http.StatusOK, sale)
	}
}

func UpdateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateSaleRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		sale, err := service.Update(r.Context(), owner, id, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar venda")
			return
		}

		writeJSON(w, r, http.StatusOK, sale)
	}
}

func DeleteSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.Delete(r.Context(), owner, id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover venda")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
