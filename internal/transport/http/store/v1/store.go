package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/you-humble/field-orders/internal/converter"
	"github.com/you-humble/field-orders/internal/model"
	storesvc "github.com/you-humble/field-orders/internal/service/store"
	"github.com/you-humble/field-orders/internal/transport/http/respond"
)

type StoreService interface {
	ListMerchants(ctx context.Context) ([]model.Merchant, error)
	ListStores(ctx context.Context, merchant string) ([]model.Store, error)
	StoreByCode(ctx context.Context, code string) (model.Store, error)
}

type handler struct {
	svc StoreService
}

func NewStoreHandler(service StoreService) *handler {
	return &handler{svc: service}
}

func (h *handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/merchants", h.ListMerchants)
	r.Get("/api/v1/stores", h.ListStores)
	r.Get("/api/v1/stores/{code}", h.GetStore)
}

func (h *handler) ListMerchants(w http.ResponseWriter, r *http.Request) {
	merchants, err := h.svc.ListMerchants(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.MerchantsToResponse(merchants))
}

func (h *handler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.svc.ListStores(r.Context(), r.URL.Query().Get("merchant"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, lo.Map(stores, func(s model.Store, _ int) converter.StoreResponse {
		return storeResponse(s)
	}))
}

func (h *handler) GetStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.svc.StoreByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, storeResponse(store))
}

func storeResponse(s model.Store) converter.StoreResponse {
	res := converter.StoreToResponse(s)
	res.FormattedAddress = storesvc.FormatAddress(s)
	res.MapsURI = storesvc.MapsURI(s)
	return res
}
