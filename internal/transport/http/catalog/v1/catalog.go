package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/field-orders/internal/converter"
	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/internal/transport/http/respond"
)

type CatalogService interface {
	FindByBarcode(ctx context.Context, code string) ([]model.Product, error)
	FindByName(ctx context.Context, text string) ([]model.Product, error)
	Resolve(ctx context.Context, code string) (model.Resolution, error)
	SetStatus(ctx context.Context, sku string, status model.StockStatus) error
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type handler struct {
	svc CatalogService
}

func NewCatalogHandler(service CatalogService) *handler {
	return &handler{svc: service}
}

func (h *handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/scan/{code}", h.Scan)
		r.Put("/{sku}/status", h.SetStatus)
	})
}

// ListProducts searches by barcode or by name; exactly one must be given.
func (h *handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	barcode, name := q.Get("barcode"), q.Get("name")

	var (
		products []model.Product
		err      error
	)
	switch {
	case barcode != "" && name == "":
		products, err = h.svc.FindByBarcode(r.Context(), barcode)
	case name != "" && barcode == "":
		products, err = h.svc.FindByName(r.Context(), name)
	default:
		err = errors.Join(model.ErrValidation, errors.New("exactly one of barcode or name is required"))
	}
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.ProductsToResponse(products))
}

func (h *handler) Scan(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Resolve(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.ResolutionToResponse(res))
}

func (h *handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.SetStatus(r.Context(), chi.URLParam(r, "sku"), model.StockStatus(req.Status)); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.NoContent(w)
}
