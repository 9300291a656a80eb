package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/field-orders/internal/converter"
	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/internal/transport/http/respond"
)

type OrderService interface {
	CreateOrder(ctx context.Context, params model.CreateOrderParams) (model.Order, error)
	OrderByNumber(ctx context.Context, number string) (model.Order, error)
	ListOrdersGroupedByDate(ctx context.Context) ([]model.DayGroup, error)
	ListItems(ctx context.Context, number string, sortBy model.ItemSortKey) ([]model.Item, error)
	AddItem(ctx context.Context, params model.AddItemParams) (model.Item, error)
	UpdateItemQuantity(ctx context.Context, params model.UpdateItemParams) error
	RemoveItem(ctx context.Context, number, sku string) error
	UpdateNotes(ctx context.Context, number, notes string) error
	RemoveOrder(ctx context.Context, number string) error
}

type ExportService interface {
	RenderOrder(ctx context.Context, number string) (name, text string, err error)
	ExportOrder(ctx context.Context, number string) (string, error)
	ExportDay(ctx context.Context, date string) ([]string, error)
}

type createOrderRequest struct {
	StoreCode string `json:"storeCode"`
}

type addItemRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

type exportResponse struct {
	Date  string   `json:"date,omitempty"`
	Files []string `json:"files"`
}

type handler struct {
	svc    OrderService
	export ExportService
}

func NewOrderHandler(service OrderService, export ExportService) *handler {
	return &handler{svc: service, export: export}
}

func (h *handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)

		r.Route("/{orderNumber}", func(r chi.Router) {
			r.Get("/", h.GetOrder)
			r.Delete("/", h.RemoveOrder)
			r.Put("/notes", h.UpdateNotes)
			r.Get("/export", h.DownloadOrder)
			r.Post("/export", h.ExportOrder)

			r.Get("/items", h.ListItems)
			r.Post("/items", h.AddItem)
			r.Put("/items/{sku}", h.UpdateItem)
			r.Delete("/items/{sku}", h.RemoveItem)
		})
	})

	r.Post("/api/v1/exports", h.ExportDay)
}

func (h *handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	ord, err := h.svc.CreateOrder(r.Context(), model.CreateOrderParams{StoreCode: req.StoreCode})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, converter.OrderToResponse(ord))
}

func (h *handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListOrdersGroupedByDate(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.DayGroupsToResponse(groups))
}

func (h *handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ord, err := h.svc.OrderByNumber(r.Context(), chi.URLParam(r, "orderNumber"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.OrderToResponse(ord))
}

func (h *handler) RemoveOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveOrder(r.Context(), chi.URLParam(r, "orderNumber")); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.NoContent(w)
}

func (h *handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	var req updateNotesRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.UpdateNotes(r.Context(), chi.URLParam(r, "orderNumber"), req.Notes); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.NoContent(w)
}

func (h *handler) ListItems(w http.ResponseWriter, r *http.Request) {
	sortBy := model.ItemSortKey(r.URL.Query().Get("sort"))

	items, err := h.svc.ListItems(r.Context(), chi.URLParam(r, "orderNumber"), sortBy)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, converter.ItemsToResponse(items))
}

func (h *handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	item, err := h.svc.AddItem(r.Context(), model.AddItemParams{
		OrderNumber: chi.URLParam(r, "orderNumber"),
		SKU:         req.SKU,
		Quantity:    req.Quantity,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, converter.ItemToResponse(item))
}

func (h *handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	err := h.svc.UpdateItemQuantity(r.Context(), model.UpdateItemParams{
		OrderNumber: chi.URLParam(r, "orderNumber"),
		SKU:         chi.URLParam(r, "sku"),
		Quantity:    req.Quantity,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.NoContent(w)
}

func (h *handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	err := h.svc.RemoveItem(r.Context(), chi.URLParam(r, "orderNumber"), chi.URLParam(r, "sku"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.NoContent(w)
}

func (h *handler) DownloadOrder(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "orderNumber")

	name, text, err := h.export.RenderOrder(r.Context(), number)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func (h *handler) ExportOrder(w http.ResponseWriter, r *http.Request) {
	path, err := h.export.ExportOrder(r.Context(), chi.URLParam(r, "orderNumber"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, exportResponse{Files: []string{path}})
}

func (h *handler) ExportDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	files, err := h.export.ExportDay(r.Context(), date)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, exportResponse{Date: date, Files: files})
}
