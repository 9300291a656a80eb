package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/platform/logger"
)

type ProductSource interface {
	ListProducts(ctx context.Context, filter model.ProductsFilter) ([]model.Product, error)
}

type StatusRepository interface {
	SetStatus(ctx context.Context, sku string, status model.StockStatus) error
	Statuses(ctx context.Context) (map[string]model.StockStatus, error)
}

type service struct {
	source       ProductSource
	statuses     StatusRepository
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewCatalogService(
	source ProductSource,
	statuses StatusRepository,
	readTimeout time.Duration,
	writeTimeout time.Duration,
) *service {
	return &service{
		source:       source,
		statuses:     statuses,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// FindByBarcode returns every product with a barcode containing code.
// Partial codes match.
func (s *service) FindByBarcode(ctx context.Context, code string) ([]model.Product, error) {
	const op = "catalog.service.FindByBarcode"
	log := logger.With(logger.String("barcode", code))

	code = strings.TrimSpace(code)
	if code == "" {
		log.Error(ctx, "validation: empty barcode")
		return nil, errors.Join(model.ErrValidation, errors.New("barcode must be non-empty"))
	}

	products, err := s.list(ctx, model.ProductsFilter{Barcode: code})
	if err != nil {
		log.Error(ctx, "source list products", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.annotate(ctx, lo.Filter(products, func(p model.Product, _ int) bool {
		return MatchBarcode(p, code)
	})), nil
}

// FindByName is a case-insensitive substring match on the product name.
func (s *service) FindByName(ctx context.Context, text string) ([]model.Product, error) {
	const op = "catalog.service.FindByName"
	log := logger.With(logger.String("name", text))

	text = strings.TrimSpace(text)
	if text == "" {
		log.Error(ctx, "validation: empty name")
		return nil, errors.Join(model.ErrValidation, errors.New("name must be non-empty"))
	}

	products, err := s.list(ctx, model.ProductsFilter{Name: text})
	if err != nil {
		log.Error(ctx, "source list products", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.annotate(ctx, lo.Filter(products, func(p model.Product, _ int) bool {
		return MatchName(p, text)
	})), nil
}

func (s *service) FindBySKU(ctx context.Context, sku string) (model.Product, error) {
	const op = "catalog.service.FindBySKU"
	log := logger.With(logger.String("sku", sku))

	sku = strings.TrimSpace(sku)
	if sku == "" {
		log.Error(ctx, "validation: empty sku")
		return model.Product{}, errors.Join(model.ErrValidation, errors.New("sku must be non-empty"))
	}

	products, err := s.list(ctx, model.ProductsFilter{SKU: sku})
	if err != nil {
		log.Error(ctx, "source list products", logger.ErrorF(err))
		return model.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, ok := lo.Find(products, func(p model.Product) bool { return p.SKU == sku })
	if !ok {
		return model.Product{}, fmt.Errorf("%s: %w", op, model.ErrProductNotFound)
	}

	return s.annotate(ctx, []model.Product{p})[0], nil
}

// Resolve decides what a scan leads to: nothing, one product, or a
// disambiguation list pre-filled with the scanned code.
func (s *service) Resolve(ctx context.Context, code string) (model.Resolution, error) {
	const op = "catalog.service.Resolve"

	products, err := s.FindByBarcode(ctx, code)
	if err != nil {
		return model.Resolution{}, fmt.Errorf("%s: %w", op, err)
	}

	res := model.Resolution{Code: strings.TrimSpace(code), Products: products}
	switch len(products) {
	case 0:
		res.Kind = model.ResolutionNoMatch
	case 1:
		res.Kind = model.ResolutionSingle
	default:
		res.Kind = model.ResolutionMultiple
	}

	return res, nil
}

func (s *service) SetStatus(ctx context.Context, sku string, status model.StockStatus) error {
	const op = "catalog.service.SetStatus"
	log := logger.With(
		logger.String("sku", sku),
		logger.String("status", string(status)),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	if err := s.statuses.SetStatus(ctx, strings.TrimSpace(sku), status); err != nil {
		log.Error(ctx, "repository set status", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "stock status updated")
	return nil
}

func (s *service) list(ctx context.Context, filter model.ProductsFilter) ([]model.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	return s.source.ListProducts(ctx, filter)
}

// annotate fills Status from the stock overrides. A failed read leaves every
// product in stock.
func (s *service) annotate(ctx context.Context, products []model.Product) []model.Product {
	if len(products) == 0 {
		return []model.Product{}
	}

	rctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	statuses, err := s.statuses.Statuses(rctx)
	if err != nil {
		logger.Warn(ctx, "read stock statuses", logger.ErrorF(err))
	}

	for i := range products {
		products[i].Status = model.StatusInStock
		if st, ok := statuses[products[i].SKU]; ok {
			products[i].Status = st
		}
	}
	return products
}

func MatchBarcode(p model.Product, code string) bool {
	return lo.ContainsBy(p.Barcodes, func(b string) bool { return strings.Contains(b, code) })
}

func MatchName(p model.Product, text string) bool {
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(text))
}
