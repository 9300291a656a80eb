package store

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/platform/logger"
)

type StoreRepository interface {
	ListMerchants(ctx context.Context) ([]model.Merchant, error)
	ListStores(ctx context.Context, filter model.StoresFilter) ([]model.Store, error)
}

type service struct {
	repo        StoreRepository
	readTimeout time.Duration
}

func NewStoreService(repo StoreRepository, readTimeout time.Duration) *service {
	return &service{repo: repo, readTimeout: readTimeout}
}

func (s *service) ListMerchants(ctx context.Context) ([]model.Merchant, error) {
	const op = "store.service.ListMerchants"

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	merchants, err := s.repo.ListMerchants(ctx)
	if err != nil {
		logger.Error(ctx, "repository list merchants", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return merchants, nil
}

// ListStores returns the stores of a merchant ordered by numeric store code.
// An empty merchant lists every store.
func (s *service) ListStores(ctx context.Context, merchant string) ([]model.Store, error) {
	const op = "store.service.ListStores"
	log := logger.With(logger.String("merchant", merchant))

	rctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	stores, err := s.repo.ListStores(rctx, model.StoresFilter{Merchant: merchant})
	if err != nil {
		log.Error(ctx, "repository list stores", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slices.SortStableFunc(stores, func(a, b model.Store) int { return model.CompareSKU(a.Code, b.Code) })
	return stores, nil
}

func (s *service) StoreByCode(ctx context.Context, code string) (model.Store, error) {
	const op = "store.service.StoreByCode"
	log := logger.With(logger.String("store_code", code))

	stores, err := s.ListStores(ctx, "")
	if err != nil {
		return model.Store{}, fmt.Errorf("%s: %w", op, err)
	}

	store, ok := lo.Find(stores, func(st model.Store) bool { return st.Code == strings.TrimSpace(code) })
	if !ok {
		log.Warn(ctx, "store not found")
		return model.Store{}, fmt.Errorf("%s: %w", op, model.ErrStoreNotFound)
	}
	return store, nil
}

// FormatAddress renders "street, city, province, postalCode".
func FormatAddress(s model.Store) string {
	a := s.Address
	return strings.Join([]string{a.Street, a.City, a.Province, a.PostalCode}, ", ")
}

// MapsURI builds a geo: link for the store. Stores without a location get
// 0,0 so that maps apps fall back to the address query.
func MapsURI(s model.Store) string {
	var lat, lng float64
	if s.Location != nil {
		lat, lng = s.Location.Lat, s.Location.Lng
	}
	return fmt.Sprintf("geo:%s,%s?q=%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64),
		url.PathEscape(FormatAddress(s)),
	)
}
