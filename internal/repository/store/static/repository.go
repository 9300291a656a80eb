package static

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/you-humble/field-orders/internal/model"
)

var (
	//go:embed data/merchants.json
	bundledMerchants []byte
	//go:embed data/stores.json
	bundledStores []byte
)

type merchantEntity struct {
	Name string `json:"name"`
}

type storeEntity struct {
	Code     json.Number `json:"code"`
	Name     string      `json:"name"`
	Merchant string      `json:"merchant"`
	Address  struct {
		Street     string `json:"street"`
		City       string `json:"city"`
		Province   string `json:"province"`
		PostalCode string `json:"postalCode"`
	} `json:"address"`
	Staffs []struct {
		FirstName string   `json:"firstName"`
		Phones    []string `json:"phones"`
	} `json:"staffs"`
	Location *struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"location,omitempty"`
	Remark string `json:"remark,omitempty"`
}

// repository serves the merchant and store directory bundled with the binary.
type repository struct {
	merchants []model.Merchant
	stores    []model.Store
}

func NewStoreRepository() (*repository, error) {
	return NewStoreRepositoryFromJSON(bundledMerchants, bundledStores)
}

func NewStoreRepositoryFromJSON(merchantsRaw, storesRaw []byte) (*repository, error) {
	const op = "static.NewStoreRepository"

	var merchants []merchantEntity
	if err := json.Unmarshal(merchantsRaw, &merchants); err != nil {
		return nil, fmt.Errorf("%s: merchants: %w", op, err)
	}

	var stores []storeEntity
	if err := json.Unmarshal(storesRaw, &stores); err != nil {
		return nil, fmt.Errorf("%s: stores: %w", op, err)
	}

	return &repository{
		merchants: lo.Map(merchants, func(m merchantEntity, _ int) model.Merchant {
			return model.Merchant{Name: m.Name}
		}),
		stores: lo.Map(stores, func(s storeEntity, _ int) model.Store { return s.toModel() }),
	}, nil
}

func (r *repository) ListMerchants(_ context.Context) ([]model.Merchant, error) {
	return slices.Clone(r.merchants), nil
}

// ListStores returns every store of the merchant, or all stores when the
// filter is empty.
func (r *repository) ListStores(_ context.Context, filter model.StoresFilter) ([]model.Store, error) {
	out := make([]model.Store, 0, len(r.stores))
	for _, s := range r.stores {
		if filter.Merchant != "" && s.Merchant != filter.Merchant {
			continue
		}
		s.Staffs = slices.Clone(s.Staffs)
		out = append(out, s)
	}
	return out, nil
}

func (e storeEntity) toModel() model.Store {
	s := model.Store{
		Code:     e.Code.String(),
		Name:     e.Name,
		Merchant: e.Merchant,
		Address: model.Address{
			Street:     e.Address.Street,
			City:       e.Address.City,
			Province:   e.Address.Province,
			PostalCode: e.Address.PostalCode,
		},
		Remark: e.Remark,
	}
	for _, st := range e.Staffs {
		s.Staffs = append(s.Staffs, model.Staff{FirstName: st.FirstName, Phones: slices.Clone(st.Phones)})
	}
	if e.Location != nil && len(e.Location.Coordinates) == 2 {
		s.Location = &model.GeoPoint{Lng: e.Location.Coordinates[0], Lat: e.Location.Coordinates[1]}
	}
	return s
}
