package model

type Merchant struct {
	ID   string
	Name string
}

type Store struct {
	ID         string
	Code       string
	Name       string
	Merchant   string
	MerchantID string
	Address    Address
	Staffs     []Staff
	Location   *GeoPoint
	Remark     string
}

func (s Store) Ref() StoreRef {
	return StoreRef{
		ID:         s.ID,
		Code:       s.Code,
		Name:       s.Name,
		Merchant:   s.Merchant,
		MerchantID: s.MerchantID,
	}
}

type Address struct {
	Street     string
	City       string
	Province   string
	PostalCode string
}

type Staff struct {
	FirstName string
	Phones    []string
}

type GeoPoint struct {
	Lng float64
	Lat float64
}

type StoresFilter struct {
	Merchant string
}
