package model

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNoStoreSelected  = errors.New("no store selected")
	ErrOrderNotFound    = errors.New("order not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrStoreNotFound    = errors.New("store not found")
	ErrKeyNotFound      = errors.New("key not found")
	ErrStorageRead      = errors.New("storage read error")
	ErrStorageWrite     = errors.New("storage write error")
	ErrNetwork          = errors.New("network error")
	ErrPermissionDenied = errors.New("permission denied")
)
