package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")       // 400
	ErrUnauthenticated    = errors.New("user not authenticated") // 401
	ErrSparePartNotFound  = errors.New("spare part not found")   // 404
	ErrRepairPartNotFound = errors.New("repair part not found")  // 404
	ErrDuplicateSKU       = errors.New("duplicate variant sku")  // 409
	ErrInsufficientStock  = errors.New("insufficient stock")     // 422
	ErrUnknownStatus      = errors.New("unknown status")
)

// InsufficientStockError carries the offending part name and both
// quantities for display.
type InsufficientStockError struct {
	PartName  string
	Available int64
	Needed    int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. Available: %d, Needed: %d",
		e.PartName, e.Available, e.Needed)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
