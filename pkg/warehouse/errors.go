package warehouse

import "errors"

// Validation and lookup errors returned by Inventory, Section, and Item
// operations. All are caller-recoverable; callers match with errors.Is.
// Every failing operation leaves state unchanged.
var (
	ErrInvalidName       = errors.New("invalid name")
	ErrDuplicateSection  = errors.New("section already exists")
	ErrSectionNotFound   = errors.New("section not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientStock = errors.New("not enough stock")
)
