package warehouse

import "strings"

// Item kinds. A perishable item carries an expiry date; stock mutation
// behaves identically for both kinds.
const (
	KindRegular    = "regular"
	KindPerishable = "perishable"
)

// Item is a single stock record: a quantity counter plus optional
// perishability metadata. The name is immutable after creation and the
// quantity never goes negative; it is mutated only through Increase and
// Decrease, which validate before touching it.
type Item struct {
	Name     string
	Quantity int
	Kind     string
	Expiry   string // set only for KindPerishable
}

// newItem constructs an item with the given initial stock. An empty expiry
// yields a regular item, a non-empty one a perishable item. Returns
// ErrInvalidName for an empty or whitespace-only name and ErrInvalidAmount
// for an initial quantity of zero or less.
func newItem(name string, quantity int, expiry string) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	if quantity <= 0 {
		return nil, ErrInvalidAmount
	}
	kind := KindRegular
	if expiry != "" {
		kind = KindPerishable
	}
	return &Item{Name: name, Quantity: quantity, Kind: kind, Expiry: expiry}, nil
}

// Increase adds amount to the quantity.
// Returns ErrInvalidAmount if amount is zero or negative.
func (i *Item) Increase(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	i.Quantity += amount
	return nil
}

// Decrease subtracts amount from the quantity. Returns ErrInvalidAmount if
// amount is zero or negative, and ErrInsufficientStock if amount exceeds
// the current quantity.
func (i *Item) Decrease(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > i.Quantity {
		return ErrInsufficientStock
	}
	i.Quantity -= amount
	return nil
}

// expiryLabel returns the expiry date, or NoExpiry for regular items.
func (i *Item) expiryLabel() string {
	if i.Kind == KindPerishable {
		return i.Expiry
	}
	return NoExpiry
}
