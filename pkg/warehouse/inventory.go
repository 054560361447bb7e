package warehouse

import (
	"strings"
	"sync"
)

// NoExpiry is the projection value for items without an expiry date.
const NoExpiry = "N/A"

// Row is one line of the flat snapshot projection.
type Row struct {
	Section  string `json:"section"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Expiry   string `json:"expiry"`
}

// Inventory owns all sections and orchestrates section creation,
// single-section stock changes, and atomic cross-section moves. One mutex
// guards the whole structure for the duration of every call: MoveStock
// must observe and update two sections as a single unit, so per-section
// locking would permit a lost update between the decrease and the paired
// increase.
type Inventory struct {
	mu       sync.Mutex
	sections map[string]*Section
	order    []string
}

// New returns an empty Inventory.
func New() *Inventory {
	return &Inventory{sections: make(map[string]*Section)}
}

// AddSection inserts an empty section. Returns ErrInvalidName for an empty
// or whitespace-only name and ErrDuplicateSection if the name is already
// taken.
func (inv *Inventory) AddSection(name string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	if _, ok := inv.sections[name]; ok {
		return ErrDuplicateSection
	}
	inv.sections[name] = newSection(name)
	inv.order = append(inv.order, name)
	return nil
}

// AddStock adds amount of the named item to a section, creating the item
// on first reference. Returns ErrSectionNotFound if the section is absent
// and ErrInvalidAmount if amount is zero or negative.
func (inv *Inventory) AddStock(sectionName, itemName string, amount int, expiry string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	section, ok := inv.sections[sectionName]
	if !ok {
		return ErrSectionNotFound
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return section.AddStock(itemName, amount, expiry)
}

// RemoveStock removes amount of the named item from a section. Returns
// ErrSectionNotFound or ErrInvalidAmount for bad input, and surfaces
// ErrItemNotFound and ErrInsufficientStock from the section.
func (inv *Inventory) RemoveStock(sectionName, itemName string, amount int) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	section, ok := inv.sections[sectionName]
	if !ok {
		return ErrSectionNotFound
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return section.RemoveStock(itemName, amount)
}

// SetQuantity writes an absolute quantity for an existing item, bypassing
// the positive-delta rules of AddStock and RemoveStock. Meant for
// corrective edits. Returns ErrSectionNotFound, ErrItemNotFound, or
// ErrInvalidAmount for a negative quantity.
func (inv *Inventory) SetQuantity(sectionName, itemName string, quantity int) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	section, ok := inv.sections[sectionName]
	if !ok {
		return ErrSectionNotFound
	}
	item, ok := section.items[itemName]
	if !ok {
		return ErrItemNotFound
	}
	if quantity < 0 {
		return ErrInvalidAmount
	}
	item.Quantity = quantity
	return nil
}

// MoveStock transfers amount of the named item from one section to
// another. Every precondition is checked before anything mutates, and the
// increase half cannot fail once the decrease half has run, so the
// transfer is all-or-nothing: either both sections reflect it or neither
// does. When the move creates the item in the destination it carries the
// source item's expiry; an existing destination item keeps its own expiry.
func (inv *Inventory) MoveStock(from, to, itemName string, amount int) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	src, ok := inv.sections[from]
	if !ok {
		return ErrSectionNotFound
	}
	dst, ok := inv.sections[to]
	if !ok {
		return ErrSectionNotFound
	}
	item, ok := src.items[itemName]
	if !ok {
		return ErrItemNotFound
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > item.Quantity {
		return ErrInsufficientStock
	}

	item.Quantity -= amount
	if existing, ok := dst.items[itemName]; ok {
		existing.Quantity += amount
		return nil
	}
	dst.items[itemName] = &Item{
		Name:     itemName,
		Quantity: amount,
		Kind:     item.Kind,
		Expiry:   item.Expiry,
	}
	dst.order = append(dst.order, itemName)
	return nil
}

// SectionNames returns all section names in insertion order.
func (inv *Inventory) SectionNames() []string {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	names := make([]string, len(inv.order))
	copy(names, inv.order)
	return names
}

// ItemNames returns the item names in the named section, in insertion
// order. An absent section yields an empty slice, not an error; this is a
// read-only convenience for populating selection lists.
func (inv *Inventory) ItemNames(sectionName string) []string {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	section, ok := inv.sections[sectionName]
	if !ok {
		return []string{}
	}
	return section.ItemNames()
}

// Snapshot returns one row per item across all sections, following
// section and item insertion order. The slice is rebuilt on every call
// under the inventory lock: a point-in-time copy, never a cached or live
// view.
func (inv *Inventory) Snapshot() []Row {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	rows := make([]Row, 0)
	for _, sectionName := range inv.order {
		section := inv.sections[sectionName]
		for _, itemName := range section.order {
			item := section.items[itemName]
			rows = append(rows, Row{
				Section:  sectionName,
				Item:     itemName,
				Quantity: item.Quantity,
				Expiry:   item.expiryLabel(),
			})
		}
	}
	return rows
}
