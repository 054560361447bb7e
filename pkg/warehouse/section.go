package warehouse

// Section is a named grouping of items, keyed by item name. Items are
// created lazily on first stock addition and never deleted; an item whose
// quantity reaches zero remains as a record. Insertion order is retained
// for projections.
//
// Sections are owned exclusively by an Inventory, which serializes all
// access; Section itself carries no lock.
type Section struct {
	Name  string
	items map[string]*Item
	order []string
}

func newSection(name string) *Section {
	return &Section{Name: name, items: make(map[string]*Item)}
}

// AddStock increases the named item's quantity by amount, creating the
// item with initial quantity amount on first reference. The expiry
// argument matters only at creation: a non-empty value makes the new item
// perishable, and an existing item's expiry is never overwritten by a
// later add.
func (s *Section) AddStock(itemName string, amount int, expiry string) error {
	if item, ok := s.items[itemName]; ok {
		return item.Increase(amount)
	}
	item, err := newItem(itemName, amount, expiry)
	if err != nil {
		return err
	}
	s.items[itemName] = item
	s.order = append(s.order, itemName)
	return nil
}

// RemoveStock decreases the named item's quantity by amount.
// Returns ErrItemNotFound if no such item exists.
func (s *Section) RemoveStock(itemName string, amount int) error {
	item, ok := s.items[itemName]
	if !ok {
		return ErrItemNotFound
	}
	return item.Decrease(amount)
}

// Lookup returns a copy of the named item. The copy keeps callers from
// mutating stock outside the validated operations.
func (s *Section) Lookup(itemName string) (Item, bool) {
	item, ok := s.items[itemName]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

// ItemNames returns the item names in insertion order.
func (s *Section) ItemNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Items returns copies of all items in insertion order.
func (s *Section) Items() []Item {
	items := make([]Item, 0, len(s.order))
	for _, name := range s.order {
		items = append(items, *s.items[name])
	}
	return items
}
