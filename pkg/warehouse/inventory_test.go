package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryAddSection(t *testing.T) {
	tests := []struct {
		name        string
		sectionName string
		wantErr     error
	}{
		{name: "valid name", sectionName: "Fruits"},
		{name: "empty name rejected", sectionName: "", wantErr: ErrInvalidName},
		{name: "whitespace name rejected", sectionName: " ", wantErr: ErrInvalidName},
		{name: "tab and spaces rejected", sectionName: " \t ", wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := New()

			err := inv.AddSection(tt.sectionName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, inv.SectionNames(), "section count must be unchanged on error")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, []string{tt.sectionName}, inv.SectionNames())
		})
	}
}

func TestInventoryAddSectionDuplicate(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddSection("Fruits"))

	err := inv.AddSection("Fruits")

	assert.ErrorIs(t, err, ErrDuplicateSection)
	assert.Equal(t, []string{"Fruits"}, inv.SectionNames())
}

func TestInventoryAddStock(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddSection("Fruits"))

	require.NoError(t, inv.AddStock("Fruits", "Apple", 10, ""))
	require.NoError(t, inv.AddStock("Fruits", "Apple", 5, ""))

	rows := inv.Snapshot()
	require.Len(t, rows, 1)
	assert.Equal(t, 15, rows[0].Quantity, "adds must accumulate")
}

func TestInventoryAddStockErrors(t *testing.T) {
	tests := []struct {
		name    string
		section string
		amount  int
		wantErr error
	}{
		{name: "missing section", section: "NoSuch", amount: 5, wantErr: ErrSectionNotFound},
		{name: "zero amount", section: "Fruits", amount: 0, wantErr: ErrInvalidAmount},
		{name: "negative amount", section: "Fruits", amount: -1, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := New()
			require.NoError(t, inv.AddSection("Fruits"))

			err := inv.AddStock(tt.section, "Apple", tt.amount, "")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, inv.Snapshot(), "failed add must not create records")
		})
	}
}

func TestInventoryAddStockMissingSectionLeavesNoTrace(t *testing.T) {
	inv := New()

	err := inv.AddStock("Ghost", "Apple", 5, "")

	assert.ErrorIs(t, err, ErrSectionNotFound)
	for _, row := range inv.Snapshot() {
		assert.NotEqual(t, "Ghost", row.Section)
	}
	assert.Empty(t, inv.SectionNames())
}

func TestInventoryRemoveStock(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddSection("Fruits"))
	require.NoError(t, inv.AddStock("Fruits", "Apple", 3, ""))

	require.NoError(t, inv.RemoveStock("Fruits", "Apple", 3))

	rows := inv.Snapshot()
	require.Len(t, rows, 1, "item record must remain at quantity zero")
	assert.Equal(t, 0, rows[0].Quantity)
}

func TestInventoryRemoveStockErrors(t *testing.T) {
	tests := []struct {
		name    string
		section string
		item    string
		amount  int
		wantErr error
	}{
		{name: "missing section", section: "NoSuch", item: "Apple", amount: 1, wantErr: ErrSectionNotFound},
		{name: "zero amount", section: "Fruits", item: "Apple", amount: 0, wantErr: ErrInvalidAmount},
		{name: "missing item", section: "Fruits", item: "Banana", amount: 1, wantErr: ErrItemNotFound},
		{name: "insufficient stock", section: "Fruits", item: "Apple", amount: 5, wantErr: ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := New()
			require.NoError(t, inv.AddSection("Fruits"))
			require.NoError(t, inv.AddStock("Fruits", "Apple", 3, ""))

			err := inv.RemoveStock(tt.section, tt.item, tt.amount)

			assert.ErrorIs(t, err, tt.wantErr)
			rows := inv.Snapshot()
			require.Len(t, rows, 1)
			assert.Equal(t, 3, rows[0].Quantity, "failed remove must leave quantity unchanged")
		})
	}
}

func TestInventorySetQuantity(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		item     string
		quantity int
		want     int
		wantErr  error
	}{
		{name: "corrective edit", section: "Fruits", item: "Apple", quantity: 42, want: 42},
		{name: "set to zero", section: "Fruits", item: "Apple", quantity: 0, want: 0},
		{name: "negative rejected", section: "Fruits", item: "Apple", quantity: -1, want: 10, wantErr: ErrInvalidAmount},
		{name: "missing section", section: "NoSuch", item: "Apple", quantity: 1, want: 10, wantErr: ErrSectionNotFound},
		{name: "missing item", section: "Fruits", item: "Banana", quantity: 1, want: 10, wantErr: ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := New()
			require.NoError(t, inv.AddSection("Fruits"))
			require.NoError(t, inv.AddStock("Fruits", "Apple", 10, ""))

			err := inv.SetQuantity(tt.section, tt.item, tt.quantity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			rows := inv.Snapshot()
			require.Len(t, rows, 1)
			assert.Equal(t, tt.want, rows[0].Quantity)
		})
	}
}

func TestInventoryMoveStockCreatesDestinationItem(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddSection("Fruits"))
	require.NoError(t, inv.AddSection("Veg"))
	require.NoError(t, inv.AddStock("Fruits", "Apple", 10, "2025-06-30"))

	require.NoError(t, inv.MoveStock("Fruits", "Veg", "Apple", 4))

	rows := inv.Snapshot()
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Section: "Fruits", Item: "Apple", Quantity: 6, Expiry: "2025-06-30"}, rows[0])
	assert.Equal(t, Row{Section: "Veg", Item: "Apple", Quantity: 4, Expiry: "2025-06-30"}, rows[1],
		"a created destination item carries the source expiry")
}

func TestInventoryMoveStockKeepsDestinationExpiry(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddSection("Fridge"))
	require.NoError(t, inv.AddSection("Shelf"))
	require.NoError(t, inv.AddStock("Fridge", "Milk", 6, "2025-01-01"))
	require.NoError(t, inv.AddStock("Shelf", "Milk", 2, "2026-12-31"))

	require.NoError(t, inv.MoveStock("Fridge", "Shelf", "Milk", 3))

	rows := inv.Snapshot()
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].Quantity)
	assert.Equal(t, 5, rows[1].Quantity)
	assert.Equal(t, "2026-12-31", rows[1].Expiry,
		"an existing destination item keeps its own expiry")
}

func TestInventoryMoveStockErrorsLeaveBothSectionsUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		item    string
		amount  int
		wantErr error
	}{
		{name: "missing source section", from: "NoSuch", to: "Veg", item: "Apple", amount: 1, wantErr: ErrSectionNotFound},
		{name: "missing destination section", from: "Fruits", to: "NoSuch", item: "Apple", amount: 1, wantErr: ErrSectionNotFound},
		{name: "missing item", from: "Fruits", to: "Veg", item: "Banana", amount: 1, wantErr: ErrItemNotFound},
		{name: "zero amount", from: "Fruits", to: "Veg", item: "Apple", amount: 0, wantErr: ErrInvalidAmount},
		{name: "negative amount", from: "Fruits", to: "Veg", item: "Apple", amount: -2, wantErr: ErrInvalidAmount},
		{name: "more than available", from: "Fruits", to: "Veg", item: "Apple", amount: 20, wantErr: ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := New()
			require.NoError(t, inv.AddSection("Fruits"))
			require.NoError(t, inv.AddSection("Veg"))
			require.NoError(t, inv.AddStock("Fruits", "Apple", 6, ""))

			err := inv.MoveStock(tt.from, tt.to, tt.item, tt.amount)

			assert.ErrorIs(t, err, tt.wantErr)
			rows := inv.Snapshot()
			require.Len(t, rows, 1, "no destination record may appear on failure")
			assert.Equal(t, 6, rows[0].Quantity, "source quantity must be untouched on failure")
		})
	}
}

func TestInventorySnapshotRoundTrip(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddSection("Fruits"))
	require.NoError(t, inv.AddStock("Fruits", "Apple", 10, "2025-01-01"))

	rows := inv.Snapshot()

	require.Len(t, rows, 1)
	assert.Equal(t, Row{Section: "Fruits", Item: "Apple", Quantity: 10, Expiry: "2025-01-01"}, rows[0])
}

func TestInventorySnapshotRendersMissingExpiry(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddSection("Hardware"))
	require.NoError(t, inv.AddStock("Hardware", "Nails", 100, ""))

	rows := inv.Snapshot()

	require.Len(t, rows, 1)
	assert.Equal(t, NoExpiry, rows[0].Expiry)
}

func TestInventorySnapshotOrder(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddSection("B-Section"))
	require.NoError(t, inv.AddSection("A-Section"))
	require.NoError(t, inv.AddStock("B-Section", "Zed", 1, ""))
	require.NoError(t, inv.AddStock("B-Section", "Alpha", 2, ""))
	require.NoError(t, inv.AddStock("A-Section", "Mid", 3, ""))

	rows := inv.Snapshot()

	require.Len(t, rows, 3)
	assert.Equal(t, "Zed", rows[0].Item)
	assert.Equal(t, "Alpha", rows[1].Item)
	assert.Equal(t, "Mid", rows[2].Item)
	assert.Equal(t, []string{"B-Section", "A-Section"}, inv.SectionNames(),
		"ordering follows insertion, not lexicographic sort")
}

func TestInventorySnapshotIsCopy(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddSection("Fruits"))
	require.NoError(t, inv.AddStock("Fruits", "Apple", 10, ""))

	rows := inv.Snapshot()
	rows[0].Quantity = 999

	again := inv.Snapshot()
	assert.Equal(t, 10, again[0].Quantity)
}

func TestInventoryItemNames(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddSection("Fruits"))
	require.NoError(t, inv.AddStock("Fruits", "Apple", 1, ""))
	require.NoError(t, inv.AddStock("Fruits", "Pear", 1, ""))

	assert.Equal(t, []string{"Apple", "Pear"}, inv.ItemNames("Fruits"))
	assert.Empty(t, inv.ItemNames("NoSuch"), "absent section yields an empty list, not an error")
}

func TestInventoryQuantityNeverNegative(t *testing.T) {
	inv := New()
	require.NoError(t, inv.AddSection("Fruits"))
	require.NoError(t, inv.AddSection("Veg"))
	require.NoError(t, inv.AddStock("Fruits", "Apple", 5, ""))

	// A mix of valid and invalid operations; after each one, no quantity
	// may be negative.
	ops := []func() error{
		func() error { return inv.RemoveStock("Fruits", "Apple", 2) },
		func() error { return inv.RemoveStock("Fruits", "Apple", 10) },
		func() error { return inv.MoveStock("Fruits", "Veg", "Apple", 2) },
		func() error { return inv.MoveStock("Fruits", "Veg", "Apple", 50) },
		func() error { return inv.RemoveStock("Veg", "Apple", 2) },
		func() error { return inv.SetQuantity("Fruits", "Apple", -1) },
	}
	for _, op := range ops {
		_ = op()
		for _, row := range inv.Snapshot() {
			assert.GreaterOrEqual(t, row.Quantity, 0)
		}
	}
}
