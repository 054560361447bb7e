// Package warehouse implements the stock accounting core: named sections
// of named items with non-negative quantities, strict input validation,
// and atomic cross-section moves. The package holds no external
// dependencies and performs no I/O; presentation layers consume it through
// the Inventory call surface and its read-only projections.
package warehouse
