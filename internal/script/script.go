// Package script loads and runs YAML batch scripts against an Inventory.
// A script is the declarative form of the operations a user would issue
// interactively: add sections, change stock, move stock between sections.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stockyard/pkg/warehouse"
)

// Operation names accepted in a script.
const (
	OpAddSection  = "add-section"
	OpAddStock    = "add-stock"
	OpRemoveStock = "remove-stock"
	OpSetQuantity = "set-quantity"
	OpMoveStock   = "move-stock"
)

// Op is a single scripted operation. Which fields matter depends on Name;
// unused fields are left at their zero values.
type Op struct {
	Name     string `yaml:"op"`
	Section  string `yaml:"section,omitempty"`
	Item     string `yaml:"item,omitempty"`
	Amount   int    `yaml:"amount,omitempty"`
	Quantity int    `yaml:"quantity,omitempty"`
	Expiry   string `yaml:"expiry,omitempty"`
	From     string `yaml:"from,omitempty"`
	To       string `yaml:"to,omitempty"`
}

// Script is a parsed batch of operations.
type Script struct {
	Ops []Op `yaml:"ops"`
}

// Load reads and parses a script file. Parsing touches no inventory state;
// a malformed file is rejected before anything runs.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &s, nil
}

// Run applies the script's operations to the inventory in order. It stops
// at the first failure and returns the error wrapped with the op index and
// name; operations before the failure remain applied.
func Run(inv *warehouse.Inventory, s *Script) error {
	for i, op := range s.Ops {
		if err := apply(inv, op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i+1, op.Name, err)
		}
	}
	return nil
}

func apply(inv *warehouse.Inventory, op Op) error {
	switch op.Name {
	case OpAddSection:
		return inv.AddSection(op.Section)
	case OpAddStock:
		return inv.AddStock(op.Section, op.Item, op.Amount, op.Expiry)
	case OpRemoveStock:
		return inv.RemoveStock(op.Section, op.Item, op.Amount)
	case OpSetQuantity:
		return inv.SetQuantity(op.Section, op.Item, op.Quantity)
	case OpMoveStock:
		return inv.MoveStock(op.From, op.To, op.Item, op.Amount)
	default:
		return fmt.Errorf("unknown op %q", op.Name)
	}
}
