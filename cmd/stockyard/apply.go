// Apply command runs a YAML operation script and prints the result.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockyard/internal/render"
	"github.com/mesh-intelligence/stockyard/internal/script"
	"github.com/mesh-intelligence/stockyard/pkg/warehouse"
)

var applyCmd = &cobra.Command{
	Use:   "apply <script.yaml>",
	Short: "Run a batch of inventory operations from a YAML script",
	Long: `Apply executes the operations listed in a YAML script against a fresh
inventory and prints the resulting snapshot.

Supported ops: add-section, add-stock, remove-stock, set-quantity, move-stock.

Example script:

  ops:
    - op: add-section
      section: Fruits
    - op: add-stock
      section: Fruits
      item: Apple
      amount: 10
      expiry: "2025-01-01"
    - op: move-stock
      from: Fruits
      to: Veg
      item: Apple
      amount: 4`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	s, err := script.Load(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "apply:", err)
		os.Exit(exitSysError)
	}

	inv := warehouse.New()
	if err := script.Run(inv, s); err != nil {
		fmt.Fprintln(os.Stderr, "apply:", err)
		os.Exit(exitUserError)
	}

	rows := inv.Snapshot()
	if flagJSON {
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal snapshot:", err)
			os.Exit(exitSysError)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(render.Snapshot(rows))
	return nil
}
