// Version command for the stockyard CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockyard/pkg/stockyard"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the stockyard version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stockyard", stockyard.Version)
	},
}
