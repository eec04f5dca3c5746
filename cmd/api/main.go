// Package main provides the webshop-api command: the REST server and its
// maintenance commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFile is set by the --config flag
var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "webshop-api",
	Short: "REST API for customers, products and orders",
	Long: `webshop-api serves the Kunden, Produkte and Bestellungen collections
over HTTP. All data lives in a single JSON document kept in a file, Redis,
PostgreSQL or SQLite.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./webshop.yaml if present)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}
