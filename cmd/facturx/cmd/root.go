package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose     bool
	profileName string
)

var rootCmd = &cobra.Command{
	Use:   "facturx",
	Short: "Generate and validate Factur-X electronic invoices",
	Long: `facturx turns invoice documents written in YAML or JSON into
EN16931 Cross Industry Invoice XML, at any of the Factur-X compliance
profiles from MINIMUM to EN16931.

Examples:
  # Generate EN16931 XML from a YAML invoice
  facturx generate invoice.yaml -o factur-x.xml

  # Generate at a reduced profile
  facturx generate invoice.yaml --profile basicwl

  # Validate without generating
  facturx validate invoice.yaml

  # List the supported profiles
  facturx profiles`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "Compliance profile (minimum, basicwl, basic, en16931); overrides the document")

	// Profile falls back to the FACTURX_PROFILE environment variable.
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if profileName == "" {
		profileName = os.Getenv("FACTURX_PROFILE")
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
