package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezonia/facturx/internal/docio"
	"github.com/rezonia/facturx/internal/schema"
)

var (
	validateJSON      bool
	validateSchemaDir string
)

// ValidationResult is one file's validation outcome.
type ValidationResult struct {
	File    string   `json:"file"`
	Profile string   `json:"profile"`
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [documents...]",
	Short: "Validate invoice documents",
	Long: `Validate one or more invoice documents without generating XML.

Checks performed on YAML/JSON documents:
  - Required fields present (invoice number, issue date, parties, currency)
  - Value formats (country codes, VAT identifiers, IBAN, BIC, email)
  - Monetary consistency (totals reconcile within 0.02)
  - Profile gating (no field above the declared profile)
  - Line item uniqueness

Files with an .xml extension are instead checked against the per-profile
XSD schemas, which requires --schema-dir.

Examples:
  facturx validate invoice.yaml
  facturx validate invoices/*.yaml --profile basic --json
  facturx validate factur-x.xml --schema-dir ./xsd --profile basic`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit results as JSON")
	validateCmd.Flags().StringVar(&validateSchemaDir, "schema-dir", "", "Directory with per-profile XSD schemas (required for .xml input)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	results := make([]*ValidationResult, 0, len(args))
	allValid := true

	for _, file := range args {
		result := validateFile(file)
		results = append(results, result)
		if !result.Valid {
			allValid = false
		}
	}

	if validateJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID (%s)\n", r.File, r.Profile)
				continue
			}
			fmt.Printf("✗ %s: INVALID (%s)\n", r.File, r.Profile)
			for _, e := range r.Errors {
				fmt.Printf("  - %s\n", e)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func validateFile(file string) *ValidationResult {
	if strings.EqualFold(filepath.Ext(file), ".xml") {
		return validateXMLFile(file)
	}

	result := &ValidationResult{File: file}

	doc, err := docio.LoadFile(file)
	if err != nil {
		result.Errors = []string{err.Error()}
		return result
	}

	p, err := resolveProfile(doc)
	if err != nil {
		result.Errors = []string{err.Error()}
		return result
	}
	result.Profile = p.String()

	inv, err := doc.Build()
	if err != nil {
		result.Errors = []string{err.Error()}
		return result
	}

	if err := inv.Validate(p); err != nil {
		result.Errors = errorMessages(err)
		return result
	}

	result.Valid = true
	return result
}

func validateXMLFile(file string) *ValidationResult {
	result := &ValidationResult{File: file}

	if validateSchemaDir == "" {
		result.Errors = []string{"--schema-dir is required to validate XML files"}
		return result
	}

	p, err := resolveProfile(nil)
	if err != nil {
		result.Errors = []string{err.Error()}
		return result
	}
	result.Profile = p.String()

	data, err := os.ReadFile(file)
	if err != nil {
		result.Errors = []string{err.Error()}
		return result
	}

	report, err := schema.NewValidatorDir(validateSchemaDir).Validate(data, p)
	if err != nil {
		result.Errors = []string{err.Error()}
		return result
	}
	for _, d := range report.Diagnostics {
		result.Errors = append(result.Errors, fmt.Sprintf("[%s] %s", d.Code, d.Message))
	}

	result.Valid = report.Valid
	return result
}

func errorMessages(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		msgs := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, e.Error())
		}
		return msgs
	}
	return []string{err.Error()}
}
