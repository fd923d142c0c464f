package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/facturx/internal/docio"
	"github.com/rezonia/facturx/internal/profile"
	"github.com/rezonia/facturx/internal/schema"
	"github.com/rezonia/facturx/pkg/facturx"
)

var (
	outputPath   string
	lenient      bool
	genSchemaDir string
)

var generateCmd = &cobra.Command{
	Use:   "generate <document>",
	Short: "Generate Factur-X XML from an invoice document",
	Long: `Generate EN16931 Cross Industry Invoice XML from a YAML or JSON
invoice document.

The document is validated before anything is written: required fields,
value formats, monetary consistency, and profile gating. With --lenient,
fields above the target profile are silently dropped instead of rejected,
so the same document can be rendered at several profiles.

Examples:
  facturx generate invoice.yaml -o factur-x.xml
  facturx generate invoice.yaml --profile minimum --lenient
  facturx generate invoice.yaml --schema-dir ./xsd`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().BoolVar(&lenient, "lenient", false, "Drop profile gating errors instead of rejecting")
	generateCmd.Flags().StringVar(&genSchemaDir, "schema-dir", "", "Validate the output against the XSD schemas in this directory")
}

// resolveProfile picks the target profile: flag first, then the document's
// own declaration, then EN16931.
func resolveProfile(doc *docio.Document) (profile.Profile, error) {
	name := profileName
	if name == "" && doc != nil {
		name = doc.Profile
	}
	if name == "" {
		return profile.EN16931, nil
	}
	return profile.Parse(name)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	doc, err := docio.LoadFile(args[0])
	if err != nil {
		return err
	}

	p, err := resolveProfile(doc)
	if err != nil {
		return err
	}
	printVerbose("generating at profile %s\n", p)

	inv, err := doc.Build()
	if err != nil {
		return err
	}

	gen := facturx.NewGenerator(facturx.GeneratorOptions{Lenient: lenient, Indent: 2})
	out, err := gen.GenerateBytes(inv, p)
	if err != nil {
		return err
	}

	if genSchemaDir != "" {
		report, err := schema.NewValidatorDir(genSchemaDir).Validate(out, p)
		if err != nil {
			return err
		}
		if !report.Valid {
			for _, d := range report.Diagnostics {
				fmt.Fprintf(os.Stderr, "schema: [%s] %s\n", d.Code, d.Message)
			}
			return fmt.Errorf("generated XML failed schema validation with %d findings", len(report.Diagnostics))
		}
		printVerbose("schema validation passed\n")
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	printVerbose("wrote %s (%d bytes)\n", outputPath, len(out))
	return nil
}
