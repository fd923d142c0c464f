package facturx

import (
	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/profile"
)

// GeneratorOptions configures XML generation.
type GeneratorOptions struct {
	// Lenient drops profile gating errors during validation, so one
	// document graph can be rendered at several profiles. Fields below
	// their minimum profile are still omitted from the output.
	Lenient bool

	// SkipValidation renders without validating first. The output may
	// then violate EN16931 business rules; use only for diagnostics.
	SkipValidation bool

	// Indent is the number of spaces per nesting level. Zero writes the
	// document on a single line.
	Indent int
}

// DefaultGeneratorOptions returns strict validation with 2-space indentation.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Lenient:        false,
		SkipValidation: false,
		Indent:         2,
	}
}

// Generator validates an invoice graph and serializes it to CII XML.
type Generator struct {
	options GeneratorOptions
}

// NewGenerator creates a generator with the given options.
func NewGenerator(opts GeneratorOptions) *Generator {
	return &Generator{options: opts}
}

// NewDefaultGenerator creates a generator with default options.
func NewDefaultGenerator() *Generator {
	return NewGenerator(DefaultGeneratorOptions())
}

// Generate validates inv against p and renders it into an XML document.
// The EXTENDED profile is rejected; generation covers MINIMUM through
// EN16931.
func (g *Generator) Generate(inv *Invoice, p Profile) (*etree.Document, error) {
	if p == profile.Extended {
		return nil, ErrExtendedUnsupported
	}
	if !p.Valid() {
		return nil, &ValidationError{Field: "Profile", Value: int(p), Rule: "range", Message: "unknown compliance profile"}
	}

	if !g.options.SkipValidation {
		var err error
		if g.options.Lenient {
			err = inv.ValidateLenient(p)
		} else {
			err = inv.Validate(p)
		}
		if err != nil {
			return nil, err
		}
	}

	doc := inv.BuildDocument(p)
	if g.options.Indent > 0 {
		doc.Indent(g.options.Indent)
	}
	return doc, nil
}

// GenerateBytes is Generate followed by serialization to a byte slice.
func (g *Generator) GenerateBytes(inv *Invoice, p Profile) ([]byte, error) {
	doc, err := g.Generate(inv, p)
	if err != nil {
		return nil, err
	}
	return doc.WriteToBytes()
}

// GenerateString is Generate followed by serialization to a string.
func (g *Generator) GenerateString(inv *Invoice, p Profile) (string, error) {
	doc, err := g.Generate(inv, p)
	if err != nil {
		return "", err
	}
	return doc.WriteToString()
}
