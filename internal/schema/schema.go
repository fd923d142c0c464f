// Package schema validates generated invoice XML against the official
// Factur-X XSD schema sets. Each profile ships its own schema; the
// validator compiles them lazily and caches the compiled form, so repeated
// validation amortizes the load cost.
package schema

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"

	"github.com/rezonia/facturx/internal/profile"
)

// Diagnostic is one schema violation, located as precisely as the
// underlying validator can manage.
type Diagnostic struct {
	Code     string
	Message  string
	Location string
	Line     int
	Column   int
}

// Report is the outcome of validating one document.
type Report struct {
	Valid       bool
	Diagnostics []Diagnostic
}

// Validator checks serialized XML against the schema for a profile.
type Validator interface {
	Validate(xml []byte, p profile.Profile) (*Report, error)
}

// XSDValidator implements Validator on top of compiled XSD schemas. The
// backing filesystem must hold one entry point per profile, named
// <profile>.xsd in lower case (minimum.xsd, basicwl.xsd, basic.xsd,
// en16931.xsd); includes and imports are resolved relative to it.
type XSDValidator struct {
	fsys fs.FS

	mu      sync.Mutex
	schemas map[profile.Profile]*xsd.Schema
}

// NewValidator creates a validator reading schemas from fsys.
func NewValidator(fsys fs.FS) *XSDValidator {
	return &XSDValidator{
		fsys:    fsys,
		schemas: make(map[profile.Profile]*xsd.Schema),
	}
}

// NewValidatorDir creates a validator reading schemas from a directory.
func NewValidatorDir(dir string) *XSDValidator {
	return NewValidator(os.DirFS(dir))
}

func schemaFile(p profile.Profile) string {
	return strings.ToLower(p.String()) + ".xsd"
}

func (v *XSDValidator) schemaFor(p profile.Profile) (*xsd.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[p]; ok {
		return s, nil
	}
	s, err := xsd.Load(v.fsys, schemaFile(p))
	if err != nil {
		return nil, fmt.Errorf("load %s schema: %w", p, err)
	}
	v.schemas[p] = s
	return s, nil
}

// Validate checks doc against the schema for p. Schema violations land in
// the report; only infrastructure failures (missing or uncompilable
// schema) surface as an error.
func (v *XSDValidator) Validate(doc []byte, p profile.Profile) (*Report, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown profile %d", int(p))
	}

	s, err := v.schemaFor(p)
	if err != nil {
		return nil, err
	}

	err = s.Validate(bytes.NewReader(doc))
	if err == nil {
		return &Report{Valid: true}, nil
	}

	violations, ok := xsderrors.AsValidations(err)
	if !ok {
		return nil, fmt.Errorf("validate against %s schema: %w", p, err)
	}

	report := &Report{Diagnostics: make([]Diagnostic, 0, len(violations))}
	for _, viol := range violations {
		report.Diagnostics = append(report.Diagnostics, Diagnostic{
			Code:     viol.Code,
			Message:  viol.Message,
			Location: viol.Path,
			Line:     viol.Line,
			Column:   viol.Column,
		})
	}
	return report, nil
}
