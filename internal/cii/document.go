package cii

import (
	"time"

	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/profile"
)

// Note is a free-text note, used at document and line level.
type Note struct {
	Content     string
	SubjectCode string // UNTDID 4451
}

func (n Note) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: text("Content", n.Content)},
		{min: profile.EN16931, emit: optText("SubjectCode", n.SubjectCode)},
	})
}

func (n Note) validate(path string, p profile.Profile) []error {
	var errs []error
	if n.Content == "" {
		errs = append(errs, NewValidationError(path+".Content", nil, "required", "note content must not be empty"))
	}
	if n.SubjectCode != "" && p < profile.EN16931 {
		errs = append(errs, NewProfileError(path+".SubjectCode", profile.EN16931, p))
	}
	return errs
}

// ExchangedDocumentContext declares the business process and the guideline
// the document claims conformance with. The guideline ID is derived from the
// profile the document is rendered at, so the serialized claim can never
// drift from the gating actually applied.
type ExchangedDocumentContext struct {
	BusinessProcessID string // BT-23
}

func (c ExchangedDocumentContext) Render(name string, p profile.Profile) *etree.Element {
	root := render(NSRSM, name, p, []field{
		{min: profile.Minimum, emit: c.emitBusinessProcess()},
	})
	guideline := root.CreateElement(NSRAM + ":GuidelineSpecifiedDocumentContextParameter")
	guideline.CreateElement(NSRAM + ":ID").SetText(p.URN())
	return root
}

func (c ExchangedDocumentContext) emitBusinessProcess() emitFunc {
	if c.BusinessProcessID == "" {
		return nil
	}
	return func(parent *etree.Element, _ profile.Profile) {
		wrap := parent.CreateElement(NSRAM + ":BusinessProcessSpecifiedDocumentContextParameter")
		wrap.CreateElement(NSRAM + ":ID").SetText(c.BusinessProcessID)
	}
}

// ExchangedDocument is the invoice header: number, type, issue date, notes.
type ExchangedDocument struct {
	ID        string
	TypeCode  codes.InvoiceTypeCode // defaults to 380 (commercial invoice)
	IssueDate time.Time
	Notes     []Note
}

func (d ExchangedDocument) typeCode() codes.InvoiceTypeCode {
	if d.TypeCode == 0 {
		return codes.CommercialInvoice
	}
	return d.TypeCode
}

func (d ExchangedDocument) Render(name string, p profile.Profile) *etree.Element {
	return render(NSRSM, name, p, []field{
		{min: profile.Minimum, emit: text("ID", d.ID)},
		{min: profile.Minimum, emit: intText("TypeCode", int(d.typeCode()))},
		{min: profile.Minimum, emit: date("IssueDateTime", d.IssueDate)},
		{min: profile.BasicWL, emit: nodeList("IncludedNote", d.Notes)},
	})
}

func (d ExchangedDocument) validate(p profile.Profile) []error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, NewValidationError("ExchangedDocument.ID", nil, "required", "invoice number must not be empty"))
	}
	if d.IssueDate.IsZero() {
		errs = append(errs, NewValidationError("ExchangedDocument.IssueDate", nil, "required", "issue date must be set"))
	}
	if len(d.Notes) > 0 && p < profile.BasicWL {
		errs = append(errs, NewProfileError("ExchangedDocument.Notes", profile.BasicWL, p))
	}
	for i, n := range d.Notes {
		errs = append(errs, n.validate(indexPath("ExchangedDocument.Notes", i), p)...)
	}
	return errs
}
