// Package cii models the Factur-X / EN16931 Cross Industry Invoice as a
// tree of immutable entity nodes and renders it to namespace-qualified XML.
//
// Every node implements Renderable: given an element name and a compliance
// profile it produces one etree element, with children appended in the
// schema's fixed sequence order and optional fields gated on the profile.
// Rendering never fails once a document passed validation; under-profile
// fields are omitted, not rejected, so the same graph can be rendered at
// any level.
package cii

import (
	"errors"

	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/profile"
)

// Invoice is the document graph root: one context, one header document,
// one trade transaction.
type Invoice struct {
	Context     ExchangedDocumentContext
	Document    ExchangedDocument
	Transaction SupplyChainTradeTransaction
}

// Render produces the rsm:CrossIndustryInvoice root element with all five
// namespace declarations, children in fixed order.
func (inv *Invoice) Render(name string, p profile.Profile) *etree.Element {
	root := etree.NewElement(NSRSM + ":" + name)
	for _, prefix := range nsPrefixOrder {
		root.CreateAttr("xmlns:"+prefix, Namespaces[prefix])
	}
	root.AddChild(inv.Context.Render("ExchangedDocumentContext", p))
	root.AddChild(inv.Document.Render("ExchangedDocument", p))
	root.AddChild(inv.Transaction.Render("SupplyChainTradeTransaction", p))
	return root
}

// Validate checks the whole graph against the declared profile: required
// fields, value formats, monetary consistency, line uniqueness, and strict
// profile gating (a field populated below its minimum profile is an error
// here even though Render would drop it silently).
func (inv *Invoice) Validate(p profile.Profile) error {
	if !p.Valid() {
		return NewValidationError("Profile", int(p), "range", "unknown compliance profile")
	}

	var errs []error
	errs = append(errs, inv.Document.validate(p)...)
	errs = append(errs, inv.Transaction.validate(p)...)
	return errors.Join(errs...)
}

// ValidateLenient runs the same checks but drops profile gating errors, for
// callers that deliberately build one graph and render it at several
// profiles.
func (inv *Invoice) ValidateLenient(p profile.Profile) error {
	err := inv.Validate(p)
	if err == nil {
		return nil
	}
	var kept []error
	for _, e := range flatten(err) {
		var pe *ProfileError
		if errors.As(e, &pe) {
			continue
		}
		kept = append(kept, e)
	}
	return errors.Join(kept...)
}

// flatten unwraps errors.Join results one level.
func flatten(err error) []error {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()
	}
	return []error{err}
}

// BuildDocument renders the invoice into a standalone XML document with a
// UTF-8 declaration. Validation is the caller's responsibility; rendering
// itself cannot fail.
func (inv *Invoice) BuildDocument(p profile.Profile) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.AddChild(inv.Render("CrossIndustryInvoice", p))
	return doc
}
