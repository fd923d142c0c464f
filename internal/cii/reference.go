package cii

import (
	"time"

	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/profile"
)

// BinaryObject is an embedded attachment: base64 content plus the mimeCode
// and filename attributes. Reading files from disk is the attachment
// loader's job; this type only renders.
type BinaryObject struct {
	ContentB64 string
	MimeCode   string
	Filename   string
}

func (b BinaryObject) Render(name string, _ profile.Profile) *etree.Element {
	el := etree.NewElement(NSRAM + ":" + name)
	el.CreateAttr("mimeCode", b.MimeCode)
	el.CreateAttr("filename", b.Filename)
	el.SetText(b.ContentB64)
	return el
}

// ReferencedDocument points at another document: an order, a contract, a
// despatch advice, or a supporting attachment. Only the issuer-assigned ID
// exists below EN16931; everything else is gated.
type ReferencedDocument struct {
	IssuerAssignedID  string
	URIID             string
	LineID            string
	TypeCode          codes.DocumentTypeCode
	Name              string
	Attachment        *BinaryObject
	ReferenceTypeCode string
	IssueDate         *time.Time
}

func (d ReferencedDocument) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: optText("IssuerAssignedID", d.IssuerAssignedID)},
		{min: profile.EN16931, emit: optText("URIID", d.URIID)},
		{min: profile.EN16931, emit: optText("LineID", d.LineID)},
		{min: profile.EN16931, emit: optIntText("TypeCode", int(d.TypeCode))},
		{min: profile.EN16931, emit: optText("Name", d.Name)},
		{min: profile.EN16931, emit: optNode("AttachmentBinaryObject", d.Attachment)},
		{min: profile.EN16931, emit: optText("ReferenceTypeCode", d.ReferenceTypeCode)},
		{min: profile.EN16931, emit: optQualifiedDate("FormattedIssueDateTime", d.IssueDate)},
	})
}

func (d ReferencedDocument) validate(path string, p profile.Profile) []error {
	var errs []error
	if p < profile.EN16931 {
		if d.Attachment != nil {
			errs = append(errs, NewProfileError(path+".Attachment", profile.EN16931, p))
		}
		if d.URIID != "" {
			errs = append(errs, NewProfileError(path+".URIID", profile.EN16931, p))
		}
	}
	return errs
}

// ProcuringProject references the project the invoice belongs to.
type ProcuringProject struct {
	ID   string
	Name string
}

func (pr ProcuringProject) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: text("ID", pr.ID)},
		{min: profile.Minimum, emit: text("Name", pr.Name)},
	})
}
