package cii

import (
	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/profile"
)

// TradeAddress is a postal address. Only the country survives at MINIMUM;
// the detail lines appear from BASICWL upward.
type TradeAddress struct {
	Postcode           string
	LineOne            string
	LineTwo            string
	LineThree          string
	City               string
	CountryID          string // ISO 3166-1 alpha-2, required
	CountrySubDivision string
}

func (a TradeAddress) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.BasicWL, emit: optText("PostcodeCode", a.Postcode)},
		{min: profile.BasicWL, emit: optText("LineOne", a.LineOne)},
		{min: profile.BasicWL, emit: optText("LineTwo", a.LineTwo)},
		{min: profile.BasicWL, emit: optText("LineThree", a.LineThree)},
		{min: profile.BasicWL, emit: optText("CityName", a.City)},
		{min: profile.Minimum, emit: text("CountryID", a.CountryID)},
		{min: profile.BasicWL, emit: optText("CountrySubDivisionName", a.CountrySubDivision)},
	})
}

func (a TradeAddress) validate(path string, _ profile.Profile) []error {
	var errs []error
	if a.CountryID == "" {
		errs = append(errs, NewValidationError(path+".CountryID", nil, "required", "country code must not be empty"))
	} else if !countryCodeRe.MatchString(a.CountryID) {
		errs = append(errs, NewValidationError(path+".CountryID", a.CountryID, "format", "country code must be two uppercase letters"))
	}
	return errs
}

// TradeCountry wraps a bare country code, used for product origin.
type TradeCountry struct {
	CountryID string
}

func (c TradeCountry) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: text("ID", c.CountryID)},
	})
}

// LegalOrganization identifies a party in a business register.
type LegalOrganization struct {
	ID                  string // register number
	SchemeID            string // ICD scheme, defaults to 0002 (SIRENE)
	TradingBusinessName string
}

func (o LegalOrganization) schemeID() string {
	if o.SchemeID == "" {
		return "0002"
	}
	return o.SchemeID
}

func (o LegalOrganization) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: idWithScheme("ID", o.schemeID(), o.ID)},
		{min: profile.BasicWL, emit: optText("TradingBusinessName", o.TradingBusinessName)},
	})
}

// UniversalCommunication is an email URI or a telephone number.
type UniversalCommunication struct {
	URIID          string // email address
	CompleteNumber string // phone number
}

func (u UniversalCommunication) Render(name string, p profile.Profile) *etree.Element {
	// The top-level URIUniversalCommunication variant carries the EM
	// (electronic mail) scheme on its URIID; the contact-level variant
	// does not.
	scheme := ""
	if name == "URIUniversalCommunication" {
		scheme = "EM"
	}
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: idWithScheme("URIID", scheme, u.URIID)},
		{min: profile.Minimum, emit: optText("CompleteNumber", u.CompleteNumber)},
	})
}

// TradeContact is a named contact point for a party (EN16931 upward).
type TradeContact struct {
	PersonName     string
	DepartmentName string
	Telephone      *UniversalCommunication
	Email          *UniversalCommunication
}

func (c TradeContact) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: optText("PersonName", c.PersonName)},
		{min: profile.Minimum, emit: optText("DepartmentName", c.DepartmentName)},
		{min: profile.Minimum, emit: optNode("TelephoneUniversalCommunication", c.Telephone)},
		{min: profile.Minimum, emit: optNode("EmailURIUniversalCommunication", c.Email)},
	})
}

// GlobalID is an identifier qualified by an ICD scheme, e.g. 0088 for GLN.
type GlobalID struct {
	SchemeID string
	Value    string
}

// TaxRegistration is a tax number qualified by its scheme (VA for VAT,
// FC for a local fiscal number).
type TaxRegistration struct {
	SchemeID string
	ID       string
}

func (r TaxRegistration) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: idWithScheme("ID", r.SchemeID, r.ID)},
	})
}

// TradeParty is any party on the invoice: seller, buyer, payee, ship-to,
// tax representative. The element name decides the role.
type TradeParty struct {
	IDs                []string
	GlobalIDs          []GlobalID
	Name               string
	LegalOrganization  *LegalOrganization
	Contact            *TradeContact // EN16931 upward
	Address            *TradeAddress
	Email              string // URIUniversalCommunication, BASICWL upward
	VATRegistration    string // SpecifiedTaxRegistration schemeID VA
	FiscalRegistration string // SpecifiedTaxRegistration schemeID FC
}

func (t TradeParty) taxRegistrations() []TaxRegistration {
	var regs []TaxRegistration
	if t.FiscalRegistration != "" {
		regs = append(regs, TaxRegistration{SchemeID: "FC", ID: t.FiscalRegistration})
	}
	if t.VATRegistration != "" {
		regs = append(regs, TaxRegistration{SchemeID: "VA", ID: t.VATRegistration})
	}
	return regs
}

func (t TradeParty) emitIDs() emitFunc {
	if len(t.IDs) == 0 {
		return nil
	}
	return func(parent *etree.Element, _ profile.Profile) {
		for _, id := range t.IDs {
			parent.CreateElement(NSRAM + ":ID").SetText(id)
		}
	}
}

func (t TradeParty) emitGlobalIDs() emitFunc {
	if len(t.GlobalIDs) == 0 {
		return nil
	}
	return func(parent *etree.Element, _ profile.Profile) {
		for _, gid := range t.GlobalIDs {
			el := parent.CreateElement(NSRAM + ":GlobalID")
			el.CreateAttr("schemeID", gid.SchemeID)
			el.SetText(gid.Value)
		}
	}
}

func (t TradeParty) emailNode() *UniversalCommunication {
	if t.Email == "" {
		return nil
	}
	return &UniversalCommunication{URIID: t.Email}
}

func (t TradeParty) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.BasicWL, emit: t.emitIDs()},
		{min: profile.BasicWL, emit: t.emitGlobalIDs()},
		{min: profile.Minimum, emit: text("Name", t.Name)},
		{min: profile.Minimum, emit: optNode("SpecifiedLegalOrganization", t.LegalOrganization)},
		{min: profile.EN16931, emit: optNode("DefinedTradeContact", t.Contact)},
		{min: profile.Minimum, emit: optNode("PostalTradeAddress", t.Address)},
		{min: profile.BasicWL, emit: optNode("URIUniversalCommunication", t.emailNode())},
		{min: profile.Minimum, emit: nodeList("SpecifiedTaxRegistration", t.taxRegistrations())},
	})
}

func (t TradeParty) validate(path string, p profile.Profile) []error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, NewValidationError(path+".Name", nil, "required", "party name must not be empty"))
	}
	if t.Address != nil {
		errs = append(errs, t.Address.validate(path+".Address", p)...)
	}
	if t.Email != "" {
		if !emailRe.MatchString(t.Email) {
			errs = append(errs, NewValidationError(path+".Email", t.Email, "format", "not a plausible email address"))
		}
		if p < profile.BasicWL {
			errs = append(errs, NewProfileError(path+".Email", profile.BasicWL, p))
		}
	}
	if p < profile.BasicWL {
		if len(t.IDs) > 0 {
			errs = append(errs, NewProfileError(path+".IDs", profile.BasicWL, p))
		}
		if len(t.GlobalIDs) > 0 {
			errs = append(errs, NewProfileError(path+".GlobalIDs", profile.BasicWL, p))
		}
	}
	if t.Contact != nil && p < profile.EN16931 {
		errs = append(errs, NewProfileError(path+".Contact", profile.EN16931, p))
	}
	if t.VATRegistration != "" && !vatIDRe.MatchString(t.VATRegistration) {
		errs = append(errs, NewValidationError(path+".VATRegistration", t.VATRegistration, "format", "not a plausible VAT identifier"))
	}
	return errs
}
