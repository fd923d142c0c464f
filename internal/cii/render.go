package cii

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/facturx/internal/profile"
)

// Renderable is implemented by every entity node. Render produces one XML
// element; the element name is supplied by the parent because the same type
// appears under different tag names (SellerTradeParty, BuyerTradeParty, ...).
type Renderable interface {
	Render(name string, p profile.Profile) *etree.Element
}

// emitFunc appends zero or more children to parent. A nil emitFunc means the
// underlying field is absent.
type emitFunc func(parent *etree.Element, p profile.Profile)

// field is one child slot of an aggregate element: the minimum profile at
// which the child may appear, and the emitter for its current value. Fields
// are listed in schema order; the CII content model is a sequence, so that
// order is load-bearing.
type field struct {
	min  profile.Profile
	emit emitFunc
}

// render builds one namespaced element and appends each eligible field in
// declaration order. Under-profile or absent fields are skipped silently;
// strictness is the validator's job, not the renderer's.
func render(space, name string, p profile.Profile, fields []field) *etree.Element {
	el := etree.NewElement(space + ":" + name)
	for _, f := range fields {
		if f.emit == nil || p < f.min {
			continue
		}
		f.emit(el, p)
	}
	return el
}

func ramElement(name string, p profile.Profile, fields []field) *etree.Element {
	return render(NSRAM, name, p, fields)
}

// text emits a mandatory ram child with character content.
func text(name, value string) emitFunc {
	return func(parent *etree.Element, _ profile.Profile) {
		parent.CreateElement(NSRAM + ":" + name).SetText(value)
	}
}

// intText emits a mandatory ram child carrying an integer code.
func intText(name string, v int) emitFunc {
	return func(parent *etree.Element, _ profile.Profile) {
		parent.CreateElement(NSRAM + ":" + name).SetText(strconv.Itoa(v))
	}
}

// optIntText emits the child only when the code is non-zero.
func optIntText(name string, v int) emitFunc {
	if v == 0 {
		return nil
	}
	return intText(name, v)
}

// optText emits the child only when value is non-empty.
func optText(name, value string) emitFunc {
	if value == "" {
		return nil
	}
	return text(name, value)
}

// idWithScheme emits <ram:name schemeID="...">value</ram:name>.
func idWithScheme(name, schemeID, value string) emitFunc {
	if value == "" {
		return nil
	}
	return func(parent *etree.Element, _ profile.Profile) {
		el := parent.CreateElement(NSRAM + ":" + name)
		if schemeID != "" {
			el.CreateAttr("schemeID", schemeID)
		}
		el.SetText(value)
	}
}

// amount emits a monetary amount with two decimal places. currencyID is
// attached only when non-empty; most amounts carry no currency attribute.
func amount(name string, v decimal.Decimal, currencyID string) emitFunc {
	return func(parent *etree.Element, _ profile.Profile) {
		el := parent.CreateElement(NSRAM + ":" + name)
		if currencyID != "" {
			el.CreateAttr("currencyID", currencyID)
		}
		el.SetText(v.StringFixed(2))
	}
}

func optAmount(name string, v *decimal.Decimal, currencyID string) emitFunc {
	if v == nil {
		return nil
	}
	return amount(name, *v, currencyID)
}

// unitAmount emits a price amount with four decimal places (unit prices may
// carry sub-cent precision).
func unitAmount(name string, v decimal.Decimal) emitFunc {
	return func(parent *etree.Element, _ profile.Profile) {
		parent.CreateElement(NSRAM + ":" + name).SetText(v.StringFixed(4))
	}
}

// percent emits a percentage with two decimal places.
func percent(name string, v *decimal.Decimal) emitFunc {
	if v == nil {
		return nil
	}
	return func(parent *etree.Element, _ profile.Profile) {
		parent.CreateElement(NSRAM + ":" + name).SetText(v.StringFixed(2))
	}
}

// quantity emits a quantity with natural precision and an optional unitCode.
func quantity(name string, v decimal.Decimal, unit string) emitFunc {
	return func(parent *etree.Element, _ profile.Profile) {
		el := parent.CreateElement(NSRAM + ":" + name)
		if unit != "" {
			el.CreateAttr("unitCode", unit)
		}
		el.SetText(v.String())
	}
}

func optQuantity(name string, v *decimal.Decimal, unit string) emitFunc {
	if v == nil {
		return nil
	}
	return quantity(name, *v, unit)
}

// formatDate renders a calendar date as the 8-digit "102" format. The
// rendering is locale-independent; time-of-day is never emitted.
func formatDate(t time.Time) string {
	return t.Format("20060102")
}

// date emits <ram:name><udt:DateTimeString format="102">YYYYMMDD</...>.
func date(name string, t time.Time) emitFunc {
	return func(parent *etree.Element, _ profile.Profile) {
		wrap := parent.CreateElement(NSRAM + ":" + name)
		ds := wrap.CreateElement(NSUDT + ":DateTimeString")
		ds.CreateAttr("format", "102")
		ds.SetText(formatDate(t))
	}
}

func optDate(name string, t *time.Time) emitFunc {
	if t == nil {
		return nil
	}
	return date(name, *t)
}

// optPlainDate emits <ram:name><udt:DateString format="102">...</...>, the
// variant used by TaxPointDate.
func optPlainDate(name string, t *time.Time) emitFunc {
	if t == nil {
		return nil
	}
	return func(parent *etree.Element, _ profile.Profile) {
		wrap := parent.CreateElement(NSRAM + ":" + name)
		ds := wrap.CreateElement(NSUDT + ":DateString")
		ds.CreateAttr("format", "102")
		ds.SetText(formatDate(*t))
	}
}

// optQualifiedDate emits the qdt:DateTimeString variant used by
// FormattedIssueDateTime on referenced documents.
func optQualifiedDate(name string, t *time.Time) emitFunc {
	if t == nil {
		return nil
	}
	return func(parent *etree.Element, _ profile.Profile) {
		wrap := parent.CreateElement(NSRAM + ":" + name)
		ds := wrap.CreateElement(NSQDT + ":DateTimeString")
		ds.CreateAttr("format", "102")
		ds.SetText(formatDate(*t))
	}
}

// indicator emits <ram:name><udt:Indicator>true|false</...>.
func indicator(name string, v bool) emitFunc {
	return func(parent *etree.Element, _ profile.Profile) {
		wrap := parent.CreateElement(NSRAM + ":" + name)
		if v {
			wrap.CreateElement(NSUDT + ":Indicator").SetText("true")
		} else {
			wrap.CreateElement(NSUDT + ":Indicator").SetText("false")
		}
	}
}

// node emits a mandatory nested entity.
func node(name string, r Renderable) emitFunc {
	return func(parent *etree.Element, p profile.Profile) {
		parent.AddChild(r.Render(name, p))
	}
}

// optNode emits a nested entity when the pointer is set.
func optNode[T any, PT interface {
	Renderable
	*T
}](name string, n PT) emitFunc {
	if n == nil {
		return nil
	}
	return func(parent *etree.Element, p profile.Profile) {
		parent.AddChild(n.Render(name, p))
	}
}

// nodeList emits one element per item, in caller order.
func nodeList[T Renderable](name string, items []T) emitFunc {
	if len(items) == 0 {
		return nil
	}
	return func(parent *etree.Element, p profile.Profile) {
		for _, it := range items {
			parent.AddChild(it.Render(name, p))
		}
	}
}
