// Package profile defines the Factur-X conformance levels.
//
// The five profiles form a strict total order: each level adds fields on
// top of the one below it. Everything else in this module compares
// profiles with plain < and >= to decide whether a field is emitted.
package profile

import (
	"fmt"
	"strings"
)

// Profile is a Factur-X conformance level.
// The zero value is Minimum.
type Profile int

const (
	Minimum Profile = iota
	BasicWL
	Basic
	EN16931
	Extended
)

// urns holds the canonical guideline identifiers written into
// GuidelineSpecifiedDocumentContextParameter/ID. These strings are part of
// the wire contract and must not change.
var urns = [...]string{
	Minimum:  "urn:factur-x.eu:1p0:minimum",
	BasicWL:  "urn:factur-x.eu:1p0:basicwl",
	Basic:    "urn:cen.eu:en16931:2017#compliant#urn:factur-x.eu:1p0:basic",
	EN16931:  "urn:cen.eu:en16931:2017",
	Extended: "urn:cen.eu:en16931:2017#conformant#urn:factur-x.eu:1p0:extended",
}

var names = [...]string{
	Minimum:  "MINIMUM",
	BasicWL:  "BASICWL",
	Basic:    "BASIC",
	EN16931:  "EN16931",
	Extended: "EXTENDED",
}

// All lists the profiles in ascending order.
func All() []Profile {
	return []Profile{Minimum, BasicWL, Basic, EN16931, Extended}
}

// Valid reports whether p is one of the five defined levels.
func (p Profile) Valid() bool {
	return p >= Minimum && p <= Extended
}

// URN returns the canonical guideline URN for the profile.
func (p Profile) URN() string {
	if !p.Valid() {
		return ""
	}
	return urns[p]
}

// String returns the profile name, e.g. "EN16931".
func (p Profile) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Profile(%d)", int(p))
	}
	return names[p]
}

// Parse resolves a profile from its name (case-insensitive) or its
// canonical URN.
func Parse(s string) (Profile, error) {
	for _, p := range All() {
		if strings.EqualFold(s, names[p]) || s == urns[p] {
			return p, nil
		}
	}
	return Minimum, fmt.Errorf("unknown profile %q", s)
}
