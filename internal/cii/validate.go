package cii

import (
	"fmt"
	"regexp"
)

// Format patterns for construction-time checks. These are shape checks, not
// registry lookups: a value that matches may still be rejected by the
// official rule set downstream.
var (
	countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)
	emailRe       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	vatIDRe       = regexp.MustCompile(`^[A-Z]{2}[0-9A-Za-z.+*]{2,20}$`)
	ibanRe        = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Za-z0-9]{11,30}$`)
	bicRe         = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
)

func indexPath(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}
