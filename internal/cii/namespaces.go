package cii

// XML namespace prefixes used by Cross Industry Invoice documents.
const (
	NSRSM = "rsm" // root document elements
	NSRAM = "ram" // reusable aggregate business information entities
	NSQDT = "qdt" // qualified data types
	NSUDT = "udt" // unqualified data types
	NSXSI = "xsi" // XML Schema instance
)

// Namespaces maps each prefix to its URI. The five entries are part of the
// Factur-X wire contract and must be reproduced verbatim.
var Namespaces = map[string]string{
	NSRSM: "urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100",
	NSRAM: "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100",
	NSQDT: "urn:un:unece:uncefact:data:standard:QualifiedDataType:100",
	NSUDT: "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100",
	NSXSI: "http://www.w3.org/2001/XMLSchema-instance",
}

// nsPrefixOrder fixes the declaration order on the root element so that
// rendering the same document twice is byte-identical.
var nsPrefixOrder = []string{NSRSM, NSRAM, NSQDT, NSUDT, NSXSI}
