// Package codes holds the UNTDID / UN/ECE code lists referenced by
// Cross Industry Invoice documents. These are static lookup data; only the
// values actually needed by callers are enumerated.
package codes

// InvoiceTypeCode is a UNTDID 1001 document type code.
type InvoiceTypeCode int

const (
	RequestForPayment        InvoiceTypeCode = 71
	DebitNoteGoodsServices   InvoiceTypeCode = 80
	MeteredServicesInvoice   InvoiceTypeCode = 82
	TaxNotification          InvoiceTypeCode = 102
	CommercialInvoice        InvoiceTypeCode = 380
	CommissionNote           InvoiceTypeCode = 382
	DebitNote                InvoiceTypeCode = 383
	PrepaymentInvoice        InvoiceTypeCode = 386
	TaxInvoice               InvoiceTypeCode = 388
	FactoredInvoice          InvoiceTypeCode = 393
	ConsignmentInvoice       InvoiceTypeCode = 395
	InsurersInvoice          InvoiceTypeCode = 575
	ForwardersInvoice        InvoiceTypeCode = 623
	FreightInvoice           InvoiceTypeCode = 780
	ConsularInvoice          InvoiceTypeCode = 870
	PartialConstructionInv   InvoiceTypeCode = 875
	FinalConstructionInvoice InvoiceTypeCode = 877
)

// DocumentTypeCode is a UNTDID 1001 code for referenced documents.
type DocumentTypeCode int

const (
	ValidatedPriceTender DocumentTypeCode = 50
	InvoicingDataSheet   DocumentTypeCode = 130
	RelatedDocument      DocumentTypeCode = 916
)

// TaxTypeCode is a UN/ECE 5153 duty/tax/fee type code.
type TaxTypeCode string

const (
	ValueAddedTax       TaxTypeCode = "VAT"
	GoodsAndServicesTax TaxTypeCode = "GST"
	ExciseDuty          TaxTypeCode = "EXC"
	EnvironmentalTax    TaxTypeCode = "ENV"
	TobaccoTax          TaxTypeCode = "AAD"
	ImportTax           TaxTypeCode = "IMP"
	CarTax              TaxTypeCode = "CAR"
	TurnoverTax         TaxTypeCode = "TOX"
	OtherTaxes          TaxTypeCode = "OTH"
)

// TaxCategoryCode is a UNTDID 5305 tax category code.
type TaxCategoryCode string

const (
	StandardRate         TaxCategoryCode = "S"
	ZeroRatedGoods       TaxCategoryCode = "Z"
	ExemptFromTax        TaxCategoryCode = "E"
	VATReverseCharge     TaxCategoryCode = "AE"
	IntraCommunitySupply TaxCategoryCode = "K"
	FreeExportItem       TaxCategoryCode = "G"
	ServicesOutsideScope TaxCategoryCode = "O"
	CanaryIslandsTax     TaxCategoryCode = "L"
	CeutaMelillaTax      TaxCategoryCode = "M"
	TransferredVAT       TaxCategoryCode = "B"
)

// TimeReferenceCode is a UNTDID 2475 payment time reference code.
type TimeReferenceCode int

const (
	InvoiceDocumentIssueDate TimeReferenceCode = 3
	ActualDeliveryDate       TimeReferenceCode = 35
	PaidToDate               TimeReferenceCode = 432
)

// PaymentMeansCode is a UNTDID 4461 payment means code.
type PaymentMeansCode int

const (
	InstrumentNotDefined PaymentMeansCode = 1
	Cash                 PaymentMeansCode = 10
	Cheque               PaymentMeansCode = 20
	CreditTransfer       PaymentMeansCode = 30
	PaymentToBankAccount PaymentMeansCode = 42
	BankCard             PaymentMeansCode = 48
	DirectDebit          PaymentMeansCode = 49
	CreditCard           PaymentMeansCode = 54
	DebitCard            PaymentMeansCode = 55
	StandingAgreement    PaymentMeansCode = 57
	SEPACreditTransfer   PaymentMeansCode = 58
	SEPADirectDebit      PaymentMeansCode = 59
	OnlinePaymentService PaymentMeansCode = 68
	ClearingBetweenParts PaymentMeansCode = 97
)

// UnitCode is a UN/ECE Recommendation 20/21 unit of measure code.
type UnitCode string

const (
	UnitOne            UnitCode = "C62"
	UnitPiece          UnitCode = "H87"
	UnitEach           UnitCode = "EA"
	UnitNumberArticles UnitCode = "NAR"
	UnitDozen          UnitCode = "DZN"
	UnitLumpSum        UnitCode = "LS"
	UnitKilogram       UnitCode = "KGM"
	UnitGram           UnitCode = "GRM"
	UnitTonne          UnitCode = "TNE"
	UnitLitre          UnitCode = "LTR"
	UnitMillilitre     UnitCode = "MLT"
	UnitMetre          UnitCode = "MTR"
	UnitMillimetre     UnitCode = "MMT"
	UnitKilometre      UnitCode = "KMT"
	UnitSquareMetre    UnitCode = "MTK"
	UnitCubicMetre     UnitCode = "MTQ"
	UnitHour           UnitCode = "HUR"
	UnitDay            UnitCode = "DAY"
	UnitWeek           UnitCode = "WEE"
	UnitMonth          UnitCode = "MON"
	UnitYear           UnitCode = "ANN"
	UnitKilowattHour   UnitCode = "KWH"
	UnitMegawattHour   UnitCode = "MWH"
)

// AllowanceChargeReasonCode is a UNTDID 5189 allowance reason code.
type AllowanceChargeReasonCode int

const (
	BonusWorksAheadOfSchedule AllowanceChargeReasonCode = 41
	OtherBonus                AllowanceChargeReasonCode = 42
	ConsumerDiscount          AllowanceChargeReasonCode = 60
	SpecialAgreement          AllowanceChargeReasonCode = 64
	ProductionErrorDiscount   AllowanceChargeReasonCode = 65
	SampleDiscount            AllowanceChargeReasonCode = 67
	EndOfRangeDiscount        AllowanceChargeReasonCode = 68
	PointOfSaleAllowance      AllowanceChargeReasonCode = 71
	Discount                  AllowanceChargeReasonCode = 95
	SpecialRebate             AllowanceChargeReasonCode = 100
	FixedLongTerm             AllowanceChargeReasonCode = 102
	Temporary                 AllowanceChargeReasonCode = 103
	Standard                  AllowanceChargeReasonCode = 104
	YearlyTurnover            AllowanceChargeReasonCode = 105
)

// VATExemptionReasonCode is a VATEX exemption reason code (CEF list).
type VATExemptionReasonCode string

const (
	VATEXReductionTaxableAmount VATExemptionReasonCode = "VATEX-EU-79-C"
	VATEXPublicInterest         VATExemptionReasonCode = "VATEX-EU-132"
	VATEXMedicalCare            VATExemptionReasonCode = "VATEX-EU-132-1B"
	VATEXEducation              VATExemptionReasonCode = "VATEX-EU-132-1I"
	VATEXIntraCommunitySupply   VATExemptionReasonCode = "VATEX-EU-138"
	VATEXExport                 VATExemptionReasonCode = "VATEX-EU-146-1E"
	VATEXReverseCharge          VATExemptionReasonCode = "VATEX-EU-AE"
	VATEXNotSubject             VATExemptionReasonCode = "VATEX-EU-O"
)
