package models

// Form4Row is one non-derivative insider transaction from a Form 4 filing.
// Fields mirror the JSON written by the data-fetch job; optional values are
// pointers so missing fields decode to nil instead of zero values.
type Form4Row struct {
	InsiderName            *string  `json:"insider_name"`
	InsiderCIK             *string  `json:"insider_cik,omitempty"`
	Relation               *string  `json:"relation"`
	OfficerTitle           *string  `json:"officer_title,omitempty"`
	TransactionDate        *string  `json:"transaction_date"`
	FiledDate              *string  `json:"filed_date,omitempty"`
	IssuerSymbol           *string  `json:"issuer_symbol"`
	IssuerName             *string  `json:"issuer_name"`
	IssuerCIK              *string  `json:"issuer_cik,omitempty"`
	TransactionCode        *string  `json:"transaction_code,omitempty"`
	TransactionDescription *string  `json:"transaction_description"`
	IsBuy                  bool     `json:"is_buy"`
	IsSale                 bool     `json:"is_sale"`
	OwnerType              *string  `json:"owner_type"`
	Timeliness             *string  `json:"timeliness,omitempty"`
	SharesTraded           *int64   `json:"shares_traded"`
	Price                  *float64 `json:"price"`
	SharesHeldAfter        *int64   `json:"shares_held_after"`
	FilingURL              *string  `json:"filing_url"`
}

// Sched13Row is one Schedule 13D/13G beneficial-ownership filing.
type Sched13Row struct {
	FormType       *string `json:"form_type"`
	FiledDate      *string `json:"filed_date"`
	IssuerName     *string `json:"issuer_name"`
	IssuerCIK      *string `json:"issuer_cik"`
	FilerName      *string `json:"filer_name"`
	FilerCIK       *string `json:"filer_cik"`
	PeriodOfReport *string `json:"period_of_report"`
	FilingURL      *string `json:"filing_url"`
}

// Form4Doc is the shape of data/form4_transactions.json.
type Form4Doc struct {
	LastUpdatedUTC string     `json:"last_updated_utc"`
	Source         string     `json:"source,omitempty"`
	Rows           []Form4Row `json:"rows"`
}

// Sched13Doc is the shape of data/schedule_13d13g.json.
type Sched13Doc struct {
	LastUpdatedUTC string       `json:"last_updated_utc,omitempty"`
	Source         string       `json:"source,omitempty"`
	Rows           []Sched13Row `json:"rows"`
}

// Str dereferences an optional string field, returning "" for nil.
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StrPtr is a convenience for building rows in tests and fixtures.
func StrPtr(s string) *string { return &s }

// Int64Ptr is a convenience for building rows in tests and fixtures.
func Int64Ptr(n int64) *int64 { return &n }

// Float64Ptr is a convenience for building rows in tests and fixtures.
func Float64Ptr(f float64) *float64 { return &f }
