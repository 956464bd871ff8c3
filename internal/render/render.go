// Package render maps rows to ordered display cells. Formatting never
// surfaces "null" or "NaN": missing fields become empty strings.
package render

import (
	"net/url"

	"github.com/dustin/go-humanize"

	"github.com/rachit379/insider-deals/internal/models"
)

// toneDeadZonePct: values within ±0.1% get no tone class.
const toneDeadZonePct = 0.1

// Cell is one display field of a table row. URL, when set, renders as a
// link opening in a new browsing context.
type Cell struct {
	Text  string
	Class string
	URL   string
}

// Form4Columns are the Form 4 table headers, in render order.
var Form4Columns = []string{
	"Insider", "Relation", "Date", "Symbol", "Company",
	"Transaction", "Ownership", "Shares", "Price", "Held After", "Filing",
}

// Sched13Columns are the Schedule 13D/13G table headers, in render order.
var Sched13Columns = []string{
	"Form", "Filed", "Company", "Issuer CIK", "Filer", "Filer CIK", "Period", "Filing",
}

// Date formats an 8-digit compact date (YYYYMMDD) as MM/DD/YYYY; anything
// else passes through unchanged. Nil renders empty.
func Date(p *string) string {
	if p == nil {
		return ""
	}
	s := *p
	if len(s) != 8 || !allDigits(s) {
		return s
	}
	return s[4:6] + "/" + s[6:8] + "/" + s[0:4]
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Shares formats a share count with thousands separators.
func Shares(p *int64) string {
	if p == nil {
		return ""
	}
	return humanize.Comma(*p)
}

// Price formats a price as a 2-decimal currency string.
func Price(p *float64) string {
	if p == nil {
		return ""
	}
	return "$" + humanize.FormatFloat("#,###.##", *p)
}

// OwnerType expands the single-character ownership code.
func OwnerType(p *string) string {
	switch models.Str(p) {
	case "D":
		return "Direct"
	case "I":
		return "Indirect"
	default:
		return models.Str(p)
	}
}

// ToneClass classifies a percentage return as "positive" or "negative",
// or "" inside the dead-zone band around zero.
func ToneClass(p *float64) string {
	if p == nil {
		return ""
	}
	switch {
	case *p > toneDeadZonePct:
		return "positive"
	case *p < -toneDeadZonePct:
		return "negative"
	default:
		return ""
	}
}

// QuoteURL builds the external stock-quote link for a symbol, or "" when
// there is no symbol to link.
func QuoteURL(symbol *string) string {
	s := models.Str(symbol)
	if s == "" {
		return ""
	}
	return "https://finance.yahoo.com/quote/" + url.PathEscape(s)
}

// Form4Cells maps one transaction row to its display cells, aligned with
// Form4Columns. Buys and sells tint the transaction cell.
func Form4Cells(r models.Form4Row) []Cell {
	txClass := ""
	if r.IsBuy {
		txClass = "positive"
	} else if r.IsSale {
		txClass = "negative"
	}
	filing := Cell{}
	if u := models.Str(r.FilingURL); u != "" {
		filing = Cell{Text: "View", URL: u}
	}
	return []Cell{
		{Text: models.Str(r.InsiderName)},
		{Text: models.Str(r.Relation)},
		{Text: Date(r.TransactionDate)},
		{Text: models.Str(r.IssuerSymbol), URL: QuoteURL(r.IssuerSymbol)},
		{Text: models.Str(r.IssuerName)},
		{Text: models.Str(r.TransactionDescription), Class: txClass},
		{Text: OwnerType(r.OwnerType)},
		{Text: Shares(r.SharesTraded)},
		{Text: Price(r.Price)},
		{Text: Shares(r.SharesHeldAfter)},
		filing,
	}
}

// Sched13Cells maps one filing row to its display cells, aligned with
// Sched13Columns.
func Sched13Cells(r models.Sched13Row) []Cell {
	filing := Cell{}
	if u := models.Str(r.FilingURL); u != "" {
		filing = Cell{Text: "View", URL: u}
	}
	return []Cell{
		{Text: models.Str(r.FormType)},
		{Text: Date(r.FiledDate)},
		{Text: models.Str(r.IssuerName)},
		{Text: models.Str(r.IssuerCIK)},
		{Text: models.Str(r.FilerName)},
		{Text: models.Str(r.FilerCIK)},
		{Text: Date(r.PeriodOfReport)},
		filing,
	}
}
