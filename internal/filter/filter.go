// Package filter derives filtered row subsets from a filter mode and a
// free-text query. Filtering is stable: the output is an order-preserving
// subsequence of the input, never re-sorted.
package filter

import (
	"strings"

	"github.com/rachit379/insider-deals/internal/models"
)

// Mode selects the Form 4 sub-filter.
type Mode string

const (
	ModeAll   Mode = "all"
	ModeBuys  Mode = "buys"
	ModeSells Mode = "sells"
)

// ParseMode normalizes a query-param value; anything unrecognized means all.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buys":
		return ModeBuys
	case "sells":
		return ModeSells
	default:
		return ModeAll
	}
}

// Matches reports whether a row passes the mode predicate. Buy/sell
// classification comes from the precomputed flags the fetch job writes
// (P/A style codes set is_buy, S sets is_sale), not from the code itself.
func (m Mode) Matches(r models.Form4Row) bool {
	switch m {
	case ModeBuys:
		return r.IsBuy
	case ModeSells:
		return r.IsSale
	default:
		return true
	}
}

// Form4 returns the rows passing both the mode predicate and the search
// query. The query is a case-insensitive substring match over insider name,
// issuer symbol, issuer name and relation.
func Form4(rows []models.Form4Row, mode Mode, query string) []models.Form4Row {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Form4Row, 0, len(rows))
	for _, r := range rows {
		if !mode.Matches(r) {
			continue
		}
		if q != "" && !anyContains(q, r.InsiderName, r.IssuerSymbol, r.IssuerName, r.Relation) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sched13 returns the rows matching the search query over form type,
// issuer name/CIK and filer name/CIK. Schedule 13 has no sub-filter.
func Sched13(rows []models.Sched13Row, query string) []models.Sched13Row {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Sched13Row, 0, len(rows))
	for _, r := range rows {
		if q != "" && !anyContains(q, r.FormType, r.IssuerName, r.IssuerCIK, r.FilerName, r.FilerCIK) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func anyContains(loweredQuery string, fields ...*string) bool {
	for _, f := range fields {
		if f == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*f), loweredQuery) {
			return true
		}
	}
	return false
}
