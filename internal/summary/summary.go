// Package summary aggregates loaded Form 4 rows into per-symbol buy/sell
// share totals for the dashboard's activity strip.
package summary

import (
	"sort"
	"strings"

	"github.com/rachit379/insider-deals/internal/models"
)

// SymbolActivity is the aggregated insider activity for one issuer.
type SymbolActivity struct {
	Symbol     string `json:"symbol"`
	IssuerName string `json:"issuer_name"`
	BuyShares  int64  `json:"buy_shares"`
	SellShares int64  `json:"sell_shares"`
	NetShares  int64  `json:"net_shares"`
	Trades     int    `json:"trades"`
}

// PressurePct is the net share flow as a percentage of total traded volume,
// in [-100, 100]. Zero volume reports 0.
func (a SymbolActivity) PressurePct() float64 {
	total := a.BuyShares + a.SellShares
	if total == 0 {
		return 0
	}
	return float64(a.NetShares) / float64(total) * 100
}

// BySymbol groups transactions by issuer symbol and sums buy and sell
// shares. Rows without a symbol, a share count or a buy/sell flag are
// skipped. The result
// is sorted by total traded volume, largest first, ties by symbol.
func BySymbol(rows []models.Form4Row) []SymbolActivity {
	bySym := make(map[string]*SymbolActivity)
	for _, r := range rows {
		sym := strings.ToUpper(strings.TrimSpace(models.Str(r.IssuerSymbol)))
		if sym == "" || r.SharesTraded == nil || (!r.IsBuy && !r.IsSale) {
			continue
		}
		a := bySym[sym]
		if a == nil {
			a = &SymbolActivity{Symbol: sym, IssuerName: models.Str(r.IssuerName)}
			bySym[sym] = a
		}
		if r.IsBuy {
			a.BuyShares += *r.SharesTraded
		} else {
			a.SellShares += *r.SharesTraded
		}
		a.NetShares = a.BuyShares - a.SellShares
		a.Trades++
	}

	out := make([]SymbolActivity, 0, len(bySym))
	for _, a := range bySym {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		vi := out[i].BuyShares + out[i].SellShares
		vj := out[j].BuyShares + out[j].SellShares
		if vi != vj {
			return vi > vj
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// Top returns the first n entries.
func Top(acts []SymbolActivity, n int) []SymbolActivity {
	if n < len(acts) {
		return acts[:n]
	}
	return acts
}
