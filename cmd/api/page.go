package main

import (
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/rachit379/insider-deals/internal/filter"
	"github.com/rachit379/insider-deals/internal/loader"
	"github.com/rachit379/insider-deals/internal/render"
	"github.com/rachit379/insider-deals/internal/summary"
	"github.com/rachit379/insider-deals/internal/view"
)

const topSummarySymbols = 5

type navLink struct {
	Label  string
	URL    string
	Active bool
}

type sizeOption struct {
	Size     int
	URL      string
	Selected bool
}

type summaryEntry struct {
	Symbol     string
	IssuerName string
	Buys       string
	Sells      string
	Net        string
	Tone       string
	Trades     int
}

// dashboardPage is everything the template needs for one request.
type dashboardPage struct {
	Status       string
	LoadErr      bool
	Source       string
	Tabs         []navLink
	Modes        []navLink
	Query        string
	HiddenTab    string
	HiddenFilter string
	HiddenSize   int
	Columns      []string
	Rows         [][]render.Cell
	ColSpan      int
	PageLabel    string
	PrevURL      string
	NextURL      string
	Sizes        []sizeOption
	Summary      []summaryEntry
}

func stateURL(s view.State) string {
	return "/?" + s.Encode()
}

// errorPage is the terminal load-failure view: status label only, all
// table rendering skipped.
func errorPage(state view.State) dashboardPage {
	return dashboardPage{Status: loader.ErrStatusLabel, LoadErr: true}
}

// buildPage derives the active tab's table and navigation from the state.
func buildPage(state view.State, data *loader.Result) dashboardPage {
	p := dashboardPage{
		Status: data.StatusLabel(),
		Source: data.Form4.Source,
		Query:  state.Query,
		Tabs: []navLink{
			{Label: "Form 4 Transactions", URL: stateURL(state.WithTab(view.TabForm4)), Active: state.Tab == view.TabForm4},
			{Label: "Schedule 13D/13G", URL: stateURL(state.WithTab(view.TabSched13)), Active: state.Tab == view.TabSched13},
		},
		HiddenTab:  string(state.Tab),
		HiddenSize: state.PageSize,
	}

	if state.Tab == view.TabSched13 {
		v := state.DeriveSched13(data.Sched13.Rows)
		p.Columns = render.Sched13Columns
		for _, r := range v.Rows {
			p.Rows = append(p.Rows, render.Sched13Cells(r))
		}
		p.fillPager(state, v.Page.Number, v.Page.Label(), v.Page.HasPrev(), v.Page.HasNext())
		p.ColSpan = len(p.Columns)
		return p
	}

	p.HiddenFilter = string(state.Mode)
	p.Modes = []navLink{
		{Label: "All", URL: stateURL(state.WithMode(filter.ModeAll)), Active: state.Mode == filter.ModeAll},
		{Label: "Buys", URL: stateURL(state.WithMode(filter.ModeBuys)), Active: state.Mode == filter.ModeBuys},
		{Label: "Sells", URL: stateURL(state.WithMode(filter.ModeSells)), Active: state.Mode == filter.ModeSells},
	}
	v := state.DeriveForm4(data.Form4.Rows)
	p.Columns = render.Form4Columns
	for _, r := range v.Rows {
		p.Rows = append(p.Rows, render.Form4Cells(r))
	}
	p.fillPager(state, v.Page.Number, v.Page.Label(), v.Page.HasPrev(), v.Page.HasNext())
	p.ColSpan = len(p.Columns)

	for _, a := range summary.Top(summary.BySymbol(data.Form4.Rows), topSummarySymbols) {
		pct := a.PressurePct()
		net := humanize.Comma(a.NetShares)
		if a.NetShares > 0 {
			net = "+" + net
		}
		p.Summary = append(p.Summary, summaryEntry{
			Symbol:     a.Symbol,
			IssuerName: a.IssuerName,
			Buys:       humanize.Comma(a.BuyShares),
			Sells:      humanize.Comma(a.SellShares),
			Net:        net,
			Tone:       render.ToneClass(&pct),
			Trades:     a.Trades,
		})
	}
	return p
}

func (p *dashboardPage) fillPager(state view.State, current int, label string, hasPrev, hasNext bool) {
	p.PageLabel = label
	if hasPrev {
		p.PrevURL = stateURL(state.WithPage(current - 1))
	}
	if hasNext {
		p.NextURL = stateURL(state.WithPage(current + 1))
	}
	for _, n := range view.PageSizes {
		p.Sizes = append(p.Sizes, sizeOption{
			Size:     n,
			URL:      stateURL(state.WithSize(n)),
			Selected: n == state.PageSize,
		})
	}
}

func renderDashboard(w http.ResponseWriter, p dashboardPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, p); err != nil {
		fmt.Fprintf(w, "<!-- render: %v -->", err)
	}
}
