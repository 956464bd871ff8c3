// Package view holds the explicit per-request view state: the
// (tab × filter × search × page × page-size) tuple. Each user interaction
// arrives as a new query string, parses into a State, and re-derives the
// table synchronously through filter and paginate.
package view

import (
	"net/url"
	"strconv"

	"github.com/rachit379/insider-deals/internal/filter"
	"github.com/rachit379/insider-deals/internal/models"
	"github.com/rachit379/insider-deals/internal/paginate"
)

// Tab selects the top-level panel.
type Tab string

const (
	TabForm4   Tab = "form4"
	TabSched13 Tab = "sched13"
)

// PageSizes are the selectable page sizes.
var PageSizes = []int{10, 25, 50, 100}

// State is the full UI tuple for one request.
type State struct {
	Tab      Tab
	Mode     filter.Mode
	Query    string
	PageNum  int
	PageSize int
}

// FromQuery parses a request query string into a State, defaulting to the
// Form 4 tab, all-mode, page 1 and defaultSize. Unknown page sizes snap to
// defaultSize; the page number is normalized here and clamped against the
// filtered count later.
func FromQuery(q url.Values, defaultSize int) State {
	s := State{
		Tab:      TabForm4,
		Mode:     filter.ParseMode(q.Get("filter")),
		Query:    q.Get("q"),
		PageNum:  1,
		PageSize: normalizeSize(defaultSize, defaultSize),
	}
	if q.Get("tab") == string(TabSched13) {
		s.Tab = TabSched13
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		s.PageNum = n
	}
	if n, err := strconv.Atoi(q.Get("page_size")); err == nil {
		s.PageSize = normalizeSize(n, defaultSize)
	}
	return s
}

func normalizeSize(n, defaultSize int) int {
	for _, s := range PageSizes {
		if n == s {
			return n
		}
	}
	if defaultSize >= 1 {
		return defaultSize
	}
	return 25
}

// Encode renders the state back into a query string. Defaults are written
// explicitly so links stay stable as defaults change.
func (s State) Encode() string {
	q := url.Values{}
	q.Set("tab", string(s.Tab))
	if s.Tab == TabForm4 {
		q.Set("filter", string(s.Mode))
	}
	if s.Query != "" {
		q.Set("q", s.Query)
	}
	q.Set("page", strconv.Itoa(s.PageNum))
	q.Set("page_size", strconv.Itoa(s.PageSize))
	return q.Encode()
}

// WithTab switches panels, resetting to page 1.
func (s State) WithTab(t Tab) State {
	s.Tab = t
	s.PageNum = 1
	return s
}

// WithMode switches the Form 4 sub-filter, resetting to page 1.
func (s State) WithMode(m filter.Mode) State {
	s.Mode = m
	s.PageNum = 1
	return s
}

// WithSize changes the page size, resetting to page 1.
func (s State) WithSize(n int) State {
	s.PageSize = normalizeSize(n, s.PageSize)
	s.PageNum = 1
	return s
}

// WithPage moves to the given page; the paginator clamps it on derive.
func (s State) WithPage(n int) State {
	s.PageNum = max(n, 1)
	return s
}

// Form4View is the derived Form 4 table: the current page of filtered rows.
type Form4View struct {
	Rows []models.Form4Row
	Page paginate.Page
}

// DeriveForm4 runs the filter → clamp → slice pipeline for the Form 4 tab.
func (s State) DeriveForm4(all []models.Form4Row) Form4View {
	filtered := filter.Form4(all, s.Mode, s.Query)
	page := paginate.Clamp(s.PageNum, len(filtered), s.PageSize)
	return Form4View{Rows: paginate.Slice(filtered, page), Page: page}
}

// Sched13View is the derived Schedule 13D/13G table.
type Sched13View struct {
	Rows []models.Sched13Row
	Page paginate.Page
}

// DeriveSched13 runs the filter → clamp → slice pipeline for the 13D/13G tab.
func (s State) DeriveSched13(all []models.Sched13Row) Sched13View {
	filtered := filter.Sched13(all, s.Query)
	page := paginate.Clamp(s.PageNum, len(filtered), s.PageSize)
	return Sched13View{Rows: paginate.Slice(filtered, page), Page: page}
}
