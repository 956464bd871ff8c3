package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rachit379/insider-deals/internal/config"
	"github.com/rachit379/insider-deals/internal/filter"
	"github.com/rachit379/insider-deals/internal/loader"
	"github.com/rachit379/insider-deals/internal/models"
	"github.com/rachit379/insider-deals/internal/render"
)

func init() {
	godotenv.Load(".env")
}

// Exports a filtered view of the loaded filing data to CSV, using the same
// filter semantics as the dashboard.
func main() {
	dataDir := flag.String("data", config.DataDir, "Directory with the JSON documents")
	tab := flag.String("tab", "form4", "Which table to export: form4 or sched13")
	mode := flag.String("filter", "all", "Form 4 sub-filter: all, buys or sells")
	query := flag.String("q", "", "Search term (case-insensitive substring)")
	csvPath := flag.String("csv", "", "Write to CSV file instead of stdout")
	flag.Parse()

	res, err := loader.Load(context.Background(), *dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load filing data: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not create CSV: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	w := csv.NewWriter(out)

	var n int
	switch strings.ToLower(*tab) {
	case "sched13":
		rows := filter.Sched13(res.Sched13.Rows, *query)
		w.Write([]string{"form_type", "filed_date", "issuer_name", "issuer_cik", "filer_name", "filer_cik", "period_of_report", "filing_url"})
		for _, r := range rows {
			w.Write([]string{
				models.Str(r.FormType),
				render.Date(r.FiledDate),
				models.Str(r.IssuerName),
				models.Str(r.IssuerCIK),
				models.Str(r.FilerName),
				models.Str(r.FilerCIK),
				render.Date(r.PeriodOfReport),
				models.Str(r.FilingURL),
			})
		}
		n = len(rows)
	default:
		rows := filter.Form4(res.Form4.Rows, filter.ParseMode(*mode), *query)
		w.Write([]string{"insider_name", "relation", "transaction_date", "issuer_symbol", "issuer_name", "transaction_description", "owner_type", "shares_traded", "price", "shares_held_after", "filing_url"})
		for _, r := range rows {
			w.Write([]string{
				models.Str(r.InsiderName),
				models.Str(r.Relation),
				render.Date(r.TransactionDate),
				models.Str(r.IssuerSymbol),
				models.Str(r.IssuerName),
				models.Str(r.TransactionDescription),
				render.OwnerType(r.OwnerType),
				render.Shares(r.SharesTraded),
				render.Price(r.Price),
				render.Shares(r.SharesHeldAfter),
				models.Str(r.FilingURL),
			})
		}
		n = len(rows)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "CSV write failed: %v\n", err)
		os.Exit(1)
	}
	if *csvPath != "" {
		fmt.Printf("Wrote %d rows to %s.\n", n, *csvPath)
	}
}
