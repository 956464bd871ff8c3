package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rachit379/insider-deals/internal/models"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"compact", models.StrPtr("20240115"), "01/15/2024"},
		{"compact year end", models.StrPtr("20231231"), "12/31/2023"},
		{"iso passthrough", models.StrPtr("2024-01-15"), "2024-01-15"},
		{"short passthrough", models.StrPtr("2024"), "2024"},
		{"non numeric passthrough", models.StrPtr("2024011x"), "2024011x"},
		{"nil", nil, ""},
		{"empty", models.StrPtr(""), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.in))
		})
	}
}

func TestShares(t *testing.T) {
	assert.Equal(t, "1,234,567", Shares(models.Int64Ptr(1234567)))
	assert.Equal(t, "500", Shares(models.Int64Ptr(500)))
	assert.Equal(t, "0", Shares(models.Int64Ptr(0)))
	assert.Equal(t, "", Shares(nil))
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "$182.50", Price(models.Float64Ptr(182.5)))
	assert.Equal(t, "$1,234.57", Price(models.Float64Ptr(1234.567)))
	assert.Equal(t, "$5.00", Price(models.Float64Ptr(5)))
	// Nil renders empty, never "$NaN" or "null".
	assert.Equal(t, "", Price(nil))
}

func TestOwnerType(t *testing.T) {
	assert.Equal(t, "Direct", OwnerType(models.StrPtr("D")))
	assert.Equal(t, "Indirect", OwnerType(models.StrPtr("I")))
	assert.Equal(t, "", OwnerType(nil))
	assert.Equal(t, "X", OwnerType(models.StrPtr("X")))
}

func TestToneClassDeadZone(t *testing.T) {
	tests := []struct {
		in   *float64
		want string
	}{
		{models.Float64Ptr(2.5), "positive"},
		{models.Float64Ptr(-2.5), "negative"},
		{models.Float64Ptr(0.05), ""},
		{models.Float64Ptr(-0.05), ""},
		{models.Float64Ptr(0.1), ""},
		{models.Float64Ptr(-0.1), ""},
		{models.Float64Ptr(0.11), "positive"},
		{models.Float64Ptr(0), ""},
		{nil, ""},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, ToneClass(tt.in), "ToneClass(%v)", tt.in)
	}
}

func TestQuoteURL(t *testing.T) {
	assert.Equal(t, "https://finance.yahoo.com/quote/AAPL", QuoteURL(models.StrPtr("AAPL")))
	assert.Equal(t, "", QuoteURL(nil))
	assert.Equal(t, "", QuoteURL(models.StrPtr("")))
}

func TestForm4Cells(t *testing.T) {
	r := models.Form4Row{
		InsiderName:            models.StrPtr("COOK TIMOTHY D"),
		Relation:               models.StrPtr("Officer"),
		TransactionDate:        models.StrPtr("20240115"),
		IssuerSymbol:           models.StrPtr("AAPL"),
		IssuerName:             models.StrPtr("Apple Inc."),
		TransactionDescription: models.StrPtr("Sale"),
		IsSale:                 true,
		OwnerType:              models.StrPtr("D"),
		SharesTraded:           models.Int64Ptr(51900),
		Price:                  models.Float64Ptr(182.5),
		SharesHeldAfter:        models.Int64Ptr(3280000),
		FilingURL:              models.StrPtr("https://www.sec.gov/Archives/edgar/data/320193/x.txt"),
	}
	cells := Form4Cells(r)
	assert.Len(t, cells, len(Form4Columns))
	assert.Equal(t, "COOK TIMOTHY D", cells[0].Text)
	assert.Equal(t, "01/15/2024", cells[2].Text)
	assert.Equal(t, "https://finance.yahoo.com/quote/AAPL", cells[3].URL)
	assert.Equal(t, "negative", cells[5].Class)
	assert.Equal(t, "Direct", cells[6].Text)
	assert.Equal(t, "51,900", cells[7].Text)
	assert.Equal(t, "$182.50", cells[8].Text)
	assert.Equal(t, "View", cells[10].Text)
	assert.NotEmpty(t, cells[10].URL)
}

func TestForm4CellsBuyTint(t *testing.T) {
	r := models.Form4Row{TransactionDescription: models.StrPtr("Purchase (Open Market)"), IsBuy: true}
	cells := Form4Cells(r)
	assert.Equal(t, "positive", cells[5].Class)
}

func TestForm4CellsMissingFieldsRenderBlank(t *testing.T) {
	cells := Form4Cells(models.Form4Row{})
	assert.Len(t, cells, len(Form4Columns))
	for i, c := range cells {
		assert.Emptyf(t, c.Text, "cell %d should be blank", i)
		assert.NotContains(t, c.Text, "null")
	}
}

func TestSched13Cells(t *testing.T) {
	r := models.Sched13Row{
		FormType:       models.StrPtr("SC 13D"),
		FiledDate:      models.StrPtr("20240220"),
		IssuerName:     models.StrPtr("Acme Corp"),
		IssuerCIK:      models.StrPtr("0001234567"),
		FilerName:      models.StrPtr("Big Fund LP"),
		FilerCIK:       models.StrPtr("0007654321"),
		PeriodOfReport: models.StrPtr("20240215"),
		FilingURL:      models.StrPtr("https://www.sec.gov/Archives/x.txt"),
	}
	cells := Sched13Cells(r)
	assert.Len(t, cells, len(Sched13Columns))
	assert.Equal(t, "02/20/2024", cells[1].Text)
	assert.Equal(t, "02/15/2024", cells[6].Text)
	assert.Equal(t, "View", cells[7].Text)
}
