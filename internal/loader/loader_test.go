package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const form4JSON = `{
  "last_updated_utc": "2024-01-16T04:00:00Z",
  "source": "SEC EDGAR (Form 4 XML + daily index)",
  "rows": [
    {"insider_name": "COOK TIMOTHY D", "issuer_symbol": "AAPL", "is_sale": true,
     "shares_traded": 51900, "price": 182.5}
  ]
}`

const sched13JSON = `{
  "rows": [
    {"form_type": "SC 13D", "filed_date": "20240115", "issuer_name": "Acme Corp"}
  ]
}`

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, form4File), []byte(form4JSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, sched13File), []byte(sched13JSON), 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeDataDir(t)
	res, err := Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-16T04:00:00Z", res.Form4.LastUpdatedUTC)
	require.Len(t, res.Form4.Rows, 1)
	assert.True(t, res.Form4.Rows[0].IsSale)
	require.NotNil(t, res.Form4.Rows[0].Price)
	assert.InDelta(t, 182.5, *res.Form4.Rows[0].Price, 1e-9)

	require.Len(t, res.Sched13.Rows, 1)
	assert.Nil(t, res.Sched13.Rows[0].FilerName) // absent field stays nil
}

func TestLoadMissingFileIsTerminal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, form4File), []byte(form4JSON), 0o644))

	// One document missing fails the whole load; no partial result.
	res, err := Load(context.Background(), dir)
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestLoadMalformedJSONIsTerminal(t *testing.T) {
	dir := writeDataDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, sched13File), []byte("{not json"), 0o644))

	res, err := Load(context.Background(), dir)
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestStatusLabel(t *testing.T) {
	res := &Result{}
	res.Form4.LastUpdatedUTC = "2024-01-16T04:00:00Z"
	assert.Equal(t, "Last updated: 2024-01-16T04:00:00Z", res.StatusLabel())

	assert.Equal(t, "Data loaded.", (&Result{}).StatusLabel())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/" + form4File:
			w.Write([]byte(form4JSON))
		case "/" + sched13File:
			w.Write([]byte(sched13JSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	res, err := LoadHTTP(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, res.Form4.Rows, 1)
	assert.Len(t, res.Sched13.Rows, 1)
}

func TestLoadHTTPErrorStatusIsTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/"+form4File {
			w.Write([]byte(form4JSON))
			return
		}
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	res, err := LoadHTTP(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Nil(t, res)
}
