// Package loader reads the two pre-built JSON documents produced by the
// data-fetch job. Both documents load together or not at all: a failure on
// either side is terminal for the load, with no partial result.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rachit379/insider-deals/internal/httpclient"
	"github.com/rachit379/insider-deals/internal/models"
)

const (
	form4File   = "form4_transactions.json"
	sched13File = "schedule_13d13g.json"
)

// Result holds both loaded documents.
type Result struct {
	Form4   models.Form4Doc
	Sched13 models.Sched13Doc
}

// StatusLabel is the header text for a successful load.
func (r *Result) StatusLabel() string {
	ts := r.Form4.LastUpdatedUTC
	if ts == "" {
		ts = r.Sched13.LastUpdatedUTC
	}
	if ts == "" {
		return "Data loaded."
	}
	return "Last updated: " + ts
}

// ErrStatusLabel is the fixed header text shown when a load fails. Detail
// goes to the log, not the label.
const ErrStatusLabel = "Failed to load filing data. Reload to retry."

// Load fetches both documents concurrently from dir, fan-out/fan-in. It
// returns the first error and no partial data.
func Load(ctx context.Context, dir string) (*Result, error) {
	res := &Result{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readFile(ctx, filepath.Join(dir, form4File), &res.Form4)
	})
	g.Go(func() error {
		return readFile(ctx, filepath.Join(dir, sched13File), &res.Sched13)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// LoadHTTP fetches both documents concurrently from baseURL.
func LoadHTTP(ctx context.Context, baseURL string) (*Result, error) {
	base := strings.TrimRight(baseURL, "/")
	res := &Result{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fetchURL(ctx, base+"/"+form4File, &res.Form4)
	})
	g.Go(func() error {
		return fetchURL(ctx, base+"/"+sched13File, &res.Sched13)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func readFile(ctx context.Context, path string, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func fetchURL(ctx context.Context, u string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := httpclient.Default.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: status %d", u, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parse %s: %w", u, err)
	}
	return nil
}
