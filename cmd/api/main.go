package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rachit379/insider-deals/internal/config"
	"github.com/rachit379/insider-deals/internal/loader"
	"github.com/rachit379/insider-deals/internal/store"
	"github.com/rachit379/insider-deals/internal/summary"
	"github.com/rachit379/insider-deals/internal/telemetry"
	"github.com/rachit379/insider-deals/internal/view"
)

func init() {
	godotenv.Load(".env")
}

// server holds the loaded documents and re-derives every view per request.
type server struct {
	log  *zap.Logger
	arch *store.Store // nil when archiving is disabled

	mu      sync.RWMutex
	data    *loader.Result
	loadErr error

	refreshMu     sync.Mutex
	lastRefreshAt time.Time
}

const refreshDebounce = 5 * time.Minute

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	if config.TraceEnabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Fatal("trace setup failed", zap.Error(err))
		}
		defer shutdown(ctx)
	}

	var arch *store.Store
	if config.ArchivePath != "" {
		arch, err = store.Open(config.ArchivePath)
		if err != nil {
			logger.Fatal("archive open failed", zap.Error(err))
		}
		defer arch.Close()
	}

	srv := &server{log: logger, arch: arch}
	srv.load(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/", securityHeaders(srv.handleDashboard))
	mux.HandleFunc("/static/", securityHeaders(serveStatic))
	mux.HandleFunc("/api/form4", securityHeaders(srv.handleForm4))
	mux.HandleFunc("/api/sched13", securityHeaders(srv.handleSched13))
	mux.HandleFunc("/api/summary", securityHeaders(srv.handleSummary))
	mux.HandleFunc("/api/archive", securityHeaders(srv.handleArchive))
	mux.HandleFunc("/api/meta", securityHeaders(srv.handleMeta))
	mux.HandleFunc("/api/refresh", securityHeaders(adminOrRateLimit(rateLimitRefresh(srv.handleRefresh))))
	mux.HandleFunc("/api/health", securityHeaders(handleHealth))

	port := "8000"
	if p := os.Getenv("PORT"); p != "" {
		port = p
	}
	logger.Info("listening", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// load fetches both documents (fan-out/fan-in inside the loader) and swaps
// the snapshot. A failure is terminal for serving: handlers show the error
// label until a refresh succeeds.
func (s *server) load(ctx context.Context) {
	ctx, span := telemetry.Span(ctx, "load")
	defer span.End()

	var res *loader.Result
	var err error
	if config.DataBaseURL != "" {
		res, err = loader.LoadHTTP(ctx, config.DataBaseURL)
	} else {
		res, err = loader.Load(ctx, config.DataDir)
	}

	s.mu.Lock()
	s.data, s.loadErr = res, err
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("data load failed", zap.Error(err))
		return
	}
	s.log.Info("data loaded",
		zap.Int("form4_rows", len(res.Form4.Rows)),
		zap.Int("sched13_rows", len(res.Sched13.Rows)),
		zap.String("last_updated", res.Form4.LastUpdatedUTC),
	)
	s.archiveRows(res)
}

func (s *server) archiveRows(res *loader.Result) {
	if s.arch == nil {
		return
	}
	if n, err := s.arch.ArchiveForm4(res.Form4.Rows); err != nil {
		s.log.Warn("archive form4 failed", zap.Error(err))
	} else if n > 0 {
		s.log.Info("archived form4 rows", zap.Int("added", n))
	}
	if n, err := s.arch.ArchiveSched13(res.Sched13.Rows); err != nil {
		s.log.Warn("archive 13d/g failed", zap.Error(err))
	} else if n > 0 {
		s.log.Info("archived 13d/g rows", zap.Int("added", n))
	}
}

func (s *server) snapshot() (*loader.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, s.loadErr
}

// refresh re-reads the JSON documents, debounced like the dashboard cache
// refresh: repeated calls inside the window are dropped.
func (s *server) refresh() {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	if !s.lastRefreshAt.IsZero() && time.Since(s.lastRefreshAt) < refreshDebounce {
		return
	}
	s.lastRefreshAt = time.Now()
	s.load(context.Background())
}

func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	_, span := telemetry.Span(r.Context(), "dashboard")
	defer span.End()

	state := view.FromQuery(r.URL.Query(), config.DefaultPageSize)
	data, err := s.snapshot()
	if err != nil || data == nil {
		renderDashboard(w, errorPage(state))
		return
	}
	renderDashboard(w, buildPage(state, data))
}

func serveStatic(w http.ResponseWriter, r *http.Request) {
	subpath := strings.TrimPrefix(r.URL.Path, "/static/")
	subpath = strings.TrimPrefix(subpath, "/")
	if subpath == "" || strings.Contains(subpath, "..") {
		http.NotFound(w, r)
		return
	}
	path := safeStaticPath("static", subpath)
	if path == "" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

func (s *server) handleForm4(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, err := s.snapshot()
	if err != nil || data == nil {
		jsonError(w, loader.ErrStatusLabel)
		return
	}
	state := view.FromQuery(r.URL.Query(), config.DefaultPageSize)
	v := state.DeriveForm4(data.Form4.Rows)
	jsonResponse(w, map[string]interface{}{
		"last_updated_utc": data.Form4.LastUpdatedUTC,
		"filter":           string(state.Mode),
		"query":            state.Query,
		"page":             v.Page.Number,
		"page_size":        v.Page.Size,
		"total_pages":      v.Page.TotalPages,
		"total_rows":       v.Page.TotalRows,
		"page_label":       v.Page.Label(),
		"rows":             v.Rows,
	})
}

func (s *server) handleSched13(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, err := s.snapshot()
	if err != nil || data == nil {
		jsonError(w, loader.ErrStatusLabel)
		return
	}
	state := view.FromQuery(r.URL.Query(), config.DefaultPageSize)
	v := state.DeriveSched13(data.Sched13.Rows)
	jsonResponse(w, map[string]interface{}{
		"query":       state.Query,
		"page":        v.Page.Number,
		"page_size":   v.Page.Size,
		"total_pages": v.Page.TotalPages,
		"total_rows":  v.Page.TotalRows,
		"page_label":  v.Page.Label(),
		"rows":        v.Rows,
	})
}

func (s *server) handleSummary(w http.ResponseWriter, r *http.Request) {
	data, err := s.snapshot()
	if err != nil || data == nil {
		jsonError(w, loader.ErrStatusLabel)
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 10)
	acts := summary.Top(summary.BySymbol(data.Form4.Rows), clamp(limit, 1, 100))
	jsonResponse(w, map[string]interface{}{
		"last_updated_utc": data.Form4.LastUpdatedUTC,
		"symbols":          acts,
	})
}

func (s *server) handleArchive(w http.ResponseWriter, r *http.Request) {
	if s.arch == nil {
		jsonError(w, "archive disabled")
		return
	}
	form4, sched13, err := s.arch.Counts()
	if err != nil {
		s.log.Warn("archive counts failed", zap.Error(err))
		jsonError(w, "archive unavailable")
		return
	}
	limit := clamp(parseInt(r.URL.Query().Get("limit"), 50), 1, 500)
	recent, err := s.arch.RecentForm4(limit)
	if err != nil {
		s.log.Warn("archive query failed", zap.Error(err))
		jsonError(w, "archive unavailable")
		return
	}
	jsonResponse(w, map[string]interface{}{
		"form4_count":   form4,
		"sched13_count": sched13,
		"recent_form4":  recent,
	})
}

func (s *server) handleMeta(w http.ResponseWriter, r *http.Request) {
	data, err := s.snapshot()
	if err != nil || data == nil {
		jsonError(w, loader.ErrStatusLabel)
		return
	}
	jsonResponse(w, map[string]interface{}{
		"form4_last_updated":   data.Form4.LastUpdatedUTC,
		"sched13_last_updated": data.Sched13.LastUpdatedUTC,
		"source":               data.Form4.Source,
	})
}

func (s *server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	go s.refresh()
	jsonResponse(w, map[string]string{"status": "refresh started"})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{"status": "ok"})
}

func jsonResponse(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
