package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/retroviz/gamewatch/pkg/cache"
	gwerrors "github.com/retroviz/gamewatch/pkg/errors"
	"github.com/retroviz/gamewatch/pkg/render/charts"
)

const (
	defaultAddr     = ":8080"
	defaultCacheDir = ".gamewatch-cache"
	shutdownTimeout = 5 * time.Second
)

// contentTypes maps output formats to HTTP content types.
var contentTypes = map[string]string{
	charts.FormatSVG: "image/svg+xml",
	charts.FormatPNG: "image/png",
	charts.FormatPDF: "application/pdf",
}

// serveOpts holds the serve command flags.
type serveOpts struct {
	addr     string
	data     string
	cacheDir string
	redis    string
	noCache  bool
	ttl      time.Duration
}

// newServeCmd creates the serve command: an HTTP server that renders
// charts on demand and caches the artifacts.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve chart previews over HTTP",
		Long: `Serve chart previews over HTTP.

Charts are rendered on demand from the dataset and cached. Endpoints:

  GET /charts                 list available charts
  GET /charts/{chart}         render a chart (?format=svg|png|pdf,
                              &column=, &max-year=, &manual=)
  GET /healthz                liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVarP(&opts.data, "data", "d", defaultDataPath, "dataset file (TOML)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", defaultCacheDir, "artifact cache directory")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for the artifact cache (overrides --cache-dir)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", time.Hour, "cached artifact lifetime")
	return cmd
}

// newServeCache picks the cache backend from the flags.
func newServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redis != "":
		return cache.NewRedisCache(ctx, opts.redis)
	default:
		return cache.NewFileCache(opts.cacheDir)
	}
}

// server bundles the handler state for the preview endpoints.
type server struct {
	opts  serveOpts
	cache cache.Cache
}

func runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	c, err := newServeCache(ctx, opts)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer c.Close()

	s := &server{opts: opts, cache: c}

	srv := &http.Server{
		Addr:        opts.addr,
		Handler:     s.routes(ctx),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving chart previews on %s", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// routes builds the chi router for the preview endpoints.
func (s *server) routes(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(ctx))
	r.Get("/healthz", s.handleHealth)
	r.Get("/charts", s.handleList)
	r.Get("/charts/{chart}", s.handleChart)
	return r
}

// requestID attaches a UUID to each request for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

const requestIDKey ctxKey = 1

// requestLogger logs each request with its ID, carrying the command logger
// into the request context.
func requestLogger(base context.Context) func(http.Handler) http.Handler {
	logger := loggerFromContext(base)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), logger)))
			id, _ := r.Context().Value(requestIDKey).(string)
			logger.Debugf("%s %s id=%s (%s)", r.Method, r.URL.Path, id, time.Since(start).Round(time.Millisecond))
		})
	}
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	type chartInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	list := make([]chartInfo, 0, len(chartNames))
	for _, name := range chartNames {
		list = append(list, chartInfo{Name: name, Description: chartDescriptions[name]})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (s *server) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := loggerFromContext(ctx)

	name := chi.URLParam(r, "chart")
	if _, ok := chartDescriptions[name]; !ok {
		httpError(w, http.StatusNotFound, "unknown chart: %s", name)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = charts.FormatSVG
	}
	if err := charts.ValidateFormat(format); err != nil {
		httpError(w, http.StatusBadRequest, "%v", err)
		return
	}

	maxYear := 0
	if v := r.URL.Query().Get("max-year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid max-year: %s", v)
			return
		}
		maxYear = y
	}

	ropts := renderOpts{
		format: format,
		column: r.URL.Query().Get("column"),
		manual: r.URL.Query().Get("manual") == "true",
	}

	// The dataset hash keys the cache so edits invalidate stale artifacts.
	raw, err := os.ReadFile(s.opts.data)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "read dataset: %v", err)
		return
	}
	key := cache.Key(name, format, ropts.column, ropts.manual, maxYear, cache.Hash(raw))

	if data, found, err := s.cache.Get(ctx, key); err != nil {
		logger.Warnf("Cache get failed: %v", err)
	} else if found {
		logger.Debugf("Cache hit for %s", name)
		writeChart(w, format, data)
		return
	}

	ds, err := loadDataset(ctx, s.opts.data, maxYear)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "load dataset: %v", err)
		return
	}

	data, err := renderChart(name, ds, ropts)
	if err != nil {
		status := http.StatusInternalServerError
		if gwerrors.HasCode(err, gwerrors.ErrCodeInvalidColumn) ||
			gwerrors.HasCode(err, gwerrors.ErrCodeInvalidFormat) {
			status = http.StatusBadRequest
		}
		httpError(w, status, "render %s: %v", name, err)
		return
	}

	if err := s.cache.Set(ctx, key, data, s.opts.ttl); err != nil {
		logger.Warnf("Cache set failed: %v", err)
	}
	writeChart(w, format, data)
}

func writeChart(w http.ResponseWriter, format string, data []byte) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.Write(data)
}

func httpError(w http.ResponseWriter, status int, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf(format, args...)})
}
